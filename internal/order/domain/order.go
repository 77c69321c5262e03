package domain

import (
	"strings"
	"time"

	"github.com/neonshop/commerce-core/internal/query"
	"github.com/neonshop/commerce-core/internal/validation"
)

// Order statuses. The lifecycle is linear
// (pending→confirmed→processing→shipped→delivered) with cancelled and
// refunded as terminal branches.
const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
	StatusRefunded   = "refunded"
)

// Payment statuses.
const (
	PaymentPending  = "pending"
	PaymentApproved = "approved"
	PaymentRejected = "rejected"
	PaymentRefunded = "refunded"
)

var validStatuses = map[string]bool{
	StatusPending:    true,
	StatusConfirmed:  true,
	StatusProcessing: true,
	StatusShipped:    true,
	StatusDelivered:  true,
	StatusCancelled:  true,
	StatusRefunded:   true,
}

var validPaymentStatuses = map[string]bool{
	PaymentPending:  true,
	PaymentApproved: true,
	PaymentRejected: true,
	PaymentRefunded: true,
}

// statusTransitions lists the legal next statuses for each status.
var statusTransitions = map[string][]string{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered},
	StatusDelivered:  {StatusRefunded},
	StatusCancelled:  {},
	StatusRefunded:   {},
}

// IsValidStatus reports whether s is a known order status.
func IsValidStatus(s string) bool { return validStatuses[s] }

// IsValidPaymentStatus reports whether s is a known payment status.
func IsValidPaymentStatus(s string) bool { return validPaymentStatuses[s] }

// CanTransition reports whether from→to is a legal status move. A
// same-status move is treated as legal so repeated updates stay
// idempotent.
func CanTransition(from, to string) bool {
	if from == to {
		return true
	}
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Address is a shipping or billing address.
type Address struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipcode"`
}

// validateInto appends the address's problems under a field prefix.
func (a Address) validateInto(verrs validation.Errors, prefix string) {
	required := map[string]string{
		"street":       a.Street,
		"number":       a.Number,
		"neighborhood": a.Neighborhood,
		"city":         a.City,
		"state":        a.State,
		"zipcode":      a.ZipCode,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			verrs.Add(prefix+"."+field, "is required")
		}
	}
}

// OrderItem is one line of an order. The product fields are a snapshot,
// not a live reference.
type OrderItem struct {
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Total       float64 `json:"total"`
}

// Order represents a customer order.
type Order struct {
	ID          uint   `json:"id"`
	OrderNumber string `json:"order_number"`

	CustomerID    uint   `json:"customer_id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone,omitempty"`

	ShippingAddress Address  `json:"shipping_address"`
	BillingAddress  *Address `json:"billing_address,omitempty"`

	Items []OrderItem `json:"items"`

	Subtotal     float64 `json:"subtotal"`
	ShippingCost float64 `json:"shipping_cost"`
	Discount     float64 `json:"discount"`
	Total        float64 `json:"total"`

	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`

	CouponCode   string `json:"coupon_code,omitempty"`
	TrackingCode string `json:"tracking_code,omitempty"`
	Notes        string `json:"notes,omitempty"`

	ShippedAt   *time.Time `json:"shipped_at,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Recalculate rebuilds line totals, the subtotal and the grand total.
// Invariant: Total == Subtotal + ShippingCost - Discount.
func (o *Order) Recalculate() {
	o.Subtotal = 0
	for i := range o.Items {
		o.Items[i].Total = o.Items[i].Price * float64(o.Items[i].Quantity)
		o.Subtotal += o.Items[i].Total
	}
	o.Total = o.Subtotal + o.ShippingCost - o.Discount
}

// AddItem appends a line and recomputes the totals.
func (o *Order) AddItem(item OrderItem) {
	o.Items = append(o.Items, item)
	o.Recalculate()
	o.UpdatedAt = time.Now()
}

// SetShippingCost changes the shipping cost and recomputes the total.
func (o *Order) SetShippingCost(cost float64) {
	o.ShippingCost = cost
	o.Recalculate()
	o.UpdatedAt = time.Now()
}

// SetDiscount changes the discount and recomputes the total.
func (o *Order) SetDiscount(discount float64) {
	o.Discount = discount
	o.Recalculate()
	o.UpdatedAt = time.Now()
}

// TransitionTo moves the order to a new status. Illegal moves fail with
// a validation error; a same-status move is a no-op. ShippedAt and
// DeliveredAt are set exactly once, when the status first reaches the
// corresponding value.
func (o *Order) TransitionTo(status string) error {
	if !IsValidStatus(status) {
		return validation.Errors{"status": "unknown status " + status}
	}
	if !CanTransition(o.Status, status) {
		return validation.Errors{"status": "cannot transition from " + o.Status + " to " + status}
	}
	if o.Status == status {
		return nil
	}

	now := time.Now()
	o.Status = status
	switch status {
	case StatusShipped:
		if o.ShippedAt == nil {
			o.ShippedAt = &now
		}
	case StatusDelivered:
		if o.DeliveredAt == nil {
			o.DeliveredAt = &now
		}
	}
	o.UpdatedAt = now
	return nil
}

// Validate checks the order's own invariants, reporting every invalid
// field at once.
func (o *Order) Validate() error {
	verrs := validation.Errors{}

	if strings.TrimSpace(o.CustomerName) == "" {
		verrs.Add("customer_name", "is required")
	}
	if strings.TrimSpace(o.CustomerEmail) == "" {
		verrs.Add("customer_email", "is required")
	}
	if len(o.Items) == 0 {
		verrs.Add("items", "must contain at least one item")
	}
	for i, item := range o.Items {
		if item.Quantity <= 0 {
			verrs.Addf("items", "item %d: quantity must be positive", i)
		}
		if item.Price < 0 {
			verrs.Addf("items", "item %d: price cannot be negative", i)
		}
	}
	if o.ShippingCost < 0 {
		verrs.Add("shipping_cost", "cannot be negative")
	}
	if o.Discount < 0 {
		verrs.Add("discount", "cannot be negative")
	}
	o.ShippingAddress.validateInto(verrs, "shipping_address")
	if o.BillingAddress != nil {
		o.BillingAddress.validateInto(verrs, "billing_address")
	}
	if o.Status != "" && !IsValidStatus(o.Status) {
		verrs.Add("status", "unknown status "+o.Status)
	}
	if o.PaymentStatus != "" && !IsValidPaymentStatus(o.PaymentStatus) {
		verrs.Add("payment_status", "unknown payment status "+o.PaymentStatus)
	}

	return verrs.Err()
}

// OrderFilter carries the recognized list predicates. Zero values are
// no-ops; all supplied predicates must hold (logical AND).
type OrderFilter struct {
	Status        string
	PaymentStatus string
	CustomerID    *uint
	Search        string
	MinTotal      *float64
	MaxTotal      *float64
	DateFrom      *time.Time
	DateTo        *time.Time
}

// Validate rejects logically inconsistent filters before they reach the
// matching pass.
func (f OrderFilter) Validate() error {
	verrs := validation.Errors{}
	if f.Status != "" && !IsValidStatus(f.Status) {
		verrs.Add("status", "unknown status "+f.Status)
	}
	if f.PaymentStatus != "" && !IsValidPaymentStatus(f.PaymentStatus) {
		verrs.Add("payment_status", "unknown payment status "+f.PaymentStatus)
	}
	if f.MinTotal != nil && f.MaxTotal != nil && *f.MinTotal > *f.MaxTotal {
		verrs.Add("min_total", "cannot exceed max_total")
	}
	if f.DateFrom != nil && f.DateTo != nil && f.DateFrom.After(*f.DateTo) {
		verrs.Add("date_from", "cannot be after date_to")
	}
	return verrs.Err()
}

// Matches reports whether the order satisfies every supplied predicate.
func (f OrderFilter) Matches(o Order) bool {
	if f.Status != "" && o.Status != f.Status {
		return false
	}
	if f.PaymentStatus != "" && o.PaymentStatus != f.PaymentStatus {
		return false
	}
	if f.CustomerID != nil && o.CustomerID != *f.CustomerID {
		return false
	}
	if f.Search != "" &&
		!query.ContainsFold(o.CustomerName, f.Search) &&
		!query.ContainsFold(o.CustomerEmail, f.Search) &&
		!query.ContainsFold(o.OrderNumber, f.Search) {
		return false
	}
	if !query.InRange(o.Total, f.MinTotal, f.MaxTotal) {
		return false
	}
	if !query.InDateRange(o.CreatedAt, f.DateFrom, f.DateTo) {
		return false
	}
	return true
}

// OrderStats summarizes the orders created since a period start date.
type OrderStats struct {
	Period        string         `json:"period"`
	Since         time.Time      `json:"since"`
	TotalOrders   int64          `json:"total_orders"`
	TotalRevenue  float64        `json:"total_revenue"`
	AverageTicket float64        `json:"average_ticket"`
	ByStatus      map[string]int `json:"by_status"`
}

// PeriodStart computes the lower bound of a day, week, month or year
// window relative to now. Weeks start on Monday; an unknown period
// defaults to month.
func PeriodStart(now time.Time, period string) time.Time {
	y, m, d := now.Date()
	switch period {
	case "day":
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	case "week":
		midnight := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
		offset := (int(midnight.Weekday()) + 6) % 7
		return midnight.AddDate(0, 0, -offset)
	case "year":
		return time.Date(y, time.January, 1, 0, 0, 0, 0, now.Location())
	default:
		return time.Date(y, m, 1, 0, 0, 0, 0, now.Location())
	}
}

// OrderRepository defines the contract for order data access. Deleting
// an order cascades to its history entries.
type OrderRepository interface {
	Create(order *Order) error
	FindByID(id uint) (*Order, error)
	FindByOrderNumber(orderNumber string) (*Order, error)
	FindWithFilters(filter OrderFilter, page, limit int, sortField, sortDirection string) ([]Order, query.Pagination, error)
	Update(order *Order) error
	Delete(id uint) error
	Count() (int64, error)
	AddHistory(entry *OrderHistory) error
	HistoryForOrder(orderID uint) ([]OrderHistory, error)
	Stats(period string) (*OrderStats, error)
}
