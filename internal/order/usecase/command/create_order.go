package command

import (
	"context"
	"fmt"

	catalog "github.com/neonshop/commerce-core/internal/catalog/domain"
	"github.com/neonshop/commerce-core/internal/order/domain"
	"github.com/neonshop/commerce-core/internal/validation"
	"github.com/neonshop/commerce-core/pkg/logger"
)

// EventPublisher publishes order lifecycle events. A nil publisher
// disables publishing; a publish failure never fails the command.
type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, order *domain.Order) error
	PublishOrderStatusChanged(ctx context.Context, order *domain.Order, previousStatus string) error
}

// OrderItemInput selects a product and quantity for a new order.
type OrderItemInput struct {
	ProductID uint
	Quantity  int
}

// CreateOrderCommand represents the command to place an order.
type CreateOrderCommand struct {
	CustomerID      uint
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ShippingAddress domain.Address
	BillingAddress  *domain.Address
	Items           []OrderItemInput
	ShippingCost    float64
	Discount        float64
	CouponCode      string
	Notes           string
	CreatedBy       string
}

// CreateOrderHandler places orders. It snapshots product name and price
// into the order lines; sequencing the stock decrement is the caller's
// concern and happens through the order.placed event, not inside the
// repository call.
type CreateOrderHandler struct {
	orders    domain.OrderRepository
	products  catalog.ProductRepository
	publisher EventPublisher
}

// NewCreateOrderHandler creates a new create order handler.
func NewCreateOrderHandler(orders domain.OrderRepository, products catalog.ProductRepository, publisher EventPublisher) *CreateOrderHandler {
	return &CreateOrderHandler{orders: orders, products: products, publisher: publisher}
}

// Handle executes the create order command.
func (h *CreateOrderHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*domain.Order, error) {
	verrs := validation.Errors{}
	if cmd.CustomerID == 0 {
		verrs.Add("customer_id", "is required")
	}
	if len(cmd.Items) == 0 {
		verrs.Add("items", "must contain at least one item")
	}
	if err := verrs.Err(); err != nil {
		return nil, err
	}

	items := make([]domain.OrderItem, 0, len(cmd.Items))
	for i, input := range cmd.Items {
		if input.Quantity <= 0 {
			verrs.Addf("items", "item %d: quantity must be positive", i)
			continue
		}
		product, err := h.products.FindByID(input.ProductID)
		if err != nil {
			verrs.Addf("items", "item %d: product %d not found", i, input.ProductID)
			continue
		}
		if !product.Active {
			verrs.Addf("items", "item %d: product %q is not available", i, product.Name)
			continue
		}
		if product.StockQuantity < input.Quantity {
			verrs.Addf("items", "item %d: insufficient stock for %q", i, product.Name)
			continue
		}
		items = append(items, domain.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Price:       product.EffectivePrice(),
			Quantity:    input.Quantity,
		})
	}
	if err := verrs.Err(); err != nil {
		return nil, err
	}

	order := &domain.Order{
		CustomerID:      cmd.CustomerID,
		CustomerName:    cmd.CustomerName,
		CustomerEmail:   cmd.CustomerEmail,
		CustomerPhone:   cmd.CustomerPhone,
		ShippingAddress: cmd.ShippingAddress,
		BillingAddress:  cmd.BillingAddress,
		Items:           items,
		ShippingCost:    cmd.ShippingCost,
		Discount:        cmd.Discount,
		CouponCode:      cmd.CouponCode,
		Notes:           cmd.Notes,
	}

	if err := h.orders.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	history := &domain.OrderHistory{
		OrderID:   order.ID,
		Status:    order.Status,
		Notes:     "Order placed",
		CreatedBy: cmd.CreatedBy,
	}
	if err := h.orders.AddHistory(history); err != nil {
		logger.Error(ctx).Err(err).Uint("order_id", order.ID).Msg("Failed to record order history")
	}

	if h.publisher != nil {
		if err := h.publisher.PublishOrderPlaced(ctx, order); err != nil {
			logger.Error(ctx).Err(err).Uint("order_id", order.ID).Msg("Failed to publish order.placed")
		}
	}

	return order, nil
}
