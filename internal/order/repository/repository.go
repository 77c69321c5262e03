package repository

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/neonshop/commerce-core/internal/order/domain"
	"github.com/neonshop/commerce-core/internal/query"
	"github.com/neonshop/commerce-core/internal/storage"
)

const (
	orderCollection   = "orders"
	historyCollection = "order_history"
)

const (
	defaultOrderSort    = "created_at"
	defaultOrderSortDir = query.Desc
)

var orderSortFields = map[string]bool{
	"order_number":  true,
	"customer_name": true,
	"status":        true,
	"total":         true,
	"created_at":    true,
	"updated_at":    true,
}

func orderSortKey(o domain.Order, field string) any {
	switch field {
	case "order_number":
		return o.OrderNumber
	case "customer_name":
		return o.CustomerName
	case "status":
		return o.Status
	case "total":
		return o.Total
	case "created_at":
		return o.CreatedAt
	case "updated_at":
		return o.UpdatedAt
	default:
		return ""
	}
}

// FileOrderRepository keeps orders and their history in memory and
// persists each collection whole through a storage.Store. The mutex is
// the process-wide advisory lock for both collections; id assignment is
// max+1 and is only safe with a single writer.
type FileOrderRepository struct {
	mu      sync.Mutex
	store   storage.Store
	orders  []domain.Order
	history []domain.OrderHistory
}

// NewFileOrderRepository loads both collections eagerly.
func NewFileOrderRepository(store storage.Store) (*FileOrderRepository, error) {
	r := &FileOrderRepository{store: store}
	if err := store.Load(orderCollection, &r.orders); err != nil {
		return nil, err
	}
	if err := store.Load(historyCollection, &r.history); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *FileOrderRepository) nextOrderID() uint {
	var max uint
	for i := range r.orders {
		if r.orders[i].ID > max {
			max = r.orders[i].ID
		}
	}
	return max + 1
}

func (r *FileOrderRepository) nextHistoryID() uint {
	var max uint
	for i := range r.history {
		if r.history[i].ID > max {
			max = r.history[i].ID
		}
	}
	return max + 1
}

func (r *FileOrderRepository) persistOrders() error {
	return r.store.Save(orderCollection, r.orders)
}

func (r *FileOrderRepository) persistHistory() error {
	return r.store.Save(historyCollection, r.history)
}

func (r *FileOrderRepository) indexOf(id uint) int {
	for i := range r.orders {
		if r.orders[i].ID == id {
			return i
		}
	}
	return -1
}

// newOrderNumber derives a human-friendly unique order number.
func newOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("NS-%s-%s", now.Format("20060102"), suffix)
}

// Create validates the order, recomputes its totals, assigns the id and
// order number, stamps timestamps and persists. Nothing is written when
// validation fails.
func (r *FileOrderRepository) Create(order *domain.Order) error {
	if order.Status == "" {
		order.Status = domain.StatusPending
	}
	if order.PaymentStatus == "" {
		order.PaymentStatus = domain.PaymentPending
	}
	order.Recalculate()
	if err := order.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	order.ID = r.nextOrderID()
	if order.OrderNumber == "" {
		order.OrderNumber = newOrderNumber(now)
	}
	order.CreatedAt = now
	order.UpdatedAt = now

	r.orders = append(r.orders, *order)
	if err := r.persistOrders(); err != nil {
		r.orders = r.orders[:len(r.orders)-1]
		return err
	}
	return nil
}

// FindByID returns a copy of the order or storage.ErrNotFound.
func (r *FileOrderRepository) FindByID(id uint) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("order %d: %w", id, storage.ErrNotFound)
	}
	o := r.orders[i]
	return &o, nil
}

// FindByOrderNumber looks an order up by its generated number.
func (r *FileOrderRepository) FindByOrderNumber(orderNumber string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if strings.EqualFold(r.orders[i].OrderNumber, orderNumber) {
			o := r.orders[i]
			return &o, nil
		}
	}
	return nil, fmt.Errorf("order %s: %w", orderNumber, storage.ErrNotFound)
}

// FindWithFilters composes filter, sort and paginate, in that order.
func (r *FileOrderRepository) FindWithFilters(filter domain.OrderFilter, page, limit int, sortField, sortDirection string) ([]domain.Order, query.Pagination, error) {
	if err := filter.Validate(); err != nil {
		return nil, query.Pagination{}, err
	}

	r.mu.Lock()
	matched := make([]domain.Order, 0, len(r.orders))
	for _, o := range r.orders {
		if filter.Matches(o) {
			matched = append(matched, o)
		}
	}
	r.mu.Unlock()

	if !orderSortFields[sortField] {
		sortField = defaultOrderSort
		sortDirection = defaultOrderSortDir
	}
	query.Sort(matched, sortField, sortDirection, orderSortKey)

	items, meta := query.Paginate(matched, page, limit)
	return items, meta, nil
}

// Update replaces the stored order, preserving creation metadata. The
// totals invariant is re-established before validation.
func (r *FileOrderRepository) Update(order *domain.Order) error {
	order.Recalculate()
	if err := order.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(order.ID)
	if i < 0 {
		return fmt.Errorf("order %d: %w", order.ID, storage.ErrNotFound)
	}

	order.CreatedAt = r.orders[i].CreatedAt
	order.OrderNumber = r.orders[i].OrderNumber
	order.UpdatedAt = time.Now()

	previous := r.orders[i]
	r.orders[i] = *order
	if err := r.persistOrders(); err != nil {
		r.orders[i] = previous
		return err
	}
	return nil
}

// Delete removes the order and cascades to its history entries.
func (r *FileOrderRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return fmt.Errorf("order %d: %w", id, storage.ErrNotFound)
	}

	previousOrders := r.orders
	previousHistory := r.history

	r.orders = append(append([]domain.Order{}, r.orders[:i]...), r.orders[i+1:]...)
	kept := make([]domain.OrderHistory, 0, len(r.history))
	for _, h := range r.history {
		if h.OrderID != id {
			kept = append(kept, h)
		}
	}
	r.history = kept

	if err := r.persistOrders(); err != nil {
		r.orders = previousOrders
		r.history = previousHistory
		return err
	}
	if err := r.persistHistory(); err != nil {
		// Orders were already rewritten; history stays for the next write.
		r.history = previousHistory
		return err
	}
	return nil
}

// Count returns the number of orders in the collection.
func (r *FileOrderRepository) Count() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.orders)), nil
}

// AddHistory appends a status-transition record. Entries are never
// mutated afterwards.
func (r *FileOrderRepository) AddHistory(entry *domain.OrderHistory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(entry.OrderID) < 0 {
		return fmt.Errorf("order %d: %w", entry.OrderID, storage.ErrNotFound)
	}

	entry.ID = r.nextHistoryID()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	r.history = append(r.history, *entry)
	if err := r.persistHistory(); err != nil {
		r.history = r.history[:len(r.history)-1]
		return err
	}
	return nil
}

// HistoryForOrder returns the order's transition records, newest first.
func (r *FileOrderRepository) HistoryForOrder(orderID uint) ([]domain.OrderHistory, error) {
	r.mu.Lock()
	entries := make([]domain.OrderHistory, 0)
	for _, h := range r.history {
		if h.OrderID == orderID {
			entries = append(entries, h)
		}
	}
	r.mu.Unlock()

	query.Sort(entries, "created_at", query.Desc, func(h domain.OrderHistory, _ string) any {
		return h.CreatedAt
	})
	return entries, nil
}

// Stats summarizes the orders created since the period start date.
func (r *FileOrderRepository) Stats(period string) (*domain.OrderStats, error) {
	since := domain.PeriodStart(time.Now(), period)

	r.mu.Lock()
	defer r.mu.Unlock()

	stats := &domain.OrderStats{
		Period:   period,
		Since:    since,
		ByStatus: make(map[string]int),
	}

	for i := range r.orders {
		o := &r.orders[i]
		if o.CreatedAt.Before(since) {
			continue
		}
		stats.TotalOrders++
		stats.ByStatus[o.Status]++
		if o.Status != domain.StatusCancelled && o.Status != domain.StatusRefunded {
			stats.TotalRevenue += o.Total
		}
	}
	if stats.TotalOrders > 0 {
		stats.AverageTicket = stats.TotalRevenue / float64(stats.TotalOrders)
	}
	return stats, nil
}
