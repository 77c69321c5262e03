package query

import (
	"github.com/neonshop/commerce-core/internal/order/domain"
	"github.com/neonshop/commerce-core/internal/validation"
)

// GetOrderQuery fetches one order, by id or by order number.
type GetOrderQuery struct {
	ID          uint
	OrderNumber string
}

// GetOrderHandler handles single order lookups.
type GetOrderHandler struct {
	repo domain.OrderRepository
}

// NewGetOrderHandler creates a new get order handler.
func NewGetOrderHandler(repo domain.OrderRepository) *GetOrderHandler {
	return &GetOrderHandler{repo: repo}
}

// Handle executes the lookup. A miss surfaces as storage.ErrNotFound.
func (h *GetOrderHandler) Handle(q GetOrderQuery) (*domain.Order, error) {
	if q.ID != 0 {
		return h.repo.FindByID(q.ID)
	}
	if q.OrderNumber != "" {
		return h.repo.FindByOrderNumber(q.OrderNumber)
	}
	return nil, validation.Errors{"id": "id or order_number is required"}
}
