package query

import (
	"fmt"

	"github.com/neonshop/commerce-core/internal/order/domain"
	"github.com/neonshop/commerce-core/internal/validation"
)

// GetHistoryQuery fetches an order's status transitions, newest first.
type GetHistoryQuery struct {
	OrderID uint
}

// GetHistoryHandler handles order history reads.
type GetHistoryHandler struct {
	repo domain.OrderRepository
}

// NewGetHistoryHandler creates a new get history handler.
func NewGetHistoryHandler(repo domain.OrderRepository) *GetHistoryHandler {
	return &GetHistoryHandler{repo: repo}
}

// Handle executes the history read.
func (h *GetHistoryHandler) Handle(q GetHistoryQuery) ([]domain.OrderHistory, error) {
	if q.OrderID == 0 {
		return nil, validation.Errors{"order_id": "is required"}
	}

	entries, err := h.repo.HistoryForOrder(q.OrderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order history: %w", err)
	}
	return entries, nil
}
