package command

import (
	"fmt"

	"github.com/neonshop/commerce-core/internal/order/domain"
	"github.com/neonshop/commerce-core/internal/validation"
)

// DeleteOrderCommand removes an order and its history.
type DeleteOrderCommand struct {
	OrderID uint
}

// DeleteOrderHandler handles order deletion.
type DeleteOrderHandler struct {
	repo domain.OrderRepository
}

// NewDeleteOrderHandler creates a new delete order handler.
func NewDeleteOrderHandler(repo domain.OrderRepository) *DeleteOrderHandler {
	return &DeleteOrderHandler{repo: repo}
}

// Handle executes the delete order command. History entries for the
// order are removed with it.
func (h *DeleteOrderHandler) Handle(cmd DeleteOrderCommand) error {
	if cmd.OrderID == 0 {
		return validation.Errors{"order_id": "is required"}
	}

	if err := h.repo.Delete(cmd.OrderID); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return nil
}
