package command

import (
	"context"
	"fmt"

	"github.com/neonshop/commerce-core/internal/order/domain"
	"github.com/neonshop/commerce-core/internal/validation"
	"github.com/neonshop/commerce-core/pkg/logger"
)

// UpdateStatusCommand moves an order through its lifecycle.
type UpdateStatusCommand struct {
	OrderID      uint
	Status       string
	Notes        string
	TrackingCode string
	ChangedBy    string
}

// UpdateStatusHandler handles order status transitions. Every effective
// transition appends one history entry and publishes one event.
type UpdateStatusHandler struct {
	repo      domain.OrderRepository
	publisher EventPublisher
}

// NewUpdateStatusHandler creates a new update status handler.
func NewUpdateStatusHandler(repo domain.OrderRepository, publisher EventPublisher) *UpdateStatusHandler {
	return &UpdateStatusHandler{repo: repo, publisher: publisher}
}

// Handle executes the status transition. Setting the current status
// again is a no-op: no history entry, no event, timestamps untouched.
func (h *UpdateStatusHandler) Handle(ctx context.Context, cmd UpdateStatusCommand) (*domain.Order, error) {
	if cmd.OrderID == 0 {
		return nil, validation.Errors{"order_id": "is required"}
	}

	order, err := h.repo.FindByID(cmd.OrderID)
	if err != nil {
		return nil, err
	}

	previous := order.Status
	if err := order.TransitionTo(cmd.Status); err != nil {
		return nil, err
	}
	if previous == order.Status {
		return order, nil
	}

	if cmd.TrackingCode != "" {
		order.TrackingCode = cmd.TrackingCode
	}

	if err := h.repo.Update(order); err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	history := &domain.OrderHistory{
		OrderID:   order.ID,
		Status:    order.Status,
		Notes:     cmd.Notes,
		CreatedBy: cmd.ChangedBy,
	}
	if err := h.repo.AddHistory(history); err != nil {
		logger.Error(ctx).Err(err).Uint("order_id", order.ID).Msg("Failed to record order history")
	}

	if h.publisher != nil {
		if err := h.publisher.PublishOrderStatusChanged(ctx, order, previous); err != nil {
			logger.Error(ctx).Err(err).Uint("order_id", order.ID).Msg("Failed to publish order.status_changed")
		}
	}

	return order, nil
}
