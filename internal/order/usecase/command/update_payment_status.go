package command

import (
	"fmt"

	"github.com/neonshop/commerce-core/internal/order/domain"
	"github.com/neonshop/commerce-core/internal/validation"
)

// UpdatePaymentStatusCommand changes an order's payment status.
type UpdatePaymentStatusCommand struct {
	OrderID       uint
	PaymentStatus string
}

// UpdatePaymentStatusHandler handles payment status updates.
type UpdatePaymentStatusHandler struct {
	repo domain.OrderRepository
}

// NewUpdatePaymentStatusHandler creates a new update payment status handler.
func NewUpdatePaymentStatusHandler(repo domain.OrderRepository) *UpdatePaymentStatusHandler {
	return &UpdatePaymentStatusHandler{repo: repo}
}

// Handle executes the payment status update.
func (h *UpdatePaymentStatusHandler) Handle(cmd UpdatePaymentStatusCommand) (*domain.Order, error) {
	verrs := validation.Errors{}
	if cmd.OrderID == 0 {
		verrs.Add("order_id", "is required")
	}
	if !domain.IsValidPaymentStatus(cmd.PaymentStatus) {
		verrs.Add("payment_status", "unknown payment status "+cmd.PaymentStatus)
	}
	if err := verrs.Err(); err != nil {
		return nil, err
	}

	order, err := h.repo.FindByID(cmd.OrderID)
	if err != nil {
		return nil, err
	}

	order.PaymentStatus = cmd.PaymentStatus
	if err := h.repo.Update(order); err != nil {
		return nil, fmt.Errorf("failed to update payment status: %w", err)
	}
	return order, nil
}
