package command

import (
	"fmt"

	"github.com/neonshop/commerce-core/internal/order/domain"
	"github.com/neonshop/commerce-core/internal/validation"
)

// UpdateOrderCommand is a partial update of an order's mutable fields.
// Nil fields are preserved, not cleared. Changing shipping cost or
// discount recomputes the total.
type UpdateOrderCommand struct {
	OrderID         uint
	CustomerPhone   *string
	ShippingAddress *domain.Address
	BillingAddress  *domain.Address
	ShippingCost    *float64
	Discount        *float64
	CouponCode      *string
	Notes           *string
}

// UpdateOrderHandler handles partial order updates.
type UpdateOrderHandler struct {
	repo domain.OrderRepository
}

// NewUpdateOrderHandler creates a new update order handler.
func NewUpdateOrderHandler(repo domain.OrderRepository) *UpdateOrderHandler {
	return &UpdateOrderHandler{repo: repo}
}

// Handle merges the provided fields over the stored order and saves it.
func (h *UpdateOrderHandler) Handle(cmd UpdateOrderCommand) (*domain.Order, error) {
	if cmd.OrderID == 0 {
		return nil, validation.Errors{"order_id": "is required"}
	}

	order, err := h.repo.FindByID(cmd.OrderID)
	if err != nil {
		return nil, err
	}

	if cmd.CustomerPhone != nil {
		order.CustomerPhone = *cmd.CustomerPhone
	}
	if cmd.ShippingAddress != nil {
		order.ShippingAddress = *cmd.ShippingAddress
	}
	if cmd.BillingAddress != nil {
		order.BillingAddress = cmd.BillingAddress
	}
	if cmd.ShippingCost != nil {
		order.SetShippingCost(*cmd.ShippingCost)
	}
	if cmd.Discount != nil {
		order.SetDiscount(*cmd.Discount)
	}
	if cmd.CouponCode != nil {
		order.CouponCode = *cmd.CouponCode
	}
	if cmd.Notes != nil {
		order.Notes = *cmd.Notes
	}

	if err := h.repo.Update(order); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	return order, nil
}
