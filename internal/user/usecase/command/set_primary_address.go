package command

import (
	"context"

	"github.com/neonshop/commerce-core/internal/user/domain"
	"github.com/neonshop/commerce-core/internal/validation"
)

// SetPrimaryAddressCommand flags one saved address as primary.
type SetPrimaryAddressCommand struct {
	UserID    uint
	AddressID string
}

// SetPrimaryAddressHandler handles primary address selection.
type SetPrimaryAddressHandler struct {
	repo domain.UserRepository
}

// NewSetPrimaryAddressHandler creates a new set primary address handler.
func NewSetPrimaryAddressHandler(repo domain.UserRepository) *SetPrimaryAddressHandler {
	return &SetPrimaryAddressHandler{repo: repo}
}

// Handle executes the selection, demoting every other address.
func (h *SetPrimaryAddressHandler) Handle(ctx context.Context, cmd SetPrimaryAddressCommand) (*domain.User, error) {
	verrs := validation.Errors{}
	if cmd.UserID == 0 {
		verrs.Add("user_id", "is required")
	}
	if cmd.AddressID == "" {
		verrs.Add("address_id", "is required")
	}
	if err := verrs.Err(); err != nil {
		return nil, err
	}

	user, err := h.repo.FindByID(cmd.UserID)
	if err != nil {
		return nil, err
	}
	if err := user.SetPrimaryAddress(cmd.AddressID); err != nil {
		return nil, err
	}

	if err := h.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
