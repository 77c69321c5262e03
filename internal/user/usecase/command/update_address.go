package command

import (
	"context"

	"github.com/neonshop/commerce-core/internal/user/domain"
	"github.com/neonshop/commerce-core/internal/validation"
)

// UpdateAddressCommand replaces one saved address in place.
type UpdateAddressCommand struct {
	UserID  uint
	Address domain.UserAddress
}

// UpdateAddressHandler handles address edits.
type UpdateAddressHandler struct {
	repo domain.UserRepository
}

// NewUpdateAddressHandler creates a new update address handler.
func NewUpdateAddressHandler(repo domain.UserRepository) *UpdateAddressHandler {
	return &UpdateAddressHandler{repo: repo}
}

// Handle executes the edit. The address keeps its id; flagging it
// primary demotes the current primary.
func (h *UpdateAddressHandler) Handle(ctx context.Context, cmd UpdateAddressCommand) (*domain.User, error) {
	verrs := validation.Errors{}
	if cmd.UserID == 0 {
		verrs.Add("user_id", "is required")
	}
	if cmd.Address.ID == "" {
		verrs.Add("address_id", "is required")
	}
	if err := verrs.Err(); err != nil {
		return nil, err
	}
	if err := cmd.Address.Validate(); err != nil {
		return nil, err
	}

	user, err := h.repo.FindByID(cmd.UserID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range user.Addresses {
		if user.Addresses[i].ID == cmd.Address.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, validation.Errors{"address_id": "unknown address " + cmd.Address.ID}
	}

	user.Addresses[idx] = cmd.Address
	if cmd.Address.Primary {
		if err := user.SetPrimaryAddress(cmd.Address.ID); err != nil {
			return nil, err
		}
	}

	if err := h.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
