package command

import (
	"context"

	"github.com/neonshop/commerce-core/internal/user/domain"
	"github.com/neonshop/commerce-core/internal/validation"
)

// RemoveAddressCommand deletes one saved address.
type RemoveAddressCommand struct {
	UserID    uint
	AddressID string
}

// RemoveAddressHandler handles address removal.
type RemoveAddressHandler struct {
	repo domain.UserRepository
}

// NewRemoveAddressHandler creates a new remove address handler.
func NewRemoveAddressHandler(repo domain.UserRepository) *RemoveAddressHandler {
	return &RemoveAddressHandler{repo: repo}
}

// Handle executes the removal. When the primary address goes away the
// first remaining address is promoted.
func (h *RemoveAddressHandler) Handle(ctx context.Context, cmd RemoveAddressCommand) (*domain.User, error) {
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

	idx := -1
	for i := range user.Addresses {
		if user.Addresses[i].ID == cmd.AddressID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, validation.Errors{"address_id": "unknown address " + cmd.AddressID}
	}

	wasPrimary := user.Addresses[idx].Primary
	user.Addresses = append(user.Addresses[:idx], user.Addresses[idx+1:]...)
	if wasPrimary && len(user.Addresses) > 0 {
		user.Addresses[0].Primary = true
	}

	if err := h.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
