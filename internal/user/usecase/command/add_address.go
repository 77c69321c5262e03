package command

import (
	"context"

	"github.com/google/uuid"

	"github.com/neonshop/commerce-core/internal/user/domain"
	"github.com/neonshop/commerce-core/internal/validation"
)

// AddAddressCommand appends an address to a user's address book.
type AddAddressCommand struct {
	UserID  uint
	Address domain.UserAddress
}

// AddAddressHandler handles address creation.
type AddAddressHandler struct {
	repo domain.UserRepository
}

// NewAddAddressHandler creates a new add address handler.
func NewAddAddressHandler(repo domain.UserRepository) *AddAddressHandler {
	return &AddAddressHandler{repo: repo}
}

// Handle executes the append. The first address becomes primary
// automatically; flagging a later one primary demotes the current one.
func (h *AddAddressHandler) Handle(ctx context.Context, cmd AddAddressCommand) (*domain.User, error) {
	if cmd.UserID == 0 {
		return nil, validation.Errors{"user_id": "is required"}
	}
	if err := cmd.Address.Validate(); err != nil {
		return nil, err
	}

	user, err := h.repo.FindByID(cmd.UserID)
	if err != nil {
		return nil, err
	}

	address := cmd.Address
	address.ID = uuid.NewString()
	if len(user.Addresses) == 0 {
		address.Primary = true
	}

	user.Addresses = append(user.Addresses, address)
	if address.Primary {
		if err := user.SetPrimaryAddress(address.ID); err != nil {
			return nil, err
		}
	}

	if err := h.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
