package command

import (
	"context"
	"time"

	"github.com/neonshop/commerce-core/internal/user/domain"
	"github.com/neonshop/commerce-core/internal/validation"
)

// UpdateUserCommand applies a partial profile update. Nil fields keep
// their current values.
type UpdateUserCommand struct {
	UserID    uint
	Name      *string
	Email     *string
	Phone     *string
	CPF       *string
	BirthDate *time.Time
}

// UpdateUserHandler handles profile updates.
type UpdateUserHandler struct {
	repo domain.UserRepository
}

// NewUpdateUserHandler creates a new update user handler.
func NewUpdateUserHandler(repo domain.UserRepository) *UpdateUserHandler {
	return &UpdateUserHandler{repo: repo}
}

// Handle executes the update with load-merge-save semantics.
func (h *UpdateUserHandler) Handle(ctx context.Context, cmd UpdateUserCommand) (*domain.User, error) {
	if cmd.UserID == 0 {
		return nil, validation.Errors{"user_id": "is required"}
	}

	user, err := h.repo.FindByID(cmd.UserID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != nil {
		user.Name = *cmd.Name
	}
	if cmd.Email != nil {
		user.Email = *cmd.Email
	}
	if cmd.Phone != nil {
		user.Phone = *cmd.Phone
	}
	if cmd.CPF != nil {
		user.CPF = *cmd.CPF
	}
	if cmd.BirthDate != nil {
		user.BirthDate = cmd.BirthDate
	}

	if err := h.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
