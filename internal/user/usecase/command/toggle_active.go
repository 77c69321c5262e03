package command

import (
	"context"

	"github.com/neonshop/commerce-core/internal/user/domain"
	"github.com/neonshop/commerce-core/internal/validation"
	"github.com/neonshop/commerce-core/pkg/logger"
)

// ToggleActiveCommand activates or deactivates an account.
type ToggleActiveCommand struct {
	UserID uint
	Active bool
}

// ToggleActiveHandler handles account activation state.
type ToggleActiveHandler struct {
	repo domain.UserRepository
}

// NewToggleActiveHandler creates a new toggle active handler.
func NewToggleActiveHandler(repo domain.UserRepository) *ToggleActiveHandler {
	return &ToggleActiveHandler{repo: repo}
}

// Handle executes the state change. Setting the current state again is
// a no-op.
func (h *ToggleActiveHandler) Handle(ctx context.Context, cmd ToggleActiveCommand) (*domain.User, error) {
	if cmd.UserID == 0 {
		return nil, validation.Errors{"user_id": "is required"}
	}

	user, err := h.repo.FindByID(cmd.UserID)
	if err != nil {
		return nil, err
	}
	if user.Active == cmd.Active {
		return user, nil
	}

	user.Active = cmd.Active
	if err := h.repo.Update(user); err != nil {
		return nil, err
	}

	logger.Info(ctx).Uint("user_id", user.ID).Bool("active", user.Active).Msg("User activation changed")
	return user, nil
}
