package command

import (
	"context"

	"github.com/neonshop/commerce-core/internal/user/domain"
	"github.com/neonshop/commerce-core/internal/validation"
	"github.com/neonshop/commerce-core/pkg/logger"
)

// DeleteUserCommand removes an account.
type DeleteUserCommand struct {
	UserID uint
}

// DeleteUserHandler handles account removal.
type DeleteUserHandler struct {
	repo domain.UserRepository
}

// NewDeleteUserHandler creates a new delete user handler.
func NewDeleteUserHandler(repo domain.UserRepository) *DeleteUserHandler {
	return &DeleteUserHandler{repo: repo}
}

// Handle executes the deletion.
func (h *DeleteUserHandler) Handle(ctx context.Context, cmd DeleteUserCommand) error {
	if cmd.UserID == 0 {
		return validation.Errors{"user_id": "is required"}
	}

	if err := h.repo.Delete(cmd.UserID); err != nil {
		return err
	}

	logger.Info(ctx).Uint("user_id", cmd.UserID).Msg("User deleted")
	return nil
}
