package command

import (
	"context"

	"github.com/neonshop/commerce-core/internal/user/domain"
	"github.com/neonshop/commerce-core/internal/validation"
	"github.com/neonshop/commerce-core/pkg/logger"
)

// ChangeRoleCommand assigns a user a different role.
type ChangeRoleCommand struct {
	UserID uint
	Role   string
}

// ChangeRoleHandler handles role assignment.
type ChangeRoleHandler struct {
	repo domain.UserRepository
}

// NewChangeRoleHandler creates a new change role handler.
func NewChangeRoleHandler(repo domain.UserRepository) *ChangeRoleHandler {
	return &ChangeRoleHandler{repo: repo}
}

// Handle executes the role change.
func (h *ChangeRoleHandler) Handle(ctx context.Context, cmd ChangeRoleCommand) (*domain.User, error) {
	verrs := validation.Errors{}
	if cmd.UserID == 0 {
		verrs.Add("user_id", "is required")
	}
	if !domain.IsValidRole(cmd.Role) {
		verrs.Add("role", "unknown role "+cmd.Role)
	}
	if err := verrs.Err(); err != nil {
		return nil, err
	}

	user, err := h.repo.FindByID(cmd.UserID)
	if err != nil {
		return nil, err
	}
	if user.Role == cmd.Role {
		return user, nil
	}

	previous := user.Role
	user.Role = cmd.Role
	if err := h.repo.Update(user); err != nil {
		return nil, err
	}

	logger.Info(ctx).
		Uint("user_id", user.ID).
		Str("from", previous).
		Str("to", user.Role).
		Msg("User role changed")
	return user, nil
}
