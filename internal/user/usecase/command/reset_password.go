package command

import (
	"context"
	"fmt"
	"time"

	"github.com/neonshop/commerce-core/internal/user/domain"
	"github.com/neonshop/commerce-core/internal/validation"
	"github.com/neonshop/commerce-core/pkg/auth"
	"github.com/neonshop/commerce-core/pkg/logger"
)

// ResetPasswordCommand redeems a reset token for a new password.
type ResetPasswordCommand struct {
	Email       string
	Token       string
	NewPassword string
}

// ResetPasswordHandler handles password resets.
type ResetPasswordHandler struct {
	repo domain.UserRepository
}

// NewResetPasswordHandler creates a new reset password handler.
func NewResetPasswordHandler(repo domain.UserRepository) *ResetPasswordHandler {
	return &ResetPasswordHandler{repo: repo}
}

// Handle executes the reset. A mismatched or expired token is rejected;
// a successful reset clears the token.
func (h *ResetPasswordHandler) Handle(ctx context.Context, cmd ResetPasswordCommand) error {
	verrs := validation.Errors{}
	if cmd.Email == "" {
		verrs.Add("email", "is required")
	}
	if cmd.Token == "" {
		verrs.Add("token", "is required")
	}
	if len(cmd.NewPassword) < minPasswordLength {
		verrs.Addf("new_password", "must have at least %d characters", minPasswordLength)
	}
	if err := verrs.Err(); err != nil {
		return err
	}

	user, err := h.repo.FindByEmail(cmd.Email)
	if err != nil {
		return err
	}
	if !user.CanResetPassword(cmd.Token, time.Now().UTC()) {
		return validation.Errors{"token": "is invalid or expired"}
	}

	hash, err := auth.HashPassword(cmd.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = hash
	user.PasswordResetToken = ""
	user.PasswordResetExpires = nil
	if err := h.repo.Update(user); err != nil {
		return err
	}

	logger.Info(ctx).Uint("user_id", user.ID).Msg("Password reset")
	return nil
}
