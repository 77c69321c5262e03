package command

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/neonshop/commerce-core/internal/storage"
	"github.com/neonshop/commerce-core/internal/user/domain"
	"github.com/neonshop/commerce-core/internal/validation"
	"github.com/neonshop/commerce-core/pkg/logger"
)

// passwordResetTTL bounds how long a reset token stays redeemable.
const passwordResetTTL = 2 * time.Hour

// RequestPasswordResetCommand issues a password reset token.
type RequestPasswordResetCommand struct {
	Email string
}

// RequestPasswordResetHandler handles reset token issuance.
type RequestPasswordResetHandler struct {
	repo domain.UserRepository
}

// NewRequestPasswordResetHandler creates a new request password reset
// handler.
func NewRequestPasswordResetHandler(repo domain.UserRepository) *RequestPasswordResetHandler {
	return &RequestPasswordResetHandler{repo: repo}
}

// Handle issues a fresh token and returns it for delivery. An unknown
// email yields an empty token and no error, so callers cannot probe
// which addresses are registered.
func (h *RequestPasswordResetHandler) Handle(ctx context.Context, cmd RequestPasswordResetCommand) (string, error) {
	if cmd.Email == "" {
		return "", validation.Errors{"email": "is required"}
	}

	user, err := h.repo.FindByEmail(cmd.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", nil
		}
		return "", err
	}

	token := uuid.NewString()
	expires := time.Now().UTC().Add(passwordResetTTL)
	user.PasswordResetToken = token
	user.PasswordResetExpires = &expires

	if err := h.repo.Update(user); err != nil {
		return "", err
	}

	logger.Info(ctx).Uint("user_id", user.ID).Msg("Password reset requested")
	return token, nil
}
