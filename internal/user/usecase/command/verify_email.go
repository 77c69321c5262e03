package command

import (
	"context"

	"github.com/neonshop/commerce-core/internal/user/domain"
	"github.com/neonshop/commerce-core/internal/validation"
	"github.com/neonshop/commerce-core/pkg/logger"
)

// VerifyEmailCommand confirms an account's email address with the token
// issued at registration.
type VerifyEmailCommand struct {
	UserID uint
	Token  string
}

// VerifyEmailHandler handles email verification.
type VerifyEmailHandler struct {
	repo domain.UserRepository
}

// NewVerifyEmailHandler creates a new verify email handler.
func NewVerifyEmailHandler(repo domain.UserRepository) *VerifyEmailHandler {
	return &VerifyEmailHandler{repo: repo}
}

// Handle executes the verification. The token is single-use: a
// successful verification clears it. Verifying an already verified
// account is a no-op.
func (h *VerifyEmailHandler) Handle(ctx context.Context, cmd VerifyEmailCommand) (*domain.User, error) {
	verrs := validation.Errors{}
	if cmd.UserID == 0 {
		verrs.Add("user_id", "is required")
	}
	if cmd.Token == "" {
		verrs.Add("token", "is required")
	}
	if err := verrs.Err(); err != nil {
		return nil, err
	}

	user, err := h.repo.FindByID(cmd.UserID)
	if err != nil {
		return nil, err
	}
	if user.EmailVerified {
		return user, nil
	}
	if user.EmailVerificationToken == "" || user.EmailVerificationToken != cmd.Token {
		return nil, validation.Errors{"token": "does not match"}
	}

	user.EmailVerified = true
	user.EmailVerificationToken = ""
	if err := h.repo.Update(user); err != nil {
		return nil, err
	}

	logger.Info(ctx).Uint("user_id", user.ID).Msg("Email verified")
	return user, nil
}
