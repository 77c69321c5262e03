package command

import (
	"context"
	"errors"
	"time"

	"github.com/neonshop/commerce-core/internal/storage"
	"github.com/neonshop/commerce-core/internal/user/domain"
	"github.com/neonshop/commerce-core/internal/validation"
	"github.com/neonshop/commerce-core/pkg/auth"
	"github.com/neonshop/commerce-core/pkg/logger"
)

// ErrInvalidCredentials is returned on any authentication failure. The
// caller cannot tell an unknown email from a wrong password.
var ErrInvalidCredentials = errors.New("invalid email or password")

// LoginUserCommand authenticates a user.
type LoginUserCommand struct {
	Email    string
	Password string
}

// LoginResult carries the authenticated user and a signed token.
type LoginResult struct {
	User  *domain.User
	Token string
}

// LoginUserHandler handles authentication.
type LoginUserHandler struct {
	repo domain.UserRepository
}

// NewLoginUserHandler creates a new login handler.
func NewLoginUserHandler(repo domain.UserRepository) *LoginUserHandler {
	return &LoginUserHandler{repo: repo}
}

// Handle executes the login: password check, last-login stamp, token.
func (h *LoginUserHandler) Handle(ctx context.Context, cmd LoginUserCommand) (*LoginResult, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, validation.Errors{"credentials": "email and password are required"}
	}

	user, err := h.repo.FindByEmail(cmd.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.Active {
		return nil, ErrInvalidCredentials
	}
	if !auth.CheckPassword(user.PasswordHash, cmd.Password) {
		return nil, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	user.LastLoginAt = &now
	if err := h.repo.Update(user); err != nil {
		logger.Warn(ctx).Err(err).Uint("user_id", user.ID).Msg("Failed to stamp last login")
	}

	token, err := auth.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx).Uint("user_id", user.ID).Msg("User logged in")
	return &LoginResult{User: user, Token: token}, nil
}
