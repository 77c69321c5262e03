package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/neonshop/commerce-core/internal/user/domain"
	"github.com/neonshop/commerce-core/internal/validation"
	"github.com/neonshop/commerce-core/pkg/auth"
	"github.com/neonshop/commerce-core/pkg/logger"
)

const minPasswordLength = 8

// RegisterUserCommand creates a new customer account.
type RegisterUserCommand struct {
	Name      string
	Email     string
	Password  string
	Phone     string
	CPF       string
	BirthDate *time.Time
}

// RegisterUserHandler handles account registration.
type RegisterUserHandler struct {
	repo domain.UserRepository
}

// NewRegisterUserHandler creates a new register user handler.
func NewRegisterUserHandler(repo domain.UserRepository) *RegisterUserHandler {
	return &RegisterUserHandler{repo: repo}
}

// Handle executes the registration. New accounts start as active,
// unverified customers holding an email verification token.
func (h *RegisterUserHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*domain.User, error) {
	if len(cmd.Password) < minPasswordLength {
		return nil, validation.Errors{
			"password": fmt.Sprintf("must have at least %d characters", minPasswordLength),
		}
	}

	hash, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Name:                   cmd.Name,
		Email:                  cmd.Email,
		PasswordHash:           hash,
		Phone:                  cmd.Phone,
		CPF:                    cmd.CPF,
		BirthDate:              cmd.BirthDate,
		Role:                   domain.RoleCustomer,
		Active:                 true,
		EmailVerificationToken: uuid.NewString(),
		Preferences:            domain.DefaultPreferences(),
	}

	if err := h.repo.Create(user); err != nil {
		return nil, err
	}

	logger.Info(ctx).Uint("user_id", user.ID).Msg("User registered")
	return user, nil
}
