package command

import (
	"context"

	"github.com/neonshop/commerce-core/internal/user/domain"
	"github.com/neonshop/commerce-core/internal/validation"
)

// UpdatePreferencesCommand overlays settings on a user's preferences.
// Keys absent from the command keep their stored values.
type UpdatePreferencesCommand struct {
	UserID      uint
	Preferences map[string]any
}

// UpdatePreferencesHandler handles preference updates.
type UpdatePreferencesHandler struct {
	repo domain.UserRepository
}

// NewUpdatePreferencesHandler creates a new update preferences handler.
func NewUpdatePreferencesHandler(repo domain.UserRepository) *UpdatePreferencesHandler {
	return &UpdatePreferencesHandler{repo: repo}
}

// Handle executes the merge and persists.
func (h *UpdatePreferencesHandler) Handle(ctx context.Context, cmd UpdatePreferencesCommand) (*domain.User, error) {
	if cmd.UserID == 0 {
		return nil, validation.Errors{"user_id": "is required"}
	}

	user, err := h.repo.FindByID(cmd.UserID)
	if err != nil {
		return nil, err
	}

	if user.Preferences == nil {
		user.Preferences = domain.DefaultPreferences()
	}
	for k, v := range cmd.Preferences {
		user.Preferences[k] = v
	}

	if err := h.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
