package query

import (
	"github.com/neonshop/commerce-core/internal/user/domain"
	"github.com/neonshop/commerce-core/internal/validation"
)

// GetUserQuery fetches one user by id or email.
type GetUserQuery struct {
	UserID uint
	Email  string
}

// GetUserHandler handles single-user reads.
type GetUserHandler struct {
	repo domain.UserRepository
}

// NewGetUserHandler creates a new get user handler.
func NewGetUserHandler(repo domain.UserRepository) *GetUserHandler {
	return &GetUserHandler{repo: repo}
}

// Handle executes the read. The id wins when both keys are set.
func (h *GetUserHandler) Handle(q GetUserQuery) (*domain.User, error) {
	switch {
	case q.UserID != 0:
		return h.repo.FindByID(q.UserID)
	case q.Email != "":
		return h.repo.FindByEmail(q.Email)
	default:
		return nil, validation.Errors{"user_id": "either user_id or email is required"}
	}
}
