package query

import (
	"github.com/neonshop/commerce-core/internal/query"
	"github.com/neonshop/commerce-core/internal/user/domain"
)

// ListUsersQuery lists users with filtering, sorting and pagination.
type ListUsersQuery struct {
	Filter        domain.UserFilter
	Page          int
	Limit         int
	SortField     string
	SortDirection string
}

// UserPage is one page of results plus its metadata.
type UserPage struct {
	Items      []domain.User    `json:"items"`
	Pagination query.Pagination `json:"pagination"`
}

// ListUsersHandler handles user listings.
type ListUsersHandler struct {
	repo domain.UserRepository
}

// NewListUsersHandler creates a new list users handler.
func NewListUsersHandler(repo domain.UserRepository) *ListUsersHandler {
	return &ListUsersHandler{repo: repo}
}

// Handle executes the listing.
func (h *ListUsersHandler) Handle(q ListUsersQuery) (*UserPage, error) {
	items, pagination, err := h.repo.FindWithFilters(q.Filter, q.Page, q.Limit, q.SortField, q.SortDirection)
	if err != nil {
		return nil, err
	}
	return &UserPage{Items: items, Pagination: pagination}, nil
}
