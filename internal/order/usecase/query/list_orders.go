package query

import (
	"fmt"

	"github.com/neonshop/commerce-core/internal/order/domain"
	"github.com/neonshop/commerce-core/internal/query"
)

// ListOrdersQuery represents a filtered, sorted, paginated order listing.
type ListOrdersQuery struct {
	Filter        domain.OrderFilter
	Page          int
	Limit         int
	SortField     string
	SortDirection string
}

// OrderPage is one page of orders plus its metadata.
type OrderPage struct {
	Items          []domain.Order     `json:"items"`
	Pagination     query.Pagination   `json:"pagination"`
	FiltersApplied domain.OrderFilter `json:"-"`
}

// ListOrdersHandler handles order listings.
type ListOrdersHandler struct {
	repo domain.OrderRepository
}

// NewListOrdersHandler creates a new list orders handler.
func NewListOrdersHandler(repo domain.OrderRepository) *ListOrdersHandler {
	return &ListOrdersHandler{repo: repo}
}

// Handle executes the listing.
func (h *ListOrdersHandler) Handle(q ListOrdersQuery) (*OrderPage, error) {
	items, meta, err := h.repo.FindWithFilters(q.Filter, q.Page, q.Limit, q.SortField, q.SortDirection)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return &OrderPage{
		Items:          items,
		Pagination:     meta,
		FiltersApplied: q.Filter,
	}, nil
}
