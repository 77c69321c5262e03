package query

import (
	"fmt"

	"github.com/neonshop/commerce-core/internal/catalog/domain"
	"github.com/neonshop/commerce-core/internal/query"
)

// ListProductsQuery represents a filtered, sorted, paginated listing.
type ListProductsQuery struct {
	Filter        domain.ProductFilter
	Page          int
	Limit         int
	SortField     string
	SortDirection string
}

// ProductPage is the result of a listing: the page of items, its
// metadata and the filter that was applied.
type ProductPage struct {
	Items          []domain.Product     `json:"items"`
	Pagination     query.Pagination     `json:"pagination"`
	FiltersApplied domain.ProductFilter `json:"-"`
}

// ListProductsHandler handles product listings.
type ListProductsHandler struct {
	repo domain.ProductRepository
}

// NewListProductsHandler creates a new list products handler.
func NewListProductsHandler(repo domain.ProductRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle executes the listing. Filter validation happens before any
// matching; unknown sort fields fall back to the repository default.
func (h *ListProductsHandler) Handle(q ListProductsQuery) (*ProductPage, error) {
	items, meta, err := h.repo.FindWithFilters(q.Filter, q.Page, q.Limit, q.SortField, q.SortDirection)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return &ProductPage{
		Items:          items,
		Pagination:     meta,
		FiltersApplied: q.Filter,
	}, nil
}
