package query

import (
	"fmt"
	"strings"

	"github.com/neonshop/commerce-core/internal/catalog/domain"
	"github.com/neonshop/commerce-core/internal/validation"
)

// SearchProductsQuery represents a relevance-ranked product search.
type SearchProductsQuery struct {
	Term  string
	Limit int
}

// SearchProductsHandler handles relevance search.
type SearchProductsHandler struct {
	repo domain.ProductRepository
}

// NewSearchProductsHandler creates a new search products handler.
func NewSearchProductsHandler(repo domain.ProductRepository) *SearchProductsHandler {
	return &SearchProductsHandler{repo: repo}
}

// Handle executes the search. Results are ordered by descending score,
// not by the generic sort engine.
func (h *SearchProductsHandler) Handle(q SearchProductsQuery) ([]domain.Product, error) {
	if strings.TrimSpace(q.Term) == "" {
		return nil, validation.Errors{"term": "is required"}
	}

	products, err := h.repo.Search(q.Term, q.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return products, nil
}
