package query

import (
	"fmt"
	"sort"

	"github.com/neonshop/commerce-core/internal/catalog/domain"
)

// ListCategoriesQuery aggregates product counts per category.
type ListCategoriesQuery struct{}

// CategoryCount is one category with its product count.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// ListCategoriesHandler handles category aggregation.
type ListCategoriesHandler struct {
	repo domain.ProductRepository
}

// NewListCategoriesHandler creates a new list categories handler.
func NewListCategoriesHandler(repo domain.ProductRepository) *ListCategoriesHandler {
	return &ListCategoriesHandler{repo: repo}
}

// Handle returns the categories alphabetically with their counts.
func (h *ListCategoriesHandler) Handle(q ListCategoriesQuery) ([]CategoryCount, error) {
	counts, err := h.repo.CountByCategory()
	if err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}

	out := make([]CategoryCount, 0, len(counts))
	for category, count := range counts {
		out = append(out, CategoryCount{Category: category, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out, nil
}
