package query

import (
	"fmt"

	"github.com/neonshop/commerce-core/internal/catalog/domain"
)

// FeaturedProductsQuery lists active featured products, newest first.
type FeaturedProductsQuery struct {
	Limit int
}

// FeaturedProductsHandler is a fixed filter+sort recipe over the
// listing engine.
type FeaturedProductsHandler struct {
	repo domain.ProductRepository
}

// NewFeaturedProductsHandler creates a new featured products handler.
func NewFeaturedProductsHandler(repo domain.ProductRepository) *FeaturedProductsHandler {
	return &FeaturedProductsHandler{repo: repo}
}

// Handle executes the featured listing.
func (h *FeaturedProductsHandler) Handle(q FeaturedProductsQuery) ([]domain.Product, error) {
	yes := true
	filter := domain.ProductFilter{Featured: &yes, Active: &yes}

	items, _, err := h.repo.FindWithFilters(filter, 1, q.Limit, "created_at", "desc")
	if err != nil {
		return nil, fmt.Errorf("failed to list featured products: %w", err)
	}
	return items, nil
}
