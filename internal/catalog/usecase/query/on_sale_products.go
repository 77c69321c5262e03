package query

import (
	"fmt"

	"github.com/neonshop/commerce-core/internal/catalog/domain"
)

// OnSaleProductsQuery lists active discounted products, cheapest first.
type OnSaleProductsQuery struct {
	Limit int
}

// OnSaleProductsHandler is a fixed filter+sort recipe over the listing
// engine.
type OnSaleProductsHandler struct {
	repo domain.ProductRepository
}

// NewOnSaleProductsHandler creates a new on-sale products handler.
func NewOnSaleProductsHandler(repo domain.ProductRepository) *OnSaleProductsHandler {
	return &OnSaleProductsHandler{repo: repo}
}

// Handle executes the on-sale listing.
func (h *OnSaleProductsHandler) Handle(q OnSaleProductsQuery) ([]domain.Product, error) {
	yes := true
	filter := domain.ProductFilter{OnSale: &yes, Active: &yes}

	items, _, err := h.repo.FindWithFilters(filter, 1, q.Limit, "price", "asc")
	if err != nil {
		return nil, fmt.Errorf("failed to list on-sale products: %w", err)
	}
	return items, nil
}
