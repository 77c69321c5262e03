package query

import (
	"fmt"

	"github.com/neonshop/commerce-core/internal/catalog/domain"
)

// BestSellersQuery lists active products by descending sales count.
type BestSellersQuery struct {
	Limit int
}

// BestSellersHandler is a fixed filter+sort recipe over the listing
// engine.
type BestSellersHandler struct {
	repo domain.ProductRepository
}

// NewBestSellersHandler creates a new best sellers handler.
func NewBestSellersHandler(repo domain.ProductRepository) *BestSellersHandler {
	return &BestSellersHandler{repo: repo}
}

// Handle executes the best sellers listing.
func (h *BestSellersHandler) Handle(q BestSellersQuery) ([]domain.Product, error) {
	yes := true
	filter := domain.ProductFilter{Active: &yes}

	items, _, err := h.repo.FindWithFilters(filter, 1, q.Limit, "sales_count", "desc")
	if err != nil {
		return nil, fmt.Errorf("failed to list best sellers: %w", err)
	}
	return items, nil
}
