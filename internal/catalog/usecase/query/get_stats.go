package query

import (
	"fmt"

	"github.com/neonshop/commerce-core/internal/catalog/domain"
)

// GetStatsQuery represents the query to get catalog statistics.
type GetStatsQuery struct{}

// GetStatsHandler handles catalog statistics.
type GetStatsHandler struct {
	repo domain.ProductRepository
}

// NewGetStatsHandler creates a new get stats handler.
func NewGetStatsHandler(repo domain.ProductRepository) *GetStatsHandler {
	return &GetStatsHandler{repo: repo}
}

// Handle executes the stats query.
func (h *GetStatsHandler) Handle(q GetStatsQuery) (*domain.ProductStats, error) {
	stats, err := h.repo.Stats()
	if err != nil {
		return nil, fmt.Errorf("failed to get product stats: %w", err)
	}
	return stats, nil
}
