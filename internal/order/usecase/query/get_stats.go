package query

import (
	"fmt"

	"github.com/neonshop/commerce-core/internal/order/domain"
)

// GetStatsQuery summarizes orders for a day, week, month or year window.
type GetStatsQuery struct {
	Period string
}

// GetStatsHandler handles order statistics.
type GetStatsHandler struct {
	repo domain.OrderRepository
}

// NewGetStatsHandler creates a new get stats handler.
func NewGetStatsHandler(repo domain.OrderRepository) *GetStatsHandler {
	return &GetStatsHandler{repo: repo}
}

// Handle executes the stats query. An unknown period defaults to month.
func (h *GetStatsHandler) Handle(q GetStatsQuery) (*domain.OrderStats, error) {
	stats, err := h.repo.Stats(q.Period)
	if err != nil {
		return nil, fmt.Errorf("failed to get order stats: %w", err)
	}
	return stats, nil
}
