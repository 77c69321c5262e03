package query

import (
	"fmt"

	"github.com/neonshop/commerce-core/internal/user/domain"
)

// GetStatsHandler handles user base statistics.
type GetStatsHandler struct {
	repo domain.UserRepository
}

// NewGetStatsHandler creates a new get stats handler.
func NewGetStatsHandler(repo domain.UserRepository) *GetStatsHandler {
	return &GetStatsHandler{repo: repo}
}

// Handle executes the stats read.
func (h *GetStatsHandler) Handle() (*domain.UserStats, error) {
	stats, err := h.repo.Stats()
	if err != nil {
		return nil, fmt.Errorf("failed to get user stats: %w", err)
	}
	return stats, nil
}
