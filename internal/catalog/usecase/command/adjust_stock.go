package command

import (
	"fmt"

	"github.com/neonshop/commerce-core/internal/catalog/domain"
	"github.com/neonshop/commerce-core/internal/validation"
)

// AdjustStockCommand applies a signed delta to a product's stock.
type AdjustStockCommand struct {
	ProductID uint
	Delta     int
}

// AdjustStockHandler handles stock adjustments.
type AdjustStockHandler struct {
	repo domain.ProductRepository
}

// NewAdjustStockHandler creates a new adjust stock handler.
func NewAdjustStockHandler(repo domain.ProductRepository) *AdjustStockHandler {
	return &AdjustStockHandler{repo: repo}
}

// Handle executes the stock adjustment. Decrements that would drive the
// quantity below zero fail and leave the stored value unchanged.
func (h *AdjustStockHandler) Handle(cmd AdjustStockCommand) (*domain.Product, error) {
	verrs := validation.Errors{}
	if cmd.ProductID == 0 {
		verrs.Add("product_id", "is required")
	}
	if cmd.Delta == 0 {
		verrs.Add("delta", "must be non-zero")
	}
	if err := verrs.Err(); err != nil {
		return nil, err
	}

	product, err := h.repo.AdjustStock(cmd.ProductID, cmd.Delta)
	if err != nil {
		return nil, fmt.Errorf("failed to adjust stock: %w", err)
	}
	return product, nil
}
