package query

import (
	"github.com/neonshop/commerce-core/internal/catalog/domain"
	"github.com/neonshop/commerce-core/internal/validation"
)

// GetProductQuery represents the query to fetch one product.
type GetProductQuery struct {
	ID uint

	// RecordView bumps the product's view counter on success.
	RecordView bool
}

// GetProductHandler handles single product lookups.
type GetProductHandler struct {
	repo domain.ProductRepository
}

// NewGetProductHandler creates a new get product handler.
func NewGetProductHandler(repo domain.ProductRepository) *GetProductHandler {
	return &GetProductHandler{repo: repo}
}

// Handle executes the get product query. A miss surfaces as
// storage.ErrNotFound, never a panic.
func (h *GetProductHandler) Handle(q GetProductQuery) (*domain.Product, error) {
	if q.ID == 0 {
		return nil, validation.Errors{"id": "is required"}
	}

	product, err := h.repo.FindByID(q.ID)
	if err != nil {
		return nil, err
	}

	if q.RecordView {
		// View counting is best effort; a failed bump never fails the read.
		if err := h.repo.RecordView(q.ID); err == nil {
			product.ViewsCount++
		}
	}

	return product, nil
}
