package command

import (
	"fmt"

	"github.com/neonshop/commerce-core/internal/catalog/domain"
	"github.com/neonshop/commerce-core/internal/validation"
)

// UpdateProductCommand represents a partial product update. Nil fields
// are preserved, not cleared.
type UpdateProductCommand struct {
	ID            uint
	Name          *string
	Description   *string
	Category      *string
	Price         *float64
	SalePrice     *float64
	ClearSale     bool
	StockQuantity *int
	ImageURL      *string
	Gallery       []string
	Tags          []string
	Featured      *bool
	Active        *bool
}

// UpdateProductHandler handles product updates.
type UpdateProductHandler struct {
	repo domain.ProductRepository
}

// NewUpdateProductHandler creates a new update product handler.
func NewUpdateProductHandler(repo domain.ProductRepository) *UpdateProductHandler {
	return &UpdateProductHandler{repo: repo}
}

// Handle merges the provided fields over the stored product and saves it.
func (h *UpdateProductHandler) Handle(cmd UpdateProductCommand) (*domain.Product, error) {
	if cmd.ID == 0 {
		return nil, validation.Errors{"id": "is required"}
	}

	product, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != nil {
		product.Name = *cmd.Name
	}
	if cmd.Description != nil {
		product.Description = *cmd.Description
	}
	if cmd.Category != nil {
		product.Category = *cmd.Category
	}
	if cmd.Price != nil {
		product.Price = *cmd.Price
	}
	if cmd.SalePrice != nil {
		product.SalePrice = cmd.SalePrice
	}
	if cmd.ClearSale {
		product.SalePrice = nil
	}
	if cmd.StockQuantity != nil {
		product.StockQuantity = *cmd.StockQuantity
	}
	if cmd.ImageURL != nil {
		product.ImageURL = *cmd.ImageURL
	}
	if cmd.Gallery != nil {
		product.Gallery = cmd.Gallery
	}
	if cmd.Tags != nil {
		product.Tags = cmd.Tags
	}
	if cmd.Featured != nil {
		product.Featured = *cmd.Featured
	}
	if cmd.Active != nil {
		product.Active = *cmd.Active
	}

	if err := h.repo.Update(product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}
