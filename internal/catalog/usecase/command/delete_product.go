package command

import (
	"fmt"

	"github.com/neonshop/commerce-core/internal/catalog/domain"
	"github.com/neonshop/commerce-core/internal/validation"
)

// DeleteProductCommand represents the command to delete a product.
type DeleteProductCommand struct {
	ID uint
}

// DeleteProductHandler handles product deletion.
type DeleteProductHandler struct {
	repo domain.ProductRepository
}

// NewDeleteProductHandler creates a new delete product handler.
func NewDeleteProductHandler(repo domain.ProductRepository) *DeleteProductHandler {
	return &DeleteProductHandler{repo: repo}
}

// Handle executes the delete product command.
func (h *DeleteProductHandler) Handle(cmd DeleteProductCommand) error {
	if cmd.ID == 0 {
		return validation.Errors{"id": "is required"}
	}

	if err := h.repo.Delete(cmd.ID); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}
