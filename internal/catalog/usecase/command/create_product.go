package command

import (
	"fmt"

	"github.com/neonshop/commerce-core/internal/catalog/domain"
)

// CreateProductCommand represents the command to create a product.
type CreateProductCommand struct {
	Name          string
	Description   string
	Category      string
	Price         float64
	SalePrice     *float64
	StockQuantity int
	ImageURL      string
	Gallery       []string
	Tags          []string
	Featured      bool
	Active        *bool // defaults to true
}

// CreateProductHandler handles product creation.
type CreateProductHandler struct {
	repo domain.ProductRepository
}

// NewCreateProductHandler creates a new create product handler.
func NewCreateProductHandler(repo domain.ProductRepository) *CreateProductHandler {
	return &CreateProductHandler{repo: repo}
}

// Handle executes the create product command. The repository validates
// the product and reports every invalid field before anything is
// written.
func (h *CreateProductHandler) Handle(cmd CreateProductCommand) (*domain.Product, error) {
	active := true
	if cmd.Active != nil {
		active = *cmd.Active
	}

	product := &domain.Product{
		Name:          cmd.Name,
		Description:   cmd.Description,
		Category:      cmd.Category,
		Price:         cmd.Price,
		SalePrice:     cmd.SalePrice,
		StockQuantity: cmd.StockQuantity,
		ImageURL:      cmd.ImageURL,
		Gallery:       cmd.Gallery,
		Tags:          cmd.Tags,
		Featured:      cmd.Featured,
		Active:        active,
	}

	if err := h.repo.Create(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}
