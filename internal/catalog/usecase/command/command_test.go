package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neonshop/commerce-core/internal/catalog/domain"
	"github.com/neonshop/commerce-core/internal/catalog/repository"
	"github.com/neonshop/commerce-core/internal/storage"
	"github.com/neonshop/commerce-core/internal/validation"
)

func newTestRepo(t *testing.T) domain.ProductRepository {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	repo, err := repository.NewFileProductRepository(store)
	require.NoError(t, err)
	return repo
}

func strptr(v string) *string    { return &v }
func f64ptr(v float64) *float64 { return &v }

func TestCreateProductDefaultsToActive(t *testing.T) {
	repo := newTestRepo(t)

	product, err := NewCreateProductHandler(repo).Handle(CreateProductCommand{
		Name:  "Neon Lamp",
		Price: 50,
	})

	require.NoError(t, err)
	assert.True(t, product.Active)
	assert.NotZero(t, product.ID)
}

func TestCreateProductSurfacesAllValidationProblems(t *testing.T) {
	repo := newTestRepo(t)

	_, err := NewCreateProductHandler(repo).Handle(CreateProductCommand{
		Name:          "",
		Price:         -10,
		StockQuantity: -1,
	})

	verrs, ok := validation.AsErrors(err)
	require.True(t, ok)
	assert.Contains(t, verrs, "name")
	assert.Contains(t, verrs, "price")
	assert.Contains(t, verrs, "stock_quantity")
}

func TestUpdateProductPreservesUntouchedFields(t *testing.T) {
	repo := newTestRepo(t)
	created, err := NewCreateProductHandler(repo).Handle(CreateProductCommand{
		Name:          "Neon Lamp",
		Description:   "A bright lamp",
		Category:      "lighting",
		Price:         50,
		StockQuantity: 5,
		Tags:          []string{"neon"},
	})
	require.NoError(t, err)

	updated, err := NewUpdateProductHandler(repo).Handle(UpdateProductCommand{
		ID:    created.ID,
		Price: f64ptr(60),
	})

	require.NoError(t, err)
	assert.Equal(t, 60.0, updated.Price)
	assert.Equal(t, "Neon Lamp", updated.Name)
	assert.Equal(t, "A bright lamp", updated.Description)
	assert.Equal(t, "lighting", updated.Category)
	assert.Equal(t, 5, updated.StockQuantity)
	assert.Equal(t, []string{"neon"}, updated.Tags)
}

func TestUpdateProductClearSale(t *testing.T) {
	repo := newTestRepo(t)
	created, err := NewCreateProductHandler(repo).Handle(CreateProductCommand{
		Name:      "Neon Lamp",
		Price:     50,
		SalePrice: f64ptr(30),
	})
	require.NoError(t, err)
	require.True(t, created.OnSale())

	updated, err := NewUpdateProductHandler(repo).Handle(UpdateProductCommand{
		ID:        created.ID,
		ClearSale: true,
	})

	require.NoError(t, err)
	assert.Nil(t, updated.SalePrice)
	assert.False(t, updated.OnSale())
}

func TestUpdateMissingProduct(t *testing.T) {
	repo := newTestRepo(t)

	_, err := NewUpdateProductHandler(repo).Handle(UpdateProductCommand{
		ID:   42,
		Name: strptr("Ghost"),
	})

	assert.ErrorIs(t, err, storage.ErrNotFound)
}
