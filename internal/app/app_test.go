package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogcmd "github.com/neonshop/commerce-core/internal/catalog/usecase/command"
	catalogqry "github.com/neonshop/commerce-core/internal/catalog/usecase/query"
	"github.com/neonshop/commerce-core/internal/config"
	orderdomain "github.com/neonshop/commerce-core/internal/order/domain"
	ordercmd "github.com/neonshop/commerce-core/internal/order/usecase/command"
	orderqry "github.com/neonshop/commerce-core/internal/order/usecase/query"
	usercmd "github.com/neonshop/commerce-core/internal/user/usecase/command"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		ServiceName:   "commerce-core-test",
		LogLevel:      "error",
		StorageDriver: config.DriverFile,
		DataDir:       t.TempDir(),
	}
}

func TestNewWithFileDriver(t *testing.T) {
	a, err := New(testConfig(t))
	require.NoError(t, err)
	defer a.Close(context.Background())

	require.NotNil(t, a.Catalog)
	require.NotNil(t, a.OrderOps)
	require.NotNil(t, a.UserOps)
}

func TestNewRejectsUnknownDriver(t *testing.T) {
	cfg := testConfig(t)
	cfg.StorageDriver = "cassette-tape"

	_, err := New(cfg)

	assert.Error(t, err)
}

func TestEndToEndOrderFlow(t *testing.T) {
	a, err := New(testConfig(t))
	require.NoError(t, err)
	defer a.Close(context.Background())

	product, err := a.Catalog.CreateProduct.Handle(catalogcmd.CreateProductCommand{
		Name:          "Neon Lamp",
		Category:      "lighting",
		Price:         50,
		StockQuantity: 10,
	})
	require.NoError(t, err)

	found, err := a.Catalog.GetProduct.Handle(catalogqry.GetProductQuery{ID: product.ID})
	require.NoError(t, err)
	assert.Equal(t, "Neon Lamp", found.Name)

	user, err := a.UserOps.Register.Handle(context.Background(), usercmd.RegisterUserCommand{
		Name:     "Ana Souza",
		Email:    "ana@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	order, err := a.OrderOps.CreateOrder.Handle(context.Background(), ordercmd.CreateOrderCommand{
		CustomerID:    user.ID,
		CustomerName:  user.Name,
		CustomerEmail: user.Email,
		ShippingAddress: orderdomain.Address{
			Street:       "Rua Augusta",
			Number:       "1500",
			Neighborhood: "Consolação",
			City:         "São Paulo",
			State:        "SP",
			ZipCode:      "01304-001",
		},
		Items:        []ordercmd.OrderItemInput{{ProductID: product.ID, Quantity: 2}},
		ShippingCost: 15,
	})
	require.NoError(t, err)

	assert.Equal(t, 115.0, order.Total)
	assert.Equal(t, "Neon Lamp", order.Items[0].ProductName)

	history, err := a.OrderOps.History.Handle(orderqry.GetHistoryQuery{OrderID: order.ID})
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, orderdomain.StatusPending, history[0].Status)
}
