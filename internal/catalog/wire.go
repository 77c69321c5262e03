//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"

	"github.com/neonshop/commerce-core/internal/catalog/domain"
	"github.com/neonshop/commerce-core/internal/catalog/repository"
	"github.com/neonshop/commerce-core/internal/catalog/usecase/command"
	"github.com/neonshop/commerce-core/internal/catalog/usecase/query"
	"github.com/neonshop/commerce-core/internal/storage"
)

// ProvideProductRepository provides the file-backed product repository.
func ProvideProductRepository(store storage.Store) (domain.ProductRepository, error) {
	return repository.NewFileProductRepository(store)
}

// CommandHandlers holds all catalog command handlers.
type CommandHandlers struct {
	CreateHandler      *command.CreateProductHandler
	UpdateHandler      *command.UpdateProductHandler
	DeleteHandler      *command.DeleteProductHandler
	AdjustStockHandler *command.AdjustStockHandler
}

// QueryHandlers holds all catalog query handlers.
type QueryHandlers struct {
	GetHandler         *query.GetProductHandler
	ListHandler        *query.ListProductsHandler
	SearchHandler      *query.SearchProductsHandler
	FeaturedHandler    *query.FeaturedProductsHandler
	OnSaleHandler      *query.OnSaleProductsHandler
	BestSellersHandler *query.BestSellersHandler
	CategoriesHandler  *query.ListCategoriesHandler
	StatsHandler       *query.GetStatsHandler
}

// ProvideCommandHandlers bundles the command handlers.
func ProvideCommandHandlers(
	createHandler *command.CreateProductHandler,
	updateHandler *command.UpdateProductHandler,
	deleteHandler *command.DeleteProductHandler,
	adjustStockHandler *command.AdjustStockHandler,
) *CommandHandlers {
	return &CommandHandlers{
		CreateHandler:      createHandler,
		UpdateHandler:      updateHandler,
		DeleteHandler:      deleteHandler,
		AdjustStockHandler: adjustStockHandler,
	}
}

// ProvideQueryHandlers bundles the query handlers.
func ProvideQueryHandlers(
	getHandler *query.GetProductHandler,
	listHandler *query.ListProductsHandler,
	searchHandler *query.SearchProductsHandler,
	featuredHandler *query.FeaturedProductsHandler,
	onSaleHandler *query.OnSaleProductsHandler,
	bestSellersHandler *query.BestSellersHandler,
	categoriesHandler *query.ListCategoriesHandler,
	statsHandler *query.GetStatsHandler,
) *QueryHandlers {
	return &QueryHandlers{
		GetHandler:         getHandler,
		ListHandler:        listHandler,
		SearchHandler:      searchHandler,
		FeaturedHandler:    featuredHandler,
		OnSaleHandler:      onSaleHandler,
		BestSellersHandler: bestSellersHandler,
		CategoriesHandler:  categoriesHandler,
		StatsHandler:       statsHandler,
	}
}

// Handlers is the full catalog handler set.
type Handlers struct {
	Commands *CommandHandlers
	Queries  *QueryHandlers
}

// ProvideHandlers bundles both handler sets.
func ProvideHandlers(commands *CommandHandlers, queries *QueryHandlers) *Handlers {
	return &Handlers{Commands: commands, Queries: queries}
}

// Wire sets.
var RepositorySet = wire.NewSet(
	ProvideProductRepository,
)

var CommandHandlerSet = wire.NewSet(
	command.NewCreateProductHandler,
	command.NewUpdateProductHandler,
	command.NewDeleteProductHandler,
	command.NewAdjustStockHandler,
	ProvideCommandHandlers,
)

var QueryHandlerSet = wire.NewSet(
	query.NewGetProductHandler,
	query.NewListProductsHandler,
	query.NewSearchProductsHandler,
	query.NewFeaturedProductsHandler,
	query.NewOnSaleProductsHandler,
	query.NewBestSellersHandler,
	query.NewListCategoriesHandler,
	query.NewGetStatsHandler,
	ProvideQueryHandlers,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
	ProvideHandlers,
)

// InitializeHandlers builds the catalog handler set over a store.
func InitializeHandlers(store storage.Store) (*Handlers, error) {
	wire.Build(AllHandlersSet)
	return nil, nil
}
