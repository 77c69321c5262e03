//go:build wireinject
// +build wireinject

package order

import (
	"github.com/google/wire"

	catalog "github.com/neonshop/commerce-core/internal/catalog/domain"
	"github.com/neonshop/commerce-core/internal/order/domain"
	"github.com/neonshop/commerce-core/internal/order/repository"
	"github.com/neonshop/commerce-core/internal/order/usecase/command"
	"github.com/neonshop/commerce-core/internal/order/usecase/query"
	"github.com/neonshop/commerce-core/internal/storage"
)

// ProvideOrderRepository provides the file-backed order repository.
func ProvideOrderRepository(store storage.Store) (domain.OrderRepository, error) {
	return repository.NewFileOrderRepository(store)
}

// CommandHandlers holds all order command handlers.
type CommandHandlers struct {
	CreateHandler              *command.CreateOrderHandler
	UpdateHandler              *command.UpdateOrderHandler
	UpdateStatusHandler        *command.UpdateStatusHandler
	UpdatePaymentStatusHandler *command.UpdatePaymentStatusHandler
	DeleteHandler              *command.DeleteOrderHandler
}

// QueryHandlers holds all order query handlers.
type QueryHandlers struct {
	GetHandler     *query.GetOrderHandler
	ListHandler    *query.ListOrdersHandler
	HistoryHandler *query.GetHistoryHandler
	StatsHandler   *query.GetStatsHandler
}

// ProvideCommandHandlers bundles the command handlers.
func ProvideCommandHandlers(
	createHandler *command.CreateOrderHandler,
	updateHandler *command.UpdateOrderHandler,
	updateStatusHandler *command.UpdateStatusHandler,
	updatePaymentStatusHandler *command.UpdatePaymentStatusHandler,
	deleteHandler *command.DeleteOrderHandler,
) *CommandHandlers {
	return &CommandHandlers{
		CreateHandler:              createHandler,
		UpdateHandler:              updateHandler,
		UpdateStatusHandler:        updateStatusHandler,
		UpdatePaymentStatusHandler: updatePaymentStatusHandler,
		DeleteHandler:              deleteHandler,
	}
}

// ProvideQueryHandlers bundles the query handlers.
func ProvideQueryHandlers(
	getHandler *query.GetOrderHandler,
	listHandler *query.ListOrdersHandler,
	historyHandler *query.GetHistoryHandler,
	statsHandler *query.GetStatsHandler,
) *QueryHandlers {
	return &QueryHandlers{
		GetHandler:     getHandler,
		ListHandler:    listHandler,
		HistoryHandler: historyHandler,
		StatsHandler:   statsHandler,
	}
}

// Handlers is the full order handler set.
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
	ProvideOrderRepository,
)

var CommandHandlerSet = wire.NewSet(
	command.NewCreateOrderHandler,
	command.NewUpdateOrderHandler,
	command.NewUpdateStatusHandler,
	command.NewUpdatePaymentStatusHandler,
	command.NewDeleteOrderHandler,
	ProvideCommandHandlers,
)

var QueryHandlerSet = wire.NewSet(
	query.NewGetOrderHandler,
	query.NewListOrdersHandler,
	query.NewGetHistoryHandler,
	query.NewGetStatsHandler,
	ProvideQueryHandlers,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
	ProvideHandlers,
)

// InitializeHandlers builds the order handler set over a store, the
// product repository used for line snapshots, and an optional event
// publisher.
func InitializeHandlers(store storage.Store, products catalog.ProductRepository, publisher command.EventPublisher) (*Handlers, error) {
	wire.Build(AllHandlersSet)
	return nil, nil
}
