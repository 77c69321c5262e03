package app

import (
	"context"
	"database/sql"
	"fmt"

	"go.opentelemetry.io/otel/trace"

	catalogrepo "github.com/neonshop/commerce-core/internal/catalog/repository"
	catalogcmd "github.com/neonshop/commerce-core/internal/catalog/usecase/command"
	catalogqry "github.com/neonshop/commerce-core/internal/catalog/usecase/query"
	"github.com/neonshop/commerce-core/internal/config"
	orderrepo "github.com/neonshop/commerce-core/internal/order/repository"
	ordercmd "github.com/neonshop/commerce-core/internal/order/usecase/command"
	orderqry "github.com/neonshop/commerce-core/internal/order/usecase/query"
	"github.com/neonshop/commerce-core/internal/storage"
	userrepo "github.com/neonshop/commerce-core/internal/user/repository"
	usercmd "github.com/neonshop/commerce-core/internal/user/usecase/command"
	userqry "github.com/neonshop/commerce-core/internal/user/usecase/query"
	"github.com/neonshop/commerce-core/kafka"
	"github.com/neonshop/commerce-core/pkg/database"
	"github.com/neonshop/commerce-core/pkg/logger"
	"github.com/neonshop/commerce-core/pkg/tracing"
)

// CatalogHandlers bundles the catalog use cases.
type CatalogHandlers struct {
	CreateProduct    *catalogcmd.CreateProductHandler
	UpdateProduct    *catalogcmd.UpdateProductHandler
	DeleteProduct    *catalogcmd.DeleteProductHandler
	AdjustStock      *catalogcmd.AdjustStockHandler
	GetProduct       *catalogqry.GetProductHandler
	ListProducts     *catalogqry.ListProductsHandler
	SearchProducts   *catalogqry.SearchProductsHandler
	FeaturedProducts *catalogqry.FeaturedProductsHandler
	OnSaleProducts   *catalogqry.OnSaleProductsHandler
	BestSellers      *catalogqry.BestSellersHandler
	ListCategories   *catalogqry.ListCategoriesHandler
	Stats            *catalogqry.GetStatsHandler
}

// OrderHandlers bundles the order use cases.
type OrderHandlers struct {
	CreateOrder         *ordercmd.CreateOrderHandler
	UpdateOrder         *ordercmd.UpdateOrderHandler
	UpdateStatus        *ordercmd.UpdateStatusHandler
	UpdatePaymentStatus *ordercmd.UpdatePaymentStatusHandler
	DeleteOrder         *ordercmd.DeleteOrderHandler
	GetOrder            *orderqry.GetOrderHandler
	ListOrders          *orderqry.ListOrdersHandler
	History             *orderqry.GetHistoryHandler
	Stats               *orderqry.GetStatsHandler
}

// UserHandlers bundles the user use cases.
type UserHandlers struct {
	Register             *usercmd.RegisterUserHandler
	Login                *usercmd.LoginUserHandler
	UpdateUser           *usercmd.UpdateUserHandler
	DeleteUser           *usercmd.DeleteUserHandler
	ChangeRole           *usercmd.ChangeRoleHandler
	ToggleActive         *usercmd.ToggleActiveHandler
	VerifyEmail          *usercmd.VerifyEmailHandler
	RequestPasswordReset *usercmd.RequestPasswordResetHandler
	ResetPassword        *usercmd.ResetPasswordHandler
	AddAddress           *usercmd.AddAddressHandler
	UpdateAddress        *usercmd.UpdateAddressHandler
	RemoveAddress        *usercmd.RemoveAddressHandler
	SetPrimaryAddress    *usercmd.SetPrimaryAddressHandler
	UpdatePreferences    *usercmd.UpdatePreferencesHandler
	GetUser              *userqry.GetUserHandler
	ListUsers            *userqry.ListUsersHandler
	Stats                *userqry.GetStatsHandler
}

// App is the composition root. It owns the store, the repositories, the
// use case handlers and the optional messaging and tracing plumbing.
type App struct {
	cfg *config.Config

	db             *sql.DB
	tracerProvider trace.TracerProvider
	publisher      *kafka.Publisher
	consumer       *kafka.Consumer

	Store    storage.Store
	Products *catalogrepo.TracedProductRepository
	Orders   *orderrepo.TracedOrderRepository
	Users    *userrepo.TracedUserRepository

	Catalog  *CatalogHandlers
	OrderOps *OrderHandlers
	UserOps  *UserHandlers
}

// New builds the application from configuration: logger, tracer, store,
// repositories, handlers and, when enabled, the Kafka pipeline.
func New(cfg *config.Config) (*App, error) {
	logger.Init(cfg.ServiceName, cfg.IsDevelopment)
	logger.SetLevel(cfg.LogLevel)

	a := &App{cfg: cfg}

	if cfg.TracingEnabled {
		tp, err := tracing.InitTracer(cfg.ServiceName, cfg.JaegerEndpoint)
		if err != nil {
			return nil, fmt.Errorf("failed to init tracing: %w", err)
		}
		a.tracerProvider = tp
	}

	store, err := a.openStore()
	if err != nil {
		return nil, err
	}
	a.Store = store

	products, err := catalogrepo.NewFileProductRepository(store)
	if err != nil {
		return nil, err
	}
	orders, err := orderrepo.NewFileOrderRepository(store)
	if err != nil {
		return nil, err
	}
	users, err := userrepo.NewFileUserRepository(store)
	if err != nil {
		return nil, err
	}
	a.Products = catalogrepo.NewTracedProductRepository(products)
	a.Orders = orderrepo.NewTracedOrderRepository(orders)
	a.Users = userrepo.NewTracedUserRepository(users)

	var publisher ordercmd.EventPublisher
	if cfg.KafkaEnabled {
		p, err := kafka.NewPublisher(cfg.KafkaBrokers)
		if err != nil {
			return nil, fmt.Errorf("failed to init Kafka publisher: %w", err)
		}
		a.publisher = p
		publisher = &orderEventPublisher{publisher: p}

		consumer, err := kafka.NewConsumer(cfg.KafkaBrokers, cfg.KafkaConsumerGroup, []string{kafka.TopicOrderPlaced})
		if err != nil {
			return nil, fmt.Errorf("failed to init Kafka consumer: %w", err)
		}
		consumer.RegisterHandler(kafka.EventTypeOrderPlaced, stockDecrementHandler(a.Products))
		a.consumer = consumer
	}

	a.Catalog = &CatalogHandlers{
		CreateProduct:    catalogcmd.NewCreateProductHandler(a.Products),
		UpdateProduct:    catalogcmd.NewUpdateProductHandler(a.Products),
		DeleteProduct:    catalogcmd.NewDeleteProductHandler(a.Products),
		AdjustStock:      catalogcmd.NewAdjustStockHandler(a.Products),
		GetProduct:       catalogqry.NewGetProductHandler(a.Products),
		ListProducts:     catalogqry.NewListProductsHandler(a.Products),
		SearchProducts:   catalogqry.NewSearchProductsHandler(a.Products),
		FeaturedProducts: catalogqry.NewFeaturedProductsHandler(a.Products),
		OnSaleProducts:   catalogqry.NewOnSaleProductsHandler(a.Products),
		BestSellers:      catalogqry.NewBestSellersHandler(a.Products),
		ListCategories:   catalogqry.NewListCategoriesHandler(a.Products),
		Stats:            catalogqry.NewGetStatsHandler(a.Products),
	}

	a.OrderOps = &OrderHandlers{
		CreateOrder:         ordercmd.NewCreateOrderHandler(a.Orders, a.Products, publisher),
		UpdateOrder:         ordercmd.NewUpdateOrderHandler(a.Orders),
		UpdateStatus:        ordercmd.NewUpdateStatusHandler(a.Orders, publisher),
		UpdatePaymentStatus: ordercmd.NewUpdatePaymentStatusHandler(a.Orders),
		DeleteOrder:         ordercmd.NewDeleteOrderHandler(a.Orders),
		GetOrder:            orderqry.NewGetOrderHandler(a.Orders),
		ListOrders:          orderqry.NewListOrdersHandler(a.Orders),
		History:             orderqry.NewGetHistoryHandler(a.Orders),
		Stats:               orderqry.NewGetStatsHandler(a.Orders),
	}

	a.UserOps = &UserHandlers{
		Register:             usercmd.NewRegisterUserHandler(a.Users),
		Login:                usercmd.NewLoginUserHandler(a.Users),
		UpdateUser:           usercmd.NewUpdateUserHandler(a.Users),
		DeleteUser:           usercmd.NewDeleteUserHandler(a.Users),
		ChangeRole:           usercmd.NewChangeRoleHandler(a.Users),
		ToggleActive:         usercmd.NewToggleActiveHandler(a.Users),
		VerifyEmail:          usercmd.NewVerifyEmailHandler(a.Users),
		RequestPasswordReset: usercmd.NewRequestPasswordResetHandler(a.Users),
		ResetPassword:        usercmd.NewResetPasswordHandler(a.Users),
		AddAddress:           usercmd.NewAddAddressHandler(a.Users),
		UpdateAddress:        usercmd.NewUpdateAddressHandler(a.Users),
		RemoveAddress:        usercmd.NewRemoveAddressHandler(a.Users),
		SetPrimaryAddress:    usercmd.NewSetPrimaryAddressHandler(a.Users),
		UpdatePreferences:    usercmd.NewUpdatePreferencesHandler(a.Users),
		GetUser:              userqry.NewGetUserHandler(a.Users),
		ListUsers:            userqry.NewListUsersHandler(a.Users),
		Stats:                userqry.NewGetStatsHandler(a.Users),
	}

	logger.Logger.Info().
		Str("storage_driver", cfg.StorageDriver).
		Bool("kafka", cfg.KafkaEnabled).
		Bool("tracing", cfg.TracingEnabled).
		Msg("Application initialized")

	return a, nil
}

func (a *App) openStore() (storage.Store, error) {
	switch a.cfg.StorageDriver {
	case config.DriverPostgres:
		db, err := database.NewPostgresConnection(a.cfg.Postgres)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		a.db = db
		store := storage.NewPostgresStore(db)
		if err := store.EnsureSchema(); err != nil {
			return nil, fmt.Errorf("failed to ensure schema: %w", err)
		}
		return store, nil
	case config.DriverFile, "":
		return storage.NewFileStore(a.cfg.DataDir)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", a.cfg.StorageDriver)
	}
}

// StartConsumer begins consuming order events. It is a no-op when Kafka
// is disabled.
func (a *App) StartConsumer(ctx context.Context) error {
	if a.consumer == nil {
		return nil
	}
	return a.consumer.Start(ctx)
}

// Close releases resources in reverse initialization order.
func (a *App) Close(ctx context.Context) error {
	var firstErr error

	if a.consumer != nil {
		if err := a.consumer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if a.tracerProvider != nil {
		if err := tracing.Shutdown(ctx, a.tracerProvider); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
