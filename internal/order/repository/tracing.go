package repository

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/neonshop/commerce-core/internal/order/domain"
	"github.com/neonshop/commerce-core/internal/query"
	"github.com/neonshop/commerce-core/internal/storage"
	"github.com/neonshop/commerce-core/internal/validation"
	"github.com/neonshop/commerce-core/pkg/metrics"
)

var tracer = otel.Tracer("order-repository")

func opStatus(err error) string {
	switch {
	case err == nil:
		return metrics.StatusOK
	case errors.Is(err, storage.ErrNotFound):
		return metrics.StatusNotFound
	default:
		if _, ok := validation.AsErrors(err); ok {
			return metrics.StatusInvalid
		}
		return metrics.StatusError
	}
}

func observe(operation string, start time.Time, err error) {
	metrics.RepositoryOperations.WithLabelValues("order", operation, opStatus(err)).Inc()
	metrics.RepositoryDuration.WithLabelValues("order", operation).Observe(time.Since(start).Seconds())
}

// TracedOrderRepository decorates an OrderRepository with otel spans and
// prometheus instrumentation.
type TracedOrderRepository struct {
	domain.OrderRepository
}

// NewTracedOrderRepository wraps an existing repository.
func NewTracedOrderRepository(inner domain.OrderRepository) *TracedOrderRepository {
	return &TracedOrderRepository{OrderRepository: inner}
}

// CreateWithContext traces order creation.
func (r *TracedOrderRepository) CreateWithContext(ctx context.Context, order *domain.Order) error {
	start := time.Now()
	_, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(attribute.Int("order.customer_id", int(order.CustomerID))),
	)
	defer span.End()

	err := r.OrderRepository.Create(order)
	observe("create", start, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(
		attribute.Int("order.id", int(order.ID)),
		attribute.String("order.number", order.OrderNumber),
	)
	return nil
}

// FindByIDWithContext traces a primary-key lookup.
func (r *TracedOrderRepository) FindByIDWithContext(ctx context.Context, id uint) (*domain.Order, error) {
	start := time.Now()
	_, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(attribute.Int("order.id", int(id))),
	)
	defer span.End()

	order, err := r.OrderRepository.FindByID(id)
	observe("find_by_id", start, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return order, nil
}

// FindWithFiltersWithContext traces a filtered listing.
func (r *TracedOrderRepository) FindWithFiltersWithContext(ctx context.Context, filter domain.OrderFilter, page, limit int, sortField, sortDirection string) ([]domain.Order, query.Pagination, error) {
	start := time.Now()
	_, span := tracer.Start(ctx, "repository.FindWithFilters",
		trace.WithAttributes(
			attribute.Int("query.page", page),
			attribute.Int("query.limit", limit),
			attribute.String("query.sort", sortField),
		),
	)
	defer span.End()

	items, meta, err := r.OrderRepository.FindWithFilters(filter, page, limit, sortField, sortDirection)
	observe("find_with_filters", start, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, meta, err
	}

	span.SetAttributes(attribute.Int("result.count", len(items)))
	return items, meta, nil
}

// UpdateWithContext traces an order update.
func (r *TracedOrderRepository) UpdateWithContext(ctx context.Context, order *domain.Order) error {
	start := time.Now()
	_, span := tracer.Start(ctx, "repository.Update",
		trace.WithAttributes(
			attribute.Int("order.id", int(order.ID)),
			attribute.String("order.status", order.Status),
		),
	)
	defer span.End()

	err := r.OrderRepository.Update(order)
	observe("update", start, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

// DeleteWithContext traces an order removal, history cascade included.
func (r *TracedOrderRepository) DeleteWithContext(ctx context.Context, id uint) error {
	start := time.Now()
	_, span := tracer.Start(ctx, "repository.Delete",
		trace.WithAttributes(attribute.Int("order.id", int(id))),
	)
	defer span.End()

	err := r.OrderRepository.Delete(id)
	observe("delete", start, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

// AddHistoryWithContext traces a history append.
func (r *TracedOrderRepository) AddHistoryWithContext(ctx context.Context, entry *domain.OrderHistory) error {
	start := time.Now()
	_, span := tracer.Start(ctx, "repository.AddHistory",
		trace.WithAttributes(
			attribute.Int("order.id", int(entry.OrderID)),
			attribute.String("order.status", entry.Status),
		),
	)
	defer span.End()

	err := r.OrderRepository.AddHistory(entry)
	observe("add_history", start, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
