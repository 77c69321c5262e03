package repository

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/neonshop/commerce-core/internal/catalog/domain"
	"github.com/neonshop/commerce-core/internal/query"
	"github.com/neonshop/commerce-core/internal/storage"
	"github.com/neonshop/commerce-core/internal/validation"
	"github.com/neonshop/commerce-core/pkg/metrics"
)

var tracer = otel.Tracer("product-repository")

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
	metrics.RepositoryOperations.WithLabelValues("product", operation, opStatus(err)).Inc()
	metrics.RepositoryDuration.WithLabelValues("product", operation).Observe(time.Since(start).Seconds())
}

// TracedProductRepository decorates a ProductRepository with otel spans
// and prometheus instrumentation. The plain interface methods pass
// through untraced via embedding.
type TracedProductRepository struct {
	domain.ProductRepository
}

// NewTracedProductRepository wraps an existing repository.
func NewTracedProductRepository(inner domain.ProductRepository) *TracedProductRepository {
	return &TracedProductRepository{ProductRepository: inner}
}

// CreateWithContext traces product creation.
func (r *TracedProductRepository) CreateWithContext(ctx context.Context, product *domain.Product) error {
	start := time.Now()
	_, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(attribute.String("product.name", product.Name)),
	)
	defer span.End()

	err := r.ProductRepository.Create(product)
	observe("create", start, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("product.id", int(product.ID)))
	return nil
}

// FindByIDWithContext traces a primary-key lookup.
func (r *TracedProductRepository) FindByIDWithContext(ctx context.Context, id uint) (*domain.Product, error) {
	start := time.Now()
	_, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(attribute.Int("product.id", int(id))),
	)
	defer span.End()

	product, err := r.ProductRepository.FindByID(id)
	observe("find_by_id", start, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return product, nil
}

// FindWithFiltersWithContext traces a filtered listing.
func (r *TracedProductRepository) FindWithFiltersWithContext(ctx context.Context, filter domain.ProductFilter, page, limit int, sortField, sortDirection string) ([]domain.Product, query.Pagination, error) {
	start := time.Now()
	_, span := tracer.Start(ctx, "repository.FindWithFilters",
		trace.WithAttributes(
			attribute.Int("query.page", page),
			attribute.Int("query.limit", limit),
			attribute.String("query.sort", sortField),
		),
	)
	defer span.End()

	items, meta, err := r.ProductRepository.FindWithFilters(filter, page, limit, sortField, sortDirection)
	observe("find_with_filters", start, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, meta, err
	}

	span.SetAttributes(attribute.Int("result.count", len(items)))
	return items, meta, nil
}

// SearchWithContext traces a relevance search.
func (r *TracedProductRepository) SearchWithContext(ctx context.Context, term string, limit int) ([]domain.Product, error) {
	start := time.Now()
	_, span := tracer.Start(ctx, "repository.Search",
		trace.WithAttributes(attribute.String("query.term", term)),
	)
	defer span.End()

	items, err := r.ProductRepository.Search(term, limit)
	observe("search", start, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(items)))
	return items, nil
}

// UpdateWithContext traces a product update.
func (r *TracedProductRepository) UpdateWithContext(ctx context.Context, product *domain.Product) error {
	start := time.Now()
	_, span := tracer.Start(ctx, "repository.Update",
		trace.WithAttributes(attribute.Int("product.id", int(product.ID))),
	)
	defer span.End()

	err := r.ProductRepository.Update(product)
	observe("update", start, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

// DeleteWithContext traces a product removal.
func (r *TracedProductRepository) DeleteWithContext(ctx context.Context, id uint) error {
	start := time.Now()
	_, span := tracer.Start(ctx, "repository.Delete",
		trace.WithAttributes(attribute.Int("product.id", int(id))),
	)
	defer span.End()

	err := r.ProductRepository.Delete(id)
	observe("delete", start, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

// AdjustStockWithContext traces a stock adjustment.
func (r *TracedProductRepository) AdjustStockWithContext(ctx context.Context, id uint, delta int) (*domain.Product, error) {
	start := time.Now()
	_, span := tracer.Start(ctx, "repository.AdjustStock",
		trace.WithAttributes(
			attribute.Int("product.id", int(id)),
			attribute.Int("stock.delta", delta),
		),
	)
	defer span.End()

	product, err := r.ProductRepository.AdjustStock(id, delta)
	observe("adjust_stock", start, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("stock.quantity", product.StockQuantity))
	return product, nil
}
