package repository

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/neonshop/commerce-core/internal/query"
	"github.com/neonshop/commerce-core/internal/storage"
	"github.com/neonshop/commerce-core/internal/user/domain"
	"github.com/neonshop/commerce-core/internal/validation"
	"github.com/neonshop/commerce-core/pkg/metrics"
)

var tracer = otel.Tracer("user-repository")

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
	metrics.RepositoryOperations.WithLabelValues("user", operation, opStatus(err)).Inc()
	metrics.RepositoryDuration.WithLabelValues("user", operation).Observe(time.Since(start).Seconds())
}

// TracedUserRepository decorates a UserRepository with otel spans and
// prometheus instrumentation.
type TracedUserRepository struct {
	domain.UserRepository
}

// NewTracedUserRepository wraps an existing repository.
func NewTracedUserRepository(inner domain.UserRepository) *TracedUserRepository {
	return &TracedUserRepository{UserRepository: inner}
}

// CreateWithContext traces account creation. The email is deliberately
// left off the span attributes.
func (r *TracedUserRepository) CreateWithContext(ctx context.Context, user *domain.User) error {
	start := time.Now()
	_, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(attribute.String("user.role", user.Role)),
	)
	defer span.End()

	err := r.UserRepository.Create(user)
	observe("create", start, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("user.id", int(user.ID)))
	return nil
}

// FindByIDWithContext traces a primary-key lookup.
func (r *TracedUserRepository) FindByIDWithContext(ctx context.Context, id uint) (*domain.User, error) {
	start := time.Now()
	_, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(attribute.Int("user.id", int(id))),
	)
	defer span.End()

	user, err := r.UserRepository.FindByID(id)
	observe("find_by_id", start, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return user, nil
}

// FindByEmailWithContext traces an email lookup.
func (r *TracedUserRepository) FindByEmailWithContext(ctx context.Context, email string) (*domain.User, error) {
	start := time.Now()
	_, span := tracer.Start(ctx, "repository.FindByEmail")
	defer span.End()

	user, err := r.UserRepository.FindByEmail(email)
	observe("find_by_email", start, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return user, nil
}

// FindWithFiltersWithContext traces a filtered listing.
func (r *TracedUserRepository) FindWithFiltersWithContext(ctx context.Context, filter domain.UserFilter, page, limit int, sortField, sortDirection string) ([]domain.User, query.Pagination, error) {
	start := time.Now()
	_, span := tracer.Start(ctx, "repository.FindWithFilters",
		trace.WithAttributes(
			attribute.Int("query.page", page),
			attribute.Int("query.limit", limit),
			attribute.String("query.sort", sortField),
		),
	)
	defer span.End()

	items, meta, err := r.UserRepository.FindWithFilters(filter, page, limit, sortField, sortDirection)
	observe("find_with_filters", start, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, meta, err
	}

	span.SetAttributes(attribute.Int("result.count", len(items)))
	return items, meta, nil
}

// UpdateWithContext traces a user update.
func (r *TracedUserRepository) UpdateWithContext(ctx context.Context, user *domain.User) error {
	start := time.Now()
	_, span := tracer.Start(ctx, "repository.Update",
		trace.WithAttributes(attribute.Int("user.id", int(user.ID))),
	)
	defer span.End()

	err := r.UserRepository.Update(user)
	observe("update", start, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

// DeleteWithContext traces a user removal.
func (r *TracedUserRepository) DeleteWithContext(ctx context.Context, id uint) error {
	start := time.Now()
	_, span := tracer.Start(ctx, "repository.Delete",
		trace.WithAttributes(attribute.Int("user.id", int(id))),
	)
	defer span.End()

	err := r.UserRepository.Delete(id)
	observe("delete", start, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
