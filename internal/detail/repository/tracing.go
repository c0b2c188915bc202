package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/storefront/internal/detail/domain"
)

var tracer = otel.Tracer("detail-session-repository")

// TracedSessionRepository wraps a SessionRepository with tracing spans
type TracedSessionRepository struct {
	inner domain.SessionRepository
}

// NewTracedSessionRepository creates a new repository with tracing
func NewTracedSessionRepository(inner domain.SessionRepository) *TracedSessionRepository {
	return &TracedSessionRepository{inner: inner}
}

// Create with tracing
func (r *TracedSessionRepository) Create(ctx context.Context, session *domain.Session) error {
	ctx, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("session.id", session.ID),
			attribute.String("product.id", session.ProductID),
			attribute.Bool("session.loaded", session.Loaded()),
		),
	)
	defer span.End()

	if err := r.inner.Create(ctx, session); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// FindByID with tracing
func (r *TracedSessionRepository) FindByID(ctx context.Context, id string) (*domain.Session, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(attribute.String("session.id", id)),
	)
	defer span.End()

	session, err := r.inner.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("product.id", session.ProductID),
		attribute.Int("session.quantity", session.Quantity),
	)
	return session, nil
}

// Save with tracing
func (r *TracedSessionRepository) Save(ctx context.Context, session *domain.Session) error {
	ctx, span := tracer.Start(ctx, "repository.Save",
		trace.WithAttributes(
			attribute.String("session.id", session.ID),
			attribute.Int("session.quantity", session.Quantity),
		),
	)
	defer span.End()

	if err := r.inner.Save(ctx, session); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// Delete with tracing
func (r *TracedSessionRepository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "repository.Delete",
		trace.WithAttributes(attribute.String("session.id", id)),
	)
	defer span.End()

	if err := r.inner.Delete(ctx, id); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// Count with tracing
func (r *TracedSessionRepository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "repository.Count")
	defer span.End()

	count, err := r.inner.Count(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	span.SetAttributes(attribute.Int64("session.count", count))
	return count, nil
}
