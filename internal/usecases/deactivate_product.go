package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/marqueshop/recommender/internal/domain"
	"github.com/marqueshop/recommender/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// DeactivateProduct removes a product from sale and schedules its
// removal from the vector index.
type DeactivateProduct interface {
	// Execute marks the product inactive and records the deactivation
	// event in the same transaction. Returns NotFoundErr for unknown ids.
	Execute(ctx context.Context, id uuid.UUID) error
}

// DeactivateProductImpl is the implementation of DeactivateProduct.
type DeactivateProductImpl struct {
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
}

// NewDeactivateProductImpl creates a new instance of DeactivateProductImpl.
func NewDeactivateProductImpl(uow domain.UnitOfWork, tp domain.CurrentTimeProvider) DeactivateProductImpl {
	return DeactivateProductImpl{
		uow:          uow,
		timeProvider: tp,
	}
}

// Execute deactivates the product and records a PRODUCT.DEACTIVATED outbox event.
func (dp DeactivateProductImpl) Execute(ctx context.Context, id uuid.UUID) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("product_id", id.String()),
	))
	defer span.End()

	if id == uuid.Nil {
		return domain.NewValidationErr("product id cannot be empty")
	}

	err := dp.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		if err := uow.Catalog().DeactivateProduct(spanCtx, id); err != nil {
			return err
		}
		return uow.Outbox().CreateProductEvent(spanCtx, domain.ProductEvent{
			Type:      domain.EventType_PRODUCT_DEACTIVATED,
			ProductID: id,
			CreatedAt: dp.timeProvider.Now(),
		})
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// InitDeactivateProduct initializes the DeactivateProduct use case.
type InitDeactivateProduct struct {
	Uow          domain.UnitOfWork          `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers DeactivateProduct in the dependency container.
func (i InitDeactivateProduct) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[DeactivateProduct](NewDeactivateProductImpl(i.Uow, i.TimeProvider))
	return ctx, nil
}
