package usecases

import (
	"context"
	"errors"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/marqueshop/recommender/internal/domain"
	"github.com/marqueshop/recommender/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// IngestProduct accepts a catalog product into the recommendation
// system: it persists the product and records the sync event in the
// same transaction, so the index converges even if the process dies
// right after commit.
type IngestProduct interface {
	Execute(ctx context.Context, product domain.Product) error
}

// IngestProductImpl is the implementation of IngestProduct.
type IngestProductImpl struct {
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
}

// NewIngestProductImpl creates a new instance of IngestProductImpl.
func NewIngestProductImpl(uow domain.UnitOfWork, tp domain.CurrentTimeProvider) IngestProductImpl {
	return IngestProductImpl{
		uow:          uow,
		timeProvider: tp,
	}
}

// Execute validates and saves the product, recording a PRODUCT.SAVED
// outbox event in the same transaction.
func (ip IngestProductImpl) Execute(ctx context.Context, product domain.Product) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("product_id", product.ID.String()),
	))
	defer span.End()

	if err := product.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	now := ip.timeProvider.Now()
	err := ip.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		// Read inside the transaction so a concurrent save cannot slip
		// between the CreatedAt lookup and the write.
		existing, err := uow.Catalog().GetProduct(spanCtx, product.ID)
		var notFound *domain.NotFoundErr
		switch {
		case errors.As(err, &notFound):
			product.CreatedAt = now
		case err != nil:
			return err
		default:
			product.CreatedAt = existing.CreatedAt
		}
		product.UpdatedAt = now

		if err := uow.Catalog().SaveProduct(spanCtx, product); err != nil {
			return err
		}
		return uow.Outbox().CreateProductEvent(spanCtx, domain.ProductEvent{
			Type:      domain.EventType_PRODUCT_SAVED,
			ProductID: product.ID,
			CreatedAt: now,
		})
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// InitIngestProduct initializes the IngestProduct use case.
type InitIngestProduct struct {
	Uow          domain.UnitOfWork          `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers IngestProduct in the dependency container.
func (i InitIngestProduct) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[IngestProduct](NewIngestProductImpl(i.Uow, i.TimeProvider))
	return ctx, nil
}
