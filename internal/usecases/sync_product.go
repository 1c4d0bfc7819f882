package usecases

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/marqueshop/recommender/internal/domain"
	"github.com/marqueshop/recommender/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// SyncProduct keeps the vector index in line with one catalog product.
type SyncProduct interface {
	// Execute processes one catalog change event. Re-running with the same
	// event converges on the same index state.
	Execute(ctx context.Context, event domain.ProductEvent) error
}

// SyncProductImpl is the implementation of SyncProduct.
type SyncProductImpl struct {
	catalog domain.CatalogRepository
	encoder domain.SemanticEncoder
	index   domain.VectorIndex
	logger  *log.Logger
}

// NewSyncProductImpl creates a new instance of SyncProductImpl.
func NewSyncProductImpl(
	catalog domain.CatalogRepository,
	encoder domain.SemanticEncoder,
	index domain.VectorIndex,
	logger *log.Logger,
) SyncProductImpl {
	return SyncProductImpl{
		catalog: catalog,
		encoder: encoder,
		index:   index,
		logger:  logger,
	}
}

// Execute routes one catalog event into the index.
func (sp SyncProductImpl) Execute(ctx context.Context, event domain.ProductEvent) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("event_type", string(event.Type)),
		attribute.String("product_id", event.ProductID.String()),
	))
	defer span.End()

	if event.ProductID == uuid.Nil {
		return domain.NewValidationErr("product id cannot be empty")
	}

	if event.Type == domain.EventType_PRODUCT_DEACTIVATED {
		if err := sp.removeEverywhere(spanCtx, event.ProductID); telemetry.RecordErrorAndStatus(span, err) {
			return err
		}
		return nil
	}

	product, err := sp.catalog.GetProduct(spanCtx, event.ProductID)
	var notFound *domain.NotFoundErr
	if errors.As(err, &notFound) {
		// The product vanished between event publish and processing.
		// Converge by removing any stale vector.
		if err := sp.removeEverywhere(spanCtx, event.ProductID); telemetry.RecordErrorAndStatus(span, err) {
			return err
		}
		return nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	if !product.Active {
		if err := sp.removeEverywhere(spanCtx, product.ID); telemetry.RecordErrorAndStatus(span, err) {
			return err
		}
		return nil
	}

	if !product.HasEmbeddingText() {
		sp.logger.Printf("SyncProduct:product %s has no embedding text, skipping", product.ID)
		span.AddEvent("no embedding text, skipped")
		return nil
	}

	if err := sp.upsertProduct(spanCtx, product); telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// upsertProduct encodes the product, writes it into its market
// namespace and clears the others. A market change moves the record
// between namespaces, so the old one must not keep serving the vector.
func (sp SyncProductImpl) upsertProduct(ctx context.Context, product domain.Product) error {
	embedding, err := sp.encoder.EncodeProduct(ctx, product)
	if err != nil {
		return fmt.Errorf("failed to encode product %s: %w", product.ID, err)
	}
	RecordLLMTokensEmbedding(ctx, embedding.TotalTokens)

	record := domain.EmbeddingRecord{
		ID:        product.ID,
		Namespace: domain.NamespaceForMarket(product.Market),
		Vector:    embedding.Vector,
		Metadata: domain.RecordMetadata{
			Name:     product.Name,
			Brand:    product.Brand,
			Market:   product.Market,
			Audience: product.Audience,
			Price:    product.Price,
			Rating:   product.Rating,
			InStock:  product.InStock,
		},
	}

	if err := sp.index.Upsert(ctx, record); err != nil {
		return fmt.Errorf("failed to upsert product %s: %w", product.ID, err)
	}

	for _, market := range []domain.Market{domain.Market_KG, domain.Market_US, domain.Market_ALL} {
		namespace := domain.NamespaceForMarket(market)
		if namespace == record.Namespace {
			continue
		}
		if err := sp.index.Delete(ctx, product.ID, namespace); err != nil {
			return fmt.Errorf("failed to delete product %s from %s: %w", product.ID, namespace, err)
		}
	}
	return nil
}

// removeEverywhere deletes the product's vector from every namespace.
// The product's market may have changed since it was indexed, so all
// namespaces are cleared; deleting an absent id is a no-op.
func (sp SyncProductImpl) removeEverywhere(ctx context.Context, id uuid.UUID) error {
	for _, market := range []domain.Market{domain.Market_KG, domain.Market_US, domain.Market_ALL} {
		namespace := domain.NamespaceForMarket(market)
		if err := sp.index.Delete(ctx, id, namespace); err != nil {
			return fmt.Errorf("failed to delete product %s from %s: %w", id, namespace, err)
		}
	}
	return nil
}

// InitSyncProduct initializes the SyncProduct use case.
type InitSyncProduct struct {
	Catalog domain.CatalogRepository `resolve:""`
	Encoder domain.SemanticEncoder   `resolve:""`
	Index   domain.VectorIndex       `resolve:""`
	Logger  *log.Logger              `resolve:""`
}

// Initialize registers SyncProduct in the dependency container.
func (i InitSyncProduct) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[SyncProduct](NewSyncProductImpl(i.Catalog, i.Encoder, i.Index, i.Logger))
	return ctx, nil
}
