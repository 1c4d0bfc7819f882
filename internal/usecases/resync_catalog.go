package usecases

import (
	"context"
	"log"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/marqueshop/recommender/internal/domain"
	"github.com/marqueshop/recommender/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// RESYNC_PAGE_SIZE is how many products one keyset page loads.
const RESYNC_PAGE_SIZE = 100

// ResyncReport summarizes one bulk resync run.
type ResyncReport struct {
	Synced  int `json:"synced"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

// ResyncCatalog rebuilds the vector index from the active catalog.
type ResyncCatalog interface {
	// Execute re-encodes and re-upserts every active product, optionally
	// restricted to one market. Per-item failures are counted, not fatal,
	// so a run is always safe to repeat.
	Execute(ctx context.Context, market domain.Market) (ResyncReport, error)
}

// ResyncCatalogImpl is the implementation of ResyncCatalog.
type ResyncCatalogImpl struct {
	catalog domain.CatalogRepository
	encoder domain.SemanticEncoder
	index   domain.VectorIndex
	logger  *log.Logger
}

// NewResyncCatalogImpl creates a new instance of ResyncCatalogImpl.
func NewResyncCatalogImpl(
	catalog domain.CatalogRepository,
	encoder domain.SemanticEncoder,
	index domain.VectorIndex,
	logger *log.Logger,
) ResyncCatalogImpl {
	return ResyncCatalogImpl{
		catalog: catalog,
		encoder: encoder,
		index:   index,
		logger:  logger,
	}
}

// Execute pages through active products and re-indexes each one.
func (rc ResyncCatalogImpl) Execute(ctx context.Context, market domain.Market) (ResyncReport, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("market", string(market)),
	))
	defer span.End()

	if market != "" && !market.Valid() {
		return ResyncReport{}, domain.NewValidationErr("unknown market: " + string(market))
	}

	sync := NewSyncProductImpl(rc.catalog, rc.encoder, rc.index, rc.logger)

	var report ResyncReport
	afterID := uuid.Nil
	for {
		products, err := rc.catalog.ListActiveProducts(spanCtx, market, afterID, RESYNC_PAGE_SIZE)
		if telemetry.RecordErrorAndStatus(span, err) {
			return report, err
		}
		if len(products) == 0 {
			break
		}
		afterID = products[len(products)-1].ID

		for _, product := range products {
			if !product.HasEmbeddingText() {
				report.Skipped++
				continue
			}
			if err := sync.upsertProduct(spanCtx, product); err != nil {
				report.Failed++
				rc.logger.Printf("ResyncCatalog:failed to sync product %s: %v", product.ID, err)
				continue
			}
			report.Synced++
		}

		if len(products) < RESYNC_PAGE_SIZE {
			break
		}
	}

	span.SetAttributes(
		attribute.Int("synced", report.Synced),
		attribute.Int("failed", report.Failed),
		attribute.Int("skipped", report.Skipped),
	)
	return report, nil
}

// InitResyncCatalog initializes the ResyncCatalog use case.
type InitResyncCatalog struct {
	Catalog domain.CatalogRepository `resolve:""`
	Encoder domain.SemanticEncoder   `resolve:""`
	Index   domain.VectorIndex       `resolve:""`
	Logger  *log.Logger              `resolve:""`
}

// Initialize registers ResyncCatalog in the dependency container.
func (i InitResyncCatalog) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ResyncCatalog](NewResyncCatalogImpl(i.Catalog, i.Encoder, i.Index, i.Logger))
	return ctx, nil
}
