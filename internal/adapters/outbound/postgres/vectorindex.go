package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/marqueshop/recommender/internal/domain"
	"github.com/marqueshop/recommender/internal/telemetry"
	"github.com/pgvector/pgvector-go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// VectorIndex implements domain.VectorIndex on the embedding_records
// table, for deployments that keep vectors next to the catalog instead
// of in a dedicated vector database.
type VectorIndex struct {
	sb  squirrel.StatementBuilderType
	now func() time.Time
}

// NewVectorIndex creates a new pgvector-backed index.
func NewVectorIndex(br squirrel.BaseRunner) VectorIndex {
	return VectorIndex{
		sb:  squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
		now: time.Now,
	}
}

const recordUpsertSet = "embedding = EXCLUDED.embedding, name = EXCLUDED.name, " +
	"brand = EXCLUDED.brand, market = EXCLUDED.market, audience = EXCLUDED.audience, " +
	"price = EXCLUDED.price, rating = EXCLUDED.rating, in_stock = EXCLUDED.in_stock, " +
	"updated_at = EXCLUDED.updated_at"

// Upsert implements domain.VectorIndex.Upsert
func (v VectorIndex) Upsert(ctx context.Context, record domain.EmbeddingRecord) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if len(record.Vector) != domain.EmbeddingDimension {
		err := domain.NewValidationErr(
			fmt.Sprintf("vector dimension %d, want %d", len(record.Vector), domain.EmbeddingDimension),
		)
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}

	_, err := v.sb.
		Insert("embedding_records").
		Columns(
			"id",
			"namespace",
			"embedding",
			"name",
			"brand",
			"market",
			"audience",
			"price",
			"rating",
			"in_stock",
			"updated_at",
		).
		Values(
			record.ID,
			record.Namespace,
			pgvector.NewVector(toFloat32Truncated(record.Vector)),
			record.Metadata.Name,
			record.Metadata.Brand,
			record.Metadata.Market,
			record.Metadata.Audience,
			record.Metadata.Price,
			record.Metadata.Rating,
			record.Metadata.InStock,
			v.now(),
		).
		Suffix("ON CONFLICT (id, namespace) DO UPDATE SET " + recordUpsertSet).
		ExecContext(spanCtx)

	if err = unavailable(err); telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// Delete implements domain.VectorIndex.Delete
func (v VectorIndex) Delete(ctx context.Context, id uuid.UUID, namespace string) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := v.sb.
		Delete("embedding_records").
		Where(squirrel.Eq{"id": id, "namespace": namespace}).
		ExecContext(spanCtx)

	if err = unavailable(err); telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// Query implements domain.VectorIndex.Query
func (v VectorIndex) Query(ctx context.Context, vector []float64, namespace string, topK int, filter domain.MetadataFilter) ([]domain.Match, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("namespace", namespace),
		attribute.Int("topK", topK),
	))
	defer span.End()

	target := pgvector.NewVector(toFloat32Truncated(vector))

	qry := v.sb.
		Select("id").
		Column(squirrel.Alias(squirrel.Expr("1 - (embedding <=> ?)", target), "score")).
		Columns(
			"name",
			"brand",
			"market",
			"audience",
			"price",
			"rating",
			"in_stock",
		).
		From("embedding_records").
		Where(squirrel.Eq{"namespace": namespace}).
		OrderByClause(squirrel.Expr("embedding <=> ?", target)).
		Limit(uint64(topK))

	if filter.InStockOnly {
		qry = qry.Where(squirrel.Eq{"in_stock": true})
	}
	if len(filter.Audiences) > 0 {
		qry = qry.Where(squirrel.Eq{"audience": filter.Audiences})
	}

	rows, err := qry.QueryContext(spanCtx)
	if err = unavailable(err); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var matches []domain.Match
	for rows.Next() {
		var m domain.Match
		err := rows.Scan(
			&m.ID,
			&m.Score,
			&m.Metadata.Name,
			&m.Metadata.Brand,
			&m.Metadata.Market,
			&m.Metadata.Audience,
			&m.Metadata.Price,
			&m.Metadata.Rating,
			&m.Metadata.InStock,
		)
		if err = unavailable(err); telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		matches = append(matches, m)
	}

	if err := unavailable(rows.Err()); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return matches, nil
}

// Count implements domain.VectorIndex.Count
func (v VectorIndex) Count(ctx context.Context, namespace string) (int, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var count int
	err := v.sb.
		Select("COUNT(*)").
		From("embedding_records").
		Where(squirrel.Eq{"namespace": namespace}).
		QueryRowContext(spanCtx).
		Scan(&count)

	if err = unavailable(err); telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}
	return count, nil
}

// unavailable wraps storage errors with domain.ErrIndexUnavailable so
// callers can fall back instead of failing the request.
func unavailable(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", domain.ErrIndexUnavailable, err)
}

func toFloat32Truncated(input []float64) []float32 {
	f32 := make([]float32, len(input))
	for i, v := range input {
		f32[i] = float32(v)
	}
	return f32
}

// InitVectorIndex registers the pgvector-backed index when the
// configured vector backend is "pgvector". It is a no-op otherwise.
type InitVectorIndex struct {
	DB      *sql.DB `resolve:""`
	Backend string  `config:"VECTOR_BACKEND" default:"qdrant"`
}

// Initialize registers the VectorIndex
func (i InitVectorIndex) Initialize(ctx context.Context) (context.Context, error) {
	if i.Backend != "pgvector" {
		return ctx, nil
	}

	depend.Register[domain.VectorIndex](NewVectorIndex(i.DB))
	return ctx, nil
}
