package qdrant

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/marqueshop/recommender/internal/domain"
	"github.com/marqueshop/recommender/internal/telemetry"
)

// VectorIndex implements domain.VectorIndex against a Qdrant server,
// mapping each namespace to its own collection.
type VectorIndex struct {
	client Client
}

// NewVectorIndex creates a new adapter.
func NewVectorIndex(client Client) VectorIndex {
	return VectorIndex{client: client}
}

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

	point := Point{
		ID:     record.ID.String(),
		Vector: record.Vector,
		Payload: map[string]any{
			"name":     record.Metadata.Name,
			"brand":    record.Metadata.Brand,
			"market":   string(record.Metadata.Market),
			"audience": string(record.Metadata.Audience),
			"price":    record.Metadata.Price,
			"rating":   record.Metadata.Rating,
			"in_stock": record.Metadata.InStock,
		},
	}

	if err := classify(v.client.UpsertPoints(spanCtx, record.Namespace, []Point{point})); telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// Delete implements domain.VectorIndex.Delete
func (v VectorIndex) Delete(ctx context.Context, id uuid.UUID, namespace string) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if err := classify(v.client.DeletePoints(spanCtx, namespace, []string{id.String()})); telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// Query implements domain.VectorIndex.Query
func (v VectorIndex) Query(ctx context.Context, vector []float64, namespace string, topK int, filter domain.MetadataFilter) ([]domain.Match, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	hits, err := v.client.SearchPoints(spanCtx, namespace, vector, topK, toQdrantFilter(filter))
	if err = classify(err); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	matches := make([]domain.Match, 0, len(hits))
	for _, hit := range hits {
		id, err := uuid.Parse(hit.ID)
		if err != nil {
			continue
		}
		matches = append(matches, domain.Match{
			ID:       id,
			Score:    hit.Score,
			Metadata: toMetadata(hit.Payload),
		})
	}
	return matches, nil
}

// Count implements domain.VectorIndex.Count
func (v VectorIndex) Count(ctx context.Context, namespace string) (int, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	count, err := v.client.CountPoints(spanCtx, namespace)
	if err = classify(err); telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}
	return count, nil
}

// classify wraps backend availability failures with
// domain.ErrIndexUnavailable. A 4xx answer means the server is up and
// rejected the request, so it passes through unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var se statusError
	if errors.As(err, &se) && se.code < http.StatusInternalServerError {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrIndexUnavailable, err)
}

func toQdrantFilter(filter domain.MetadataFilter) map[string]any {
	var must []map[string]any
	if filter.InStockOnly {
		must = append(must, map[string]any{
			"key":   "in_stock",
			"match": map[string]any{"value": true},
		})
	}
	if len(filter.Audiences) > 0 {
		values := make([]string, len(filter.Audiences))
		for i, a := range filter.Audiences {
			values[i] = string(a)
		}
		must = append(must, map[string]any{
			"key":   "audience",
			"match": map[string]any{"any": values},
		})
	}
	if must == nil {
		return nil
	}
	return map[string]any{"must": must}
}

func toMetadata(payload map[string]any) domain.RecordMetadata {
	md := domain.RecordMetadata{}
	if v, ok := payload["name"].(string); ok {
		md.Name = v
	}
	if v, ok := payload["brand"].(string); ok {
		md.Brand = v
	}
	if v, ok := payload["market"].(string); ok {
		md.Market = domain.Market(v)
	}
	if v, ok := payload["audience"].(string); ok {
		md.Audience = domain.Audience(v)
	}
	if v, ok := payload["price"].(float64); ok {
		md.Price = v
	}
	if v, ok := payload["rating"].(float64); ok {
		md.Rating = v
	}
	if v, ok := payload["in_stock"].(bool); ok {
		md.InStock = v
	}
	return md
}

// InitVectorIndex initializes the Qdrant-backed vector index and makes
// sure every namespace collection exists. It is a no-op when another
// vector backend is configured.
type InitVectorIndex struct {
	HttpClient *http.Client `resolve:""`
	Backend    string       `config:"VECTOR_BACKEND" default:"qdrant"`
	ServerURL  string       `config:"QDRANT_URL" default:"http://localhost:6333"`
	APIKey     string       `config:"QDRANT_API_KEY" default:""`
}

// Initialize registers the VectorIndex
func (i InitVectorIndex) Initialize(ctx context.Context) (context.Context, error) {
	if i.Backend != "qdrant" {
		return ctx, nil
	}

	client := NewClient(i.ServerURL, i.APIKey, i.HttpClient)

	for _, market := range []domain.Market{domain.Market_KG, domain.Market_US, domain.Market_ALL} {
		namespace := domain.NamespaceForMarket(market)
		if err := client.EnsureCollection(ctx, namespace, domain.EmbeddingDimension); err != nil {
			return ctx, fmt.Errorf("ensure collection %s: %w", namespace, err)
		}
	}

	depend.Register[domain.VectorIndex](NewVectorIndex(client))
	return ctx, nil
}
