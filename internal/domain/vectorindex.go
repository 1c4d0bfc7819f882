package domain

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

// EmbeddingDimension is the vector size produced by the embedding
// models this service is configured for.
const EmbeddingDimension = 384

// ErrIndexUnavailable marks vector index failures caused by the backend
// being unreachable, as opposed to a successful query with zero
// results. Adapters wrap transport errors with it so the search stage
// can decide between fallback and "no matches".
var ErrIndexUnavailable = errors.New("vector index unavailable")

// NamespaceForMarket maps a market to its vector index namespace.
func NamespaceForMarket(m Market) string {
	return "products_" + strings.ToLower(string(m))
}

// RecordMetadata is the snapshot of product fields stored alongside a
// vector, enough for post-filtering and result display without a
// catalog round trip.
type RecordMetadata struct {
	Name     string   `json:"name"`
	Brand    string   `json:"brand"`
	Market   Market   `json:"market"`
	Audience Audience `json:"audience"`
	Price    float64  `json:"price"`
	Rating   float64  `json:"rating"`
	InStock  bool     `json:"in_stock"`
}

// EmbeddingRecord is the unit the vector index stores. It is derived
// from a Product and overwritten wholesale on every sync; it is never
// edited in place.
type EmbeddingRecord struct {
	ID        uuid.UUID
	Namespace string
	Vector    []float64
	Metadata  RecordMetadata
}

// MetadataFilter restricts a similarity query. Zero values mean "no
// constraint" for that field.
type MetadataFilter struct {
	InStockOnly bool
	// Audiences is an OR set: a record matches when its audience is in
	// the set. Search passes {requester audience, unisex}.
	Audiences []Audience
}

// Match is one similarity query hit.
type Match struct {
	ID       uuid.UUID
	Score    float64
	Metadata RecordMetadata
}

// VectorIndex maintains the namespaced nearest-neighbor projection of
// active products.
type VectorIndex interface {
	// Upsert inserts or overwrites the record in its namespace. Re-upserting
	// the same id overwrites, never duplicates.
	Upsert(ctx context.Context, record EmbeddingRecord) error
	// Delete removes the vector; deleting an absent id is a no-op.
	Delete(ctx context.Context, id uuid.UUID, namespace string) error
	// Query returns up to topK matches in the namespace, best first.
	// Availability failures wrap ErrIndexUnavailable.
	Query(ctx context.Context, vector []float64, namespace string, topK int, filter MetadataFilter) ([]Match, error)
	// Count reports how many records the namespace holds.
	Count(ctx context.Context, namespace string) (int, error)
}
