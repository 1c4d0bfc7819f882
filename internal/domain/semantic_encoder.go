package domain

import "context"

// EmbeddingVector is a semantic vector plus token accounting.
type EmbeddingVector struct {
	Vector      []float64
	TotalTokens int
}

// SemanticEncoder defines embedding/vectorization behavior in domain
// terms. Indexing and querying must go through the same encoder: cosine
// similarity between vectors from different encoders is meaningless.
type SemanticEncoder interface {
	// EncodeProduct generates the semantic vector for one catalog item.
	EncodeProduct(ctx context.Context, product Product) (EmbeddingVector, error)
	// EncodeQuery generates the semantic vector for one search query.
	EncodeQuery(ctx context.Context, query string) (EmbeddingVector, error)
}
