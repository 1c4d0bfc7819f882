package modelrunner

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/marqueshop/recommender/internal/domain"
	"github.com/marqueshop/recommender/internal/telemetry"
)

// SemanticEncoder implements domain.SemanticEncoder on top of the
// embeddings endpoint. A single encoder instance is pinned to one model
// so that indexed vectors and query vectors stay comparable.
type SemanticEncoder struct {
	llm              domain.LLMClient
	model            string
	embeddingFactory EmbeddingFactory
}

// NewSemanticEncoder creates a new encoder for the given model.
func NewSemanticEncoder(llm domain.LLMClient, model string) SemanticEncoder {
	return SemanticEncoder{
		llm:              llm,
		model:            model,
		embeddingFactory: embeddingFactory{},
	}
}

// EncodeProduct implements domain.SemanticEncoder.EncodeProduct
func (e SemanticEncoder) EncodeProduct(ctx context.Context, product domain.Product) (domain.EmbeddingVector, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if !product.HasEmbeddingText() {
		err := domain.NewValidationErr("product has no text to encode")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.EmbeddingVector{}, err
	}

	prompt := e.embeddingFactory.Get(e.model).GenerateIndexingPrompt(product)
	return e.encode(spanCtx, prompt)
}

// EncodeQuery implements domain.SemanticEncoder.EncodeQuery
func (e SemanticEncoder) EncodeQuery(ctx context.Context, query string) (domain.EmbeddingVector, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	prompt := e.embeddingFactory.Get(e.model).GenerateSearchPrompt(query)
	return e.encode(spanCtx, prompt)
}

func (e SemanticEncoder) encode(ctx context.Context, prompt string) (domain.EmbeddingVector, error) {
	resp, err := e.llm.Embed(ctx, e.model, prompt)
	if err != nil {
		return domain.EmbeddingVector{}, err
	}

	if len(resp.Embedding) != domain.EmbeddingDimension {
		return domain.EmbeddingVector{}, fmt.Errorf(
			"unexpected embedding dimension %d, want %d", len(resp.Embedding), domain.EmbeddingDimension,
		)
	}

	return domain.EmbeddingVector{
		Vector:      resp.Embedding,
		TotalTokens: resp.TotalTokens,
	}, nil
}

// InitSemanticEncoder initializes the SemanticEncoder dependency
type InitSemanticEncoder struct {
	LLMClient      domain.LLMClient `resolve:""`
	EmbeddingModel string           `config:"EMBEDDING_MODEL" default:"ai/embeddinggemma"`
}

// Initialize registers the SemanticEncoder
func (i InitSemanticEncoder) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.SemanticEncoder](NewSemanticEncoder(i.LLMClient, i.EmbeddingModel))
	return ctx, nil
}
