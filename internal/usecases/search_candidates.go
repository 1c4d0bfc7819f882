package usecases

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/marqueshop/recommender/internal/domain"
	"github.com/marqueshop/recommender/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

// CANDIDATE_TOP_K bounds how many products any search path hands to ranking.
const CANDIDATE_TOP_K = 20

// SearchCandidates is the pipeline stage that turns the extracted
// requirements into a candidate product set.
type SearchCandidates interface {
	// Execute fills state.Candidates and advances the pipeline. An empty
	// candidate set is a valid outcome; the orchestrator decides NO_MATCH.
	Execute(ctx context.Context, state *domain.PipelineState) error
}

// SearchCandidatesImpl is the implementation of SearchCandidates.
type SearchCandidatesImpl struct {
	encoder domain.SemanticEncoder
	index   domain.VectorIndex
	catalog domain.CatalogRepository
	logger  *log.Logger
}

// NewSearchCandidatesImpl creates a new instance of SearchCandidatesImpl.
func NewSearchCandidatesImpl(
	encoder domain.SemanticEncoder,
	index domain.VectorIndex,
	catalog domain.CatalogRepository,
	logger *log.Logger,
) SearchCandidatesImpl {
	return SearchCandidatesImpl{
		encoder: encoder,
		index:   index,
		catalog: catalog,
		logger:  logger,
	}
}

// Execute runs the vector search and, when the index cannot serve,
// degrades to attribute search so a shopper still gets an answer.
func (sc SearchCandidatesImpl) Execute(ctx context.Context, state *domain.PipelineState) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	candidates, err := sc.vectorSearch(spanCtx, state)
	switch {
	case errors.Is(err, domain.ErrIndexUnavailable):
		sc.logger.Printf("SearchCandidates:vector index unavailable, falling back to attribute search: %v", err)
		span.AddEvent("vector index unavailable, attribute fallback")
		candidates, err = sc.attributeSearch(spanCtx, state)
		if telemetry.RecordErrorAndStatus(span, err) {
			return err
		}
	case telemetry.RecordErrorAndStatus(span, err):
		return err
	}

	if len(candidates) == 0 && state.Requirements.IsEmpty() {
		candidates, err = sc.popularSearch(spanCtx, state)
		if telemetry.RecordErrorAndStatus(span, err) {
			return err
		}
	}

	span.SetAttributes(attribute.Int("candidates", len(candidates)))
	state.Candidates = candidates

	if err := state.Advance(domain.PipelineStage_Searched); telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// vectorSearch queries the requester-market namespace and the shared
// ALL namespace and merges the hits by score.
func (sc SearchCandidatesImpl) vectorSearch(ctx context.Context, state *domain.PipelineState) ([]domain.Candidate, error) {
	embedding, err := sc.encoder.EncodeQuery(ctx, buildSemanticQuery(state))
	if err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}
	RecordLLMTokensEmbedding(ctx, embedding.TotalTokens)

	filter := domain.MetadataFilter{
		InStockOnly: true,
		Audiences:   audienceSet(state.Audience),
	}

	namespaces := []string{domain.NamespaceForMarket(state.Market)}
	if state.Market != domain.Market_ALL {
		namespaces = append(namespaces, domain.NamespaceForMarket(domain.Market_ALL))
	}

	seen := map[uuid.UUID]domain.Match{}
	for _, namespace := range namespaces {
		matches, err := sc.index.Query(ctx, embedding.Vector, namespace, CANDIDATE_TOP_K, filter)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			if prev, ok := seen[m.ID]; !ok || m.Score > prev.Score {
				seen[m.ID] = m
			}
		}
	}

	merged := make([]domain.Match, 0, len(seen))
	for _, m := range seen {
		merged = append(merged, m)
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].Score > merged[j].Score })
	if len(merged) > CANDIDATE_TOP_K {
		merged = merged[:CANDIDATE_TOP_K]
	}

	return sc.hydrateMatches(ctx, merged)
}

// hydrateMatches loads the full products behind the vector hits,
// dropping ids the catalog no longer knows.
func (sc SearchCandidatesImpl) hydrateMatches(ctx context.Context, matches []domain.Match) ([]domain.Candidate, error) {
	if len(matches) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.ID)
	}

	products, err := sc.catalog.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate products: %w", err)
	}

	byID := make(map[uuid.UUID]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	candidates := make([]domain.Candidate, 0, len(matches))
	for _, m := range matches {
		product, ok := byID[m.ID]
		if !ok {
			continue
		}
		candidates = append(candidates, domain.Candidate{
			Product: product,
			Score:   m.Score,
			Source:  domain.CandidateSource_Vector,
		})
	}
	return candidates, nil
}

// attributeSearch is the relational fallback used when the vector index
// is unreachable.
func (sc SearchCandidatesImpl) attributeSearch(ctx context.Context, state *domain.PipelineState) ([]domain.Candidate, error) {
	products, err := sc.catalog.SearchByAttributes(ctx, domain.AttributeQuery{
		Market:    state.Market,
		Audiences: audienceSet(state.Audience),
		Occasions: state.Requirements.Occasions,
		Styles:    state.Requirements.Styles,
		Seasons:   state.Requirements.Seasons,
		PriceMin:  state.Requirements.PriceMin,
		PriceMax:  state.Requirements.PriceMax,
		InStock:   true,
		Limit:     CANDIDATE_TOP_K,
	})
	if err != nil {
		return nil, fmt.Errorf("attribute fallback failed: %w", err)
	}

	candidates := make([]domain.Candidate, 0, len(products))
	for _, p := range products {
		candidates = append(candidates, domain.Candidate{
			Product: p,
			Source:  domain.CandidateSource_Fallback,
		})
	}
	return candidates, nil
}

// popularSearch serves broad queries that matched nothing semantically.
func (sc SearchCandidatesImpl) popularSearch(ctx context.Context, state *domain.PipelineState) ([]domain.Candidate, error) {
	products, err := sc.catalog.ListPopularProducts(ctx, state.Market, audienceSet(state.Audience), CANDIDATE_TOP_K)
	if err != nil {
		return nil, fmt.Errorf("popular fallback failed: %w", err)
	}

	candidates := make([]domain.Candidate, 0, len(products))
	for _, p := range products {
		candidates = append(candidates, domain.Candidate{
			Product: p,
			Source:  domain.CandidateSource_Popular,
		})
	}
	return candidates, nil
}

// buildSemanticQuery combines the shopper's words with the extracted
// requirements so the embedding reflects both.
func buildSemanticQuery(state *domain.PipelineState) string {
	parts := []string{state.Query}
	if len(state.Requirements.Occasions) > 0 {
		parts = append(parts, "occasion: "+strings.Join(state.Requirements.Occasions, ", "))
	}
	if len(state.Requirements.Styles) > 0 {
		parts = append(parts, "style: "+strings.Join(state.Requirements.Styles, ", "))
	}
	if len(state.Requirements.Seasons) > 0 {
		parts = append(parts, "season: "+strings.Join(state.Requirements.Seasons, ", "))
	}
	if len(state.Requirements.Colors) > 0 {
		parts = append(parts, "colors: "+strings.Join(state.Requirements.Colors, ", "))
	}
	return strings.Join(parts, " | ")
}

// audienceSet expands the requester audience with unisex, which is
// eligible for everyone.
func audienceSet(a domain.Audience) []domain.Audience {
	if a == domain.Audience_Unisex {
		return []domain.Audience{domain.Audience_Unisex}
	}
	return []domain.Audience{a, domain.Audience_Unisex}
}

// InitSearchCandidates initializes the SearchCandidates stage.
type InitSearchCandidates struct {
	Encoder domain.SemanticEncoder   `resolve:""`
	Index   domain.VectorIndex       `resolve:""`
	Catalog domain.CatalogRepository `resolve:""`
	Logger  *log.Logger              `resolve:""`
}

// Initialize registers SearchCandidates in the dependency container.
func (i InitSearchCandidates) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[SearchCandidates](NewSearchCandidatesImpl(i.Encoder, i.Index, i.Catalog, i.Logger))
	return ctx, nil
}
