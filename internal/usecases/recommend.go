package usecases

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/marqueshop/recommender/internal/domain"
	"github.com/marqueshop/recommender/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// How many candidates the degraded ranking path keeps, and the
	// confidence it reports for them.
	DEGRADED_RANK_COUNT      = 3
	DEGRADED_RANK_CONFIDENCE = 0.3
)

// Recommend is the orchestrator that drives one recommendation request
// through the pipeline stages.
type Recommend interface {
	// Execute runs the pipeline to a terminal stage. The returned error is
	// reserved for invalid input; assistant failures surface as a FAILED
	// result with a machine-readable reason.
	Execute(ctx context.Context, query string, market domain.Market, audience domain.Audience) (domain.RecommendationResult, error)
}

// RecommendImpl is the implementation of Recommend.
type RecommendImpl struct {
	understand   UnderstandQuery
	extract      ExtractRequirements
	search       SearchCandidates
	rank         RankCandidates
	explain      ExplainSelection
	logger       *log.Logger
	stageTimeout time.Duration
}

// NewRecommendImpl creates a new instance of RecommendImpl.
func NewRecommendImpl(
	understand UnderstandQuery,
	extract ExtractRequirements,
	search SearchCandidates,
	rank RankCandidates,
	explain ExplainSelection,
	logger *log.Logger,
	stageTimeout time.Duration,
) RecommendImpl {
	return RecommendImpl{
		understand:   understand,
		extract:      extract,
		search:       search,
		rank:         rank,
		explain:      explain,
		logger:       logger,
		stageTimeout: stageTimeout,
	}
}

// Execute drives the state machine. Understanding and extraction
// failures fail the request; ranking and explanation failures degrade.
func (r RecommendImpl) Execute(ctx context.Context, query string, market domain.Market, audience domain.Audience) (domain.RecommendationResult, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("market", string(market)),
		attribute.String("audience", string(audience)),
	))
	defer span.End()

	if strings.TrimSpace(query) == "" {
		return domain.RecommendationResult{}, domain.NewValidationErr("query cannot be empty")
	}
	if !market.Valid() || market == domain.Market_ALL {
		return domain.RecommendationResult{}, domain.NewValidationErr("unknown market: " + string(market))
	}
	if !audience.Valid() {
		return domain.RecommendationResult{}, domain.NewValidationErr("unknown audience: " + string(audience))
	}

	state := domain.NewPipelineState(query, market, audience)
	defer func() {
		RecordPipelineOutcome(spanCtx, string(state.Stage))
	}()

	if err := r.runStage(spanCtx, "understand", state, r.understand.Execute); err != nil {
		r.failState(span, state, "understand", err)
		return resultOf(state), nil
	}
	if err := r.runStage(spanCtx, "extract", state, r.extract.Execute); err != nil {
		r.failState(span, state, "extract", err)
		return resultOf(state), nil
	}
	if err := r.runStage(spanCtx, "search", state, r.search.Execute); err != nil {
		r.failState(span, state, "search", err)
		return resultOf(state), nil
	}

	if len(state.Candidates) == 0 {
		state.NoMatch()
		span.AddEvent("no candidates found")
		return resultOf(state), nil
	}

	if err := r.runStage(spanCtx, "rank", state, r.rank.Execute); err != nil {
		r.degradeRanking(span, state, err)
	}

	if err := r.runStage(spanCtx, "explain", state, r.explain.Execute); err != nil {
		// ExplainSelection degrades internally; an error here means the
		// stage deadline fired before it could even do that.
		r.logger.Printf("Recommend:explanation stage aborted: %v", err)
		state.Explanation = GENERIC_EXPLANATION
		if state.Stage != domain.PipelineStage_Explained {
			if advErr := state.Advance(domain.PipelineStage_Explained); advErr != nil {
				r.failState(span, state, "explain", advErr)
				return resultOf(state), nil
			}
		}
	}

	if err := state.Advance(domain.PipelineStage_Done); err != nil {
		r.failState(span, state, "done", err)
		return resultOf(state), nil
	}

	span.SetAttributes(attribute.String("stage", string(state.Stage)))
	return resultOf(state), nil
}

// runStage executes one pipeline stage under the per-stage deadline.
func (r RecommendImpl) runStage(ctx context.Context, name string, state *domain.PipelineState, fn func(context.Context, *domain.PipelineState) error) error {
	stageCtx, cancel := context.WithTimeout(ctx, r.stageTimeout)
	defer cancel()

	spanCtx, span := telemetry.Start(stageCtx, trace.WithAttributes(
		attribute.String("pipeline_stage", name),
	))
	defer span.End()

	err := fn(spanCtx, state)
	telemetry.RecordErrorAndStatus(span, err)
	return err
}

// failState moves the pipeline to FAILED with the reason derived from the error.
func (r RecommendImpl) failState(span trace.Span, state *domain.PipelineState, stage string, err error) {
	reason := domain.FailureReason_AssistantUnavailable
	if errors.Is(err, context.DeadlineExceeded) {
		reason = domain.FailureReason_Timeout
	}
	r.logger.Printf("Recommend:%s stage failed (%s): %v", stage, reason, err)
	span.SetAttributes(attribute.String("failure_reason", string(reason)))
	state.Fail(reason)
}

// degradeRanking applies the positional fallback when the model cannot rank.
func (r RecommendImpl) degradeRanking(span trace.Span, state *domain.PipelineState, err error) {
	r.logger.Printf("Recommend:ranking degraded to positional pick: %v", err)
	span.AddEvent("ranking degraded to positional pick")

	count := DEGRADED_RANK_COUNT
	if len(state.Candidates) < count {
		count = len(state.Candidates)
	}

	selected := make([]uuid.UUID, 0, count)
	for _, c := range state.Candidates[:count] {
		selected = append(selected, c.Product.ID)
	}

	state.Selected = selected
	state.Confidence = DEGRADED_RANK_CONFIDENCE
	if state.Stage != domain.PipelineStage_Ranked {
		_ = state.Advance(domain.PipelineStage_Ranked)
	}
}

func resultOf(state *domain.PipelineState) domain.RecommendationResult {
	return domain.RecommendationResult{
		Stage:         state.Stage,
		FailureReason: state.FailureReason,
		Items:         state.SelectedCandidates(),
		Explanation:   state.Explanation,
		Confidence:    state.Confidence,
		Requirements:  state.Requirements,
	}
}

// InitRecommend initializes the Recommend orchestrator.
type InitRecommend struct {
	Understand   UnderstandQuery     `resolve:""`
	Extract      ExtractRequirements `resolve:""`
	Search       SearchCandidates    `resolve:""`
	Rank         RankCandidates      `resolve:""`
	Explain      ExplainSelection    `resolve:""`
	Logger       *log.Logger         `resolve:""`
	StageTimeout time.Duration       `config:"STAGE_TIMEOUT" default:"20s"`
}

// Initialize registers Recommend in the dependency container.
func (i InitRecommend) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[Recommend](NewRecommendImpl(
		i.Understand,
		i.Extract,
		i.Search,
		i.Rank,
		i.Explain,
		i.Logger,
		i.StageTimeout,
	))
	return ctx, nil
}
