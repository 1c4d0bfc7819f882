package usecases

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/marqueshop/recommender/internal/common"
	"github.com/marqueshop/recommender/internal/domain"
	"github.com/marqueshop/recommender/internal/telemetry"
	"github.com/toon-format/toon-go"
	"go.opentelemetry.io/otel/attribute"
)

const (
	// Selection bounds enforced regardless of what the model returns.
	RANK_MIN_SELECTED = 1
	RANK_MAX_SELECTED = 5

	RANK_MAX_TOKENS  = 300
	RANK_TEMPERATURE = 0.1
)

//go:embed prompts/rank-candidates.yml
var rankCandidatesPrompt embed.FS

// RankCandidates is the pipeline stage that picks the best subset of
// the candidate products.
type RankCandidates interface {
	// Execute fills state.Selected and state.Confidence and advances the
	// pipeline. It errors when the model output cannot be salvaged; the
	// orchestrator degrades to a positional pick in that case.
	Execute(ctx context.Context, state *domain.PipelineState) error
}

// RankCandidatesImpl is the implementation of RankCandidates.
type RankCandidatesImpl struct {
	llmClient domain.LLMClient
	model     string
}

// NewRankCandidatesImpl creates a new instance of RankCandidatesImpl.
func NewRankCandidatesImpl(c domain.LLMClient, model string) RankCandidatesImpl {
	return RankCandidatesImpl{
		llmClient: c,
		model:     model,
	}
}

// rankingCandidate is the row shape handed to the model.
type rankingCandidate struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Brand     string   `json:"brand"`
	Price     float64  `json:"price"`
	Rating    float64  `json:"rating"`
	Score     float64  `json:"score"`
	Occasions []string `json:"occasions,omitempty"`
	Styles    []string `json:"styles,omitempty"`
	Colors    []string `json:"colors,omitempty"`
}

// rankingSelection is the schema-constrained model output.
type rankingSelection struct {
	ProductIDs []string `json:"product_ids"`
	Confidence float64  `json:"confidence"`
	Reasoning  string   `json:"reasoning"`
}

// Execute asks the model for the best 3-5 candidates and enforces the
// subset contract on whatever comes back.
func (rc RankCandidatesImpl) Execute(ctx context.Context, state *domain.PipelineState) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if len(state.Candidates) == 0 {
		state.Selected = nil
		state.Confidence = 0
		if err := state.Advance(domain.PipelineStage_Ranked); telemetry.RecordErrorAndStatus(span, err) {
			return err
		}
		return nil
	}

	messages, err := rc.buildPromptMessages(state)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to build ranking prompt: %w", err)
	}

	resp, err := rc.llmClient.Chat(spanCtx, domain.LLMChatRequest{
		Model:          rc.model,
		Messages:       messages,
		MaxTokens:      common.Ptr(RANK_MAX_TOKENS),
		Temperature:    common.Ptr(RANK_TEMPERATURE),
		ResponseFormat: rankingResponseFormat(),
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	RecordLLMTokensUsed(spanCtx, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)

	var selection rankingSelection
	if err := json.Unmarshal([]byte(resp.Content), &selection); telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to decode ranking selection: %w", err)
	}

	selected := rc.enforceSubset(selection.ProductIDs, state.Candidates)
	if len(selected) < RANK_MIN_SELECTED {
		err := fmt.Errorf("model selected no known candidates")
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}

	span.SetAttributes(
		attribute.Int("selected", len(selected)),
		attribute.Float64("confidence", selection.Confidence),
	)

	state.Selected = selected
	state.Confidence = clampConfidence(selection.Confidence)

	if err := state.Advance(domain.PipelineStage_Ranked); telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// enforceSubset keeps only ids that name actual candidates, deduped,
// capped at the selection maximum. Anything else is model noise.
func (rc RankCandidatesImpl) enforceSubset(ids []string, candidates []domain.Candidate) []uuid.UUID {
	known := make(map[uuid.UUID]bool, len(candidates))
	for _, c := range candidates {
		known[c.Product.ID] = true
	}

	var selected []uuid.UUID
	seen := map[uuid.UUID]bool{}
	for _, raw := range ids {
		id, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil || !known[id] || seen[id] {
			continue
		}
		seen[id] = true
		selected = append(selected, id)
		if len(selected) == RANK_MAX_SELECTED {
			break
		}
	}
	return selected
}

// buildPromptMessages loads the prompt template and injects the intent
// plus the TOON candidate table.
func (rc RankCandidatesImpl) buildPromptMessages(state *domain.PipelineState) ([]domain.LLMChatMessage, error) {
	table, err := marshalCandidates(state.Candidates)
	if err != nil {
		return nil, err
	}

	file, err := rankCandidatesPrompt.Open("prompts/rank-candidates.yml")
	if err != nil {
		return nil, err
	}
	defer file.Close() //nolint:errcheck

	messages, err := decodePromptMessages(file)
	if err != nil {
		return nil, err
	}

	intent := state.Intent
	if strings.TrimSpace(intent) == "" {
		intent = state.Query
	}

	return interpolatePromptMessages(messages, intent, table), nil
}

// marshalCandidates converts the candidate set into a TOON table for LLM input.
func marshalCandidates(candidates []domain.Candidate) (string, error) {
	rows := make([]rankingCandidate, 0, len(candidates))
	for _, c := range candidates {
		rows = append(rows, rankingCandidate{
			ID:        c.Product.ID.String(),
			Name:      c.Product.Name,
			Brand:     c.Product.Brand,
			Price:     c.Product.Price,
			Rating:    c.Product.Rating,
			Score:     c.Score,
			Occasions: c.Product.OccasionTags,
			Styles:    c.Product.StyleTags,
			Colors:    c.Product.ColorTags,
		})
	}

	table, err := toon.MarshalString(struct {
		Candidates []rankingCandidate `json:"candidates"`
	}{Candidates: rows}, toon.WithLengthMarkers(true))
	if err != nil {
		return "", fmt.Errorf("failed to marshal candidates: %w", err)
	}
	return table, nil
}

// rankingResponseFormat pins ranking output to a JSON schema.
func rankingResponseFormat() *domain.LLMResponseFormat {
	return &domain.LLMResponseFormat{
		Name: "ranking_selection",
		Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"product_ids": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"minItems": RANK_MIN_SELECTED,
					"maxItems": RANK_MAX_SELECTED,
				},
				"confidence": map[string]any{"type": "number", "minimum": 0, "maximum": 1},
				"reasoning":  map[string]any{"type": "string"},
			},
			"required":             []string{"product_ids", "confidence", "reasoning"},
			"additionalProperties": false,
		},
	}
}

func clampConfidence(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}

// InitRankCandidates initializes the RankCandidates stage.
type InitRankCandidates struct {
	LLMClient domain.LLMClient `resolve:""`
	Model     string           `config:"LLM_CHAT_MODEL" default:"ai/gemma3"`
}

// Initialize registers RankCandidates in the dependency container.
func (i InitRankCandidates) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[RankCandidates](NewRankCandidatesImpl(i.LLMClient, i.Model))
	return ctx, nil
}
