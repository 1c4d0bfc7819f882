package usecases

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/marqueshop/recommender/internal/common"
	"github.com/marqueshop/recommender/internal/domain"
	"github.com/marqueshop/recommender/internal/telemetry"
)

const (
	// Structured extraction wants determinism, not creativity.
	EXTRACT_MAX_TOKENS  = 220
	EXTRACT_TEMPERATURE = 0.0
)

//go:embed prompts/extract-requirements.yml
var extractRequirementsPrompt embed.FS

// ExtractRequirements is the pipeline stage that turns the intent
// summary into a structured RequirementFilter.
type ExtractRequirements interface {
	// Execute fills state.Requirements and advances the pipeline.
	Execute(ctx context.Context, state *domain.PipelineState) error
}

// ExtractRequirementsImpl is the implementation of ExtractRequirements.
type ExtractRequirementsImpl struct {
	llmClient domain.LLMClient
	model     string
}

// NewExtractRequirementsImpl creates a new instance of ExtractRequirementsImpl.
func NewExtractRequirementsImpl(c domain.LLMClient, model string) ExtractRequirementsImpl {
	return ExtractRequirementsImpl{
		llmClient: c,
		model:     model,
	}
}

// Execute asks the LLM for a requirement filter constrained to the
// pinned vocabulary and normalizes whatever comes back. An all-empty
// filter is a valid outcome, not an error.
func (er ExtractRequirementsImpl) Execute(ctx context.Context, state *domain.PipelineState) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	messages, err := er.buildPromptMessages(state)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to build extraction prompt: %w", err)
	}

	resp, err := er.llmClient.Chat(spanCtx, domain.LLMChatRequest{
		Model:          er.model,
		Messages:       messages,
		MaxTokens:      common.Ptr(EXTRACT_MAX_TOKENS),
		Temperature:    common.Ptr(EXTRACT_TEMPERATURE),
		ResponseFormat: requirementResponseFormat(),
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	RecordLLMTokensUsed(spanCtx, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)

	var filter domain.RequirementFilter
	if err := json.Unmarshal([]byte(resp.Content), &filter); telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to decode extracted requirements: %w", err)
	}

	state.Requirements = filter.Normalize()

	if err := state.Advance(domain.PipelineStage_Extracted); telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// buildPromptMessages loads the prompt template and injects the
// vocabulary lists plus the intent summary.
func (er ExtractRequirementsImpl) buildPromptMessages(state *domain.PipelineState) ([]domain.LLMChatMessage, error) {
	file, err := extractRequirementsPrompt.Open("prompts/extract-requirements.yml")
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

	return interpolatePromptMessages(messages,
		strings.Join(domain.KnownOccasions, ", "),
		strings.Join(domain.KnownStyles, ", "),
		strings.Join(domain.KnownSeasons, ", "),
		intent,
	), nil
}

// requirementResponseFormat pins extraction output to a JSON schema
// whose enums are the catalog vocabulary.
func requirementResponseFormat() *domain.LLMResponseFormat {
	return &domain.LLMResponseFormat{
		Name: "requirement_filter",
		Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"occasion": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string", "enum": domain.KnownOccasions},
				},
				"style": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string", "enum": domain.KnownStyles},
				},
				"season": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string", "enum": domain.KnownSeasons},
				},
				"colors": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
				"price_min": map[string]any{"type": []string{"number", "null"}},
				"price_max": map[string]any{"type": []string{"number", "null"}},
			},
			"required":             []string{"occasion", "style", "season"},
			"additionalProperties": false,
		},
	}
}

// InitExtractRequirements initializes the ExtractRequirements stage.
type InitExtractRequirements struct {
	LLMClient domain.LLMClient `resolve:""`
	Model     string           `config:"LLM_CHAT_MODEL" default:"ai/gemma3"`
}

// Initialize registers ExtractRequirements in the dependency container.
func (i InitExtractRequirements) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ExtractRequirements](NewExtractRequirementsImpl(i.LLMClient, i.Model))
	return ctx, nil
}
