package usecases

import (
	"context"
	"embed"
	"fmt"
	"log"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/marqueshop/recommender/internal/common"
	"github.com/marqueshop/recommender/internal/domain"
	"github.com/marqueshop/recommender/internal/telemetry"
)

const (
	EXPLAIN_MAX_TOKENS  = 200
	EXPLAIN_TEMPERATURE = 0.6
	EXPLAIN_TOP_P       = 0.9

	// GENERIC_EXPLANATION is served whenever explanation generation
	// fails; a selection without prose is still a useful answer.
	GENERIC_EXPLANATION = "These picks match what you asked for and are available right now."
)

//go:embed prompts/explain-selection.yml
var explainSelectionPrompt embed.FS

// ExplainSelection is the pipeline stage that writes the shopper-facing
// explanation for the final selection.
type ExplainSelection interface {
	// Execute fills state.Explanation and advances the pipeline. It never
	// fails the request: explanation errors degrade to a generic text.
	Execute(ctx context.Context, state *domain.PipelineState) error
}

// ExplainSelectionImpl is the implementation of ExplainSelection.
type ExplainSelectionImpl struct {
	llmClient domain.LLMClient
	model     string
	logger    *log.Logger
}

// NewExplainSelectionImpl creates a new instance of ExplainSelectionImpl.
func NewExplainSelectionImpl(c domain.LLMClient, model string, logger *log.Logger) ExplainSelectionImpl {
	return ExplainSelectionImpl{
		llmClient: c,
		model:     model,
		logger:    logger,
	}
}

// Execute generates the explanation, falling back to the generic text
// on any LLM failure.
func (es ExplainSelectionImpl) Execute(ctx context.Context, state *domain.PipelineState) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	state.Explanation = GENERIC_EXPLANATION

	explanation, err := es.generate(spanCtx, state)
	if err != nil {
		es.logger.Printf("ExplainSelection:falling back to generic explanation: %v", err)
		span.AddEvent("explanation generation failed, using generic text")
	} else if explanation != "" {
		state.Explanation = explanation
	}

	if err := state.Advance(domain.PipelineStage_Explained); telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

func (es ExplainSelectionImpl) generate(ctx context.Context, state *domain.PipelineState) (string, error) {
	messages, err := es.buildPromptMessages(state)
	if err != nil {
		return "", fmt.Errorf("failed to build explanation prompt: %w", err)
	}

	resp, err := es.llmClient.Chat(ctx, domain.LLMChatRequest{
		Model:       es.model,
		Messages:    messages,
		MaxTokens:   common.Ptr(EXPLAIN_MAX_TOKENS),
		Temperature: common.Ptr(EXPLAIN_TEMPERATURE),
		TopP:        common.Ptr(EXPLAIN_TOP_P),
	})
	if err != nil {
		return "", err
	}
	RecordLLMTokensUsed(ctx, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)

	return strings.TrimSpace(resp.Content), nil
}

// buildPromptMessages loads the prompt template and injects the intent
// plus a plain-text rendering of the selected products.
func (es ExplainSelectionImpl) buildPromptMessages(state *domain.PipelineState) ([]domain.LLMChatMessage, error) {
	file, err := explainSelectionPrompt.Open("prompts/explain-selection.yml")
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

	return interpolatePromptMessages(messages, intent, formatSelectedProducts(state.SelectedCandidates())), nil
}

// formatSelectedProducts renders the picked products one per line.
func formatSelectedProducts(selected []domain.Candidate) string {
	if len(selected) == 0 {
		return "none"
	}

	lines := make([]string, 0, len(selected))
	for _, c := range selected {
		p := c.Product
		attrs := []string{fmt.Sprintf("%.2f", p.Price)}
		if len(p.OccasionTags) > 0 {
			attrs = append(attrs, "occasions: "+strings.Join(p.OccasionTags, ", "))
		}
		if len(p.StyleTags) > 0 {
			attrs = append(attrs, "styles: "+strings.Join(p.StyleTags, ", "))
		}
		if len(p.ColorTags) > 0 {
			attrs = append(attrs, "colors: "+strings.Join(p.ColorTags, ", "))
		}
		lines = append(lines, fmt.Sprintf("- %s by %s (%s)", p.Name, p.Brand, strings.Join(attrs, "; ")))
	}
	return strings.Join(lines, "\n")
}

// InitExplainSelection initializes the ExplainSelection stage.
type InitExplainSelection struct {
	LLMClient domain.LLMClient `resolve:""`
	Model     string           `config:"LLM_CHAT_MODEL" default:"ai/gemma3"`
	Logger    *log.Logger      `resolve:""`
}

// Initialize registers ExplainSelection in the dependency container.
func (i InitExplainSelection) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ExplainSelection](NewExplainSelectionImpl(i.LLMClient, i.Model, i.Logger))
	return ctx, nil
}
