package usecases

import (
	"context"
	"embed"
	"fmt"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/marqueshop/recommender/internal/common"
	"github.com/marqueshop/recommender/internal/domain"
	"github.com/marqueshop/recommender/internal/telemetry"
)

const (
	// Keep intent restatement short and deterministic.
	UNDERSTAND_MAX_TOKENS  = 160
	UNDERSTAND_TEMPERATURE = 0.2
	UNDERSTAND_TOP_P       = 0.7
)

//go:embed prompts/understand-query.yml
var understandQueryPrompt embed.FS

// UnderstandQuery is the pipeline stage that restates the shopper's
// free-text query as a concise intent summary.
type UnderstandQuery interface {
	// Execute fills state.Intent and advances the pipeline.
	Execute(ctx context.Context, state *domain.PipelineState) error
}

// UnderstandQueryImpl is the implementation of UnderstandQuery.
type UnderstandQueryImpl struct {
	llmClient    domain.LLMClient
	timeProvider domain.CurrentTimeProvider
	model        string
}

// NewUnderstandQueryImpl creates a new instance of UnderstandQueryImpl.
func NewUnderstandQueryImpl(c domain.LLMClient, tp domain.CurrentTimeProvider, model string) UnderstandQueryImpl {
	return UnderstandQueryImpl{
		llmClient:    c,
		timeProvider: tp,
		model:        model,
	}
}

// Execute fills state.Intent with an LLM restatement of the query.
func (uq UnderstandQueryImpl) Execute(ctx context.Context, state *domain.PipelineState) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if strings.TrimSpace(state.Query) == "" {
		return domain.NewValidationErr("query cannot be empty")
	}

	eventDateText := "none"
	if date, ok := domain.ExtractEventDate(state.Query, uq.timeProvider.Now(), time.UTC); ok {
		eventDateText = date.Format("Monday, 2006-01-02")
	}

	messages, err := uq.buildPromptMessages(state, eventDateText)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to build understand prompt: %w", err)
	}

	resp, err := uq.llmClient.Chat(spanCtx, domain.LLMChatRequest{
		Model:       uq.model,
		Messages:    messages,
		MaxTokens:   common.Ptr(UNDERSTAND_MAX_TOKENS),
		Temperature: common.Ptr(UNDERSTAND_TEMPERATURE),
		TopP:        common.Ptr(UNDERSTAND_TOP_P),
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	RecordLLMTokensUsed(spanCtx, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)

	intent := strings.TrimSpace(resp.Content)
	if intent == "" {
		intent = state.Query
	}

	state.Intent = intent
	state.Conversation = append(state.Conversation,
		domain.LLMChatMessage{Role: domain.ChatRole_User, Content: state.Query},
		domain.LLMChatMessage{Role: domain.ChatRole_Assistant, Content: intent},
	)

	if err := state.Advance(domain.PipelineStage_Understood); telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// buildPromptMessages loads the prompt template and injects the query context.
func (uq UnderstandQueryImpl) buildPromptMessages(state *domain.PipelineState, eventDateText string) ([]domain.LLMChatMessage, error) {
	file, err := understandQueryPrompt.Open("prompts/understand-query.yml")
	if err != nil {
		return nil, err
	}
	defer file.Close() //nolint:errcheck

	messages, err := decodePromptMessages(file)
	if err != nil {
		return nil, err
	}

	return interpolatePromptMessages(messages,
		state.Query,
		string(state.Market),
		string(state.Audience),
		eventDateText,
	), nil
}

// InitUnderstandQuery initializes the UnderstandQuery stage.
type InitUnderstandQuery struct {
	LLMClient    domain.LLMClient           `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Model        string                     `config:"LLM_CHAT_MODEL" default:"ai/gemma3"`
}

// Initialize registers UnderstandQuery in the dependency container.
func (i InitUnderstandQuery) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[UnderstandQuery](NewUnderstandQueryImpl(i.LLMClient, i.TimeProvider, i.Model))
	return ctx, nil
}
