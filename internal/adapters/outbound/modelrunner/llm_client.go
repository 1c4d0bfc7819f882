package modelrunner

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/marqueshop/recommender/internal/domain"
	"github.com/marqueshop/recommender/internal/telemetry"
)

// LLMClient adapts DRMAPIClient to domain.LLMClient interface
type LLMClient struct {
	client DRMAPIClient
}

// NewLLMClientAdapter creates a new adapter
func NewLLMClientAdapter(client DRMAPIClient) LLMClient {
	return LLMClient{client: client}
}

// Chat implements domain.LLMClient.Chat
func (a LLMClient) Chat(ctx context.Context, req domain.LLMChatRequest) (domain.LLMChatResponse, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	adapterReq := ChatRequest{
		Model:       req.Model,
		Temperature: req.Temperature,
		TopP:        req.TopP,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]ChatMessage, len(req.Messages)),
	}

	for i, msg := range req.Messages {
		adapterReq.Messages[i] = ChatMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		}
	}

	if req.ResponseFormat != nil {
		adapterReq.ResponseFormat = &ResponseFormat{
			Type: "json_schema",
			JSONSchema: JSONSchema{
				Name:   req.ResponseFormat.Name,
				Strict: true,
				Schema: req.ResponseFormat.Schema,
			},
		}
	}

	resp, err := a.client.Chat(spanCtx, adapterReq)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.LLMChatResponse{}, err
	}

	if len(resp.Choices) == 0 {
		err := errors.New("no choices in response")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.LLMChatResponse{}, err
	}

	out := domain.LLMChatResponse{Content: resp.Choices[0].Message.Content}
	if resp.Usage != nil {
		out.Usage = domain.LLMUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// Embed implements domain.LLMClient.Embed
func (a LLMClient) Embed(ctx context.Context, model, input string) (domain.EmbedResponse, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	resp, err := a.client.Embeddings(spanCtx, EmbeddingsRequest{Model: model, Input: input})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.EmbedResponse{}, err
	}

	if len(resp.Data) == 0 {
		err := errors.New("no embedding data in response")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.EmbedResponse{}, err
	}

	return domain.EmbedResponse{
		Embedding:   resp.Data[0].Embedding,
		TotalTokens: resp.Usage.TotalTokens,
	}, nil
}

// AvailableModels implements domain.LLMClient.AvailableModels
func (a LLMClient) AvailableModels(ctx context.Context) ([]domain.LLMModelInfo, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	resp, err := a.client.AvailableModels(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	models := make([]domain.LLMModelInfo, len(resp.Data))
	for i, m := range resp.Data {
		modelType := domain.LLMModelType_Chat
		if strings.Contains(m.ID, "embed") {
			modelType = domain.LLMModelType_Embedding
		}
		models[i] = domain.LLMModelInfo{
			Name: strings.TrimPrefix(m.ID, "docker.io/ai/"),
			Type: modelType,
		}
	}
	return models, nil
}

// InitLLMClient initializes the LLMClient dependency
type InitLLMClient struct {
	HttpClient *http.Client `resolve:""`
	LLMHost    string       `config:"LLM_MODEL_HOST" default:"http://localhost:12434"`
	APIKey     string       `config:"LLM_API_KEY" default:""`
}

// Initialize registers the LLMClient
func (i InitLLMClient) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.LLMClient](NewLLMClientAdapter(
		NewDRMAPIClient(i.LLMHost, i.APIKey, i.HttpClient),
	))
	return ctx, nil
}
