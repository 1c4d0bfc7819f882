package modelrunner

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/marqueshop/recommender/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLLMClientAdapter_Chat(t *testing.T) {
	tests := map[string]struct {
		request    domain.LLMChatRequest
		response   string
		statusCode int
		expectErr  bool
		expected   domain.LLMChatResponse
	}{
		"success": {
			request: domain.LLMChatRequest{
				Model: "ai/llama3",
				Messages: []domain.LLMChatMessage{
					{Role: domain.ChatRole_System, Content: "You are a shopping assistant"},
					{Role: domain.ChatRole_User, Content: "dress for a party"},
				},
			},
			statusCode: http.StatusOK,
			response: `{
				"choices": [{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"party dress it is"}}],
				"usage": {"prompt_tokens": 12, "completion_tokens": 5, "total_tokens": 17}
			}`,
			expected: domain.LLMChatResponse{
				Content: "party dress it is",
				Usage:   domain.LLMUsage{PromptTokens: 12, CompletionTokens: 5, TotalTokens: 17},
			},
		},
		"structured-output": {
			request: domain.LLMChatRequest{
				Model: "ai/llama3",
				Messages: []domain.LLMChatMessage{
					{Role: domain.ChatRole_User, Content: "extract requirements"},
				},
				ResponseFormat: &domain.LLMResponseFormat{
					Name:   "requirements",
					Schema: map[string]any{"type": "object"},
				},
			},
			statusCode: http.StatusOK,
			response: `{
				"choices": [{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"{\"occasion\":[\"party\"]}"}}]
			}`,
			expected: domain.LLMChatResponse{Content: `{"occasion":["party"]}`},
		},
		"no-choices": {
			request: domain.LLMChatRequest{
				Model:    "ai/llama3",
				Messages: []domain.LLMChatMessage{{Role: domain.ChatRole_User, Content: "hi"}},
			},
			statusCode: http.StatusOK,
			response:   `{"choices": []}`,
			expectErr:  true,
		},
		"server-error": {
			request: domain.LLMChatRequest{
				Model:    "ai/llama3",
				Messages: []domain.LLMChatMessage{{Role: domain.ChatRole_User, Content: "hi"}},
			},
			statusCode: http.StatusBadGateway,
			response:   "bad gateway",
			expectErr:  true,
		},
		"missing-model": {
			request: domain.LLMChatRequest{
				Messages: []domain.LLMChatMessage{{Role: domain.ChatRole_User, Content: "hi"}},
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var gotBody []byte
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotBody, _ = io.ReadAll(r.Body)
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.response)) //nolint:errcheck
			}))
			defer server.Close()

			client := NewDRMAPIClient(server.URL, "", server.Client())
			adapter := NewLLMClientAdapter(client)

			resp, err := adapter.Chat(context.Background(), tt.request)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, resp)

			if tt.request.ResponseFormat != nil {
				var wire ChatRequest
				require.NoError(t, json.Unmarshal(gotBody, &wire))
				require.NotNil(t, wire.ResponseFormat)
				assert.Equal(t, "json_schema", wire.ResponseFormat.Type)
				assert.Equal(t, tt.request.ResponseFormat.Name, wire.ResponseFormat.JSONSchema.Name)
				assert.True(t, wire.ResponseFormat.JSONSchema.Strict)
			}
		})
	}
}

func TestLLMClientAdapter_Embed(t *testing.T) {
	tests := map[string]struct {
		model       string
		input       string
		response    string
		statusCode  int
		expectErr   bool
		expectedVec []float64
	}{
		"success": {
			model:      "ai/embeddinggemma",
			input:      "red dress",
			statusCode: http.StatusOK,
			response: `{
				"usage": {"prompt_tokens": 4, "total_tokens": 4},
				"data": [{"embedding": [0.1, 0.2, 0.3], "index": 0, "object": "embedding"}]
			}`,
			expectedVec: []float64{0.1, 0.2, 0.3},
		},
		"no-data": {
			model:      "ai/embeddinggemma",
			input:      "red dress",
			statusCode: http.StatusOK,
			response:   `{"data": []}`,
			expectErr:  true,
		},
		"server-error": {
			model:      "ai/embeddinggemma",
			input:      "red dress",
			statusCode: http.StatusServiceUnavailable,
			response:   "unavailable",
			expectErr:  true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.response)) //nolint:errcheck
			}))
			defer server.Close()

			client := NewDRMAPIClient(server.URL, "", server.Client())
			adapter := NewLLMClientAdapter(client)

			resp, err := adapter.Embed(context.Background(), tt.model, tt.input)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedVec, resp.Embedding)
		})
	}
}

func TestLLMClientAdapter_AvailableModels(t *testing.T) {
	tests := map[string]struct {
		response   string
		statusCode int
		expectErr  bool
		expected   []domain.LLMModelInfo
	}{
		"success": {
			statusCode: http.StatusOK,
			response: `{
                "object": "list",
                "data": [
                    { "id": "docker.io/ai/qwen3-embedding" },
                    { "id": "docker.io/ai/llama3" }
                ]
            }`,
			expected: []domain.LLMModelInfo{
				{Name: "qwen3-embedding", Type: domain.LLMModelType_Embedding},
				{Name: "llama3", Type: domain.LLMModelType_Chat},
			},
		},
		"empty-list": {
			statusCode: http.StatusOK,
			response: `{
                "object": "list",
                "data": []
            }`,
			expected: []domain.LLMModelInfo{},
		},
		"server-error": {
			statusCode: http.StatusInternalServerError,
			response:   "Internal Server Error",
			expectErr:  true,
		},
		"invalid-json": {
			statusCode: http.StatusOK,
			response:   `{invalid json}`,
			expectErr:  true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.response)) //nolint:errcheck
			}))
			defer server.Close()

			client := NewDRMAPIClient(server.URL, "", server.Client())
			adapter := NewLLMClientAdapter(client)

			models, err := adapter.AvailableModels(context.Background())

			if tt.expectErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, models)
		})
	}
}

func TestInitLLMClient_Initialize(t *testing.T) {
	i := InitLLMClient{}

	_, err := i.Initialize(context.Background())
	assert.NoError(t, err)

	r, err := depend.Resolve[domain.LLMClient]()
	assert.NotNil(t, r)
	assert.NoError(t, err)
}
