package modelrunner

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/marqueshop/recommender/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func embeddingsResponse(dim int) string {
	vec := make([]string, dim)
	for i := range vec {
		vec[i] = "0.5"
	}
	return fmt.Sprintf(
		`{"usage":{"prompt_tokens":3,"total_tokens":3},"data":[{"embedding":[%s],"index":0,"object":"embedding"}]}`,
		strings.Join(vec, ","),
	)
}

func TestSemanticEncoder_EncodeProduct(t *testing.T) {
	product := domain.Product{
		ID:          uuid.New(),
		Name:        "Silk Evening Dress",
		Brand:       "Zarina",
		Description: "Elegant red dress",
		Audience:    domain.Audience_Women,
		StyleTags:   []string{"elegant"},
	}

	tests := map[string]struct {
		model      string
		product    domain.Product
		response   string
		wantPrompt string
		expectErr  bool
	}{
		"gemma-model-uses-indexing-prompt": {
			model:      "ai/embeddinggemma",
			product:    product,
			response:   embeddingsResponse(domain.EmbeddingDimension),
			wantPrompt: "title: none | text: " + product.EmbeddingText(),
		},
		"default-model-uses-raw-text": {
			model:      "ai/qwen3-embedding",
			product:    product,
			response:   embeddingsResponse(domain.EmbeddingDimension),
			wantPrompt: product.EmbeddingText(),
		},
		"wrong-dimension-fails": {
			model:     "ai/embeddinggemma",
			product:   product,
			response:  embeddingsResponse(8),
			expectErr: true,
		},
		"empty-product-fails": {
			model:     "ai/embeddinggemma",
			product:   domain.Product{ID: uuid.New()},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var gotInput string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				var req EmbeddingsRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				gotInput, _ = req.Input.(string)
				w.Write([]byte(tt.response)) //nolint:errcheck
			}))
			defer server.Close()

			llm := NewLLMClientAdapter(NewDRMAPIClient(server.URL, "", server.Client()))
			encoder := NewSemanticEncoder(llm, tt.model)

			vec, err := encoder.EncodeProduct(context.Background(), tt.product)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Len(t, vec.Vector, domain.EmbeddingDimension)
			assert.Equal(t, 3, vec.TotalTokens)
			assert.Equal(t, tt.wantPrompt, gotInput)
		})
	}
}

func TestSemanticEncoder_EncodeQuery(t *testing.T) {
	var gotInput string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req EmbeddingsRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotInput, _ = req.Input.(string)
		w.Write([]byte(embeddingsResponse(domain.EmbeddingDimension))) //nolint:errcheck
	}))
	defer server.Close()

	llm := NewLLMClientAdapter(NewDRMAPIClient(server.URL, "", server.Client()))
	encoder := NewSemanticEncoder(llm, "ai/embeddinggemma")

	vec, err := encoder.EncodeQuery(context.Background(), "dress for a party")

	assert.NoError(t, err)
	assert.Len(t, vec.Vector, domain.EmbeddingDimension)
	assert.Equal(t, "task: search result | query: dress for a party", gotInput)
}
