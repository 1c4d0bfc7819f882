package qdrant

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/marqueshop/recommender/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVector(dim int) []float64 {
	vec := make([]float64, dim)
	for i := range vec {
		vec[i] = 0.1
	}
	return vec
}

func TestVectorIndex_Upsert(t *testing.T) {
	recordID := uuid.New()

	tests := map[string]struct {
		record     domain.EmbeddingRecord
		statusCode int
		expectErr  bool
		checkBody  func(t *testing.T, body map[string]any)
	}{
		"success": {
			record: domain.EmbeddingRecord{
				ID:        recordID,
				Namespace: "products_kg",
				Vector:    testVector(domain.EmbeddingDimension),
				Metadata: domain.RecordMetadata{
					Name:     "Silk Dress",
					Brand:    "Zarina",
					Market:   domain.Market_KG,
					Audience: domain.Audience_Women,
					Price:    79.9,
					Rating:   4.5,
					InStock:  true,
				},
			},
			statusCode: http.StatusOK,
			checkBody: func(t *testing.T, body map[string]any) {
				points := body["points"].([]any)
				require.Len(t, points, 1)
				point := points[0].(map[string]any)
				assert.Equal(t, recordID.String(), point["id"])
				payload := point["payload"].(map[string]any)
				assert.Equal(t, "Silk Dress", payload["name"])
				assert.Equal(t, "W", payload["audience"])
				assert.Equal(t, true, payload["in_stock"])
			},
		},
		"wrong-dimension": {
			record: domain.EmbeddingRecord{
				ID:        recordID,
				Namespace: "products_kg",
				Vector:    testVector(3),
			},
			expectErr: true,
		},
		"server-error-is-unavailable": {
			record: domain.EmbeddingRecord{
				ID:        recordID,
				Namespace: "products_kg",
				Vector:    testVector(domain.EmbeddingDimension),
			},
			statusCode: http.StatusInternalServerError,
			expectErr:  true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var gotBody map[string]any
			var gotPath string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				json.NewDecoder(r.Body).Decode(&gotBody) //nolint:errcheck
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(`{"status":"ok"}`)) //nolint:errcheck
			}))
			defer server.Close()

			index := NewVectorIndex(NewClient(server.URL, "", server.Client()))

			err := index.Upsert(context.Background(), tt.record)

			if tt.expectErr {
				assert.Error(t, err)
				if tt.statusCode == http.StatusInternalServerError {
					assert.ErrorIs(t, err, domain.ErrIndexUnavailable)
				}
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "/collections/products_kg/points", gotPath)
			tt.checkBody(t, gotBody)
		})
	}
}

func TestVectorIndex_Delete(t *testing.T) {
	recordID := uuid.New()

	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody) //nolint:errcheck
		w.Write([]byte(`{"status":"ok"}`))       //nolint:errcheck
	}))
	defer server.Close()

	index := NewVectorIndex(NewClient(server.URL, "", server.Client()))

	err := index.Delete(context.Background(), recordID, "products_us")

	assert.NoError(t, err)
	assert.Equal(t, []any{recordID.String()}, gotBody["points"])
}

func TestVectorIndex_Query(t *testing.T) {
	hitID := uuid.New()

	tests := map[string]struct {
		filter      domain.MetadataFilter
		response    string
		statusCode  int
		expectErr   error
		wantMatches int
		checkFilter func(t *testing.T, body map[string]any)
	}{
		"success-with-filter": {
			filter: domain.MetadataFilter{
				InStockOnly: true,
				Audiences:   []domain.Audience{domain.Audience_Women, domain.Audience_Unisex},
			},
			statusCode: http.StatusOK,
			response: fmt.Sprintf(
				`{"result":[{"id":"%s","score":0.91,"payload":{"name":"Silk Dress","market":"KG","audience":"W","in_stock":true,"rating":4.5,"price":79.9}}]}`,
				hitID,
			),
			wantMatches: 1,
			checkFilter: func(t *testing.T, body map[string]any) {
				filter := body["filter"].(map[string]any)
				must := filter["must"].([]any)
				require.Len(t, must, 2)
				stock := must[0].(map[string]any)
				assert.Equal(t, "in_stock", stock["key"])
				audience := must[1].(map[string]any)
				assert.Equal(t, "audience", audience["key"])
				assert.Equal(t, []any{"W", "U"}, audience["match"].(map[string]any)["any"])
			},
		},
		"zero-results-is-not-an-error": {
			filter:      domain.MetadataFilter{InStockOnly: true},
			statusCode:  http.StatusOK,
			response:    `{"result":[]}`,
			wantMatches: 0,
		},
		"server-error-is-unavailable": {
			statusCode: http.StatusInternalServerError,
			response:   "boom",
			expectErr:  domain.ErrIndexUnavailable,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var gotBody map[string]any
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				json.NewDecoder(r.Body).Decode(&gotBody) //nolint:errcheck
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.response)) //nolint:errcheck
			}))
			defer server.Close()

			index := NewVectorIndex(NewClient(server.URL, "", server.Client()))

			matches, err := index.Query(
				context.Background(),
				testVector(domain.EmbeddingDimension),
				"products_kg",
				20,
				tt.filter,
			)

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				return
			}

			assert.NoError(t, err)
			assert.Len(t, matches, tt.wantMatches)
			if tt.wantMatches > 0 {
				assert.Equal(t, hitID, matches[0].ID)
				assert.Equal(t, 0.91, matches[0].Score)
				assert.Equal(t, "Silk Dress", matches[0].Metadata.Name)
			}
			if tt.checkFilter != nil {
				tt.checkFilter(t, gotBody)
			}
		})
	}
}

func TestVectorIndex_Query_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	index := NewVectorIndex(NewClient(server.URL, "", &http.Client{}))

	_, err := index.Query(
		context.Background(),
		testVector(domain.EmbeddingDimension),
		"products_kg",
		20,
		domain.MetadataFilter{},
	)

	assert.ErrorIs(t, err, domain.ErrIndexUnavailable)
}

func TestVectorIndex_Count(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/collections/products_all/points/count", r.URL.Path)
		w.Write([]byte(`{"result":{"count":42}}`)) //nolint:errcheck
	}))
	defer server.Close()

	index := NewVectorIndex(NewClient(server.URL, "", server.Client()))

	count, err := index.Count(context.Background(), "products_all")

	assert.NoError(t, err)
	assert.Equal(t, 42, count)
}

func TestInitVectorIndex_Initialize(t *testing.T) {
	var collections []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		collections = append(collections, r.URL.Path)
		w.Write([]byte(`{"status":"ok"}`)) //nolint:errcheck
	}))
	defer server.Close()

	init := InitVectorIndex{HttpClient: server.Client(), ServerURL: server.URL}

	_, err := init.Initialize(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{
		"/collections/products_kg",
		"/collections/products_us",
		"/collections/products_all",
	}, collections)
}
