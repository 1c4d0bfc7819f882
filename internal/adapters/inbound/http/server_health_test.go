package http

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/marqueshop/recommender/internal/usecases"
	"github.com/marqueshop/recommender/internal/usecases/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRecommenderServer_GetHealth(t *testing.T) {
	report := usecases.HealthReport{
		Status: "degraded",
		LLM:    usecases.LLMHealth{Reachable: false},
		VectorIndex: usecases.VectorIndexHealth{
			Reachable: true,
			Counts:    map[string]int{"products_kg": 120},
		},
		Catalog: usecases.CatalogHealth{Reachable: true, ActiveProducts: 215},
	}

	mockHealth := mocks.NewMockCheckHealth(t)
	mockHealth.EXPECT().Execute(mock.Anything).Return(report)

	server := RecommenderServer{
		CheckHealthUseCase: mockHealth,
		Logger:             log.New(io.Discard, "", 0),
	}

	req := httptest.NewRequest(http.MethodGet, "/api/ai/health", nil)
	w := httptest.NewRecorder()

	server.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got usecases.HealthReport
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, report, got)
}
