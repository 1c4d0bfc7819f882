package http

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/marqueshop/recommender/internal/domain"
	"github.com/marqueshop/recommender/internal/usecases"
	"github.com/marqueshop/recommender/internal/usecases/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRecommenderServer_ResyncCatalog(t *testing.T) {
	tests := map[string]struct {
		target          string
		setExpectations func(m *mocks.MockResyncCatalog)
		expectedStatus  int
		expectedReport  *usecases.ResyncReport
	}{
		"full-resync": {
			target: "/api/ai/resync",
			setExpectations: func(m *mocks.MockResyncCatalog) {
				m.EXPECT().
					Execute(mock.Anything, domain.Market("")).
					Return(usecases.ResyncReport{Synced: 42, Skipped: 3}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedReport: &usecases.ResyncReport{Synced: 42, Skipped: 3},
		},
		"market-scoped-resync": {
			target: "/api/ai/resync?market=US",
			setExpectations: func(m *mocks.MockResyncCatalog) {
				m.EXPECT().
					Execute(mock.Anything, domain.Market_US).
					Return(usecases.ResyncReport{Synced: 10, Failed: 1}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedReport: &usecases.ResyncReport{Synced: 10, Failed: 1},
		},
		"unknown-market-maps-to-400": {
			target: "/api/ai/resync?market=FR",
			setExpectations: func(m *mocks.MockResyncCatalog) {
				m.EXPECT().
					Execute(mock.Anything, domain.Market("FR")).
					Return(usecases.ResyncReport{}, domain.NewValidationErr("unknown market: FR"))
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockResync := mocks.NewMockResyncCatalog(t)
			tt.setExpectations(mockResync)

			server := RecommenderServer{
				ResyncCatalogUseCase: mockResync,
				Logger:               log.New(io.Discard, "", 0),
			}

			req := httptest.NewRequest(http.MethodPost, tt.target, nil)
			w := httptest.NewRecorder()

			server.routes().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedReport != nil {
				var got usecases.ResyncReport
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Equal(t, *tt.expectedReport, got)
			}
		})
	}
}
