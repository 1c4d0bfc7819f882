package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/marqueshop/recommender/internal/domain"
	"github.com/marqueshop/recommender/internal/usecases/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var recommendedCandidate = domain.Candidate{
	Product: domain.Product{
		ID:       uuid.MustParse("123e4567-e89b-12d3-a456-426614174000"),
		Name:     "Silk Dress",
		Brand:    "Marque",
		Market:   domain.Market_KG,
		Audience: domain.Audience_Women,
		Price:    79.90,
		Rating:   4.5,
		ImageURL: "https://cdn.example.com/silk-dress.jpg",
		Slug:     "silk-dress",
		InStock:  true,
		Active:   true,
	},
	Score:  0.91,
	Source: domain.CandidateSource_Vector,
}

func TestRecommenderServer_Recommend(t *testing.T) {
	requirements := domain.RequirementFilter{Occasions: []string{"party"}}

	tests := map[string]struct {
		requestBody     []byte
		setExpectations func(m *mocks.MockRecommend)
		expectedStatus  int
		validateBody    func(t *testing.T, body []byte)
	}{
		"success": {
			requestBody: serializeJSON(t, recommendReq{Query: "a red dress for a party", Market: "KG", Audience: "W"}),
			setExpectations: func(m *mocks.MockRecommend) {
				m.EXPECT().
					Execute(mock.Anything, "a red dress for a party", domain.Market_KG, domain.Audience_Women).
					Return(domain.RecommendationResult{
						Stage:        domain.PipelineStage_Done,
						Items:        []domain.Candidate{recommendedCandidate},
						Explanation:  "The Silk Dress nails the party look.",
						Confidence:   0.85,
						Requirements: requirements,
					}, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body []byte) {
				var resp recommendationResp
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Len(t, resp.Items, 1)
				assert.Equal(t, recommendedCandidate.Product.ID, resp.Items[0].ID)
				assert.Equal(t, "Silk Dress", resp.Items[0].Name)
				assert.Equal(t, 0.91, resp.Items[0].Score)
				assert.Equal(t, "vector", resp.Items[0].Source)
				assert.Equal(t, "The Silk Dress nails the party look.", resp.Explanation)
				assert.Equal(t, 0.85, resp.Confidence)
				assert.Equal(t, requirements, resp.ExtractedRequirements)
			},
		},
		"missing-audience-defaults-to-unisex": {
			requestBody: serializeJSON(t, recommendReq{Query: "a gift", Market: "US"}),
			setExpectations: func(m *mocks.MockRecommend) {
				m.EXPECT().
					Execute(mock.Anything, "a gift", domain.Market_US, domain.Audience_Unisex).
					Return(domain.RecommendationResult{
						Stage: domain.PipelineStage_Done,
						Items: []domain.Candidate{recommendedCandidate},
					}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		"no-match-returns-the-fixed-payload": {
			requestBody: serializeJSON(t, recommendReq{Query: "a unicorn saddle", Market: "KG", Audience: "W"}),
			setExpectations: func(m *mocks.MockRecommend) {
				m.EXPECT().
					Execute(mock.Anything, "a unicorn saddle", domain.Market_KG, domain.Audience_Women).
					Return(domain.RecommendationResult{
						Stage:        domain.PipelineStage_NoMatch,
						Items:        []domain.Candidate{},
						Requirements: requirements,
					}, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body []byte) {
				var resp recommendationResp
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Empty(t, resp.Items)
				assert.Equal(t, NO_MATCH_EXPLANATION, resp.Explanation)
				assert.Equal(t, 0.0, resp.Confidence)
			},
		},
		"assistant-unavailable-maps-to-503": {
			requestBody: serializeJSON(t, recommendReq{Query: "a dress", Market: "KG", Audience: "W"}),
			setExpectations: func(m *mocks.MockRecommend) {
				m.EXPECT().
					Execute(mock.Anything, "a dress", domain.Market_KG, domain.Audience_Women).
					Return(domain.RecommendationResult{
						Stage:         domain.PipelineStage_Failed,
						FailureReason: domain.FailureReason_AssistantUnavailable,
						Items:         []domain.Candidate{},
					}, nil)
			},
			expectedStatus: http.StatusServiceUnavailable,
			validateBody: func(t *testing.T, body []byte) {
				var resp errorResp
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, errorCode_AssistantUnavailable, resp.Error.Code)
			},
		},
		"timeout-maps-to-503": {
			requestBody: serializeJSON(t, recommendReq{Query: "a dress", Market: "KG", Audience: "W"}),
			setExpectations: func(m *mocks.MockRecommend) {
				m.EXPECT().
					Execute(mock.Anything, "a dress", domain.Market_KG, domain.Audience_Women).
					Return(domain.RecommendationResult{
						Stage:         domain.PipelineStage_Failed,
						FailureReason: domain.FailureReason_Timeout,
						Items:         []domain.Candidate{},
					}, nil)
			},
			expectedStatus: http.StatusServiceUnavailable,
			validateBody: func(t *testing.T, body []byte) {
				var resp errorResp
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, errorCode_Timeout, resp.Error.Code)
			},
		},
		"validation-error-maps-to-400": {
			requestBody: serializeJSON(t, recommendReq{Query: "a dress", Market: "FR", Audience: "W"}),
			setExpectations: func(m *mocks.MockRecommend) {
				m.EXPECT().
					Execute(mock.Anything, "a dress", domain.Market("FR"), domain.Audience_Women).
					Return(domain.RecommendationResult{}, domain.NewValidationErr("unknown market: FR"))
			},
			expectedStatus: http.StatusBadRequest,
			validateBody: func(t *testing.T, body []byte) {
				var resp errorResp
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, errorCode_BadRequest, resp.Error.Code)
				assert.Equal(t, "unknown market: FR", resp.Error.Message)
			},
		},
		"invalid-json-body": {
			requestBody:     []byte(`{"query":`),
			setExpectations: func(m *mocks.MockRecommend) {},
			expectedStatus:  http.StatusBadRequest,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockRecommend := mocks.NewMockRecommend(t)
			tt.setExpectations(mockRecommend)

			server := RecommenderServer{
				RecommendUseCase: mockRecommend,
				Logger:           log.New(io.Discard, "", 0),
			}

			req := httptest.NewRequest(http.MethodPost, "/api/ai/recommend", bytes.NewReader(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			server.routes().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.validateBody != nil {
				tt.validateBody(t, w.Body.Bytes())
			}
		})
	}
}

func serializeJSON(t *testing.T, v any) []byte {
	data, err := json.Marshal(v)
	assert.NoError(t, err)
	return data
}
