package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/marqueshop/recommender/internal/domain"
	domain_mocks "github.com/marqueshop/recommender/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func rankableState(candidates []domain.Candidate) *domain.PipelineState {
	state := searchableState(domain.RequirementFilter{Occasions: []string{"party"}})
	_ = state.Advance(domain.PipelineStage_Searched)
	state.Candidates = candidates
	return state
}

func TestRankCandidatesImpl_Execute(t *testing.T) {
	ids := make([]uuid.UUID, 7)
	candidates := make([]domain.Candidate, 7)
	for i := range ids {
		ids[i] = uuid.MustParse(fmt.Sprintf("%08d-0000-0000-0000-000000000000", i+1))
		candidates[i] = domain.Candidate{
			Product: candidateProduct(ids[i], fmt.Sprintf("Dress %d", i+1)),
			Score:   1 - float64(i)*0.1,
			Source:  domain.CandidateSource_Vector,
		}
	}
	selectionJSON := func(confidence float64, selected ...uuid.UUID) string {
		payload := rankingSelection{Confidence: confidence, Reasoning: "best fit"}
		for _, id := range selected {
			payload.ProductIDs = append(payload.ProductIDs, id.String())
		}
		raw, err := json.Marshal(payload)
		assert.NoError(t, err)
		return string(raw)
	}

	tests := map[string]struct {
		candidates         []domain.Candidate
		content            string
		chatErr            error
		skipChat           bool
		expectedSelected   []uuid.UUID
		expectedConfidence float64
		expectedStage      domain.PipelineStage
		expectedErr        error
	}{
		"success": {
			candidates:         candidates[:5],
			content:            selectionJSON(0.85, ids[2], ids[0], ids[4]),
			expectedSelected:   []uuid.UUID{ids[2], ids[0], ids[4]},
			expectedConfidence: 0.85,
			expectedStage:      domain.PipelineStage_Ranked,
		},
		"fabricated-and-duplicate-ids-are-dropped": {
			candidates: candidates[:3],
			content: selectionJSON(0.7,
				ids[1],
				uuid.MustParse("99999999-9999-9999-9999-999999999999"),
				ids[1],
				ids[0],
			),
			expectedSelected:   []uuid.UUID{ids[1], ids[0]},
			expectedConfidence: 0.7,
			expectedStage:      domain.PipelineStage_Ranked,
		},
		"selection-is-capped-at-five": {
			candidates:         candidates,
			content:            selectionJSON(0.9, ids...),
			expectedSelected:   ids[:5],
			expectedConfidence: 0.9,
			expectedStage:      domain.PipelineStage_Ranked,
		},
		"confidence-is-clamped": {
			candidates:         candidates[:2],
			content:            selectionJSON(1.7, ids[0]),
			expectedSelected:   []uuid.UUID{ids[0]},
			expectedConfidence: 1,
			expectedStage:      domain.PipelineStage_Ranked,
		},
		"all-fabricated-ids-is-an-error": {
			candidates:    candidates[:2],
			content:       selectionJSON(0.8, uuid.MustParse("99999999-9999-9999-9999-999999999999")),
			expectedStage: domain.PipelineStage_Searched,
			expectedErr:   errors.New("model selected no known candidates"),
		},
		"malformed-json-is-an-error": {
			candidates:    candidates[:2],
			content:       "I would pick the first dress",
			expectedStage: domain.PipelineStage_Searched,
			expectedErr:   errors.New("failed to decode ranking selection: invalid character 'I' looking for beginning of value"),
		},
		"llm-error-propagates": {
			candidates:    candidates[:2],
			chatErr:       errors.New("model runner unreachable"),
			expectedStage: domain.PipelineStage_Searched,
			expectedErr:   errors.New("model runner unreachable"),
		},
		"zero-candidates-ranks-empty-without-the-llm": {
			candidates:         nil,
			skipChat:           true,
			expectedSelected:   nil,
			expectedConfidence: 0,
			expectedStage:      domain.PipelineStage_Ranked,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			llm := domain_mocks.NewMockLLMClient(t)
			if !tt.skipChat {
				llm.EXPECT().
					Chat(mock.Anything, mock.Anything).
					Run(func(ctx context.Context, req domain.LLMChatRequest) {
						assert.NotNil(t, req.ResponseFormat)
						assert.Equal(t, "ranking_selection", req.ResponseFormat.Name)
					}).
					Return(domain.LLMChatResponse{Content: tt.content}, tt.chatErr)
			}

			state := rankableState(tt.candidates)
			rc := NewRankCandidatesImpl(llm, "ai/gemma3")

			gotErr := rc.Execute(context.Background(), state)

			if tt.expectedErr != nil {
				assert.EqualError(t, gotErr, tt.expectedErr.Error())
			} else {
				assert.NoError(t, gotErr)
				assert.Equal(t, tt.expectedSelected, state.Selected)
				assert.Equal(t, tt.expectedConfidence, state.Confidence)
			}
			assert.Equal(t, tt.expectedStage, state.Stage)
		})
	}
}
