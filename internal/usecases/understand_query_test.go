package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/marqueshop/recommender/internal/domain"
	domain_mocks "github.com/marqueshop/recommender/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUnderstandQueryImpl_Execute(t *testing.T) {
	fixedTime := time.Date(2025, 6, 6, 15, 0, 0, 0, time.UTC) // a Friday

	tests := map[string]struct {
		query           string
		setExpectations func(llm *domain_mocks.MockLLMClient, tp *domain_mocks.MockCurrentTimeProvider)
		expectedIntent  string
		expectedStage   domain.PipelineStage
		expectErr       bool
	}{
		"success": {
			query: "I need a dress for a party",
			setExpectations: func(llm *domain_mocks.MockLLMClient, tp *domain_mocks.MockCurrentTimeProvider) {
				tp.EXPECT().Now().Return(fixedTime)
				llm.EXPECT().
					Chat(mock.Anything, mock.Anything).
					Return(domain.LLMChatResponse{
						Content: "The shopper wants a party dress.",
						Usage:   domain.LLMUsage{PromptTokens: 40, CompletionTokens: 12},
					}, nil)
			},
			expectedIntent: "The shopper wants a party dress.",
			expectedStage:  domain.PipelineStage_Understood,
		},
		"event-date-hint-reaches-the-prompt": {
			query: "something for the party tonight",
			setExpectations: func(llm *domain_mocks.MockLLMClient, tp *domain_mocks.MockCurrentTimeProvider) {
				tp.EXPECT().Now().Return(fixedTime)
				llm.EXPECT().
					Chat(mock.Anything, mock.Anything).
					Run(func(ctx context.Context, req domain.LLMChatRequest) {
						assert.Len(t, req.Messages, 2)
						assert.Contains(t, req.Messages[1].Content, "Friday, 2025-06-06")
					}).
					Return(domain.LLMChatResponse{Content: "Party outfit for tonight."}, nil)
			},
			expectedIntent: "Party outfit for tonight.",
			expectedStage:  domain.PipelineStage_Understood,
		},
		"blank-response-keeps-the-raw-query": {
			query: "red shoes",
			setExpectations: func(llm *domain_mocks.MockLLMClient, tp *domain_mocks.MockCurrentTimeProvider) {
				tp.EXPECT().Now().Return(fixedTime)
				llm.EXPECT().
					Chat(mock.Anything, mock.Anything).
					Return(domain.LLMChatResponse{Content: "   "}, nil)
			},
			expectedIntent: "red shoes",
			expectedStage:  domain.PipelineStage_Understood,
		},
		"empty-query-is-rejected": {
			query:           "   ",
			setExpectations: func(llm *domain_mocks.MockLLMClient, tp *domain_mocks.MockCurrentTimeProvider) {},
			expectedStage:   domain.PipelineStage_Received,
			expectErr:       true,
		},
		"llm-error-propagates": {
			query: "a gift for my brother",
			setExpectations: func(llm *domain_mocks.MockLLMClient, tp *domain_mocks.MockCurrentTimeProvider) {
				tp.EXPECT().Now().Return(fixedTime)
				llm.EXPECT().
					Chat(mock.Anything, mock.Anything).
					Return(domain.LLMChatResponse{}, errors.New("model runner unreachable"))
			},
			expectedStage: domain.PipelineStage_Received,
			expectErr:     true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			llm := domain_mocks.NewMockLLMClient(t)
			tp := domain_mocks.NewMockCurrentTimeProvider(t)
			tt.setExpectations(llm, tp)

			state := domain.NewPipelineState(tt.query, domain.Market_KG, domain.Audience_Women)
			uq := NewUnderstandQueryImpl(llm, tp, "ai/gemma3")

			gotErr := uq.Execute(context.Background(), state)

			if tt.expectErr {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
				assert.Equal(t, tt.expectedIntent, state.Intent)
				assert.Len(t, state.Conversation, 2)
				assert.Equal(t, domain.ChatRole_User, state.Conversation[0].Role)
				assert.Equal(t, domain.ChatRole_Assistant, state.Conversation[1].Role)
			}
			assert.Equal(t, tt.expectedStage, state.Stage)
		})
	}
}

func TestInitUnderstandQuery_Initialize(t *testing.T) {
	depend.Register[domain.LLMClient](domain_mocks.NewMockLLMClient(t))
	depend.Register[domain.CurrentTimeProvider](domain_mocks.NewMockCurrentTimeProvider(t))

	init := InitUnderstandQuery{
		LLMClient:    domain_mocks.NewMockLLMClient(t),
		TimeProvider: domain_mocks.NewMockCurrentTimeProvider(t),
		Model:        "ai/gemma3",
	}

	_, err := init.Initialize(context.Background())
	assert.NoError(t, err)

	registered, err := depend.Resolve[UnderstandQuery]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
