package usecases

import (
	"context"
	"errors"
	"log"
	"testing"

	"github.com/marqueshop/recommender/internal/domain"
	domain_mocks "github.com/marqueshop/recommender/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCheckHealthImpl_Execute(t *testing.T) {
	models := []domain.LLMModelInfo{
		{Name: "ai/gemma3", Type: domain.LLMModelType_Chat},
		{Name: "ai/mxbai-embed-large", Type: domain.LLMModelType_Embedding},
	}

	tests := map[string]struct {
		setExpectations func(llm *domain_mocks.MockLLMClient, index *domain_mocks.MockVectorIndex, catalog *domain_mocks.MockCatalogRepository)
		expected        HealthReport
	}{
		"everything-reachable": {
			setExpectations: func(llm *domain_mocks.MockLLMClient, index *domain_mocks.MockVectorIndex, catalog *domain_mocks.MockCatalogRepository) {
				llm.EXPECT().AvailableModels(mock.Anything).Return(models, nil)
				index.EXPECT().Count(mock.Anything, "products_kg").Return(120, nil)
				index.EXPECT().Count(mock.Anything, "products_us").Return(80, nil)
				index.EXPECT().Count(mock.Anything, "products_all").Return(15, nil)
				catalog.EXPECT().CountActiveProducts(mock.Anything).Return(215, nil)
			},
			expected: HealthReport{
				Status: "ok",
				LLM:    LLMHealth{Reachable: true, Models: []string{"ai/gemma3", "ai/mxbai-embed-large"}},
				VectorIndex: VectorIndexHealth{
					Reachable: true,
					Counts:    map[string]int{"products_kg": 120, "products_us": 80, "products_all": 15},
				},
				Catalog: CatalogHealth{Reachable: true, ActiveProducts: 215},
			},
		},
		"llm-down-degrades-the-status": {
			setExpectations: func(llm *domain_mocks.MockLLMClient, index *domain_mocks.MockVectorIndex, catalog *domain_mocks.MockCatalogRepository) {
				llm.EXPECT().AvailableModels(mock.Anything).Return(nil, errors.New("model runner unreachable"))
				index.EXPECT().Count(mock.Anything, "products_kg").Return(120, nil)
				index.EXPECT().Count(mock.Anything, "products_us").Return(80, nil)
				index.EXPECT().Count(mock.Anything, "products_all").Return(15, nil)
				catalog.EXPECT().CountActiveProducts(mock.Anything).Return(215, nil)
			},
			expected: HealthReport{
				Status: "degraded",
				VectorIndex: VectorIndexHealth{
					Reachable: true,
					Counts:    map[string]int{"products_kg": 120, "products_us": 80, "products_all": 15},
				},
				Catalog: CatalogHealth{Reachable: true, ActiveProducts: 215},
			},
		},
		"index-down-clears-the-counts": {
			setExpectations: func(llm *domain_mocks.MockLLMClient, index *domain_mocks.MockVectorIndex, catalog *domain_mocks.MockCatalogRepository) {
				llm.EXPECT().AvailableModels(mock.Anything).Return(models, nil)
				index.EXPECT().Count(mock.Anything, "products_kg").Return(120, nil)
				index.EXPECT().Count(mock.Anything, "products_us").Return(0, domain.ErrIndexUnavailable)
				catalog.EXPECT().CountActiveProducts(mock.Anything).Return(215, nil)
			},
			expected: HealthReport{
				Status:      "degraded",
				LLM:         LLMHealth{Reachable: true, Models: []string{"ai/gemma3", "ai/mxbai-embed-large"}},
				VectorIndex: VectorIndexHealth{Counts: map[string]int{}},
				Catalog:     CatalogHealth{Reachable: true, ActiveProducts: 215},
			},
		},
		"catalog-down-degrades-the-status": {
			setExpectations: func(llm *domain_mocks.MockLLMClient, index *domain_mocks.MockVectorIndex, catalog *domain_mocks.MockCatalogRepository) {
				llm.EXPECT().AvailableModels(mock.Anything).Return(models, nil)
				index.EXPECT().Count(mock.Anything, "products_kg").Return(120, nil)
				index.EXPECT().Count(mock.Anything, "products_us").Return(80, nil)
				index.EXPECT().Count(mock.Anything, "products_all").Return(15, nil)
				catalog.EXPECT().CountActiveProducts(mock.Anything).Return(0, errors.New("db down"))
			},
			expected: HealthReport{
				Status: "degraded",
				LLM:    LLMHealth{Reachable: true, Models: []string{"ai/gemma3", "ai/mxbai-embed-large"}},
				VectorIndex: VectorIndexHealth{
					Reachable: true,
					Counts:    map[string]int{"products_kg": 120, "products_us": 80, "products_all": 15},
				},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			llm := domain_mocks.NewMockLLMClient(t)
			index := domain_mocks.NewMockVectorIndex(t)
			catalog := domain_mocks.NewMockCatalogRepository(t)
			tt.setExpectations(llm, index, catalog)

			ch := NewCheckHealthImpl(llm, index, catalog, log.Default())

			got := ch.Execute(context.Background())

			assert.Equal(t, tt.expected, got)
		})
	}
}
