package usecases

import (
	"context"
	"errors"
	"log"
	"testing"

	"github.com/google/uuid"
	"github.com/marqueshop/recommender/internal/domain"
	domain_mocks "github.com/marqueshop/recommender/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func syncableProduct(id uuid.UUID) domain.Product {
	p := candidateProduct(id, "Silk Dress")
	p.Description = "A flowing silk dress for evening wear"
	p.OccasionTags = []string{"party"}
	return p
}

func expectDeleteEverywhere(index *domain_mocks.MockVectorIndex, id uuid.UUID) {
	for _, namespace := range []string{"products_kg", "products_us", "products_all"} {
		index.EXPECT().Delete(mock.Anything, id, namespace).Return(nil)
	}
}

func TestSyncProductImpl_Execute(t *testing.T) {
	id := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	embedding := domain.EmbeddingVector{Vector: make([]float64, domain.EmbeddingDimension), TotalTokens: 12}

	tests := map[string]struct {
		event           domain.ProductEvent
		setExpectations func(catalog *domain_mocks.MockCatalogRepository, encoder *domain_mocks.MockSemanticEncoder, index *domain_mocks.MockVectorIndex)
		expectedErr     error
		expectValidErr  bool
	}{
		"saved-event-upserts-into-the-market-namespace": {
			event: domain.ProductEvent{Type: domain.EventType_PRODUCT_SAVED, ProductID: id},
			setExpectations: func(catalog *domain_mocks.MockCatalogRepository, encoder *domain_mocks.MockSemanticEncoder, index *domain_mocks.MockVectorIndex) {
				product := syncableProduct(id)
				catalog.EXPECT().GetProduct(mock.Anything, id).Return(product, nil)
				encoder.EXPECT().EncodeProduct(mock.Anything, product).Return(embedding, nil)
				index.EXPECT().
					Upsert(mock.Anything, mock.Anything).
					Run(func(ctx context.Context, record domain.EmbeddingRecord) {
						assert.Equal(t, id, record.ID)
						assert.Equal(t, "products_kg", record.Namespace)
						assert.Equal(t, embedding.Vector, record.Vector)
						assert.Equal(t, domain.RecordMetadata{
							Name:     product.Name,
							Brand:    product.Brand,
							Market:   product.Market,
							Audience: product.Audience,
							Price:    product.Price,
							Rating:   product.Rating,
							InStock:  product.InStock,
						}, record.Metadata)
					}).
					Return(nil)
				index.EXPECT().Delete(mock.Anything, id, "products_us").Return(nil)
				index.EXPECT().Delete(mock.Anything, id, "products_all").Return(nil)
			},
		},
		"market-change-clears-the-old-namespace": {
			event: domain.ProductEvent{Type: domain.EventType_PRODUCT_SAVED, ProductID: id},
			setExpectations: func(catalog *domain_mocks.MockCatalogRepository, encoder *domain_mocks.MockSemanticEncoder, index *domain_mocks.MockVectorIndex) {
				product := syncableProduct(id)
				product.Market = domain.Market_US
				catalog.EXPECT().GetProduct(mock.Anything, id).Return(product, nil)
				encoder.EXPECT().EncodeProduct(mock.Anything, product).Return(embedding, nil)
				index.EXPECT().
					Upsert(mock.Anything, mock.MatchedBy(func(record domain.EmbeddingRecord) bool {
						return record.Namespace == "products_us"
					})).
					Return(nil)
				index.EXPECT().Delete(mock.Anything, id, "products_kg").Return(nil)
				index.EXPECT().Delete(mock.Anything, id, "products_all").Return(nil)
			},
		},
		"namespace-sweep-error-propagates": {
			event: domain.ProductEvent{Type: domain.EventType_PRODUCT_SAVED, ProductID: id},
			setExpectations: func(catalog *domain_mocks.MockCatalogRepository, encoder *domain_mocks.MockSemanticEncoder, index *domain_mocks.MockVectorIndex) {
				catalog.EXPECT().GetProduct(mock.Anything, id).Return(syncableProduct(id), nil)
				encoder.EXPECT().EncodeProduct(mock.Anything, mock.Anything).Return(embedding, nil)
				index.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil)
				index.EXPECT().
					Delete(mock.Anything, id, "products_us").
					Return(domain.ErrIndexUnavailable)
			},
			expectedErr: errors.New("failed to delete product 11111111-1111-1111-1111-111111111111 from products_us: vector index unavailable"),
		},
		"deactivated-event-removes-from-every-namespace": {
			event: domain.ProductEvent{Type: domain.EventType_PRODUCT_DEACTIVATED, ProductID: id},
			setExpectations: func(catalog *domain_mocks.MockCatalogRepository, encoder *domain_mocks.MockSemanticEncoder, index *domain_mocks.MockVectorIndex) {
				expectDeleteEverywhere(index, id)
			},
		},
		"vanished-product-converges-to-removal": {
			event: domain.ProductEvent{Type: domain.EventType_PRODUCT_SAVED, ProductID: id},
			setExpectations: func(catalog *domain_mocks.MockCatalogRepository, encoder *domain_mocks.MockSemanticEncoder, index *domain_mocks.MockVectorIndex) {
				catalog.EXPECT().
					GetProduct(mock.Anything, id).
					Return(domain.Product{}, domain.NewNotFoundErr("product not found"))
				expectDeleteEverywhere(index, id)
			},
		},
		"inactive-product-is-removed": {
			event: domain.ProductEvent{Type: domain.EventType_PRODUCT_SAVED, ProductID: id},
			setExpectations: func(catalog *domain_mocks.MockCatalogRepository, encoder *domain_mocks.MockSemanticEncoder, index *domain_mocks.MockVectorIndex) {
				product := syncableProduct(id)
				product.Active = false
				catalog.EXPECT().GetProduct(mock.Anything, id).Return(product, nil)
				expectDeleteEverywhere(index, id)
			},
		},
		"product-without-embedding-text-is-skipped": {
			event: domain.ProductEvent{Type: domain.EventType_PRODUCT_SAVED, ProductID: id},
			setExpectations: func(catalog *domain_mocks.MockCatalogRepository, encoder *domain_mocks.MockSemanticEncoder, index *domain_mocks.MockVectorIndex) {
				product := syncableProduct(id)
				product.Name = " "
				product.Description = ""
				product.Brand = ""
				product.OccasionTags = nil
				product.StyleTags = nil
				product.ColorTags = nil
				catalog.EXPECT().GetProduct(mock.Anything, id).Return(product, nil)
			},
		},
		"encoder-error-propagates": {
			event: domain.ProductEvent{Type: domain.EventType_PRODUCT_SAVED, ProductID: id},
			setExpectations: func(catalog *domain_mocks.MockCatalogRepository, encoder *domain_mocks.MockSemanticEncoder, index *domain_mocks.MockVectorIndex) {
				catalog.EXPECT().GetProduct(mock.Anything, id).Return(syncableProduct(id), nil)
				encoder.EXPECT().
					EncodeProduct(mock.Anything, mock.Anything).
					Return(domain.EmbeddingVector{}, errors.New("embedding model unreachable"))
			},
			expectedErr: errors.New("failed to encode product 11111111-1111-1111-1111-111111111111: embedding model unreachable"),
		},
		"delete-error-propagates": {
			event: domain.ProductEvent{Type: domain.EventType_PRODUCT_DEACTIVATED, ProductID: id},
			setExpectations: func(catalog *domain_mocks.MockCatalogRepository, encoder *domain_mocks.MockSemanticEncoder, index *domain_mocks.MockVectorIndex) {
				index.EXPECT().
					Delete(mock.Anything, id, "products_kg").
					Return(domain.ErrIndexUnavailable)
			},
			expectedErr: errors.New("failed to delete product 11111111-1111-1111-1111-111111111111 from products_kg: vector index unavailable"),
		},
		"empty-product-id-is-rejected": {
			event:           domain.ProductEvent{Type: domain.EventType_PRODUCT_SAVED},
			setExpectations: func(catalog *domain_mocks.MockCatalogRepository, encoder *domain_mocks.MockSemanticEncoder, index *domain_mocks.MockVectorIndex) {},
			expectValidErr:  true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			catalog := domain_mocks.NewMockCatalogRepository(t)
			encoder := domain_mocks.NewMockSemanticEncoder(t)
			index := domain_mocks.NewMockVectorIndex(t)
			tt.setExpectations(catalog, encoder, index)

			sp := NewSyncProductImpl(catalog, encoder, index, log.Default())

			gotErr := sp.Execute(context.Background(), tt.event)

			switch {
			case tt.expectValidErr:
				var validationErr *domain.ValidationErr
				assert.ErrorAs(t, gotErr, &validationErr)
			case tt.expectedErr != nil:
				assert.EqualError(t, gotErr, tt.expectedErr.Error())
			default:
				assert.NoError(t, gotErr)
			}
		})
	}
}
