package workers

import (
	"context"
	"log"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/marqueshop/recommender/internal/domain"
	"github.com/marqueshop/recommender/internal/usecases/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// TestProductEventSubscriber_Run verifies that catalog events delivered
// over Pub/Sub reach the sync use case one by one.
func TestProductEventSubscriber_Run(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, topicName := setupPubSubServer(t, ctx, "products", "product-events-sub")

	savedEvent := domain.ProductEvent{
		Type:      domain.EventType_PRODUCT_SAVED,
		ProductID: uuid.MustParse("11111111-1111-1111-1111-111111111111"),
	}
	deactivatedEvent := domain.ProductEvent{
		Type:      domain.EventType_PRODUCT_DEACTIVATED,
		ProductID: uuid.MustParse("22222222-2222-2222-2222-222222222222"),
	}

	sync := mocks.NewMockSyncProduct(t)
	sync.EXPECT().Execute(mock.Anything, savedEvent).Return(nil).Once()
	sync.EXPECT().Execute(mock.Anything, deactivatedEvent).Return(nil).Once()

	signalChan := make(chan struct{}, 4)

	subscriber := ProductEventSubscriber{
		Logger:              log.Default(),
		Client:              client,
		SubscriptionID:      "product-events-sub",
		SyncProduct:         sync,
		workerExecutionChan: signalChan,
	}

	go func() {
		err := subscriber.Run(ctx)
		assert.NoError(t, err)
	}()

	publishMessages(t, ctx, client, topicName, [][]byte{
		productEventPayload(t, savedEvent),
		productEventPayload(t, deactivatedEvent),
	})

	waitForSignals(t, signalChan, 2, 5*time.Second)

	sync.AssertExpectations(t)
	cancel()
}

// TestProductEventSubscriber_DropsUndecodablePayloads verifies that a
// payload that cannot decode is acked, not retried forever.
func TestProductEventSubscriber_DropsUndecodablePayloads(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, topicName := setupPubSubServer(t, ctx, "products", "product-events-sub")

	event := domain.ProductEvent{
		Type:      domain.EventType_PRODUCT_SAVED,
		ProductID: uuid.MustParse("11111111-1111-1111-1111-111111111111"),
	}

	// Only the valid event reaches the use case.
	sync := mocks.NewMockSyncProduct(t)
	sync.EXPECT().Execute(mock.Anything, event).Return(nil).Once()

	signalChan := make(chan struct{}, 4)

	subscriber := ProductEventSubscriber{
		Logger:              log.Default(),
		Client:              client,
		SubscriptionID:      "product-events-sub",
		SyncProduct:         sync,
		workerExecutionChan: signalChan,
	}

	go func() {
		err := subscriber.Run(ctx)
		assert.NoError(t, err)
	}()

	publishMessages(t, ctx, client, topicName, [][]byte{
		[]byte("not json"),
		productEventPayload(t, event),
	})

	waitForSignals(t, signalChan, 2, 5*time.Second)

	sync.AssertExpectations(t)
	cancel()
}
