package workers

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"cloud.google.com/go/pubsub/v2"
	"github.com/marqueshop/recommender/internal/domain"
	"github.com/marqueshop/recommender/internal/usecases"
)

// ProductEventSubscriber consumes catalog product events from Pub/Sub
// and keeps the vector index in sync. Delivery is at-least-once: a
// message is acked only after the sync path succeeded, so a crash
// mid-sync redelivers the event and the idempotent upsert converges.
type ProductEventSubscriber struct {
	Logger              *log.Logger          `resolve:""`
	Client              *pubsub.Client       `resolve:""`
	SubscriptionID      string               `config:"PRODUCT_EVENTS_SUBSCRIPTION_ID"`
	SyncProduct         usecases.SyncProduct `resolve:""`
	workerExecutionChan chan struct{}
}

// Run starts the subscriber worker. Receive blocks until ctx is done.
func (s ProductEventSubscriber) Run(ctx context.Context) error {
	s.Logger.Println("ProductEventSubscriber: running...")

	err := s.Client.Subscriber(s.SubscriptionID).Receive(ctx, s.handleMessage)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	s.Logger.Println("ProductEventSubscriber: stopped")
	return nil
}

func (s ProductEventSubscriber) handleMessage(ctx context.Context, msg *pubsub.Message) {
	if s.workerExecutionChan != nil {
		s.workerExecutionChan <- struct{}{}
	}

	var event domain.ProductEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		// A payload that cannot decode never will; drop it.
		s.Logger.Printf("ProductEventSubscriber: failed to decode event payload: %v", err)
		msg.Ack()
		return
	}

	if err := s.SyncProduct.Execute(ctx, event); err != nil {
		var validationErr *domain.ValidationErr
		if errors.As(err, &validationErr) {
			// Invalid events stay invalid on redelivery.
			s.Logger.Printf("ProductEventSubscriber: dropping invalid event: %v", err)
			msg.Ack()
			return
		}
		if !errors.Is(err, context.Canceled) {
			s.Logger.Printf("ProductEventSubscriber: sync failed for product %s: %v", event.ProductID, err)
		}
		msg.Nack()
		return
	}

	msg.Ack()
}
