package workers

import (
	"context"
	"log"
	"time"

	"github.com/marqueshop/recommender/internal/usecases"
)

// OutboxRelay is a runnable that processes outbox events and publishes them to Pub/Sub.
type OutboxRelay struct {
	MessageDispatcher   usecases.RelayOutbox `resolve:""`
	Logger              *log.Logger          `resolve:""`
	Interval            time.Duration        `config:"FETCH_OUTBOX_INTERVAL" default:"500ms"`
	workerExecutionChan chan struct{}
}

// Run starts the periodic processing of outbox events.
func (or OutboxRelay) Run(ctx context.Context) error {
	or.Logger.Println("OutboxRelay: running...")
	ticker := time.NewTicker(or.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			err := or.MessageDispatcher.Execute(ctx)
			if err != nil {
				or.Logger.Printf("error processing batch: %v", err)
			}
			if or.workerExecutionChan != nil {
				or.workerExecutionChan <- struct{}{}
			}
		case <-ctx.Done():
			or.Logger.Println("OutboxRelay: stopping...")
			return nil
		}
	}
}
