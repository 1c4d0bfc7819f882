package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	// EventType_PRODUCT_SAVED represents the event when a catalog product is created or updated.
	EventType_PRODUCT_SAVED EventType = "PRODUCT.SAVED"
	// EventType_PRODUCT_DEACTIVATED represents the event when a catalog product is removed from sale.
	EventType_PRODUCT_DEACTIVATED EventType = "PRODUCT.DEACTIVATED"
)

// ProductEvent represents a catalog change event in the system.
type ProductEvent struct {
	Type      EventType
	ProductID uuid.UUID
	CreatedAt time.Time
}

// EventPublisher defines the interface for publishing events.
type EventPublisher interface {
	PublishEvent(ctx context.Context, event OutboxEvent) error
}
