package service

import (
	"context"

	"shopradar/internal/domain/entity"
)

// EventPublisher defines the interface for publishing monitor events to a message queue
type EventPublisher interface {
	// PublishStoreDetected publishes a nearby-store prompt event
	PublishStoreDetected(ctx context.Context, event *entity.StoreDetectedEvent) error

	// PublishReminderMatched publishes a reminder match event
	PublishReminderMatched(ctx context.Context, event *entity.ReminderMatchedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
