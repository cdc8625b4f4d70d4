package pubsub

import (
	"encoding/json"

	"shopradar/internal/domain/constants"
	"shopradar/internal/domain/entity"
	"shopradar/internal/errors"
)

// message is a serialized event with its Pub/Sub attributes.
type message struct {
	id         string
	data       []byte
	attributes map[string]string
}

func storeDetectedMessage(event *entity.StoreDetectedEvent) (*message, error) {
	attributes := map[string]string{
		"event_type": constants.EventTypeStoreDetected,
		"store_id":   event.StoreID.String(),
	}
	if event.UserID != nil {
		attributes["user_id"] = event.UserID.String()
	}

	return newMessage(event.StoreID.String()+"-"+event.DetectedAt.Format("20060102T150405"), event, attributes)
}

func reminderMatchedMessage(event *entity.ReminderMatchedEvent) (*message, error) {
	attributes := map[string]string{
		"event_type":  constants.EventTypeReminderMatched,
		"reminder_id": event.ReminderID.String(),
		"store_id":    event.StoreID.String(),
	}
	if event.UserID != nil {
		attributes["user_id"] = event.UserID.String()
	}

	return newMessage(entity.NotificationKey(event.ReminderID, event.ProductID, event.StoreID), event, attributes)
}

func newMessage(id string, event any, attributes map[string]string) (*message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &message{id: id, data: data, attributes: attributes}, nil
}
