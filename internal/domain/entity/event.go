package entity

import (
	"time"

	"github.com/google/uuid"
)

// StoreDetectedEvent is published when the proximity monitor raises a prompt.
type StoreDetectedEvent struct {
	StoreID        uuid.UUID  `json:"store_id"`
	StoreName      string     `json:"store_name"`
	DistanceMeters float64    `json:"distance_meters"`
	UserID         *uuid.UUID `json:"user_id,omitempty"`
	DetectedAt     time.Time  `json:"detected_at"`
}

// ReminderMatchedEvent is published when the reminder monitor raises a notification.
type ReminderMatchedEvent struct {
	ReminderID     uuid.UUID  `json:"reminder_id"`
	ProductID      uuid.UUID  `json:"product_id"`
	StoreID        uuid.UUID  `json:"store_id"`
	SearchTerm     string     `json:"search_term"`
	DistanceMeters float64    `json:"distance_meters"`
	UserID         *uuid.UUID `json:"user_id,omitempty"`
	MatchedAt      time.Time  `json:"matched_at"`
}
