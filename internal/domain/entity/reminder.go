package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ProductReminder is a saved search term or product of interest.
type ProductReminder struct {
	ID          uuid.UUID  `json:"id"`
	UserID      *uuid.UUID `json:"user_id,omitempty"` // Nil for guest reminders.
	SearchTerm  string     `json:"search_term"`
	ProductID   *uuid.UUID `json:"product_id,omitempty"`
	StoreID     *uuid.UUID `json:"store_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	NotifiedAt  *time.Time `json:"notified_at,omitempty"`
	DismissedAt *time.Time `json:"dismissed_at,omitempty"`
	IsActive    bool       `json:"is_active"`
}

// IsPending reports whether the reminder can still fire.
func (r *ProductReminder) IsPending() bool {
	return r.IsActive && r.DismissedAt == nil
}

// InCooldown reports whether the reminder was notified less than cooldown ago.
func (r *ProductReminder) InCooldown(now time.Time, cooldown time.Duration) bool {
	return r.NotifiedAt != nil && now.Sub(*r.NotifiedAt) < cooldown
}

// TermKey is the natural key used to deduplicate reminders.
func (r *ProductReminder) TermKey() string {
	return NormalizeTerm(r.SearchTerm)
}

// NormalizeTerm lowercases and trims a search term.
func NormalizeTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

// ReminderNotification is a "product now nearby" notification raised by the reminder monitor.
type ReminderNotification struct {
	ID             string    `json:"id"` // reminderID-productID-storeID
	ReminderID     uuid.UUID `json:"reminder_id"`
	ProductID      uuid.UUID `json:"product_id"`
	StoreID        uuid.UUID `json:"store_id"`
	ProductName    string    `json:"product_name"`
	StoreName      string    `json:"store_name"`
	Message        string    `json:"message"`
	DistanceMeters float64   `json:"distance_meters"`
	Target         string    `json:"target"` // Navigation target for the "view" action.
	RaisedAt       time.Time `json:"raised_at"`
	ExpiresAt      time.Time `json:"expires_at"`
}

// NotificationKey builds the in-session de-dup key of a reminder match.
func NotificationKey(reminderID, productID, storeID uuid.UUID) string {
	return fmt.Sprintf("%s-%s-%s", reminderID, productID, storeID)
}

// StoreProductTarget is the navigation target of a product inside a store.
func StoreProductTarget(storeID, productID uuid.UUID) string {
	return fmt.Sprintf("/store/%s?product=%s", storeID, productID)
}
