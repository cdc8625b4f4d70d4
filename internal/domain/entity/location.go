// Package entity contains the core business objects of the project.
package entity

import "time"

// LocationStatus is the sampler status exposed to callers.
type LocationStatus string

const (
	LocationStatusIdle    LocationStatus = "idle"
	LocationStatusLoading LocationStatus = "loading"
	LocationStatusSuccess LocationStatus = "success"
	LocationStatusDenied  LocationStatus = "denied"
)

// LocationFix is a single sampled device position.
type LocationFix struct {
	Lat            float64 `json:"lat"`             // Latitude in degrees.
	Lng            float64 `json:"lng"`             // Longitude in degrees.
	AccuracyMeters float64 `json:"accuracy_meters"` // Radius of the 68% confidence circle.
	TimestampMs    int64   `json:"timestamp"`       // Platform timestamp of the reading, unix millis.
}

// CachedFix is the content of the single location cache slot.
type CachedFix struct {
	Fix      LocationFix `json:"fix"`
	CachedAt time.Time   `json:"cached_at"` // When the sampler wrote the slot.
}

// LocationState is a snapshot of the sampler.
type LocationState struct {
	Status    LocationStatus `json:"status"`
	Fix       *LocationFix   `json:"fix,omitempty"`
	Error     string         `json:"error,omitempty"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// HasFix reports whether the state carries a usable fix.
func (s LocationState) HasFix() bool {
	return s.Status == LocationStatusSuccess && s.Fix != nil
}
