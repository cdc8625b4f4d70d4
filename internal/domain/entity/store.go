package entity

import (
	"time"

	"github.com/google/uuid"
)

// OpeningHour is the opening window of a store for one weekday.
type OpeningHour struct {
	Day   string `json:"day"`   // Weekday name, e.g. "Monday".
	Open  string `json:"open"`  // Opening time, "HH:MM".
	Close string `json:"close"` // Closing time, "HH:MM". Earlier than Open means past midnight.
}

// Store is a retail store as held by the backend.
type Store struct {
	ID           uuid.UUID     `json:"id"`
	Name         string        `json:"name"`
	Address      string        `json:"address"`
	Lat          *float64      `json:"lat"` // Nil when the backend has no coordinates.
	Lng          *float64      `json:"lng"`
	IsActive     bool          `json:"is_active"`
	Phone        string        `json:"phone,omitempty"`
	OpeningHours []OpeningHour `json:"opening_hours,omitempty"`
}

// Location returns the store as a StoreLocation, false when coordinates are missing.
func (s *Store) Location() (StoreLocation, bool) {
	if s.Lat == nil || s.Lng == nil {
		return StoreLocation{}, false
	}

	return StoreLocation{
		ID:      s.ID,
		Name:    s.Name,
		Address: s.Address,
		Lat:     *s.Lat,
		Lng:     *s.Lng,
	}, true
}

// StoreLocation is the immutable part of a store the monitors work with.
type StoreLocation struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Address string    `json:"address"`
	Lat     float64   `json:"lat"`
	Lng     float64   `json:"lng"`
}

// DetectedStore is a store that entered the detection radius.
type DetectedStore struct {
	StoreLocation
	DistanceMeters float64   `json:"distance_meters"`
	DetectedAt     time.Time `json:"detected_at"`
}

// StoreStatus is the opening status of a store at a given time.
type StoreStatus struct {
	Text   string `json:"text"`
	IsOpen bool   `json:"is_open"`
}

// NearbyStore is a store annotated with the distance from the current fix.
type NearbyStore struct {
	Store
	DistanceMeters    *float64    `json:"distance_meters,omitempty"`
	FormattedDistance string      `json:"formatted_distance,omitempty"`
	Status            StoreStatus `json:"status"`
}
