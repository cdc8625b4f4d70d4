package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table. AuthID references the auth user id.
type ProfileModel struct {
	AuthID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	AutoOpenNearbyStores bool      `gorm:"not null;default:true"`
	NotifyFailedSearches bool      `gorm:"not null;default:true"`
	SearchProximity      *float64
	PriceMin             *float64 `gorm:"type:decimal(12,2)"`
	PriceMax             *float64 `gorm:"type:decimal(12,2)"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
