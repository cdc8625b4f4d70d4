package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OpeningHourModel is one element of the 'stores.opening_hours' JSON array.
type OpeningHourModel struct {
	Day   string `json:"day"`
	Open  string `json:"open"`
	Close string `json:"close"`
}

// StoreModel mirrors the 'stores' table.
type StoreModel struct {
	ID           uuid.UUID                             `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	StoreName    string                                `gorm:"type:varchar(255);not null"`
	Address      string                                `gorm:"type:text"`
	Latitude     *float64                              `gorm:"type:decimal(10,8)"`
	Longitude    *float64                              `gorm:"type:decimal(11,8)"`
	IsActive     bool                                  `gorm:"not null;default:true;index"`
	PhoneNumber  string                                `gorm:"type:varchar(50)"`
	OpeningHours datatypes.JSONSlice[OpeningHourModel] `gorm:"type:jsonb"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}
