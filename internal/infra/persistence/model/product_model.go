package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	StoreID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Price          float64   `gorm:"type:decimal(12,2);not null"`
	StockQuantity  int       `gorm:"not null;default:0"`
	IsActive       bool      `gorm:"not null;default:true"`
	ImageURL       string    `gorm:"type:text"`
	Currency       string    `gorm:"type:varchar(3)"`
	CurrencySymbol string    `gorm:"type:varchar(8)"`
	Barcode        string    `gorm:"type:varchar(64)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Store *StoreModel `gorm:"foreignKey:StoreID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
