package entity

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteProduct is a favorited product, denormalized with display fields at write time.
type FavoriteProduct struct {
	ID             uuid.UUID  `json:"id"`
	UserID         *uuid.UUID `json:"user_id,omitempty"` // Nil for guest favorites.
	ProductID      uuid.UUID  `json:"product_id"`
	StoreID        uuid.UUID  `json:"store_id"`
	ProductName    string     `json:"product_name"`
	Price          float64    `json:"price"`
	ImageURL       string     `json:"image_url,omitempty"`
	StoreName      string     `json:"store_name"`
	Currency       string     `json:"currency"`
	CurrencySymbol string     `json:"currency_symbol"`
	CreatedAt      time.Time  `json:"created_at"`
}

// ApplyCurrencyDefaults fills missing currency fields.
func (f *FavoriteProduct) ApplyCurrencyDefaults() {
	if f.Currency == "" {
		f.Currency = DefaultCurrency
	}
	if f.CurrencySymbol == "" {
		f.CurrencySymbol = DefaultCurrencySymbol
	}
}
