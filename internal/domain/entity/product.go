package entity

import (
	"time"

	"github.com/google/uuid"
)

// Default display currency for products without one.
const (
	DefaultCurrency       = "USD"
	DefaultCurrencySymbol = "$"
)

// Product is a product listed by a store.
type Product struct {
	ID             uuid.UUID `json:"id"`
	StoreID        uuid.UUID `json:"store_id"`
	Name           string    `json:"name"`
	Price          float64   `json:"price"`
	StockQuantity  int       `json:"stock_quantity"`
	IsActive       bool      `json:"is_active"`
	ImageURL       string    `json:"image_url,omitempty"`
	Currency       string    `json:"currency"`
	CurrencySymbol string    `json:"currency_symbol"`
	Barcode        string    `json:"barcode,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// ProductAvailability is an in-stock product joined with its store coordinates.
type ProductAvailability struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	StoreID     uuid.UUID `json:"store_id"`
	StoreName   string    `json:"store_name"`
	StoreLat    *float64  `json:"store_lat"`
	StoreLng    *float64  `json:"store_lng"`
}

// HasCoordinates reports whether the joined store has a position.
func (p *ProductAvailability) HasCoordinates() bool {
	return p.StoreLat != nil && p.StoreLng != nil
}

// ProductResult is a search hit: a product with its store.
type ProductResult struct {
	Product           Product  `json:"product"`
	Store             Store    `json:"store"`
	DistanceMeters    *float64 `json:"distance_meters,omitempty"`
	FormattedDistance string   `json:"formatted_distance,omitempty"`
}
