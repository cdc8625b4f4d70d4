package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for deep-link QR code generation and parsing
type QRCodeService interface {
	// GenerateStoreQR generates a QR code opening a store, optionally focused on a product
	GenerateStoreQR(storeID uuid.UUID, productID *uuid.UUID) ([]byte, error)

	// ParseStoreQR parses QR code content and returns the store and optional product
	ParseStoreQR(content string) (storeID uuid.UUID, productID *uuid.UUID, err error)
}
