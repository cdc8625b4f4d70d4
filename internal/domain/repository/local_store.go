package repository

import (
	"context"

	"github.com/pkg/errors"
)

// ErrLocalKeyNotFound is returned when a device-local key has no value.
var ErrLocalKeyNotFound = errors.New("local key not found")

// LocalStore is the device-local key-value storage.
type LocalStore interface {
	// Get returns the value stored under key.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
