package errors

import (
	"context"
	"fmt"

	"shopradar/internal/errors"
)

// PositionErrorKind classifies a failed position request.
type PositionErrorKind string

const (
	PositionPermissionDenied PositionErrorKind = "permission-denied"
	PositionTimeout          PositionErrorKind = "timeout"
	PositionUnavailable      PositionErrorKind = "unavailable"
)

// PositionError is a failure reported by the platform position source.
type PositionError struct {
	Kind    PositionErrorKind
	Message string
}

// NewPositionError creates a position error of the given kind.
func NewPositionError(kind PositionErrorKind, message string) *PositionError {
	return &PositionError{Kind: kind, Message: message}
}

func (e *PositionError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("position error: %s", e.Kind)
	}

	return fmt.Sprintf("position error (%s): %s", e.Kind, e.Message)
}

// ErrGeolocationUnavailable is returned when the device has no position capability.
var ErrGeolocationUnavailable = errors.New("geolocation is not supported on this device")

// FromPositionError maps sampler failures onto the domain taxonomy.
func FromPositionError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrGeolocationUnavailable) {
		return ErrLocationUnavailable.WithDetails(err.Error())
	}

	var posErr *PositionError
	if errors.As(err, &posErr) {
		switch posErr.Kind {
		case PositionPermissionDenied:
			return ErrLocationPermissionDenied.WithDetails(posErr.Message)
		case PositionTimeout:
			return ErrTimeout.WithDetails(posErr.Message)
		default:
			return ErrLocationUnavailable.WithDetails(posErr.Message)
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}

	return err
}
