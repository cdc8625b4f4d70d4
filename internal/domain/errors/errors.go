package errors

import (
	"net/http"

	"shopradar/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// Is matches any BaseError carrying the same error code
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Location-related errors
	ErrLocationPermissionDenied = NewBaseError(
		http.StatusForbidden,
		"LOCATION_PERMISSION_DENIED",
		"Location permission was denied",
		"",
	)

	ErrLocationUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"LOCATION_UNAVAILABLE",
		"Location is not available on this device",
		"",
	)

	ErrLocationNotReady = NewBaseError(
		http.StatusConflict,
		"LOCATION_NOT_READY",
		"No location fix is available yet",
		"",
	)

	// Transport-related errors
	ErrTimeout = NewBaseError(
		http.StatusGatewayTimeout,
		"TIMEOUT",
		"The request timed out",
		"",
	)

	ErrNetworkFailure = NewBaseError(
		http.StatusBadGateway,
		"NETWORK_FAILURE",
		"A remote service could not be reached",
		"",
	)

	// Data-related errors
	ErrDataIncomplete = NewBaseError(
		http.StatusUnprocessableEntity,
		"DATA_INCOMPLETE",
		"The record is missing required data",
		"",
	)

	ErrNoRoute = NewBaseError(
		http.StatusNotFound,
		"NO_ROUTE",
		"No route was found between the two points",
		"",
	)

	ErrDirectionsUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"DIRECTIONS_UNAVAILABLE",
		"Directions are not configured on this device",
		"",
	)

	ErrStoreNotFound = NewBaseError(
		http.StatusNotFound,
		"STORE_NOT_FOUND",
		"Store not found",
		"",
	)

	ErrReminderNotFound = NewBaseError(
		http.StatusNotFound,
		"REMINDER_NOT_FOUND",
		"Reminder not found",
		"",
	)

	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"Notification not found or already handled",
		"",
	)

	ErrNoActivePrompt = NewBaseError(
		http.StatusConflict,
		"NO_ACTIVE_PROMPT",
		"There is no prompt for this store",
		"",
	)

	// Session-related errors
	ErrInvalidAccessToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_ACCESS_TOKEN",
		"Invalid or expired access token",
		"",
	)

	ErrMigrationFailed = NewBaseError(
		http.StatusInternalServerError,
		"MIGRATION_FAILED",
		"Guest data could not be synced",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Unwrap returns the underlying database error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
