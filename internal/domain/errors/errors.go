package errors

import (
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
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
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same error code, so errors derived
// through WithDetails still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
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
	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInvalidLocation = NewBaseError(
		http.StatusBadRequest,
		"INVALID_LOCATION",
		"Latitude must be within ±90 and longitude within ±180",
		"",
	)

	// Device-related errors
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"Device not found",
		"",
	)

	// Prayer time provider errors
	ErrPrayerTimesUnavailable = NewBaseError(
		http.StatusBadGateway,
		"PRAYER_TIMES_UNAVAILABLE",
		"Prayer times are temporarily unavailable",
		"",
	)

	// General errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Missing or invalid API key",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// NewValidationError returns ErrValidationFailed carrying the reason.
func NewValidationError(format string, args ...any) *BaseError {
	return ErrValidationFailed.WithDetails(fmt.Sprintf(format, args...))
}

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

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap returns the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
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

// TransportError is a failure reported by the push transport.
type TransportError struct {
	// Permanent marks a bad or expired token. The device must be unregistered.
	Permanent bool
	Reason    string
	err       error
}

// NewPermanentTransportError wraps a transport failure that will never succeed for this token.
func NewPermanentTransportError(reason string, err error) *TransportError {
	return &TransportError{Permanent: true, Reason: reason, err: err}
}

// NewTransientTransportError wraps a transport failure worth retrying.
func NewTransientTransportError(reason string, err error) *TransportError {
	return &TransportError{Permanent: false, Reason: reason, err: err}
}

func (e *TransportError) Error() string {
	kind := "transient"
	if e.Permanent {
		kind = "permanent"
	}
	if e.err == nil {
		return fmt.Sprintf("%s transport error: %s", kind, e.Reason)
	}

	return fmt.Sprintf("%s transport error: %s: %v", kind, e.Reason, e.err)
}

func (e *TransportError) Unwrap() error {
	return e.err
}

// IsPermanentTransportError reports whether err carries a permanent TransportError.
func IsPermanentTransportError(err error) bool {
	var te *TransportError

	return errors.As(err, &te) && te.Permanent
}

// StaleEventError is raised internally for a due event past its staleness deadline.
// It is logged and recorded, never returned to API callers.
type StaleEventError struct {
	Kind     string
	Date     string
	Deadline time.Time
	Now      time.Time
}

func (e *StaleEventError) Error() string {
	return fmt.Sprintf("event %s on %s is stale: deadline %s passed %s ago",
		e.Kind, e.Date, e.Deadline.Format(time.RFC3339), e.Now.Sub(e.Deadline).Round(time.Second))
}
