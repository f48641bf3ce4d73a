// Package errors defines the application error taxonomy shared between the
// use case layer and the HTTP delivery.
package errors

import (
	"net/http"

	"fleet/internal/errors"
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

// WithDetails returns a copy of the error carrying detailed information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types.
//
// Remove and Update surface missing devices as 406, matching the upstream
// management API this service replaces. ErrDeviceNotRemoved is kept as a
// distinct member from ErrDeviceNotFound so callers and tests can tell
// "no such record" apart from "store refused the removal", even though both
// collapse to the same external status.
var (
	ErrDeviceAlreadyEnrolled = NewBaseError(
		http.StatusConflict,
		"DEVICE_ALREADY_ENROLLED",
		"A device with this identifier is already enrolled",
		"",
	)

	ErrDeviceNotFound = NewBaseError(
		http.StatusNotAcceptable,
		"DEVICE_NOT_FOUND",
		"No enrolled device exists for this identifier",
		"",
	)

	ErrDeviceNotRemoved = NewBaseError(
		http.StatusNotAcceptable,
		"DEVICE_NOT_REMOVED",
		"The device could not be removed",
		"",
	)

	ErrOwnerRequired = NewBaseError(
		http.StatusBadRequest,
		"OWNER_REQUIRED",
		"An owner must be supplied for provisioning",
		"",
	)

	ErrRegistryUnavailable = NewBaseError(
		http.StatusInternalServerError,
		"REGISTRY_UNAVAILABLE",
		"The device registry is unavailable",
		"",
	)

	ErrBundlePackaging = NewBaseError(
		http.StatusInternalServerError,
		"BUNDLE_PACKAGING_FAILED",
		"Failed to assemble the provisioning bundle",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Request validation failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
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
