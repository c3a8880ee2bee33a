package errors

import (
	"net/http"

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

// Is matches any BaseError carrying the same business error code, so that
// errors.Is(err, ErrMatrixUnavailable) holds for copies made by WithDetails.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInvalidGeometry = NewBaseError(
		http.StatusBadRequest,
		"INVALID_GEOMETRY",
		"Zone geometry could not be parsed",
		"",
	)

	// ErrMatrixUnavailable is the one unrecoverable optimize failure: without a
	// cost matrix no assignment can be computed.
	ErrMatrixUnavailable = NewBaseError(
		http.StatusBadGateway,
		"MATRIX_UNAVAILABLE",
		"Distance matrix service unavailable, routes could not be optimized",
		"",
	)

	ErrWeatherDisabled = NewBaseError(
		http.StatusServiceUnavailable,
		"WEATHER_DISABLED",
		"Weather analysis is disabled",
		"",
	)

	// General errors
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

// UpstreamError represents a failed call to an external service, implementing the AppError interface
type UpstreamError struct {
	service string
	err     error
}

// NewUpstreamError creates an upstream-related error
func NewUpstreamError(service string, err error) AppError {
	return &UpstreamError{
		service: service,
		err:     err,
	}
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	return errors.Wrapf(e.err, "%s upstream failed", e.service).Error()
}

// Unwrap returns the underlying transport error
func (e *UpstreamError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *UpstreamError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *UpstreamError) ErrorCode() string {
	return "UPSTREAM_FAILED"
}

// Message returns the user-friendly error message
func (e *UpstreamError) Message() string {
	return "External service request failed"
}

// Details returns detailed error information
func (e *UpstreamError) Details() string {
	return e.service
}

// Service returns the name of the failing upstream
func (e *UpstreamError) Service() string {
	return e.service
}
