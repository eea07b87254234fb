// Package errors defines the application-level error outcomes of the domain
// flows. Each flow returns one of a fixed set of tagged outcomes; the
// delivery layer owns the mapping from those outcomes to protocol status codes.
package errors

import (
	"net/http"

	"skycast/internal/errors"
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

// WithDetails returns a copy of the error carrying detailed information.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined outcomes. Wrong-password and unknown-identifier intentionally
// share ErrWrongCredentials so no error path reveals whether an account exists.
var (
	// Registration outcomes
	ErrInvalidCredentials = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CREDENTIALS",
		"Invalid credentials",
		"",
	)

	ErrAlreadyRegistered = NewBaseError(
		http.StatusConflict,
		"ALREADY_REGISTERED",
		"A user with given credentials already exists.",
		"",
	)

	ErrRegistrationFailed = NewBaseError(
		http.StatusInternalServerError,
		"REGISTRATION_FAILED",
		"Registration failed. Try again.",
		"",
	)

	// Authentication outcomes
	ErrWrongCredentials = NewBaseError(
		http.StatusNotFound,
		"WRONG_CREDENTIALS",
		"Username/email or password is wrong.",
		"",
	)

	ErrTokenCreation = NewBaseError(
		http.StatusInternalServerError,
		"TOKEN_CREATION_FAILED",
		"Login failed.",
		"",
	)

	// Weather retrieval outcomes
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Unauthorized access.",
		"",
	)

	ErrGeolocationQuery = NewBaseError(
		http.StatusInternalServerError,
		"GEOLOCATION_QUERY_FAILED",
		"Could not fetch user location.",
		"",
	)

	ErrWeatherQuery = NewBaseError(
		http.StatusInternalServerError,
		"WEATHER_QUERY_FAILED",
		"Could not fetch weather information.",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)
