package idmerr

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode represents a unique error code
type ErrorCode string

// Error codes surfaced by the identity, wallet and join collaborators.
const (
	// Generic errors
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"

	// Identity provider errors
	ErrCodeInvalidEmail      ErrorCode = "INVALID_EMAIL"
	ErrCodeUserNotFound      ErrorCode = "USER_NOT_FOUND"
	ErrCodeUserDisabled      ErrorCode = "USER_DISABLED"
	ErrCodeWrongPassword     ErrorCode = "WRONG_PASSWORD"
	ErrCodeEmailAlreadyInUse ErrorCode = "EMAIL_ALREADY_IN_USE"
	ErrCodeWeakPassword      ErrorCode = "WEAK_PASSWORD"

	// Provider availability
	ErrCodeProviderUnavailable ErrorCode = "PROVIDER_UNAVAILABLE"

	// Wallet provider errors
	ErrCodeChainNotRecognized ErrorCode = "CHAIN_NOT_RECOGNIZED"
	ErrCodeNoWalletProvider   ErrorCode = "NO_WALLET_PROVIDER"
)

// Error represents a structured error with code, message, and optional wrapped error
type Error struct {
	Code    ErrorCode // Unique error code
	Message string    // Human-readable error message
	Err     error     // Wrapped underlying error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error for errors.Is and errors.As
func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatusCode returns the appropriate HTTP status code for this error
func (e *Error) HTTPStatusCode() int {
	return MapErrorCodeToHTTPStatus(e.Code)
}

// New creates a new Error with the given code and message
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new Error with formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an existing error with code and message
func Wrap(err error, code ErrorCode, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsCode checks if an error has a specific error code
func IsCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error
// Returns ErrCodeInternal if the error is not a structured Error
func GetCode(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrCodeInternal
}

// MapErrorCodeToHTTPStatus maps error codes to HTTP status codes
func MapErrorCodeToHTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeInvalidInput, ErrCodeInvalidEmail, ErrCodeWeakPassword:
		return http.StatusBadRequest
	case ErrCodeWrongPassword:
		return http.StatusUnauthorized
	case ErrCodeUserDisabled:
		return http.StatusForbidden
	case ErrCodeNotFound, ErrCodeUserNotFound, ErrCodeChainNotRecognized:
		return http.StatusNotFound
	case ErrCodeEmailAlreadyInUse:
		return http.StatusConflict
	case ErrCodeProviderUnavailable, ErrCodeNoWalletProvider:
		return http.StatusServiceUnavailable
	case ErrCodeInternal:
		fallthrough
	default:
		return http.StatusInternalServerError
	}
}
