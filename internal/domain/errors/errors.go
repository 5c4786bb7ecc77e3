package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrAlreadyExists      = errors.New("resource already exists")
	ErrInvalidInput       = errors.New("invalid input")
	ErrRateLimited        = errors.New("rate limited")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInactiveUser       = errors.New("user is inactive")
	ErrNotVerified        = errors.New("user is not verified")
	ErrAlreadyInState     = errors.New("already in requested state")
)

// Error codes returned next to the human readable detail
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeNotFound           = "NOT_FOUND"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeInternalError      = "INTERNAL_ERROR"
	CodeInvalidCredentials = "LOGIN_BAD_CREDENTIALS"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeInactiveUser       = "USER_INACTIVE"
	CodeAlreadyVerified    = "USER_ALREADY_VERIFIED"
	CodeNotVerified        = "USER_NOT_VERIFIED"
	CodeEmailTaken         = "EMAIL_ALREADY_REGISTERED"
	CodeNotAdmin           = "NOT_ADMIN"
	CodeAlreadyInState     = "ALREADY_IN_STATE"
	CodeNotSeller          = "NOT_SELLER"
	CodeUnknownGoods       = "UNKNOWN_GOODS"
	CodeRateLimited        = "RATE_LIMITED"
)

// AppError represents application error with HTTP status
type AppError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"detail"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(status int, code string, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Unauthorized is a missing or rejected session (HTTP 401)
func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, CodeUnauthorized, message, ErrUnauthorized)
}

// InternalError hides err from the client; callers log it.
func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, CodeInternalError, "internal server error", err)
}

// Validation wraps a request validation failure (HTTP 422)
func Validation(message string) *AppError {
	return NewAppError(http.StatusUnprocessableEntity, CodeValidation, message, ErrInvalidInput)
}
