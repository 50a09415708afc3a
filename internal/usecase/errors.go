package usecase

import (
	"errors"

	"train-booking/internal/wizard"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrSessionExpired     = wizard.ErrSessionExpired
	ErrAlreadyCancelled   = errors.New("booking already cancelled")
	ErrBookingFailed      = errors.New("booking failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactiveAccount    = errors.New("account is deactivated")
	ErrInvalidToken       = errors.New("invalid or expired session")
	ErrConflict           = errors.New("already exists")
)

// NotFoundError dipakai juga untuk data milik user lain, supaya tidak bocor
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

func notFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

// ValidationError membawa error per field (key = nama json field)
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string { return e.Message }

func newValidationError(message string, fields map[string]string) *ValidationError {
	return &ValidationError{Message: message, Fields: fields}
}
