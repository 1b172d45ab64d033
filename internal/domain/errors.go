package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrRegistrationNotFound = errors.New("registration not found")
)

var (
	ErrEventFull         = errors.New("event is full")
	ErrAlreadyRegistered = errors.New("user already registered for this event")
	ErrInvalidAction     = errors.New("unknown registration action")
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

var (
	ErrValidation = errors.New("validation error")
)

// FieldErrors maps a form field name to a human-readable reason. It wraps
// ErrValidation so callers can match the whole class with errors.Is.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}

func (fe FieldErrors) Unwrap() error { return ErrValidation }
