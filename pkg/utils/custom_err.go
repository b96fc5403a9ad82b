package utils

import (
	"errors"
	"strings"
)

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrHandleAlreadyExists = errors.New("handle already taken")
	ErrInvalidResetToken   = errors.New("invalid or expired reset token")

	ErrRegistrationNotFound  = errors.New("registration not found")
	ErrInvoiceNotFound       = errors.New("invoice not found")
	ErrProductNotFound       = errors.New("product not found")
	ErrCategoryNotFound      = errors.New("product category not found")
	ErrAccommodationNotFound = errors.New("accommodation not found")
	ErrForbidden             = errors.New("forbidden")
	ErrInvoiceFrozen         = errors.New("invoice has payments recorded and cannot change")
	ErrDatabaseError         = errors.New("database error")
)

// ValidationError carries field-level form failures back to the client.
// Field errors are never fatal: they render on the originating field.
type ValidationError struct {
	Fields map[string]string
}

func (v *ValidationError) Error() string {
	parts := make([]string, 0, len(v.Fields))
	for field, msg := range v.Fields {
		parts = append(parts, field+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

func (v *ValidationError) Add(field, message string) {
	if _, taken := v.Fields[field]; !taken {
		v.Fields[field] = message
	}
}

func (v *ValidationError) HasErrors() bool {
	return len(v.Fields) > 0
}

// OrNil lets validators build up errors and return a plain nil when clean.
func (v *ValidationError) OrNil() error {
	if v.HasErrors() {
		return v
	}
	return nil
}
