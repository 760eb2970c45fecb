package domain

import (
	"errors"
	"fmt"
)

// ValidationError reports caller misuse: a missing or malformed argument,
// an unknown SKU, or an invalid range.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// InsufficientInventoryError is returned when the cumulative quantity
// requested for a SKU exceeds what the inventory reports as available.
// The cart is unchanged when this error is returned.
type InsufficientInventoryError struct {
	SKU       string
	Requested int
	Available int
}

func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("insufficient inventory for SKU '%s': requested %d, available %d",
		e.SKU, e.Requested, e.Available)
}

// IsValidation reports whether err is, or wraps, a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// AsInsufficientInventory unwraps err into an *InsufficientInventoryError.
func AsInsufficientInventory(err error) (*InsufficientInventoryError, bool) {
	var ie *InsufficientInventoryError
	if errors.As(err, &ie) {
		return ie, true
	}
	return nil, false
}
