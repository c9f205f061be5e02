// internal/util/errors.go
package util

import "errors"

// Common application-specific errors.
var (
	ErrCancelled        = errors.New("operation cancelled by user")
	ErrNoAccounts       = errors.New("no accounts available")
	ErrNoPaymentMethods = errors.New("no payment methods available")
	ErrInvalidAmount    = errors.New("amount must be a number greater than 0")
	ErrUnknownVariable  = errors.New("unknown variable")
)

// IsError reports whether err matches target anywhere in its wrap chain.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
