// Package common contains shared constants and sentinel errors used across
// luvletter components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Store-level errors.
	ErrNotFound = errors.New("not found")

	// Dispatch-level errors.
	ErrNothingToSend = errors.New("nothing to send")

	// Validation errors (missing required field, bad input).
	ErrValidation = errors.New("validation error")

	// Configuration errors (missing provider credential and similar).
	ErrMisconfigured = errors.New("server misconfigured")

	// Upstream provider returned a non-success envelope. The wrapped
	// message carries the provider's own error detail.
	ErrProvider = errors.New("provider error")
)
