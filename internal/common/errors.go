// Package common defines shared constants and sentinel errors used across
// client and server layers of gophclip. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// ErrCodeTaken is returned by a conditional insert when another live
	// entry already holds the code.
	ErrCodeTaken = errors.New("code taken")

	// Service-level errors.
	ErrorValidation        = errors.New("validation error")
	ErrorCapacityExhausted = errors.New("no free code available")
	ErrorInternal          = errors.New("internal error")
)
