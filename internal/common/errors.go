// Package common defines shared constants and sentinel errors used across
// client and server layers of recmarket. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// ErrorValidation is matched by every input validation failure.
	ErrorValidation = errors.New("validation error")

	// Auth errors (invalid or malformed identity token).
	ErrInvalidToken = errors.New("invalid token")
)
