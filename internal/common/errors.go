// Package common contains shared constants and sentinel errors used across
// client and server layers of the portal. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Service-level errors.
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// ErrConflict marks operations that clash with a record's current
	// lifecycle state, e.g. editing a record that is being torn down.
	ErrConflict = errors.New("conflict")

	// Transport errors.
	ErrUnavailable = errors.New("server unavailable")

	// ErrAuthFailed is the uniform login failure returned to callers;
	// it deliberately does not say which step of the login failed.
	ErrAuthFailed = errors.New("authentication failed")

	// Validation errors.
	ErrInvalidInput = errors.New("invalid input")
)
