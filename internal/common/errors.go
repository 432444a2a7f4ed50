// Package common defines shared constants and sentinel errors used across
// biogate components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (expected business outcomes).
	ErrorAlreadyExists = errors.New("already exists")
	ErrorUnauthorized  = errors.New("unauthorized")
	ErrorConflict      = errors.New("conflict")
	ErrorInternal      = errors.New("internal error")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
