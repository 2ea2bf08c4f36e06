// Package common defines shared constants and sentinel errors used across
// client and server layers of gophauth. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Request validation errors (transport-level faults).
	ErrUserRequired = errors.New("user field is required")

	// Domain outcomes. These are delivered in-band to the caller and are not
	// failures of the service.
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("username/password combination incorrect")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Token errors (invalid, malformed or expired token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
