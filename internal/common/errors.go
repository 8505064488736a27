// Package common defines the sentinel errors shared across the service
// layers. Callers should use errors.Is to match these values; the HTTP
// boundary translates them into stable machine-readable responses.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound            = errors.New("not found")
	ErrorDuplicateCredential = errors.New("username or email already in use")

	// Service-level errors.
	ErrorInternal           = errors.New("internal error")
	ErrorInvalidInput       = errors.New("invalid input")
	ErrorInvalidCredentials = errors.New("invalid email or password")

	// Auth errors. Unauthenticated deliberately covers missing, malformed,
	// expired and revoked tokens alike; callers must not be able to tell
	// which case they hit.
	ErrorUnauthenticated = errors.New("unauthenticated")
	ErrorInvalidToken    = errors.New("invalid token")
)
