// internal/util/errors.go
package util

import "errors"

// Common application-specific errors.
var (
	ErrInvalidInput = errors.New("invalid input provided")
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("duplicate entry") // For cases like registering a user with an existing email
	ErrUnauthorized = errors.New("invalid credentials")
	ErrUserNotFound = errors.New("user not found")
)

// IsError reports whether err wraps target. Thin wrapper over errors.Is,
// used by the handler layer to map errors to HTTP status codes.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
