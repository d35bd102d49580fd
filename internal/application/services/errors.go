package services

import (
	"errors"
)

var (
	ErrNotFound              = errors.New("user not found")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrUnauthorized          = errors.New("could not validate credentials")
	ErrFailedToGenerateToken = errors.New("failed to generate token")
)

// ValidationError is returned for input rejected before touching storage.
// Fields maps a request field name to its message and may be empty.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string { return e.Message }
