package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoSession          = errors.New("no active session")
	ErrNotGuest           = errors.New("not a guest session")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnsupported        = errors.New("operation not supported by provider")
)
