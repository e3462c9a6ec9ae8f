// Package shared holds sentinel errors used across layers.
package shared

import "errors"

var (
	// auth-specific errors
	ErrEmailTaken         = errors.New("email already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")

	// store-specific errors
	ErrAccountNotFound = errors.New("account not found")
	ErrContactNotFound = errors.New("contact not found")

	// request validation
	ErrValidation = errors.New("validation error")

	// scanner-specific errors
	ErrUnsupportedImage = errors.New("unsupported image type")
)
