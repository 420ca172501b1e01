package otp

import "errors"

// Common errors returned by the otp package.
var (
	// ErrEmptyKey indicates an empty secret key was supplied.
	ErrEmptyKey = errors.New("otp: key must not be empty")
	// ErrInvalidConfig indicates the configuration is invalid.
	ErrInvalidConfig = errors.New("otp: invalid configuration")
)
