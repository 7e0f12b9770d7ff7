// Package common defines shared constants and sentinel errors used across
// the opsbot server layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Auth errors. Every token resolution failure collapses to ErrorInvalidToken.
	ErrorInvalidCredentials = errors.New("invalid credentials")
	ErrorInvalidToken       = errors.New("invalid token")
	ErrorInactiveUser       = errors.New("inactive user")

	// Access control.
	ErrorForbidden = errors.New("forbidden")

	// Service-level errors.
	ErrorInvalidArgument = errors.New("invalid argument")
	ErrorInternal        = errors.New("internal error")
)
