package service

import "errors"

// Sentinel errors returned by the service layer. Handlers translate these to
// HTTP statuses; anything else is an internal failure and must not leak its
// cause to the client.
var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflicting concurrent update")
	ErrInvalidTransition  = errors.New("invalid status transition")
)
