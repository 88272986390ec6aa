package apperr

import "errors"

// Sentinel errors for the service layer. Handlers map these to HTTP
// status codes with errors.Is; anything unmatched becomes a 500.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrValidation   = errors.New("validation failed")
)
