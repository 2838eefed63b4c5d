package domain

import "errors"

// Sentinel errors for the domain layer.
var (
	ErrNotFound      = errors.New("domain: not found")
	ErrConflict      = errors.New("domain: conflict")
	ErrEmailTaken    = errors.New("domain: email already registered")
	ErrQuotaExceeded = errors.New("domain: note limit reached")
)
