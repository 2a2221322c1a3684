package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without leaking infrastructure details.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrBadRequest   = errors.New("bad request")

	// ErrInvalidOperation is returned for actions that are never legal, such as following yourself.
	ErrInvalidOperation = errors.New("invalid operation")
	ErrRateLimited      = errors.New("too many attempts")
)

// Signup challenge errors.
var (
	ErrAlreadyRegistered = fmt.Errorf("email already registered: %w", ErrConflict)
	ErrOTPNotFound       = errors.New("otp not found")
	ErrOTPMismatch       = errors.New("otp mismatch")
	ErrOTPExpired        = errors.New("otp expired")
	ErrOTPNotVerified    = errors.New("email not verified")
)

// Authentication errors. All three surface as 401.
var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrSessionExpired = errors.New("session expired")
	// ErrTokenExpired is reported by the credential provider for a well-signed but lapsed token.
	ErrTokenExpired = errors.New("token expired")
)
