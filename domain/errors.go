package domain

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("invalid or expired token")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("email already in use")
	ErrNotFound           = errors.New("record not found")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrOTPInvalid         = errors.New("otp rejected")
)

// OTPError wraps ErrOTPInvalid with the registry's client-facing reason.
type OTPError struct {
	Reason string
}

func (e *OTPError) Error() string { return e.Reason }

func (e *OTPError) Unwrap() error { return ErrOTPInvalid }
