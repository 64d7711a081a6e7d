// domain/otp.go
package domain

import "context"

// VerifyResult carries the outcome of an OTP check. Reason is a
// client-facing message and is only set when Valid is false.
type VerifyResult struct {
	Valid  bool
	Reason string
}

// OTPRegistry owns the one active code per email. Issuing a new code for an
// email replaces whatever was stored before.
type OTPRegistry interface {
	Issue(ctx context.Context, email string) (string, error)
	Verify(ctx context.Context, email, code string) (VerifyResult, error)
	Delete(ctx context.Context, email string) error
}

// Notifier delivers a one-time code to an address. Transport failures are
// non-fatal: the caller decides how to degrade.
type Notifier interface {
	SendOTP(to, code string) error
}
