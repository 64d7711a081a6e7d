package repository

import (
	"context"
	"sync"
	"time"

	"vyoma/domain"
	"vyoma/utils"
)

const (
	otpTTL         = 10 * time.Minute
	otpMaxAttempts = 5
)

// Client-facing verification outcomes, shared by both registry backends.
const (
	otpReasonNotFound = "OTP not found. Please request a new one."
	otpReasonExpired  = "OTP has expired. Please request a new one."
	otpReasonTooMany  = "Too many attempts. Please request a new OTP."
	otpReasonMismatch = "Invalid OTP. Please try again."
)

type otpEntry struct {
	code      string
	expiresAt time.Time
	attempts  int
}

// memoryOTPRegistry keeps at most one active code per email in process
// memory. Entries do not survive a restart; verification is a short-lived
// interactive flow, so that is acceptable.
type memoryOTPRegistry struct {
	mu         sync.Mutex
	entries    map[string]*otpEntry
	bypassCode string
	now        func() time.Time
}

// NewMemoryOTPRegistry builds the in-process registry. bypassCode, when
// non-empty, is accepted in place of any stored code; callers must only set
// it outside production.
func NewMemoryOTPRegistry(bypassCode string) domain.OTPRegistry {
	return &memoryOTPRegistry{
		entries:    make(map[string]*otpEntry),
		bypassCode: bypassCode,
		now:        time.Now,
	}
}

func (r *memoryOTPRegistry) Issue(ctx context.Context, email string) (string, error) {
	code, err := utils.GenerateOTP()
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Last write wins: reissuing replaces the previous entry and resets the
	// attempt counter.
	r.entries[email] = &otpEntry{
		code:      code,
		expiresAt: r.now().Add(otpTTL),
	}
	return code, nil
}

func (r *memoryOTPRegistry) Verify(ctx context.Context, email, code string) (domain.VerifyResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[email]
	if !ok {
		return domain.VerifyResult{Reason: otpReasonNotFound}, nil
	}

	if r.now().After(entry.expiresAt) {
		delete(r.entries, email)
		return domain.VerifyResult{Reason: otpReasonExpired}, nil
	}

	entry.attempts++
	if entry.attempts > otpMaxAttempts {
		delete(r.entries, email)
		return domain.VerifyResult{Reason: otpReasonTooMany}, nil
	}

	if code != entry.code && (r.bypassCode == "" || code != r.bypassCode) {
		return domain.VerifyResult{Reason: otpReasonMismatch}, nil
	}

	delete(r.entries, email)
	return domain.VerifyResult{Valid: true}, nil
}

func (r *memoryOTPRegistry) Delete(ctx context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, email)
	return nil
}
