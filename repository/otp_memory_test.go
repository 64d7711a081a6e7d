package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T, bypass string) *memoryOTPRegistry {
	t.Helper()
	r, ok := NewMemoryOTPRegistry(bypass).(*memoryOTPRegistry)
	require.True(t, ok)
	return r
}

func TestMemoryOTPRoundTrip(t *testing.T) {
	ctx := context.Background()
	r := newTestRegistry(t, "")

	code, err := r.Issue(ctx, "e@x.com")
	require.NoError(t, err)
	require.Len(t, code, 6)

	result, err := r.Verify(ctx, "e@x.com", code)
	require.NoError(t, err)
	require.True(t, result.Valid)

	// The entry is consumed on success: the same code no longer verifies.
	result, err = r.Verify(ctx, "e@x.com", code)
	require.NoError(t, err)
	require.False(t, result.Valid)
	require.Equal(t, otpReasonNotFound, result.Reason)
}

func TestMemoryOTPExpiry(t *testing.T) {
	ctx := context.Background()
	r := newTestRegistry(t, "")

	now := time.Now()
	r.now = func() time.Time { return now }

	code, err := r.Issue(ctx, "e@x.com")
	require.NoError(t, err)

	now = now.Add(otpTTL + time.Second)

	// Even the correct code fails once expired, and the entry is removed.
	result, err := r.Verify(ctx, "e@x.com", code)
	require.NoError(t, err)
	require.False(t, result.Valid)
	require.Equal(t, otpReasonExpired, result.Reason)

	result, err = r.Verify(ctx, "e@x.com", code)
	require.NoError(t, err)
	require.Equal(t, otpReasonNotFound, result.Reason)
}

func TestMemoryOTPAttemptCeiling(t *testing.T) {
	ctx := context.Background()
	r := newTestRegistry(t, "")

	code, err := r.Issue(ctx, "e@x.com")
	require.NoError(t, err)

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}

	for i := 0; i < otpMaxAttempts; i++ {
		result, err := r.Verify(ctx, "e@x.com", wrong)
		require.NoError(t, err)
		require.False(t, result.Valid)
		require.Equal(t, otpReasonMismatch, result.Reason)
	}

	// The sixth attempt trips the ceiling and deletes the entry, so even the
	// real code is rejected afterwards.
	result, err := r.Verify(ctx, "e@x.com", wrong)
	require.NoError(t, err)
	require.Equal(t, otpReasonTooMany, result.Reason)

	result, err = r.Verify(ctx, "e@x.com", code)
	require.NoError(t, err)
	require.Equal(t, otpReasonNotFound, result.Reason)
}

func TestMemoryOTPBypassCode(t *testing.T) {
	ctx := context.Background()
	r := newTestRegistry(t, "123456")

	_, err := r.Issue(ctx, "e@x.com")
	require.NoError(t, err)
	r.entries["e@x.com"].code = "654321"

	result, err := r.Verify(ctx, "e@x.com", "123456")
	require.NoError(t, err)
	require.True(t, result.Valid)
}

func TestMemoryOTPNoBypassWhenUnset(t *testing.T) {
	ctx := context.Background()
	r := newTestRegistry(t, "")

	_, err := r.Issue(ctx, "e@x.com")
	require.NoError(t, err)
	r.entries["e@x.com"].code = "654321"

	result, err := r.Verify(ctx, "e@x.com", "123456")
	require.NoError(t, err)
	require.False(t, result.Valid)
	require.Equal(t, otpReasonMismatch, result.Reason)
}

func TestMemoryOTPReissueReplaces(t *testing.T) {
	ctx := context.Background()
	r := newTestRegistry(t, "")

	first, err := r.Issue(ctx, "e@x.com")
	require.NoError(t, err)

	r.entries["e@x.com"].attempts = 3

	second, err := r.Issue(ctx, "e@x.com")
	require.NoError(t, err)
	require.Equal(t, 0, r.entries["e@x.com"].attempts)

	if first != second {
		result, err := r.Verify(ctx, "e@x.com", first)
		require.NoError(t, err)
		require.False(t, result.Valid)
	}

	result, err := r.Verify(ctx, "e@x.com", second)
	require.NoError(t, err)
	require.True(t, result.Valid)
}
