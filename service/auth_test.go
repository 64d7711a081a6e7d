package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"vyoma/domain"
	"vyoma/repository"
	"vyoma/utils"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type failingNotifier struct{}

func (failingNotifier) SendOTP(to, code string) error {
	return errors.New("smtp unreachable")
}

func newTestAuthService(t *testing.T) (domain.AuthUseCase, domain.OTPRegistry, *utils.JWTManager) {
	t.Helper()
	users, err := repository.NewFileUserRepository(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, err)

	otps := repository.NewMemoryOTPRegistry("")
	tokens := utils.NewJWTManager(testSecret, TokenDuration)
	return NewAuthService(users, otps, nil, tokens), otps, tokens
}

func TestSignupDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestAuthService(t)

	input := domain.SignupInput{Email: "e@x.com", Password: "secret1", FullName: "Test User"}

	_, err := svc.Signup(ctx, input)
	require.NoError(t, err)

	_, err = svc.Signup(ctx, input)
	require.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	ctx := context.Background()
	svc, _, tokens := newTestAuthService(t)

	created, err := svc.Signup(ctx, domain.SignupInput{Email: "e@x.com", Password: "secret1"})
	require.NoError(t, err)

	result, err := svc.Login(ctx, "e@x.com", "secret1")
	require.NoError(t, err)

	claims, err := tokens.VerifyToken(result.Token)
	require.NoError(t, err)
	require.Equal(t, created.User.ID, claims.UserID)
	require.Equal(t, "e@x.com", claims.Email)
}

func TestLoginFailureIsGeneric(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestAuthService(t)

	_, err := svc.Signup(ctx, domain.SignupInput{Email: "e@x.com", Password: "secret1"})
	require.NoError(t, err)

	// Wrong password and unknown email collapse to the same error.
	_, wrongPass := svc.Login(ctx, "e@x.com", "wrong")
	require.ErrorIs(t, wrongPass, domain.ErrInvalidCredentials)

	_, noUser := svc.Login(ctx, "ghost@x.com", "secret1")
	require.ErrorIs(t, noUser, domain.ErrInvalidCredentials)
	require.Equal(t, wrongPass.Error(), noUser.Error())
}

func TestPasswordNeverStoredPlain(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestAuthService(t)

	result, err := svc.Signup(ctx, domain.SignupInput{Email: "e@x.com", Password: "secret1"})
	require.NoError(t, err)
	require.NotEqual(t, "secret1", result.User.Password)
	require.Contains(t, result.User.Password, "$2a$")
}

func TestUpdateProfilePartial(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestAuthService(t)

	created, err := svc.Signup(ctx, domain.SignupInput{
		Email:    "e@x.com",
		Password: "secret1",
		FullName: "Original Name",
		Username: "original",
	})
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	username := "renamed"
	updated, err := svc.UpdateProfile(ctx, created.User.ID, domain.ProfileUpdate{Username: &username})
	require.NoError(t, err)
	require.Equal(t, "renamed", updated.Username)
	require.Equal(t, "Original Name", updated.FullName)
	require.True(t, updated.UpdatedAt.After(created.User.CreatedAt))

	fullName := "New Name"
	updated, err = svc.UpdateProfile(ctx, created.User.ID, domain.ProfileUpdate{FullName: &fullName})
	require.NoError(t, err)
	require.Equal(t, "New Name", updated.FullName)
	require.Equal(t, "renamed", updated.Username)
}

func TestUpdateProfileMissingUser(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestAuthService(t)

	name := "Whoever"
	_, err := svc.UpdateProfile(ctx, "missing-id", domain.ProfileUpdate{FullName: &name})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStorageUnavailableShortCircuits(t *testing.T) {
	ctx := context.Background()
	otps := repository.NewMemoryOTPRegistry("")
	tokens := utils.NewJWTManager(testSecret, TokenDuration)
	svc := NewAuthService(nil, otps, nil, tokens)

	_, err := svc.Signup(ctx, domain.SignupInput{Email: "e@x.com", Password: "secret1"})
	require.ErrorIs(t, err, domain.ErrStorageUnavailable)

	_, err = svc.Login(ctx, "e@x.com", "secret1")
	require.ErrorIs(t, err, domain.ErrStorageUnavailable)

	name := "Whoever"
	_, err = svc.UpdateProfile(ctx, "id", domain.ProfileUpdate{FullName: &name})
	require.ErrorIs(t, err, domain.ErrStorageUnavailable)

	// The OTP flow has no store dependency and keeps working.
	require.NoError(t, svc.SendOTP(ctx, "e@x.com"))
	err = svc.VerifyOTP(ctx, "e@x.com", "000000")
	require.ErrorIs(t, err, domain.ErrOTPInvalid)
}

func TestSendOTPRejectsMalformedEmail(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestAuthService(t)

	require.ErrorIs(t, svc.SendOTP(ctx, "not-an-email"), domain.ErrInvalidInput)
}

func TestSendOTPAbsorbsNotifierFailure(t *testing.T) {
	ctx := context.Background()
	users, err := repository.NewFileUserRepository(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, err)
	otps := repository.NewMemoryOTPRegistry("")
	tokens := utils.NewJWTManager(testSecret, TokenDuration)
	svc := NewAuthService(users, otps, failingNotifier{}, tokens)

	// Dispatch failure must not surface; the code is still registered.
	require.NoError(t, svc.SendOTP(ctx, "e@x.com"))

	err = svc.VerifyOTP(ctx, "e@x.com", "000000")
	require.ErrorIs(t, err, domain.ErrOTPInvalid)

	var otpErr *domain.OTPError
	require.ErrorAs(t, err, &otpErr)
	require.Equal(t, "Invalid OTP. Please try again.", otpErr.Reason)
}
