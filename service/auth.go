package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"vyoma/domain"
	"vyoma/utils"
)

// TokenDuration is how long an issued bearer token stays valid.
const TokenDuration = 7 * 24 * time.Hour

type authService struct {
	users    domain.UserRepository
	otps     domain.OTPRegistry
	notifier domain.Notifier
	tokens   *utils.JWTManager
}

// NewAuthService wires the auth orchestration. users may be nil when the
// credential store failed to initialize; every store-dependent operation then
// fails fast with domain.ErrStorageUnavailable instead of an opaque error.
func NewAuthService(users domain.UserRepository, otps domain.OTPRegistry, notifier domain.Notifier, tokens *utils.JWTManager) domain.AuthUseCase {
	return &authService{
		users:    users,
		otps:     otps,
		notifier: notifier,
		tokens:   tokens,
	}
}

func (s *authService) SendOTP(ctx context.Context, email string) error {
	if !strings.Contains(email, "@") {
		return domain.ErrInvalidInput
	}

	code, err := s.otps.Issue(ctx, email)
	if err != nil {
		return err
	}

	if s.notifier != nil {
		if err := s.notifier.SendOTP(email, code); err != nil {
			// Dispatch failure is absorbed: the code stays registered so the
			// flow remains usable in disconnected environments. The code is
			// disclosed locally only, never in the response.
			log.Warn().Err(err).Str("email", email).Msg("failed to send OTP email, falling back to local log")
			log.Debug().Str("email", email).Str("otp", code).Msg("development OTP")
		}
	}
	return nil
}

func (s *authService) VerifyOTP(ctx context.Context, email, code string) error {
	result, err := s.otps.Verify(ctx, email, code)
	if err != nil {
		return err
	}
	if !result.Valid {
		return &domain.OTPError{Reason: result.Reason}
	}
	return nil
}

func (s *authService) Signup(ctx context.Context, input domain.SignupInput) (*domain.AuthResult, error) {
	if s.users == nil {
		return nil, domain.ErrStorageUnavailable
	}

	// Fast path; the store's uniqueness discipline is the source of truth.
	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:    input.Email,
		Password: string(hashed),
		FullName: input.FullName,
		Username: input.Username,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &domain.AuthResult{Token: token, User: user}, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if s.users == nil {
		return nil, domain.ErrStorageUnavailable
	}

	// A missing account and a wrong password are indistinguishable to the
	// caller.
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &domain.AuthResult{Token: token, User: user}, nil
}

func (s *authService) UpdateProfile(ctx context.Context, userID string, update domain.ProfileUpdate) (*domain.User, error) {
	if s.users == nil {
		return nil, domain.ErrStorageUnavailable
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.FullName != nil {
		user.FullName = *update.FullName
	}
	if update.Username != nil {
		user.Username = *update.Username
	}

	if err := s.users.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
