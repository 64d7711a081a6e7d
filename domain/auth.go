// domain/auth.go
package domain

import "context"

type SignupInput struct {
	FullName string
	Email    string
	Username string
	Password string
}

// ProfileUpdate applies only the fields that are non-nil.
type ProfileUpdate struct {
	FullName *string
	Username *string
}

type AuthResult struct {
	Token string
	User  *User
}

type AuthUseCase interface {
	SendOTP(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, code string) error
	Signup(ctx context.Context, input SignupInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*User, error)
}
