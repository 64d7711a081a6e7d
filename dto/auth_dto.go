package dto

import "vyoma/domain"

type SendOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required"`
}

type SignupRequest struct {
	FullName string `json:"fullName" binding:"omitempty,min=1,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"omitempty,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6,max=64"`
	// The client sets this after the verify-otp step; the server does not
	// re-verify it. See DESIGN.md.
	OTPVerified bool `json:"otpVerified"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	FullName *string `json:"fullName" binding:"omitempty,min=2,max=100"`
	Username *string `json:"username" binding:"omitempty,min=3,max=50"`
}

// UserResponse is the public view returned by signup and login.
type UserResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, FullName: u.FullName}
}

// ProfileResponse additionally carries the username, returned by
// update-profile.
type ProfileResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Username string `json:"username"`
}

func NewProfileResponse(u *domain.User) ProfileResponse {
	return ProfileResponse{ID: u.ID, Email: u.Email, FullName: u.FullName, Username: u.Username}
}
