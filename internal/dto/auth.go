package dto

import "time"

// LoginRequest defines the credentials for a password login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// GoogleLoginRequest carries the ID token obtained from Google sign-in.
type GoogleLoginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// GoogleExchangeCodeRequest carries the OAuth authorization code returned to
// the frontend by Google's consent screen.
type GoogleExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// ForgotPasswordRequest asks for a password reset mail.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest redeems a reset token for a new password.
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8,max=72"`
}

// LoginResponse represents the response for a successful login or refresh.
// The refresh token itself travels in an HTTP-only cookie, never in the body.
type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	ExpiresAt   time.Time    `json:"expiresAt"`
	User        UserResponse `json:"user"`
}

// MessageResponse wraps a plain informational message.
type MessageResponse struct {
	Message string `json:"message"`
}
