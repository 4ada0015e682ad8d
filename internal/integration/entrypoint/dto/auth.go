package dto

import "time"

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response of a successful login.
type LoginResponse struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ValidateTokenRequest represents the request body for token validation.
type ValidateTokenRequest struct {
	Token string `json:"token"`
}

// ValidateTokenResponse reports token validity.
type ValidateTokenResponse struct {
	Valid     bool       `json:"valid"`
	Username  string     `json:"username,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}
