package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// UserRole represents the roles carried in access tokens.
type UserRole string

const (
	RoleAdmin UserRole = "ADMIN"
)

// LoginRequest holds administrator credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the issued access token.
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresIn   int64     `json:"expires_in"`
	IssuedAt    time.Time `json:"issued_at"`
}

// JWTClaims represents the JWT payload for access tokens.
type JWTClaims struct {
	Role  UserRole `json:"role"`
	Email string   `json:"email"`
	jwt.RegisteredClaims
}
