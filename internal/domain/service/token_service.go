package service

import (
	"time"

	"storefront/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// TokenType distinguishes access tokens from refresh tokens.
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims defines the custom claims for the JWT tokens. The subject carries the user id.
type Claims struct {
	Role entity.Role `json:"role"`
	Type TokenType   `json:"type"`
	jwt.RegisteredClaims
}

// TokenPair is the result of a successful login or refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given user.
	GenerateTokens(user *entity.User) (*TokenPair, error)

	// ValidateAccessToken verifies an access token and returns the caller identity.
	ValidateAccessToken(tokenString string) (*entity.Identity, error)

	// ValidateRefreshToken verifies a refresh token and returns the caller identity.
	ValidateRefreshToken(tokenString string) (*entity.Identity, error)

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
