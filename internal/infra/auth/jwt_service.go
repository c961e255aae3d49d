// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
// Access and refresh tokens are signed with different secrets.
type jwtService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	accessTTL := 15 * time.Minute
	refreshTTL := 7 * 24 * time.Hour
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.RefreshTokenTTL > 0 {
			refreshTTL = cfg.Auth.RefreshTokenTTL
		}
	}

	return &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}, nil
}

// GenerateTokens creates a new access token and refresh token for a given user.
func (s *jwtService) GenerateTokens(user *entity.User) (*service.TokenPair, error) {
	accessToken, err := s.generateToken(user, service.TokenTypeAccess, s.accessTTL, s.accessSecret)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.generateToken(user, service.TokenTypeRefresh, s.refreshTTL, s.refreshSecret)
	if err != nil {
		return nil, err
	}

	return &service.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *jwtService) ValidateAccessToken(tokenString string) (*entity.Identity, error) {
	return s.validate(tokenString, service.TokenTypeAccess, s.accessSecret)
}

func (s *jwtService) ValidateRefreshToken(tokenString string) (*entity.Identity, error) {
	return s.validate(tokenString, service.TokenTypeRefresh, s.refreshSecret)
}

// GetRefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) GetRefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

func (s *jwtService) generateToken(user *entity.User, tokenType service.TokenType, ttl time.Duration, secret []byte) (string, error) {
	now := s.now()
	claims := service.Claims{
		Role: user.Role,
		Type: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", errors.Wrapf(err, "failed to sign %s token", tokenType)
	}

	return signed, nil
}

func (s *jwtService) validate(tokenString string, expected service.TokenType, secret []byte) (*entity.Identity, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}

	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	if claims.Type != expected {
		return nil, errors.Errorf("unexpected token type %q", claims.Type)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "invalid token subject")
	}

	if !claims.Role.IsValid() {
		return nil, errors.Errorf("invalid role %q", claims.Role)
	}

	return &entity.Identity{
		UserID: userID,
		Role:   claims.Role,
	}, nil
}
