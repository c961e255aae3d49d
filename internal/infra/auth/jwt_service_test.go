package auth

import (
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			AccessTokenTTL:  time.Minute,
			RefreshTokenTTL: time.Hour,
		},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func newTestUser(role entity.Role) *entity.User {
	return &entity.User{
		ID:    uuid.New(),
		Email: "customer@example.com",
		Role:  role,
	}
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	tokenService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	user := newTestUser(entity.RoleAdmin)

	pair, err := tokenService.GenerateTokens(user)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	identity, err := tokenService.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.UserID)
	assert.Equal(t, entity.RoleAdmin, identity.Role)

	identity, err = tokenService.ValidateRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.UserID)

	assert.Equal(t, time.Hour, tokenService.GetRefreshTokenDuration())
}

func TestJWTService_RejectsSwappedTokenTypes(t *testing.T) {
	tokenService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	pair, err := tokenService.GenerateTokens(newTestUser(entity.RoleClient))
	require.NoError(t, err)

	_, err = tokenService.ValidateAccessToken(pair.RefreshToken)
	assert.Error(t, err)

	_, err = tokenService.ValidateRefreshToken(pair.AccessToken)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	impl := svc.(*jwtService)
	impl.now = func() time.Time { return time.Now().Add(-2 * time.Minute) }

	pair, err := impl.GenerateTokens(newTestUser(entity.RoleClient))
	require.NoError(t, err)

	impl.now = time.Now
	_, err = impl.ValidateAccessToken(pair.AccessToken)
	assert.Error(t, err)
}

func TestJWTService_RejectsForeignSigningMethod(t *testing.T) {
	cfg := newTestConfig()
	tokenService, err := NewJWTService(cfg)
	require.NoError(t, err)

	claims := service.Claims{
		Role: entity.RoleAdmin,
		Type: service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(cfg.SecretKey.Access))
	require.NoError(t, err)

	_, err = tokenService.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	tokenService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	identity, err := tokenService.ValidateAccessToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, identity)
	assert.Contains(t, err.Error(), "failed to parse token")
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}
