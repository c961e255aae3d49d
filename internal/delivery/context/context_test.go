package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEchoContext() echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestIdentity_RoundTrip(t *testing.T) {
	c := newEchoContext()
	identity := entity.Identity{UserID: uuid.New(), Role: entity.RoleAdmin}

	_, ok := GetIdentity(c)
	assert.False(t, ok)

	SetIdentity(c, identity)

	fromEcho, ok := GetIdentity(c)
	require.True(t, ok)
	assert.Equal(t, identity, fromEcho)

	fromCtx, ok := IdentityFromContext(c.Request().Context())
	require.True(t, ok)
	assert.Equal(t, identity, fromCtx)
}

func TestRequestID(t *testing.T) {
	c := newEchoContext()

	generated := GetRequestID(c)
	_, err := uuid.Parse(generated)
	require.NoError(t, err)

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))

	ctx := WithRequestID(context.Background(), "req-2")
	assert.Equal(t, "req-2", GetRequestIDFromContext(ctx))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "req-3"))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}
