package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	mockService "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()

	var body errorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		setupMock  func(m *mockService.MockTokenService)
		wantStatus int
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			header:     "Basic abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "invalid token",
			header: "Bearer bad",
			setupMock: func(m *mockService.MockTokenService) {
				m.EXPECT().ValidateAccessToken("bad").Return(nil, errors.New("expired"))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setupMock: func(m *mockService.MockTokenService) {
				m.EXPECT().ValidateAccessToken("good").Return(&entity.Identity{UserID: userID, Role: entity.RoleClient}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockService.NewMockTokenService(t)
			if tt.setupMock != nil {
				tt.setupMock(tokenSvc)
			}
			m := NewAuthMiddleware(tokenSvc, newDiscardLogger())

			e := echo.New()
			e.GET("/me", func(c echo.Context) error {
				identity, ok := deliverycontext.IdentityFromContext(c.Request().Context())
				require.True(t, ok)
				assert.Equal(t, userID, identity.UserID)

				return c.NoContent(http.StatusOK)
			}, m.Authenticate)

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, "UNAUTHORIZED", decodeError(t, rec).Error.Code)
			}
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	tests := []struct {
		name       string
		identity   *entity.Identity
		wantStatus int
	}{
		{name: "no identity", wantStatus: http.StatusUnauthorized},
		{name: "client is rejected with 401", identity: &entity.Identity{UserID: uuid.New(), Role: entity.RoleClient}, wantStatus: http.StatusUnauthorized},
		{name: "admin passes", identity: &entity.Identity{UserID: uuid.New(), Role: entity.RoleAdmin}, wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewAuthMiddleware(mockService.NewMockTokenService(t), newDiscardLogger())

			e := echo.New()
			setIdentity := func(next echo.HandlerFunc) echo.HandlerFunc {
				return func(c echo.Context) error {
					if tt.identity != nil {
						deliverycontext.SetIdentity(c, *tt.identity)
					}

					return next(c)
				}
			}
			e.DELETE("/orders/1", func(c echo.Context) error {
				return c.NoContent(http.StatusNoContent)
			}, setIdentity, m.RequireRole(entity.RoleAdmin))

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/orders/1", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "wrapped app error keeps its code",
			err:        errors.Wrap(domainerrors.ErrInsufficientStock.WithMessagef("insufficient stock for product: %s", "Mug"), "failed to place order"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "INSUFFICIENT_STOCK",
			wantMsg:    "insufficient stock for product: Mug",
		},
		{
			name:       "echo http error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
			wantMsg:    "method not allowed",
		},
		{
			name:       "unknown error becomes 500",
			err:        errors.New("connection reset by peer"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
			wantMsg:    "Internal server error, please try again later",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.HTTPErrorHandler = NewErrorMiddleware(newDiscardLogger()).HandleHTTPError
			e.GET("/boom", func(echo.Context) error { return tt.err })

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantMsg, body.Error.Message)
			assert.NotContains(t, rec.Body.String(), "connection reset")
		})
	}
}

func TestNewGuestRateLimiter(t *testing.T) {
	limiter := NewGuestRateLimiter(config.RateLimitRule{Rate: 0.001, Burst: 2, ExpiresIn: time.Minute}, newDiscardLogger())

	e := echo.New()
	e.POST("/orders/guest", func(c echo.Context) error {
		return c.NoContent(http.StatusCreated)
	}, limiter)

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/orders/guest", nil)
		req.RemoteAddr = ip + ":1234"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		return rec.Code
	}

	assert.Equal(t, http.StatusCreated, send("10.0.0.1"))
	assert.Equal(t, http.StatusCreated, send("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1"))
	assert.Equal(t, http.StatusCreated, send("10.0.0.2"), "limits are per client")
}
