package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}

	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name         string
		header       string
		expectHeader bool
	}{
		{name: "client supplied id is kept", header: "req-from-client", expectHeader: true},
		{name: "missing id is generated"},
		{name: "oversized id is replaced", header: strings.Repeat("x", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger()
			mw := NewRequestIDMiddleware(logger)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/orders", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seenInContext string
			err := mw.Process(func(c echo.Context) error {
				ctx := c.Request().Context()
				seenInContext = deliverycontext.GetRequestIDFromContext(ctx)
				deliverycontext.GetLoggerOrDefault(ctx, nil).Info("inside handler")

				return nil
			})(c)

			require.NoError(t, err)
			responseID := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEmpty(t, responseID)
			assert.Equal(t, responseID, seenInContext)
			assert.Contains(t, buf.String(), `"request_id":"`+responseID+`"`)
			if tt.expectHeader {
				assert.Equal(t, tt.header, responseID)
			} else {
				assert.NotEqual(t, tt.header, responseID)
			}
		})
	}
}

func TestLoggerMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		path      string
		handler   echo.HandlerFunc
		expectLog bool
		status    int
	}{
		{
			name:      "success is quiet outside debug",
			path:      "/orders",
			handler:   func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			expectLog: false,
			status:    http.StatusOK,
		},
		{
			name:      "success is logged in debug",
			debug:     true,
			path:      "/orders",
			handler:   func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			expectLog: true,
			status:    http.StatusOK,
		},
		{
			name:      "errors are always logged",
			path:      "/orders",
			handler:   func(c echo.Context) error { return echo.NewHTTPError(http.StatusNotFound, "missing") },
			expectLog: true,
			status:    http.StatusNotFound,
		},
		{
			name:      "health checks are never logged",
			debug:     true,
			path:      "/health",
			handler:   func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			expectLog: false,
			status:    http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger()
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug
			mw := NewLoggerMiddleware(logger, cfg)

			e := echo.New()
			e.Use(mw.Handle)
			e.GET(tt.path, tt.handler)

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.expectLog, strings.Contains(buf.String(), "HTTP Request"))
		})
	}
}
