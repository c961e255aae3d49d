package middleware

import (
	"log/slog"
	"net/http"

	"storefront/config"
	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// NewGuestRateLimiter limits unauthenticated checkout per client IP.
func NewGuestRateLimiter(rule config.RateLimitRule, logger *slog.Logger) echo.MiddlewareFunc {
	storeCfg := echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(rule.Rate),
		Burst:     rule.Burst,
		ExpiresIn: rule.ExpiresIn,
	}

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: echomiddleware.NewRateLimiterMemoryStoreWithConfig(storeCfg),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return response.Error(c, http.StatusForbidden, "RATE_LIMIT_IDENTIFIER", "unable to identify client", nil)
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), logger).
				Warn("Guest checkout rate limited", slog.String("client_ip", identifier))

			return response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "too many requests, please try again later", nil)
		},
	})
}
