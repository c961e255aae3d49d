package impl

import (
	"io"
	"log/slog"

	"storefront/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        4,
			MinPasswordLength: 8,
		},
		Admin: &config.AdminConfig{
			Email:     "admin@example.com",
			Password:  "admin-secret",
			FirstName: "Store",
			LastName:  "Admin",
		},
	}
}
