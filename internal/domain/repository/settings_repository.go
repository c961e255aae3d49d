package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// SettingsRepository stores the back-office settings.
type SettingsRepository interface {
	Load(ctx context.Context) (*entity.Settings, error)
	Save(ctx context.Context, settings *entity.Settings) error
}
