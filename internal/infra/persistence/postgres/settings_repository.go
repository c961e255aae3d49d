package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// noopSettingsRepository discards writes and always serves the default settings.
// Settings are not persisted yet.
type noopSettingsRepository struct{}

// NewSettingsRepository returns the settings store.
func NewSettingsRepository() repository.SettingsRepository {
	return noopSettingsRepository{}
}

func (noopSettingsRepository) Load(_ context.Context) (*entity.Settings, error) {
	settings := entity.DefaultSettings()

	return &settings, nil
}

func (noopSettingsRepository) Save(_ context.Context, _ *entity.Settings) error {
	return nil
}
