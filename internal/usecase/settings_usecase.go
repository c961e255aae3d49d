package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// SettingsUsecase serves the back-office settings form
type SettingsUsecase interface {
	GetSettings(ctx context.Context) (*entity.Settings, error)
	UpdateSettings(ctx context.Context, settings *entity.Settings) (*entity.Settings, error)
}
