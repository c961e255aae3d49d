package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

type settingsService struct {
	settingsRepo repository.SettingsRepository
	logger       *slog.Logger
}

// NewSettingsService creates the back-office settings service.
func NewSettingsService(settingsRepo repository.SettingsRepository, logger *slog.Logger) usecase.SettingsUsecase {
	return &settingsService{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

func (srv *settingsService) GetSettings(ctx context.Context) (*entity.Settings, error) {
	settings, err := srv.settingsRepo.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load settings")
	}

	return settings, nil
}

// UpdateSettings validates and saves the form, echoing back what was accepted.
func (srv *settingsService) UpdateSettings(ctx context.Context, settings *entity.Settings) (*entity.Settings, error) {
	accepted := *settings
	accepted.SiteName = strings.TrimSpace(accepted.SiteName)
	accepted.Theme = strings.TrimSpace(accepted.Theme)

	if accepted.SiteName == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("siteName is required")
	}

	if err := srv.settingsRepo.Save(ctx, &accepted); err != nil {
		return nil, errors.Wrap(err, "failed to save settings")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Settings updated",
		slog.String("siteName", accepted.SiteName),
		slog.String("theme", accepted.Theme),
	)

	return &accepted, nil
}
