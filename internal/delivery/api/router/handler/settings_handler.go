package handler

import (
	"log/slog"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SettingsHandlerParams holds dependencies for SettingsHandler, injected by Fx.
type SettingsHandlerParams struct {
	fx.In

	SettingsUC usecase.SettingsUsecase
	Logger     *slog.Logger
}

// SettingsHandler serves the back-office settings form.
type SettingsHandler struct {
	settingsUC usecase.SettingsUsecase
	logger     *slog.Logger
}

// NewSettingsHandler is the constructor for SettingsHandler
func NewSettingsHandler(params SettingsHandlerParams) *SettingsHandler {
	return &SettingsHandler{
		settingsUC: params.SettingsUC,
		logger:     params.Logger,
	}
}

// UpdateSettingsRequest represents the settings form
type UpdateSettingsRequest struct {
	SiteName             string `json:"siteName" validate:"required,max=120"`
	NotificationsEnabled bool   `json:"notificationsEnabled"`
	Theme                string `json:"theme" validate:"omitempty,oneof=light dark system"`
}

// GetSettings returns the current settings.
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	settings, err := h.settingsUC.GetSettings(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, settings)
}

// UpdateSettings validates the form and echoes it back.
func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	var req UpdateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid settings input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	settings, err := h.settingsUC.UpdateSettings(c.Request().Context(), &entity.Settings{
		SiteName:             req.SiteName,
		NotificationsEnabled: req.NotificationsEnabled,
		Theme:                req.Theme,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, settings)
}
