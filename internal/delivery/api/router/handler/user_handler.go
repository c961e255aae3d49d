package handler

import (
	"log/slog"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler serves the back-office user list.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// ListUsers returns one page of user summaries.
func (h *UserHandler) ListUsers(c echo.Context) error {
	var query ListQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_QUERY", "page and limit must be integers")
	}

	users, err := h.userUC.ListUsers(c.Request().Context(), usecase.PageRequest{Page: query.Page, Limit: query.Limit})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, users)
}
