package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// parseIDParam reads the ":id" path parameter.
func parseIDParam(c echo.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}
