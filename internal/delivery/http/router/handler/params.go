package handler

import (
	"menudash/internal/delivery/http/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// parseID reads the :id path parameter as a UUID, writing a 400 response when it is malformed.
func parseID(c echo.Context) (uuid.UUID, bool, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, false, response.BadRequest(c, "INVALID_ID", "Invalid id")
	}

	return id, true, nil
}
