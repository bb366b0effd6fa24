package handler

import (
	"github.com/labstack/echo/v4"

	"campuslink/internal/errors"
)

// respondError maps a domain error to its HTTP shape and writes it.
func respondError(c echo.Context, err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
}
