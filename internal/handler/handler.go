// Package handler contains the HTTP layer: request binding, validation and
// the mapping of service results to JSON responses. Every handler follows the
// same failure funnel: validation errors become 400 with the first message,
// domain errors map through errors.MapErrorToHTTP, anything unexpected is a
// generic 500 whose detail only reaches the server log.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/PietroSRobusti/sus-para-todos/internal/errors"
)

func respondError(c echo.Context, log *zap.Logger, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	if httpErr.StatusCode == http.StatusInternalServerError && log != nil {
		log.Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}
	return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: message})
}
