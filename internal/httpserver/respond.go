package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gamevault/game-store/internal/apperr"
)

// respondError maps an error kind to its HTTP status. Internal failures
// get a generic message so raw error text never reaches a client.
func respondError(c echo.Context, err error) error {
	status := apperr.Status(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "an unexpected error occurred"
	}
	return c.JSON(status, echo.Map{
		"success": false,
		"message": msg,
	})
}
