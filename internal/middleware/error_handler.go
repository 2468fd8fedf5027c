package middleware

import (
	"net/http"

	"scentMatch/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ErrorHandler is the echo HTTPErrorHandler: it normalizes unhandled
// errors into the same JSON error shape the handlers use.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "internal server error"

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("unhandled request error", err, "path", c.Request().URL.Path)
	}

	if err := c.JSON(code, map[string]interface{}{"message": message}); err != nil {
		logger.Error("failed to write error response", err)
	}
}
