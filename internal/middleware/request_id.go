package middleware

import (
	"context"

	"scentMatch/business/recommender"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const requestIDHeader = "X-Request-ID"

// RequestID attaches a trace id to every request: reuses the caller's
// X-Request-ID when present, otherwise generates one. The id rides the
// request context and is echoed back in the response header.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rid := c.Request().Header.Get(requestIDHeader)
			if rid == "" {
				rid = uuid.NewString()
			}

			ctx := context.WithValue(c.Request().Context(), recommender.TraceIDKey, rid)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set(requestIDHeader, rid)

			return next(c)
		}
	}
}
