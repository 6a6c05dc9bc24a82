package server

import (
	"github.com/labstack/echo/v4"
	"github.com/surveypulse/surveypulse/internal/correlation"
)

const requestIDHeader = "X-Request-ID"

// correlationMiddleware tags each request with a correlation ID, honoring a
// client-provided X-Request-ID when present.
func correlationMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(requestIDHeader)
			if id == "" {
				id = correlation.NewID()
			}

			ctx := correlation.WithID(c.Request().Context(), id)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set(requestIDHeader, id)
			return next(c)
		}
	}
}
