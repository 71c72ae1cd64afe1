package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// TokenAuth is an optional middleware. When enabled=true, it expects the
// managed auth provider's frontend to pass the resolved user id in a header
// or cookie. If it cannot find one, it returns 401. When enabled=false, it
// simply passes through (use DevLogin instead).
func TokenAuth(enabled bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !enabled {
				return next(c) // bypass in development
			}
			if c.Path() == "/health" {
				return next(c)
			}
			uid := c.Request().Header.Get("X-Sprout-Uid")
			if uid == "" {
				if ck, err := c.Cookie("SPROUT_UID"); err == nil {
					uid = ck.Value
				}
			}
			if uid == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "auth required: missing UID"})
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}
