package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func DevLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// an upstream auth middleware may have resolved the user already
			if v, ok := c.Get("uid").(string); ok && v != "" {
				return next(c)
			}
			uid := ""
			if ck, err := c.Cookie("SPROUT_UID"); err == nil {
				uid = ck.Value
			}
			if uid == "" {
				if q := c.QueryParam("uid"); q != "" {
					c.SetCookie(&http.Cookie{Name: "SPROUT_UID", Value: q, Path: "/"})
					uid = q
				} else {
					uid = "U_DEV_DEFAULT"
					c.SetCookie(&http.Cookie{Name: "SPROUT_UID", Value: uid, Path: "/"})
				}
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}
