package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/moitfe/portal-api/internal/api/metrics"
	"github.com/moitfe/portal-api/internal/core/access"
)

// Gate enforces the navigation permission table for one destination. A denied
// request gets a 403 carrying the redirect path the client should fall back
// to; the portal never renders an error page for a navigation denial.
func Gate(dest access.Destination) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := CurrentUser(c)
			if err != nil {
				return err
			}
			if !access.CanNavigate(user.Role, dest) {
				metrics.AuthzDeniedTotal.WithLabelValues(string(dest)).Inc()
				return c.JSON(http.StatusForbidden, map[string]string{
					"error":    "forbidden",
					"redirect": access.Resolve(user.Role, dest).Path(),
				})
			}
			return next(c)
		}
	}
}
