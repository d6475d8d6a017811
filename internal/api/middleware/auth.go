package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/moitfe/portal-api/internal/core/domain"
	"github.com/moitfe/portal-api/internal/core/ports"
)

const userContextKey = "user"

// Auth hydrates the session from the bearer token and injects the user into
// the request context. A token whose session has been logged out is rejected
// even if the JWT itself is still within its validity window.
func Auth(sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearerToken(c)
			if err != nil {
				return err
			}

			user, err := sessions.Hydrate(c.Request().Context(), token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired session")
			}

			c.Set(userContextKey, *user)
			return next(c)
		}
	}
}

// CurrentUser extracts the authenticated user injected by Auth.
func CurrentUser(c echo.Context) (domain.User, error) {
	user, ok := c.Get(userContextKey).(domain.User)
	if !ok {
		return domain.User{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}

func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}
	return parts[1], nil
}
