package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/moitfe/portal-api/internal/api/metrics"
	"github.com/moitfe/portal-api/internal/api/middleware"
	"github.com/moitfe/portal-api/internal/core/domain"
	"github.com/moitfe/portal-api/internal/core/ports"
)

// AuthHandler exposes the roster-pick login and the session lifecycle.
type AuthHandler struct {
	sessions ports.SessionService
}

func NewAuthHandler(sessions ports.SessionService) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

type loginRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// Login handles POST /auth/login. There is no credential check: the caller
// picks a roster user and receives a session token for it.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	token, user, err := h.sessions.Login(c.Request().Context(), req.UserID)
	if err != nil {
		return err
	}

	metrics.LoginsTotal.WithLabelValues(string(user.Role)).Inc()
	return c.JSON(http.StatusOK, loginResponse{Token: token, User: *user})
}

// Me handles GET /auth/me — session hydration after a client reload.
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Logout handles POST /auth/logout. The session is deleted; the token stops
// hydrating immediately.
func (h *AuthHandler) Logout(c echo.Context) error {
	authHeader := c.Request().Header.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
	}
	if err := h.sessions.Logout(c.Request().Context(), parts[1]); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
