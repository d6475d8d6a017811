package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/moitfe/portal-api/internal/api/middleware"
	"github.com/moitfe/portal-api/internal/core/access"
	"github.com/moitfe/portal-api/internal/core/ports"
)

// UserHandler serves the user-management roster and the role-filtered menu.
type UserHandler struct {
	users ports.UserRepository
}

func NewUserHandler(users ports.UserRepository) *UserHandler {
	return &UserHandler{users: users}
}

// List handles GET /v1/users. Route is gated to SUPER_ADMIN.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"data": users})
}

type menuItem struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Navigation handles GET /v1/navigation: the destinations the caller's role
// may open, in sidebar order.
func (h *UserHandler) Navigation(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	dests := access.MenuFor(user.Role)
	items := make([]menuItem, 0, len(dests))
	for _, d := range dests {
		items = append(items, menuItem{Name: d.Title(), Path: d.Path()})
	}
	return c.JSON(http.StatusOK, map[string]any{"data": items})
}
