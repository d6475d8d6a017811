package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/moitfe/portal-api/internal/core/access"
	"github.com/moitfe/portal-api/internal/core/domain"
)

func runGate(t *testing.T, role domain.Role, dest access.Destination) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(userContextKey, domain.User{ID: "u-t", Role: role})

	handler := Gate(dest)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	return rec
}

func TestGateAllowsPermittedRole(t *testing.T) {
	rec := runGate(t, domain.RoleEnumerator, access.ForestEntry)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
}

func TestGateDeniesWithDashboardRedirect(t *testing.T) {
	rec := runGate(t, domain.RoleViewer, access.ForestEntry)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status: got %d, want 403", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["redirect"] != access.Dashboard.Path() {
		t.Fatalf("redirect: got %q, want %q", body["redirect"], access.Dashboard.Path())
	}
}

func TestGateUserManagementSuperAdminOnly(t *testing.T) {
	if rec := runGate(t, domain.RoleSuperAdmin, access.UserManagement); rec.Code != http.StatusOK {
		t.Fatalf("super admin: got %d, want 200", rec.Code)
	}
	if rec := runGate(t, domain.RoleAdmin, access.UserManagement); rec.Code != http.StatusForbidden {
		t.Fatalf("admin: got %d, want 403", rec.Code)
	}
}

func TestGateRequiresAuthenticatedUser(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	handler := Gate(access.Dashboard)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("got %v, want 401", err)
	}
}
