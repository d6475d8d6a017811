package access

import (
	"testing"

	"github.com/moitfe/portal-api/internal/core/domain"
)

func TestNavigationTable(t *testing.T) {
	cases := []struct {
		dest    Destination
		allowed []domain.Role
		denied  []domain.Role
	}{
		{Dashboard,
			[]domain.Role{domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleEnumerator, domain.RoleViewer},
			nil},
		{DataTables,
			[]domain.Role{domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleEnumerator, domain.RoleViewer},
			nil},
		{ForestEntry,
			[]domain.Role{domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleEnumerator},
			[]domain.Role{domain.RoleViewer}},
		{IndustryEntry,
			[]domain.Role{domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleEnumerator},
			[]domain.Role{domain.RoleViewer}},
		{CommerceEntry,
			[]domain.Role{domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleEnumerator},
			[]domain.Role{domain.RoleViewer}},
		{UserManagement,
			[]domain.Role{domain.RoleSuperAdmin},
			[]domain.Role{domain.RoleAdmin, domain.RoleEnumerator, domain.RoleViewer}},
	}

	for _, tc := range cases {
		for _, r := range tc.allowed {
			if !CanNavigate(r, tc.dest) {
				t.Errorf("%s should be allowed to open %s", r, tc.dest)
			}
		}
		for _, r := range tc.denied {
			if CanNavigate(r, tc.dest) {
				t.Errorf("%s should be denied %s", r, tc.dest)
			}
		}
	}
}

func TestResolveRedirectsToDashboard(t *testing.T) {
	if got := Resolve(domain.RoleViewer, ForestEntry); got != Dashboard {
		t.Fatalf("viewer opening forest entry: got %s, want dashboard", got)
	}
	if got := Resolve(domain.RoleAdmin, UserManagement); got != Dashboard {
		t.Fatalf("admin opening user management: got %s, want dashboard", got)
	}
	if got := Resolve(domain.RoleEnumerator, CommerceEntry); got != CommerceEntry {
		t.Fatalf("enumerator opening commerce entry: got %s, want commerce entry", got)
	}
}

func TestMenuFor(t *testing.T) {
	menu := MenuFor(domain.RoleViewer)
	want := []Destination{Dashboard, DataTables}
	if len(menu) != len(want) {
		t.Fatalf("viewer menu: got %v, want %v", menu, want)
	}
	for i := range want {
		if menu[i] != want[i] {
			t.Fatalf("viewer menu: got %v, want %v", menu, want)
		}
	}

	if got := len(MenuFor(domain.RoleSuperAdmin)); got != 6 {
		t.Fatalf("super admin menu length: got %d, want 6", got)
	}
	if got := len(MenuFor(domain.RoleEnumerator)); got != 5 {
		t.Fatalf("enumerator menu length: got %d, want 5", got)
	}
}

func TestCanReview(t *testing.T) {
	if !CanReview(domain.RoleSuperAdmin) || !CanReview(domain.RoleAdmin) {
		t.Error("reviewer roles should be able to review")
	}
	if CanReview(domain.RoleEnumerator) || CanReview(domain.RoleViewer) {
		t.Error("non-reviewer roles should not be able to review")
	}
}

func TestDestinationPath(t *testing.T) {
	if got := Dashboard.Path(); got != "/" {
		t.Errorf("dashboard path: got %q", got)
	}
	if got := UserManagement.Path(); got != "/users" {
		t.Errorf("user management path: got %q", got)
	}
	if got := Destination("bogus").Path(); got != "/" {
		t.Errorf("unknown destination path: got %q, want /", got)
	}
}
