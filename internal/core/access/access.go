// Package access is the single source of truth for role-based permissions:
// which navigation destinations a role may open and which roles may drive
// review-status transitions. Views and middleware must consult this package
// instead of comparing roles inline.
package access

import "github.com/moitfe/portal-api/internal/core/domain"

// Destination is a navigable view of the portal.
type Destination string

const (
	Dashboard      Destination = "dashboard"
	ForestEntry    Destination = "forest-entry"
	IndustryEntry  Destination = "industry-entry"
	CommerceEntry  Destination = "commerce-entry"
	DataTables     Destination = "data-tables"
	UserManagement Destination = "users"
)

// menuOrder is the canonical sidebar ordering.
var menuOrder = []Destination{
	Dashboard, ForestEntry, IndustryEntry, CommerceEntry, DataTables, UserManagement,
}

var allRoles = []domain.Role{
	domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleEnumerator, domain.RoleViewer,
}

var entryRoles = []domain.Role{
	domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleEnumerator,
}

// navTable maps each destination to the roles permitted to open it.
var navTable = map[Destination][]domain.Role{
	Dashboard:      allRoles,
	ForestEntry:    entryRoles,
	IndustryEntry:  entryRoles,
	CommerceEntry:  entryRoles,
	DataTables:     allRoles,
	UserManagement: {domain.RoleSuperAdmin},
}

// paths maps destinations to their client-side route paths.
var paths = map[Destination]string{
	Dashboard:      "/",
	ForestEntry:    "/forest-entry",
	IndustryEntry:  "/industry-entry",
	CommerceEntry:  "/commerce-entry",
	DataTables:     "/data-tables",
	UserManagement: "/users",
}

// Path returns the route path for the destination, or "/" when unknown.
func (d Destination) Path() string {
	if p, ok := paths[d]; ok {
		return p
	}
	return "/"
}

// Title returns the human-readable menu label for the destination.
func (d Destination) Title() string {
	switch d {
	case Dashboard:
		return "Dashboard"
	case ForestEntry:
		return "Forest Entry"
	case IndustryEntry:
		return "Industry Entry"
	case CommerceEntry:
		return "Commerce Entry"
	case DataTables:
		return "Data Tables"
	case UserManagement:
		return "User Management"
	}
	return string(d)
}

// CanNavigate reports whether role may open dest.
func CanNavigate(role domain.Role, dest Destination) bool {
	for _, r := range navTable[dest] {
		if r == role {
			return true
		}
	}
	return false
}

// Resolve returns dest when role may open it, otherwise Dashboard. Denied
// navigation is always a silent redirect, never an error page.
func Resolve(role domain.Role, dest Destination) Destination {
	if CanNavigate(role, dest) {
		return dest
	}
	return Dashboard
}

// MenuFor returns the destinations role may open, in sidebar order.
func MenuFor(role domain.Role) []Destination {
	out := make([]Destination, 0, len(menuOrder))
	for _, d := range menuOrder {
		if CanNavigate(role, d) {
			out = append(out, d)
		}
	}
	return out
}

// CanReview reports whether role may approve or reject a pending record.
func CanReview(role domain.Role) bool {
	return role == domain.RoleSuperAdmin || role == domain.RoleAdmin
}

// RolesFor returns the roles permitted to open dest. The returned slice is
// shared; callers must not mutate it.
func RolesFor(dest Destination) []domain.Role {
	return navTable[dest]
}
