package domain

// Role governs navigation and mutation permissions across the portal.
type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleAdmin      Role = "ADMIN"
	RoleEnumerator Role = "ENUMERATOR"
	RoleViewer     Role = "VIEWER"
)

// Valid reports whether r is one of the four known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleEnumerator, RoleViewer:
		return true
	}
	return false
}

// Department tags a user with the ministry wing they report for.
type Department string

const (
	DepartmentForest   Department = "Forest"
	DepartmentIndustry Department = "Industry"
	DepartmentGeneral  Department = "General"
	DepartmentCommerce Department = "Commerce"
)

// User models an authenticated actor. Users come from a seed roster created
// out-of-band and are immutable for the lifetime of a session.
type User struct {
	ID         string     `json:"id" bson:"_id"`
	Name       string     `json:"name" bson:"name"`
	Email      string     `json:"email" bson:"email"`
	Role       Role       `json:"role" bson:"role"`
	Department Department `json:"department" bson:"department"`
}
