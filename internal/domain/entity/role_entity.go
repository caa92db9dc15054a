package entity

// Role controls which operations a user may invoke.
// Closed set: ADMIN, LIBRARIAN, MEMBER.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleLibrarian Role = "LIBRARIAN"
	RoleMember    Role = "MEMBER"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleLibrarian, RoleMember:
		return true
	}
	return false
}

// CanLend reports whether the role may act as the librarian side of a loan.
func (r Role) CanLend() bool {
	return r == RoleAdmin || r == RoleLibrarian
}
