package entity

import "time"

// User is the aggregate root for the user domain.
// Password holds the bcrypt hash; it must never reach a response body.
type User struct {
	ID        int64
	Name      string
	Email     string
	Password  string
	Phone     string
	Address   string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// Deleted reports whether the user has been soft-deleted.
func (u *User) Deleted() bool { return u.DeletedAt != nil }
