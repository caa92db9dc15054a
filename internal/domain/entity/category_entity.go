package entity

import "time"

// Category groups books; name is unique.
type Category struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

func (c *Category) Deleted() bool { return c.DeletedAt != nil }
