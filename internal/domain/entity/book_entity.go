package entity

import "time"

// Book belongs to zero or more categories through BookCategory join rows.
// Soft-deleting a book hides it from reads but keeps loans and join rows.
type Book struct {
	ID          int64
	Title       string
	Description string
	Authors     string
	ISBN        string
	Categories  []BookCategory
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

func (b *Book) Deleted() bool { return b.DeletedAt != nil }

// BookCategory is the explicit book-to-category association.
type BookCategory struct {
	BookID     int64
	CategoryID int64
	Category   Category
}
