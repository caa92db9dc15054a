package entity

import "time"

// Loan records a book handed out by a librarian (or admin) to a member.
// ReturnedAt nil means the loan is still outstanding. Loans are never
// soft-deleted; removal is a hard delete.
//
// Book, Librarian and Member are embedded on reads without a tombstone
// filter: a loan keeps resolving its relations even after they are
// soft-deleted.
type Loan struct {
	ID          int64
	BookID      int64
	LibrarianID int64
	MemberID    int64
	LoanAt      time.Time
	ReturnedAt  *time.Time
	Note        *string

	Book      *Book
	Librarian *User
	Member    *User

	CreatedAt time.Time
	UpdatedAt time.Time
}
