package application

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/oksasatya/library-management-api/internal/domain/entity"
	"github.com/oksasatya/library-management-api/internal/infrastructure/memory"
)

type loanFixture struct {
	loans     *LoanService
	books     *BookService
	users     *UserService
	librarian *entity.User
	member    *entity.User
	book      *entity.Book
}

func newLoanFixture(t *testing.T) *loanFixture {
	t.Helper()
	ctx := context.Background()

	userRepo := memory.NewUserRepository()
	categoryRepo := memory.NewCategoryRepository()
	bookRepo := memory.NewBookRepository(categoryRepo)
	loanRepo := memory.NewLoanRepository(userRepo, bookRepo)

	users := NewUserService(userRepo, nil)
	books := NewBookService(bookRepo, nil)
	loans := NewLoanService(loanRepo, bookRepo, userRepo, nil)

	librarian, err := users.Create(ctx, createUserInput("lib@example.com", entity.RoleLibrarian))
	if err != nil {
		t.Fatalf("create librarian: %v", err)
	}
	member, err := users.Create(ctx, createUserInput("mem@example.com", entity.RoleMember))
	if err != nil {
		t.Fatalf("create member: %v", err)
	}
	book, err := books.Create(ctx, bookInput("loan-isbn-1"))
	if err != nil {
		t.Fatalf("create book: %v", err)
	}

	return &loanFixture{
		loans:     loans,
		books:     books,
		users:     users,
		librarian: librarian,
		member:    member,
		book:      book,
	}
}

func (f *loanFixture) input() CreateLoanInput {
	return CreateLoanInput{
		BookID:      f.book.ID,
		LibrarianID: f.librarian.ID,
		MemberID:    f.member.ID,
		LoanAt:      time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateLoanEmbedsRelations(t *testing.T) {
	f := newLoanFixture(t)
	ctx := context.Background()

	l, err := f.loans.Create(ctx, f.input())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if l.Book == nil || l.Book.ID != f.book.ID {
		t.Fatalf("embedded book = %+v, want id %d", l.Book, f.book.ID)
	}
	if l.Librarian == nil || l.Librarian.ID != f.librarian.ID {
		t.Fatalf("embedded librarian = %+v, want id %d", l.Librarian, f.librarian.ID)
	}
	if l.Member == nil || l.Member.ID != f.member.ID {
		t.Fatalf("embedded member = %+v, want id %d", l.Member, f.member.ID)
	}
	if l.ReturnedAt != nil {
		t.Fatalf("returnedAt = %v, want nil", l.ReturnedAt)
	}
}

func TestCreateLoanMissingBook(t *testing.T) {
	f := newLoanFixture(t)
	in := f.input()
	in.BookID = 9999
	// Use a bogus librarian too; the book check must fire first.
	in.LibrarianID = 9998

	_, err := f.loans.Create(context.Background(), in)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if !strings.Contains(err.Error(), "book") {
		t.Fatalf("err = %q, want the book check to fail first", err)
	}
}

func TestCreateLoanLibrarianMustHoldLendingRole(t *testing.T) {
	f := newLoanFixture(t)
	ctx := context.Background()

	in := f.input()
	in.LibrarianID = f.member.ID

	if _, err := f.loans.Create(ctx, in); !errors.Is(err, ErrNotLibrarian) {
		t.Fatalf("err = %v, want ErrNotLibrarian", err)
	}

	// A failed create writes nothing.
	list, err := f.loans.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("got %d loans after failed create, want 0", len(list))
	}
}

func TestCreateLoanAdminCanLend(t *testing.T) {
	f := newLoanFixture(t)
	ctx := context.Background()

	admin, err := f.users.Create(ctx, createUserInput("adm@example.com", entity.RoleAdmin))
	if err != nil {
		t.Fatalf("create admin: %v", err)
	}
	in := f.input()
	in.LibrarianID = admin.ID

	if _, err := f.loans.Create(ctx, in); err != nil {
		t.Fatalf("Create with ADMIN librarian: %v", err)
	}
}

func TestLoanEmbedsSoftDeletedBook(t *testing.T) {
	f := newLoanFixture(t)
	ctx := context.Background()

	l, err := f.loans.Create(ctx, f.input())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := f.books.Remove(ctx, f.book.ID); err != nil {
		t.Fatalf("Remove book: %v", err)
	}

	// The loan keeps resolving its book even after the soft delete.
	got, err := f.loans.Get(ctx, l.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Book == nil {
		t.Fatal("embedded book missing after soft delete")
	}
	if got.Book.DeletedAt == nil {
		t.Fatal("embedded book should carry its deletedAt")
	}
}

func TestUpdateLoanReturnedAtTriState(t *testing.T) {
	f := newLoanFixture(t)
	ctx := context.Background()

	l, err := f.loans.Create(ctx, f.input())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Absent key leaves the return date alone.
	note := "renewed"
	got, err := f.loans.Update(ctx, l.ID, UpdateLoanInput{Note: &note})
	if err != nil {
		t.Fatalf("Update note: %v", err)
	}
	if got.ReturnedAt != nil {
		t.Fatalf("returnedAt = %v, want nil after unrelated update", got.ReturnedAt)
	}

	// Providing a value marks the loan returned.
	returned := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	got, err = f.loans.Update(ctx, l.ID, UpdateLoanInput{ReturnedAt: NullableTime{Set: true, Value: &returned}})
	if err != nil {
		t.Fatalf("Update set: %v", err)
	}
	if got.ReturnedAt == nil || !got.ReturnedAt.Equal(returned) {
		t.Fatalf("returnedAt = %v, want %v", got.ReturnedAt, returned)
	}

	// An explicit null clears it again.
	got, err = f.loans.Update(ctx, l.ID, UpdateLoanInput{ReturnedAt: NullableTime{Set: true}})
	if err != nil {
		t.Fatalf("Update clear: %v", err)
	}
	if got.ReturnedAt != nil {
		t.Fatalf("returnedAt = %v, want nil after explicit null", got.ReturnedAt)
	}
}

func TestUpdateLoanRevalidatesChangedReferences(t *testing.T) {
	f := newLoanFixture(t)
	ctx := context.Background()

	l, err := f.loans.Create(ctx, f.input())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	bogus := int64(9999)
	if _, err := f.loans.Update(ctx, l.ID, UpdateLoanInput{BookID: &bogus}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("bogus book err = %v, want ErrNotFound", err)
	}
	if _, err := f.loans.Update(ctx, l.ID, UpdateLoanInput{LibrarianID: &f.member.ID}); !errors.Is(err, ErrNotLibrarian) {
		t.Fatalf("member librarian err = %v, want ErrNotLibrarian", err)
	}

	// Re-submitting the current values skips the checks entirely.
	if _, err := f.loans.Update(ctx, l.ID, UpdateLoanInput{LibrarianID: &f.librarian.ID}); err != nil {
		t.Fatalf("same librarian update: %v", err)
	}
}

func TestRemoveLoanReturnsLastState(t *testing.T) {
	f := newLoanFixture(t)
	ctx := context.Background()

	l, err := f.loans.Create(ctx, f.input())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	removed, err := f.loans.Remove(ctx, l.ID)
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if removed.ID != l.ID {
		t.Fatalf("removed id = %d, want %d", removed.ID, l.ID)
	}
	if _, err := f.loans.Get(ctx, l.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get after remove err = %v, want ErrNotFound", err)
	}
}

func TestListLoansOrderedByLoanDate(t *testing.T) {
	f := newLoanFixture(t)
	ctx := context.Background()

	older := f.input()
	older.LoanAt = time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	newer := f.input()
	newer.LoanAt = time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	if _, err := f.loans.Create(ctx, older); err != nil {
		t.Fatalf("Create older: %v", err)
	}
	if _, err := f.loans.Create(ctx, newer); err != nil {
		t.Fatalf("Create newer: %v", err)
	}

	list, err := f.loans.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("got %d loans, want 2", len(list))
	}
	if !list[0].LoanAt.After(list[1].LoanAt) {
		t.Fatalf("loans not in loan_at descending order: %v then %v", list[0].LoanAt, list[1].LoanAt)
	}
}
