package handlers

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/oksasatya/library-management-api/internal/domain/entity"
)

func TestUserResponseNeverLeaksPassword(t *testing.T) {
	u := &entity.User{
		ID:       123,
		Name:     "Some User",
		Email:    "user@example.com",
		Password: "$2a$10$secret-hash",
		Phone:    "+628123456789",
		Address:  "1 Test St",
		Role:     entity.RoleMember,
	}

	raw, err := json.Marshal(toUserResponse(u))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	body := string(raw)
	if strings.Contains(body, "password") || strings.Contains(body, "secret-hash") {
		t.Fatalf("password leaked into response: %s", body)
	}
	if !strings.Contains(body, `"id":"123"`) {
		t.Fatalf("id not serialized as a string: %s", body)
	}
}

func TestLoanResponseIDsAndOptionalRelations(t *testing.T) {
	l := &entity.Loan{
		ID:          7,
		BookID:      8,
		LibrarianID: 9,
		MemberID:    10,
		LoanAt:      time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	raw, err := json.Marshal(toLoanResponse(l))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	body := string(raw)
	for _, want := range []string{`"id":"7"`, `"bookId":"8"`, `"librarianId":"9"`, `"memberId":"10"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("missing %s in %s", want, body)
		}
	}
	// Unresolved relations stay out of the payload entirely.
	for _, absent := range []string{`"book"`, `"librarian"`, `"member"`} {
		if strings.Contains(body, absent+":") {
			t.Fatalf("unexpected %s in %s", absent, body)
		}
	}
	// The nullable fields are present as explicit nulls.
	if !strings.Contains(body, `"returnedAt":null`) {
		t.Fatalf("returnedAt missing from %s", body)
	}
}

func TestBookResponseCarriesJoinRows(t *testing.T) {
	b := &entity.Book{
		ID:    3,
		Title: "1984",
		ISBN:  "9780451524935",
		Categories: []entity.BookCategory{
			{BookID: 3, CategoryID: 5, Category: entity.Category{ID: 5, Name: "Fiction"}},
		},
	}

	raw, err := json.Marshal(toBookResponse(b))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	body := string(raw)
	for _, want := range []string{`"bookCategories"`, `"bookId":"3"`, `"categoryId":"5"`, `"name":"Fiction"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("missing %s in %s", want, body)
		}
	}
}
