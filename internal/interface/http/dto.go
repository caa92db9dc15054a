package handlers

import (
	"time"

	"github.com/oksasatya/library-management-api/internal/domain/entity"
)

// Response DTOs. Numeric ids serialize as strings so clients never lose
// precision on 64-bit values. The password hash has no field here at all.

type UserResponse struct {
	ID        int64       `json:"id,string"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Phone     string      `json:"phone"`
	Address   string      `json:"address"`
	Role      entity.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

func toUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Address:   u.Address,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toUserResponses(users []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}

type CategoryResponse struct {
	ID        int64      `json:"id,string"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt"`
}

func toCategoryResponse(c *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		DeletedAt: c.DeletedAt,
	}
}

func toCategoryResponses(categories []*entity.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, toCategoryResponse(c))
	}
	return out
}

type BookCategoryResponse struct {
	BookID     int64            `json:"bookId,string"`
	CategoryID int64            `json:"categoryId,string"`
	Category   CategoryResponse `json:"category"`
}

type BookResponse struct {
	ID             int64                  `json:"id,string"`
	Title          string                 `json:"title"`
	Description    string                 `json:"description"`
	Authors        string                 `json:"authors"`
	ISBN           string                 `json:"isbn"`
	BookCategories []BookCategoryResponse `json:"bookCategories"`
	CreatedAt      time.Time              `json:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt"`
	DeletedAt      *time.Time             `json:"deletedAt"`
}

func toBookResponse(b *entity.Book) BookResponse {
	bcs := make([]BookCategoryResponse, 0, len(b.Categories))
	for _, bc := range b.Categories {
		cat := bc.Category
		bcs = append(bcs, BookCategoryResponse{
			BookID:     bc.BookID,
			CategoryID: bc.CategoryID,
			Category:   toCategoryResponse(&cat),
		})
	}
	return BookResponse{
		ID:             b.ID,
		Title:          b.Title,
		Description:    b.Description,
		Authors:        b.Authors,
		ISBN:           b.ISBN,
		BookCategories: bcs,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
		DeletedAt:      b.DeletedAt,
	}
}

func toBookResponses(books []*entity.Book) []BookResponse {
	out := make([]BookResponse, 0, len(books))
	for _, b := range books {
		out = append(out, toBookResponse(b))
	}
	return out
}

type LoanResponse struct {
	ID          int64         `json:"id,string"`
	BookID      int64         `json:"bookId,string"`
	LibrarianID int64         `json:"librarianId,string"`
	MemberID    int64         `json:"memberId,string"`
	LoanAt      time.Time     `json:"loanAt"`
	ReturnedAt  *time.Time    `json:"returnedAt"`
	Note        *string       `json:"note"`
	Book        *BookResponse `json:"book,omitempty"`
	Librarian   *UserResponse `json:"librarian,omitempty"`
	Member      *UserResponse `json:"member,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

func toLoanResponse(l *entity.Loan) LoanResponse {
	resp := LoanResponse{
		ID:          l.ID,
		BookID:      l.BookID,
		LibrarianID: l.LibrarianID,
		MemberID:    l.MemberID,
		LoanAt:      l.LoanAt,
		ReturnedAt:  l.ReturnedAt,
		Note:        l.Note,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
	if l.Book != nil {
		b := toBookResponse(l.Book)
		resp.Book = &b
	}
	if l.Librarian != nil {
		u := toUserResponse(l.Librarian)
		resp.Librarian = &u
	}
	if l.Member != nil {
		u := toUserResponse(l.Member)
		resp.Member = &u
	}
	return resp
}

func toLoanResponses(loans []*entity.Loan) []LoanResponse {
	out := make([]LoanResponse, 0, len(loans))
	for _, l := range loans {
		out = append(out, toLoanResponse(l))
	}
	return out
}
