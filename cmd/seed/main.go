package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/oksasatya/library-management-api/config"
	"github.com/oksasatya/library-management-api/pkg/helpers"
)

// Seeds a demo dataset: one account per role plus an extra member, a set of
// categories, books with category joins, and a few loans. Safe to run more
// than once.

type seedUser struct {
	name    string
	email   string
	phone   string
	address string
	role    string
}

type seedBook struct {
	title       string
	description string
	authors     string
	isbn        string
	categories  []string
}

var users = []seedUser{
	{"Alice Admin", "admin@library.local", "+628111111111", "1 Admin Way", "ADMIN"},
	{"Liam Librarian", "librarian@library.local", "+628122222222", "2 Stack St", "LIBRARIAN"},
	{"Mia Member", "member@library.local", "+628133333333", "3 Reader Rd", "MEMBER"},
	{"Noah Member", "member2@library.local", "+628144444444", "4 Novel Ave", "MEMBER"},
}

var categories = []string{
	"Fiction", "Non-fiction", "Science", "History", "Biography",
	"Fantasy", "Mystery", "Romance", "Technology", "Children",
}

var books = []seedBook{
	{"1984", "Dystopian classic", "George Orwell", "9780451524935", []string{"Fiction"}},
	{"Brave New World", "Futuristic society", "Aldous Huxley", "9780060850524", []string{"Fiction", "Science"}},
	{"A Brief History of Time", "Cosmology for everyone", "Stephen Hawking", "9780553380163", []string{"Science", "Non-fiction"}},
	{"Sapiens", "A brief history of humankind", "Yuval Noah Harari", "9780062316097", []string{"History", "Non-fiction"}},
	{"The Hobbit", "There and back again", "J.R.R. Tolkien", "9780547928227", []string{"Fantasy", "Fiction"}},
	{"Murder on the Orient Express", "A Poirot mystery", "Agatha Christie", "9780062693662", []string{"Mystery", "Fiction"}},
	{"Steve Jobs", "The authorized biography", "Walter Isaacson", "9781451648539", []string{"Biography", "Technology"}},
	{"The Little Prince", "A tale for all ages", "Antoine de Saint-Exupery", "9780156012195", []string{"Children", "Fiction"}},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	hash, err := helpers.HashPassword("password123")
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	userIDs := make(map[string]int64, len(users))
	for _, u := range users {
		var id int64
		err := db.QueryRow(`
			INSERT INTO users (name, email, password, phone, address, role)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (email) WHERE deleted_at IS NULL
			DO UPDATE SET name = EXCLUDED.name, role = EXCLUDED.role, updated_at = now()
			RETURNING id
		`, u.name, u.email, hash, u.phone, u.address, u.role).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed user %s: %v", u.email, err)
		}
		userIDs[u.role+":"+u.email] = id
		fmt.Printf("seeded user: id=%d email=%s role=%s password=password123\n", id, u.email, u.role)
	}

	categoryIDs := make(map[string]int64, len(categories))
	for _, name := range categories {
		var id int64
		err := db.QueryRow(`
			INSERT INTO categories (name) VALUES ($1)
			ON CONFLICT (name) DO UPDATE SET updated_at = now()
			RETURNING id
		`, name).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed category %s: %v", name, err)
		}
		categoryIDs[name] = id
	}
	fmt.Printf("seeded %d categories\n", len(categories))

	bookIDs := make(map[string]int64, len(books))
	for _, b := range books {
		var id int64
		err := db.QueryRow(`SELECT id FROM books WHERE isbn = $1 AND deleted_at IS NULL`, b.isbn).Scan(&id)
		if err == sql.ErrNoRows {
			err = db.QueryRow(`
				INSERT INTO books (title, description, authors, isbn)
				VALUES ($1, $2, $3, $4)
				RETURNING id
			`, b.title, b.description, b.authors, b.isbn).Scan(&id)
		}
		if err != nil {
			log.Fatalf("failed to seed book %s: %v", b.title, err)
		}
		for _, cat := range b.categories {
			if _, err := db.Exec(`
				INSERT INTO book_categories (book_id, category_id)
				VALUES ($1, $2)
				ON CONFLICT (book_id, category_id) DO NOTHING
			`, id, categoryIDs[cat]); err != nil {
				log.Fatalf("failed to link book %s to %s: %v", b.title, cat, err)
			}
		}
		bookIDs[b.isbn] = id
	}
	fmt.Printf("seeded %d books\n", len(books))

	librarianID := userIDs["LIBRARIAN:librarian@library.local"]
	memberID := userIDs["MEMBER:member@library.local"]
	member2ID := userIDs["MEMBER:member2@library.local"]

	now := time.Now().UTC().Truncate(24 * time.Hour)
	returned := now.AddDate(0, 0, -7)
	loans := []struct {
		bookID     int64
		memberID   int64
		loanAt     time.Time
		returnedAt *time.Time
		note       string
	}{
		{bookIDs["9780451524935"], memberID, now.AddDate(0, 0, -14), &returned, "returned on time"},
		{bookIDs["9780547928227"], memberID, now.AddDate(0, 0, -3), nil, "outstanding"},
		{bookIDs["9780062316097"], member2ID, now.AddDate(0, 0, -1), nil, "outstanding"},
	}

	seeded := 0
	for _, l := range loans {
		var exists bool
		if err := db.QueryRow(`
			SELECT EXISTS (
				SELECT 1 FROM loans WHERE book_id = $1 AND member_id = $2 AND loan_at = $3
			)
		`, l.bookID, l.memberID, l.loanAt).Scan(&exists); err != nil {
			log.Fatalf("failed to check loan: %v", err)
		}
		if exists {
			continue
		}
		if _, err := db.Exec(`
			INSERT INTO loans (book_id, librarian_id, member_id, loan_at, returned_at, note)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, l.bookID, librarianID, l.memberID, l.loanAt, l.returnedAt, l.note); err != nil {
			log.Fatalf("failed to seed loan: %v", err)
		}
		seeded++
	}
	fmt.Printf("seeded %d loans\n", seeded)
}
