package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/library-management-api/internal/domain/entity"
	"github.com/oksasatya/library-management-api/internal/domain/repository"
)

const bookNotDeleted = "deleted_at IS NULL"

const bookColumns = "id, title, description, authors, isbn, created_at, updated_at, deleted_at"

type BookRepository struct {
	pool *pgxpool.Pool
}

func NewBookRepository(pool *pgxpool.Pool) *BookRepository {
	return &BookRepository{pool: pool}
}

func scanBook(row pgx.Row) (*entity.Book, error) {
	b := &entity.Book{}
	err := row.Scan(&b.ID, &b.Title, &b.Description, &b.Authors, &b.ISBN,
		&b.CreatedAt, &b.UpdatedAt, &b.DeletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *BookRepository) Create(ctx context.Context, b *entity.Book, categoryIDs []int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
		INSERT INTO books (title, description, authors, isbn)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, b.Title, b.Description, b.Authors, b.ISBN)
	if err := row.Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return mapError(err)
	}

	for _, cid := range categoryIDs {
		if _, err := tx.Exec(ctx, `
			INSERT INTO book_categories (book_id, category_id)
			VALUES ($1, $2)
		`, b.ID, cid); err != nil {
			return mapError(err)
		}
	}

	return tx.Commit(ctx)
}

func (r *BookRepository) GetByID(ctx context.Context, id int64) (*entity.Book, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+bookColumns+`
		FROM books
		WHERE id = $1 AND `+bookNotDeleted, id)
	b, err := scanBook(row)
	if err != nil {
		return nil, err
	}
	if err := r.attachCategories(ctx, []*entity.Book{b}); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *BookRepository) List(ctx context.Context) ([]*entity.Book, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+bookColumns+`
		FROM books
		WHERE `+bookNotDeleted+`
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := make([]*entity.Book, 0)
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.attachCategories(ctx, books); err != nil {
		return nil, err
	}
	return books, nil
}

// attachCategories loads the join rows with their categories for the given
// books in one query. Embedded categories are not tombstone-filtered: an
// association to a since-deleted category still resolves.
func (r *BookRepository) attachCategories(ctx context.Context, books []*entity.Book) error {
	if len(books) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(books))
	byID := make(map[int64]*entity.Book, len(books))
	for _, b := range books {
		b.Categories = make([]entity.BookCategory, 0)
		ids = append(ids, b.ID)
		byID[b.ID] = b
	}

	rows, err := r.pool.Query(ctx, `
		SELECT bc.book_id, bc.category_id,
		       c.id, c.name, c.created_at, c.updated_at, c.deleted_at
		FROM book_categories bc
		JOIN categories c ON c.id = bc.category_id
		WHERE bc.book_id = ANY($1)
		ORDER BY bc.book_id, bc.category_id`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var bc entity.BookCategory
		if err := rows.Scan(&bc.BookID, &bc.CategoryID,
			&bc.Category.ID, &bc.Category.Name, &bc.Category.CreatedAt,
			&bc.Category.UpdatedAt, &bc.Category.DeletedAt); err != nil {
			return err
		}
		if b, ok := byID[bc.BookID]; ok {
			b.Categories = append(b.Categories, bc)
		}
	}
	return rows.Err()
}

func (r *BookRepository) Update(ctx context.Context, b *entity.Book) error {
	b.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE books
		SET title = $1, description = $2, authors = $3, isbn = $4, updated_at = $5
		WHERE id = $6 AND `+bookNotDeleted,
		b.Title, b.Description, b.Authors, b.ISBN, b.UpdatedAt, b.ID)
	if err != nil {
		return mapError(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *BookRepository) ReplaceCategories(ctx context.Context, bookID int64, categoryIDs []int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// Full replacement, not a diff: drop everything, insert the new set.
	if _, err := tx.Exec(ctx, `DELETE FROM book_categories WHERE book_id = $1`, bookID); err != nil {
		return err
	}
	for _, cid := range categoryIDs {
		if _, err := tx.Exec(ctx, `
			INSERT INTO book_categories (book_id, category_id)
			VALUES ($1, $2)
		`, bookID, cid); err != nil {
			return mapError(err)
		}
	}

	return tx.Commit(ctx)
}

func (r *BookRepository) SoftDelete(ctx context.Context, id int64) (*entity.Book, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE books
		SET deleted_at = now(), updated_at = now()
		WHERE id = $1 AND `+bookNotDeleted+`
		RETURNING `+bookColumns, id)
	return scanBook(row)
}

var _ repository.BookRepository = (*BookRepository)(nil)
