package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/oksasatya/library-management-api/internal/domain/entity"
	"github.com/oksasatya/library-management-api/internal/domain/repository"
)

type BookRepository struct {
	mu         sync.RWMutex
	seq        int64
	books      map[int64]entity.Book
	joins      map[int64][]int64 // book id -> category ids
	categories *CategoryRepository
}

func NewBookRepository(categories *CategoryRepository) *BookRepository {
	return &BookRepository{
		books:      make(map[int64]entity.Book),
		joins:      make(map[int64][]int64),
		categories: categories,
	}
}

func (r *BookRepository) Create(_ context.Context, b *entity.Book, categoryIDs []int64) error {
	r.mu.Lock()
	r.seq++
	now := time.Now()
	b.ID = r.seq
	b.CreatedAt = now
	b.UpdatedAt = now
	r.books[b.ID] = *b
	r.joins[b.ID] = append([]int64(nil), categoryIDs...)
	r.mu.Unlock()
	return nil
}

func (r *BookRepository) GetByID(_ context.Context, id int64) (*entity.Book, error) {
	r.mu.RLock()
	b, ok := r.books[id]
	r.mu.RUnlock()
	if !ok || b.DeletedAt != nil {
		return nil, repository.ErrNotFound
	}
	cp := b
	r.attachCategories(&cp)
	return &cp, nil
}

func (r *BookRepository) anyByID(id int64) (*entity.Book, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.books[id]
	if !ok {
		return nil, false
	}
	cp := b
	return &cp, true
}

func (r *BookRepository) List(_ context.Context) ([]*entity.Book, error) {
	r.mu.RLock()
	out := make([]*entity.Book, 0, len(r.books))
	for _, b := range r.books {
		if b.DeletedAt != nil {
			continue
		}
		cp := b
		out = append(out, &cp)
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	for _, b := range out {
		r.attachCategories(b)
	}
	return out, nil
}

func (r *BookRepository) attachCategories(b *entity.Book) {
	r.mu.RLock()
	ids := append([]int64(nil), r.joins[b.ID]...)
	r.mu.RUnlock()
	b.Categories = make([]entity.BookCategory, 0, len(ids))
	for _, cid := range ids {
		c, ok := r.categories.anyByID(cid)
		if !ok {
			continue
		}
		b.Categories = append(b.Categories, entity.BookCategory{
			BookID:     b.ID,
			CategoryID: cid,
			Category:   *c,
		})
	}
}

func (r *BookRepository) Update(_ context.Context, b *entity.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.books[b.ID]
	if !ok || current.DeletedAt != nil {
		return repository.ErrNotFound
	}
	b.UpdatedAt = time.Now()
	b.CreatedAt = current.CreatedAt
	stored := *b
	stored.Categories = nil
	r.books[b.ID] = stored
	return nil
}

func (r *BookRepository) ReplaceCategories(_ context.Context, bookID int64, categoryIDs []int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.books[bookID]; !ok {
		return repository.ErrNotFound
	}
	r.joins[bookID] = append([]int64(nil), categoryIDs...)
	return nil
}

func (r *BookRepository) SoftDelete(_ context.Context, id int64) (*entity.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.books[id]
	if !ok || b.DeletedAt != nil {
		return nil, repository.ErrNotFound
	}
	now := time.Now()
	b.DeletedAt = &now
	b.UpdatedAt = now
	// Join rows survive the soft delete on purpose.
	r.books[id] = b
	cp := b
	return &cp, nil
}

var _ repository.BookRepository = (*BookRepository)(nil)
