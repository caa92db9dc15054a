package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/oksasatya/library-management-api/internal/domain/entity"
	"github.com/oksasatya/library-management-api/internal/domain/repository"
)

type CategoryRepository struct {
	mu         sync.RWMutex
	seq        int64
	categories map[int64]entity.Category
}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{categories: make(map[int64]entity.Category)}
}

func (r *CategoryRepository) Create(_ context.Context, c *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	// Category name uniqueness is a full constraint, tombstoned rows included.
	for _, existing := range r.categories {
		if existing.Name == c.Name {
			return repository.ErrConflict
		}
	}
	r.seq++
	now := time.Now()
	c.ID = r.seq
	c.CreatedAt = now
	c.UpdatedAt = now
	r.categories[c.ID] = *c
	return nil
}

func (r *CategoryRepository) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.categories[id]
	if !ok || c.DeletedAt != nil {
		return nil, repository.ErrNotFound
	}
	cp := c
	return &cp, nil
}

func (r *CategoryRepository) anyByID(id int64) (*entity.Category, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.categories[id]
	if !ok {
		return nil, false
	}
	cp := c
	return &cp, true
}

func (r *CategoryRepository) List(_ context.Context) ([]*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		if c.DeletedAt != nil {
			continue
		}
		cp := c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *CategoryRepository) Update(_ context.Context, c *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.categories[c.ID]
	if !ok || current.DeletedAt != nil {
		return repository.ErrNotFound
	}
	for _, existing := range r.categories {
		if existing.ID != c.ID && existing.Name == c.Name {
			return repository.ErrConflict
		}
	}
	c.UpdatedAt = time.Now()
	c.CreatedAt = current.CreatedAt
	r.categories[c.ID] = *c
	return nil
}

func (r *CategoryRepository) SoftDelete(_ context.Context, id int64) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.categories[id]
	if !ok || c.DeletedAt != nil {
		return nil, repository.ErrNotFound
	}
	now := time.Now()
	c.DeletedAt = &now
	c.UpdatedAt = now
	r.categories[id] = c
	cp := c
	return &cp, nil
}

var _ repository.CategoryRepository = (*CategoryRepository)(nil)
