// Package memory provides in-process repository implementations that mirror
// the postgres behavior, including tombstone filtering and the partial
// email-uniqueness constraint. They back the service tests and make the
// services runnable without a database.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/oksasatya/library-management-api/internal/domain/entity"
	"github.com/oksasatya/library-management-api/internal/domain/repository"
)

type UserRepository struct {
	mu    sync.RWMutex
	seq   int64
	users map[int64]entity.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[int64]entity.User)}
}

func (r *UserRepository) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.DeletedAt == nil && existing.Email == u.Email {
			return repository.ErrConflict
		}
	}
	r.seq++
	now := time.Now()
	u.ID = r.seq
	u.CreatedAt = now
	u.UpdatedAt = now
	r.users[u.ID] = *u
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id int64) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok || u.DeletedAt != nil {
		return nil, repository.ErrNotFound
	}
	cp := u
	return &cp, nil
}

// anyByID ignores the tombstone; used when embedding loan relations.
func (r *UserRepository) anyByID(id int64) (*entity.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, false
	}
	cp := u
	return &cp, true
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.DeletedAt == nil && u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *UserRepository) EmailTaken(_ context.Context, email string, excludeID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.DeletedAt == nil && u.Email == email && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *UserRepository) List(_ context.Context) ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		if u.DeletedAt != nil {
			continue
		}
		cp := u
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

func (r *UserRepository) Update(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.users[u.ID]
	if !ok || current.DeletedAt != nil {
		return repository.ErrNotFound
	}
	for _, existing := range r.users {
		if existing.ID != u.ID && existing.DeletedAt == nil && existing.Email == u.Email {
			return repository.ErrConflict
		}
	}
	u.UpdatedAt = time.Now()
	u.CreatedAt = current.CreatedAt
	r.users[u.ID] = *u
	return nil
}

func (r *UserRepository) SoftDelete(_ context.Context, id int64) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok || u.DeletedAt != nil {
		return nil, repository.ErrNotFound
	}
	now := time.Now()
	u.DeletedAt = &now
	u.UpdatedAt = now
	r.users[id] = u
	cp := u
	return &cp, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
