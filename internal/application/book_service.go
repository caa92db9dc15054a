package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/library-management-api/internal/domain/entity"
	repo "github.com/oksasatya/library-management-api/internal/domain/repository"
)

type BookService struct {
	Books  repo.BookRepository
	Logger *logrus.Logger
}

func NewBookService(books repo.BookRepository, logger *logrus.Logger) *BookService {
	return &BookService{Books: books, Logger: logger}
}

type CreateBookInput struct {
	Title       string
	Description string
	Authors     string
	ISBN        string
	CategoryIDs []int64
}

func (s *BookService) Create(ctx context.Context, in CreateBookInput) (*entity.Book, error) {
	b := &entity.Book{
		Title:       in.Title,
		Description: in.Description,
		Authors:     in.Authors,
		ISBN:        in.ISBN,
	}
	if err := s.Books.Create(ctx, b, dedupeIDs(in.CategoryIDs)); err != nil {
		return nil, err
	}
	// Reload to return the resolved category associations.
	return s.Books.GetByID(ctx, b.ID)
}

func (s *BookService) List(ctx context.Context) ([]*entity.Book, error) {
	return s.Books.List(ctx)
}

func (s *BookService) Get(ctx context.Context, id int64) (*entity.Book, error) {
	b, err := s.Books.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, notFound("book", id)
		}
		return nil, err
	}
	return b, nil
}

type UpdateBookInput struct {
	Title       *string
	Description *string
	Authors     *string
	ISBN        *string
	// CategoryIDs nil leaves associations untouched; an empty non-nil slice
	// removes every association.
	CategoryIDs []int64
}

func (s *BookService) Update(ctx context.Context, id int64, in UpdateBookInput) (*entity.Book, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		b.Title = *in.Title
	}
	if in.Description != nil {
		b.Description = *in.Description
	}
	if in.Authors != nil {
		b.Authors = *in.Authors
	}
	if in.ISBN != nil {
		b.ISBN = *in.ISBN
	}

	if err := s.Books.Update(ctx, b); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, notFound("book", id)
		}
		return nil, err
	}
	if in.CategoryIDs != nil {
		if err := s.Books.ReplaceCategories(ctx, id, dedupeIDs(in.CategoryIDs)); err != nil {
			return nil, err
		}
	}
	return s.Books.GetByID(ctx, id)
}

func (s *BookService) Remove(ctx context.Context, id int64) (*entity.Book, error) {
	b, err := s.Books.SoftDelete(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, notFound("book", id)
		}
		return nil, err
	}
	return b, nil
}

// dedupeIDs preserves first-seen order while dropping repeats, so a book
// ends up with one join row per category no matter what the client sent.
func dedupeIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
