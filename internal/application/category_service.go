package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/library-management-api/internal/domain/entity"
	repo "github.com/oksasatya/library-management-api/internal/domain/repository"
)

type CategoryService struct {
	Categories repo.CategoryRepository
	Logger     *logrus.Logger
}

func NewCategoryService(categories repo.CategoryRepository, logger *logrus.Logger) *CategoryService {
	return &CategoryService{Categories: categories, Logger: logger}
}

func (s *CategoryService) Create(ctx context.Context, name string) (*entity.Category, error) {
	c := &entity.Category{Name: name}
	if err := s.Categories.Create(ctx, c); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return nil, ErrNameTaken
		}
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) List(ctx context.Context) ([]*entity.Category, error) {
	return s.Categories.List(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id int64) (*entity.Category, error) {
	c, err := s.Categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, notFound("category", id)
		}
		return nil, err
	}
	return c, nil
}

type UpdateCategoryInput struct {
	Name *string
}

func (s *CategoryService) Update(ctx context.Context, id int64, in UpdateCategoryInput) (*entity.Category, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		c.Name = *in.Name
	}
	if err := s.Categories.Update(ctx, c); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return nil, ErrNameTaken
		}
		if errors.Is(err, repo.ErrNotFound) {
			return nil, notFound("category", id)
		}
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) Remove(ctx context.Context, id int64) (*entity.Category, error) {
	c, err := s.Categories.SoftDelete(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, notFound("category", id)
		}
		return nil, err
	}
	return c, nil
}
