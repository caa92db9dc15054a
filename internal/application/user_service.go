package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/library-management-api/internal/domain/entity"
	repo "github.com/oksasatya/library-management-api/internal/domain/repository"
	"github.com/oksasatya/library-management-api/pkg/helpers"
)

// UserService implements user CRUD. Unlike books/categories/loans there is no
// role gate in front of it; the route wiring documents that.
type UserService struct {
	Users  repo.UserRepository
	Logger *logrus.Logger
}

func NewUserService(users repo.UserRepository, logger *logrus.Logger) *UserService {
	return &UserService{Users: users, Logger: logger}
}

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Address  string
	Role     entity.Role
}

func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*entity.User, error) {
	taken, err := s.Users.EmailTaken(ctx, in.Email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	role := in.Role
	if role == "" {
		role = entity.RoleMember
	}
	u := &entity.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: hash,
		Phone:    in.Phone,
		Address:  in.Address,
		Role:     role,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

func (s *UserService) List(ctx context.Context) ([]*entity.User, error) {
	return s.Users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id int64) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, notFound("user", id)
		}
		return nil, err
	}
	return u, nil
}

type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
	Phone    *string
	Address  *string
	Role     *entity.Role
}

func (s *UserService) Update(ctx context.Context, id int64, in UpdateUserInput) (*entity.User, error) {
	u, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Email != nil {
		taken, err := s.Users.EmailTaken(ctx, *in.Email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrEmailTaken
		}
		u.Email = *in.Email
	}
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Phone != nil {
		u.Phone = *in.Phone
	}
	if in.Address != nil {
		u.Address = *in.Address
	}
	if in.Role != nil {
		u.Role = *in.Role
	}
	if in.Password != nil {
		hash, err := helpers.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		u.Password = hash
	}

	if err := s.Users.Update(ctx, u); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return nil, ErrEmailTaken
		}
		if errors.Is(err, repo.ErrNotFound) {
			return nil, notFound("user", id)
		}
		return nil, err
	}
	return u, nil
}

func (s *UserService) Remove(ctx context.Context, id int64) (*entity.User, error) {
	u, err := s.Users.SoftDelete(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, notFound("user", id)
		}
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithField("user_id", id).Info("user soft-deleted")
	}
	return u, nil
}
