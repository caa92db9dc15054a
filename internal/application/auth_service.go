package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/library-management-api/internal/domain/entity"
	repo "github.com/oksasatya/library-management-api/internal/domain/repository"
	"github.com/oksasatya/library-management-api/pkg/helpers"
)

// AuthService handles public registration, credential checks and token
// issuance.
type AuthService struct {
	Users  repo.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(users repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Logger: logger}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Address  string
}

// Register creates a MEMBER account. Whatever role the caller asked for is
// ignored; elevated accounts are created through the users resource.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
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

	u := &entity.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: hash,
		Phone:    in.Phone,
		Address:  in.Address,
		Role:     entity.RoleMember,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			// Lost the race against a concurrent registration.
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	if s.Logger != nil {
		s.Logger.WithField("user_id", u.ID).Info("user registered")
	}
	return u, nil
}

type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *entity.User
}

// Login verifies the credentials against a non-deleted account and issues a
// bearer token. Every failure mode collapses into the same error so the
// response cannot be used to probe which emails exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}

	token, exp, err := s.JWT.Generate(u.ID, u.Email, string(u.Role), u.Name)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("token generation failed")
		}
		return nil, err
	}
	return &LoginResult{AccessToken: token, ExpiresAt: exp, User: u}, nil
}

// ValidateUser resolves a token subject to a live account. A soft-deleted
// user invalidates every token it ever held.
func (s *AuthService) ValidateUser(ctx context.Context, id int64) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
