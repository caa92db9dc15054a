package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/oksasatya/library-management-api/internal/domain/entity"
	"github.com/oksasatya/library-management-api/internal/infrastructure/memory"
	"github.com/oksasatya/library-management-api/pkg/helpers"
)

func newAuthFixture() (*AuthService, *memory.UserRepository) {
	users := memory.NewUserRepository()
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	return NewAuthService(users, jwt, nil), users
}

func registerInput(email string) RegisterInput {
	return RegisterInput{
		Name:     "Test User",
		Email:    email,
		Password: "password123",
		Phone:    "+628123456789",
		Address:  "1 Test St",
	}
}

func TestRegisterForcesMemberRole(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	u, err := svc.Register(ctx, registerInput("new@example.com"))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.Role != entity.RoleMember {
		t.Fatalf("role = %q, want %q", u.Role, entity.RoleMember)
	}
	if u.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if u.Password == "password123" {
		t.Fatal("password stored in plaintext")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	if _, err := svc.Register(ctx, registerInput("dup@example.com")); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	_, err := svc.Register(ctx, registerInput("dup@example.com"))
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}
}

func TestRegisterAfterSoftDelete(t *testing.T) {
	svc, users := newAuthFixture()
	ctx := context.Background()

	u, err := svc.Register(ctx, registerInput("recycle@example.com"))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := users.SoftDelete(ctx, u.ID); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}

	// A soft-deleted account releases its email address.
	u2, err := svc.Register(ctx, registerInput("recycle@example.com"))
	if err != nil {
		t.Fatalf("re-register after delete: %v", err)
	}
	if u2.ID == u.ID {
		t.Fatal("expected a fresh account, got the deleted one")
	}
}

func TestLoginFailures(t *testing.T) {
	svc, users := newAuthFixture()
	ctx := context.Background()

	u, err := svc.Register(ctx, registerInput("login@example.com"))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, err := svc.Login(ctx, "nobody@example.com", "password123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(ctx, "login@example.com", "wrongpass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password err = %v, want ErrInvalidCredentials", err)
	}

	if _, err := users.SoftDelete(ctx, u.ID); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}
	if _, err := svc.Login(ctx, "login@example.com", "password123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("deleted user err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginIssuesToken(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	u, err := svc.Register(ctx, registerInput("token@example.com"))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	res, err := svc.Login(ctx, "token@example.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.AccessToken == "" {
		t.Fatal("empty access token")
	}
	if res.User.ID != u.ID {
		t.Fatalf("user id = %d, want %d", res.User.ID, u.ID)
	}

	claims, err := svc.JWT.Parse(res.AccessToken)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	id, err := claims.UserID()
	if err != nil {
		t.Fatalf("UserID: %v", err)
	}
	if id != u.ID {
		t.Fatalf("token subject = %d, want %d", id, u.ID)
	}
	if claims.Role != string(entity.RoleMember) {
		t.Fatalf("token role = %q, want MEMBER", claims.Role)
	}
}

func TestValidateUserRejectsDeleted(t *testing.T) {
	svc, users := newAuthFixture()
	ctx := context.Background()

	u, err := svc.Register(ctx, registerInput("validate@example.com"))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.ValidateUser(ctx, u.ID); err != nil {
		t.Fatalf("ValidateUser live: %v", err)
	}

	if _, err := users.SoftDelete(ctx, u.ID); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}
	if _, err := svc.ValidateUser(ctx, u.ID); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("deleted user err = %v, want ErrInvalidCredentials", err)
	}
}
