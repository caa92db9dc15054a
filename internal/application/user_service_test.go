package application

import (
	"context"
	"errors"
	"testing"

	"github.com/oksasatya/library-management-api/internal/domain/entity"
	"github.com/oksasatya/library-management-api/internal/infrastructure/memory"
	"github.com/oksasatya/library-management-api/pkg/helpers"
)

func newUserFixture() *UserService {
	return NewUserService(memory.NewUserRepository(), nil)
}

func createUserInput(email string, role entity.Role) CreateUserInput {
	return CreateUserInput{
		Name:     "Some User",
		Email:    email,
		Password: "password123",
		Phone:    "+628123456780",
		Address:  "2 Test St",
		Role:     role,
	}
}

func TestCreateUserDefaultsToMember(t *testing.T) {
	svc := newUserFixture()
	ctx := context.Background()

	u, err := svc.Create(ctx, createUserInput("default@example.com", ""))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.Role != entity.RoleMember {
		t.Fatalf("role = %q, want MEMBER", u.Role)
	}
}

func TestCreateUserHonorsRole(t *testing.T) {
	svc := newUserFixture()
	ctx := context.Background()

	u, err := svc.Create(ctx, createUserInput("admin@example.com", entity.RoleAdmin))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.Role != entity.RoleAdmin {
		t.Fatalf("role = %q, want ADMIN", u.Role)
	}
}

func TestUpdateUserEmailConflict(t *testing.T) {
	svc := newUserFixture()
	ctx := context.Background()

	if _, err := svc.Create(ctx, createUserInput("first@example.com", "")); err != nil {
		t.Fatalf("Create first: %v", err)
	}
	second, err := svc.Create(ctx, createUserInput("second@example.com", ""))
	if err != nil {
		t.Fatalf("Create second: %v", err)
	}

	email := "first@example.com"
	if _, err := svc.Update(ctx, second.ID, UpdateUserInput{Email: &email}); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}

	// Re-submitting your own email is not a conflict.
	own := "second@example.com"
	if _, err := svc.Update(ctx, second.ID, UpdateUserInput{Email: &own}); err != nil {
		t.Fatalf("own email update: %v", err)
	}
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	svc := newUserFixture()
	ctx := context.Background()

	u, err := svc.Create(ctx, createUserInput("rehash@example.com", ""))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	newPass := "newpassword"
	updated, err := svc.Update(ctx, u.ID, UpdateUserInput{Password: &newPass})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Password == newPass {
		t.Fatal("password stored in plaintext")
	}
	if !helpers.CompareHashAndPassword(updated.Password, newPass) {
		t.Fatal("stored hash does not match the new password")
	}
}

func TestRemoveUserHidesFromReads(t *testing.T) {
	svc := newUserFixture()
	ctx := context.Background()

	u, err := svc.Create(ctx, createUserInput("gone@example.com", ""))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	removed, err := svc.Remove(ctx, u.ID)
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if removed.DeletedAt == nil {
		t.Fatal("expected deletedAt to be set on the returned user")
	}

	if _, err := svc.Get(ctx, u.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get err = %v, want ErrNotFound", err)
	}
	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	for _, item := range list {
		if item.ID == u.ID {
			t.Fatal("deleted user still listed")
		}
	}

	// Deleting twice is a not-found.
	if _, err := svc.Remove(ctx, u.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second Remove err = %v, want ErrNotFound", err)
	}
}
