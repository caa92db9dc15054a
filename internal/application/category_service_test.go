package application

import (
	"context"
	"errors"
	"testing"

	"github.com/oksasatya/library-management-api/internal/infrastructure/memory"
)

func TestCreateCategoryDuplicateName(t *testing.T) {
	svc := NewCategoryService(memory.NewCategoryRepository(), nil)
	ctx := context.Background()

	if _, err := svc.Create(ctx, "Fiction"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(ctx, "Fiction"); !errors.Is(err, ErrNameTaken) {
		t.Fatalf("err = %v, want ErrNameTaken", err)
	}
}

func TestUpdateCategoryRename(t *testing.T) {
	svc := NewCategoryService(memory.NewCategoryRepository(), nil)
	ctx := context.Background()

	c, err := svc.Create(ctx, "Sciense")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	name := "Science"
	updated, err := svc.Update(ctx, c.ID, UpdateCategoryInput{Name: &name})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Science" {
		t.Fatalf("name = %q, want Science", updated.Name)
	}

	// Renaming onto another live category collides.
	if _, err := svc.Create(ctx, "History"); err != nil {
		t.Fatalf("Create History: %v", err)
	}
	taken := "History"
	if _, err := svc.Update(ctx, c.ID, UpdateCategoryInput{Name: &taken}); !errors.Is(err, ErrNameTaken) {
		t.Fatalf("err = %v, want ErrNameTaken", err)
	}
}

func TestRemoveCategoryHidesFromReads(t *testing.T) {
	svc := NewCategoryService(memory.NewCategoryRepository(), nil)
	ctx := context.Background()

	c, err := svc.Create(ctx, "Ephemeral")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	removed, err := svc.Remove(ctx, c.ID)
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if removed.DeletedAt == nil {
		t.Fatal("expected deletedAt on the returned category")
	}

	if _, err := svc.Get(ctx, c.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get err = %v, want ErrNotFound", err)
	}
	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	for _, item := range list {
		if item.ID == c.ID {
			t.Fatal("deleted category still listed")
		}
	}
}
