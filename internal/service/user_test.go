package service_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/msomdec/exercise-tracker/internal/domain"
	"github.com/msomdec/exercise-tracker/internal/repository/sqlite"
	"github.com/msomdec/exercise-tracker/internal/service"
)

func newTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestUserService_Create_ThenList(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewUserService(db.Users())
	ctx := context.Background()

	user, err := svc.Create(ctx, "fcc_test")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if user.ID == "" {
		t.Fatal("expected user ID to be set")
	}

	users, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	seen := 0
	for _, u := range users {
		if u.Username == "fcc_test" {
			seen++
			if u.ID != user.ID {
				t.Fatalf("expected id %s, got %s", user.ID, u.ID)
			}
		}
	}
	if seen != 1 {
		t.Fatalf("expected username listed exactly once, got %d", seen)
	}
}

func TestUserService_Create_Duplicate(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewUserService(db.Users())
	ctx := context.Background()

	if _, err := svc.Create(ctx, "twin"); err != nil {
		t.Fatalf("first Create: %v", err)
	}

	_, err := svc.Create(ctx, "twin")
	if !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}

	users, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 stored user, got %d", len(users))
	}
}

func TestUserService_Create_Blank(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewUserService(db.Users())

	for _, name := range []string{"", "   "} {
		_, err := svc.Create(context.Background(), name)
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("Create(%q): expected ErrInvalidInput, got %v", name, err)
		}
	}
}

func TestUserService_List_Empty(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewUserService(db.Users())

	users, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(users) != 0 {
		t.Fatalf("expected no users, got %d", len(users))
	}
}
