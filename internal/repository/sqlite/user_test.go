package sqlite_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/msomdec/exercise-tracker/internal/domain"
	"github.com/msomdec/exercise-tracker/internal/repository/sqlite"
)

func TestUserRepository_Create(t *testing.T) {
	db := newTestDB(t)
	repo := db.Users()
	ctx := context.Background()

	user := &domain.User{Username: "alice"}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if user.ID == "" {
		t.Fatal("expected user ID to be set after create")
	}
	if user.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}
}

func TestUserRepository_Create_DuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	repo := db.Users()
	ctx := context.Background()

	if err := repo.Create(ctx, &domain.User{Username: "dup"}); err != nil {
		t.Fatalf("Create first: %v", err)
	}

	err := repo.Create(ctx, &domain.User{Username: "dup"})
	if !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}

	users, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 stored user, got %d", len(users))
	}
}

func TestUserRepository_GetByID(t *testing.T) {
	db := newTestDB(t)
	repo := db.Users()
	ctx := context.Background()

	user := &domain.User{Username: "byid"}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	found, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if found.Username != "byid" {
		t.Fatalf("expected username %q, got %q", "byid", found.Username)
	}
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := db.Users().GetByID(context.Background(), "5f1d7f3e2c9a4b0012345678")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepository_List_InsertionOrder(t *testing.T) {
	db := newTestDB(t)
	repo := db.Users()
	ctx := context.Background()

	names := []string{"zed", "amy", "mike"}
	for _, n := range names {
		if err := repo.Create(ctx, &domain.User{Username: n}); err != nil {
			t.Fatalf("Create %s: %v", n, err)
		}
	}

	users, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(users) != len(names) {
		t.Fatalf("expected %d users, got %d", len(names), len(users))
	}
	for i, u := range users {
		if u.Username != names[i] {
			t.Fatalf("position %d: expected %q, got %q", i, names[i], u.Username)
		}
	}
}

func TestUserRepository_List_QueryError(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer sqlDB.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, created_at FROM users")).
		WillReturnError(errors.New("database is locked"))

	db := &sqlite.DB{SQLDB: sqlDB}
	if _, err := db.Users().List(context.Background()); err == nil {
		t.Fatal("expected error from List")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserRepository_Create_ExecError(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer sqlDB.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(errors.New("disk I/O error"))

	db := &sqlite.DB{SQLDB: sqlDB}
	err = db.Users().Create(context.Background(), &domain.User{Username: "io"})
	if err == nil || errors.Is(err, domain.ErrDuplicateUsername) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}
