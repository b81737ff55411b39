package domain

import (
	"context"
	"time"
)

// User is a registered identity. Users are never updated or deleted.
type User struct {
	ID        string
	Username  string
	CreatedAt time.Time
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// Create stores the user and sets its ID. A taken username fails
	// with ErrDuplicateUsername.
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	// List returns every user in store order.
	List(ctx context.Context) ([]User, error)
}
