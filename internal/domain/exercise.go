package domain

import (
	"context"
	"time"
)

// Exercise is a single logged exercise owned by a user.
type Exercise struct {
	ID          string
	UserID      string
	Description string
	Duration    int // minutes
	Date        Day
	CreatedAt   time.Time
}

// LogFilter selects a user's exercises. Zero From/To leave that side of
// the range open; Limit <= 0 means no limit.
type LogFilter struct {
	UserID string
	From   Day
	To     Day
	Limit  int
}

// ExerciseRepository defines persistence operations for exercises.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *Exercise) error
	// List returns exercises matching the filter in store order, with
	// both ends of the date range inclusive.
	List(ctx context.Context, filter LogFilter) ([]Exercise, error)
}
