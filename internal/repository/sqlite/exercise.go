package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/msomdec/exercise-tracker/internal/domain"
)

// exerciseRepo implements domain.ExerciseRepository using SQLite.
// Dates are stored as "YYYY-MM-DD" text so range filters compare lexically.
type exerciseRepo struct {
	db *sql.DB
}

func (r *exerciseRepo) Create(ctx context.Context, exercise *domain.Exercise) error {
	id := uuid.NewString()
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO exercises (id, user_id, description, duration, date, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, exercise.UserID, exercise.Description, exercise.Duration, exercise.Date.String(), now,
	)
	if err != nil {
		return fmt.Errorf("insert exercise: %w", err)
	}

	exercise.ID = id
	exercise.CreatedAt = now
	return nil
}

func (r *exerciseRepo) List(ctx context.Context, filter domain.LogFilter) ([]domain.Exercise, error) {
	var q strings.Builder
	q.WriteString(`SELECT id, user_id, description, duration, date, created_at
		 FROM exercises WHERE user_id = ?`)
	args := []any{filter.UserID}

	if !filter.From.IsZero() {
		q.WriteString(" AND date >= ?")
		args = append(args, filter.From.String())
	}
	if !filter.To.IsZero() {
		q.WriteString(" AND date <= ?")
		args = append(args, filter.To.String())
	}
	q.WriteString(" ORDER BY rowid")
	if filter.Limit > 0 {
		q.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	exercises := []domain.Exercise{}
	for rows.Next() {
		var (
			e    domain.Exercise
			date string
		)
		if err := rows.Scan(&e.ID, &e.UserID, &e.Description, &e.Duration, &date, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		e.Date, err = domain.ParseDay(date)
		if err != nil {
			return nil, fmt.Errorf("exercise %s: stored date: %w", e.ID, err)
		}
		exercises = append(exercises, e)
	}
	return exercises, rows.Err()
}
