package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/msomdec/exercise-tracker/internal/domain"
)

// ExerciseInput holds the raw, unparsed fields of an exercise submission.
type ExerciseInput struct {
	Description string
	Duration    string
	Date        string // optional; empty means today
}

// LogQuery holds the raw, unparsed log filters. All fields are optional.
type LogQuery struct {
	From  string
	To    string
	Limit string
}

// LoggedExercise is a stored exercise together with its owner.
type LoggedExercise struct {
	User     *domain.User
	Exercise *domain.Exercise
}

// ExerciseLog is the result of a log query. Count is len(Exercises).
type ExerciseLog struct {
	User      *domain.User
	Exercises []domain.Exercise
}

// Count returns the number of exercises returned by the query.
func (l *ExerciseLog) Count() int {
	return len(l.Exercises)
}

// ExerciseService appends exercises to users and queries their logs.
type ExerciseService struct {
	users     domain.UserRepository
	exercises domain.ExerciseRepository
	now       func() time.Time
}

// NewExerciseService creates a new ExerciseService using the wall clock.
func NewExerciseService(users domain.UserRepository, exercises domain.ExerciseRepository) *ExerciseService {
	return NewExerciseServiceWithClock(users, exercises, time.Now)
}

// NewExerciseServiceWithClock creates an ExerciseService whose default
// exercise date comes from now.
func NewExerciseServiceWithClock(users domain.UserRepository, exercises domain.ExerciseRepository, now func() time.Time) *ExerciseService {
	return &ExerciseService{users: users, exercises: exercises, now: now}
}

// Append logs an exercise for the user. The user is looked up before any
// input is validated, so an unknown user always yields ErrNotFound.
func (s *ExerciseService) Append(ctx context.Context, userID string, in ExerciseInput) (*LoggedExercise, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	exercise, err := s.parseExercise(userID, in)
	if err != nil {
		return nil, err
	}

	if err := s.exercises.Create(ctx, exercise); err != nil {
		return nil, fmt.Errorf("create exercise: %w", err)
	}

	return &LoggedExercise{User: user, Exercise: exercise}, nil
}

// Log returns the user's exercises with date >= from and <= to, truncated
// to limit when limit is positive.
func (s *ExerciseService) Log(ctx context.Context, userID string, q LogQuery) (*ExerciseLog, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	filter, err := parseLogQuery(userID, q)
	if err != nil {
		return nil, err
	}

	exercises, err := s.exercises.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}

	return &ExerciseLog{User: user, Exercises: exercises}, nil
}

func (s *ExerciseService) parseExercise(userID string, in ExerciseInput) (*domain.Exercise, error) {
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return nil, fmt.Errorf("%w: description is required", domain.ErrInvalidInput)
	}

	duration, err := strconv.Atoi(strings.TrimSpace(in.Duration))
	if err != nil {
		return nil, fmt.Errorf("%w: duration must be a whole number of minutes", domain.ErrInvalidInput)
	}
	if duration < 0 {
		return nil, fmt.Errorf("%w: duration must not be negative", domain.ErrInvalidInput)
	}

	date := domain.NewDay(s.now())
	if strings.TrimSpace(in.Date) != "" {
		date, err = domain.ParseDay(in.Date)
		if err != nil {
			return nil, err
		}
	}

	return &domain.Exercise{
		UserID:      userID,
		Description: description,
		Duration:    duration,
		Date:        date,
	}, nil
}

func parseLogQuery(userID string, q LogQuery) (domain.LogFilter, error) {
	filter := domain.LogFilter{UserID: userID}

	var err error
	if q.From != "" {
		if filter.From, err = domain.ParseDay(q.From); err != nil {
			return domain.LogFilter{}, fmt.Errorf("from: %w", err)
		}
	}
	if q.To != "" {
		if filter.To, err = domain.ParseDay(q.To); err != nil {
			return domain.LogFilter{}, fmt.Errorf("to: %w", err)
		}
	}
	if q.Limit != "" {
		if filter.Limit, err = strconv.Atoi(strings.TrimSpace(q.Limit)); err != nil {
			return domain.LogFilter{}, fmt.Errorf("%w: limit must be an integer", domain.ErrInvalidInput)
		}
	}
	return filter, nil
}
