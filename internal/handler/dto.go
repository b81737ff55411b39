package handler

import (
	"github.com/msomdec/exercise-tracker/internal/domain"
	"github.com/msomdec/exercise-tracker/internal/service"
)

// UserDTO is the JSON representation of a user.
type UserDTO struct {
	Username string `json:"username"`
	ID       string `json:"_id"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{Username: u.Username, ID: u.ID}
}

func toUserDTOs(users []domain.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i := range users {
		dtos[i] = toUserDTO(&users[i])
	}
	return dtos
}

// ExerciseDTO is the response to an exercise submission. ID is the
// owner's id, not the exercise's.
type ExerciseDTO struct {
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
	ID          string `json:"_id"`
}

func toExerciseDTO(l *service.LoggedExercise) ExerciseDTO {
	return ExerciseDTO{
		Username:    l.User.Username,
		Description: l.Exercise.Description,
		Duration:    l.Exercise.Duration,
		Date:        l.Exercise.Date.Display(),
		ID:          l.User.ID,
	}
}

// LogEntryDTO is one exercise inside a log response.
type LogEntryDTO struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// LogDTO is the JSON representation of a user's exercise log.
type LogDTO struct {
	Username string        `json:"username"`
	Count    int           `json:"count"`
	ID       string        `json:"_id"`
	Log      []LogEntryDTO `json:"log"`
}

func toLogDTO(l *service.ExerciseLog) LogDTO {
	entries := make([]LogEntryDTO, len(l.Exercises))
	for i, e := range l.Exercises {
		entries[i] = LogEntryDTO{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        e.Date.Display(),
		}
	}
	return LogDTO{
		Username: l.User.Username,
		Count:    l.Count(),
		ID:       l.User.ID,
		Log:      entries,
	}
}
