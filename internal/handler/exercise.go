package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/msomdec/exercise-tracker/internal/domain"
	"github.com/msomdec/exercise-tracker/internal/service"
)

const (
	msgUserNotFound = "User not found"
	msgInvalidData  = "Invalid data"
)

// ExerciseHandler handles exercise logging and log query HTTP requests.
type ExerciseHandler struct {
	exercises *service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exercises *service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exercises: exercises}
}

// HandleAppend logs an exercise for the user in the path.
func (h *ExerciseHandler) HandleAppend(w http.ResponseWriter, r *http.Request) {
	// An unreadable body becomes empty input: the service still checks the
	// user first, so a missing user reports 404 and anything else 400.
	fields, err := readFields(w, r)
	if err != nil {
		fields = map[string]string{}
	}

	logged, err := h.exercises.Append(r.Context(), r.PathValue("id"), service.ExerciseInput{
		Description: fields["description"],
		Duration:    fields["duration"],
		Date:        fields["date"],
	})
	if err != nil {
		writeExerciseError(w, "append exercise", err)
		return
	}

	writeJSON(w, http.StatusOK, toExerciseDTO(logged))
}

// HandleLog returns the user's exercise log filtered by from, to and limit.
func (h *ExerciseHandler) HandleLog(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	log, err := h.exercises.Log(r.Context(), r.PathValue("id"), service.LogQuery{
		From:  q.Get("from"),
		To:    q.Get("to"),
		Limit: q.Get("limit"),
	})
	if err != nil {
		writeExerciseError(w, "query exercise log", err)
		return
	}

	writeJSON(w, http.StatusOK, toLogDTO(log))
}

// writeExerciseError maps a service error to 404 for a missing user and
// 400 for everything else, store failures included.
func writeExerciseError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, msgUserNotFound)
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, msgInvalidData)
	default:
		slog.Error(op, "error", err)
		writeError(w, http.StatusBadRequest, msgInvalidData)
	}
}
