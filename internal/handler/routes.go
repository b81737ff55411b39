package handler

import (
	"net/http"

	"github.com/msomdec/exercise-tracker/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, users *service.UserService, exercises *service.ExerciseService, store Pinger) {
	userHandler := NewUserHandler(users)
	exerciseHandler := NewExerciseHandler(exercises)

	mux.HandleFunc("GET /healthz", HandleHealthz(store))
	mux.HandleFunc("GET /", HandleHome)

	mux.HandleFunc("POST /api/users", userHandler.HandleCreate)
	mux.HandleFunc("GET /api/users", userHandler.HandleList)
	mux.HandleFunc("POST /api/users/{id}/exercises", exerciseHandler.HandleAppend)
	mux.HandleFunc("GET /api/users/{id}/logs", exerciseHandler.HandleLog)
}
