package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/msomdec/exercise-tracker/internal/domain"
	"github.com/msomdec/exercise-tracker/internal/service"
)

const (
	msgUserInvalid    = "Username already taken or invalid"
	msgUsersRetrieval = "Error retrieving users"
)

// UserHandler handles user registry HTTP requests.
type UserHandler struct {
	users *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// HandleCreate registers a user. Every failure, duplicate or otherwise,
// is reported as the same 400.
func (h *UserHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	fields, err := readFields(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, msgUserInvalid)
		return
	}

	user, err := h.users.Create(r.Context(), fields["username"])
	if err != nil {
		if !errors.Is(err, domain.ErrInvalidInput) && !errors.Is(err, domain.ErrDuplicateUsername) {
			slog.Error("create user", "error", err)
		}
		writeError(w, http.StatusBadRequest, msgUserInvalid)
		return
	}

	slog.Info("user created", "id", user.ID, "username", user.Username)
	writeJSON(w, http.StatusOK, toUserDTO(user))
}

// HandleList returns every registered user.
func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		slog.Error("list users", "error", err)
		writeError(w, http.StatusInternalServerError, msgUsersRetrieval)
		return
	}

	writeJSON(w, http.StatusOK, toUserDTOs(users))
}
