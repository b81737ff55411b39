package handler

import (
	"log/slog"
	"net/http"

	"github.com/msomdec/exercise-tracker/internal/view"
)

var homeParams = view.HomeParams{
	Title:     "Exercise Tracker",
	UsersPath: "/api/users",
}

// HandleHome renders the landing page. It is mounted on "GET /", so any
// other unmatched path ends up here and gets a 404.
func HandleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := view.HomePage(homeParams).Render(r.Context(), w); err != nil {
		slog.Error("render home page", "error", err)
	}
}
