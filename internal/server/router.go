package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tobue/vocapace/internal/learner"
)

// NewRouter wires the learning API routes. Everything under /api/learn
// requires an authenticated learner.
func NewRouter(
	learningEvents *LearningEventsHandler,
	wordProgress *WordProgressHandler,
	learners learner.Repository,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger(logger))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/learn", func(r chi.Router) {
		r.Use(Authenticate(learners, logger))
		r.Post("/learning-events", learningEvents.ServeHTTP)
		r.Get("/word-progress", wordProgress.ServeHTTP)
	})

	return r
}
