// Package server provides the HTTP handlers for the learning API.
package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/tobue/vocapace/internal/practice"
)

//go:generate mockgen -source=learning_handler.go -destination=../mocks/server/mock_event_processor.go -package=mock_server

// EventProcessor processes a learner's batch of learning events.
type EventProcessor interface {
	ProcessEvents(ctx context.Context, learnerID int64, events []practice.LearningEvent) []practice.EventResult
}

// LearningEventsHandler accepts batches of learning events from the web
// client and returns one result per event.
type LearningEventsHandler struct {
	processor EventProcessor
	logger    *slog.Logger
}

// NewLearningEventsHandler creates a new LearningEventsHandler.
func NewLearningEventsHandler(processor EventProcessor, logger *slog.Logger) *LearningEventsHandler {
	return &LearningEventsHandler{processor: processor, logger: logger}
}

// ServeHTTP handles POST /api/learn/learning-events.
//
// The body must be a JSON array of {eventType, originalWord, timestamp}
// objects; anything else is a structural error and gets a 400. Per-event
// failures are reported inside the 200 response, never as a batch error.
func (h *LearningEventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	l := LearnerFromContext(r.Context())
	if l == nil {
		writeJSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	var events []practice.LearningEvent
	if err := json.Unmarshal(body, &events); err != nil {
		h.logger.Error("invalid request: learning events must be a list", "error", err)
		writeJSONError(w, http.StatusBadRequest, "learning_events must be a list")
		return
	}

	results := h.processor.ProcessEvents(r.Context(), l.ID, events)
	writeJSON(w, http.StatusOK, results)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
