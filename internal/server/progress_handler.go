package server

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/tobue/vocapace/internal/practice"
	"github.com/tobue/vocapace/internal/scheduler"
	"github.com/tobue/vocapace/internal/word"
)

// WordProgress is the learner's practice state for one word. Words never
// practiced report state "New" with no scheduling fields.
type WordProgress struct {
	OriginalWord   string   `json:"originalWord"`
	State          string   `json:"state"`
	Due            *string  `json:"due,omitempty"`
	Stability      *float64 `json:"stability,omitempty"`
	Difficulty     *float64 `json:"difficulty,omitempty"`
	Retrievability *float64 `json:"retrievability,omitempty"`
	IsFavorite     bool     `json:"isFavorite"`
	IsBlacklisted  bool     `json:"isBlacklisted"`
}

// WordProgressHandler reports per-word practice state so the client can
// annotate snippet vocabulary with the learner's progress.
type WordProgressHandler struct {
	words     word.Repository
	practices practice.Repository
	scheduler *scheduler.Scheduler
	clock     practice.Clock
	logger    *slog.Logger
}

// NewWordProgressHandler creates a new WordProgressHandler.
func NewWordProgressHandler(
	words word.Repository,
	practices practice.Repository,
	sched *scheduler.Scheduler,
	clock practice.Clock,
	logger *slog.Logger,
) *WordProgressHandler {
	return &WordProgressHandler{
		words:     words,
		practices: practices,
		scheduler: sched,
		clock:     clock,
		logger:    logger,
	}
}

// ServeHTTP handles GET /api/learn/word-progress?words=a,b,c.
func (h *WordProgressHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	l := LearnerFromContext(r.Context())
	if l == nil {
		writeJSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	param := r.URL.Query().Get("words")
	if param == "" {
		writeJSONError(w, http.StatusBadRequest, "words query parameter is required")
		return
	}
	var originals []string
	for _, part := range strings.Split(param, ",") {
		if part = strings.TrimSpace(part); part != "" {
			originals = append(originals, part)
		}
	}

	wordsByOriginal, err := h.words.FindByOriginalWords(r.Context(), originals)
	if err != nil {
		h.logger.Error("word lookup failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}

	wordIDs := make([]int64, 0, len(wordsByOriginal))
	for _, wrd := range wordsByOriginal {
		wordIDs = append(wordIDs, wrd.ID)
	}
	practices, err := h.practices.GetForWords(r.Context(), l.ID, wordIDs)
	if err != nil {
		h.logger.Error("practice lookup failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}

	now := h.clock.Now()
	progress := make([]WordProgress, 0, len(originals))
	for _, original := range originals {
		wrd, known := wordsByOriginal[original]
		if !known {
			continue
		}

		entry := WordProgress{OriginalWord: original, State: "New"}
		if p, practiced := practices[wrd.ID]; practiced {
			entry.State = p.State
			entry.Stability = p.Stability
			entry.Difficulty = p.Difficulty
			entry.IsFavorite = p.IsFavorite
			entry.IsBlacklisted = p.IsBlacklisted
			if p.Due != nil {
				due := p.Due.UTC().Format(time.RFC3339)
				entry.Due = &due
			}
			if card, err := p.Card(); err == nil {
				retrievability := h.scheduler.Retrievability(card, now)
				entry.Retrievability = &retrievability
			}
		}
		progress = append(progress, entry)
	}

	writeJSON(w, http.StatusOK, progress)
}
