package practice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tobue/vocapace/internal/scheduler"
	"github.com/tobue/vocapace/internal/word"
)

// LearningEvent is one review submitted by the client. Timestamp is the
// client's clock in milliseconds and is informational only; the server clock
// drives scheduling.
type LearningEvent struct {
	EventType    string `json:"eventType"`
	OriginalWord string `json:"originalWord"`
	Timestamp    int64  `json:"timestamp"`
}

// EventResult is the per-event outcome, returned in input order.
type EventResult struct {
	OriginalWord string `json:"originalWord"`
	Success      bool   `json:"success"`
	NewDueDate   string `json:"newDueDate,omitempty"`
	Error        string `json:"error,omitempty"`
}

// Reviewer turns batches of learning events into persisted practice updates.
// Events are processed independently: one bad event never aborts the batch.
type Reviewer struct {
	scheduler *scheduler.Scheduler
	practices Repository
	words     word.Repository
	clock     Clock
	logger    *slog.Logger
}

// NewReviewer creates a Reviewer.
func NewReviewer(
	sched *scheduler.Scheduler,
	practices Repository,
	words word.Repository,
	clock Clock,
	logger *slog.Logger,
) *Reviewer {
	return &Reviewer{
		scheduler: sched,
		practices: practices,
		words:     words,
		clock:     clock,
		logger:    logger,
	}
}

// ProcessEvents processes the learner's events in order and returns one
// result per event. Failures (unknown word, invalid rating, storage errors)
// are recorded in the matching result; already-persisted updates for other
// events are never rolled back.
func (r *Reviewer) ProcessEvents(ctx context.Context, learnerID int64, events []LearningEvent) []EventResult {
	r.logger.Info("processing learning events", "learner_id", learnerID, "count", len(events))

	wordsByOriginal, lookupErr := r.resolveWords(ctx, events)

	results := make([]EventResult, 0, len(events))
	for _, event := range events {
		results = append(results, r.processEvent(ctx, learnerID, event, wordsByOriginal, lookupErr))
	}
	return results
}

// resolveWords resolves every distinct word in the batch once, so the same
// surface form always maps to the same row within a batch.
func (r *Reviewer) resolveWords(ctx context.Context, events []LearningEvent) (map[string]word.Word, error) {
	originals := make([]string, 0, len(events))
	seen := make(map[string]bool, len(events))
	for _, event := range events {
		if event.OriginalWord == "" || seen[event.OriginalWord] {
			continue
		}
		seen[event.OriginalWord] = true
		originals = append(originals, event.OriginalWord)
	}

	words, err := r.words.FindByOriginalWords(ctx, originals)
	if err != nil {
		r.logger.Error("word lookup failed", "error", err)
		return nil, err
	}
	return words, nil
}

func (r *Reviewer) processEvent(
	ctx context.Context,
	learnerID int64,
	event LearningEvent,
	wordsByOriginal map[string]word.Word,
	lookupErr error,
) EventResult {
	failure := func(msg string) EventResult {
		return EventResult{OriginalWord: event.OriginalWord, Success: false, Error: msg}
	}

	rating, err := scheduler.RatingFromEventType(event.EventType)
	if err != nil {
		r.logger.Error("invalid event type", "event_type", event.EventType, "word", event.OriginalWord)
		return failure(fmt.Sprintf("invalid event type: %s", event.EventType))
	}

	if event.OriginalWord == "" {
		return failure("missing originalWord")
	}
	if lookupErr != nil {
		return failure(fmt.Sprintf("word lookup failed: %s", lookupErr))
	}
	w, ok := wordsByOriginal[event.OriginalWord]
	if !ok {
		r.logger.Error("word not found", "word", event.OriginalWord)
		return failure("word not found")
	}

	now := r.clock.Now().UTC().Truncate(time.Second)

	// reviewErr is set when the scheduler rejects the stored state; the
	// record is still persisted as it stood before the review.
	var reviewErr error
	persisted, err := r.practices.ReviewUpdate(ctx, learnerID, w.ID,
		func(existing *VocabPractice) (*VocabPractice, error) {
			p := existing
			var card scheduler.Card
			if p == nil {
				p = &VocabPractice{}
				card = scheduler.NewCard(now)
				p.SetCard(card)
			} else {
				var err error
				card, err = p.Card()
				if err != nil {
					return nil, err
				}
			}

			newCard, _, err := r.scheduler.ReviewCard(card, rating, now)
			if err != nil {
				if existing != nil {
					// Row already holds the pre-review state; abort the write.
					return nil, err
				}
				// First-ever review: keep the fresh default on record.
				reviewErr = err
				return p, nil
			}

			// Failed recalls resurface immediately instead of waiting out
			// the relearning step.
			if rating == scheduler.RatingAgain {
				newCard.Due = now
			}

			p.SetCard(newCard)
			return p, nil
		},
	)
	if err != nil {
		r.logger.Error("review update failed", "word", event.OriginalWord, "error", err)
		return failure(fmt.Sprintf("error processing learning event: %s", err))
	}
	if reviewErr != nil {
		r.logger.Error("card review failed", "word", event.OriginalWord, "error", reviewErr)
		return failure(fmt.Sprintf("error processing learning event: %s", reviewErr))
	}

	r.logger.Info("processed learning event",
		"word", event.OriginalWord, "rating", rating.String(), "due", persisted.Due)

	result := EventResult{OriginalWord: event.OriginalWord, Success: true}
	if persisted.Due != nil {
		result.NewDueDate = persisted.Due.UTC().Format(time.RFC3339)
	}
	return result
}
