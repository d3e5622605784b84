package practice

import (
	"fmt"
	"time"

	"github.com/tobue/vocapace/internal/scheduler"
)

// VocabPractice is the per-(learner, word) spaced-repetition record.
// The pair is unique; state is stored as the scheduler's string form so the
// table stays readable and stable across model versions.
type VocabPractice struct {
	ID            int64      `db:"id"`
	LearnerID     int64      `db:"learner_id"`
	WordID        int64      `db:"word_id"`
	State         string     `db:"state"`
	Step          *int       `db:"step"`
	Stability     *float64   `db:"stability"`
	Difficulty    *float64   `db:"difficulty"`
	Due           *time.Time `db:"due"`
	LastReview    *time.Time `db:"last_review"`
	IsBlacklisted bool       `db:"is_blacklisted"`
	IsFavorite    bool       `db:"is_favorite"`
	Updated       time.Time  `db:"updated"`
}

// Card converts the stored record into a scheduler card.
func (p *VocabPractice) Card() (scheduler.Card, error) {
	state, err := scheduler.StateFromString(p.State)
	if err != nil {
		return scheduler.Card{}, fmt.Errorf("practice record %d: %w", p.ID, err)
	}

	card := scheduler.Card{
		State:      state,
		Step:       p.Step,
		Stability:  p.Stability,
		Difficulty: p.Difficulty,
		LastReview: p.LastReview,
	}
	if p.Due != nil {
		card.Due = *p.Due
	}
	return card, nil
}

// SetCard writes the scheduler card's fields back onto the record.
func (p *VocabPractice) SetCard(card scheduler.Card) {
	p.State = card.State.String()
	p.Step = card.Step
	p.Stability = card.Stability
	p.Difficulty = card.Difficulty
	due := card.Due
	p.Due = &due
	p.LastReview = card.LastReview
}
