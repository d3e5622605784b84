package scheduler

import "time"

// Card is the memory state of one learner/word pair as seen by the
// scheduler. Pointer fields are nil until the first review assigns them.
// Cards carry no identity; the caller keys them by (learner, word).
type Card struct {
	State      State
	Step       *int       // nil when State is Review
	Stability  *float64   // estimated days until retrievability decays to 0.9
	Difficulty *float64   // intrinsic hardness, clamped to [1, 10]
	Due        time.Time  // when the card is next eligible for review
	LastReview *time.Time // nil before the first review
}

// NewCard returns a fresh card for a word with no stored practice record:
// Learning at step 0, due immediately, no memory parameters yet.
func NewCard(now time.Time) Card {
	step := 0
	return Card{
		State: StateLearning,
		Step:  &step,
		Due:   now,
	}
}

// clone returns a deep copy so ReviewCard never mutates its input.
func (c Card) clone() Card {
	out := c
	if c.Step != nil {
		v := *c.Step
		out.Step = &v
	}
	if c.Stability != nil {
		v := *c.Stability
		out.Stability = &v
	}
	if c.Difficulty != nil {
		v := *c.Difficulty
		out.Difficulty = &v
	}
	if c.LastReview != nil {
		v := *c.LastReview
		out.LastReview = &v
	}
	return out
}

func (c *Card) setStability(s float64) {
	c.Stability = &s
}

func (c *Card) setDifficulty(d float64) {
	c.Difficulty = &d
}

func (c *Card) setStep(step int) {
	c.Step = &step
}

func (c *Card) clearStep() {
	c.Step = nil
}

// ReviewLog records the timestamp and rating of one processed review.
type ReviewLog struct {
	Rating     Rating
	ReviewedAt time.Time
}
