// Package scheduler implements the FSRS v6 spaced-repetition memory model:
// given a card's current state and a recall rating, it computes the next
// state and due timestamp. It performs no I/O and, for a fixed (card,
// rating, now), always produces the same output.
package scheduler

import (
	"fmt"
	"time"
)

// Config configures a Scheduler. Zero-value fields are filled with the
// library defaults by New.
type Config struct {
	Weights          [21]float64     // zero array: DefaultWeights
	DesiredRetention float64         // zero: 0.9
	LearningSteps    []time.Duration // nil: [1m, 10m]; empty: no steps
	RelearningSteps  []time.Duration // nil: [10m]; empty: no steps
	MaximumInterval  int             // days; zero: 36500
}

// Scheduler computes review transitions. Safe for concurrent use.
type Scheduler struct {
	model            model
	desiredRetention float64
	learningSteps    []time.Duration
	relearningSteps  []time.Duration
	maximumInterval  int
}

// New creates a Scheduler from cfg, filling defaults and validating bounds.
func New(cfg Config) (*Scheduler, error) {
	weights := cfg.Weights
	if weights == [21]float64{} {
		weights = DefaultWeights
	}
	if err := ValidateWeights(weights); err != nil {
		return nil, err
	}

	dr := cfg.DesiredRetention
	if dr == 0 {
		dr = 0.9
	}
	if dr < 0 || dr > 1 {
		return nil, fmt.Errorf("scheduler: desired retention %f out of range (0, 1]", dr)
	}

	maxIvl := cfg.MaximumInterval
	if maxIvl == 0 {
		maxIvl = 36500
	}
	if maxIvl < 0 {
		return nil, fmt.Errorf("scheduler: maximum interval %d must be positive", maxIvl)
	}

	ls := cfg.LearningSteps
	if ls == nil {
		ls = []time.Duration{time.Minute, 10 * time.Minute}
	}
	rs := cfg.RelearningSteps
	if rs == nil {
		rs = []time.Duration{10 * time.Minute}
	}

	return &Scheduler{
		model:            newModel(weights),
		desiredRetention: dr,
		learningSteps:    ls,
		relearningSteps:  rs,
		maximumInterval:  maxIvl,
	}, nil
}

// ReviewCard processes a review of card at now and returns the updated card
// and a review log. The input card is not mutated. It returns an error for
// a rating outside Again..Easy or a card whose stored state is inconsistent
// (a non-fresh card without memory parameters).
//
// Due timestamps are truncated to whole seconds, matching the precision the
// rest of the system persists.
func (s *Scheduler) ReviewCard(card Card, rating Rating, now time.Time) (Card, ReviewLog, error) {
	if !rating.IsValid() {
		return Card{}, ReviewLog{}, fmt.Errorf("%w: %d", ErrInvalidRating, int(rating))
	}
	if card.Stability == nil && card.LastReview != nil {
		return Card{}, ReviewLog{}, fmt.Errorf("%w: reviewed card has no stability", ErrCorruptCard)
	}
	if card.Stability != nil && card.Difficulty == nil {
		return Card{}, ReviewLog{}, fmt.Errorf("%w: card has stability but no difficulty", ErrCorruptCard)
	}
	if !card.State.IsValid() {
		return Card{}, ReviewLog{}, fmt.Errorf("%w: state %d", ErrCorruptCard, int(card.State))
	}

	c := card.clone()
	now = now.UTC().Truncate(time.Second)

	// Elapsed time is clamped to zero so clock skew between submissions
	// never produces negative decay.
	var elapsedDays float64
	if c.LastReview != nil {
		elapsedDays = now.Sub(*c.LastReview).Hours() / 24.0
		if elapsedDays < 0 {
			elapsedDays = 0
		}
	}

	s.updateMemory(&c, rating, elapsedDays)

	interval := s.transition(&c, rating, s.stepsForState(c.State))

	c.Due = now.Add(interval).Truncate(time.Second)
	c.LastReview = &now

	return c, ReviewLog{Rating: rating, ReviewedAt: now}, nil
}

// Retrievability returns the probability of recall for card at now, or 0 if
// the card has never been reviewed.
func (s *Scheduler) Retrievability(card Card, now time.Time) float64 {
	if card.LastReview == nil || card.Stability == nil {
		return 0
	}
	elapsed := now.Sub(*card.LastReview).Hours() / 24.0
	if elapsed < 0 {
		elapsed = 0
	}
	return s.model.retrievability(elapsed, *card.Stability)
}

// updateMemory updates stability and difficulty for the review.
func (s *Scheduler) updateMemory(c *Card, rating Rating, elapsedDays float64) {
	if c.Stability == nil {
		// First review: initialize from the rating-dependent base tables.
		c.setStability(s.model.initStability(rating))
		c.setDifficulty(s.model.initDifficulty(rating, true))
		return
	}

	stability := *c.Stability
	difficulty := *c.Difficulty

	if elapsedDays < 1 {
		c.setStability(s.model.shortTermStability(stability, rating))
	} else {
		r := s.model.retrievability(elapsedDays, stability)
		c.setStability(s.model.nextStability(difficulty, stability, r, rating))
	}
	c.setDifficulty(s.model.nextDifficulty(difficulty, rating))
}

func (s *Scheduler) stepsForState(state State) []time.Duration {
	switch state {
	case StateLearning:
		return s.learningSteps
	case StateRelearning:
		return s.relearningSteps
	default:
		return nil
	}
}

// transition applies the state machine and returns the scheduling interval.
func (s *Scheduler) transition(c *Card, rating Rating, steps []time.Duration) time.Duration {
	switch c.State {
	case StateLearning, StateRelearning:
		return s.transitionLearning(c, rating, steps)
	default:
		return s.transitionReview(c, rating)
	}
}

// transitionLearning walks the short-step ladder: Again resets to step 0,
// Hard repeats (with an averaged interval at step 0), Good advances and
// graduates past the last step, Easy graduates immediately.
func (s *Scheduler) transitionLearning(c *Card, rating Rating, steps []time.Duration) time.Duration {
	step := 0
	if c.Step != nil {
		step = *c.Step
	}

	// No steps configured, or a stored step beyond the ladder: graduate.
	if len(steps) == 0 || (step >= len(steps) && rating != RatingAgain) {
		return s.graduate(c)
	}

	switch rating {
	case RatingAgain:
		c.setStep(0)
		return steps[0]

	case RatingHard:
		if step == 0 && len(steps) == 1 {
			return time.Duration(float64(steps[0]) * 1.5)
		}
		if step == 0 && len(steps) >= 2 {
			return (steps[0] + steps[1]) / 2
		}
		return steps[step]

	case RatingGood:
		nextStep := step + 1
		if nextStep >= len(steps) {
			return s.graduate(c)
		}
		c.setStep(nextStep)
		return steps[nextStep]

	default: // Easy
		return s.graduate(c)
	}
}

// transitionReview handles the long-term cycle: a lapse drops the card into
// the relearning ladder, success reschedules from the updated stability.
func (s *Scheduler) transitionReview(c *Card, rating Rating) time.Duration {
	if rating == RatingAgain && len(s.relearningSteps) > 0 {
		c.State = StateRelearning
		c.setStep(0)
		return s.relearningSteps[0]
	}

	c.clearStep()
	days := s.model.nextInterval(*c.Stability, s.desiredRetention, s.maximumInterval)
	return time.Duration(days) * 24 * time.Hour
}

// graduate moves a card from a step ladder into the Review cycle.
func (s *Scheduler) graduate(c *Card) time.Duration {
	c.State = StateReview
	c.clearStep()
	days := s.model.nextInterval(*c.Stability, s.desiredRetention, s.maximumInterval)
	return time.Duration(days) * 24 * time.Hour
}
