package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reviewTime = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func mustScheduler(t *testing.T, cfg Config) *Scheduler {
	t.Helper()
	s, err := New(cfg)
	require.NoError(t, err)
	return s
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "defaults from zero config",
		},
		{
			name: "custom retention and interval",
			cfg:  Config{DesiredRetention: 0.85, MaximumInterval: 365},
		},
		{
			name: "weight below lower bound",
			cfg: func() Config {
				cfg := Config{Weights: DefaultWeights}
				cfg.Weights[0] = -1.0
				return cfg
			}(),
			wantErr: true,
		},
		{
			name:    "retention above one",
			cfg:     Config{DesiredRetention: 1.5},
			wantErr: true,
		},
		{
			name:    "negative maximum interval",
			cfg:     Config{MaximumInterval: -1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, got)
		})
	}
}

func TestReviewCard_FirstReview(t *testing.T) {
	tests := []struct {
		name      string
		rating    Rating
		wantState State
		wantStep  *int
		wantDue   time.Time
	}{
		{
			name:      "Again stays at step 0",
			rating:    RatingAgain,
			wantState: StateLearning,
			wantStep:  intPtr(0),
			wantDue:   reviewTime.Add(time.Minute),
		},
		{
			name:      "Hard repeats step 0 with averaged interval",
			rating:    RatingHard,
			wantState: StateLearning,
			wantStep:  intPtr(0),
			wantDue:   reviewTime.Add((time.Minute + 10*time.Minute) / 2),
		},
		{
			name:      "Good advances to step 1",
			rating:    RatingGood,
			wantState: StateLearning,
			wantStep:  intPtr(1),
			wantDue:   reviewTime.Add(10 * time.Minute),
		},
		{
			name:      "Easy graduates to Review",
			rating:    RatingEasy,
			wantState: StateReview,
			wantStep:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustScheduler(t, Config{})
			got, log, err := s.ReviewCard(NewCard(reviewTime), tt.rating, reviewTime)
			require.NoError(t, err)

			assert.Equal(t, tt.wantState, got.State)
			assert.Equal(t, tt.wantStep, got.Step)
			require.NotNil(t, got.Stability)
			require.NotNil(t, got.Difficulty)
			assert.Greater(t, *got.Stability, 0.0)
			assert.GreaterOrEqual(t, *got.Difficulty, 1.0)
			assert.LessOrEqual(t, *got.Difficulty, 10.0)
			require.NotNil(t, got.LastReview)
			assert.Equal(t, reviewTime, *got.LastReview)
			assert.Equal(t, reviewTime, log.ReviewedAt)
			assert.Equal(t, tt.rating, log.Rating)

			if !tt.wantDue.IsZero() {
				assert.Equal(t, tt.wantDue, got.Due)
			} else {
				// Graduation schedules at least a full day ahead.
				assert.True(t, got.Due.After(reviewTime.Add(23*time.Hour)))
			}
		})
	}
}

func TestReviewCard_GoodGraduatesAfterLastStep(t *testing.T) {
	s := mustScheduler(t, Config{})

	card, _, err := s.ReviewCard(NewCard(reviewTime), RatingGood, reviewTime)
	require.NoError(t, err)
	require.Equal(t, StateLearning, card.State)

	second := reviewTime.Add(10 * time.Minute)
	card, _, err = s.ReviewCard(card, RatingGood, second)
	require.NoError(t, err)

	assert.Equal(t, StateReview, card.State)
	assert.Nil(t, card.Step)
	assert.True(t, card.Due.After(second), "graduated card must be due in the future")
}

func TestReviewCard_EmptyStepsGraduateImmediately(t *testing.T) {
	s := mustScheduler(t, Config{LearningSteps: []time.Duration{}, RelearningSteps: []time.Duration{}})

	card, _, err := s.ReviewCard(NewCard(reviewTime), RatingGood, reviewTime)
	require.NoError(t, err)

	assert.Equal(t, StateReview, card.State)
	assert.Nil(t, card.Step)
}

func TestReviewCard_ReviewStateLapsesToRelearning(t *testing.T) {
	s := mustScheduler(t, Config{})
	card := reviewStateCard(t, s)

	next := card.Due.Add(24 * time.Hour)
	lapsed, _, err := s.ReviewCard(card, RatingAgain, next)
	require.NoError(t, err)

	assert.Equal(t, StateRelearning, lapsed.State)
	require.NotNil(t, lapsed.Step)
	assert.Equal(t, 0, *lapsed.Step)
	assert.Equal(t, next.Add(10*time.Minute), lapsed.Due)
	assert.Less(t, *lapsed.Stability, *card.Stability, "a lapse must shrink stability")
}

func TestReviewCard_RelearningRecoversToReview(t *testing.T) {
	s := mustScheduler(t, Config{})
	card := reviewStateCard(t, s)

	next := card.Due.Add(24 * time.Hour)
	lapsed, _, err := s.ReviewCard(card, RatingAgain, next)
	require.NoError(t, err)
	require.Equal(t, StateRelearning, lapsed.State)

	recovered, _, err := s.ReviewCard(lapsed, RatingGood, lapsed.Due)
	require.NoError(t, err)
	assert.Equal(t, StateReview, recovered.State)
	assert.Nil(t, recovered.Step)
	assert.True(t, recovered.Due.After(lapsed.Due))
}

func TestReviewCard_SuccessDueIsAfterLastReview(t *testing.T) {
	for _, rating := range []Rating{RatingHard, RatingGood, RatingEasy} {
		t.Run(rating.String(), func(t *testing.T) {
			s := mustScheduler(t, Config{})
			card := reviewStateCard(t, s)

			next := card.Due.Add(48 * time.Hour)
			got, _, err := s.ReviewCard(card, rating, next)
			require.NoError(t, err)

			assert.Equal(t, StateReview, got.State)
			assert.True(t, got.Due.After(*got.LastReview))
		})
	}
}

func TestReviewCard_DifficultyStaysBounded(t *testing.T) {
	s := mustScheduler(t, Config{})

	ratings := []Rating{
		RatingGood, RatingAgain, RatingAgain, RatingEasy, RatingEasy,
		RatingEasy, RatingAgain, RatingHard, RatingGood, RatingAgain,
	}

	card := NewCard(reviewTime)
	now := reviewTime
	for _, rating := range ratings {
		var err error
		card, _, err = s.ReviewCard(card, rating, now)
		require.NoError(t, err)

		require.NotNil(t, card.Difficulty)
		assert.GreaterOrEqual(t, *card.Difficulty, 1.0)
		assert.LessOrEqual(t, *card.Difficulty, 10.0)
		require.NotNil(t, card.Stability)
		assert.Greater(t, *card.Stability, 0.0)

		now = now.Add(36 * time.Hour)
	}
}

func TestReviewCard_Deterministic(t *testing.T) {
	s := mustScheduler(t, Config{})
	card := reviewStateCard(t, s)
	next := card.Due.Add(24 * time.Hour)

	first, firstLog, err := s.ReviewCard(card, RatingGood, next)
	require.NoError(t, err)
	second, secondLog, err := s.ReviewCard(card, RatingGood, next)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, firstLog, secondLog)
}

func TestReviewCard_ClockSkewDoesNotBreakScheduling(t *testing.T) {
	s := mustScheduler(t, Config{})
	card := reviewStateCard(t, s)

	// A review timestamp before last_review must behave like an immediate
	// re-review, never produce negative stability or a past due date.
	skewed := card.LastReview.Add(-2 * time.Hour)
	got, _, err := s.ReviewCard(card, RatingGood, skewed)
	require.NoError(t, err)

	assert.Greater(t, *got.Stability, 0.0)
	assert.True(t, got.Due.After(skewed))
}

func TestReviewCard_TruncatesDueToWholeSeconds(t *testing.T) {
	s := mustScheduler(t, Config{})
	now := reviewTime.Add(123456789 * time.Nanosecond)

	got, log, err := s.ReviewCard(NewCard(now), RatingGood, now)
	require.NoError(t, err)

	assert.Zero(t, got.Due.Nanosecond())
	assert.Zero(t, log.ReviewedAt.Nanosecond())
}

func TestReviewCard_Errors(t *testing.T) {
	s := mustScheduler(t, Config{})

	t.Run("invalid rating", func(t *testing.T) {
		_, _, err := s.ReviewCard(NewCard(reviewTime), Rating(9), reviewTime)
		assert.ErrorIs(t, err, ErrInvalidRating)
	})

	t.Run("reviewed card without stability", func(t *testing.T) {
		last := reviewTime
		card := Card{State: StateReview, LastReview: &last}
		_, _, err := s.ReviewCard(card, RatingGood, reviewTime)
		assert.ErrorIs(t, err, ErrCorruptCard)
	})

	t.Run("invalid stored state", func(t *testing.T) {
		card := NewCard(reviewTime)
		card.State = State(42)
		_, _, err := s.ReviewCard(card, RatingGood, reviewTime)
		assert.ErrorIs(t, err, ErrCorruptCard)
	})
}

func TestReviewCard_DoesNotMutateInput(t *testing.T) {
	s := mustScheduler(t, Config{})
	card := NewCard(reviewTime)
	originalStep := *card.Step

	_, _, err := s.ReviewCard(card, RatingGood, reviewTime)
	require.NoError(t, err)

	assert.Equal(t, originalStep, *card.Step)
	assert.Nil(t, card.Stability)
}

func TestRetrievability(t *testing.T) {
	s := mustScheduler(t, Config{})

	t.Run("zero before first review", func(t *testing.T) {
		assert.Zero(t, s.Retrievability(NewCard(reviewTime), reviewTime))
	})

	t.Run("decays over elapsed time", func(t *testing.T) {
		card := reviewStateCard(t, s)
		early := s.Retrievability(card, *card.LastReview)
		late := s.Retrievability(card, card.LastReview.Add(30*24*time.Hour))

		assert.InDelta(t, 1.0, early, 0.001)
		assert.Less(t, late, early)
		assert.Greater(t, late, 0.0)
	})
}

// reviewStateCard builds a card that has graduated into the Review state.
func reviewStateCard(t *testing.T, s *Scheduler) Card {
	t.Helper()
	card, _, err := s.ReviewCard(NewCard(reviewTime), RatingEasy, reviewTime)
	require.NoError(t, err)
	require.Equal(t, StateReview, card.State)
	return card
}

func intPtr(v int) *int {
	return &v
}
