package scheduler

import (
	"encoding"
	"fmt"
)

// Rating is the learner's self-reported recall quality for one review.
type Rating int

const (
	RatingAgain Rating = iota + 1 // failed to recall
	RatingHard                    // recalled with serious difficulty
	RatingGood                    // recalled after a hesitation
	RatingEasy                    // recalled without effort
)

var ratingNames = map[Rating]string{
	RatingAgain: "Again",
	RatingHard:  "Hard",
	RatingGood:  "Good",
	RatingEasy:  "Easy",
}

// eventTypeRatings maps the wire-format event types sent by the web client.
var eventTypeRatings = map[string]Rating{
	"AGAIN": RatingAgain,
	"HARD":  RatingHard,
	"GOOD":  RatingGood,
	"EASY":  RatingEasy,
}

var (
	_ fmt.Stringer           = Rating(0)
	_ encoding.TextMarshaler = Rating(0)
)

// RatingFromEventType converts a learning-event type ("AGAIN", "HARD",
// "GOOD", "EASY") into a Rating.
func RatingFromEventType(eventType string) (Rating, error) {
	r, ok := eventTypeRatings[eventType]
	if !ok {
		return 0, fmt.Errorf("%w: event type %q", ErrInvalidRating, eventType)
	}
	return r, nil
}

// IsValid reports whether r is one of the four recognized ratings.
func (r Rating) IsValid() bool {
	return r >= RatingAgain && r <= RatingEasy
}

func (r Rating) String() string {
	if name, ok := ratingNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Rating(%d)", int(r))
}

// MarshalText implements encoding.TextMarshaler.
func (r Rating) MarshalText() ([]byte, error) {
	if !r.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRating, int(r))
	}
	return []byte(ratingNames[r]), nil
}
