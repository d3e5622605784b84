package scheduler

import (
	"encoding"
	"fmt"
)

// State is the learning stage of a card. A card with no stored record is
// conceptually "new"; only the three states below are ever persisted.
type State int

const (
	StateLearning   State = iota + 1 // first exposure, short-step ladder
	StateReview                      // long-term review cycle
	StateRelearning                  // lapsed from Review, recovering
)

var stateNames = map[State]string{
	StateLearning:   "Learning",
	StateReview:     "Review",
	StateRelearning: "Relearning",
}

var stateByName = map[string]State{
	"Learning":   StateLearning,
	"Review":     StateReview,
	"Relearning": StateRelearning,
}

var (
	_ fmt.Stringer             = State(0)
	_ encoding.TextMarshaler   = State(0)
	_ encoding.TextUnmarshaler = (*State)(nil)
)

// StateFromString converts the stored string form ("Learning", "Review",
// "Relearning") into a State.
func StateFromString(name string) (State, error) {
	s, ok := stateByName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidState, name)
	}
	return s, nil
}

// IsValid reports whether s is one of the three persisted states.
func (s State) IsValid() bool {
	return s >= StateLearning && s <= StateRelearning
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidState, int(s))
	}
	return []byte(stateNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *State) UnmarshalText(text []byte) error {
	v, err := StateFromString(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
