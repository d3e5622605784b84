package scheduler

import "errors"

// Sentinel errors returned by the scheduler package.
// Check with errors.Is, e.g. errors.Is(err, scheduler.ErrInvalidRating).
var (
	ErrInvalidRating  = errors.New("scheduler: invalid rating")
	ErrInvalidState   = errors.New("scheduler: invalid state")
	ErrInvalidWeights = errors.New("scheduler: weights out of bounds")
	ErrCorruptCard    = errors.New("scheduler: card state is inconsistent")
)
