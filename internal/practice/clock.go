package practice

import "time"

//go:generate mockgen -source=clock.go -destination=../mocks/practice/mock_clock.go -package=mock_practice

// Clock supplies the authoritative server time for scheduling. Client
// timestamps on learning events are informational only.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock.
type SystemClock struct{}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
