package kernel

import "time"

// Clock supplies the current time to handlers that stamp lastActivity,
// history entries and health colours.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

func NewSystemClock() SystemClock {
	return SystemClock{}
}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock always returns the same instant. Useful for jobs that must
// stamp a whole batch with one time and for tests.
type FixedClock struct {
	at time.Time
}

func NewFixedClock(at time.Time) FixedClock {
	return FixedClock{at: at}
}

func (c FixedClock) Now() time.Time {
	return c.at
}
