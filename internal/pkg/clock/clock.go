package clock

import "time"

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return RealClock{}
}

// Now is always UTC so generated order numbers do not depend on the host zone.
func (RealClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock reports a settable instant; tests advance it to cross deadlines.
type FixedClock struct {
	now time.Time
}

func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{now: t.UTC()}
}

func (c *FixedClock) Now() time.Time { return c.now }

func (c *FixedClock) Set(t time.Time) { c.now = t.UTC() }

func (c *FixedClock) Advance(d time.Duration) { c.now = c.now.Add(d) }
