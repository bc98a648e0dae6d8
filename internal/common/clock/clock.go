package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/fortune/internal/common/clock Clock
type Clock interface {
	Now() time.Time
}

// DefaultClock implements the Clock interface using the system clock
type DefaultClock struct{}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	return time.Now()
}

// Fixed is a Clock pinned to a single instant. Handy for tests and for
// replaying a payload against the time it was issued.
type Fixed struct {
	At time.Time
}

func (c Fixed) Now() time.Time {
	return c.At
}
