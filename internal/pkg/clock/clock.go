package clock

import "time"

// Clock abstracts the current instant so time-dependent code can be tested.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock.
type RealClock struct{}

func NewRealClock() Clock {
	return RealClock{}
}

func (RealClock) Now() time.Time {
	return time.Now()
}

// MockClock returns a fixed, adjustable instant.
type MockClock struct {
	time time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{time: t}
}

func (c *MockClock) Now() time.Time {
	return c.time
}

func (c *MockClock) Set(t time.Time) {
	c.time = t
}

func (c *MockClock) Advance(d time.Duration) {
	c.time = c.time.Add(d)
}
