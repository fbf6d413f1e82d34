package game

import "time"

// MockClock is a controllable time source for tests. Sleep advances the
// mocked time instantly, so timed waits resolve without real delay.
type MockClock struct {
	current time.Time
}

// NewMockClock creates a mock clock at the given start time.
func NewMockClock(start time.Time) *MockClock {
	return &MockClock{current: start}
}

// Now returns the current mocked time.
func (m *MockClock) Now() time.Time { return m.current }

// Sleep advances the mocked time by d.
func (m *MockClock) Sleep(d time.Duration) { m.current = m.current.Add(d) }

// Advance moves the mocked time forward without a sleep.
func (m *MockClock) Advance(d time.Duration) { m.current = m.current.Add(d) }
