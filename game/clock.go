package game

import (
	"time"

	"github.com/josephtungate/mesmerise/parameter"
)

// Clock abstracts the monotonic time source so timed waits are controllable
// in tests.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// PollClock is the real clock. Sleep is an explicit poll loop against the
// monotonic clock rather than one long blocking sleep, preserving the
// cadence of the original deadline loops.
type PollClock struct{}

func (PollClock) Now() time.Time { return time.Now() }

func (PollClock) Sleep(d time.Duration) {
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		time.Sleep(parameter.InputPollTick)
	}
}
