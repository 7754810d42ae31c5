package game

import "time"

// Clock measures time for the run loop and performs the pacing wait.
type Clock interface {
	// Now returns the time elapsed since an arbitrary fixed origin.
	Now() time.Duration
	// Sleep blocks for d. Non-positive durations return immediately.
	Sleep(d time.Duration)
}

type systemClock struct {
	start time.Time
}

// SystemClock returns a clock backed by the monotonic system clock.
func SystemClock() Clock {
	return &systemClock{start: time.Now()}
}

func (c *systemClock) Now() time.Duration {
	return time.Since(c.start)
}

func (c *systemClock) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	time.Sleep(d)
}
