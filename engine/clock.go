package engine

import (
	"sync"
	"time"
)

// Clock is the time source consumed by frame-stepped controllers
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock, monotonic reading included
// Input hold windows and minigame sessions run on it since they never pause
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock only moves when told to; tests drive frame loops with it
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set jumps to t, backwards included
func (c *ManualClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

// Advance moves forward by d and returns the new time
func (c *ManualClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}

// Frames advances by n frames of length frame
func (c *ManualClock) Frames(n int, frame time.Duration) time.Time {
	return c.Advance(time.Duration(n) * frame)
}
