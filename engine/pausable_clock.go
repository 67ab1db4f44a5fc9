package engine

import (
	"sync"
	"time"
)

// PausableClock is lobby time: it follows its source except while paused
// The lobby pauses it while a minigame owns the loop so lobby timers resume where they stopped
type PausableClock struct {
	mu sync.Mutex

	source Clock
	start  time.Time

	paused   bool
	pausedAt time.Time
	stopped  time.Duration
}

// NewPausableClock creates a pausable clock over the wall clock
func NewPausableClock() *PausableClock {
	return NewPausableClockFrom(SystemClock{})
}

// NewPausableClockFrom creates a pausable clock over an arbitrary source
func NewPausableClockFrom(source Clock) *PausableClock {
	return &PausableClock{source: source, start: source.Now()}
}

// Now returns the source time minus every paused span; frozen while paused
func (pc *PausableClock) Now() time.Time {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	at := pc.source.Now()
	if pc.paused {
		at = pc.pausedAt
	}
	return pc.start.Add(at.Sub(pc.start) - pc.stopped)
}

// Pause freezes Now; pausing twice is a no-op
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.paused {
		pc.paused = true
		pc.pausedAt = pc.source.Now()
	}
}

// Resume lets Now advance again
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused {
		pc.paused = false
		pc.stopped += pc.source.Now().Sub(pc.pausedAt)
	}
}

func (pc *PausableClock) IsPaused() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.paused
}
