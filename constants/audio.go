package constants

import "time"

// Audio output
const (
	AudioSampleRate = 48000
	AudioBuffer     = 100 * time.Millisecond
)

// Footstep loop timing
const (
	FootstepWalkPeriod   = 420 * time.Millisecond
	FootstepSprintPeriod = 210 * time.Millisecond
	FootstepThump        = 60 * time.Millisecond
)
