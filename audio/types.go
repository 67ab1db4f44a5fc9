package audio

import "errors"

// Cue identifies a one-shot sound effect
type Cue int

const (
	CueError  Cue = iota // Rejected action buzz
	CueBell              // Pickup / clear
	CueWhoosh            // Swap, jump
	CueCoin              // Minigame won
	CueAlarm             // Encounter suspense
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueError:
		return "error"
	case CueBell:
		return "bell"
	case CueWhoosh:
		return "whoosh"
	case CueCoin:
		return "coin"
	case CueAlarm:
		return "alarm"
	default:
		return "unknown"
	}
}

// ErrDisabled is returned by Initialize when audio is switched off in config
var ErrDisabled = errors.New("audio disabled")
