package constants

import "time"

// Match-3 board
const (
	Match3Width  = 8
	Match3Height = 8

	// Match3MinRun is the shortest line that counts as a match
	Match3MinRun = 3
)

// Match-3 goals
const (
	Match3ScoreBase    = 500
	Match3ScoreStep    = 200
	Match3ColorGoal    = 20
	Match3TrashTotal   = 3
	Match3PointsPer    = 10
	Match3ShuffleTries = 120
)

// Match-3 timing
const (
	Match3SwapDuration = 160 * time.Millisecond
	Match3ClearPause   = 120 * time.Millisecond
	Match3DropStep     = 60 * time.Millisecond

	// Match3DropSpeed is cells per second (1200 px/s on 64 px tiles)
	Match3DropSpeed = 1200.0 / 64.0

	// Match3TrashDropSpeed is cells per second for the trash exit animation
	Match3TrashDropSpeed = 1600.0 / 64.0

	Match3IdleHelp     = 5 * time.Second
	Match3HintSwap     = 300 * time.Millisecond
	Match3HintCooldown = 2 * time.Second

	Match3RainbowRatio = 0.30
	Match3RainbowStep  = 1 * time.Second
)
