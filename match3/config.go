package match3

import (
	"fmt"
	"time"

	"github.com/WGrassw/Paw-aware/constants"
)

// Config holds match-three goals and pacing
type Config struct {
	ScoreBase    int           `yaml:"score_base" env:"SCORE_BASE"`
	ScoreStep    int           `yaml:"score_step" env:"SCORE_STEP"`
	ColorGoal    int           `yaml:"color_goal" env:"COLOR_GOAL"`
	TrashGoal    int           `yaml:"trash_goal" env:"TRASH_GOAL"`
	ShuffleTries int           `yaml:"shuffle_tries" env:"SHUFFLE_TRIES"`
	IdleHelp     time.Duration `yaml:"idle_help" env:"IDLE_HELP"`
	RainbowStep  time.Duration `yaml:"rainbow_step" env:"RAINBOW_STEP"`
	RainbowRatio float64       `yaml:"rainbow_ratio" env:"RAINBOW_RATIO"`
}

// DefaultConfig returns the stock goals
func DefaultConfig() Config {
	return Config{
		ScoreBase:    constants.Match3ScoreBase,
		ScoreStep:    constants.Match3ScoreStep,
		ColorGoal:    constants.Match3ColorGoal,
		TrashGoal:    constants.Match3TrashTotal,
		ShuffleTries: constants.Match3ShuffleTries,
		IdleHelp:     constants.Match3IdleHelp,
		RainbowStep:  constants.Match3RainbowStep,
		RainbowRatio: constants.Match3RainbowRatio,
	}
}

// Validate rejects non-positive goals and pacing
func (c Config) Validate() error {
	switch {
	case c.ScoreBase <= 0:
		return fmt.Errorf("score_base must be positive, got %d", c.ScoreBase)
	case c.ScoreStep < 0:
		return fmt.Errorf("score_step must not be negative, got %d", c.ScoreStep)
	case c.ColorGoal <= 0:
		return fmt.Errorf("color_goal must be positive, got %d", c.ColorGoal)
	case c.TrashGoal < 0 || c.TrashGoal > Width:
		return fmt.Errorf("trash_goal must be within 0..%d, got %d", Width, c.TrashGoal)
	case c.ShuffleTries <= 0:
		return fmt.Errorf("shuffle_tries must be positive, got %d", c.ShuffleTries)
	case c.IdleHelp <= 0:
		return fmt.Errorf("idle_help must be positive, got %v", c.IdleHelp)
	case c.RainbowStep <= 0:
		return fmt.Errorf("rainbow_step must be positive, got %v", c.RainbowStep)
	case c.RainbowRatio <= 0 || c.RainbowRatio > 1:
		return fmt.Errorf("rainbow_ratio must be within (0,1], got %v", c.RainbowRatio)
	}
	return nil
}

// ScoreGoal is the points needed at level
func (c Config) ScoreGoal(level int) int {
	return c.ScoreBase + c.ScoreStep*max(0, level-1)
}
