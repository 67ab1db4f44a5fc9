package maze

import (
	"fmt"
	"time"

	"github.com/WGrassw/Paw-aware/constants"
)

// Config sizes the maze and tunes the spotlight
type Config struct {
	Width         int           `yaml:"width" env:"WIDTH"`
	Height        int           `yaml:"height" env:"HEIGHT"`
	Braiding      float64       `yaml:"braiding" env:"BRAIDING"`
	MoveDelay     time.Duration `yaml:"move_delay" env:"MOVE_DELAY"`
	LightRadius   float64       `yaml:"light_radius" env:"LIGHT_RADIUS"`
	BeamRange     float64       `yaml:"beam_range" env:"BEAM_RANGE"`
	BeamHalfAngle float64       `yaml:"beam_half_angle" env:"BEAM_HALF_ANGLE"`
	BeamSpeed     float64       `yaml:"beam_speed" env:"BEAM_SPEED"`
	BeamLevelStep float64       `yaml:"beam_level_step" env:"BEAM_LEVEL_STEP"`
}

// DefaultConfig returns the stock maze
func DefaultConfig() Config {
	return Config{
		Width:         constants.MazeWidth,
		Height:        constants.MazeHeight,
		MoveDelay:     constants.MazeMoveDelay,
		LightRadius:   constants.MazeLightRadius,
		BeamRange:     constants.MazeBeamRange,
		BeamHalfAngle: constants.MazeBeamHalfAngle,
		BeamSpeed:     constants.MazeBeamSpeed,
		BeamLevelStep: constants.MazeBeamLevelStep,
	}
}

// Validate rejects degenerate grids and beams
func (c Config) Validate() error {
	switch {
	case c.Width < 5 || c.Height < 5:
		return fmt.Errorf("maze must be at least 5x5, got %dx%d", c.Width, c.Height)
	case c.Braiding < 0 || c.Braiding > 1:
		return fmt.Errorf("braiding must be within [0,1], got %v", c.Braiding)
	case c.MoveDelay <= 0:
		return fmt.Errorf("move_delay must be positive, got %v", c.MoveDelay)
	case c.LightRadius <= 0:
		return fmt.Errorf("light_radius must be positive, got %v", c.LightRadius)
	case c.BeamRange <= 0:
		return fmt.Errorf("beam_range must be positive, got %v", c.BeamRange)
	case c.BeamHalfAngle <= 0 || c.BeamHalfAngle >= 180:
		return fmt.Errorf("beam_half_angle must be within (0,180), got %v", c.BeamHalfAngle)
	case c.BeamSpeed < 0 || c.BeamLevelStep < 0:
		return fmt.Errorf("beam speeds must not be negative, got %v and %v", c.BeamSpeed, c.BeamLevelStep)
	}
	return nil
}

// BeamSpeedAt is the sweep rate in degrees per second for level
func (c Config) BeamSpeedAt(level int) float64 {
	return c.BeamSpeed + c.BeamLevelStep*float64(max(0, level-1))
}
