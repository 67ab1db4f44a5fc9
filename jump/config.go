package jump

import (
	"fmt"
	"time"

	"github.com/WGrassw/Paw-aware/constants"
)

// Config holds course length and jump feel
type Config struct {
	BasePlatforms  int           `yaml:"base_platforms" env:"BASE_PLATFORMS"`
	ExtraPlatforms int           `yaml:"extra_platforms" env:"EXTRA_PLATFORMS"`
	AimMin         float64       `yaml:"aim_min" env:"AIM_MIN"`
	AimMax         float64       `yaml:"aim_max" env:"AIM_MAX"`
	AimHz          float64       `yaml:"aim_hz" env:"AIM_HZ"`
	DurationMin    time.Duration `yaml:"duration_min" env:"DURATION_MIN"`
	DurationMax    time.Duration `yaml:"duration_max" env:"DURATION_MAX"`
}

// DefaultConfig returns the stock course
func DefaultConfig() Config {
	return Config{
		BasePlatforms:  constants.JumpBasePlats,
		ExtraPlatforms: constants.JumpExtraPlats,
		AimMin:         constants.JumpAimMin,
		AimMax:         constants.JumpAimMax,
		AimHz:          constants.JumpAimHz,
		DurationMin:    constants.JumpDurationMin,
		DurationMax:    constants.JumpDurationMax,
	}
}

// Validate rejects courses that cannot be finished
func (c Config) Validate() error {
	switch {
	case c.BasePlatforms < 2:
		return fmt.Errorf("base_platforms must be at least 2, got %d", c.BasePlatforms)
	case c.ExtraPlatforms < 0:
		return fmt.Errorf("extra_platforms must not be negative, got %d", c.ExtraPlatforms)
	case c.AimMin <= 0 || c.AimMax <= c.AimMin:
		return fmt.Errorf("aim range must satisfy 0 < min < max, got %v..%v", c.AimMin, c.AimMax)
	case c.AimHz <= 0:
		return fmt.Errorf("aim_hz must be positive, got %v", c.AimHz)
	case c.DurationMin <= 0 || c.DurationMax < c.DurationMin:
		return fmt.Errorf("jump duration must satisfy 0 < min <= max, got %v..%v", c.DurationMin, c.DurationMax)
	}
	return nil
}

// Platforms is 5 at level 1 and 5 more per level
func (c Config) Platforms(level int) int {
	return c.BasePlatforms + c.ExtraPlatforms*max(0, level-1)
}
