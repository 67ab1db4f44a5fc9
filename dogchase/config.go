package dogchase

import (
	"fmt"
	"time"

	"github.com/WGrassw/Paw-aware/constants"
)

// Config holds the per-level scaling of the chase
type Config struct {
	FishBase     int           `yaml:"fish_base" env:"FISH_BASE"`
	FishStep     int           `yaml:"fish_step" env:"FISH_STEP"`
	RotBase      time.Duration `yaml:"rot_base" env:"ROT_BASE"`
	RotStep      time.Duration `yaml:"rot_step" env:"ROT_STEP"`
	StealBase    time.Duration `yaml:"steal_base" env:"STEAL_BASE"`
	StealStep    time.Duration `yaml:"steal_step" env:"STEAL_STEP"`
	StealMin     time.Duration `yaml:"steal_min" env:"STEAL_MIN"`
	PickupRadius float64       `yaml:"pickup_radius" env:"PICKUP_RADIUS"`
}

// DefaultConfig returns the stock scaling
func DefaultConfig() Config {
	return Config{
		FishBase:     constants.DogFishBase,
		FishStep:     constants.DogFishStep,
		RotBase:      constants.DogRotBase,
		RotStep:      constants.DogRotStep,
		StealBase:    constants.DogStealBase,
		StealStep:    constants.DogStealStep,
		StealMin:     constants.DogStealMin,
		PickupRadius: constants.DogPickupRadius,
	}
}

// Validate rejects empty arenas and non-positive timers
func (c Config) Validate() error {
	switch {
	case c.FishBase <= 0:
		return fmt.Errorf("fish_base must be positive, got %d", c.FishBase)
	case c.FishStep < 0:
		return fmt.Errorf("fish_step must not be negative, got %d", c.FishStep)
	case c.RotBase <= 0:
		return fmt.Errorf("rot_base must be positive, got %v", c.RotBase)
	case c.RotStep < 0:
		return fmt.Errorf("rot_step must not be negative, got %v", c.RotStep)
	case c.StealMin <= 0 || c.StealBase < c.StealMin:
		return fmt.Errorf("steal_base %v must be at least steal_min %v > 0", c.StealBase, c.StealMin)
	case c.PickupRadius <= 0:
		return fmt.Errorf("pickup_radius must be positive, got %v", c.PickupRadius)
	}
	return nil
}

// FishCount is 5 fish at level 1 and 3 more per level
func (c Config) FishCount(level int) int {
	return c.FishBase + c.FishStep*max(0, level-1)
}

// RotTime is the time limit before uncollected fish spoil
func (c Config) RotTime(level int) time.Duration {
	return c.RotBase + c.RotStep*time.Duration(max(0, level-1))
}

// StealDelay is how old a fish must be before the thief goes for it
func (c Config) StealDelay(level int) time.Duration {
	return max(c.StealMin, c.StealBase-c.StealStep*time.Duration(max(0, level-1)))
}
