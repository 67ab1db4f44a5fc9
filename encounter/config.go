package encounter

import (
	"fmt"
	"time"

	"github.com/WGrassw/Paw-aware/constants"
	"github.com/WGrassw/Paw-aware/minigame"
)

// Config holds encounter timing and per-slot trigger chances
type Config struct {
	SuspenseDelay time.Duration `yaml:"suspense_delay" env:"SUSPENSE_DELAY"`
	GrowDuration  time.Duration `yaml:"grow_duration" env:"GROW_DURATION"`
	Chances       Chances       `yaml:"chances" envPrefix:"CHANCE_"`
}

// Chances is the probability of an encounter on a qualifying scene entry
type Chances struct {
	Match3 float64 `yaml:"match3" env:"MATCH3"`
	Dog    float64 `yaml:"dog" env:"DOG"`
	Maze   float64 `yaml:"maze" env:"MAZE"`
	Jump   float64 `yaml:"jump" env:"JUMP"`
}

// DefaultConfig returns the stock timing and chances
func DefaultConfig() Config {
	return Config{
		SuspenseDelay: constants.SuspenseDelay,
		GrowDuration:  constants.GrowDuration,
		Chances: Chances{
			Match3: constants.ChanceMatch3,
			Dog:    constants.ChanceDog,
			Maze:   constants.ChanceMaze,
			Jump:   constants.ChanceJump,
		},
	}
}

// For returns the chance bound to kind
func (c Chances) For(kind minigame.Kind) float64 {
	switch kind {
	case minigame.KindMatch3:
		return c.Match3
	case minigame.KindDog:
		return c.Dog
	case minigame.KindMaze:
		return c.Maze
	case minigame.KindJump:
		return c.Jump
	default:
		return 0
	}
}

// Validate rejects unusable timing or chances outside [0, 1]
func (c Config) Validate() error {
	if c.SuspenseDelay < 0 {
		return fmt.Errorf("suspense_delay must not be negative, got %v", c.SuspenseDelay)
	}
	if c.GrowDuration <= 0 {
		return fmt.Errorf("grow_duration must be positive, got %v", c.GrowDuration)
	}
	for _, k := range minigame.Kinds {
		if p := c.Chances.For(k); p < 0 || p > 1 {
			return fmt.Errorf("chance for %s must be within [0,1], got %v", k, p)
		}
	}
	return nil
}
