package lobby

import (
	"fmt"
	"time"

	"github.com/WGrassw/Paw-aware/constants"
)

// Config holds lobby movement tuning
type Config struct {
	WalkSpeed   float64       `yaml:"walk_speed" env:"WALK_SPEED"`
	SprintSpeed float64       `yaml:"sprint_speed" env:"SPRINT_SPEED"`
	SwitchLock  time.Duration `yaml:"switch_lock" env:"SWITCH_LOCK"`
	StartScene  int           `yaml:"start_scene" env:"START_SCENE"`
}

// DefaultConfig returns the stock movement settings
func DefaultConfig() Config {
	return Config{
		WalkSpeed:   constants.WalkSpeed,
		SprintSpeed: constants.SprintSpeed,
		SwitchLock:  constants.SceneSwitchLock,
		StartScene:  constants.DefaultStartScene,
	}
}

// Validate rejects non-positive speeds, a negative lock and a start scene outside the base scenes
func (c Config) Validate() error {
	if c.WalkSpeed <= 0 {
		return fmt.Errorf("walk_speed must be positive, got %v", c.WalkSpeed)
	}
	if c.SprintSpeed <= 0 {
		return fmt.Errorf("sprint_speed must be positive, got %v", c.SprintSpeed)
	}
	if c.SwitchLock < 0 {
		return fmt.Errorf("switch_lock must not be negative, got %v", c.SwitchLock)
	}
	if c.StartScene < 1 || c.StartScene > constants.BaseSceneCount {
		return fmt.Errorf("start_scene must be within 1..%d, got %d", constants.BaseSceneCount, c.StartScene)
	}
	return nil
}
