package audio

import (
	"fmt"

	"github.com/WGrassw/Paw-aware/constants"
)

// Config controls audio output
type Config struct {
	Enabled      bool    `yaml:"enabled" env:"ENABLED"`
	MasterVolume float64 `yaml:"master_volume" env:"MASTER_VOLUME"`
	EffectVolume float64 `yaml:"effect_volume" env:"EFFECT_VOLUME"`
	StepVolume   float64 `yaml:"step_volume" env:"STEP_VOLUME"`
	SampleRate   int     `yaml:"sample_rate" env:"SAMPLE_RATE"`
}

// DefaultConfig returns audio enabled at moderate volume
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: 0.5,
		EffectVolume: 1.0,
		StepVolume:   0.6,
		SampleRate:   constants.AudioSampleRate,
	}
}

// Validate rejects volumes outside [0, 1] and non-positive sample rates
func (c Config) Validate() error {
	for name, v := range map[string]float64{
		"master_volume": c.MasterVolume,
		"effect_volume": c.EffectVolume,
		"step_volume":   c.StepVolume,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s must be within [0,1], got %v", name, v)
		}
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample_rate must be positive, got %d", c.SampleRate)
	}
	return nil
}
