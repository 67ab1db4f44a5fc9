// Package config assembles every component's settings from defaults, an
// optional YAML file and PAWAWARE_ environment variables, in that order
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/WGrassw/Paw-aware/audio"
	"github.com/WGrassw/Paw-aware/dogchase"
	"github.com/WGrassw/Paw-aware/encounter"
	"github.com/WGrassw/Paw-aware/jump"
	"github.com/WGrassw/Paw-aware/lobby"
	"github.com/WGrassw/Paw-aware/match3"
	"github.com/WGrassw/Paw-aware/maze"
)

// EnvPrefix namespaces every environment override
const EnvPrefix = "PAWAWARE_"

// Config is the whole game configuration
type Config struct {
	Debug bool   `yaml:"debug" env:"DEBUG"`
	Seed  int64  `yaml:"seed" env:"SEED"`
	Color string `yaml:"color" env:"COLOR"`

	Audio     audio.Config     `yaml:"audio" envPrefix:"AUDIO_"`
	Lobby     lobby.Config     `yaml:"lobby" envPrefix:"LOBBY_"`
	Encounter encounter.Config `yaml:"encounter" envPrefix:"ENCOUNTER_"`
	Match3    match3.Config    `yaml:"match3" envPrefix:"MATCH3_"`
	Dog       dogchase.Config  `yaml:"dog" envPrefix:"DOG_"`
	Maze      maze.Config      `yaml:"maze" envPrefix:"MAZE_"`
	Jump      jump.Config      `yaml:"jump" envPrefix:"JUMP_"`
}

// Default returns the stock configuration
func Default() Config {
	return Config{
		Color:     "auto",
		Audio:     audio.DefaultConfig(),
		Lobby:     lobby.DefaultConfig(),
		Encounter: encounter.DefaultConfig(),
		Match3:    match3.DefaultConfig(),
		Dog:       dogchase.DefaultConfig(),
		Maze:      maze.DefaultConfig(),
		Jump:      jump.DefaultConfig(),
	}
}

// Load reads path (skipped when empty) and the process environment
func Load(path string) (Config, error) {
	return LoadWithEnv(path, envMap(os.Environ()))
}

// LoadWithEnv is Load with an explicit environment
func LoadWithEnv(path string, environ map[string]string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := decode(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix, Environment: environ}); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// decode overlays YAML onto cfg; unknown keys are errors and an empty file is fine
func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func envMap(environ []string) map[string]string {
	m := make(map[string]string, len(environ))
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			m[k] = v
		}
	}
	return m
}

// Validate checks every section and names the first one that fails
func (c Config) Validate() error {
	switch c.Color {
	case "", "auto", "truecolor", "true", "24bit", "256":
	default:
		return fmt.Errorf("color must be auto, truecolor or 256, got %q", c.Color)
	}

	sections := []struct {
		name string
		err  error
	}{
		{name: "audio", err: c.Audio.Validate()},
		{name: "lobby", err: c.Lobby.Validate()},
		{name: "encounter", err: c.Encounter.Validate()},
		{name: "match3", err: c.Match3.Validate()},
		{name: "dog", err: c.Dog.Validate()},
		{name: "maze", err: c.Maze.Validate()},
		{name: "jump", err: c.Jump.Validate()},
	}
	for _, s := range sections {
		if s.err != nil {
			return fmt.Errorf("%s: %w", s.name, s.err)
		}
	}
	return nil
}
