package maze

import (
	"context"
	"fmt"
	"log"

	"github.com/WGrassw/Paw-aware/minigame"
	"github.com/WGrassw/Paw-aware/terminal"
)

// Engine plays maze runs on the shared terminal
type Engine struct {
	cfg Config
}

// NewEngine validates cfg and returns a ready engine
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("maze config: %w", err)
	}
	return &Engine{cfg: cfg}, nil
}

// Run plays one maze at level
func (e *Engine) Run(ctx context.Context, host *minigame.Host, level int) minigame.Result {
	if host.Screen != nil {
		terminal.SetTitle(host.Screen, fmt.Sprintf("Maze (Level %d)", level))
	}
	game := NewGame(e.cfg, level, host.Rand)
	l := game.Layout()
	log.Printf("maze: level %d, %dx%d, exit %v, %d steps from start",
		level, l.Width, l.Height, l.Exit, len(l.Path(l.Start, l.Exit))-1)

	return minigame.Loop(ctx, host, NewSession(game, host.Audio, host.Clock, host.ColorMode))
}
