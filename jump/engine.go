package jump

import (
	"context"
	"fmt"
	"log"

	"github.com/WGrassw/Paw-aware/minigame"
	"github.com/WGrassw/Paw-aware/terminal"
)

// Engine plays jump courses on the shared terminal
type Engine struct {
	cfg Config
}

// NewEngine validates cfg and returns a ready engine
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("jump config: %w", err)
	}
	return &Engine{cfg: cfg}, nil
}

// Run plays one course at level
func (e *Engine) Run(ctx context.Context, host *minigame.Host, level int) minigame.Result {
	if host.Screen != nil {
		terminal.SetTitle(host.Screen, fmt.Sprintf("Jumpers (Level %d)", level))
	}
	game := NewGame(e.cfg, level, host.Rand)
	course := game.Course()
	log.Printf("jump: level %d, %d platforms over %.0f units",
		level, len(course), course[len(course)-1].Right()-course[0].Left)

	return minigame.Loop(ctx, host, NewSession(game, host.Audio, host.ColorMode))
}
