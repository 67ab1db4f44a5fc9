package dogchase

import (
	"context"
	"fmt"
	"log"

	"github.com/WGrassw/Paw-aware/minigame"
	"github.com/WGrassw/Paw-aware/terminal"
)

// Engine plays dog chase rounds on the shared terminal
type Engine struct {
	cfg Config
}

// NewEngine validates cfg and returns a ready engine
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("dog config: %w", err)
	}
	return &Engine{cfg: cfg}, nil
}

// Run plays one round at level
func (e *Engine) Run(ctx context.Context, host *minigame.Host, level int) minigame.Result {
	if host.Screen != nil {
		terminal.SetTitle(host.Screen, fmt.Sprintf("Dog (Level %d)", level))
	}
	world := NewWorld(e.cfg, level, host.Rand)
	log.Printf("dogchase: level %d, %d fish, rot in %v, steal after %v",
		level, len(world.Fish), world.Remaining(), world.StealDelay())

	return minigame.Loop(ctx, host, NewSession(world, host.Audio, host.Clock, host.ColorMode))
}
