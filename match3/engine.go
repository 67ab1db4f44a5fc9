package match3

import (
	"context"
	"fmt"
	"log"

	"github.com/WGrassw/Paw-aware/minigame"
	"github.com/WGrassw/Paw-aware/terminal"
)

// Engine plays match-three sessions on the shared terminal
type Engine struct {
	cfg Config
}

// NewEngine validates cfg and returns a ready engine
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("match3 config: %w", err)
	}
	return &Engine{cfg: cfg}, nil
}

// Run plays one session at level until it is won, lost or abandoned
func (e *Engine) Run(ctx context.Context, host *minigame.Host, level int) minigame.Result {
	if host.Screen != nil {
		terminal.SetTitle(host.Screen, fmt.Sprintf("Match-Three (Level %d)", level))
	}
	game := NewGame(e.cfg, level, host.Rand)
	log.Printf("match3: level %d, goal %d points, %d %s, %d trash",
		level, game.ScoreGoal(), e.cfg.ColorGoal, game.Target(), e.cfg.TrashGoal)

	return minigame.Loop(ctx, host, NewSession(game, host.Audio, host.ColorMode))
}
