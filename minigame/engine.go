package minigame

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/WGrassw/Paw-aware/audio"
	"github.com/WGrassw/Paw-aware/engine"
	"github.com/WGrassw/Paw-aware/terminal"
)

// Audio is the sound surface minigames may drive
type Audio interface {
	Play(cue audio.Cue)
	StopAll()
}

// Host carries the shared resources a minigame borrows for the duration of Run
type Host struct {
	Screen tcell.Screen
	Events <-chan tcell.Event
	Audio  Audio
	Rand   *rand.Rand
	Clock  engine.Clock

	ColorMode terminal.ColorMode
}

// Engine runs one minigame session to completion on the caller's goroutine
type Engine interface {
	Run(ctx context.Context, host *Host, level int) Result
}

// EngineFunc adapts a plain function to Engine
type EngineFunc func(ctx context.Context, host *Host, level int) Result

func (f EngineFunc) Run(ctx context.Context, host *Host, level int) Result {
	return f(ctx, host, level)
}

// Runner dispatches minigame invocations and shields the caller from their failures
type Runner struct {
	host    *Host
	engines map[Kind]Engine
	restore func()
}

// NewRunner creates a runner; restore is invoked after every session to hand the display back
func NewRunner(host *Host, restore func()) *Runner {
	return &Runner{
		host:    host,
		engines: make(map[Kind]Engine),
		restore: restore,
	}
}

// Register binds an engine to a minigame kind
func (r *Runner) Register(kind Kind, e Engine) {
	r.engines[kind] = e
}

// Registered reports whether kind has an engine
func (r *Runner) Registered(kind Kind) bool {
	_, ok := r.engines[kind]
	return ok
}

// Run invokes the engine for kind and always returns a definite result
// Panics, cancellation and missing engines all resolve to Lose
func (r *Runner) Run(ctx context.Context, kind Kind, level int) (res Result) {
	defer func() {
		if r.restore != nil {
			r.restore()
		}
	}()
	defer func() {
		if p := recover(); p != nil {
			log.Printf("minigame %s panicked: %v\n%s", kind, p, debug.Stack())
			res = Lose
		}
	}()

	e, ok := r.engines[kind]
	if !ok {
		log.Printf("minigame %s: %v", kind, ErrNoEngine)
		return Lose
	}
	if err := ctx.Err(); err != nil {
		return Lose
	}

	res = e.Run(ctx, r.host, level)
	if ctx.Err() != nil && res == Win {
		// A cancelled session never counts as cleared
		res = Lose
	}
	log.Printf("minigame %s level %d finished: %s", kind, level, res)
	return res
}

// ErrNoEngine is logged when a slot has nothing registered
var ErrNoEngine = errors.New("no engine registered")
