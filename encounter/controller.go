// Package encounter runs the per-scene encounter sequence:
// idle, suspense delay, eased icon grow, blocking minigame handoff, then restore
package encounter

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/WGrassw/Paw-aware/audio"
	"github.com/WGrassw/Paw-aware/constants"
	"github.com/WGrassw/Paw-aware/engine/fsm"
	"github.com/WGrassw/Paw-aware/minigame"
	"github.com/WGrassw/Paw-aware/quest"
)

const (
	stateRoot fsm.StateID = iota + fsm.StateRoot
	StateIdle
	stateActive
	StateSuspense
	StateGrowing
	StateInvoking
)

const (
	eventTrigger fsm.EventType = iota + 1
	eventAbort
)

// Lobby is the position owner the controller captures from and restores into
type Lobby interface {
	Position() (scene int, x float64)
	Restore(scene int, x float64)
}

// Launcher runs a minigame to completion
type Launcher interface {
	Run(ctx context.Context, kind minigame.Kind, level int) minigame.Result
}

// ReturnContext is where the player goes back to after a minigame
type ReturnContext struct {
	Scene int
	X     float64
}

// Controller owns one encounter slot per minigame
type Controller struct {
	cfg      Config
	slots    [minigame.KindCount]*Slot
	progress *quest.Tracker
	lobby    Lobby
	launcher Launcher
	audio    minigame.Audio
	rng      *rand.Rand

	ret      *ReturnContext
	now      time.Time
	lastTick time.Time
	runCtx   context.Context

	lastKind   minigame.Kind
	lastResult minigame.Result
	played     int
}

// NewController wires a controller; audio may be nil
func NewController(cfg Config, progress *quest.Tracker, lobby Lobby, launcher Launcher, sound minigame.Audio, rng *rand.Rand) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("encounter config: %w", err)
	}
	c := &Controller{
		cfg:      cfg,
		progress: progress,
		lobby:    lobby,
		launcher: launcher,
		audio:    sound,
		rng:      rng,
		runCtx:   context.Background(),
	}
	for _, kind := range minigame.Kinds {
		s := &Slot{Kind: kind, Scene: SceneFor(kind), ctrl: c}
		m, err := c.buildMachine(s)
		if err != nil {
			return nil, fmt.Errorf("encounter %s machine: %w", kind, err)
		}
		s.machine = m
		c.slots[kind] = s
	}
	return c, nil
}

func (c *Controller) buildMachine(s *Slot) (*fsm.Machine[*Slot], error) {
	m := fsm.NewMachine[*Slot]()
	m.AddState(stateRoot, "Encounter", fsm.StateNone)
	m.AddState(StateIdle, "Idle", stateRoot)
	m.AddState(stateActive, "Active", stateRoot)
	m.AddState(StateSuspense, "Suspense", stateActive)
	m.AddState(StateGrowing, "Growing", stateActive)
	invoking := m.AddState(StateInvoking, "Invoking", stateActive)
	invoking.OnEnter = append(invoking.OnEnter, func(s *Slot) { s.ctrl.invoke(s) })

	transitions := []struct {
		from fsm.StateID
		t    fsm.Transition[*Slot]
	}{
		{StateIdle, fsm.Transition[*Slot]{TargetID: StateSuspense, Event: eventTrigger}},
		{StateSuspense, fsm.Transition[*Slot]{TargetID: StateGrowing, Guard: func(s *Slot, _ time.Duration) bool {
			return s.ctrl.now.Sub(s.animStart) >= s.ctrl.cfg.SuspenseDelay
		}}},
		{StateGrowing, fsm.Transition[*Slot]{TargetID: StateInvoking, Guard: func(s *Slot, _ time.Duration) bool {
			return s.ctrl.growProgress(s, s.ctrl.now) >= 1
		}}},
		{StateInvoking, fsm.Transition[*Slot]{TargetID: StateIdle}},
		{stateActive, fsm.Transition[*Slot]{TargetID: StateIdle, Event: eventAbort}},
	}
	for _, tr := range transitions {
		if err := m.AddTransition(tr.from, tr.t); err != nil {
			return nil, err
		}
	}
	if err := m.CompilePaths(); err != nil {
		return nil, err
	}
	if err := m.Init(s, StateIdle); err != nil {
		return nil, err
	}
	return m, nil
}

// SceneFor maps a minigame to the lobby scene that hosts its encounter
func SceneFor(kind minigame.Kind) int {
	switch kind {
	case minigame.KindMatch3:
		return constants.SceneMatch3
	case minigame.KindDog:
		return constants.SceneDog
	case minigame.KindMaze:
		return constants.SceneMaze
	case minigame.KindJump:
		return constants.SceneJump
	default:
		return 0
	}
}

// KindForScene maps a lobby scene to its encounter slot; the final scene has none
func KindForScene(scene int) (minigame.Kind, bool) {
	for _, kind := range minigame.Kinds {
		if SceneFor(kind) == scene {
			return kind, true
		}
	}
	return 0, false
}

// Slot returns the slot for kind
func (c *Controller) Slot(kind minigame.Kind) *Slot {
	return c.slots[kind]
}

// Roll performs the once-per-visit trigger draw for kind
// Returns true when the encounter starts
func (c *Controller) Roll(kind minigame.Kind, now time.Time) bool {
	s := c.slots[kind]
	if s.rolledThisVisit || s.clearedThisVisit || c.Busy() {
		return false
	}
	s.rolledThisVisit = true

	if c.rng.Float64() >= c.cfg.Chances.For(kind) {
		return false
	}
	c.begin(s, now)
	return true
}

// RollScene rolls the slot hosted by scene; scenes without a slot never trigger
func (c *Controller) RollScene(scene int, now time.Time) bool {
	kind, ok := KindForScene(scene)
	if !ok {
		return false
	}
	return c.Roll(kind, now)
}

func (c *Controller) begin(s *Slot, now time.Time) {
	s.triggered = true
	s.started = false
	s.animStart = now
	s.id = uuid.NewString()
	c.now = now
	c.lastTick = now

	scene, x := c.lobby.Position()
	c.ret = &ReturnContext{Scene: scene, X: x}

	s.machine.HandleEvent(s, eventTrigger)
	if c.audio != nil {
		c.audio.Play(audio.CueAlarm)
	}
	log.Printf("encounter %s [%s]: triggered in scene %d at x=%.0f", s.Kind, s.id, scene, x)
}

// Tick advances the active encounter, running its minigame when the grow animation completes
// The minigame call blocks until it returns
func (c *Controller) Tick(ctx context.Context, now time.Time) {
	dt := now.Sub(c.lastTick)
	if c.lastTick.IsZero() || dt < 0 {
		dt = 0
	}
	c.now = now
	c.lastTick = now
	c.runCtx = ctx

	for _, s := range c.slots {
		if s.machine.State() == StateIdle {
			continue
		}
		if ctx.Err() != nil && !s.started && s.triggered {
			c.abort(s)
			continue
		}
		s.machine.Update(s, dt)
		if s.machine.State() == StateInvoking {
			// The minigame already returned; settle back to Idle this frame
			s.machine.Update(s, 0)
		}
	}
}

func (c *Controller) abort(s *Slot) {
	s.triggered = false
	s.started = false
	s.machine.HandleEvent(s, eventAbort)
	c.ret = nil
	log.Printf("encounter %s [%s]: aborted", s.Kind, s.id)
}

func (c *Controller) invoke(s *Slot) {
	if s.started {
		return
	}
	s.started = true

	if c.audio != nil {
		c.audio.StopAll()
	}

	level := c.progress.Level(s.Kind)
	log.Printf("encounter %s [%s]: launching level %d", s.Kind, s.id, level)
	res := c.launcher.Run(c.runCtx, s.Kind, level)
	c.progress.ApplyResult(s.Kind, res)

	s.clearedThisVisit = true
	s.triggered = false
	s.started = false
	c.lastKind, c.lastResult = s.Kind, res
	c.played++

	c.restore()
}

// restore returns the player to the captured scene, pulled inside the safe margins
func (c *Controller) restore() {
	if c.ret == nil {
		return
	}
	c.lobby.Restore(c.ret.Scene, SafeX(c.ret.X))
	c.ret = nil
}

// SafeX pulls x strictly inside (LEFT+SAFE_MARGIN, RIGHT-SAFE_MARGIN)
func SafeX(x float64) float64 {
	lo := constants.LobbyLeftEdge + constants.LobbySafeMargin
	hi := constants.LobbyRightEdge - constants.LobbySafeMargin
	switch {
	case x <= lo:
		return lo + 1
	case x >= hi:
		return hi - 1
	default:
		return x
	}
}

// ResetVisit clears the once-per-visit flags of the slot owned by the departed scene
func (c *Controller) ResetVisit(departed int) {
	kind, ok := KindForScene(departed)
	if !ok {
		return
	}
	s := c.slots[kind]
	s.rolledThisVisit = false
	s.clearedThisVisit = false
}

// Busy reports whether any encounter is in progress
func (c *Controller) Busy() bool {
	for _, s := range c.slots {
		if s.triggered {
			return true
		}
	}
	return false
}

// Return exposes the pending return context, nil when none
func (c *Controller) Return() *ReturnContext {
	return c.ret
}

// LastResult reports the most recent minigame outcome and whether any ran
func (c *Controller) LastResult() (minigame.Kind, minigame.Result, bool) {
	return c.lastKind, c.lastResult, c.played > 0
}

func (c *Controller) growProgress(s *Slot, now time.Time) float64 {
	elapsed := now.Sub(s.animStart) - c.cfg.SuspenseDelay
	p := float64(elapsed) / float64(c.cfg.GrowDuration)
	return min(max(p, 0), 1)
}

// Icon is the encounter icon rectangle in lobby world units
type Icon struct {
	Kind          minigame.Kind
	X, Y, W, H    float64
	Growing       bool
	Progress      float64
	EncounterID   string
	SecondsToLift float64
}

// IconFrame returns the icon to draw this frame, if an encounter is showing
func (c *Controller) IconFrame(now time.Time) (Icon, bool) {
	for _, s := range c.slots {
		if !s.triggered || s.clearedThisVisit {
			continue
		}
		icon := Icon{
			Kind:        s.Kind,
			X:           constants.IconX,
			Y:           constants.IconY,
			W:           constants.IconNativeWidth,
			H:           constants.IconNativeHeight,
			EncounterID: s.id,
		}
		elapsed := now.Sub(s.animStart)
		if elapsed < c.cfg.SuspenseDelay {
			icon.SecondsToLift = (c.cfg.SuspenseDelay - elapsed).Seconds()
			return icon, true
		}

		p := c.growProgress(s, now)
		eased := EaseOutQuad(p)
		w := constants.IconNativeWidth + (constants.IconGrowWidth-constants.IconNativeWidth)*eased
		h := constants.IconNativeHeight + (constants.IconGrowHeight-constants.IconNativeHeight)*eased
		cx := constants.IconX + constants.IconNativeWidth/2
		cy := constants.IconY + constants.IconNativeHeight/2

		icon.X, icon.Y, icon.W, icon.H = cx-w/2, cy-h/2, w, h
		icon.Growing = true
		icon.Progress = p
		return icon, true
	}
	return Icon{}, false
}

// EaseOutQuad maps linear progress to 1-(1-p)^2
func EaseOutQuad(p float64) float64 {
	return 1 - (1-p)*(1-p)
}
