// Package lobby owns the side-scrolling hub: player position, circular scene
// navigation and the hooks that hand scene entries to the encounter controller
package lobby

import (
	"fmt"
	"log"
	"time"

	"github.com/WGrassw/Paw-aware/constants"
	"github.com/WGrassw/Paw-aware/input"
	"github.com/WGrassw/Paw-aware/quest"
	"github.com/WGrassw/Paw-aware/render"
)

// Encounters is the encounter side the lobby reports scene changes to
type Encounters interface {
	Busy() bool
	ResetVisit(departed int)
	RollScene(scene int, now time.Time) bool
}

// Footsteps plays the walking loop
type Footsteps interface {
	StartFootsteps(sprint bool)
	StopFootsteps()
}

// Controller is the lobby state: current scene, horizontal position, facing and lock window
type Controller struct {
	cfg      Config
	progress *quest.Tracker
	enc      Encounters
	steps    Footsteps

	scene     int
	x         float64
	faceLeft  bool
	walkFrame float64
	sprinting bool

	now       time.Time
	lockUntil time.Time

	stepping    bool
	stepSprint  bool
	sceneSwitch int
}

// NewController places the player at the start scene; steps may be nil
func NewController(cfg Config, progress *quest.Tracker, steps Footsteps) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("lobby config: %w", err)
	}
	c := &Controller{
		cfg:      cfg,
		progress: progress,
		steps:    steps,
		scene:    cfg.StartScene,
		x:        constants.PlayerStartX,
	}
	progress.Visit(c.scene)
	return c, nil
}

// Attach binds the encounter controller; constructed after the lobby because it restores into it
func (c *Controller) Attach(enc Encounters) {
	c.enc = enc
}

// Position reports the current scene and x
func (c *Controller) Position() (int, float64) {
	return c.scene, c.x
}

// Restore puts the player back after a minigame and starts the switch lock
func (c *Controller) Restore(scene int, x float64) {
	c.scene = scene
	c.x = x
	c.lockUntil = c.now.Add(c.cfg.SwitchLock)
	c.stopSteps()
	log.Printf("lobby: restored to scene %d at x=%.0f", scene, x)
}

// Locked reports whether movement is suppressed by the post-minigame lock
func (c *Controller) Locked(now time.Time) bool {
	return now.Before(c.lockUntil)
}

// Scene returns the current scene
func (c *Controller) Scene() int { return c.scene }

// SceneSwitches counts scene transitions since start
func (c *Controller) SceneSwitches() int { return c.sceneSwitch }

// Advance runs one lobby frame
func (c *Controller) Advance(now time.Time, dt time.Duration, in input.State) {
	c.now = now
	c.enforceUnlock()
	c.progress.SyncQuestLevel()

	busy := c.enc != nil && c.enc.Busy()
	dir := in.Direction()
	if busy || c.Locked(now) || dir == 0 {
		c.sprinting = false
		c.stopSteps()
		return
	}

	speed := c.cfg.WalkSpeed
	step := constants.WalkFrameStep
	if in.Sprint {
		speed = c.cfg.SprintSpeed
		step = constants.SprintFrameStep
	}
	c.sprinting = in.Sprint
	c.faceLeft = dir < 0
	c.walkFrame += step
	if c.walkFrame >= constants.WalkFrameCount {
		c.walkFrame -= constants.WalkFrameCount
	}
	c.x += speed * dir * dt.Seconds()

	n := c.progress.AvailableSceneCount()
	switch {
	case c.x > constants.LobbyRightEdge:
		c.x = constants.LobbyLeftEdge
		c.changeScene(NextScene(c.scene, n))
	case c.x < constants.LobbyLeftEdge:
		c.x = constants.LobbyRightEdge
		c.changeScene(PrevScene(c.scene, n))
	}

	c.startSteps(in.Sprint)
}

// enforceUnlock pulls the player out of the final scene if it is not unlocked
func (c *Controller) enforceUnlock() {
	if c.scene == constants.SceneFinal && !c.progress.Unlocked() {
		log.Printf("lobby: scene %d reached while locked, moving back", c.scene)
		c.scene = constants.SceneJump
		c.x = constants.LobbyRightEdge - 1
	}
}

func (c *Controller) changeScene(to int) {
	departed := c.scene
	c.scene = to
	c.sceneSwitch++
	c.progress.Visit(to)
	c.progress.UpdateExploreCompletion()
	log.Printf("lobby: scene %d -> %d (switch %d)", departed, to, c.sceneSwitch)

	if c.enc == nil {
		return
	}
	c.enc.ResetVisit(departed)
	if c.progress.Phase() == quest.PhaseChallenging {
		c.enc.RollScene(to, c.now)
	}
}

func (c *Controller) startSteps(sprint bool) {
	if c.steps == nil {
		return
	}
	if c.stepping && c.stepSprint == sprint {
		return
	}
	c.steps.StartFootsteps(sprint)
	c.stepping, c.stepSprint = true, sprint
}

func (c *Controller) stopSteps() {
	if c.steps == nil || !c.stepping {
		c.stepping = false
		return
	}
	c.steps.StopFootsteps()
	c.stepping = false
}

// NextScene is the scene to the right on a ring of n scenes
func NextScene(scene, n int) int {
	return scene%n + 1
}

// PrevScene is the scene to the left on a ring of n scenes
func PrevScene(scene, n int) int {
	return ((scene-2)%n+n)%n + 1
}

// Frame builds the render snapshot; the caller adds the encounter icon
func (c *Controller) Frame() render.LobbyFrame {
	lines := c.progress.Panel()
	panel := make([]render.PanelLine, len(lines))
	for i, l := range lines {
		panel[i] = render.PanelLine{Text: l.Text, Done: l.Done}
	}
	return render.LobbyFrame{
		Scene:      c.scene,
		SceneCount: c.progress.AvailableSceneCount(),
		X:          c.x,
		FaceLeft:   c.faceLeft,
		WalkFrame:  int(c.walkFrame),
		Sprinting:  c.sprinting,
		Health:     c.progress.Health(),
		MaxHealth:  constants.MaxHealth,
		Panel:      panel,
		Story:      c.scene == constants.SceneFinal,
	}
}
