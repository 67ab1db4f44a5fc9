// Package maze is the dark maze escape: find the exit by the light of your
// own lamp while a spotlight sweeps around it. Moving inside the beam is
// caught on camera
package maze

import (
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/WGrassw/Paw-aware/audio"
	"github.com/WGrassw/Paw-aware/constants"
	"github.com/WGrassw/Paw-aware/minigame"
)

// Game is one maze run, independent of any display
type Game struct {
	cfg    Config
	level  int
	layout *Layout
	beam   Beam

	player   Point
	cooldown time.Duration
	moves    int
	elapsed  time.Duration

	over   bool
	result minigame.Result
	reason string
	cues   []audio.Cue
}

// NewGame generates a maze for level with a randomly aimed spotlight
func NewGame(cfg Config, level int, rng *rand.Rand) *Game {
	layout := Generate(cfg.Width, cfg.Height, cfg.Braiding, rng)
	return NewGameWithLayout(cfg, level, layout, rng.Float64()*2*math.Pi)
}

// NewGameWithLayout starts on a prepared layout with the beam at angle radians
func NewGameWithLayout(cfg Config, level int, layout *Layout, angle float64) *Game {
	level = max(level, 1)
	return &Game{
		cfg:    cfg,
		level:  level,
		layout: layout,
		player: layout.Start,
		beam: Beam{
			OriginX:   float64(layout.Exit.X) + 0.5,
			OriginY:   float64(layout.Exit.Y) + 0.5,
			Angle:     angle,
			Speed:     radians(cfg.BeamSpeedAt(level)),
			HalfAngle: radians(cfg.BeamHalfAngle),
			Range:     cfg.BeamRange,
		},
	}
}

func (g *Game) Layout() *Layout { return g.layout }
func (g *Game) Beam() *Beam     { return &g.beam }
func (g *Game) Player() Point   { return g.player }
func (g *Game) Level() int      { return g.level }
func (g *Game) Moves() int      { return g.moves }

// Over reports the decided result and its reason
func (g *Game) Over() (minigame.Result, string, bool) {
	return g.result, g.reason, g.over
}

// DrainCues returns and forgets the sounds queued since the last call
func (g *Game) DrainCues() []audio.Cue {
	out := g.cues
	g.cues = nil
	return out
}

// Lit reports whether p is visible: near the player or glowing around the exit
func (g *Game) Lit(p Point) bool {
	near := func(c Point, r float64) bool {
		dx, dy := float64(p.X-c.X), float64(p.Y-c.Y)
		return dx*dx+dy*dy <= r*r
	}
	return near(g.player, g.cfg.LightRadius) || near(g.layout.Exit, constants.MazeExitGlow)
}

// Step sweeps the beam and applies at most one move per cooldown
// dir is a unit step or the zero point
func (g *Game) Step(dt time.Duration, dir Point) {
	if g.over {
		return
	}
	g.elapsed += dt
	g.cooldown = max(0, g.cooldown-dt)
	g.beam.Advance(dt.Seconds())

	if g.cooldown > 0 || dir == (Point{}) {
		return
	}
	next := g.player.Add(dir)
	if g.layout.Wall(next) {
		return
	}
	g.player = next
	g.cooldown = g.cfg.MoveDelay
	g.moves++

	if g.beam.HitsCell(g.player) {
		g.finish(minigame.LoseBySurveillance, "You moved while the spotlight was on you.")
		return
	}
	if g.player == g.layout.Exit {
		g.finish(minigame.Win, "You found the exit.")
	}
}

func (g *Game) finish(res minigame.Result, reason string) {
	g.over = true
	g.result, g.reason = res, reason
	if res.Won() {
		g.cues = append(g.cues, audio.CueBell)
	} else {
		g.cues = append(g.cues, audio.CueAlarm)
	}
	log.Printf("maze: level %d %s after %d moves in %v", g.level, res, g.moves, g.elapsed.Round(time.Millisecond))
}
