package jump

import (
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/WGrassw/Paw-aware/audio"
	"github.com/WGrassw/Paw-aware/constants"
	"github.com/WGrassw/Paw-aware/minigame"
)

// Phase is the cat's state on the course
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseAiming
	PhaseJumping
	PhaseFalling
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAiming:
		return "aiming"
	case PhaseJumping:
		return "jumping"
	case PhaseFalling:
		return "falling"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Game is one run along a course, independent of any display
// X is the cat's foot position; Y is the top of the cat sprite, growing downward
type Game struct {
	cfg    Config
	level  int
	course []Platform

	X, Y   float64
	phase  Phase
	landed int
	camera float64

	osc      float64 // seconds of gauge oscillation
	jumpT    float64
	jumpDur  float64
	fromX    float64
	toX      float64
	arc      float64
	fallVY   float64
	attempts int

	result minigame.Result
	reason string
	cues   []audio.Cue
}

// NewGame builds a course for level and puts the cat near the end of the start ledge
func NewGame(cfg Config, level int, rng *rand.Rand) *Game {
	return NewGameWithCourse(cfg, level, NewCourse(cfg, level, rng))
}

// NewGameWithCourse starts on a prepared course
func NewGameWithCourse(cfg Config, level int, course []Platform) *Game {
	x := course[0].Right() - constants.JumpStartInset
	return &Game{
		cfg:    cfg,
		level:  max(level, 1),
		course: course,
		X:      x,
		Y:      standY(),
		camera: max(0, x-constants.JumpCamPadding),
	}
}

func standY() float64 { return constants.JumpGroundY - constants.JumpCatSize }

func (g *Game) Course() []Platform { return g.course }
func (g *Game) Phase() Phase       { return g.phase }
func (g *Game) Landed() int        { return g.landed }
func (g *Game) Goal() int          { return len(g.course) - 1 }
func (g *Game) Camera() float64    { return g.camera }
func (g *Game) Level() int         { return g.level }
func (g *Game) Attempts() int      { return g.attempts }

// Over reports the decided result and its reason
func (g *Game) Over() (minigame.Result, string, bool) {
	return g.result, g.reason, g.phase == PhaseOver
}

// DrainCues returns and forgets the sounds queued since the last call
func (g *Game) DrainCues() []audio.Cue {
	out := g.cues
	g.cues = nil
	return out
}

// AimLength is the gauge reading right now
func (g *Game) AimLength() float64 {
	t := (math.Sin(g.osc*g.cfg.AimHz*2*math.Pi) + 1) / 2
	return lerp(g.cfg.AimMin, g.cfg.AimMax, t)
}

// aimT maps an aim length onto [0,1] with a slight bias toward long jumps
func (g *Game) aimT(aim float64) float64 {
	t := (aim - g.cfg.AimMin) / max(1, g.cfg.AimMax-g.cfg.AimMin)
	return math.Pow(clamp(t, 0, 1), 0.9)
}

// ArcHeight is how high a jump of aim rises
func (g *Game) ArcHeight(aim float64) float64 {
	return lerp(constants.JumpArcMin, constants.JumpArcMax, g.aimT(aim))
}

// Duration is how long a jump of aim stays airborne
func (g *Game) Duration(aim float64) time.Duration {
	span := g.cfg.DurationMax - g.cfg.DurationMin
	return g.cfg.DurationMin + time.Duration(float64(span)*g.aimT(aim))
}

// Press is the jump key: the first press starts aiming, the second jumps
// with the gauge reading at that moment
func (g *Game) Press() {
	switch g.phase {
	case PhaseIdle:
		g.phase = PhaseAiming
	case PhaseAiming:
		g.launch(g.AimLength())
	}
}

func (g *Game) launch(aim float64) {
	g.fromX = g.X
	g.toX = g.X + JumpDistance(aim)
	g.arc = g.ArcHeight(aim)
	g.jumpDur = g.Duration(aim).Seconds()
	g.jumpT = 0
	g.attempts++
	g.phase = PhaseJumping
	g.cues = append(g.cues, audio.CueWhoosh)
}

// Step advances the gauge, the jump arc or the fall, and the camera
func (g *Game) Step(dt time.Duration) {
	if g.phase == PhaseOver {
		return
	}
	sec := dt.Seconds()
	g.osc += sec

	switch g.phase {
	case PhaseJumping:
		g.stepJump(sec)
	case PhaseFalling:
		g.fallVY += constants.JumpGravity * sec
		g.Y += g.fallVY * sec
		if g.Y > constants.JumpFallFloor {
			g.finish(minigame.Lose, "You've fallen.")
			return
		}
	}

	target := max(0, g.X-constants.JumpCamPadding)
	g.camera = expSmooth(g.camera, target, sec, constants.JumpCamSmooth)
}

func (g *Game) stepJump(sec float64) {
	g.jumpT += sec / max(0.001, g.jumpDur)
	t := clamp(g.jumpT, 0, 1)
	g.X = lerp(g.fromX, g.toX, easeOutCubic(t))
	ts := math.Pow(t, constants.JumpArcPower)
	g.Y = standY() - g.arc*4*ts*(1-ts)

	if t < 1 {
		return
	}
	idx, ok := Landing(g.course, g.X)
	if !ok {
		g.phase = PhaseFalling
		g.fallVY = 0
		return
	}
	p := g.course[idx]
	g.X = clamp(g.X, p.Left, p.Right())
	g.Y = standY()
	if idx > g.landed {
		g.cues = append(g.cues, audio.CueCoin)
	}
	g.landed = max(g.landed, idx)
	if g.landed >= g.Goal() {
		g.finish(minigame.Win, "You made it!")
		return
	}
	g.phase = PhaseIdle
}

func (g *Game) finish(res minigame.Result, reason string) {
	g.phase = PhaseOver
	g.result, g.reason = res, reason
	if res.Won() {
		g.cues = append(g.cues, audio.CueBell)
	} else {
		g.cues = append(g.cues, audio.CueError)
	}
	log.Printf("jump: level %d %s on platform %d/%d after %d jumps", g.level, res, g.landed, g.Goal(), g.attempts)
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

func clamp(v, lo, hi float64) float64 { return min(max(v, lo), hi) }

func easeOutCubic(t float64) float64 {
	t = clamp(t, 0, 1)
	return 1 - math.Pow(1-t, 3)
}

// expSmooth moves current toward target at a frame-rate independent rate
func expSmooth(current, target, sec, speed float64) float64 {
	return current + (target-current)*(1-math.Exp(-speed*sec))
}
