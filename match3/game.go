package match3

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/WGrassw/Paw-aware/audio"
	"github.com/WGrassw/Paw-aware/constants"
	"github.com/WGrassw/Paw-aware/minigame"
)

// State is the board phase
type State uint8

const (
	StateIdle State = iota
	StateSwapping
	StateRainbow
	StateResolving
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSwapping:
		return "swapping"
	case StateRainbow:
		return "rainbow"
	case StateResolving:
		return "resolving"
	default:
		return "unknown"
	}
}

// Game is one match-three session, independent of any display
type Game struct {
	cfg   Config
	level int
	rng   *rand.Rand

	grid Grid
	anim Animator

	state        State
	selected     Point
	hasSelection bool
	swapA, swapB Point

	score         int
	scoreGoal     int
	target        Color
	targetCleared int
	trashDisposed int

	pause        time.Duration
	idle         time.Duration
	hintCooldown time.Duration

	plan          *RainbowPlan
	rainbowTimer  time.Duration
	rainbowPrefix string

	cleared PointSet
	message string
	cues    []audio.Cue
}

// NewGame deals a match-free board with trash on the top row
func NewGame(cfg Config, level int, rng *rand.Rand) *Game {
	g := &Game{
		cfg:       cfg,
		level:     max(level, 1),
		rng:       rng,
		scoreGoal: cfg.ScoreGoal(level),
		target:    TargetColor(level, rng),
		cleared:   newPointSet(),
	}
	g.grid = NewGrid(rng)
	g.grid.PlaceTrash(rng, cfg.TrashGoal)
	g.message = fmt.Sprintf("Level %d: Clear %d %s, reach %d, dispose %d trash.",
		g.level, cfg.ColorGoal, g.target, g.scoreGoal, cfg.TrashGoal)
	return g
}

// NewGameWithGrid starts from a prepared board
func NewGameWithGrid(cfg Config, level int, rng *rand.Rand, grid Grid, target Color) *Game {
	return &Game{
		cfg:       cfg,
		level:     max(level, 1),
		rng:       rng,
		grid:      grid,
		scoreGoal: cfg.ScoreGoal(level),
		target:    target,
		cleared:   newPointSet(),
	}
}

// TargetColor is Yellow at level 1, otherwise any other color
func TargetColor(level int, rng *rand.Rand) Color {
	if level <= 1 {
		return Yellow
	}
	return Color(rng.Intn(int(Yellow)))
}

func (g *Game) Grid() *Grid         { return &g.grid }
func (g *Game) Animator() *Animator { return &g.anim }
func (g *Game) State() State        { return g.state }
func (g *Game) Score() int          { return g.score }
func (g *Game) ScoreGoal() int      { return g.scoreGoal }
func (g *Game) Target() Color       { return g.target }
func (g *Game) TargetCleared() int  { return g.targetCleared }
func (g *Game) TrashDisposed() int  { return g.trashDisposed }
func (g *Game) Level() int          { return g.level }
func (g *Game) Message() string     { return g.message }
func (g *Game) Cleared() PointSet   { return g.cleared }
func (g *Game) Plan() *RainbowPlan  { return g.plan }
func (g *Game) Config() Config      { return g.cfg }

// Selected returns the selected cell, if any
func (g *Game) Selected() (Point, bool) {
	return g.selected, g.hasSelection
}

// Won reports whether all three goals are met
func (g *Game) Won() bool {
	return g.score >= g.scoreGoal &&
		g.targetCleared >= g.cfg.ColorGoal &&
		g.trashDisposed >= g.cfg.TrashGoal
}

// DrainCues returns and forgets the sounds queued since the last call
func (g *Game) DrainCues() []audio.Cue {
	out := g.cues
	g.cues = nil
	return out
}

func (g *Game) cue(c audio.Cue) {
	g.cues = append(g.cues, c)
}

// Click is a player pick on cell p
func (g *Game) Click(p Point) {
	g.idle = 0
	g.hintCooldown = 0

	if g.state != StateIdle || g.anim.Busy() || !p.In() {
		return
	}
	if !g.hasSelection {
		g.selected, g.hasSelection = p, true
		return
	}
	if p == g.selected {
		g.hasSelection = false
		return
	}
	if !Adjacent(g.selected, p) {
		g.selected = p
		return
	}

	a, b := g.selected, p
	g.hasSelection = false
	ta, tb := g.grid.At(a), g.grid.At(b)
	if !ta.Swappable() || !tb.Swappable() {
		g.message = "Cannot swap trash."
		g.cue(audio.CueError)
		return
	}

	g.anim.AddSwap(ta, a, b, constants.Match3SwapDuration)
	g.anim.AddSwap(tb, b, a, constants.Match3SwapDuration)
	g.grid.Swap(a, b)
	g.swapA, g.swapB = a, b
	g.state = StateSwapping
}

// Step advances the board by dt; done is set when the session is decided
func (g *Game) Step(dt time.Duration) (minigame.Result, bool) {
	g.anim.Update(dt)

	if g.Won() {
		g.cue(audio.CueBell)
		return minigame.Win, true
	}

	if g.state == StateIdle && !g.anim.Busy() {
		g.idle += dt
	} else {
		g.idle = 0
	}
	if g.hintCooldown > 0 {
		g.hintCooldown -= dt
	}
	g.maybeHint()

	if g.state == StateSwapping && !g.anim.Busy() {
		g.finishSwap()
	}
	if g.state == StateRainbow {
		g.stepRainbow(dt)
	}
	if g.state == StateResolving {
		if lost := g.stepResolve(dt); lost {
			return minigame.Lose, true
		}
	}
	return minigame.Lose, false
}

func (g *Game) maybeHint() {
	if g.state != StateIdle || g.anim.Busy() || g.hintCooldown > 0 || g.idle < g.cfg.IdleHelp {
		return
	}
	mv, ok := FindValidMove(&g.grid)
	if !ok {
		return
	}
	ta, tb := g.grid.At(mv.A), g.grid.At(mv.B)
	leg := constants.Match3HintSwap
	g.anim.AddSwap(ta, mv.A, mv.B, leg)
	g.anim.AddSwap(tb, mv.B, mv.A, leg)
	g.anim.AddSwapDelayed(ta, mv.B, mv.A, leg, leg)
	g.anim.AddSwapDelayed(tb, mv.A, mv.B, leg, leg)
	g.message = "Hint: try swapping the highlighted pair."
	g.idle = 0
	g.hintCooldown = constants.Match3HintCooldown
}

func (g *Game) finishSwap() {
	a, b := g.swapA, g.swapB
	ta, tb := g.grid.At(a), g.grid.At(b)

	if ta.IsRainbow() || tb.IsRainbow() {
		rainbow, other := b, a
		if ta.IsRainbow() {
			rainbow, other = a, b
		}
		if plan := BuildRainbowPlan(&g.grid, rainbow, other, g.cfg.RainbowRatio, g.rng); plan != nil {
			g.plan = plan
			g.rainbowTimer = 0
			if plan.Template.Kind == KindNormal {
				g.rainbowPrefix = "Rainbow: converting tiles to a fish..."
			} else {
				g.rainbowPrefix = "Rainbow: converting tiles to a skill..."
			}
			g.message = g.rainbowPrefix
			g.state = StateRainbow
			return
		}
	}

	if HasMatch(&g.grid) {
		g.state = StateResolving
		g.pause = 0
		g.message = "Good move."
		return
	}

	g.anim.AddSwap(g.grid.At(a), a, b, constants.Match3SwapDuration)
	g.anim.AddSwap(g.grid.At(b), b, a, constants.Match3SwapDuration)
	g.grid.Swap(a, b)
	g.state = StateIdle
	g.message = "No match. Swap reverted."
	g.cue(audio.CueError)
}

func (g *Game) stepRainbow(dt time.Duration) {
	if g.anim.Busy() {
		return
	}
	g.rainbowTimer += dt
	if g.rainbowTimer < g.cfg.RainbowStep {
		return
	}
	g.rainbowTimer = 0

	if g.plan.Pending() {
		g.plan.ConvertNext(&g.grid)
		g.message = fmt.Sprintf("%s (%d/%d)", g.rainbowPrefix, len(g.plan.Converted()), len(g.plan.Chosen))
		return
	}

	set := g.plan.ClearSet(&g.grid)
	cells := sortedPoints(set)
	g.clearCells(cells)
	g.message = fmt.Sprintf("Rainbow activated: cleared %d (+%d)", len(cells), len(cells)*constants.Match3PointsPer)
	log.Printf("match3: rainbow cleared %d cells, score %d", len(cells), g.score)

	g.plan = nil
	g.state = StateResolving
}

// clearCells scores and removes cells, counting target hits first
func (g *Game) clearCells(cells []Point) {
	hits := 0
	for _, p := range cells {
		if t := g.grid.At(p); t != nil && t.Counts(g.target) {
			hits++
		}
	}
	g.grid.Clear(cells)

	g.score += len(cells) * constants.Match3PointsPer
	g.targetCleared += hits
	g.cleared = newPointSet(cells...)
	g.pause = constants.Match3ClearPause
	g.cue(audio.CueCoin)
}

// stepResolve runs one resolution phase: trash disposal, match clearing,
// gravity, then deadlock handling. Reports true when the board is lost
func (g *Game) stepResolve(dt time.Duration) bool {
	if g.pause > 0 {
		g.pause -= dt
		if g.pause <= 0 {
			g.cleared = newPointSet()
		}
		return false
	}
	if g.anim.Busy() {
		return false
	}

	if n := g.disposeTrash(); n > 0 {
		g.trashDisposed += n
		g.message = fmt.Sprintf("Trash disposed: %d/%d", g.trashDisposed, g.cfg.TrashGoal)
		g.cue(audio.CueWhoosh)
		return false
	}

	if g.ResolveMatches() {
		return false
	}

	if g.grid.HasHoles() {
		g.drop()
		return false
	}

	if !HasValidMove(&g.grid) {
		g.message = "No moves available. Shuffling..."
		if !Shuffle(&g.grid, g.rng, g.cfg.ShuffleTries) {
			g.message = "Shuffled, but still no moves. Exiting."
			log.Printf("match3: shuffle exhausted after %d tries", g.cfg.ShuffleTries)
			return true
		}
	}
	g.state = StateIdle
	return false
}

// ResolveMatches clears one pass of runs, placing specials; false when the board has none
func (g *Game) ResolveMatches() bool {
	matched, horiz, vert := FindRuns(&g.grid)
	if matched.Size() == 0 {
		return false
	}
	specials, protected := ChooseSpecials(&g.grid, horiz, vert, g.rng)

	var seeds []Point
	for _, p := range sortedPoints(matched) {
		if !protected.Has(p) {
			seeds = append(seeds, p)
		}
	}
	expanded := ExpandChain(&g.grid, seeds)
	// A chain may sweep over a cell that just earned a special; the special survives
	protected.Each(func(p Point) { expanded.Remove(p) })

	for p, t := range specials {
		if g.grid.At(p).IsTrash() {
			continue
		}
		g.grid.Set(p, t)
	}

	cells := sortedPoints(expanded)
	g.clearCells(cells)
	g.message = fmt.Sprintf("Cleared %d (+%d)", len(cells), len(cells)*constants.Match3PointsPer)
	return true
}

func (g *Game) disposeTrash() int {
	bottom := g.grid.BottomTrash()
	for _, p := range bottom {
		t := g.grid.At(p)
		g.anim.AddDrop(t, vecOf(p), Vec{X: float64(p.X), Y: float64(Height + 1)},
			constants.Match3TrashDropSpeed, 0, nil, EaseSmooth)
		g.grid.Set(p, nil)
	}
	return len(bottom)
}

func (g *Game) drop() {
	for _, f := range Collapse(&g.grid, g.rng) {
		dest := f.To
		g.anim.AddDrop(f.Tile, Vec{X: float64(f.To.X), Y: f.FromY}, vecOf(f.To),
			constants.Match3DropSpeed, f.Delay, &dest, EaseSmooth)
	}
}
