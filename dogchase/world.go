// Package dogchase is the fish-gathering chase: collect every fish before it
// rots while a dog hunts the cat and a thief cat goes after the oldest catch
package dogchase

import (
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/WGrassw/Paw-aware/audio"
	"github.com/WGrassw/Paw-aware/constants"
	"github.com/WGrassw/Paw-aware/minigame"
)

// Vec is a point in arena units
type Vec struct {
	X, Y float64
}

// Box is an axis-aligned body; Pos is its top-left corner
type Box struct {
	Pos  Vec
	W, H float64
}

func (b Box) Center() Vec {
	return Vec{X: b.Pos.X + b.W/2, Y: b.Pos.Y + b.H/2}
}

func (b Box) Right() float64  { return b.Pos.X + b.W }
func (b Box) Bottom() float64 { return b.Pos.Y + b.H }

// Overlaps reports a strict intersection; touching edges do not count
func (b Box) Overlaps(o Box) bool {
	return b.Pos.X < o.Right() && o.Pos.X < b.Right() &&
		b.Pos.Y < o.Bottom() && o.Pos.Y < b.Bottom()
}

// clampInto keeps b fully inside the arena
func (b *Box) clampInto(w, h float64) {
	b.Pos.X = min(max(b.Pos.X, 0), w-b.W)
	b.Pos.Y = min(max(b.Pos.Y, 0), h-b.H)
}

// Distance is measured between centers
func Distance(a, b Box) float64 {
	ca, cb := a.Center(), b.Center()
	return math.Hypot(ca.X-cb.X, ca.Y-cb.Y)
}

// FishState tracks one fish through the round
type FishState uint8

const (
	FishFresh FishState = iota
	FishCollected
	FishStolen
	FishRotten
)

// Fish is a collectible
type Fish struct {
	Box
	State    FishState
	Targeted bool
	spawned  time.Duration
}

// Dog wanders until the cat comes close, then chases it
type Dog struct {
	Box
	Chasing bool

	dir      Vec
	nextTurn time.Duration
	base     float64
	extra    float64
}

// Thief wanders and steals fish that have been lying around too long
type Thief struct {
	Box
	Active bool
	Target int // fish index, -1 when none

	dir        Vec
	nextTurn   time.Duration
	nextTarget time.Duration
}

// Phase is the round stage
type Phase uint8

const (
	PhasePlay Phase = iota
	PhaseDuel
	PhaseOver
)

// Input is the cat's steering this frame, each axis in -1..1
type Input struct {
	DX, DY float64
}

// World is one dog chase round
type World struct {
	cfg   Config
	level int
	rng   *rand.Rand

	Cat   Box
	Dog   Dog
	Thief Thief
	Fish  []Fish

	width, height float64
	catSpeed      float64
	rotTime       time.Duration
	stealDelay    time.Duration
	elapsed       time.Duration

	phase   Phase
	duelMsg string
	caught  bool
	result  minigame.Result
	reason  string
	cues    []audio.Cue
}

// NewWorld lays out a round for level
func NewWorld(cfg Config, level int, rng *rand.Rand) *World {
	level = max(level, 1)
	w, h := constants.DogArenaWidth, constants.DogArenaHeight
	step := float64(level - 1)

	world := &World{
		cfg:        cfg,
		level:      level,
		rng:        rng,
		width:      w,
		height:     h,
		catSpeed:   constants.DogCatSpeedBase + step,
		rotTime:    cfg.RotTime(level),
		stealDelay: cfg.StealDelay(level),
		Cat: Box{
			Pos: Vec{X: 100, Y: 100},
			W:   constants.DogCatSize,
			H:   constants.DogCatSize,
		},
		Dog: Dog{
			Box: Box{
				Pos: Vec{X: w - constants.DogSize, Y: h / 2},
				W:   constants.DogSize,
				H:   constants.DogSize,
			},
			dir:   Vec{X: 1},
			base:  constants.DogBaseSpeed + step*constants.DogSpeedLevelStep,
			extra: constants.DogExtraSpeed + step*constants.DogSpeedLevelStep,
		},
		Thief: Thief{
			Box: Box{
				Pos: Vec{X: randRange(rng, 50, w-50), Y: randRange(rng, 50, h-50)},
				W:   constants.DogThiefWidth,
				H:   constants.DogThiefHeight,
			},
			Active: true,
			Target: -1,
			dir:    Vec{X: 1},
		},
	}

	const marginSide, marginTop, marginBottom = 30.0, 30.0, 70.0
	size := constants.DogFishSize
	for i := 0; i < cfg.FishCount(level); i++ {
		world.Fish = append(world.Fish, Fish{Box: Box{
			Pos: Vec{
				X: randRange(rng, marginSide, w-marginSide-size),
				Y: randRange(rng, marginTop, h-marginBottom-size),
			},
			W: size,
			H: size,
		}})
	}
	return world
}

func randRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func randAngle(rng *rand.Rand) Vec {
	a := rng.Float64() * 2 * math.Pi
	return Vec{X: math.Cos(a), Y: math.Sin(a)}
}

func randDelay(rng *rand.Rand, lo, hi time.Duration) time.Duration {
	return lo + time.Duration(rng.Int63n(int64(hi-lo)+1))
}

func (w *World) Level() int                { return w.level }
func (w *World) Phase() Phase              { return w.phase }
func (w *World) Elapsed() time.Duration    { return w.elapsed }
func (w *World) DuelMessage() string       { return w.duelMsg }
func (w *World) Caught() bool              { return w.caught }
func (w *World) StealDelay() time.Duration { return w.stealDelay }

// Remaining is the time left before the fish rot
func (w *World) Remaining() time.Duration {
	return max(0, w.rotTime-w.elapsed)
}

// Collected counts gathered fish
func (w *World) Collected() int {
	n := 0
	for _, f := range w.Fish {
		if f.State == FishCollected {
			n++
		}
	}
	return n
}

// Over reports the decided result and its reason
func (w *World) Over() (minigame.Result, string, bool) {
	return w.result, w.reason, w.phase == PhaseOver
}

// DrainCues returns and forgets the sounds queued since the last call
func (w *World) DrainCues() []audio.Cue {
	out := w.cues
	w.cues = nil
	return out
}

func (w *World) finish(res minigame.Result, reason string) {
	w.phase = PhaseOver
	w.result, w.reason = res, reason
	if res.Won() {
		w.cues = append(w.cues, audio.CueBell)
	} else {
		w.cues = append(w.cues, audio.CueError)
	}
	log.Printf("dogchase: level %d %s after %v: %s", w.level, res, w.elapsed.Round(time.Millisecond), reason)
}

// Step advances the round by dt; nothing moves during a duel or after the end
func (w *World) Step(dt time.Duration, in Input) {
	if w.phase != PhasePlay {
		return
	}
	frames := dt.Seconds() * constants.MinigameFrameRate
	w.elapsed += dt

	w.moveCat(in, frames)
	w.updateDog(frames)
	w.updateThief(frames)

	for i := range w.Fish {
		f := &w.Fish[i]
		if f.State == FishFresh && w.elapsed-f.spawned > w.rotTime {
			f.State = FishRotten
		}
	}
	for _, f := range w.Fish {
		if f.State == FishRotten {
			w.finish(minigame.Lose, "The food has rotted!")
			return
		}
	}

	w.pickTarget()
	if t := w.Thief.Target; w.Thief.Active && t >= 0 && w.Fish[t].State == FishFresh {
		if Distance(w.Thief.Box, w.Fish[t].Box) < constants.DogStealDistance {
			w.Fish[t].State = FishStolen
			w.clearTarget()
			w.finish(minigame.LoseByTheft, "The thief stole your fish!")
			return
		}
	}

	for i := range w.Fish {
		f := &w.Fish[i]
		if f.State != FishFresh || Distance(w.Cat, f.Box) >= w.cfg.PickupRadius {
			continue
		}
		f.State = FishCollected
		f.Targeted = false
		w.cues = append(w.cues, audio.CueCoin)
		if w.Thief.Target == i {
			w.clearTarget()
		}
	}

	if Distance(w.Cat, w.Dog.Box) < constants.DogCatchRadius {
		w.caught = true
		w.finish(minigame.Lose, "The dog has caught you")
		return
	}

	if w.Thief.Active && w.Cat.Overlaps(w.Thief.Box) {
		w.phase = PhaseDuel
		w.duelMsg = ""
		return
	}

	if w.Collected() == len(w.Fish) {
		w.finish(minigame.Win, "You collected all the food!")
	}
}

// moveCat wraps horizontally and clamps vertically
func (w *World) moveCat(in Input, frames float64) {
	step := w.catSpeed * frames
	w.Cat.Pos.X += in.DX * step
	w.Cat.Pos.Y += in.DY * step

	switch {
	case w.Cat.Right() < 0:
		w.Cat.Pos.X = w.width
	case w.Cat.Pos.X > w.width:
		w.Cat.Pos.X = -w.Cat.W
	}
	w.Cat.Pos.Y = min(max(w.Cat.Pos.Y, 0), w.height-w.Cat.H)
}

func (w *World) dogSpeed() float64 {
	t := min(max(float64(w.elapsed)/float64(constants.DogRampTime), 0), 1)
	return w.Dog.base + t*w.Dog.extra
}

func (w *World) updateDog(frames float64) {
	d := &w.Dog
	dist := Distance(d.Box, w.Cat)
	switch {
	case dist < constants.DogChaseRadius:
		d.Chasing = true
	case dist > constants.DogLoseRadius:
		d.Chasing = false
	}

	if d.Chasing {
		w.seek(&d.Box, w.Cat.Center(), w.dogSpeed()*constants.DogChaseFactor*frames)
		return
	}
	if w.elapsed > d.nextTurn {
		d.dir = randAngle(w.rng)
		d.nextTurn = w.elapsed + randDelay(w.rng, time.Second, 2500*time.Millisecond)
	}
	w.wander(&d.Box, &d.dir, w.dogSpeed()*frames)
}

func (w *World) updateThief(frames float64) {
	t := &w.Thief
	if !t.Active {
		return
	}
	if t.Target >= 0 && w.Fish[t.Target].State != FishFresh {
		w.clearTarget()
	}
	if t.Target >= 0 {
		w.seek(&t.Box, w.Fish[t.Target].Center(), constants.DogThiefChase*frames)
		return
	}
	if w.elapsed > t.nextTurn {
		t.dir = randAngle(w.rng)
		t.nextTurn = w.elapsed + randDelay(w.rng, 800*time.Millisecond, 2500*time.Millisecond)
	}
	w.wander(&t.Box, &t.dir, constants.DogThiefWander*frames)
}

// seek moves b's center toward target by step, never overshooting
func (w *World) seek(b *Box, target Vec, step float64) {
	c := b.Center()
	dx, dy := target.X-c.X, target.Y-c.Y
	dist := math.Hypot(dx, dy)
	if dist > 0 {
		step = min(step, dist)
		b.Pos.X += step * dx / dist
		b.Pos.Y += step * dy / dist
	}
	b.clampInto(w.width, w.height)
}

// wander moves along dir, flipping an axis when b leaves the arena
func (w *World) wander(b *Box, dir *Vec, step float64) {
	b.Pos.X += dir.X * step
	b.Pos.Y += dir.Y * step
	if b.Pos.X < 0 || b.Right() > w.width {
		dir.X = -dir.X
	}
	if b.Pos.Y < 0 || b.Bottom() > w.height {
		dir.Y = -dir.Y
	}
	b.clampInto(w.width, w.height)
}

// pickTarget sends an idle thief after the farthest fish old enough to steal
func (w *World) pickTarget() {
	t := &w.Thief
	if !t.Active || t.Target >= 0 || w.elapsed < t.nextTarget {
		return
	}
	best, bestDist := -1, -1.0
	for i, f := range w.Fish {
		if f.State != FishFresh || f.Targeted || w.elapsed-f.spawned <= w.stealDelay {
			continue
		}
		if d := Distance(t.Box, f.Box); d > bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return
	}
	t.Target = best
	w.Fish[best].Targeted = true
}

func (w *World) clearTarget() {
	t := &w.Thief
	if t.Target >= 0 {
		w.Fish[t.Target].Targeted = false
	}
	t.Target = -1
	t.nextTarget = w.elapsed + constants.DogThiefCooldown
}
