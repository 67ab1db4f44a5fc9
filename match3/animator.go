package match3

import (
	"math"
	"time"
)

// Easing shapes animation progress
type Easing uint8

const (
	EaseLinear Easing = iota
	EaseSmooth
)

func (e Easing) apply(p float64) float64 {
	if e == EaseSmooth {
		return p * p * (3 - 2*p)
	}
	return p
}

// Vec is a position in board cell units
type Vec struct {
	X, Y float64
}

func vecOf(p Point) Vec {
	return Vec{X: float64(p.X), Y: float64(p.Y)}
}

type tween struct {
	tile     *Tile
	from, to Vec
	elapsed  time.Duration
	duration time.Duration
	delay    time.Duration
	easing   Easing
	dest     Point
	hasDest  bool
}

// Sprite is a tile drawn away from its grid cell this frame
type Sprite struct {
	Tile *Tile
	Pos  Vec
}

// Animator moves tiles between cells without touching the grid
type Animator struct {
	active []*tween
}

// Add queues a tween
func (a *Animator) add(t *tween) {
	t.duration = max(t.duration, time.Millisecond)
	t.delay = max(t.delay, 0)
	a.active = append(a.active, t)
}

// AddSwap slides tile from one cell to another with smooth easing
func (a *Animator) AddSwap(tile *Tile, from, to Point, d time.Duration) {
	a.AddSwapDelayed(tile, from, to, d, 0)
}

// AddSwapDelayed is AddSwap after delay
func (a *Animator) AddSwapDelayed(tile *Tile, from, to Point, d, delay time.Duration) {
	a.add(&tween{tile: tile, from: vecOf(from), to: vecOf(to), duration: d, delay: delay, easing: EaseSmooth})
}

// AddDrop moves tile at speed cells per second; dest, when set, is the cell it lands in
func (a *Animator) AddDrop(tile *Tile, from, to Vec, speed float64, delay time.Duration, dest *Point, easing Easing) {
	dist := math.Hypot(to.X-from.X, to.Y-from.Y)
	d := time.Duration(dist / max(speed, 1e-3) * float64(time.Second))
	tw := &tween{tile: tile, from: from, to: to, duration: d, delay: delay, easing: easing}
	if dest != nil {
		tw.dest, tw.hasDest = *dest, true
	}
	a.add(tw)
}

// Update advances all tweens by dt and drops the finished ones
func (a *Animator) Update(dt time.Duration) {
	kept := a.active[:0]
	for _, t := range a.active {
		if t.delay > 0 {
			t.delay -= dt
			kept = append(kept, t)
			continue
		}
		t.elapsed += dt
		if t.elapsed < t.duration {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(a.active); i++ {
		a.active[i] = nil
	}
	a.active = kept
}

// Busy reports any running or pending tween
func (a *Animator) Busy() bool {
	return len(a.active) > 0
}

// Flush drops every tween
func (a *Animator) Flush() {
	a.active = a.active[:0]
}

// Hidden reports whether the grid cell p must not be drawn because a tile is flying into
// it or the tile it holds is being drawn elsewhere
func (a *Animator) Hidden(p Point, occupant *Tile) bool {
	for _, t := range a.active {
		if t.hasDest && t.dest == p {
			return true
		}
		if occupant != nil && t.tile == occupant {
			return true
		}
	}
	return false
}

// Sprites returns the in-flight tiles with their interpolated positions
// A tile with several tweens is drawn at its first active one
func (a *Animator) Sprites() []Sprite {
	out := make([]Sprite, 0, len(a.active))
	seen := make(map[*Tile]bool, len(a.active))
	for _, t := range a.active {
		if seen[t.tile] {
			continue
		}
		if t.delay > 0 {
			if !t.hasDest {
				// Queued hint leg: hold the tile at its start
				seen[t.tile] = true
				out = append(out, Sprite{Tile: t.tile, Pos: t.from})
			}
			continue
		}
		seen[t.tile] = true
		p := min(1, float64(t.elapsed)/float64(t.duration))
		p = t.easing.apply(p)
		out = append(out, Sprite{
			Tile: t.tile,
			Pos: Vec{
				X: t.from.X + (t.to.X-t.from.X)*p,
				Y: t.from.Y + (t.to.Y-t.from.Y)*p,
			},
		})
	}
	return out
}
