// Package jump is the platform hop: aim with an oscillating power gauge,
// jump, and land on every platform up to the goal
package jump

import (
	"math"
	"math/rand"

	"github.com/WGrassw/Paw-aware/constants"
)

var cos45 = math.Cos(math.Pi / 4)

// Platform is a ledge on the ground line
type Platform struct {
	Left, Width float64
}

func (p Platform) Right() float64 { return p.Left + p.Width }

// Contains reports whether x is on the platform; edges count
func (p Platform) Contains(x float64) bool {
	return x >= p.Left && x <= p.Right()
}

// JumpDistance is the horizontal travel for an aim length
func JumpDistance(aim float64) float64 {
	return cos45 * aim
}

// widthRange shrinks platforms every tier of five, down to a floor
func widthRange(i int) (int, int) {
	shrink := (i / 5) * constants.JumpWidthDecay
	lo := max(constants.JumpWidthCap, constants.JumpWidthBigMin-shrink)
	hi := max(lo+20, constants.JumpWidthBigMax-shrink)
	return lo, hi
}

func randInt(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

// nextPlatform places platform i after prev so that some aim length lands on it
func nextPlatform(cfg Config, rng *rand.Rand, prev Platform, i int) Platform {
	reachMin := JumpDistance(cfg.AimMin) + 25
	reachMax := JumpDistance(cfg.AimMax) - constants.JumpReachMargin
	if reachMax <= reachMin+40 {
		reachMax = reachMin + 40
	}

	lo, hi := widthRange(i)
	w := float64(randInt(rng, lo, hi))
	takeoff := prev.Right() - constants.JumpTakeoffBack

	dist := float64(randInt(rng, int(reachMin), int(reachMax)))
	dist = min(max(dist, constants.JumpGapMin), constants.JumpGapMax)

	left := math.Trunc(takeoff + dist - w*(0.35+0.3*rng.Float64()))
	left = min(max(left, prev.Right()+constants.JumpGapMin), prev.Right()+constants.JumpGapMax)
	return Platform{Left: left, Width: w}
}

// NewCourse lays out the platforms for level; the first is the wide start ledge
func NewCourse(cfg Config, level int, rng *rand.Rand) []Platform {
	n := cfg.Platforms(max(level, 1))
	course := make([]Platform, 0, n)
	course = append(course, Platform{Left: constants.JumpStartLeft, Width: constants.JumpStartWidth})
	for len(course) < n {
		course = append(course, nextPlatform(cfg, rng, course[len(course)-1], len(course)))
	}
	return course
}

// Landing returns the first platform under x
func Landing(course []Platform, x float64) (int, bool) {
	for i, p := range course {
		if p.Contains(x) {
			return i, true
		}
	}
	return -1, false
}
