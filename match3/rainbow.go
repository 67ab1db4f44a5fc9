package match3

import (
	"math/rand"
)

// RainbowPlan is a staged rainbow activation: chosen cells turn into copies of
// the template one at a time, then everything converted is cleared
type RainbowPlan struct {
	Rainbow  Point
	Other    Point
	Template *Tile
	Chosen   []Point

	queue     []Point
	converted []Point
}

// BuildRainbowPlan picks ratio of the eligible cells (at least one) to convert
// Returns nil when the partner cannot serve as a template
func BuildRainbowPlan(g *Grid, rainbow, other Point, ratio float64, rng *rand.Rand) *RainbowPlan {
	template := g.At(other).Template()
	if template == nil {
		return nil
	}

	var cand []Point
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			p := Point{X: x, Y: y}
			if moveCandidate(g.At(p)) {
				cand = append(cand, p)
			}
		}
	}
	if len(cand) == 0 {
		return nil
	}

	n := max(int(float64(len(cand))*ratio), 1)
	n = min(n, len(cand))
	chosen := make([]Point, n)
	for i, idx := range rng.Perm(len(cand))[:n] {
		chosen[i] = cand[idx]
	}

	return &RainbowPlan{
		Rainbow:  rainbow,
		Other:    other,
		Template: template,
		Chosen:   chosen,
		queue:    append([]Point(nil), chosen...),
	}
}

// Pending reports whether cells remain to convert
func (p *RainbowPlan) Pending() bool {
	return len(p.queue) > 0
}

// Converted returns the cells converted so far
func (p *RainbowPlan) Converted() []Point {
	return p.converted
}

// ConvertNext turns the next chosen cell into a copy of the template
func (p *RainbowPlan) ConvertNext(g *Grid) (Point, bool) {
	if len(p.queue) == 0 {
		return Point{}, false
	}
	next := p.queue[0]
	p.queue = p.queue[1:]
	g.Set(next, p.Template.Template())
	p.converted = append(p.converted, next)
	return next, true
}

// ClearSet is the final set removed once conversion finishes: the converted
// cells, expanded through specials when the template is special, plus the
// rainbow and its partner
func (p *RainbowPlan) ClearSet(g *Grid) PointSet {
	var set PointSet
	if p.Template.Kind == KindNormal {
		set = newPointSet(p.converted...)
	} else {
		set = ExpandChain(g, p.converted)
	}
	set.Put(p.Rainbow)
	set.Put(p.Other)
	return set
}
