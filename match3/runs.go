package match3

import (
	"math/rand"
	"sort"

	"github.com/WGrassw/Paw-aware/constants"
)

// Run is a maximal line of at least three equal match colors
type Run struct {
	Cells      []Point
	Horizontal bool
}

// FindRuns scans rows then columns; holes, trash and rainbows break runs
func FindRuns(g *Grid) (matched PointSet, horiz, vert []Run) {
	matched = newPointSet()

	scan := func(length int, at func(i int) Point, horizontal bool) []Run {
		var runs []Run
		run := []Point{at(0)}
		flush := func() {
			if len(run) >= constants.Match3MinRun {
				runs = append(runs, Run{Cells: append([]Point(nil), run...), Horizontal: horizontal})
				for _, p := range run {
					matched.Put(p)
				}
			}
		}
		for i := 1; i < length; i++ {
			c1, ok1 := g.At(at(i)).MatchColor()
			c0, ok0 := g.At(at(i - 1)).MatchColor()
			if ok1 && ok0 && c1 == c0 {
				run = append(run, at(i))
				continue
			}
			flush()
			run = []Point{at(i)}
		}
		flush()
		return runs
	}

	for y := 0; y < Height; y++ {
		horiz = append(horiz, scan(Width, func(i int) Point { return Point{X: i, Y: y} }, true)...)
	}
	for x := 0; x < Width; x++ {
		vert = append(vert, scan(Height, func(i int) Point { return Point{X: x, Y: i} }, false)...)
	}
	return matched, horiz, vert
}

// HasMatch reports whether any run exists
func HasMatch(g *Grid) bool {
	matched, _, _ := FindRuns(g)
	return matched.Size() > 0
}

// ChooseSpecials decides which special tiles a resolving pass creates
// At most one bomb at a run intersection, a striped tile for every run of four
// and one rainbow for the longest run of five or more. Chosen cells are
// protected: they receive the special instead of being cleared
func ChooseSpecials(g *Grid, horiz, vert []Run, rng *rand.Rand) (map[Point]*Tile, PointSet) {
	specials := make(map[Point]*Tile)
	protected := newPointSet()

	hset, vset := newPointSet(), newPointSet()
	for _, r := range horiz {
		for _, p := range r.Cells {
			hset.Put(p)
		}
	}
	for _, r := range vert {
		for _, p := range r.Cells {
			vset.Put(p)
		}
	}

	var cross []Point
	for _, p := range sortedPoints(hset) {
		if vset.Has(p) {
			cross = append(cross, p)
		}
	}
	rng.Shuffle(len(cross), func(i, j int) { cross[i], cross[j] = cross[j], cross[i] })
	for _, p := range cross {
		t := g.At(p)
		if t == nil || t.IsTrash() {
			continue
		}
		c, ok := t.MatchColor()
		if !ok {
			c = Color(rng.Intn(int(ColorCount)))
		}
		specials[p] = Bomb(c)
		protected.Put(p)
		break
	}

	runs := make([]Run, 0, len(horiz)+len(vert))
	runs = append(runs, horiz...)
	runs = append(runs, vert...)
	sort.SliceStable(runs, func(i, j int) bool { return len(runs[i].Cells) > len(runs[j].Cells) })

	placedRainbow := false
	for _, r := range runs {
		var cand []Point
		for _, p := range r.Cells {
			if !protected.Has(p) {
				cand = append(cand, p)
			}
		}
		if len(cand) == 0 {
			continue
		}
		p := cand[len(cand)/2]
		t := g.At(p)
		if t == nil || t.IsTrash() {
			continue
		}

		switch {
		case len(r.Cells) >= 5 && !placedRainbow:
			specials[p] = Rainbow()
			protected.Put(p)
			placedRainbow = true
		case len(r.Cells) == 4:
			c, ok := t.MatchColor()
			if !ok {
				c = Color(rng.Intn(int(ColorCount)))
			}
			axis := AxisCol
			if r.Horizontal {
				axis = AxisRow
			}
			specials[p] = Striped(c, axis)
			protected.Put(p)
		}
	}
	return specials, protected
}

// blastArea lists the cells a single special tile clears, excluding trash and holes
func blastArea(g *Grid, p Point) []Point {
	t := g.At(p)
	if t == nil || t.IsTrash() {
		return nil
	}
	var out []Point
	add := func(q Point) {
		if tt := g.At(q); tt != nil && !tt.IsTrash() {
			out = append(out, q)
		}
	}
	switch t.Kind {
	case KindStriped:
		if t.Axis == AxisRow {
			for x := 0; x < Width; x++ {
				add(Point{X: x, Y: p.Y})
			}
		} else {
			for y := 0; y < Height; y++ {
				add(Point{X: p.X, Y: y})
			}
		}
	case KindBomb:
		for y := p.Y - 1; y <= p.Y+1; y++ {
			for x := p.X - 1; x <= p.X+1; x++ {
				if q := (Point{X: x, Y: y}); q.In() {
					add(q)
				}
			}
		}
	default:
		out = append(out, p)
	}
	return out
}

// ExpandChain grows seeds through every striped or bomb tile they reach, breadth first
// Trash and holes are never included
func ExpandChain(g *Grid, seeds []Point) PointSet {
	clear := newPointSet()
	queue := make([]Point, 0, len(seeds))
	for _, p := range seeds {
		t := g.At(p)
		if t == nil || t.IsTrash() || clear.Has(p) {
			continue
		}
		clear.Put(p)
		queue = append(queue, p)
	}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		t := g.At(p)
		if t == nil || (t.Kind != KindStriped && t.Kind != KindBomb) {
			continue
		}
		for _, q := range blastArea(g, p) {
			if !clear.Has(q) {
				clear.Put(q)
				queue = append(queue, q)
			}
		}
	}
	return clear
}
