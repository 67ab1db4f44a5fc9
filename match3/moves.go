package match3

import "math/rand"

// Move is a pair of adjacent cells to swap
type Move struct {
	A, B Point
}

// MatchAfterSwap reports whether swapping a and b would create a run; the grid is left unchanged
func MatchAfterSwap(g *Grid, a, b Point) bool {
	g.Swap(a, b)
	ok := HasMatch(g)
	g.Swap(a, b)
	return ok
}

func moveCandidate(t *Tile) bool {
	return t != nil && t.Kind != KindTrash && t.Kind != KindRainbow
}

// FindValidMove returns the first swap, scanning row-major and trying right then down,
// that creates a run; trash, rainbows and holes are skipped
func FindValidMove(g *Grid) (Move, bool) {
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			a := Point{X: x, Y: y}
			if !moveCandidate(g.At(a)) {
				continue
			}
			for _, b := range []Point{{X: x + 1, Y: y}, {X: x, Y: y + 1}} {
				if !b.In() || !moveCandidate(g.At(b)) {
					continue
				}
				if MatchAfterSwap(g, a, b) {
					return Move{A: a, B: b}, true
				}
			}
		}
	}
	return Move{}, false
}

// HasValidMove reports whether any swap creates a run
func HasValidMove(g *Grid) bool {
	_, ok := FindValidMove(g)
	return ok
}

// Shuffle permutes every non-trash tile in place until the board has no runs and at
// least one valid move; trash keeps its cells. Returns false after tries failures
func Shuffle(g *Grid, rng *rand.Rand, tries int) bool {
	var cells []Point
	var pool []*Tile
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			p := Point{X: x, Y: y}
			t := g.At(p)
			if t == nil || t.IsTrash() {
				continue
			}
			cells = append(cells, p)
			pool = append(pool, t)
		}
	}

	for i := 0; i < tries; i++ {
		rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
		for k, p := range cells {
			g.Set(p, pool[k])
		}
		if HasMatch(g) {
			continue
		}
		if HasValidMove(g) {
			return true
		}
	}
	return false
}
