package match3

import (
	"math/rand"

	"github.com/WGrassw/Paw-aware/constants"
)

const (
	Width  = constants.Match3Width
	Height = constants.Match3Height
)

// Point is a board cell, X column and Y row, origin top-left
type Point struct {
	X, Y int
}

// In reports whether p is on the board
func (p Point) In() bool {
	return p.X >= 0 && p.X < Width && p.Y >= 0 && p.Y < Height
}

// Adjacent reports orthogonal neighbors
func Adjacent(a, b Point) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx+dy*dy == 1
}

// Grid is the board; nil cells are holes
type Grid [Height][Width]*Tile

// At returns the tile at p, nil off-board
func (g *Grid) At(p Point) *Tile {
	if !p.In() {
		return nil
	}
	return g[p.Y][p.X]
}

// Set places t at p
func (g *Grid) Set(p Point, t *Tile) {
	g[p.Y][p.X] = t
}

// Swap exchanges two cells
func (g *Grid) Swap(a, b Point) {
	g[a.Y][a.X], g[b.Y][b.X] = g[b.Y][b.X], g[a.Y][a.X]
}

// HasHoles reports any empty cell
func (g *Grid) HasHoles() bool {
	for y := range g {
		for x := range g[y] {
			if g[y][x] == nil {
				return true
			}
		}
	}
	return false
}

// Count returns the number of tiles of kind on the board
func (g *Grid) Count(kind Kind) int {
	n := 0
	for y := range g {
		for x := range g[y] {
			if t := g[y][x]; t != nil && t.Kind == kind {
				n++
			}
		}
	}
	return n
}

// Clear removes every non-trash tile in cells
func (g *Grid) Clear(cells []Point) {
	for _, p := range cells {
		if t := g.At(p); t != nil && !t.IsTrash() {
			g.Set(p, nil)
		}
	}
}

// RandomNormal draws a normal tile of a uniform color
func RandomNormal(rng *rand.Rand) *Tile {
	return Normal(Color(rng.Intn(int(ColorCount))))
}

// NewGrid fills a board with normal tiles and rerolls until no run exists
func NewGrid(rng *rand.Rand) Grid {
	var g Grid
	for y := range g {
		for x := range g[y] {
			g[y][x] = RandomNormal(rng)
		}
	}
	for {
		matched, _, _ := FindRuns(&g)
		if matched.Size() == 0 {
			return g
		}
		for _, p := range sortedPoints(matched) {
			g.Set(p, RandomNormal(rng))
		}
	}
}

// PlaceTrash puts n trash tiles on distinct random columns of the top row
func (g *Grid) PlaceTrash(rng *rand.Rand, n int) []Point {
	cols := rng.Perm(Width)
	n = min(n, Width)
	placed := make([]Point, 0, n)
	for _, x := range cols[:n] {
		p := Point{X: x, Y: 0}
		g.Set(p, Trash())
		placed = append(placed, p)
	}
	return placed
}

// BottomTrash lists trash cells on the bottom row, left to right
func (g *Grid) BottomTrash() []Point {
	var out []Point
	y := Height - 1
	for x := 0; x < Width; x++ {
		if g[y][x].IsTrash() {
			out = append(out, Point{X: x, Y: y})
		}
	}
	return out
}
