package match3

import (
	"math/rand"
	"strings"
	"testing"
)

var colorLetters = map[byte]Color{'b': Blue, 'g': Green, 'p': Pink, 'u': Purple, 'w': White, 'y': Yellow}

// mustGrid parses whitespace separated tokens, one row per string:
// b g p u w y normal, suffix - striped row, | striped col, * bomb,
// R rainbow, T trash, . hole
func mustGrid(t *testing.T, rows ...string) Grid {
	t.Helper()
	var g Grid
	if len(rows) != Height {
		t.Fatalf("Expected %d rows, got %d", Height, len(rows))
	}
	for y, row := range rows {
		toks := strings.Fields(row)
		if len(toks) != Width {
			t.Fatalf("Expected %d tokens in row %d, got %d", Width, y, len(toks))
		}
		for x, tok := range toks {
			g[y][x] = parseTile(t, tok)
		}
	}
	return g
}

func parseTile(t *testing.T, tok string) *Tile {
	t.Helper()
	switch tok {
	case ".":
		return nil
	case "R":
		return Rainbow()
	case "T":
		return Trash()
	}
	c, ok := colorLetters[tok[0]]
	if !ok {
		t.Fatalf("unknown tile token %q", tok)
	}
	if len(tok) == 1 {
		return Normal(c)
	}
	switch tok[1] {
	case '-':
		return Striped(c, AxisRow)
	case '|':
		return Striped(c, AxisCol)
	case '*':
		return Bomb(c)
	}
	t.Fatalf("unknown tile token %q", tok)
	return nil
}

// diagonalGrid has no two equal neighbors in any row or column
func diagonalGrid() Grid {
	var g Grid
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			g[y][x] = Normal(Color((x + 2*y) % int(ColorCount)))
		}
	}
	return g
}

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func holes(g *Grid) []Point {
	var out []Point
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if g[y][x] == nil {
				out = append(out, Point{X: x, Y: y})
			}
		}
	}
	return out
}

func trashCells(g *Grid) []Point {
	var out []Point
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if g[y][x].IsTrash() {
				out = append(out, Point{X: x, Y: y})
			}
		}
	}
	return out
}

// sameLayout compares tile identity cell by cell
func sameLayout(a, b *Grid) bool {
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if a[y][x] != b[y][x] {
				return false
			}
		}
	}
	return true
}
