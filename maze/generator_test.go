package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// floorGraph counts floor cells and orthogonally adjacent floor pairs
func floorGraph(l *Layout) (cells, edges int) {
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			p := Point{X: x, Y: y}
			if l.Wall(p) {
				continue
			}
			cells++
			if !l.Wall(p.Add(Point{X: 1})) {
				edges++
			}
			if !l.Wall(p.Add(Point{Y: 1})) {
				edges++
			}
		}
	}
	return cells, edges
}

func reachable(l *Layout) int {
	seen := map[Point]bool{l.Start: true}
	queue := []Point{l.Start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range steps {
			n := cur.Add(d)
			if !seen[n] && !l.Wall(n) {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(seen)
}

func hasPlaza(l *Layout) bool {
	for y := 0; y < l.Height-1; y++ {
		for x := 0; x < l.Width-1; x++ {
			p := Point{X: x, Y: y}
			if !l.Wall(p) && !l.Wall(p.Add(Point{X: 1})) &&
				!l.Wall(p.Add(Point{Y: 1})) && !l.Wall(p.Add(Point{X: 1, Y: 1})) {
				return true
			}
		}
	}
	return false
}

func TestGeneratePerfectMaze(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		l := Generate(45, 29, 0, seeded(seed))
		require.Equal(t, 45, l.Width)
		require.Equal(t, 29, l.Height)

		for x := 0; x < l.Width; x++ {
			assert.True(t, l.Wall(Point{X: x, Y: 0}))
			assert.True(t, l.Wall(Point{X: x, Y: l.Height - 1}))
		}
		for y := 0; y < l.Height; y++ {
			assert.True(t, l.Wall(Point{X: 0, Y: y}))
			assert.True(t, l.Wall(Point{X: l.Width - 1, Y: y}))
		}

		for y := 1; y < l.Height; y += 2 {
			for x := 1; x < l.Width; x += 2 {
				assert.False(t, l.Wall(Point{X: x, Y: y}), "room %d,%d carved", x, y)
			}
		}

		cells, edges := floorGraph(l)
		assert.Equal(t, cells-1, edges, "a perfect maze is a tree")
		assert.Equal(t, cells, reachable(l))
		assert.False(t, hasPlaza(l))
	}
}

func TestGenerateRoundsDownToOdd(t *testing.T) {
	l := Generate(10, 8, 0, seeded(1))
	assert.Equal(t, 9, l.Width)
	assert.Equal(t, 7, l.Height)

	l = Generate(1, 1, 0, seeded(1))
	assert.Equal(t, 3, l.Width)
	assert.Equal(t, 3, l.Height)
	assert.Equal(t, l.Start, l.Exit, "a single room is its own exit")
}

func TestExitIsFarthestFloor(t *testing.T) {
	l := Generate(45, 29, 0, seeded(7))
	far, dist := l.FarthestFrom(l.Start)
	assert.Equal(t, far, l.Exit)
	assert.False(t, l.Wall(l.Exit))

	path := l.Path(l.Start, l.Exit)
	require.NotEmpty(t, path)
	assert.Equal(t, dist, len(path)-1)
	assert.Equal(t, l.Start, path[0])
	assert.Equal(t, l.Exit, path[len(path)-1])
	for i := 1; i < len(path); i++ {
		dx, dy := path[i].X-path[i-1].X, path[i].Y-path[i-1].Y
		assert.Equal(t, 1, dx*dx+dy*dy, "path steps are orthogonal")
	}
}

func TestBraidingAddsLoopsWithoutPlazas(t *testing.T) {
	perfect := Generate(45, 29, 0, seeded(3))
	braided := Generate(45, 29, 1, seeded(3))

	pc, pe := floorGraph(perfect)
	bc, be := floorGraph(braided)
	assert.Equal(t, pc-1, pe)
	assert.Greater(t, be-bc, pe-pc, "braiding opens cycles")
	assert.Equal(t, bc, reachable(braided))
	assert.False(t, hasPlaza(braided))
}

func TestFarthestFromCorridor(t *testing.T) {
	l := NewLayout([]string{
		"#######",
		"#.....#",
		"#.###.#",
		"#.#...#",
		"#######",
	}, Point{X: 1, Y: 1}, Point{})

	far, dist := l.FarthestFrom(l.Start)
	assert.Equal(t, Point{X: 3, Y: 3}, far)
	assert.Equal(t, 8, dist)

	assert.Nil(t, l.Path(l.Start, Point{X: 2, Y: 2}), "walls are unreachable")
	assert.Len(t, l.Path(l.Start, Point{X: 1, Y: 3}), 3)
}
