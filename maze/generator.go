package maze

import "math/rand"

// Point is a maze cell coordinate
type Point struct {
	X, Y int
}

func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

var (
	steps = [4]Point{{X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0}}
	jumps = [4]Point{{X: 0, Y: -2}, {X: 0, Y: 2}, {X: -2, Y: 0}, {X: 2, Y: 0}}
)

// Layout is a generated maze: walls on a grid with odd dimensions, rooms on
// odd coordinates, the start in the top-left room and the exit at the floor
// cell farthest from it
type Layout struct {
	Width, Height int
	Start, Exit   Point

	walls []bool
}

// Generate carves a maze of at most w by h cells
// braiding in [0,1] is the chance that a dead end gets opened into a loop;
// 0 gives a perfect maze
func Generate(w, h int, braiding float64, rng *rand.Rand) *Layout {
	l := &Layout{
		Width:  oddAtMost(w),
		Height: oddAtMost(h),
		Start:  Point{X: 1, Y: 1},
	}
	l.walls = make([]bool, l.Width*l.Height)
	for i := range l.walls {
		l.walls[i] = true
	}

	l.carve(l.Start, rng)
	if braiding > 0 {
		l.braid(braiding, rng)
	}
	l.Exit, _ = l.FarthestFrom(l.Start)
	return l
}

// NewLayout builds a layout from rows of '#' walls and '.' floors, for fixtures
func NewLayout(rows []string, start, exit Point) *Layout {
	l := &Layout{Height: len(rows), Start: start, Exit: exit}
	if len(rows) > 0 {
		l.Width = len(rows[0])
	}
	l.walls = make([]bool, l.Width*l.Height)
	for y, row := range rows {
		for x := 0; x < l.Width; x++ {
			l.walls[y*l.Width+x] = x >= len(row) || row[x] == '#'
		}
	}
	return l
}

func oddAtMost(n int) int {
	if n < 3 {
		return 3
	}
	if n%2 == 0 {
		return n - 1
	}
	return n
}

// In reports whether p is on the grid
func (l *Layout) In(p Point) bool {
	return p.X >= 0 && p.X < l.Width && p.Y >= 0 && p.Y < l.Height
}

// Wall reports whether p blocks movement; off-grid cells are walls
func (l *Layout) Wall(p Point) bool {
	if !l.In(p) {
		return true
	}
	return l.walls[p.Y*l.Width+p.X]
}

func (l *Layout) open(p Point) {
	l.walls[p.Y*l.Width+p.X] = false
}

// carve runs an iterative recursive backtracker from start, which yields a
// uniform spanning tree over the rooms
func (l *Layout) carve(start Point, rng *rand.Rand) {
	stack := []Point{start}
	l.open(start)

	candidates := make([]Point, 0, 4)
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		candidates = candidates[:0]
		for _, d := range jumps {
			next := cur.Add(d)
			if next.X > 0 && next.X < l.Width-1 && next.Y > 0 && next.Y < l.Height-1 && l.Wall(next) {
				candidates = append(candidates, d)
			}
		}
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		d := candidates[rng.Intn(len(candidates))]
		l.open(Point{X: cur.X + d.X/2, Y: cur.Y + d.Y/2})
		next := cur.Add(d)
		l.open(next)
		stack = append(stack, next)
	}
}

// braid opens one wall next to some dead ends, never creating a 2x2 open
// plaza or a free-standing wall pillar
func (l *Layout) braid(chance float64, rng *rand.Rand) {
	candidates := make([]Point, 0, 4)
	for y := 1; y < l.Height-1; y += 2 {
		for x := 1; x < l.Width-1; x += 2 {
			room := Point{X: x, Y: y}
			if l.Wall(room) || l.exits(room) != 1 || rng.Float64() >= chance {
				continue
			}
			candidates = candidates[:0]
			for _, d := range jumps {
				next := room.Add(d)
				wall := Point{X: x + d.X/2, Y: y + d.Y/2}
				if l.In(next) && !l.Wall(next) && l.Wall(wall) && l.canOpen(wall) {
					candidates = append(candidates, wall)
				}
			}
			if len(candidates) > 0 {
				l.open(candidates[rng.Intn(len(candidates))])
			}
		}
	}
}

func (l *Layout) exits(p Point) int {
	n := 0
	for _, d := range steps {
		if !l.Wall(p.Add(d)) {
			n++
		}
	}
	return n
}

// canOpen reports whether turning wall w into floor keeps the maze free of
// plazas and pillars
func (l *Layout) canOpen(w Point) bool {
	floor := func(x, y int) bool {
		p := Point{X: x, Y: y}
		return l.In(p) && !l.Wall(p)
	}
	x, y := w.X, w.Y
	if (floor(x-1, y-1) && floor(x, y-1) && floor(x-1, y)) ||
		(floor(x, y-1) && floor(x+1, y-1) && floor(x+1, y)) ||
		(floor(x-1, y) && floor(x-1, y+1) && floor(x, y+1)) ||
		(floor(x+1, y) && floor(x, y+1) && floor(x+1, y+1)) {
		return false
	}

	for _, d := range steps {
		n := w.Add(d)
		if !l.In(n) || !l.Wall(n) {
			continue
		}
		attached := false
		for _, d2 := range steps {
			nn := n.Add(d2)
			if nn != w && l.In(nn) && l.Wall(nn) {
				attached = true
				break
			}
		}
		if !attached {
			return false
		}
	}
	return true
}

// FarthestFrom walks the floor breadth-first and returns the cell with the
// greatest step distance; ties keep the first one reached
func (l *Layout) FarthestFrom(start Point) (Point, int) {
	dist := map[Point]int{start: 0}
	queue := []Point{start}
	far := start
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if dist[cur] > dist[far] {
			far = cur
		}
		for _, d := range steps {
			next := cur.Add(d)
			if _, seen := dist[next]; seen || l.Wall(next) {
				continue
			}
			dist[next] = dist[cur] + 1
			queue = append(queue, next)
		}
	}
	return far, dist[far]
}

// Path returns the shortest floor route from a to b, both ends included,
// or nil when b is unreachable
func (l *Layout) Path(a, b Point) []Point {
	if l.Wall(a) || l.Wall(b) {
		return nil
	}
	from := map[Point]Point{}
	seen := map[Point]bool{a: true}
	queue := []Point{a}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == b {
			path := []Point{cur}
			for cur != a {
				cur = from[cur]
				path = append(path, cur)
			}
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}
		for _, d := range steps {
			next := cur.Add(d)
			if seen[next] || l.Wall(next) {
				continue
			}
			seen[next] = true
			from[next] = cur
			queue = append(queue, next)
		}
	}
	return nil
}
