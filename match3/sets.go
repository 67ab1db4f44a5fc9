package match3

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// PointSet is an unordered set of cells
type PointSet = mapset.Set[Point]

func newPointSet(points ...Point) PointSet {
	s := mapset.New[Point]()
	for _, p := range points {
		s.Put(p)
	}
	return s
}

// sortedPoints returns the set in row-major order
func sortedPoints(s PointSet) []Point {
	out := make([]Point, 0, s.Size())
	s.Each(func(p Point) {
		out = append(out, p)
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}
