package match3

import (
	"math/rand"
	"time"

	"github.com/WGrassw/Paw-aware/constants"
)

// Fall is one tile moving down during gravity, in board cell units
type Fall struct {
	Tile  *Tile
	FromY float64
	To    Point
	Delay time.Duration
}

// Collapse compacts every column downward keeping order, then spawns random
// normal tiles above to fill it. Trash falls like any other tile
// Each started fall in a column is staggered by one drop step
func Collapse(g *Grid, rng *rand.Rand) []Fall {
	var falls []Fall
	for x := 0; x < Width; x++ {
		write := Height - 1
		started := 0
		for y := Height - 1; y >= 0; y-- {
			t := g[y][x]
			if t == nil {
				continue
			}
			if y != write {
				g[write][x] = t
				g[y][x] = nil
				falls = append(falls, Fall{
					Tile:  t,
					FromY: float64(y),
					To:    Point{X: x, Y: write},
					Delay: time.Duration(started) * constants.Match3DropStep,
				})
				started++
			}
			write--
		}

		spawn := write + 1
		for i := 0; i < spawn; i++ {
			y := write - i
			t := RandomNormal(rng)
			g[y][x] = t
			falls = append(falls, Fall{
				Tile:  t,
				FromY: float64(-(spawn - i)),
				To:    Point{X: x, Y: y},
				Delay: time.Duration(started) * constants.Match3DropStep,
			})
			started++
		}
	}
	return falls
}
