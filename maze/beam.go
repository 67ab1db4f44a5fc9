package maze

import "math"

// Beam is the surveillance spotlight sweeping around the exit
// Positions are in cell units with cell centers at +0.5
type Beam struct {
	OriginX, OriginY float64
	Angle            float64 // radians, in [0, 2π)
	Speed            float64 // radians per second
	HalfAngle        float64 // radians
	Range            float64 // cells
}

// Advance rotates the beam by dt seconds
func (b *Beam) Advance(seconds float64) {
	b.Angle = math.Mod(b.Angle+b.Speed*seconds, 2*math.Pi)
	if b.Angle < 0 {
		b.Angle += 2 * math.Pi
	}
}

// Hits reports whether the point lies inside the cone
func (b *Beam) Hits(x, y float64) bool {
	dx, dy := x-b.OriginX, y-b.OriginY
	if dx*dx+dy*dy > b.Range*b.Range {
		return false
	}
	return math.Abs(wrapPi(math.Atan2(dy, dx)-b.Angle)) <= b.HalfAngle
}

// HitsCell tests the center of p
func (b *Beam) HitsCell(p Point) bool {
	return b.Hits(float64(p.X)+0.5, float64(p.Y)+0.5)
}

// wrapPi maps an angle into (-π, π]
func wrapPi(a float64) float64 {
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
