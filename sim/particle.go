package sim

import "math"

// TrailCap is the number of prior positions a particle remembers.
const TrailCap = 6

// Point is a position in logical units.
type Point struct {
	X, Y float64
}

// Trail is a bounded history of positions, most recent first.
type Trail struct {
	points [TrailCap]Point
	n      int
}

// Push records p as the most recent position, dropping the oldest when full.
func (t *Trail) Push(p Point) {
	if t.n < TrailCap {
		t.n++
	}
	copy(t.points[1:t.n], t.points[:t.n-1])
	t.points[0] = p
}

// Len returns the number of stored positions.
func (t *Trail) Len() int { return t.n }

// Points returns the stored positions, most recent first. The slice aliases
// the trail and is only valid until the next Push or Reset.
func (t *Trail) Points() []Point { return t.points[:t.n] }

// Reset clears the history.
func (t *Trail) Reset() { t.n = 0 }

// Particle is one record in the store. Gravity mode uses the velocity and
// OriginalDistance fields; spiral mode uses SpeedFactor and Trail.
type Particle struct {
	X, Y   float64
	VX, VY float64

	Size        float64
	SpeedFactor float64
	Angle       float64 // polar angle about the core
	Distance    float64 // distance from the core
	Alpha       float64 // opacity cap

	OriginalDistance float64
	Trail            Trail
}

// Speed is the magnitude of the particle's velocity.
func (p *Particle) Speed() float64 {
	return math.Hypot(p.VX, p.VY)
}
