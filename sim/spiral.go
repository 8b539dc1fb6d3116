package sim

import "math"

const (
	spiralTurns      = 6
	spiralSpread     = 0.4 // outermost seed distance as a fraction of width
	spiralOrbitBase  = 0.0008
	spiralOrbitReach = 8 // core radii
	spiralPull       = 0.02
	spiralMinFactor  = 1.1
	spiralTrailAlpha = 0.8
)

// seedSpiral lays particles along a multi-turn arm: angle and distance both
// grow linearly with index, starting two core radii out.
func seedSpiral(s *State) {
	sf := s.Surface
	n := float64(len(s.Particles))
	for i := range s.Particles {
		angle := float64(i) * (2 * math.Pi * spiralTurns) / n
		distance := float64(i)/n*sf.Width*spiralSpread + sf.CoreRadius*2
		x, y := sf.Polar(angle, distance)
		s.Particles[i] = Particle{
			X:           x,
			Y:           y,
			Size:        s.rng.Float64()*1.5 + 0.5,
			SpeedFactor: s.rng.Float64()*0.4 + 0.6,
			Angle:       angle,
			Distance:    distance,
			Alpha:       s.rng.Float64()*0.5 + 0.5,
		}
	}
}

// OrbitalAdvance is the angle a particle at dist moves through in one step.
// Closer particles orbit faster; the result is linear in timeScale.
func OrbitalAdvance(sf Surface, speedFactor, dist, timeScale float64) float64 {
	base := spiralOrbitBase * timeScale * speedFactor
	return base * (sf.CoreRadius * spiralOrbitReach) / math.Max(dist, sf.CoreRadius)
}

// GravitationalPull is how far a particle at dist sinks toward the core in one step.
func GravitationalPull(sf Surface, dist, timeScale float64) float64 {
	return spiralPull * timeScale * (sf.CoreRadius / math.Max(dist, sf.CoreRadius))
}

func (s *State) stepSpiral(p *Particle, ts float64) bool {
	sf := s.Surface
	dist := sf.DistanceFromCenter(p.X, p.Y)

	p.Angle += OrbitalAdvance(sf, p.SpeedFactor, dist, ts)
	next := p.Distance - GravitationalPull(sf, dist, ts)
	if next <= s.Mode.MinDistance(sf) {
		s.respawnSpiral(p)
		return true
	}

	p.Trail.Push(Point{X: p.X, Y: p.Y})
	p.Distance = next
	p.X, p.Y = sf.Polar(p.Angle, p.Distance)
	return false
}

func (s *State) respawnSpiral(p *Particle) {
	angle, distance := s.randomInBand()
	p.Angle = angle
	p.Distance = distance
	p.X, p.Y = s.Surface.Polar(angle, distance)
	p.Trail.Reset()
}

// SpiralOpacity fades a trail as its particle nears the core.
func SpiralOpacity(sf Surface, p *Particle) float64 {
	if sf.CoreRadius <= 0 {
		return Clamp01(p.Alpha * spiralTrailAlpha)
	}
	factor := math.Min(1, (p.Distance-sf.CoreRadius)/(sf.CoreRadius*5))
	return Clamp01(factor * Clamp01(p.Alpha) * spiralTrailAlpha)
}
