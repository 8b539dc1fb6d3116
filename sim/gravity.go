package sim

import "math"

const (
	gravityStrength = 10   // pull numerator, in core radii
	swirlStrength   = 0.2  // tangential acceleration at the core
	swirlReach      = 10   // swirl fades to zero at this many core radii
	gravityDamping  = 0.99 // per reference frame
)

func seedGravity(s *State) {
	sf := s.Surface
	reach := math.Max(sf.Width, sf.Height) / 2
	for i := range s.Particles {
		angle := s.rng.Float64() * 2 * math.Pi
		distance := s.rng.Float64() * reach
		x, y := sf.Polar(angle, distance)
		s.Particles[i] = Particle{
			X:                x,
			Y:                y,
			Size:             s.rng.Float64()*2 + 0.5,
			Angle:            angle,
			Distance:         distance,
			Alpha:            s.rng.Float64()*0.5 + 0.5,
			OriginalDistance: distance,
		}
	}
}

// stepGravity applies the inverse-square pull and swirl, integrates, damps and
// respawns the particle if it fell into the core or left the surface.
func (s *State) stepGravity(p *Particle, ts float64) bool {
	sf := s.Surface
	dx := sf.CenterX - p.X
	dy := sf.CenterY - p.Y
	dist := math.Hypot(dx, dy)

	// A seed can land inside the core; never divide by less than its radius.
	d := math.Max(dist, sf.CoreRadius)
	force := sf.CoreRadius * gravityStrength / (d * d)
	angle := math.Atan2(dy, dx)
	p.VX += math.Cos(angle) * force * ts
	p.VY += math.Sin(angle) * force * ts

	swirl := SwirlForce(sf, dist)
	perp := angle + math.Pi/2
	p.VX += math.Cos(perp) * swirl * ts
	p.VY += math.Sin(perp) * swirl * ts

	p.X += p.VX * ts
	p.Y += p.VY * ts

	damp := math.Pow(gravityDamping, ts)
	p.VX *= damp
	p.VY *= damp

	p.Distance = sf.DistanceFromCenter(p.X, p.Y)
	p.Angle = math.Atan2(p.Y-sf.CenterY, p.X-sf.CenterX)
	if p.Distance < sf.CoreRadius || !sf.Contains(p.X, p.Y) {
		s.respawnGravity(p)
		return true
	}
	return false
}

func (s *State) respawnGravity(p *Particle) {
	angle, distance := s.randomInBand()
	p.X, p.Y = s.Surface.Polar(angle, distance)
	p.VX, p.VY = 0, 0
	p.Angle = angle
	p.Distance = distance
	p.OriginalDistance = distance
}

// SwirlForce is the tangential acceleration at dist; it is strongest at the
// core and zero beyond swirlReach core radii.
func SwirlForce(sf Surface, dist float64) float64 {
	reach := sf.CoreRadius * swirlReach
	if reach <= 0 {
		return 0
	}
	return swirlStrength * (1 - math.Min(1, dist/reach))
}

// GravityOpacity scales a particle's alpha by its speed.
func GravityOpacity(p *Particle) float64 {
	return Clamp01(math.Min(1, p.Speed()*2) * Clamp01(p.Alpha))
}
