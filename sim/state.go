package sim

import (
	"math"
	"math/rand"
	"time"
)

// ReferenceFrame is the frame duration the per-frame constants were tuned at.
const ReferenceFrame = 16670 * time.Microsecond

// TimeScale normalizes an elapsed duration against ReferenceFrame.
func TimeScale(dt time.Duration) float64 {
	return float64(dt) / float64(ReferenceFrame)
}

// Options configures a new State.
type Options struct {
	Mode Mode
	// Particles overrides the mode's default count when positive.
	Particles int
	Resize    ResizePolicy
}

// State is the simulation record owned by one mounted effect. Step and Resize
// mutate it in place; nothing else writes particle state after New.
type State struct {
	Mode      Mode
	Surface   Surface
	Particles []Particle
	Stars     []Star

	// Elapsed is the simulated time since the state was created.
	Elapsed time.Duration
	// Respawns counts every respawn since creation.
	Respawns int

	// laidOut is the last non-empty surface the particles were placed on.
	laidOut Surface
	resize  ResizePolicy
	rng     *rand.Rand
}

// New allocates and seeds the particle store for sf.
func New(opts Options, sf Surface, rng *rand.Rand) *State {
	n := opts.Particles
	if n <= 0 {
		n = opts.Mode.DefaultParticles()
	}
	s := &State{
		Mode:      opts.Mode,
		Surface:   sf,
		Particles: make([]Particle, n),
		resize:    opts.Resize,
		rng:       rng,
	}
	if !sf.Empty() {
		s.laidOut = sf
	}
	s.seedParticles()
	s.seedStars()
	return s
}

func (s *State) seedParticles() {
	switch s.Mode {
	case ModeSpiral:
		seedSpiral(s)
	default:
		seedGravity(s)
	}
}

func (s *State) seedStars() {
	n := s.Mode.StarCount()
	s.Stars = make([]Star, n)
	for i := range s.Stars {
		s.Stars[i] = Star{
			X:       s.rng.Float64() * s.Surface.Width,
			Y:       s.rng.Float64() * s.Surface.Height,
			Size:    s.rng.Float64() * 1.5,
			Opacity: s.rng.Float64()*0.8 + 0.2,
		}
	}
}

// Step advances every particle by dt and returns how many respawned.
func (s *State) Step(dt time.Duration) int {
	if dt < 0 {
		dt = 0
	}
	s.Elapsed += dt
	if s.Surface.Empty() {
		return 0
	}

	ts := TimeScale(dt)
	respawns := 0
	for i := range s.Particles {
		p := &s.Particles[i]
		var respawned bool
		switch s.Mode {
		case ModeSpiral:
			respawned = s.stepSpiral(p, ts)
		default:
			respawned = s.stepGravity(p, ts)
		}
		if respawned {
			respawns++
		}
	}
	s.Respawns += respawns
	return respawns
}

// Resize installs a new surface and applies the resize policy to live
// particles. An empty surface only hides the effect; particles keep their
// layout until a drawable surface arrives.
func (s *State) Resize(sf Surface) {
	s.Surface = sf
	if sf.Empty() {
		return
	}
	old := s.laidOut
	s.laidOut = sf

	switch {
	case s.resize == ResizeReseed, s.resize == ResizeRescale && old.Empty():
		for i := range s.Particles {
			s.Particles[i] = Particle{}
		}
		s.seedParticles()
	case s.resize == ResizeRescale:
		k := sf.Width / old.Width
		for i := range s.Particles {
			p := &s.Particles[i]
			p.Distance *= k
			p.OriginalDistance *= k
			p.X = sf.CenterX + (p.X-old.CenterX)*k
			p.Y = sf.CenterY + (p.Y-old.CenterY)*k
			p.Trail.Reset()
		}
	}
}

// randomInBand picks a fresh angle and a distance in the respawn band.
func (s *State) randomInBand() (angle, distance float64) {
	lo, hi := s.Surface.RespawnBand()
	distance = lo + s.rng.Float64()*(hi-lo)
	angle = s.rng.Float64() * 2 * math.Pi
	return angle, distance
}

// Clamp01 limits v to [0, 1]; NaN maps to 0.
func Clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
