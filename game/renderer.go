package game

import (
	"eventhorizon/sim"
)

// modeStyle holds the per-model look of the static elements.
type modeStyle struct {
	fadeAlpha float64 // opacity of the per-frame fade rect
	ringAlpha float64 // opacity of the accretion ring at the core edge
	ringWidth float64
	glow      bool
}

var modeStyles = map[sim.Mode]modeStyle{
	sim.ModeGravity: {fadeAlpha: 0.05, ringAlpha: 0.8, ringWidth: 2},
	sim.ModeSpiral:  {fadeAlpha: 0.03, ringAlpha: 0.4, ringWidth: 1.5, glow: true},
}

// Renderer issues the draw calls for one frame. Later calls land on top of
// earlier ones: fade, stars, glow, core, ring, particles.
type Renderer struct{}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Draw renders the current simulation state onto c.
func (r *Renderer) Draw(c Canvas, s *sim.State) {
	sf := s.Surface
	style := modeStyles[s.Mode]

	c.FillRect(0, 0, sf.Width, sf.Height, withAlpha(colorBackground, style.fadeAlpha))

	r.drawStars(c, s)
	if style.glow {
		r.drawGlow(c, sf)
	}

	c.FillCircle(sf.CenterX, sf.CenterY, sf.CoreRadius, colorCore)

	ringRadius := sf.CoreRadius * 1.2
	ring := sim.RingGradient(sf, style.ringAlpha)
	c.StrokeCircle(sf.CenterX, sf.CenterY, ringRadius, style.ringWidth, ring.At(ringRadius))

	for i := range s.Particles {
		r.drawParticle(c, s, &s.Particles[i])
	}
}

func (r *Renderer) drawStars(c Canvas, s *sim.State) {
	pulse := sim.Pulse(s.Elapsed)
	for _, st := range s.Stars {
		opacity := st.Opacity * pulse
		if st.Size <= 0 || opacity <= 0 {
			continue
		}
		c.FillCircle(st.X, st.Y, st.Size, withAlpha(colorParticle, opacity))
	}
}

// drawGlow approximates the radial gradient with concentric annuli, one
// glowStep wide, from the outer edge inward.
func (r *Renderer) drawGlow(c Canvas, sf sim.Surface) {
	g := sim.GlowGradient(sf)
	for radius := g.Outer - glowStep/2; radius > 0; radius -= glowStep {
		clr := g.At(radius)
		if clr.A == 0 {
			continue
		}
		c.StrokeCircle(sf.CenterX, sf.CenterY, radius, glowStep, clr)
	}
}

func (r *Renderer) drawParticle(c Canvas, s *sim.State, p *sim.Particle) {
	switch s.Mode {
	case sim.ModeSpiral:
		if p.Trail.Len() > 1 {
			c.StrokePolyline(p.Trail.Points(), p.Size, withAlpha(colorParticle, sim.SpiralOpacity(s.Surface, p)))
		}
		c.FillCircle(p.X, p.Y, p.Size/2, withAlpha(colorParticle, p.Alpha))
	default:
		tailX := p.X - p.VX*gravityTrailScale
		tailY := p.Y - p.VY*gravityTrailScale
		c.StrokeLine(p.X, p.Y, tailX, tailY, p.Size, withAlpha(colorParticle, sim.GravityOpacity(p)))
	}
}
