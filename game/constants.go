package game

import (
	"image/color"
	"math"
	"time"
)

// Frame timing
const (
	maxFrameDelta  = 100 * time.Millisecond // clamp after a stall so particles don't jump
	fpsSampleEvery = 0.5                    // seconds
)

// Particle rendering
const (
	gravityTrailScale = 5.0 // segment length in frames of velocity
	glowStep          = 1.0 // logical width of each glow annulus
)

// Color constants
var (
	colorBackground = color.NRGBA{A: 255}
	colorCore       = color.NRGBA{A: 255}
	colorParticle   = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	colorSubtitle   = color.NRGBA{R: 209, G: 213, B: 219, A: 255}
	colorButton     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	colorButtonText = color.NRGBA{A: 255}
)

// withAlpha returns c with its alpha replaced by opacity in [0, 1].
func withAlpha(c color.NRGBA, opacity float64) color.NRGBA {
	if !(opacity > 0) {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	c.A = uint8(math.Round(opacity * 255))
	return c
}
