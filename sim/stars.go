package sim

import (
	"math"
	"time"
)

// Star is a static background point. Its brightness follows a pulse shared by
// every star, so it carries no per-frame state.
type Star struct {
	X, Y    float64
	Size    float64
	Opacity float64 // base opacity
}

// Pulse is the shared twinkle multiplier in [0, 1] at the given elapsed time.
func Pulse(elapsed time.Duration) float64 {
	ms := float64(elapsed) / float64(time.Millisecond)
	return 0.5 + math.Sin(ms*0.001)*0.5
}

// Brightness is the star's opacity at the given elapsed time.
func (st Star) Brightness(elapsed time.Duration) float64 {
	return Clamp01(st.Opacity * Pulse(elapsed))
}
