package sim

import (
	"image/color"
	"math"
)

// GradientStop is a color at a fractional offset between a gradient's radii.
type GradientStop struct {
	Offset float64
	Color  color.NRGBA
}

// RadialGradient is a concentric color ramp from Inner to Outer radius.
// Stops must be sorted by Offset.
type RadialGradient struct {
	Inner, Outer float64
	Stops        []GradientStop
}

// At samples the gradient at radius r. Radii outside [Inner, Outer] take the
// nearest end stop.
func (g RadialGradient) At(r float64) color.NRGBA {
	if len(g.Stops) == 0 {
		return color.NRGBA{}
	}
	t := 0.0
	if span := g.Outer - g.Inner; span > 0 {
		t = (r - g.Inner) / span
	}
	first, last := g.Stops[0], g.Stops[len(g.Stops)-1]
	if t <= first.Offset {
		return first.Color
	}
	if t >= last.Offset {
		return last.Color
	}
	for i := 1; i < len(g.Stops); i++ {
		a, b := g.Stops[i-1], g.Stops[i]
		if t > b.Offset {
			continue
		}
		f := 0.0
		if b.Offset > a.Offset {
			f = (t - a.Offset) / (b.Offset - a.Offset)
		}
		return lerpColor(a.Color, b.Color, f)
	}
	return last.Color
}

func lerpColor(a, b color.NRGBA, f float64) color.NRGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*f))
	}
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// GlowGradient is the soft halo drawn behind the core, out to 2.5 core radii.
func GlowGradient(sf Surface) RadialGradient {
	return RadialGradient{
		Inner: sf.CoreRadius * 0.1,
		Outer: sf.CoreRadius * 2.5,
		Stops: []GradientStop{
			{Offset: 0, Color: color.NRGBA{A: 255}},
			{Offset: 0.4, Color: color.NRGBA{A: 255}},
			{Offset: 0.5, Color: color.NRGBA{R: 30, G: 30, B: 30, A: 77}},
			{Offset: 1, Color: color.NRGBA{}},
		},
	}
}

// RingGradient fades the accretion ring from translucent white at the core
// edge to nothing at 1.5 core radii.
func RingGradient(sf Surface, innerAlpha float64) RadialGradient {
	return RadialGradient{
		Inner: sf.CoreRadius,
		Outer: sf.CoreRadius * 1.5,
		Stops: []GradientStop{
			{Offset: 0, Color: color.NRGBA{R: 255, G: 255, B: 255, A: uint8(math.Round(Clamp01(innerAlpha) * 255))}},
			{Offset: 1, Color: color.NRGBA{R: 255, G: 255, B: 255}},
		},
	}
}
