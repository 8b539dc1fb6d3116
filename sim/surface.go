package sim

import "math"

// MaxLogicalHeight caps the surface height on very tall viewports.
const MaxLogicalHeight = 800.0

// Surface holds the dimensions the frame loop reads every frame.
// All coordinates other than the pixel sizes are logical units.
type Surface struct {
	Width  float64 // logical width
	Height float64 // logical height, capped at MaxLogicalHeight
	Scale  float64 // device pixel ratio

	PixelWidth  int // backing resolution
	PixelHeight int

	CenterX    float64
	CenterY    float64
	CoreRadius float64
}

// NewSurface derives the surface for a viewport. It is recomputed wholesale on
// every resize.
func NewSurface(viewWidth, viewHeight, scale float64, mode Mode) Surface {
	if scale <= 0 {
		scale = 1
	}
	w := math.Max(viewWidth, 0)
	h := math.Min(math.Max(viewHeight, 0), MaxLogicalHeight)
	return Surface{
		Width:       w,
		Height:      h,
		Scale:       scale,
		PixelWidth:  int(math.Round(w * scale)),
		PixelHeight: int(math.Round(h * scale)),
		CenterX:     w / 2,
		CenterY:     h / 2,
		CoreRadius:  math.Min(w, h) * mode.CoreFactor(),
	}
}

// Empty reports whether the surface has no drawable area.
func (s Surface) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Contains reports whether (x, y) lies on the visible surface.
func (s Surface) Contains(x, y float64) bool {
	return x >= 0 && x <= s.Width && y >= 0 && y <= s.Height
}

// DistanceFromCenter is the euclidean distance of (x, y) to the core.
func (s Surface) DistanceFromCenter(x, y float64) float64 {
	return math.Hypot(x-s.CenterX, y-s.CenterY)
}

// RespawnBand is the [min, max) distance range a respawned particle lands in.
func (s Surface) RespawnBand() (float64, float64) {
	return s.Width / 6, s.Width / 2
}

// Polar converts an angle and distance about the core to surface coordinates.
func (s Surface) Polar(angle, distance float64) (float64, float64) {
	return s.CenterX + math.Cos(angle)*distance, s.CenterY + math.Sin(angle)*distance
}
