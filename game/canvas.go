package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"eventhorizon/sim"
)

// Canvas is the drawing surface the renderer targets. Every coordinate and
// width is in logical units; implementations apply the device scale.
type Canvas interface {
	FillRect(x, y, width, height float64, clr color.Color)
	FillCircle(cx, cy, radius float64, clr color.Color)
	StrokeCircle(cx, cy, radius, width float64, clr color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, clr color.Color)
	StrokePolyline(points []sim.Point, width float64, clr color.Color)
}

// CanvasFunc acquires a canvas sized for the surface. It returns nil when no
// drawing surface is available.
type CanvasFunc func(sf sim.Surface) Canvas

// Vector primitives, swapped out in tests.
var (
	drawFilledRect   = vector.DrawFilledRect
	drawFilledCircle = vector.DrawFilledCircle
	strokeCircle     = vector.StrokeCircle
	strokeLine       = vector.StrokeLine
)

// imageCanvas draws into an offscreen ebiten image at device resolution.
// The image persists across frames so the fade rect leaves trails.
type imageCanvas struct {
	img   *ebiten.Image
	scale float32
}

func newImageCanvas(sf sim.Surface) *imageCanvas {
	return &imageCanvas{
		img:   ebiten.NewImage(sf.PixelWidth, sf.PixelHeight),
		scale: float32(sf.Scale),
	}
}

// px converts a logical coordinate or width to device pixels.
func (c *imageCanvas) px(v float64) float32 {
	return float32(v) * c.scale
}

func (c *imageCanvas) FillRect(x, y, width, height float64, clr color.Color) {
	drawFilledRect(c.img, c.px(x), c.px(y), c.px(width), c.px(height), clr, false)
}

func (c *imageCanvas) FillCircle(cx, cy, radius float64, clr color.Color) {
	drawFilledCircle(c.img, c.px(cx), c.px(cy), c.px(radius), clr, true)
}

func (c *imageCanvas) StrokeCircle(cx, cy, radius, width float64, clr color.Color) {
	strokeCircle(c.img, c.px(cx), c.px(cy), c.px(radius), c.px(width), clr, true)
}

func (c *imageCanvas) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	strokeLine(c.img, c.px(x0), c.px(y0), c.px(x1), c.px(y1), c.px(width), clr, true)
}

func (c *imageCanvas) StrokePolyline(points []sim.Point, width float64, clr color.Color) {
	for i := 1; i < len(points); i++ {
		c.StrokeLine(points[i-1].X, points[i-1].Y, points[i].X, points[i].Y, width, clr)
	}
}

func (c *imageCanvas) release() {
	if c.img != nil {
		c.img.Deallocate()
		c.img = nil
	}
}
