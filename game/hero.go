package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Hero copy shown over the effect
const (
	heroHeading  = "Beyond the Event Horizon"
	heroSubtitle = "Where time bends and light surrenders to the infinite pull of gravity"
	heroButton   = "Explore the Universe"
)

// Hero layout in logical pixels, scaled by the device ratio at draw time
const (
	heroHeadingScale  = 3.0
	heroSubtitleScale = 1.5
	heroButtonScale   = 1.25
	heroHeadingGap    = 24.0
	heroSubtitleGap   = 40.0
	heroButtonPadX    = 32.0
	heroButtonPadY    = 12.0
	heroMaxWidthRatio = 0.9
)

type textBlock struct {
	text  string
	x, y  float64 // top-left, device pixels
	scale float64
}

type rect struct {
	x, y, w, h float64
}

type heroLayout struct {
	heading  textBlock
	subtitle textBlock
	label    textBlock
	button   rect
}

// measureFunc returns the unscaled size of s in the hero face.
type measureFunc func(s string) (width, height float64)

// layoutHero stacks heading, subtitle and button centered in a width x height
// device-pixel area. Lines wider than heroMaxWidthRatio of the area shrink.
func layoutHero(width, height, dpr float64, measure measureFunc) heroLayout {
	fit := func(s string, scale float64) (float64, float64, float64) {
		w, h := measure(s)
		scale *= dpr
		if limit := width * heroMaxWidthRatio; w*scale > limit && w > 0 {
			scale = limit / w
		}
		return w * scale, h * scale, scale
	}

	hw, hh, hs := fit(heroHeading, heroHeadingScale)
	sw, sh, ss := fit(heroSubtitle, heroSubtitleScale)
	lw, lh, ls := fit(heroButton, heroButtonScale)
	bw := lw + 2*heroButtonPadX*dpr
	bh := lh + 2*heroButtonPadY*dpr

	total := hh + heroHeadingGap*dpr + sh + heroSubtitleGap*dpr + bh
	y := (height - total) / 2

	var l heroLayout
	l.heading = textBlock{text: heroHeading, x: (width - hw) / 2, y: y, scale: hs}
	y += hh + heroHeadingGap*dpr
	l.subtitle = textBlock{text: heroSubtitle, x: (width - sw) / 2, y: y, scale: ss}
	y += sh + heroSubtitleGap*dpr
	l.button = rect{x: (width - bw) / 2, y: y, w: bw, h: bh}
	l.label = textBlock{
		text:  heroButton,
		x:     l.button.x + (bw-lw)/2,
		y:     l.button.y + (bh-lh)/2,
		scale: ls,
	}
	return l
}

// Hero draws the static section content that sits on top of the effect.
type Hero struct {
	face *text.GoXFace
}

// NewHero creates a hero overlay using the basic bitmap face.
func NewHero() *Hero {
	return &Hero{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (h *Hero) measure(s string) (float64, float64) {
	return text.Measure(s, h.face, 0)
}

// Draw renders the overlay centered on screen.
func (h *Hero) Draw(screen *ebiten.Image, dpr float64) {
	b := screen.Bounds()
	l := layoutHero(float64(b.Dx()), float64(b.Dy()), dpr, h.measure)

	h.drawText(screen, l.heading, colorParticle)
	h.drawText(screen, l.subtitle, colorSubtitle)
	drawPill(screen, l.button, colorButton)
	h.drawText(screen, l.label, colorButtonText)
}

func (h *Hero) drawText(screen *ebiten.Image, tb textBlock, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(tb.scale, tb.scale)
	op.GeoM.Translate(math.Round(tb.x), math.Round(tb.y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, tb.text, h.face, op)
}

// drawPill fills a rectangle with fully rounded ends.
func drawPill(dst *ebiten.Image, r rect, clr color.Color) {
	radius := r.h / 2
	vector.DrawFilledRect(dst, float32(r.x+radius), float32(r.y), float32(r.w-2*radius), float32(r.h), clr, true)
	vector.DrawFilledCircle(dst, float32(r.x+radius), float32(r.y+radius), float32(radius), clr, true)
	vector.DrawFilledCircle(dst, float32(r.x+r.w-radius), float32(r.y+radius), float32(radius), clr, true)
}
