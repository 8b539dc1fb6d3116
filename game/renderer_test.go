package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventhorizon/sim"
)

func indexOf(calls []drawCall, match func(drawCall) bool) int {
	for i, c := range calls {
		if match(c) {
			return i
		}
	}
	return -1
}

func drawOnce(t *testing.T, mode sim.Mode, particles int) (*sim.State, []drawCall) {
	t.Helper()
	sf := sim.NewSurface(1000, 600, 1, mode)
	s := sim.New(sim.Options{Mode: mode, Particles: particles}, sf, rand.New(rand.NewSource(3)))
	for i := 0; i < 3; i++ {
		s.Step(sim.ReferenceFrame)
	}
	c := &recordingCanvas{}
	NewRenderer().Draw(c, s)
	return s, c.calls
}

func TestRendererDrawOrderSpiral(t *testing.T) {
	s, calls := drawOnce(t, sim.ModeSpiral, 20)
	sf := s.Surface
	require.NotEmpty(t, calls)

	fade := calls[0]
	assert.Equal(t, "FillRect", fade.op)
	assert.Equal(t, sf.Width, fade.w)
	assert.Equal(t, sf.Height, fade.h)
	assert.Equal(t, uint8(8), fade.clr.A)

	core := indexOf(calls, func(c drawCall) bool {
		return c.op == "FillCircle" && c.w == sf.CoreRadius && c.x == sf.CenterX && c.clr.A == 255
	})
	ring := indexOf(calls, func(c drawCall) bool {
		return c.op == "StrokeCircle" && c.w == sf.CoreRadius*1.2
	})
	firstGlow := indexOf(calls, func(c drawCall) bool {
		return c.op == "StrokeCircle" && c.w > sf.CoreRadius*1.5
	})
	firstTrail := indexOf(calls, func(c drawCall) bool { return c.op == "StrokePolyline" })

	require.NotEqual(t, -1, core)
	require.NotEqual(t, -1, ring)
	require.NotEqual(t, -1, firstGlow)
	require.NotEqual(t, -1, firstTrail)
	assert.Less(t, firstGlow, core, "glow sits under the core")
	assert.Less(t, core, ring)
	assert.Less(t, ring, firstTrail, "particles land on top")

	assert.Equal(t, 1.5, calls[ring].h)
	for _, c := range calls[ring+1:] {
		if c.op == "StrokePolyline" {
			assert.LessOrEqual(t, c.points, sim.TrailCap)
		}
	}
}

func TestRendererGravitySegments(t *testing.T) {
	s, calls := drawOnce(t, sim.ModeGravity, 15)

	assert.Equal(t, uint8(13), calls[0].clr.A)
	var segments int
	for _, c := range calls {
		switch c.op {
		case "StrokeLine":
			segments++
		case "StrokePolyline":
			t.Fatalf("gravity mode draws no trails")
		}
	}
	assert.Equal(t, len(s.Particles), segments)

	ring := indexOf(calls, func(c drawCall) bool { return c.op == "StrokeCircle" })
	require.NotEqual(t, -1, ring, "gravity mode has no glow, first stroke is the ring")
	assert.Equal(t, s.Surface.CoreRadius*1.2, calls[ring].w)
	assert.Equal(t, 2.0, calls[ring].h)
}

func TestRendererStarsOnlyInSpiral(t *testing.T) {
	_, gravity := drawOnce(t, sim.ModeGravity, 5)
	small := func(c drawCall) bool { return c.op == "FillCircle" && c.w < 1.5 && c.w > 0 }
	assert.Equal(t, -1, indexOf(gravity, small))

	s, spiral := drawOnce(t, sim.ModeSpiral, 5)
	require.NotEmpty(t, s.Stars)
	assert.NotEqual(t, -1, indexOf(spiral, small))
}

func TestWithAlpha(t *testing.T) {
	assert.Equal(t, uint8(0), withAlpha(colorParticle, -1).A)
	assert.Equal(t, uint8(255), withAlpha(colorParticle, 7).A)
	assert.Equal(t, uint8(128), withAlpha(colorParticle, 0.5).A)
}
