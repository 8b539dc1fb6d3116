package game

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventhorizon/sim"
)

type fakeViewport struct {
	width, height, scale float64
	next                 int
	listeners            map[int]func()
}

func newFakeViewport(w, h, scale float64) *fakeViewport {
	return &fakeViewport{width: w, height: h, scale: scale, listeners: map[int]func(){}}
}

func (v *fakeViewport) Size() (float64, float64, float64) { return v.width, v.height, v.scale }

func (v *fakeViewport) OnResize(fn func()) func() {
	id := v.next
	v.next++
	v.listeners[id] = fn
	return func() { delete(v.listeners, id) }
}

func (v *fakeViewport) resize(w, h float64) {
	v.width, v.height = w, h
	for _, fn := range v.listeners {
		fn()
	}
}

type fakeScheduler struct {
	next      FrameID
	pending   map[FrameID]FrameFunc
	requested int
	cancelled int
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{pending: map[FrameID]FrameFunc{}}
}

func (s *fakeScheduler) RequestFrame(fn FrameFunc) FrameID {
	s.next++
	s.requested++
	s.pending[s.next] = fn
	return s.next
}

func (s *fakeScheduler) CancelFrame(id FrameID) {
	if _, ok := s.pending[id]; ok {
		s.cancelled++
		delete(s.pending, id)
	}
}

func (s *fakeScheduler) fire(ts time.Duration) {
	batch := s.pending
	s.pending = map[FrameID]FrameFunc{}
	for _, fn := range batch {
		fn(ts)
	}
}

type drawCall struct {
	op     string
	x, y   float64
	w, h   float64 // rect size, or radius and width for circles
	points int
	clr    color.NRGBA
}

type recordingCanvas struct {
	calls []drawCall
}

func toNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

func (c *recordingCanvas) FillRect(x, y, w, h float64, clr color.Color) {
	c.calls = append(c.calls, drawCall{op: "FillRect", x: x, y: y, w: w, h: h, clr: toNRGBA(clr)})
}

func (c *recordingCanvas) FillCircle(cx, cy, r float64, clr color.Color) {
	c.calls = append(c.calls, drawCall{op: "FillCircle", x: cx, y: cy, w: r, clr: toNRGBA(clr)})
}

func (c *recordingCanvas) StrokeCircle(cx, cy, r, width float64, clr color.Color) {
	c.calls = append(c.calls, drawCall{op: "StrokeCircle", x: cx, y: cy, w: r, h: width, clr: toNRGBA(clr)})
}

func (c *recordingCanvas) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	c.calls = append(c.calls, drawCall{op: "StrokeLine", x: x0, y: y0, h: width, clr: toNRGBA(clr)})
}

func (c *recordingCanvas) StrokePolyline(points []sim.Point, width float64, clr color.Color) {
	c.calls = append(c.calls, drawCall{op: "StrokePolyline", points: len(points), h: width, clr: toNRGBA(clr)})
}

type effectHarness struct {
	viewport  *fakeViewport
	scheduler *fakeScheduler
	canvas    *recordingCanvas
	acquired  int
	effect    *Effect
}

func newHarness(t *testing.T, cfg Config) *effectHarness {
	t.Helper()
	h := &effectHarness{
		viewport:  newFakeViewport(1280, 720, 2),
		scheduler: newFakeScheduler(),
		canvas:    &recordingCanvas{},
	}
	h.effect = NewEffect(cfg, h.viewport, h.scheduler, func(sf sim.Surface) Canvas {
		h.acquired++
		return h.canvas
	})
	return h
}

func testConfig(mode sim.Mode) Config {
	cfg := DefaultConfig()
	cfg.Mode = mode
	cfg.Particles = 10
	cfg.Seed = 1
	return cfg
}

func TestEffectStartRequestsFrameAndListens(t *testing.T) {
	h := newHarness(t, testConfig(sim.ModeSpiral))

	require.True(t, h.effect.Start())

	assert.True(t, h.effect.Running())
	assert.Equal(t, 1, h.scheduler.requested)
	assert.Len(t, h.viewport.listeners, 1)
	assert.Equal(t, 1, h.acquired)
	require.NotNil(t, h.effect.State())
	assert.Len(t, h.effect.State().Particles, 10)
	assert.Empty(t, h.canvas.calls, "nothing drawn before the first refresh")

	assert.True(t, h.effect.Start(), "second start is a no-op")
	assert.Equal(t, 1, h.scheduler.requested)
}

func TestEffectFramesReschedule(t *testing.T) {
	h := newHarness(t, testConfig(sim.ModeGravity))
	require.True(t, h.effect.Start())

	for i := 1; i <= 3; i++ {
		h.scheduler.fire(time.Duration(i) * sim.ReferenceFrame)
	}

	assert.Equal(t, 3, h.effect.Frames())
	assert.Equal(t, 4, h.scheduler.requested)
	assert.Len(t, h.scheduler.pending, 1)
	assert.NotEmpty(t, h.canvas.calls)
}

func TestEffectFrameDeltaFromTimestamps(t *testing.T) {
	h := newHarness(t, testConfig(sim.ModeSpiral))
	require.True(t, h.effect.Start())

	h.scheduler.fire(5 * time.Second)
	assert.Equal(t, sim.ReferenceFrame, h.effect.State().Elapsed, "first frame uses the reference duration")

	h.scheduler.fire(5*time.Second + 33*time.Millisecond)
	assert.Equal(t, sim.ReferenceFrame+33*time.Millisecond, h.effect.State().Elapsed)

	h.scheduler.fire(20 * time.Second)
	assert.Equal(t, sim.ReferenceFrame+33*time.Millisecond+maxFrameDelta, h.effect.State().Elapsed, "stalls are clamped")
}

func TestEffectStopCancelsEverything(t *testing.T) {
	h := newHarness(t, testConfig(sim.ModeSpiral))
	require.True(t, h.effect.Start())
	h.scheduler.fire(sim.ReferenceFrame)
	h.scheduler.fire(2 * sim.ReferenceFrame)

	listener := h.viewport.listeners[0]
	h.effect.Stop()

	assert.False(t, h.effect.Running())
	assert.Equal(t, 1, h.scheduler.cancelled)
	assert.Empty(t, h.scheduler.pending)
	assert.Empty(t, h.viewport.listeners)
	assert.Nil(t, h.effect.State())

	drawn := len(h.canvas.calls)
	frames := h.effect.Frames()
	acquired := h.acquired

	h.scheduler.fire(3 * sim.ReferenceFrame)
	h.viewport.resize(1920, 1080)
	listener()

	assert.Len(t, h.canvas.calls, drawn, "no draw calls after stop")
	assert.Equal(t, frames, h.effect.Frames())
	assert.Equal(t, acquired, h.acquired, "resize no longer reaches the effect")

	h.effect.Stop()
	assert.Equal(t, 1, h.scheduler.cancelled)
}

func TestEffectResizeRecentres(t *testing.T) {
	h := newHarness(t, testConfig(sim.ModeGravity))
	require.True(t, h.effect.Start())

	h.viewport.resize(1600, 1200)

	sf := h.effect.State().Surface
	assert.Equal(t, 1600.0, sf.Width)
	assert.Equal(t, 800.0, sf.Height)
	assert.Equal(t, 800.0, sf.CenterX)
	assert.Equal(t, 400.0, sf.CenterY)
	assert.Equal(t, 3200, sf.PixelWidth)
	assert.Equal(t, 2, h.acquired)
}

func TestEffectWithoutCanvasDoesNotStart(t *testing.T) {
	vp := newFakeViewport(1280, 720, 1)
	sch := newFakeScheduler()
	e := NewEffect(testConfig(sim.ModeSpiral), vp, sch, func(sim.Surface) Canvas { return nil })

	assert.False(t, e.Start())
	assert.False(t, e.Running())
	assert.Zero(t, sch.requested)
	assert.Empty(t, vp.listeners)
	assert.Zero(t, e.Step(sim.ReferenceFrame))

	e.Stop()
	assert.Zero(t, sch.cancelled)
}

func TestEffectStepIsDeterministic(t *testing.T) {
	a := newHarness(t, testConfig(sim.ModeGravity))
	b := newHarness(t, testConfig(sim.ModeGravity))
	require.True(t, a.effect.Start())
	require.True(t, b.effect.Start())

	for i := 0; i < 50; i++ {
		a.effect.Step(sim.ReferenceFrame)
		b.effect.Step(sim.ReferenceFrame)
	}

	assert.Equal(t, a.effect.State().Particles, b.effect.State().Particles)
	assert.Equal(t, a.canvas.calls, b.canvas.calls)
}
