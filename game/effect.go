package game

import (
	"log/slog"
	"math/rand"
	"time"

	"eventhorizon/sim"
)

// Effect is one mounted black hole visual. It owns the simulation state and
// the resources acquired on Start: the canvas, the resize listener and the
// pending frame.
type Effect struct {
	config    Config
	viewport  Viewport
	scheduler Scheduler
	acquire   CanvasFunc
	renderer  *Renderer
	rng       *rand.Rand

	state        *sim.State
	canvas       Canvas
	pending      FrameID
	removeResize func()
	running      bool

	lastTimestamp time.Duration
	hasTimestamp  bool
	frames        int
}

// NewEffect creates an unmounted effect.
func NewEffect(config Config, viewport Viewport, scheduler Scheduler, acquire CanvasFunc) *Effect {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Effect{
		config:    config,
		viewport:  viewport,
		scheduler: scheduler,
		acquire:   acquire,
		renderer:  NewRenderer(),
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Start mounts the effect: it sizes the surface, seeds a fresh particle
// store, subscribes to resizes and requests the first frame. It reports
// false and starts nothing when no canvas can be acquired.
func (e *Effect) Start() bool {
	if e.running {
		return true
	}

	w, h, scale := e.viewport.Size()
	sf := sim.NewSurface(w, h, scale, e.config.Mode)
	canvas := e.acquire(sf)
	if canvas == nil {
		slog.Debug("effect not started: no canvas", "width", w, "height", h, "scale", scale)
		return false
	}

	e.canvas = canvas
	e.state = sim.New(e.config.SimOptions(), sf, e.rng)
	e.removeResize = e.viewport.OnResize(e.resize)
	e.hasTimestamp = false
	e.running = true
	e.pending = e.scheduler.RequestFrame(e.frame)

	slog.Debug("effect started",
		"mode", e.config.Mode,
		"particles", len(e.state.Particles),
		"width", sf.Width,
		"height", sf.Height,
		"scale", sf.Scale)
	return true
}

// Stop unmounts the effect: the pending frame is cancelled, the resize
// listener removed and the particle store discarded.
func (e *Effect) Stop() {
	if !e.running {
		return
	}
	e.running = false
	e.scheduler.CancelFrame(e.pending)
	if e.removeResize != nil {
		e.removeResize()
		e.removeResize = nil
	}
	e.state = nil
	e.canvas = nil
	slog.Debug("effect stopped", "frames", e.frames)
}

// Running reports whether the effect is mounted.
func (e *Effect) Running() bool {
	return e.running
}

// State exposes the simulation record; nil when not mounted.
func (e *Effect) State() *sim.State {
	return e.state
}

// Frames is the number of frames stepped since creation.
func (e *Effect) Frames() int {
	return e.frames
}

// Step advances the simulation by dt and draws one frame. It returns the
// number of particles that respawned.
func (e *Effect) Step(dt time.Duration) int {
	if e.state == nil {
		return 0
	}
	respawns := e.state.Step(dt)
	if e.canvas != nil {
		e.renderer.Draw(e.canvas, e.state)
	}
	e.frames++
	return respawns
}

func (e *Effect) frame(timestamp time.Duration) {
	if !e.running {
		return
	}

	dt := sim.ReferenceFrame
	if e.hasTimestamp {
		dt = timestamp - e.lastTimestamp
		if dt < 0 {
			dt = 0
		}
		if dt > maxFrameDelta {
			dt = maxFrameDelta
		}
	}
	e.lastTimestamp = timestamp
	e.hasTimestamp = true

	e.Step(dt)
	e.pending = e.scheduler.RequestFrame(e.frame)
}

func (e *Effect) resize() {
	if !e.running {
		return
	}
	w, h, scale := e.viewport.Size()
	sf := sim.NewSurface(w, h, scale, e.config.Mode)
	if canvas := e.acquire(sf); canvas != nil {
		e.canvas = canvas
	}
	e.state.Resize(sf)
	slog.Debug("effect resized", "width", sf.Width, "height", sf.Height, "scale", sf.Scale, "policy", e.config.Resize)
}
