package game

import (
	"context"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"eventhorizon/sim"
)

// Game hosts the effect in an ebiten window. ebiten's Layout is the resize
// signal and Draw is the refresh signal that fires queued frames.
type Game struct {
	ctx    context.Context
	config Config

	effect    *Effect
	scheduler *frameScheduler
	viewport  *windowViewport
	canvas    *imageCanvas
	hero      *Hero
	debug     *DebugState
	profiler  *Profiler
	mounted   bool

	// FPS tracking
	fps            float64
	fpsUpdateTimer float64
	lastUpdateTime time.Time

	// Monotonic origin for frame timestamps
	startTime time.Time
}

// NewGame creates a new game instance
func NewGame(ctx context.Context, config Config) *Game {
	g := &Game{
		ctx:            ctx,
		config:         config,
		scheduler:      &frameScheduler{},
		viewport:       newWindowViewport(),
		debug:          &DebugState{ShowStats: config.Debug},
		profiler:       NewProfiler(config.ProfileDir),
		fps:            60.0,
		lastUpdateTime: time.Now(),
		startTime:      time.Now(),
	}
	if config.Hero {
		g.hero = NewHero()
	}
	g.effect = NewEffect(config, g.viewport, g.scheduler, g.acquireCanvas)
	return g
}

// acquireCanvas replaces the offscreen image with one sized for sf.
func (g *Game) acquireCanvas(sf sim.Surface) Canvas {
	if sf.PixelWidth <= 0 || sf.PixelHeight <= 0 {
		return nil
	}
	if g.canvas != nil {
		g.canvas.release()
	}
	g.canvas = newImageCanvas(sf)
	return g.canvas
}

// Update mounts the effect once the window size is known and unmounts it
// when the context is cancelled.
func (g *Game) Update() error {
	select {
	case <-g.ctx.Done():
		g.Close()
		return ebiten.Termination
	default:
	}

	if !g.mounted && g.viewport.known {
		g.mounted = true
		if !g.effect.Start() {
			slog.Warn("drawing surface unavailable; running without animation")
		}
	}

	now := time.Now()
	deltaTime := now.Sub(g.lastUpdateTime).Seconds()
	g.lastUpdateTime = now

	g.fpsUpdateTimer += deltaTime
	if g.fpsUpdateTimer >= fpsSampleEvery {
		g.fpsUpdateTimer = 0
		g.fps = ebiten.ActualFPS()
		if s := g.effect.State(); s != nil {
			g.profiler.Observe(g.fps, len(s.Particles))
		}
	}
	return nil
}

// Draw fires the pending frame into the offscreen canvas and composes it
// with the overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	g.scheduler.fire(time.Since(g.startTime))

	if g.effect.Running() && g.canvas != nil {
		screen.DrawImage(g.canvas.img, nil)
	}
	if g.hero != nil {
		_, _, scale := g.viewport.Size()
		g.hero.Draw(screen, scale)
	}
	g.debug.drawStats(screen, g.fps, g.effect)
}

// Layout reports the device-pixel screen size and feeds window changes to
// the viewport, which notifies the effect.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := 1.0
	if m := ebiten.Monitor(); m != nil {
		scale = m.DeviceScaleFactor()
	}
	if scale <= 0 {
		scale = 1
	}
	g.viewport.update(float64(outsideWidth), float64(outsideHeight), scale)
	return int(float64(outsideWidth) * scale), int(float64(outsideHeight) * scale)
}

// Close unmounts the effect and frees the canvas.
func (g *Game) Close() {
	g.effect.Stop()
	if g.canvas != nil {
		g.canvas.release()
		g.canvas = nil
	}
}
