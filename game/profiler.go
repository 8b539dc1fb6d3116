package game

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// Frame rate watchdog
const (
	profileFPSThreshold = 45.0
	profileWarmup       = 3 * time.Second
	profileCooldown     = 30 * time.Second
	profileDuration     = 5 * time.Second
)

// Profiler captures a CPU profile and an execution trace when the frame rate
// drops, so slow frames on a given machine can be inspected offline.
type Profiler struct {
	mu              sync.Mutex
	isProfiling     bool
	lastCaptureTime time.Time
	startTime       time.Time
	profilesDir     string
	captureCooldown time.Duration
	captureDuration time.Duration
}

// NewProfiler returns nil when dir is empty; a nil Profiler ignores samples.
func NewProfiler(dir string) *Profiler {
	if dir == "" {
		return nil
	}
	return &Profiler{
		startTime:       time.Now(),
		profilesDir:     dir,
		captureCooldown: profileCooldown,
		captureDuration: profileDuration,
	}
}

// Observe feeds one FPS sample and starts a capture when it is below the
// threshold past warmup and outside the cooldown.
func (p *Profiler) Observe(fps float64, particles int) {
	if p == nil || fps >= profileFPSThreshold || time.Since(p.startTime) < profileWarmup {
		return
	}
	reason := fmt.Sprintf("fps%.0f-particles%d", fps, particles)
	if err := p.CaptureProfile(reason); err != nil {
		slog.Debug("profile capture skipped", "reason", reason, "err", err)
	}
}

// CaptureProfile starts a background capture of a CPU profile and a trace.
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.isProfiling {
		return errors.New("already profiling")
	}
	if since := time.Since(p.lastCaptureTime); since < p.captureCooldown {
		return errors.Errorf("capture on cooldown (last capture was %v ago)", since.Round(time.Second))
	}
	if err := os.MkdirAll(p.profilesDir, 0o755); err != nil {
		return errors.Wrap(err, "creating profile dir")
	}

	p.isProfiling = true
	p.lastCaptureTime = time.Now()
	baseName := fmt.Sprintf("fps-drop-%s-%s", p.lastCaptureTime.Format("20060102-150405"), reason)

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	slog.Warn("frame rate drop, capturing profile",
		"reason", reason,
		"heap_kb", m.HeapAlloc/1024,
		"num_gc", m.NumGC)

	go func() {
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			if err := p.capture(baseName+".cpu.prof", pprof.StartCPUProfile, pprof.StopCPUProfile); err != nil {
				slog.Error("cpu profile failed", "err", err)
			}
		}()
		go func() {
			defer wg.Done()
			if err := p.capture(baseName+".trace", trace.Start, trace.Stop); err != nil {
				slog.Error("trace failed", "err", err)
			}
		}()
		wg.Wait()
	}()
	return nil
}

// capture writes one profile kind for captureDuration.
func (p *Profiler) capture(name string, start func(w io.Writer) error, stop func()) error {
	path := filepath.Join(p.profilesDir, name)
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer file.Close()

	if err := start(file); err != nil {
		return errors.Wrapf(err, "starting %s", name)
	}
	time.Sleep(p.captureDuration)
	stop()

	slog.Info("profile saved", "path", path)
	return nil
}

// IsProfiling returns whether a profile capture is currently in progress
func (p *Profiler) IsProfiling() bool {
	if p == nil {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}
