package game

import "time"

// FrameFunc is called once per display refresh with a monotonic timestamp.
type FrameFunc func(timestamp time.Duration)

// FrameID identifies a requested frame so it can be cancelled.
type FrameID uint64

// Scheduler delivers frame callbacks on the display's refresh signal.
type Scheduler interface {
	RequestFrame(fn FrameFunc) FrameID
	CancelFrame(id FrameID)
}

// Viewport reports the host window size and notifies on resize.
type Viewport interface {
	// Size returns the logical width and height and the device pixel ratio.
	Size() (width, height, scale float64)
	// OnResize registers fn and returns a func that unregisters it.
	OnResize(fn func()) (remove func())
}

type pendingFrame struct {
	id FrameID
	fn FrameFunc
}

// frameScheduler queues frame callbacks until ebiten's next Draw fires them.
type frameScheduler struct {
	next    FrameID
	pending []pendingFrame
}

func (s *frameScheduler) RequestFrame(fn FrameFunc) FrameID {
	s.next++
	s.pending = append(s.pending, pendingFrame{id: s.next, fn: fn})
	return s.next
}

func (s *frameScheduler) CancelFrame(id FrameID) {
	for i, p := range s.pending {
		if p.id == id {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}

// fire runs every callback queued before this refresh. Callbacks requested
// while firing wait for the next refresh.
func (s *frameScheduler) fire(timestamp time.Duration) int {
	batch := s.pending
	s.pending = nil
	for _, p := range batch {
		p.fn(timestamp)
	}
	return len(batch)
}

// windowViewport tracks the size ebiten reports through Layout.
type windowViewport struct {
	width, height, scale float64
	known                bool

	nextListener int
	listeners    map[int]func()
}

func newWindowViewport() *windowViewport {
	return &windowViewport{listeners: make(map[int]func())}
}

func (v *windowViewport) Size() (float64, float64, float64) {
	return v.width, v.height, v.scale
}

func (v *windowViewport) OnResize(fn func()) func() {
	id := v.nextListener
	v.nextListener++
	v.listeners[id] = fn
	return func() { delete(v.listeners, id) }
}

// update records the latest window metrics and notifies listeners when they
// changed after the first report.
func (v *windowViewport) update(width, height, scale float64) {
	if v.known && width == v.width && height == v.height && scale == v.scale {
		return
	}
	first := !v.known
	v.width, v.height, v.scale = width, height, scale
	v.known = true
	if first {
		return
	}
	for _, fn := range v.listeners {
		fn()
	}
}
