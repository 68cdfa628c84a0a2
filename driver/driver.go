// Package driver runs the particle field: a per-frame loop that ticks the
// field, forwards pointer signals and debounces resizes.
package driver

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/pthm-cable/driftfield/field"
	"github.com/pthm-cable/driftfield/telemetry"
)

// DefaultResizeDebounce is the quiet period after the last resize signal.
const DefaultResizeDebounce = 250 * time.Millisecond

// Observer is notified after every frame, on the loop goroutine.
type Observer interface {
	ObserveFrame(frame uint64, f *field.Field)
}

// Presenter is implemented by surfaces that buffer drawing and need an
// explicit flush once the frame is complete.
type Presenter interface {
	Present()
}

// Options configures a Driver.
type Options struct {
	Params         field.Params
	Seed           int64
	ResizeDebounce time.Duration
	Clock          Clock                    // nil = SystemClock
	Perf           *telemetry.PerfCollector // optional
	Observer       Observer                 // optional
	MaxFrames      uint64                   // stop after this many frames, 0 = unlimited
}

// Driver owns the field, the surface and the resize debounce. It has two
// states, running and stopped. All methods must be called from the goroutine
// that calls Frame.
type Driver struct {
	opts     Options
	clock    Clock
	debounce *Debouncer

	field   *field.Field
	surface field.Surface
	running bool
	frames  uint64
}

// New creates a stopped driver.
func New(opts Options) *Driver {
	clock := opts.Clock
	if clock == nil {
		clock = SystemClock{}
	}
	return &Driver{
		opts:     opts,
		clock:    clock,
		debounce: NewDebouncer(opts.ResizeDebounce),
	}
}

// Start creates the field for the surface and begins running. A nil surface
// makes Start a no-op; the field is decoration and must never block its host.
func (d *Driver) Start(s field.Surface) {
	if s == nil {
		slog.Debug("field_start_skipped", "reason", "no surface")
		return
	}
	if d.running {
		slog.Warn("field_start_ignored", "reason", "already running")
		return
	}

	d.surface = s
	d.field = field.New(d.opts.Params, rand.New(rand.NewSource(d.opts.Seed)))
	d.frames = 0
	d.running = true
	d.initialize()

	slog.Info("field_started",
		"particles", d.field.Len(),
		"seed", d.opts.Seed,
	)
}

// Stop cancels the loop and any pending resize. Signals received afterwards
// are ignored. Safe to call more than once.
func (d *Driver) Stop() {
	if !d.running {
		return
	}
	d.running = false
	d.debounce.Cancel()

	slog.Info("field_stopped", "frames", d.frames)

	d.field = nil
	d.surface = nil
}

// Reseed restarts the field on the same surface with a new seed, keeping the
// current params. No-op when stopped.
func (d *Driver) Reseed(seed int64) {
	if !d.running {
		return
	}
	s := d.surface
	d.opts.Params = d.field.Params()
	d.Stop()
	d.opts.Seed = seed
	d.Start(s)
}

// Running reports whether the driver is between Start and Stop.
func (d *Driver) Running() bool {
	return d.running
}

// Frames returns the number of frames ticked since Start.
func (d *Driver) Frames() uint64 {
	return d.frames
}

// Field returns the live field, or nil when stopped.
func (d *Driver) Field() *field.Field {
	return d.field
}

// Frame runs one cooperative frame: a due resize reinitializes the field,
// then the field ticks once.
func (d *Driver) Frame() {
	if !d.running {
		return
	}

	perf := d.opts.Perf
	if perf != nil {
		perf.RecordFrame()
		perf.StartTick()
	}

	if d.debounce.Fire(d.clock.Now()) {
		if perf != nil {
			perf.StartPhase(telemetry.PhaseResize)
		}
		d.initialize()
	}

	if perf != nil {
		perf.StartPhase(telemetry.PhaseField)
	}
	d.field.Tick(d.surface)
	if p, ok := d.surface.(Presenter); ok {
		p.Present()
	}

	if perf != nil {
		perf.EndTick()
	}

	d.frames++
	if d.opts.Observer != nil {
		d.opts.Observer.ObserveFrame(d.frames, d.field)
	}

	if d.opts.MaxFrames > 0 && d.frames >= d.opts.MaxFrames {
		slog.Info("max frames reached", "frames", d.frames)
		d.Stop()
	}
}

// PointerMoved forwards absolute pointer coordinates to the field.
func (d *Driver) PointerMoved(x, y float64) {
	if !d.running {
		return
	}
	d.field.PointerMoved(x, y)
}

// PointerLeft clears the pointer.
func (d *Driver) PointerLeft() {
	if !d.running {
		return
	}
	d.field.PointerLeft()
}

// Resized schedules a reinitialize after the debounce period, replacing any
// pending one. The new size is read from the surface when it fires.
func (d *Driver) Resized() {
	if !d.running {
		return
	}
	d.debounce.Trigger(d.clock.Now())
}

// ResizePending reports whether a debounced reinitialize is scheduled.
func (d *Driver) ResizePending() bool {
	return d.debounce.Pending()
}

// initialize sizes the surface from the viewport and regenerates the field.
func (d *Driver) initialize() {
	w, h := d.surface.Size()
	d.surface.SetSize(w, h)
	d.field.Initialize(w, h)

	slog.Debug("field_initialized",
		"width", w,
		"height", h,
		"particles", d.field.Len(),
		"generation", d.field.Generation(),
	)
}

// Event is an input signal delivered to Run from another goroutine.
type Event interface {
	apply(d *Driver)
}

// PointerMove carries absolute pointer coordinates.
type PointerMove struct{ X, Y float64 }

// PointerLeave signals that the pointer left the surface.
type PointerLeave struct{}

// Resize signals that the viewport changed size.
type Resize struct{}

// Quit asks Run to stop the driver and return.
type Quit struct{}

func (e PointerMove) apply(d *Driver)  { d.PointerMoved(e.X, e.Y) }
func (e PointerLeave) apply(d *Driver) { d.PointerLeft() }
func (e Resize) apply(d *Driver)       { d.Resized() }
func (e Quit) apply(d *Driver)         { d.Stop() }

// Run drives frames from a fixed-rate ticker until ctx is cancelled, a Quit
// event arrives or Stop is called. Events are applied on the calling
// goroutine between frames, so the field is never touched concurrently.
// A nil events channel is allowed.
func (d *Driver) Run(ctx context.Context, interval time.Duration, events <-chan Event) error {
	if !d.running {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.Stop()
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			ev.apply(d)
		case <-ticker.C:
			d.Frame()
		}
		if !d.running {
			return nil
		}
	}
}
