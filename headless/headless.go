package headless

import (
	"context"
	"log/slog"
	"time"

	"github.com/pthm-cable/driftfield/driver"
	"github.com/pthm-cable/driftfield/field"
)

// Options configures a headless run.
type Options struct {
	Width, Height int
	FrameDT       float64       // sim seconds per frame, drives the orbit
	Interval      time.Duration // wall time between frames, 0 = as fast as possible
	Orbit         *Orbit        // nil = no pointer
}

// Run starts d on a no-op surface and drives frames until ctx is cancelled
// or the driver stops (see driver.Options.MaxFrames). Sim time advances by
// FrameDT per frame regardless of wall time, so runs are reproducible.
func Run(ctx context.Context, d *driver.Driver, opts Options) error {
	surface := &field.NopSurface{W: opts.Width, H: opts.Height}
	d.Start(surface)

	slog.Info("starting headless simulation",
		"width", opts.Width,
		"height", opts.Height,
		"interval", opts.Interval,
		"orbit", opts.Orbit != nil,
	)

	var tick <-chan time.Time
	if opts.Interval > 0 {
		ticker := time.NewTicker(opts.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	w, h := float64(opts.Width), float64(opts.Height)
	for d.Running() {
		if tick != nil {
			select {
			case <-ctx.Done():
				d.Stop()
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			d.Stop()
			return err
		}

		if opts.Orbit != nil {
			t := float64(d.Frames()) * opts.FrameDT
			if x, y, active := opts.Orbit.At(t, w, h); active {
				d.PointerMoved(x, y)
			} else {
				d.PointerLeft()
			}
		}
		d.Frame()
	}
	return nil
}
