package telemetry

import "github.com/pthm-cable/driftfield/field"

// Collector accumulates per-frame field observations and produces WindowStats.
type Collector struct {
	windowFrames uint64
	dt           float64

	windowStart    uint64
	lastGeneration int

	frames        int
	pointerFrames int
	repelledSum   int
	repelledMax   int
	reinits       int

	scratch []float64
}

// NewCollector creates a collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per frame (used for frame-to-time conversion)
func NewCollector(windowDurationSec, dt float64) *Collector {
	frames := uint64(windowDurationSec / dt)
	if frames < 1 {
		frames = 1
	}
	return &Collector{
		windowFrames: frames,
		dt:           dt,
	}
}

// Observe records one frame and returns the window stats when the window closes.
func (c *Collector) Observe(frame uint64, f *field.Field) (WindowStats, bool) {
	c.frames++
	if f.Pointer().Active {
		c.pointerFrames++
	}
	r := f.Repelled()
	c.repelledSum += r
	if r > c.repelledMax {
		c.repelledMax = r
	}
	if g := f.Generation(); g != c.lastGeneration {
		if c.lastGeneration != 0 {
			c.reinits += g - c.lastGeneration
		}
		c.lastGeneration = g
	}

	if frame-c.windowStart < c.windowFrames {
		return WindowStats{}, false
	}
	return c.flush(frame, f), true
}

// flush produces a WindowStats and resets counters for the next window.
func (c *Collector) flush(frame uint64, f *field.Field) WindowStats {
	c.scratch = f.Displacements(c.scratch[:0])
	disp := ComputeDisplacementStats(c.scratch)

	s := WindowStats{
		WindowStartFrame: c.windowStart,
		WindowEndFrame:   frame,
		SimTimeSec:       float64(frame) * c.dt,
		Particles:        f.Len(),
		Generation:       f.Generation(),
		Reinitialized:    c.reinits,
		RepelledMax:      c.repelledMax,
		DispMean:         disp.Mean,
		DispStd:          disp.Std,
		DispP50:          disp.P50,
		DispP90:          disp.P90,
		DispMax:          disp.Max,
	}
	if c.frames > 0 {
		s.PointerActiveFrac = float64(c.pointerFrames) / float64(c.frames)
		s.RepelledMean = float64(c.repelledSum) / float64(c.frames)
	}

	c.windowStart = frame
	c.frames = 0
	c.pointerFrames = 0
	c.repelledSum = 0
	c.repelledMax = 0
	c.reinits = 0

	return s
}

// WindowFrames returns the number of frames per window.
func (c *Collector) WindowFrames() uint64 {
	return c.windowFrames
}
