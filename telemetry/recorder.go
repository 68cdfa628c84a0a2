package telemetry

import (
	"log/slog"

	"github.com/pthm-cable/driftfield/field"
)

// Recorder closes stats windows as frames arrive and fans them out to the
// log and the output files. It satisfies the driver's frame observer.
type Recorder struct {
	collector *Collector
	perf      *PerfCollector
	output    *OutputManager
	logStats  bool

	last    WindowStats
	windows int
}

// NewRecorder wires a collector to optional perf and output sinks.
func NewRecorder(collector *Collector, perf *PerfCollector, output *OutputManager, logStats bool) *Recorder {
	return &Recorder{
		collector: collector,
		perf:      perf,
		output:    output,
		logStats:  logStats,
	}
}

// ObserveFrame feeds one frame to the collector.
func (r *Recorder) ObserveFrame(frame uint64, f *field.Field) {
	stats, ok := r.collector.Observe(frame, f)
	if !ok {
		return
	}
	r.last = stats
	r.windows++

	if r.logStats {
		stats.LogStats()
	}
	// Output failures must not stop the field
	if err := r.output.WriteTelemetry(stats); err != nil {
		slog.Warn("telemetry_write_failed", "error", err)
	}

	if r.perf == nil {
		return
	}
	ps := r.perf.Stats()
	if r.logStats {
		slog.Info("perf", "frame", ps)
	}
	if err := r.output.WritePerf(ps, frame); err != nil {
		slog.Warn("perf_write_failed", "error", err)
	}
}

// Last returns the most recently closed window.
func (r *Recorder) Last() (WindowStats, bool) {
	return r.last, r.windows > 0
}

// Windows returns how many windows have closed.
func (r *Recorder) Windows() int {
	return r.windows
}
