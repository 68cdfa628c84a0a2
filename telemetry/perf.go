package telemetry

import (
	"log/slog"
	"time"
)

// Phase names for a frame.
const (
	PhaseResize = "resize"
	PhaseField  = "field"
)

// frameSample holds timing data for a single frame.
type frameSample struct {
	busy   time.Duration
	phases map[string]time.Duration
}

// PerfCollector tracks frame timing over a rolling window.
type PerfCollector struct {
	window []frameSample
	next   int
	filled int

	phases     map[string]time.Duration
	frameStart time.Time
	phaseStart time.Time
	phase      string

	// Wall-clock spacing between frames (includes vsync / ticker waits)
	lastFrame time.Time
	interval  time.Duration
}

// NewPerfCollector creates a collector averaging over windowSize frames.
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{
		window: make([]frameSample, windowSize),
		phases: make(map[string]time.Duration),
	}
}

// RecordFrame marks the wall-clock start of a frame for FPS tracking.
func (p *PerfCollector) RecordFrame() {
	now := time.Now()
	if !p.lastFrame.IsZero() {
		p.interval = now.Sub(p.lastFrame)
	}
	p.lastFrame = now
}

// StartTick begins timing the busy part of a frame.
func (p *PerfCollector) StartTick() {
	p.frameStart = time.Now()
	p.phases = make(map[string]time.Duration, 2)
	p.phase = ""
}

// StartPhase closes the running phase, if any, and opens a new one.
func (p *PerfCollector) StartPhase(phase string) {
	now := time.Now()
	p.closePhase(now)
	p.phaseStart = now
	p.phase = phase
}

// EndTick closes the frame and stores it in the window.
func (p *PerfCollector) EndTick() {
	now := time.Now()
	p.closePhase(now)

	p.window[p.next] = frameSample{busy: now.Sub(p.frameStart), phases: p.phases}
	p.next = (p.next + 1) % len(p.window)
	if p.filled < len(p.window) {
		p.filled++
	}
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.phase != "" {
		p.phases[p.phase] += now.Sub(p.phaseStart)
	}
}

// PerfStats holds aggregated timing over the window.
type PerfStats struct {
	AvgTickDuration time.Duration
	MinTickDuration time.Duration
	MaxTickDuration time.Duration

	PhaseAvg map[string]time.Duration
	PhasePct map[string]float64 // share of the average busy time

	TicksPerSecond float64 // throughput if frames ran back to back
	FrameDuration  time.Duration
	FPS            float64
}

// Stats aggregates the frames currently in the window.
func (p *PerfCollector) Stats() PerfStats {
	s := PerfStats{
		PhaseAvg:      make(map[string]time.Duration),
		PhasePct:      make(map[string]float64),
		FrameDuration: p.interval,
	}
	if p.interval > 0 {
		s.FPS = float64(time.Second) / float64(p.interval)
	}
	if p.filled == 0 {
		return s
	}

	var total time.Duration
	phaseSum := make(map[string]time.Duration)
	for i, f := range p.window[:p.filled] {
		total += f.busy
		if i == 0 || f.busy < s.MinTickDuration {
			s.MinTickDuration = f.busy
		}
		if f.busy > s.MaxTickDuration {
			s.MaxTickDuration = f.busy
		}
		for phase, d := range f.phases {
			phaseSum[phase] += d
		}
	}

	n := time.Duration(p.filled)
	s.AvgTickDuration = total / n
	for phase, sum := range phaseSum {
		s.PhaseAvg[phase] = sum / n
		if s.AvgTickDuration > 0 {
			s.PhasePct[phase] = float64(s.PhaseAvg[phase]) / float64(s.AvgTickDuration) * 100
		}
	}
	if s.AvgTickDuration > 0 {
		s.TicksPerSecond = float64(time.Second) / float64(s.AvgTickDuration)
	}
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_tick_us", s.AvgTickDuration.Microseconds()),
		slog.Int64("min_tick_us", s.MinTickDuration.Microseconds()),
		slog.Int64("max_tick_us", s.MaxTickDuration.Microseconds()),
		slog.Float64("ticks_per_sec", s.TicksPerSecond),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Float64("fps", s.FPS))
	}
	for _, phase := range []string{PhaseResize, PhaseField} {
		if pct, ok := s.PhasePct[phase]; ok {
			attrs = append(attrs, slog.Float64(phase+"_pct", pct))
		}
	}
	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is a flat struct for CSV export of performance stats.
type PerfStatsCSV struct {
	WindowEnd   uint64  `csv:"window_end"`
	AvgTickUS   int64   `csv:"avg_tick_us"`
	MinTickUS   int64   `csv:"min_tick_us"`
	MaxTickUS   int64   `csv:"max_tick_us"`
	TicksPerSec float64 `csv:"ticks_per_sec"`
	FPS         float64 `csv:"fps"`
	ResizePct   float64 `csv:"resize_pct"`
	FieldPct    float64 `csv:"field_pct"`
}

// ToCSV converts PerfStats to a flat CSV-friendly struct.
func (s PerfStats) ToCSV(windowEnd uint64) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:   windowEnd,
		AvgTickUS:   s.AvgTickDuration.Microseconds(),
		MinTickUS:   s.MinTickDuration.Microseconds(),
		MaxTickUS:   s.MaxTickDuration.Microseconds(),
		TicksPerSec: s.TicksPerSecond,
		FPS:         s.FPS,
		ResizePct:   s.PhasePct[PhaseResize],
		FieldPct:    s.PhasePct[PhaseField],
	}
}
