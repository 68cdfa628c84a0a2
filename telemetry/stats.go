package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated field statistics for a time window.
type WindowStats struct {
	WindowStartFrame uint64  `csv:"-"`
	WindowEndFrame   uint64  `csv:"window_end"`
	SimTimeSec       float64 `csv:"sim_time"`

	Particles     int `csv:"particles"`
	Generation    int `csv:"generation"`
	Reinitialized int `csv:"reinitialized"` // field rebuilds during the window

	// Pointer interaction
	PointerActiveFrac float64 `csv:"pointer_active_frac"`
	RepelledMean      float64 `csv:"repelled_mean"`
	RepelledMax       int     `csv:"repelled_max"`

	// Distance from baseline, sampled at window end
	DispMean float64 `csv:"disp_mean"`
	DispStd  float64 `csv:"disp_std"`
	DispP50  float64 `csv:"disp_p50"`
	DispP90  float64 `csv:"disp_p90"`
	DispMax  float64 `csv:"disp_max"`
}

// DisplacementStats summarizes baseline displacements.
type DisplacementStats struct {
	Mean, Std, P50, P90, Max float64
}

// ComputeDisplacementStats calculates mean, spread and empirical quantiles.
// values is sorted in place.
func ComputeDisplacementStats(values []float64) DisplacementStats {
	n := len(values)
	if n == 0 {
		return DisplacementStats{}
	}

	sort.Float64s(values)

	var ds DisplacementStats
	if n < 2 {
		ds.Mean = values[0]
	} else {
		ds.Mean, ds.Std = stat.MeanStdDev(values, nil)
	}
	ds.P50 = stat.Quantile(0.5, stat.Empirical, values, nil)
	ds.P90 = stat.Quantile(0.9, stat.Empirical, values, nil)
	ds.Max = values[n-1]
	return ds
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("window_start", s.WindowStartFrame),
		slog.Uint64("window_end", s.WindowEndFrame),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("particles", s.Particles),
		slog.Int("generation", s.Generation),
		slog.Int("reinitialized", s.Reinitialized),
		slog.Float64("pointer_active_frac", s.PointerActiveFrac),
		slog.Float64("repelled_mean", s.RepelledMean),
		slog.Int("repelled_max", s.RepelledMax),
		slog.Float64("disp_mean", s.DispMean),
		slog.Float64("disp_std", s.DispStd),
		slog.Float64("disp_p50", s.DispP50),
		slog.Float64("disp_p90", s.DispP90),
		slog.Float64("disp_max", s.DispMax),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
