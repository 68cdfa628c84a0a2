package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pthm-cable/driftfield/backdrop"
	"github.com/pthm-cable/driftfield/config"
	"github.com/pthm-cable/driftfield/driver"
	"github.com/pthm-cable/driftfield/field"
	"github.com/pthm-cable/driftfield/game"
	"github.com/pthm-cable/driftfield/headless"
	"github.com/pthm-cable/driftfield/telemetry"
	"github.com/pthm-cable/driftfield/terminal"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	backend := flag.String("backend", "raylib", "Surface to draw on: raylib, terminal or headless")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Uint64("max-ticks", 0, "Stop after N frames (0 = unlimited)")
	orbitPointer := flag.Bool("orbit-pointer", true, "Headless only: drive a synthetic orbiting pointer")
	hud := flag.Bool("hud", false, "Raylib only: show the HUD on start (toggle with H)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	opts := options{
		ConfigPath:   *configPath,
		Backend:      *backend,
		LogStats:     *logStats,
		StatsWindow:  *statsWindow,
		OutputDir:    *outputDir,
		Seed:         *seed,
		MaxTicks:     *maxTicks,
		OrbitPointer: *orbitPointer,
		HUD:          *hud,
	}
	if err := run(opts); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

// options holds the parsed command line.
type options struct {
	ConfigPath   string
	Backend      string
	LogStats     bool
	StatsWindow  float64
	OutputDir    string
	Seed         int64
	MaxTicks     uint64
	OrbitPointer bool
	HUD          bool
}

func run(opts options) error {
	// Initialize config before anything else
	if err := config.Init(opts.ConfigPath); err != nil {
		return err
	}
	cfg := config.Cfg()

	rngSeed := opts.Seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	// Use config stats window if not overridden by CLI
	statsWindowSec := cfg.Telemetry.StatsWindow
	if opts.StatsWindow > 0 {
		statsWindowSec = opts.StatsWindow
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return err
	}
	defer output.Close()
	if err := output.WriteConfig(cfg); err != nil {
		return err
	}

	perf := telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow)
	recorder := telemetry.NewRecorder(
		telemetry.NewCollector(statsWindowSec, cfg.Derived.FrameDT),
		perf,
		output,
		opts.LogStats,
	)

	d := driver.New(driver.Options{
		Params:         field.ParamsFromConfig(cfg.Field),
		Seed:           rngSeed,
		ResizeDebounce: cfg.Derived.ResizeDebounce,
		Perf:           perf,
		Observer:       recorder,
		MaxFrames:      opts.MaxTicks,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("starting",
		"backend", opts.Backend,
		"seed", rngSeed,
		"stats_window", statsWindowSec,
		"max_ticks", opts.MaxTicks,
		"output_dir", opts.OutputDir,
	)

	switch opts.Backend {
	case "raylib":
		g := game.New(d, perf, game.Options{
			Width:      cfg.Screen.Width,
			Height:     cfg.Screen.Height,
			TargetFPS:  cfg.Screen.TargetFPS,
			Resizable:  cfg.Screen.Resizable,
			Background: cfg.Background.Color.Color(),
			Tint:       backdrop.New(backdrop.ParamsFromConfig(cfg.Background), rngSeed),
			ShowHUD:    opts.HUD,
		})
		err = g.Run(ctx)
	case "terminal":
		err = terminal.Run(ctx, d, terminal.Options{
			CellWidth:     cfg.Terminal.CellWidth,
			CellHeight:    cfg.Terminal.CellHeight,
			Background:    cfg.Background.Color.Color(),
			FrameInterval: cfg.Derived.HeadlessTick,
		})
	case "headless":
		hopts := headless.Options{
			Width:   cfg.Screen.Width,
			Height:  cfg.Screen.Height,
			FrameDT: cfg.Derived.FrameDT,
		}
		if opts.OrbitPointer {
			orbit := headless.OrbitFromConfig(cfg.Headless)
			hopts.Orbit = &orbit
		}
		err = headless.Run(ctx, d, hopts)
	default:
		return fmt.Errorf("unknown backend %q (want raylib, terminal or headless)", opts.Backend)
	}

	// Ctrl-C is a normal way to stop
	if errors.Is(err, context.Canceled) {
		err = nil
	}

	slog.Info("finished", "frames", d.Frames(), "windows", recorder.Windows())
	return err
}
