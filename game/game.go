// Package game hosts the particle field in a raylib window.
package game

import (
	"context"
	"image/color"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/driftfield/backdrop"
	"github.com/pthm-cable/driftfield/driver"
	"github.com/pthm-cable/driftfield/renderer"
	"github.com/pthm-cable/driftfield/telemetry"
)

// WindowTitle is shown in the title bar.
const WindowTitle = "Drift Field"

// Options configures the window host.
type Options struct {
	Width      int
	Height     int
	TargetFPS  int
	Resizable  bool
	Background color.RGBA
	Tint       *backdrop.Tint // nil = flat background
	ShowHUD    bool
}

// Game owns the window and forwards its input to the driver.
type Game struct {
	opts   Options
	driver *driver.Driver
	perf   *telemetry.PerfCollector

	surface    *renderer.Surface
	background *renderer.Background
	pointer    driver.PointerPoller

	width, height int
	showHUD       bool
}

// New creates a window host. perf may be nil.
func New(d *driver.Driver, perf *telemetry.PerfCollector, opts Options) *Game {
	g := &Game{
		opts:    opts,
		driver:  d,
		perf:    perf,
		width:   opts.Width,
		height:  opts.Height,
		showHUD: opts.ShowHUD,
	}
	if opts.Tint != nil {
		g.background = renderer.NewBackground(opts.Tint)
	}
	g.surface = renderer.NewSurface(g.background, opts.Background)
	return g
}

// Run opens the window and draws frames until it is closed, ctx is
// cancelled or MaxFrames is reached.
func (g *Game) Run(ctx context.Context) error {
	if g.opts.Resizable {
		rl.SetConfigFlags(rl.FlagWindowResizable)
	}
	rl.InitWindow(int32(g.opts.Width), int32(g.opts.Height), WindowTitle)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(g.opts.TargetFPS))

	g.driver.Start(g.surface)
	defer g.Unload()

	slog.Info("window_started",
		"width", g.opts.Width,
		"height", g.opts.Height,
		"target_fps", g.opts.TargetFPS,
	)

	for !rl.WindowShouldClose() && g.driver.Running() {
		if err := ctx.Err(); err != nil {
			return err
		}

		g.Update()
		g.Draw()
	}
	return nil
}

// Update polls input for this frame.
func (g *Game) Update() {
	g.handleInput()
}

// Unload stops the driver and frees GPU resources.
func (g *Game) Unload() {
	g.driver.Stop()
	if g.background != nil {
		g.background.Unload()
	}
}
