package terminal

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/driftfield/driver"
)

// Options configures the terminal host.
type Options struct {
	CellWidth     float64
	CellHeight    float64
	Background    color.RGBA
	FrameInterval time.Duration
}

// Run opens the terminal, starts d on it and drives frames until ctx is
// cancelled or the user quits. The terminal is restored before returning.
func Run(ctx context.Context, d *driver.Driver, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal screen: %w", err)
	}
	return run(ctx, screen, d, opts)
}

// run drives an initialized screen and finalizes it on return.
func run(ctx context.Context, screen tcell.Screen, d *driver.Driver, opts Options) error {
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

	surface := NewSurface(screen, opts.CellWidth, opts.CellHeight, opts.Background)
	d.Start(surface)
	if !d.Running() {
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan driver.Event, 100)
	go pump(ctx, screen, surface, events)

	slog.Info("terminal_started", "interval", opts.FrameInterval)
	return d.Run(ctx, opts.FrameInterval, events)
}

// pump forwards screen events to the loop until the screen is finalized or
// ctx is done.
func pump(ctx context.Context, screen tcell.Screen, s *Surface, out chan<- driver.Event) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		if _, ok := ev.(*tcell.EventResize); ok {
			screen.Sync()
		}

		de, ok := s.Translate(ev)
		if !ok {
			continue
		}
		select {
		case out <- de:
		case <-ctx.Done():
			return
		}
	}
}

// Translate maps a terminal event onto a driver event. Mouse positions are
// converted from cells to field pixels; losing focus counts as the pointer
// leaving.
func (s *Surface) Translate(ev tcell.Event) (driver.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := s.PointerPosition(col, row)
		return driver.PointerMove{X: x, Y: y}, true
	case *tcell.EventFocus:
		if !ev.Focused {
			return driver.PointerLeave{}, true
		}
	case *tcell.EventResize:
		return driver.Resize{}, true
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return driver.Quit{}, true
		}
	}
	return nil, false
}
