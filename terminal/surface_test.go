package terminal

import (
	"context"
	"errors"
	"image/color"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/driftfield/driver"
	"github.com/pthm-cable/driftfield/field"
)

var (
	testBG = color.RGBA{R: 17, G: 17, B: 39, A: 255}
	testFG = color.RGBA{R: 209, G: 213, B: 219, A: 178}
)

func newTestScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	screen.SetSize(cols, rows)
	return screen
}

func TestSurfaceSizeInFieldPixels(t *testing.T) {
	screen := newTestScreen(t, 20, 10)
	defer screen.Fini()

	s := NewSurface(screen, 8, 16, testBG)
	w, h := s.Size()
	if w != 160 || h != 160 {
		t.Errorf("expected 160x160, got %dx%d", w, h)
	}
}

func TestSurfaceStacksGlyphs(t *testing.T) {
	screen := newTestScreen(t, 20, 10)
	defer screen.Fini()

	s := NewSurface(screen, 8, 16, testBG)
	s.SetSize(s.Size())
	s.Clear()

	s.FillCircle(12, 20, 1.5, testFG) // cell (1, 1)
	s.FillCircle(20, 40, 1.5, testFG) // cell (2, 2)
	s.FillCircle(21, 41, 1.5, testFG) // cell (2, 2) again
	s.FillCircle(-3, 5, 1.5, testFG)  // off-screen
	s.FillCircle(500, 5, 1.5, testFG) // off-screen
	s.Present()

	tests := []struct {
		col, row int
		want     rune
	}{
		{1, 1, '·'},
		{2, 2, '•'},
		{0, 0, ' '},
	}
	for _, tc := range tests {
		got, _, _, _ := screen.GetContent(tc.col, tc.row)
		if got != tc.want {
			t.Errorf("cell (%d, %d): expected %q, got %q", tc.col, tc.row, tc.want, got)
		}
	}

	s.Clear()
	s.Present()
	if got, _, _, _ := screen.GetContent(1, 1); got != ' ' {
		t.Errorf("expected cleared cell, got %q", got)
	}
}

func TestGlyphSaturates(t *testing.T) {
	if glyph(1) != '·' || glyph(3) != '●' || glyph(200) != '●' {
		t.Errorf("unexpected glyph ramp: %q %q %q", glyph(1), glyph(3), glyph(200))
	}
}

func TestBlend(t *testing.T) {
	opaque := blend(color.RGBA{R: 200, G: 100, B: 0, A: 255}, testBG)
	if opaque != (color.RGBA{R: 200, G: 100, B: 0, A: 255}) {
		t.Errorf("expected opaque fg to win, got %+v", opaque)
	}
	clearFG := blend(color.RGBA{R: 200, G: 100, B: 0, A: 0}, testBG)
	if clearFG != testBG {
		t.Errorf("expected transparent fg to show bg, got %+v", clearFG)
	}
}

func TestTranslate(t *testing.T) {
	screen := newTestScreen(t, 20, 10)
	defer screen.Fini()
	s := NewSurface(screen, 8, 16, testBG)

	tests := []struct {
		name string
		ev   tcell.Event
		want driver.Event
		ok   bool
	}{
		{"mouse", tcell.NewEventMouse(3, 2, tcell.ButtonNone, tcell.ModNone), driver.PointerMove{X: 28, Y: 40}, true},
		{"focus lost", tcell.NewEventFocus(false), driver.PointerLeave{}, true},
		{"focus gained", tcell.NewEventFocus(true), nil, false},
		{"resize", tcell.NewEventResize(30, 12), driver.Resize{}, true},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), driver.Quit{}, true},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), driver.Quit{}, true},
		{"other key", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), nil, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := s.Translate(tc.ev)
			if ok != tc.ok || got != tc.want {
				t.Errorf("expected (%v, %v), got (%v, %v)", tc.want, tc.ok, got, ok)
			}
		})
	}
}

type frameCounter struct{ frames uint64 }

func (c *frameCounter) ObserveFrame(frame uint64, _ *field.Field) { c.frames = frame }

func TestRunDrawsUntilCancelled(t *testing.T) {
	screen := newTestScreen(t, 80, 25)
	counter := &frameCounter{}
	d := driver.New(driver.Options{
		Params:         field.DefaultParams(),
		Seed:           42,
		ResizeDebounce: driver.DefaultResizeDebounce,
		Observer:       counter,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := run(ctx, screen, d, Options{
		CellWidth:     8,
		CellHeight:    16,
		Background:    testBG,
		FrameInterval: time.Millisecond,
	})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}
	if d.Running() {
		t.Error("expected driver stopped")
	}
	if counter.frames == 0 {
		t.Error("expected frames to be drawn")
	}
}
