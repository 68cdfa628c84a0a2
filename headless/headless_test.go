package headless

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/pthm-cable/driftfield/driver"
	"github.com/pthm-cable/driftfield/field"
)

func TestOrbitAt(t *testing.T) {
	o := Orbit{Radius: 0.25, Period: 4, LeaveEvery: 10}

	tests := []struct {
		name   string
		t      float64
		x, y   float64
		active bool
	}{
		{"start", 0, 550, 300, true},        // centre (400, 300) + r=150 along x
		{"quarter turn", 1, 400, 450, true}, // +y is down
		{"leave spell", 8.5, 0, 0, false},
		{"back after spell", 12, 550, 300, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y, active := o.At(tc.t, 800, 600)
			if active != tc.active {
				t.Fatalf("expected active=%v, got %v", tc.active, active)
			}
			if math.Abs(x-tc.x) > 1e-9 || math.Abs(y-tc.y) > 1e-9 {
				t.Errorf("expected (%v, %v), got (%v, %v)", tc.x, tc.y, x, y)
			}
		})
	}
}

func TestOrbitNeverLeaves(t *testing.T) {
	o := Orbit{Radius: 0.3, Period: 6}
	for ti := 0.0; ti < 60; ti += 0.5 {
		if _, _, active := o.At(ti, 1280, 800); !active {
			t.Fatalf("expected pointer always active, inactive at t=%v", ti)
		}
	}
}

type repelCounter struct{ total int }

func (c *repelCounter) ObserveFrame(_ uint64, f *field.Field) { c.total += f.Repelled() }

func TestRunStopsAtMaxFrames(t *testing.T) {
	counter := &repelCounter{}
	d := driver.New(driver.Options{
		Params:    field.DefaultParams(),
		Seed:      42,
		Observer:  counter,
		MaxFrames: 120,
	})

	err := Run(context.Background(), d, Options{
		Width:   800,
		Height:  600,
		FrameDT: 1.0 / 60.0,
		Orbit:   &Orbit{Radius: 0.3, Period: 2},
	})
	if err != nil {
		t.Fatalf("expected clean stop, got %v", err)
	}
	if d.Frames() != 120 {
		t.Errorf("expected 120 frames, got %d", d.Frames())
	}
	if counter.total == 0 {
		t.Error("expected the orbiting pointer to repel particles")
	}
}

func TestRunCancelled(t *testing.T) {
	d := driver.New(driver.Options{Params: field.DefaultParams()})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := Run(ctx, d, Options{Width: 320, Height: 240, FrameDT: 1.0 / 60.0, Interval: time.Millisecond})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}
	if d.Running() {
		t.Error("expected driver stopped")
	}
}
