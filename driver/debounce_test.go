package driver

import (
	"testing"
	"time"
)

func TestDebouncer(t *testing.T) {
	t0 := time.Unix(0, 0)
	d := NewDebouncer(250 * time.Millisecond)

	if d.Fire(t0) {
		t.Fatal("expected no firing without a trigger")
	}

	d.Trigger(t0)
	if !d.Pending() {
		t.Fatal("expected pending after trigger")
	}
	if d.Fire(t0.Add(249 * time.Millisecond)) {
		t.Error("expected no firing before the deadline")
	}

	// Retrigger pushes the deadline out
	d.Trigger(t0.Add(200 * time.Millisecond))
	if d.Fire(t0.Add(300 * time.Millisecond)) {
		t.Error("expected retrigger to postpone firing")
	}
	if got := d.Deadline(); !got.Equal(t0.Add(450 * time.Millisecond)) {
		t.Errorf("expected deadline at 450ms, got %v", got.Sub(t0))
	}

	if !d.Fire(t0.Add(450 * time.Millisecond)) {
		t.Error("expected firing at the deadline")
	}
	if d.Fire(t0.Add(time.Second)) {
		t.Error("expected a single firing per quiet period")
	}
}

func TestDebouncerCancel(t *testing.T) {
	t0 := time.Unix(0, 0)
	d := NewDebouncer(250 * time.Millisecond)

	d.Trigger(t0)
	d.Cancel()
	if d.Pending() || !d.Deadline().IsZero() {
		t.Error("expected nothing pending after cancel")
	}
	if d.Fire(t0.Add(time.Second)) {
		t.Error("expected cancelled debouncer not to fire")
	}
}

func TestManualClock(t *testing.T) {
	c := NewManualClock(time.Unix(10, 0))
	c.Advance(1500 * time.Millisecond)
	if got := c.Now(); !got.Equal(time.Unix(11, 500_000_000)) {
		t.Errorf("expected 11.5s, got %v", got)
	}
	c.Set(time.Unix(3, 0))
	if got := c.Now(); !got.Equal(time.Unix(3, 0)) {
		t.Errorf("expected 3s, got %v", got)
	}
}
