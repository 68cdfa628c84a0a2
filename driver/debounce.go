package driver

import "time"

// Debouncer is a cancellable deferred task polled by the frame loop.
// Each Trigger replaces any pending deadline, so at most one firing
// happens per quiet period.
type Debouncer struct {
	delay    time.Duration
	deadline time.Time
	pending  bool
}

// NewDebouncer creates a debouncer with the given quiet period.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger cancels any pending firing and schedules a new one at now+delay.
func (d *Debouncer) Trigger(now time.Time) {
	d.deadline = now.Add(d.delay)
	d.pending = true
}

// Cancel drops the pending firing, if any.
func (d *Debouncer) Cancel() {
	d.pending = false
}

// Pending reports whether a firing is scheduled.
func (d *Debouncer) Pending() bool {
	return d.pending
}

// Deadline returns the scheduled firing time. Zero when nothing is pending.
func (d *Debouncer) Deadline() time.Time {
	if !d.pending {
		return time.Time{}
	}
	return d.deadline
}

// Fire reports true exactly once when the deadline has been reached.
func (d *Debouncer) Fire(now time.Time) bool {
	if !d.pending || now.Before(d.deadline) {
		return false
	}
	d.pending = false
	return true
}
