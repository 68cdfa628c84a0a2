// Package headless runs the particle field without a display, for telemetry
// and benchmark runs.
package headless

import (
	"math"

	"github.com/pthm-cable/driftfield/config"
)

// leaveFraction is the share of each LeaveEvery span spent off the surface.
const leaveFraction = 0.2

// Orbit is a synthetic pointer circling the surface centre, so headless runs
// exercise repulsion.
type Orbit struct {
	Radius     float64 // fraction of the smaller surface side
	Period     float64 // seconds per revolution
	LeaveEvery float64 // seconds between leave spells, 0 = never leaves
}

// OrbitFromConfig converts the headless config section.
func OrbitFromConfig(c config.HeadlessConfig) Orbit {
	return Orbit{
		Radius:     c.OrbitRadius,
		Period:     c.OrbitPeriod,
		LeaveEvery: c.LeaveEvery,
	}
}

// At returns the pointer position at sim time t on a w x h surface, and
// whether the pointer is on the surface at all.
func (o Orbit) At(t, w, h float64) (x, y float64, active bool) {
	if o.LeaveEvery > 0 && math.Mod(t, o.LeaveEvery) >= o.LeaveEvery*(1-leaveFraction) {
		return 0, 0, false
	}

	angle := 0.0
	if o.Period > 0 {
		angle = 2 * math.Pi * t / o.Period
	}
	r := o.Radius * math.Min(w, h)
	return w/2 + r*math.Cos(angle), h/2 + r*math.Sin(angle), true
}
