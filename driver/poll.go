package driver

// PointerPoller turns per-frame pointer samples from polling hosts into move
// and leave signals. Only changes are forwarded.
type PointerPoller struct {
	inside bool
	x, y   float64
}

// Sample reports the pointer state for this frame.
func (p *PointerPoller) Sample(d *Driver, onSurface bool, x, y float64) {
	if !onSurface {
		if p.inside {
			p.inside = false
			d.PointerLeft()
		}
		return
	}
	if p.inside && x == p.x && y == p.y {
		return
	}
	p.inside = true
	p.x, p.y = x, y
	d.PointerMoved(x, y)
}

// Inside reports whether the last sample was on the surface.
func (p *PointerPoller) Inside() bool {
	return p.inside
}
