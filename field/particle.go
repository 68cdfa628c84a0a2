package field

import (
	"image/color"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Particle is one drifting point. Pos is elastically tied to Base, which
// itself roams with Drift and bounces off the surface edges.
type Particle struct {
	Pos     r2.Vec
	Base    r2.Vec
	Drift   r2.Vec
	Vel     r2.Vec // last applied velocity, recomputed every tick
	Density float64
	Radius  float64
}

// Pointer is the shared cursor state read by every particle.
type Pointer struct {
	X, Y   float64
	Active bool
	Radius float64
}

// Repulsion returns the push this particle receives from the pointer.
// It is zero when the pointer is inactive or out of reach, and otherwise
// points from the pointer towards the particle with a linear falloff.
func (p *Particle) Repulsion(ptr Pointer, scale float64) r2.Vec {
	if !ptr.Active {
		return r2.Vec{}
	}
	dx := ptr.X - p.Pos.X
	dy := ptr.Y - p.Pos.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist >= ptr.Radius {
		return r2.Vec{}
	}

	force := (ptr.Radius - dist) / ptr.Radius
	angle := math.Atan2(dy, dx)
	mag := force * p.Density * scale
	return r2.Vec{X: -math.Cos(angle) * mag, Y: -math.Sin(angle) * mag}
}

// Advance moves the particle one tick inside a w x h surface.
func (p *Particle) Advance(ptr Pointer, w, h float64, prm *Params) {
	// Roam the baseline and bounce it off the edges. The bounce does not
	// clamp, so the baseline may sit slightly outside for a tick.
	p.Base = r2.Add(p.Base, p.Drift)
	if p.Base.X <= 0 || p.Base.X >= w {
		p.Drift.X = -p.Drift.X
		p.Base.X += p.Drift.X * 2
	}
	if p.Base.Y <= 0 || p.Base.Y >= h {
		p.Drift.Y = -p.Drift.Y
		p.Base.Y += p.Drift.Y * 2
	}

	repulsion := p.Repulsion(ptr, prm.RepulsionScale)
	ret := r2.Scale(prm.ReturnSpeed, r2.Sub(p.Base, p.Pos))

	p.Vel = r2.Add(r2.Add(ret, repulsion), p.Drift)
	p.Pos = r2.Add(p.Pos, p.Vel)

	p.Pos.X = clamp(p.Pos.X, p.Radius, w-p.Radius)
	p.Pos.Y = clamp(p.Pos.Y, p.Radius, h-p.Radius)
}

// Render draws the particle as a filled circle.
func (p *Particle) Render(s Surface, c color.RGBA) {
	s.FillCircle(p.Pos.X, p.Pos.Y, p.Radius, c)
}

// Displacement returns the distance between the particle and its baseline.
func (p *Particle) Displacement() float64 {
	return r2.Norm(r2.Sub(p.Pos, p.Base))
}

// clamp bounds v to [lo, hi]; lo wins when the range is inverted.
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
