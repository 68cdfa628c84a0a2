// Package field implements the ambient particle field: drifting points that
// are pushed away by the pointer and spring back to a roaming baseline.
package field

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// Field owns the particles, the pointer state and the surface dimensions.
// It is not safe for concurrent use; all calls must come from the loop
// goroutine.
type Field struct {
	params    Params
	rng       *rand.Rand
	particles []Particle

	width, height float64
	pointer       Pointer

	generation int // incremented by every Initialize
	repelled   int // particles inside the pointer radius on the last tick
}

// New creates an empty field. Call Initialize before Tick.
func New(params Params, rng *rand.Rand) *Field {
	return &Field{
		params:  params,
		rng:     rng,
		pointer: Pointer{Radius: params.InteractionRadius},
	}
}

// ParticleCount returns the particle budget for a w x h surface:
// floor(w*h/area) clamped to [min, max].
func ParticleCount(w, h int, prm Params) int {
	n := int(math.Floor(float64(w) * float64(h) / prm.AreaPerParticle))
	if n < prm.MinParticles {
		return prm.MinParticles
	}
	if n > prm.MaxParticles {
		return prm.MaxParticles
	}
	return n
}

// Initialize discards all particles and regenerates them for a w x h surface.
// Safe to call repeatedly.
func (f *Field) Initialize(w, h int) {
	f.width = float64(w)
	f.height = float64(h)

	n := ParticleCount(w, h, f.params)
	if cap(f.particles) >= n {
		f.particles = f.particles[:0]
	} else {
		f.particles = make([]Particle, 0, n)
	}

	for i := 0; i < n; i++ {
		pos := r2.Vec{X: f.rng.Float64() * f.width, Y: f.rng.Float64() * f.height}
		drift := r2.Vec{
			X: (f.rng.Float64()*2 - 1) * f.params.MaxDrift,
			Y: (f.rng.Float64()*2 - 1) * f.params.MaxDrift,
		}
		f.particles = append(f.particles, Particle{
			Pos:     pos,
			Base:    pos,
			Drift:   drift,
			Vel:     drift,
			Density: f.params.DensityMin + f.rng.Float64()*(f.params.DensityMax-f.params.DensityMin),
			Radius:  f.params.Radius,
		})
	}
	f.generation++
	f.repelled = 0
}

// Tick clears the surface, then advances and draws each particle in one pass.
func (f *Field) Tick(s Surface) {
	s.Clear()

	ptr := f.pointer
	reach2 := ptr.Radius * ptr.Radius
	repelled := 0
	for i := range f.particles {
		p := &f.particles[i]
		if ptr.Active {
			dx, dy := ptr.X-p.Pos.X, ptr.Y-p.Pos.Y
			if dx*dx+dy*dy < reach2 {
				repelled++
			}
		}
		p.Advance(ptr, f.width, f.height, &f.params)
		p.Render(s, f.params.Color)
	}
	f.repelled = repelled
}

// PointerMoved records the latest pointer coordinates.
func (f *Field) PointerMoved(x, y float64) {
	f.pointer.X = x
	f.pointer.Y = y
	f.pointer.Active = true
}

// PointerLeft marks the pointer inactive.
func (f *Field) PointerLeft() {
	f.pointer.X = 0
	f.pointer.Y = 0
	f.pointer.Active = false
}

// Pointer returns the current pointer state.
func (f *Field) Pointer() Pointer {
	return f.pointer
}

// Params returns the field constants.
func (f *Field) Params() Params {
	return f.params
}

// SetParams replaces the force constants. The particle count policy and
// per-particle radius only take effect on the next Initialize.
func (f *Field) SetParams(p Params) {
	f.params = p
	f.pointer.Radius = p.InteractionRadius
}

// Size returns the dimensions recorded by the last Initialize.
func (f *Field) Size() (w, h float64) {
	return f.width, f.height
}

// Len returns the number of live particles.
func (f *Field) Len() int {
	return len(f.particles)
}

// Particles exposes the particle storage. Callers must not retain or modify it.
func (f *Field) Particles() []Particle {
	return f.particles
}

// Generation counts how many times the field has been initialized.
func (f *Field) Generation() int {
	return f.generation
}

// Repelled returns how many particles were within pointer reach on the last tick.
func (f *Field) Repelled() int {
	return f.repelled
}

// Displacements appends every particle's distance from its baseline to dst.
func (f *Field) Displacements(dst []float64) []float64 {
	for i := range f.particles {
		dst = append(dst, f.particles[i].Displacement())
	}
	return dst
}
