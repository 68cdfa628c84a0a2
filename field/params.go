package field

import (
	"image/color"

	"github.com/pthm-cable/driftfield/config"
)

// Params holds the tunable constants of the field.
type Params struct {
	Radius            float64 // Particle draw radius and edge clamp margin
	AreaPerParticle   float64
	MinParticles      int
	MaxParticles      int
	InteractionRadius float64
	RepulsionScale    float64
	ReturnSpeed       float64
	MaxDrift          float64
	DensityMin        float64
	DensityMax        float64
	Color             color.RGBA
}

// DefaultParams returns the stock field constants.
func DefaultParams() Params {
	return Params{
		Radius:            1.5,
		AreaPerParticle:   3500,
		MinParticles:      80,
		MaxParticles:      350,
		InteractionRadius: 100,
		RepulsionScale:    0.3,
		ReturnSpeed:       0.08,
		MaxDrift:          0.075,
		DensityMin:        5,
		DensityMax:        20,
		Color:             color.RGBA{R: 209, G: 213, B: 219, A: 178},
	}
}

// ParamsFromConfig maps the field section of the configuration.
func ParamsFromConfig(c config.FieldConfig) Params {
	return Params{
		Radius:            c.ParticleRadius,
		AreaPerParticle:   c.AreaPerParticle,
		MinParticles:      c.MinParticles,
		MaxParticles:      c.MaxParticles,
		InteractionRadius: c.InteractionRadius,
		RepulsionScale:    c.RepulsionScale,
		ReturnSpeed:       c.ReturnSpeed,
		MaxDrift:          c.MaxDrift,
		DensityMin:        c.DensityMin,
		DensityMax:        c.DensityMax,
		Color:             c.Color.Color(),
	}
}

// Config maps the params back onto the field section of the configuration.
func (p Params) Config() config.FieldConfig {
	return config.FieldConfig{
		ParticleRadius:    p.Radius,
		AreaPerParticle:   p.AreaPerParticle,
		MinParticles:      p.MinParticles,
		MaxParticles:      p.MaxParticles,
		InteractionRadius: p.InteractionRadius,
		RepulsionScale:    p.RepulsionScale,
		ReturnSpeed:       p.ReturnSpeed,
		MaxDrift:          p.MaxDrift,
		DensityMin:        p.DensityMin,
		DensityMax:        p.DensityMax,
		Color:             config.RGBA{R: p.Color.R, G: p.Color.G, B: p.Color.B, A: p.Color.A},
	}
}
