// Package backdrop generates the slowly shifting page tint drawn behind the
// particle field.
package backdrop

import (
	"image/color"
	"math"

	"github.com/ojrac/opensimplex-go"

	"github.com/pthm-cable/driftfield/config"
)

// Params controls the tint.
type Params struct {
	Base      color.RGBA
	Amp       float64 // brightness swing around Base, 0 = flat
	Scale     float64 // noise frequency per screen pixel
	TimeSpeed float64 // noise z-axis speed per second
	Size      int     // texels per side
}

// ParamsFromConfig converts the background config section.
func ParamsFromConfig(c config.BackgroundConfig) Params {
	return Params{
		Base:      c.Color.Color(),
		Amp:       c.NoiseAmp,
		Scale:     c.Scale,
		TimeSpeed: c.TimeSpeed,
		Size:      c.TexSize,
	}
}

// Tint renders a Size x Size texel grid that is stretched over the screen.
type Tint struct {
	params Params
	noise  opensimplex.Noise
	pixels []color.RGBA
}

// New creates a tint generator.
func New(p Params, seed int64) *Tint {
	if p.Size < 1 {
		p.Size = 1
	}
	return &Tint{
		params: p,
		noise:  opensimplex.New(seed),
		pixels: make([]color.RGBA, p.Size*p.Size),
	}
}

// Size returns the texel grid side.
func (t *Tint) Size() int {
	return t.params.Size
}

// Render fills the texel grid for a w x h screen at time sec and returns it.
// The returned slice is reused by the next call.
func (t *Tint) Render(w, h int, sec float64) []color.RGBA {
	p := t.params
	n := p.Size
	if p.Amp == 0 {
		for i := range t.pixels {
			t.pixels[i] = p.Base
		}
		return t.pixels
	}

	// Sample in screen space so the pattern keeps its scale when stretched
	sx := float64(w) / float64(n) * p.Scale
	sy := float64(h) / float64(n) * p.Scale
	z := sec * p.TimeSpeed

	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			v := t.noise.Eval3((float64(i)+0.5)*sx, (float64(j)+0.5)*sy, z)
			t.pixels[j*n+i] = shade(p.Base, 1+p.Amp*v)
		}
	}
	return t.pixels
}

// shade scales the colour channels by f, keeping alpha.
func shade(c color.RGBA, f float64) color.RGBA {
	ch := func(v uint8) uint8 {
		return uint8(math.Max(0, math.Min(255, math.Round(float64(v)*f))))
	}
	return color.RGBA{R: ch(c.R), G: ch(c.G), B: ch(c.B), A: c.A}
}
