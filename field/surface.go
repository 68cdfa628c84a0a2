package field

import "image/color"

// Surface is the 2D drawable region the field renders into.
type Surface interface {
	// Size reports the current dimensions of the hosting viewport.
	Size() (w, h int)
	// SetSize adopts new drawable dimensions.
	SetSize(w, h int)
	Clear()
	FillCircle(x, y, r float64, c color.RGBA)
}

// NopSurface discards all drawing. Used by headless runs.
type NopSurface struct {
	W, H int
}

func (s *NopSurface) Size() (int, int)                         { return s.W, s.H }
func (s *NopSurface) SetSize(w, h int)                         { s.W, s.H = w, h }
func (s *NopSurface) Clear()                                   {}
func (s *NopSurface) FillCircle(_, _, _ float64, _ color.RGBA) {}
