// Package terminal hosts the particle field in a text terminal via tcell.
package terminal

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// glyphs by number of particles sharing a cell
var glyphs = []rune{' ', '·', '•', '●'}

// Surface maps the field's pixel space onto terminal cells. Each cell covers
// cellW x cellH field pixels; particles landing in the same cell stack into
// a heavier glyph. Drawing is buffered until Present.
type Surface struct {
	screen       tcell.Screen
	cellW, cellH float64
	bg           color.RGBA

	cols, rows int
	hits       []uint8
	fg         color.RGBA
}

// NewSurface creates a surface over an initialized screen.
func NewSurface(screen tcell.Screen, cellW, cellH float64, bg color.RGBA) *Surface {
	return &Surface{
		screen: screen,
		cellW:  cellW,
		cellH:  cellH,
		bg:     bg,
	}
}

// Size reports the screen size in field pixels.
func (s *Surface) Size() (int, int) {
	cols, rows := s.screen.Size()
	return int(float64(cols) * s.cellW), int(float64(rows) * s.cellH)
}

// SetSize resizes the cell grid to cover w x h field pixels.
func (s *Surface) SetSize(w, h int) {
	s.cols = int(float64(w) / s.cellW)
	s.rows = int(float64(h) / s.cellH)
	s.hits = make([]uint8, s.cols*s.rows)
}

// Clear empties the cell grid.
func (s *Surface) Clear() {
	clear(s.hits)
}

// FillCircle marks the cell containing (x, y). The radius is below one cell
// at any sensible cell size and is ignored.
func (s *Surface) FillCircle(x, y, _ float64, c color.RGBA) {
	col, row, ok := s.CellAt(x, y)
	if !ok {
		return
	}
	i := row*s.cols + col
	if s.hits[i] < 255 {
		s.hits[i]++
	}
	s.fg = c
}

// Present writes the grid to the screen and shows it.
func (s *Surface) Present() {
	base := tcell.StyleDefault.Background(rgb(s.bg))
	s.screen.Fill(' ', base)

	style := base.Foreground(rgb(blend(s.fg, s.bg)))
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			if n := s.hits[row*s.cols+col]; n > 0 {
				s.screen.SetContent(col, row, glyph(n), nil, style)
			}
		}
	}
	s.screen.Show()
}

// CellAt returns the cell containing field point (x, y).
func (s *Surface) CellAt(x, y float64) (col, row int, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	col, row = int(x/s.cellW), int(y/s.cellH)
	if col >= s.cols || row >= s.rows {
		return 0, 0, false
	}
	return col, row, true
}

// PointerPosition returns the field point at the centre of a cell.
func (s *Surface) PointerPosition(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * s.cellW, (float64(row) + 0.5) * s.cellH
}

func glyph(n uint8) rune {
	if int(n) >= len(glyphs) {
		return glyphs[len(glyphs)-1]
	}
	return glyphs[n]
}

// blend composites fg over an opaque bg using fg's alpha.
func blend(fg, bg color.RGBA) color.RGBA {
	a := float64(fg.A) / 255
	mix := func(f, b uint8) uint8 {
		return uint8(float64(f)*a + float64(b)*(1-a) + 0.5)
	}
	return color.RGBA{R: mix(fg.R, bg.R), G: mix(fg.G, bg.G), B: mix(fg.B, bg.B), A: 255}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
