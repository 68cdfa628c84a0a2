// Package renderer draws the particle field into a raylib window.
package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Surface is the field's drawing target inside a raylib frame. Calls must
// happen between rl.BeginDrawing and rl.EndDrawing.
type Surface struct {
	background *Background
	clearColor color.RGBA
	w, h       int
}

// NewSurface creates a surface. A nil background clears to clearColor.
func NewSurface(background *Background, clearColor color.RGBA) *Surface {
	return &Surface{background: background, clearColor: clearColor}
}

// Size reports the current window size in pixels.
func (s *Surface) Size() (int, int) {
	return rl.GetScreenWidth(), rl.GetScreenHeight()
}

// SetSize records the size the field was initialized for.
func (s *Surface) SetSize(w, h int) {
	s.w, s.h = w, h
}

// Clear wipes the frame and draws the background.
func (s *Surface) Clear() {
	rl.ClearBackground(rl.NewColor(s.clearColor.R, s.clearColor.G, s.clearColor.B, s.clearColor.A))
	if s.background != nil {
		w, h := s.Size()
		s.background.Draw(w, h, rl.GetTime())
	}
}

// FillCircle draws one particle.
func (s *Surface) FillCircle(x, y, r float64, c color.RGBA) {
	rl.DrawCircleV(rl.Vector2{X: float32(x), Y: float32(y)}, float32(r), rl.NewColor(c.R, c.G, c.B, c.A))
}
