package game

import rl "github.com/gen2brain/raylib-go/raylib"

// handleInput processes keyboard, pointer and window input.
func (g *Game) handleInput() {
	// Window resize propagation
	g.handleResize()

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
		g.driver.Resized()
	}

	if rl.IsKeyPressed(rl.KeyH) {
		g.showHUD = !g.showHUD
	}

	mouse := rl.GetMousePosition()
	g.pointer.Sample(g.driver, rl.IsCursorOnScreen(), float64(mouse.X), float64(mouse.Y))
}

// handleResize checks for window resize and signals the driver, which
// reinitializes the field once resizing settles.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := rl.GetScreenWidth()
	h := rl.GetScreenHeight()
	if w == g.width && h == g.height {
		return
	}
	g.width = w
	g.height = h
	g.driver.Resized()
}
