package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Draw renders one frame. The driver ticks the field, which clears the
// surface and draws every particle.
func (g *Game) Draw() {
	rl.BeginDrawing()

	g.driver.Frame()

	if g.showHUD {
		g.drawHUD()
	}

	rl.EndDrawing()
}

// drawHUD renders field and performance counters.
func (g *Game) drawHUD() {
	f := g.driver.Field()
	if f == nil {
		return
	}

	panelX := int32(10)
	panelY := int32(10)
	rl.DrawRectangle(panelX-4, panelY-4, 250, 74, rl.Color{R: 0, G: 0, B: 0, A: 140})

	rl.DrawText(fmt.Sprintf("Particles: %d  Gen: %d", f.Len(), f.Generation()), panelX, panelY, 16, rl.RayWhite)
	rl.DrawText(fmt.Sprintf("Repelled: %d", f.Repelled()), panelX, panelY+20, 16, rl.RayWhite)

	fps := rl.GetFPS()
	line := fmt.Sprintf("FPS: %d", fps)
	if g.perf != nil {
		stats := g.perf.Stats()
		line = fmt.Sprintf("FPS: %d  Tick: %v", fps, stats.AvgTickDuration)
	}
	rl.DrawText(line, panelX, panelY+40, 14, rl.LightGray)

	if g.driver.ResizePending() {
		rl.DrawText("resizing...", panelX+170, panelY+40, 14, rl.Yellow)
	}
}
