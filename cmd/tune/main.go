// Field tuning tool - live particle field with sliders for its constants.
//
// Usage: go run ./cmd/tune [-config config.yaml]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	gui "github.com/gen2brain/raylib-go/raygui"
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/driftfield/config"
	"github.com/pthm-cable/driftfield/driver"
	"github.com/pthm-cable/driftfield/field"
	"github.com/pthm-cable/driftfield/renderer"
)

const (
	windowWidth  = 1280
	windowHeight = 800
	panelWidth   = 300
	panelX       = windowWidth - panelWidth
)

// slider describes one tunable constant.
type slider struct {
	label    string
	min, max float32
	format   string
	get      func(p *field.Params) *float64
}

var sliders = []slider{
	{"Interaction radius (px)", 20, 300, "%.0f", func(p *field.Params) *float64 { return &p.InteractionRadius }},
	{"Repulsion scale", 0.05, 1.0, "%.2f", func(p *field.Params) *float64 { return &p.RepulsionScale }},
	{"Return speed", 0.01, 0.3, "%.3f", func(p *field.Params) *float64 { return &p.ReturnSpeed }},
	{"Max drift (reseed to apply)", 0, 0.5, "%.3f", func(p *field.Params) *float64 { return &p.MaxDrift }},
	{"Particle radius (reseed to apply)", 0.5, 5, "%.1f", func(p *field.Params) *float64 { return &p.Radius }},
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	defaults := field.ParamsFromConfig(cfg.Field)

	rl.InitWindow(windowWidth, windowHeight, "Field Tuning")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	seed := int64(1)
	d := driver.New(driver.Options{
		Params:         defaults,
		Seed:           seed,
		ResizeDebounce: cfg.Derived.ResizeDebounce,
	})
	surface := renderer.NewSurface(nil, cfg.Background.Color.Color())
	d.Start(surface)
	defer d.Stop()

	var pointer driver.PointerPoller

	for !rl.WindowShouldClose() {
		// Pointer over the panel counts as off the field
		mouse := rl.GetMousePosition()
		onField := rl.IsCursorOnScreen() && mouse.X < panelX
		pointer.Sample(d, onField, float64(mouse.X), float64(mouse.Y))

		rl.BeginDrawing()
		d.Frame()

		f := d.Field()
		params := f.Params()

		// Control panel
		rl.DrawRectangle(panelX, 0, panelWidth, windowHeight, rl.Color{R: 245, G: 245, B: 245, A: 235})
		x := float32(panelX + 15)
		y := float32(10)

		rl.DrawText("Field Parameters", int32(x), int32(y), 20, rl.DarkGray)
		y += 35

		changed := false
		for _, s := range sliders {
			v := s.get(&params)
			rl.DrawText(s.label, int32(x), int32(y), 14, rl.Gray)
			y += 18
			nv := gui.SliderBar(
				rl.Rectangle{X: x, Y: y, Width: panelWidth - 100, Height: 20},
				"", "",
				float32(*v), s.min, s.max,
			)
			rl.DrawText(fmt.Sprintf(s.format, *v), int32(x+panelWidth-90), int32(y+2), 16, rl.DarkGray)
			if nv != float32(*v) {
				*v = float64(nv)
				changed = true
			}
			y += 35
		}
		if changed {
			f.SetParams(params)
		}
		y += 10

		// Buttons
		if gui.Button(rl.Rectangle{X: x, Y: y, Width: 120, Height: 30}, "Reseed") {
			seed++
			d.Reseed(seed)
		}
		if gui.Button(rl.Rectangle{X: x + 130, Y: y, Width: 120, Height: 30}, "Reset All") {
			d.Field().SetParams(defaults)
			d.Reseed(seed)
		}
		y += 45

		f = d.Field()
		rl.DrawText(fmt.Sprintf("Particles: %d  Seed: %d", f.Len(), seed), int32(x), int32(y), 14, rl.DarkGray)
		y += 18
		rl.DrawText(fmt.Sprintf("Repelled: %d  FPS: %d", f.Repelled(), rl.GetFPS()), int32(x), int32(y), 14, rl.DarkGray)
		y += 30

		// YAML preview
		out := fieldYAML(f.Params())
		rl.DrawText("YAML Config:", int32(x), int32(y), 16, rl.DarkGray)
		y += 22
		rl.DrawText(out, int32(x), int32(y), 12, rl.Gray)

		rl.DrawText("Press C to copy YAML to clipboard", int32(x), windowHeight-30, 12, rl.Gray)
		if rl.IsKeyPressed(rl.KeyC) {
			rl.SetClipboardText(out)
		}

		rl.EndDrawing()
	}
}

// fieldYAML renders params as the field section of a config file.
func fieldYAML(p field.Params) string {
	data, err := yaml.Marshal(map[string]config.FieldConfig{"field": p.Config()})
	if err != nil {
		return err.Error()
	}
	return string(data)
}
