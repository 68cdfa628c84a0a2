package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load defaults: %v", err)
	}

	f := cfg.Field
	if f.ParticleRadius != 1.5 {
		t.Errorf("expected particle radius 1.5, got %v", f.ParticleRadius)
	}
	if f.AreaPerParticle != 3500 {
		t.Errorf("expected area per particle 3500, got %v", f.AreaPerParticle)
	}
	if f.MinParticles != 80 || f.MaxParticles != 350 {
		t.Errorf("expected particle bounds [80, 350], got [%d, %d]", f.MinParticles, f.MaxParticles)
	}
	if f.InteractionRadius != 100 {
		t.Errorf("expected interaction radius 100, got %v", f.InteractionRadius)
	}
	if f.RepulsionScale != 0.3 || f.ReturnSpeed != 0.08 || f.MaxDrift != 0.075 {
		t.Errorf("unexpected force constants: repulsion=%v return=%v drift=%v",
			f.RepulsionScale, f.ReturnSpeed, f.MaxDrift)
	}
	if f.DensityMin != 5 || f.DensityMax != 20 {
		t.Errorf("expected density [5, 20), got [%v, %v)", f.DensityMin, f.DensityMax)
	}
	if cfg.Derived.ResizeDebounce != 250*time.Millisecond {
		t.Errorf("expected 250ms debounce, got %v", cfg.Derived.ResizeDebounce)
	}
	if bg := cfg.Background.Color; bg != (RGBA{R: 0x11, G: 0x11, B: 0x27, A: 255}) {
		t.Errorf("expected background #111127, got %+v", bg)
	}
	if cfg.Terminal.CellWidth != 8 || cfg.Terminal.CellHeight != 16 {
		t.Errorf("expected 8x16 terminal cells, got %vx%v", cfg.Terminal.CellWidth, cfg.Terminal.CellHeight)
	}
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	overlay := []byte("field:\n  interaction_radius: 140\ndriver:\n  resize_debounce_ms: 100\n")
	if err := os.WriteFile(path, overlay, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load overlay: %v", err)
	}

	if cfg.Field.InteractionRadius != 140 {
		t.Errorf("expected overridden interaction radius 140, got %v", cfg.Field.InteractionRadius)
	}
	// Untouched fields keep their defaults
	if cfg.Field.ReturnSpeed != 0.08 {
		t.Errorf("expected default return speed 0.08, got %v", cfg.Field.ReturnSpeed)
	}
	if cfg.Derived.ResizeDebounce != 100*time.Millisecond {
		t.Errorf("expected derived debounce 100ms, got %v", cfg.Derived.ResizeDebounce)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero area", "field:\n  area_per_particle: 0\n"},
		{"inverted bounds", "field:\n  min_particles: 400\n"},
		{"negative debounce", "driver:\n  resize_debounce_ms: -1\n"},
		{"inverted density", "field:\n  density_min: 30\n"},
		{"zero cell width", "terminal:\n  cell_width: 0\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(tc.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Field.MaxParticles = 200

	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("reload snapshot: %v", err)
	}
	if reloaded.Field.MaxParticles != 200 {
		t.Errorf("expected max particles 200 after reload, got %d", reloaded.Field.MaxParticles)
	}
	if reloaded.Field.Color != cfg.Field.Color {
		t.Errorf("expected colour %+v, got %+v", cfg.Field.Color, reloaded.Field.Color)
	}
}
