package backdrop

import (
	"image/color"
	"testing"

	"github.com/pthm-cable/driftfield/config"
)

var pageColor = color.RGBA{R: 0x11, G: 0x11, B: 0x27, A: 255}

func TestFlatTintWithoutNoise(t *testing.T) {
	tint := New(Params{Base: pageColor, Size: 8}, 42)
	for i, px := range tint.Render(1280, 800, 3.0) {
		if px != pageColor {
			t.Fatalf("texel %d: expected %+v, got %+v", i, pageColor, px)
		}
	}
}

func TestTintStaysNearBase(t *testing.T) {
	p := Params{Base: pageColor, Amp: 0.08, Scale: 0.004, TimeSpeed: 0.05, Size: 16}
	tint := New(p, 42)
	pixels := tint.Render(1280, 800, 10.0)

	if len(pixels) != 16*16 {
		t.Fatalf("expected 256 texels, got %d", len(pixels))
	}

	varied := false
	for _, px := range pixels {
		// 0x27 = 39; 8% swing is at most ±4 after rounding
		if px.B < 35 || px.B > 43 {
			t.Errorf("expected blue channel near 39, got %d", px.B)
		}
		if px.A != 255 {
			t.Errorf("expected alpha preserved, got %d", px.A)
		}
		if px != pixels[0] {
			varied = true
		}
	}
	if !varied {
		t.Error("expected noise to vary across texels")
	}
}

func TestTintDeterministic(t *testing.T) {
	p := Params{Base: pageColor, Amp: 0.5, Scale: 0.01, TimeSpeed: 1, Size: 8}
	a := append([]color.RGBA(nil), New(p, 7).Render(640, 480, 1.5)...)
	b := New(p, 7).Render(640, 480, 1.5)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("texel %d differs between identical seeds", i)
		}
	}
}

func TestParamsFromConfig(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	p := ParamsFromConfig(cfg.Background)
	if p.Base != pageColor {
		t.Errorf("expected page colour %+v, got %+v", pageColor, p.Base)
	}
	if p.Size != 128 {
		t.Errorf("expected 128 texels per side, got %d", p.Size)
	}
}

func TestShadeClamps(t *testing.T) {
	got := shade(color.RGBA{R: 200, G: 10, B: 0, A: 9}, 2)
	want := color.RGBA{R: 255, G: 20, B: 0, A: 9}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}
