package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/driftfield/backdrop"
)

// backgroundRefresh is how often the noise texture is regenerated, in seconds.
const backgroundRefresh = 1.0 / 15.0

// Background draws the tint texture stretched over the screen.
type Background struct {
	tint        *backdrop.Tint
	texture     rl.Texture2D
	lastUpdate  float64
	initialized bool
}

// NewBackground creates a background renderer for the given tint.
func NewBackground(tint *backdrop.Tint) *Background {
	return &Background{tint: tint, lastUpdate: -1}
}

// Init allocates the texture (must be called after the raylib window is created).
func (b *Background) Init() {
	if b.initialized {
		return
	}
	n := b.tint.Size()
	img := rl.GenImageColor(n, n, rl.Black)
	b.texture = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	rl.SetTextureFilter(b.texture, rl.FilterBilinear)
	b.initialized = true
}

// Draw renders the tint over a w x h screen at time sec.
func (b *Background) Draw(w, h int, sec float64) {
	if !b.initialized {
		b.Init()
	}
	if b.lastUpdate < 0 || sec-b.lastUpdate >= backgroundRefresh {
		rl.UpdateTexture(b.texture, b.tint.Render(w, h, sec))
		b.lastUpdate = sec
	}

	n := float32(b.tint.Size())
	rl.DrawTexturePro(
		b.texture,
		rl.Rectangle{X: 0, Y: 0, Width: n, Height: n},
		rl.Rectangle{X: 0, Y: 0, Width: float32(w), Height: float32(h)},
		rl.Vector2{X: 0, Y: 0},
		0,
		rl.White,
	)
}

// Unload frees resources.
func (b *Background) Unload() {
	if b.initialized {
		rl.UnloadTexture(b.texture)
		b.initialized = false
	}
}
