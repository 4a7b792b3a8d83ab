// Package panel is the on-screen tweak panel for the live animation parameters.
package panel

import (
	"fmt"
	"sync"

	"scenedemo/internal/animation"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	Width  = 240
	Height = 330

	MaxRotationSpeed = 3
)

// Status is read-only information shown at the bottom of the panel.
type Status struct {
	Hovering bool
	Object   string
	FPS      int32
	Dropping bool
}

// Panel owns the live parameter bag. The render loop edits it through Draw; the
// config watcher replaces it with Set from its own goroutine.
type Panel struct {
	mu     sync.Mutex
	params animation.Params
	Bounds rl.Rectangle

	// DropRequested is set by the drop button and cleared by the host.
	DropRequested bool
}

func New(initial animation.Params) *Panel {
	return &Panel{
		params: clampParams(initial),
		Bounds: rl.Rectangle{X: 10, Y: 10, Width: Width, Height: Height},
	}
}

// Params implements animation.ParamSource.
func (p *Panel) Params() animation.Params {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.params
}

func (p *Panel) Set(params animation.Params) {
	p.mu.Lock()
	p.params = clampParams(params)
	p.mu.Unlock()
}

// Contains reports whether a screen position falls on the panel, so the host can
// skip picking behind it.
func (p *Panel) Contains(pos rl.Vector2) bool {
	b := p.Bounds
	return pos.X >= b.X && pos.X <= b.X+b.Width && pos.Y >= b.Y && pos.Y <= b.Y+b.Height
}

// Draw renders the controls and stores whatever the user changed.
func (p *Panel) Draw(status Status) {
	before := p.Params()
	params := before
	x, y := p.Bounds.X, p.Bounds.Y

	gui.GroupBox(p.Bounds, "Controls")

	gui.Label(rl.Rectangle{X: x + 10, Y: y + 15, Width: 200, Height: 20}, "Rotation speed")
	params.RotationSpeed = gui.Slider(
		rl.Rectangle{X: x + 10, Y: y + 35, Width: 170, Height: 16},
		"", fmt.Sprintf("%.2f", params.RotationSpeed), params.RotationSpeed, 0, MaxRotationSpeed)

	gui.Label(rl.Rectangle{X: x + 10, Y: y + 55, Width: 200, Height: 20}, "Opacity")
	params.Opacity = gui.Slider(
		rl.Rectangle{X: x + 10, Y: y + 75, Width: 170, Height: 16},
		"", fmt.Sprintf("%.2f", params.Opacity), params.Opacity, 0, 1)

	gui.Label(rl.Rectangle{X: x + 10, Y: y + 95, Width: 200, Height: 20}, "Color")
	params.Color = gui.ColorPicker(rl.Rectangle{X: x + 10, Y: y + 115, Width: 170, Height: 120}, "", params.Color)
	params.Color.A = 255

	if !status.Dropping && gui.Button(rl.Rectangle{X: x + 10, Y: y + 245, Width: 100, Height: 24}, "Drop") {
		p.DropRequested = true
	}

	hover := "nothing"
	if status.Hovering {
		hover = status.Object
	}
	gui.Label(rl.Rectangle{X: x + 10, Y: y + 275, Width: 220, Height: 20}, "Pointer over: "+hover)
	gui.Label(rl.Rectangle{X: x + 10, Y: y + 295, Width: 220, Height: 20}, fmt.Sprintf("FPS: %d", status.FPS))

	p.merge(before, params)
}

// merge stores the fields the widgets changed from before, leaving any value set
// by another goroutine in the meantime untouched.
func (p *Panel) merge(before, after animation.Params) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if after.RotationSpeed != before.RotationSpeed {
		p.params.RotationSpeed = after.RotationSpeed
	}
	if after.Opacity != before.Opacity {
		p.params.Opacity = after.Opacity
	}
	if after.Color != before.Color {
		p.params.Color = after.Color
	}
	p.params = clampParams(p.params)
}

func clampParams(p animation.Params) animation.Params {
	p.RotationSpeed = clamp(p.RotationSpeed, 0, MaxRotationSpeed)
	p.Opacity = clamp(p.Opacity, 0, 1)
	return p
}

func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
