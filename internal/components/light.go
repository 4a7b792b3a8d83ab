package components

import (
	"scenedemo/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DirectionalLight shines from its object's position towards Target.
type DirectionalLight struct {
	engine.BaseComponent
	Color     rl.Color
	Intensity float32
	Target    rl.Vector3
}

func NewDirectionalLight(color rl.Color, intensity float32) *DirectionalLight {
	return &DirectionalLight{
		Color:     color,
		Intensity: intensity,
	}
}

// Direction returns the normalized direction light travels in.
func (l *DirectionalLight) Direction() rl.Vector3 {
	g := l.GetGameObject()
	if g == nil {
		return rl.Vector3{X: 0, Y: -1, Z: 0}
	}
	return rl.Vector3Normalize(rl.Vector3Subtract(l.Target, g.WorldPosition()))
}

// AmbientLight lights every surface uniformly and casts no shadows.
type AmbientLight struct {
	engine.BaseComponent
	Color     rl.Color
	Intensity float32
}

func NewAmbientLight(color rl.Color, intensity float32) *AmbientLight {
	return &AmbientLight{
		Color:     color,
		Intensity: intensity,
	}
}
