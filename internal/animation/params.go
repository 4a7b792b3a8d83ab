package animation

import rl "github.com/gen2brain/raylib-go/raylib"

// Params are the live-editable values the driver reads every frame.
type Params struct {
	RotationSpeed float32 // radians per second
	Opacity       float32
	Color         rl.Color
}

// ParamSource hands out the current parameter values. The driver never writes back.
type ParamSource interface {
	Params() Params
}

// Static is a ParamSource that never changes.
type Static Params

func (s Static) Params() Params {
	return Params(s)
}
