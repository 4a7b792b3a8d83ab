package animation

import (
	"fmt"

	"scenedemo/internal/camera"
	"scenedemo/internal/components"
	"scenedemo/internal/engine"
	"scenedemo/internal/frame"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

// Overlay is something that temporarily recolours objects, such as a hover
// highlight. Rebase reports whether obj is currently overlaid; if so it keeps base
// as the colour to return to and the driver leaves the material colour alone.
type Overlay interface {
	Rebase(obj *engine.GameObject, base rl.Color) bool
}

// Driver orbits the camera and pushes the live material values onto the tracked
// object once per frame.
type Driver struct {
	Camera *camera.Orbit
	Target *components.MeshRenderer
	// Overlay, when set, is consulted before the base colour is written.
	Overlay Overlay

	object  *engine.GameObject
	params  ParamSource
	log     zerolog.Logger
	running bool
}

// NewDriver resolves the tracked object by name. A missing object, or one with
// nothing to draw, is a configuration error wrapping engine.ErrObjectNotFound.
func NewDriver(scene *engine.Scene, cam *camera.Orbit, targetName string, params ParamSource, log zerolog.Logger) (*Driver, error) {
	obj, err := scene.MustFind(targetName)
	if err != nil {
		return nil, fmt.Errorf("animation target: %w", err)
	}
	renderer := engine.GetComponent[*components.MeshRenderer](obj)
	if renderer == nil {
		return nil, fmt.Errorf("animation target %q has no mesh renderer: %w", targetName, engine.ErrObjectNotFound)
	}
	return &Driver{
		Camera: cam,
		Target: renderer,
		object: obj,
		params: params,
		log:    log.With().Str("component", "animation").Logger(),
	}, nil
}

// Step advances the animation by delta seconds.
func (d *Driver) Step(delta float32) {
	if delta < 0 {
		delta = 0
	}
	p := d.params.Params()
	d.Camera.Rotate(delta * p.RotationSpeed)
	d.Target.Material.Opacity = p.Opacity
	if d.Overlay == nil || !d.Overlay.Rebase(d.object, p.Color) {
		d.Target.Material.Color = p.Color
	}
}

// Start runs Step on every frame for the life of the scheduler.
func (d *Driver) Start(s *frame.Scheduler) {
	if d.running {
		return
	}
	d.running = true
	d.log.Info().Msg("driver started")
	s.RequestFrame(d.tick(s))
}

func (d *Driver) tick(s *frame.Scheduler) frame.Callback {
	var cb frame.Callback
	cb = func(f frame.Frame) {
		d.Step(f.Delta)
		s.RequestFrame(cb)
	}
	return cb
}
