package camera

import (
	"scenedemo/internal/physics"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Orbit is a perspective camera that circles its target around the vertical axis.
type Orbit struct {
	Position rl.Vector3
	Target   rl.Vector3
	Up       rl.Vector3
	Fovy     float32 // vertical field of view in degrees
	Aspect   float32
}

func New(pos rl.Vector3) *Orbit {
	return &Orbit{
		Position: pos,
		Target:   rl.Vector3Zero(),
		Up:       rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:     45,
		Aspect:   16.0 / 9.0,
	}
}

// Rotate turns the camera by angle radians about the vertical axis through the
// world origin, then re-aims it at the origin.
func (c *Orbit) Rotate(angle float32) {
	if angle == 0 {
		c.LookAt(rl.Vector3Zero())
		return
	}
	sin, cos := math32.Sincos(angle)
	x, z := c.Position.X, c.Position.Z
	c.Position.X = x*cos + z*sin
	c.Position.Z = z*cos - x*sin
	c.LookAt(rl.Vector3Zero())
}

func (c *Orbit) LookAt(target rl.Vector3) {
	c.Target = target
}

// SetViewport keeps the aspect ratio in step with the window size.
func (c *Orbit) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

// Ray casts from the camera through a pointer position normalized to [-1, 1],
// with +Y pointing up the screen.
func (c *Orbit) Ray(x, y float32) physics.Ray {
	forward, right, up := c.basis()
	tanHalf := math32.Tan(c.Fovy * rl.Deg2rad / 2)

	dir := forward
	dir = rl.Vector3Add(dir, rl.Vector3Scale(right, x*tanHalf*c.Aspect))
	dir = rl.Vector3Add(dir, rl.Vector3Scale(up, y*tanHalf))

	return physics.Ray{Origin: c.Position, Direction: rl.Vector3Normalize(dir)}
}

func (c *Orbit) basis() (forward, right, up rl.Vector3) {
	forward = rl.Vector3Normalize(rl.Vector3Subtract(c.Target, c.Position))
	right = rl.Vector3Normalize(rl.Vector3CrossProduct(forward, c.Up))
	up = rl.Vector3CrossProduct(right, forward)
	return
}

func (c *Orbit) GetRaylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position,
		Target:     c.Target,
		Up:         c.Up,
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}
