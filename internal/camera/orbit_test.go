package camera

import (
	"testing"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func assertVecNear(t *testing.T, want, got rl.Vector3, delta float64) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, delta, "X")
	assert.InDelta(t, want.Y, got.Y, delta, "Y")
	assert.InDelta(t, want.Z, got.Z, delta, "Z")
}

func TestRotate_ZeroAngleKeepsPosition(t *testing.T) {
	c := New(rl.Vector3{X: 15, Y: 16, Z: 13})
	for range 100 {
		c.Rotate(0)
	}
	assert.Equal(t, rl.Vector3{X: 15, Y: 16, Z: 13}, c.Position)
	assert.Equal(t, rl.Vector3Zero(), c.Target)
}

func TestRotate_QuarterTurn(t *testing.T) {
	c := New(rl.Vector3{X: 10, Y: 3, Z: 0})
	c.Rotate(math32.Pi / 2)
	// x' = x cos a + z sin a, z' = z cos a - x sin a
	assertVecNear(t, rl.Vector3{X: 0, Y: 3, Z: -10}, c.Position, 1e-4)
}

func TestRotate_ComposesAdditively(t *testing.T) {
	start := rl.Vector3{X: 15, Y: 16, Z: 13}
	stepped := New(start)
	const k = 240
	const step = float32(0.016 * 0.7)
	for range k {
		stepped.Rotate(step)
	}

	once := New(start)
	once.Rotate(k * step)

	assertVecNear(t, once.Position, stepped.Position, 1e-3)
	radius := math32.Hypot(start.X, start.Z)
	assert.InDelta(t, radius, math32.Hypot(stepped.Position.X, stepped.Position.Z), 1e-3)
}

func TestRay_CenterPointsAtTarget(t *testing.T) {
	c := New(rl.Vector3{X: 15, Y: 16, Z: 13})
	ray := c.Ray(0, 0)

	want := rl.Vector3Normalize(rl.Vector3Negate(c.Position))
	assertVecNear(t, want, ray.Direction, 1e-5)
	assert.Equal(t, c.Position, ray.Origin)
}

func TestRay_EdgesSpanFieldOfView(t *testing.T) {
	c := New(rl.Vector3{Z: 10})
	c.Fovy = 90
	c.Aspect = 2

	top := c.Ray(0, 1).Direction
	// 45 degrees up from straight ahead.
	assertVecNear(t, rl.Vector3Normalize(rl.Vector3{Y: 1, Z: -1}), top, 1e-5)

	right := c.Ray(1, 0).Direction
	assertVecNear(t, rl.Vector3Normalize(rl.Vector3{X: 2, Z: -1}), right, 1e-5)
}

func TestSetViewport(t *testing.T) {
	c := New(rl.Vector3{Z: 10})
	c.SetViewport(800, 400)
	assert.InDelta(t, 2.0, c.Aspect, 1e-6)

	c.SetViewport(0, 400)
	assert.InDelta(t, 2.0, c.Aspect, 1e-6, "degenerate sizes are ignored")
}
