package physics

import (
	"testing"

	"scenedemo/internal/components"
	"scenedemo/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBox(name string, pos, size rl.Vector3) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Transform.Position = pos
	g.AddComponent(components.NewBoxCollider(size))
	return g
}

func newSphere(name string, pos rl.Vector3, radius float32) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Transform.Position = pos
	g.AddComponent(components.NewSphereCollider(radius))
	return g
}

func TestRaycast_NearestWins(t *testing.T) {
	near := newBox("near", rl.Vector3{Z: -5}, rl.Vector3{X: 1, Y: 1, Z: 1})
	far := newSphere("far", rl.Vector3{Z: -10}, 1)
	ray := Ray{Origin: rl.Vector3Zero(), Direction: rl.Vector3{Z: -1}}

	hit, ok := Raycast(ray, []*engine.GameObject{far, near}, 100)
	require.True(t, ok)
	assert.Same(t, near, hit.GameObject)
	assert.InDelta(t, 4.5, hit.Distance, 1e-4)
	assert.Equal(t, rl.Vector3{Z: 1}, hit.Normal)
}

func TestRaycast_Miss(t *testing.T) {
	box := newBox("box", rl.Vector3{X: 5}, rl.Vector3{X: 1, Y: 1, Z: 1})
	ray := Ray{Origin: rl.Vector3Zero(), Direction: rl.Vector3{Z: -1}}

	_, ok := Raycast(ray, []*engine.GameObject{box}, 100)
	assert.False(t, ok)
}

func TestRaycast_BehindOriginIsIgnored(t *testing.T) {
	sphere := newSphere("behind", rl.Vector3{Z: 5}, 1)
	ray := Ray{Origin: rl.Vector3Zero(), Direction: rl.Vector3{Z: -1}}

	_, ok := Raycast(ray, []*engine.GameObject{sphere}, 100)
	assert.False(t, ok)
}

func TestRaycast_MaxDistance(t *testing.T) {
	sphere := newSphere("far", rl.Vector3{Z: -50}, 1)
	ray := Ray{Origin: rl.Vector3Zero(), Direction: rl.Vector3{Z: -1}}

	_, ok := Raycast(ray, []*engine.GameObject{sphere}, 10)
	assert.False(t, ok)
}

func TestRaycast_InactiveObjectsAreSkipped(t *testing.T) {
	box := newBox("hidden", rl.Vector3{Z: -5}, rl.Vector3{X: 1, Y: 1, Z: 1})
	box.Active = false
	ray := Ray{Origin: rl.Vector3Zero(), Direction: rl.Vector3{Z: -1}}

	_, ok := Raycast(ray, []*engine.GameObject{box, nil}, 100)
	assert.False(t, ok)
}

func TestRaycast_RotatedBox(t *testing.T) {
	// A thin slab rotated 90 degrees about Y stands across the X axis instead of Z.
	slab := newBox("slab", rl.Vector3{X: 5}, rl.Vector3{X: 4, Y: 4, Z: 0.2})
	ray := Ray{Origin: rl.Vector3Zero(), Direction: rl.Vector3{X: 1}}

	_, ok := Raycast(ray, []*engine.GameObject{slab}, 100)
	require.True(t, ok, "unrotated slab is 4 units wide along X")

	slab.Transform.Rotation.Y = 90
	hit, ok := Raycast(ray, []*engine.GameObject{slab}, 100)
	require.True(t, ok)
	assert.InDelta(t, 4.9, hit.Distance, 1e-3)

	offAxis := Ray{Origin: rl.Vector3{Z: 1.5}, Direction: rl.Vector3{X: 1}}
	_, ok = Raycast(offAxis, []*engine.GameObject{slab}, 100)
	assert.True(t, ok, "rotated slab spans Z in [-2, 2]")
	offAxis.Origin.Z = 2.5
	_, ok = Raycast(offAxis, []*engine.GameObject{slab}, 100)
	assert.False(t, ok)
}

func TestRaycast_ScaledColliders(t *testing.T) {
	cube := newBox("cube", rl.Vector3Zero(), rl.Vector3{X: 6, Y: 6, Z: 6})
	cube.Transform.Scale = rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5}
	ray := Ray{Origin: rl.Vector3{X: 10}, Direction: rl.Vector3{X: -1}}

	hit, ok := Raycast(ray, []*engine.GameObject{cube}, 100)
	require.True(t, ok)
	assert.InDelta(t, 8.5, hit.Distance, 1e-4)
}

func TestRaycast_OriginInsideSphere(t *testing.T) {
	sphere := newSphere("around", rl.Vector3Zero(), 2)
	ray := Ray{Origin: rl.Vector3Zero(), Direction: rl.Vector3{Y: 1}}

	hit, ok := Raycast(ray, []*engine.GameObject{sphere}, 100)
	require.True(t, ok)
	assert.InDelta(t, 2, hit.Distance, 1e-4)
}

