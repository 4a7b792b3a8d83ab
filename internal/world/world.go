package world

import (
	"fmt"

	"scenedemo/internal/camera"
	"scenedemo/internal/components"
	"scenedemo/internal/config"
	"scenedemo/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	FloorSize  = 20.0
	FloorY     = -2.0
	CubeSize   = 6.0
	SphereY    = 8.0
	SphereGap  = 5.0
	SphereSize = 2.0

	// DropTag marks the objects moved by the drop.
	DropTag = "drop"
	// PickTag marks the objects the pointer can highlight.
	PickTag = "pickable"
)

type World struct {
	Scene    *engine.Scene
	Camera   *camera.Orbit
	Cube     *engine.GameObject
	Floor    *engine.GameObject
	Spheres  []*engine.GameObject
	Ambient  *components.AmbientLight
	Sunlight *components.DirectionalLight
}

// Build assembles the demo scene. No GPU resources are created, so it can run
// before the window opens.
func Build(cfg config.Config) *World {
	w := &World{
		Scene: engine.NewScene("Main"),
	}

	w.Camera = camera.New(cfg.CameraPosition())
	w.Camera.Fovy = cfg.Camera.Fovy
	w.Camera.SetViewport(cfg.Window.Width, cfg.Window.Height)
	w.Camera.LookAt(rl.Vector3Zero())

	w.createFloor()
	w.createCube(cfg.Scene.CubeName, config.Hex(0xbdbdbd))
	w.createSpheres(cfg.Scene.SphereCount, cfg.SphereColor())
	w.createLights()

	w.Scene.Start()
	return w
}

func (w *World) createFloor() {
	floor := engine.NewGameObject("plane")
	floor.Tags = []string{PickTag}
	floor.Transform.Position = rl.Vector3{Y: FloorY}

	size := rl.Vector3{X: FloorSize, Y: 0, Z: FloorSize}
	floor.AddComponent(components.NewMeshRenderer(components.MeshPlane, config.Hex(0xcccccc), size))
	// Give the collider a sliver of height so grazing rays still register.
	floor.AddComponent(components.NewBoxCollider(rl.Vector3{X: FloorSize, Y: 0.01, Z: FloorSize}))

	w.Floor = floor
	w.Scene.AddGameObject(floor)
}

func (w *World) createCube(name string, color rl.Color) {
	cube := engine.NewGameObject(name)
	cube.Tags = []string{PickTag}
	cube.Transform.Scale = rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5}
	cube.Transform.Rotation.Z = -45

	size := rl.Vector3{X: CubeSize, Y: CubeSize, Z: CubeSize}
	renderer := components.NewMeshRenderer(components.MeshCube, color, size)
	renderer.Wireframe = true
	cube.AddComponent(renderer)
	cube.AddComponent(components.NewBoxCollider(size))

	w.Cube = cube
	w.Scene.AddGameObject(cube)
}

func (w *World) createSpheres(count int, color rl.Color) {
	for i := range count {
		sphere := engine.NewGameObject(fmt.Sprintf("sphere_%d", i))
		sphere.Tags = []string{PickTag, DropTag}
		sphere.Transform.Position = rl.Vector3{X: float32(i) * SphereGap, Y: SphereY}

		renderer := components.NewMeshRenderer(components.MeshDodecahedron, color, rl.Vector3{X: SphereSize})
		renderer.Wireframe = true
		sphere.AddComponent(renderer)
		sphere.AddComponent(components.NewSphereCollider(SphereSize))

		w.Spheres = append(w.Spheres, sphere)
		w.Scene.AddGameObject(sphere)
	}
}

func (w *World) createLights() {
	ambient := engine.NewGameObject("ambient")
	w.Ambient = components.NewAmbientLight(rl.White, 0.3)
	ambient.AddComponent(w.Ambient)
	w.Scene.AddGameObject(ambient)

	sun := engine.NewGameObject("light")
	sun.Transform.Position = rl.Vector3{X: 10, Y: 20, Z: 20}
	w.Sunlight = components.NewDirectionalLight(rl.White, 1)
	sun.AddComponent(w.Sunlight)
	w.Scene.AddGameObject(sun)
}

// Pickables returns the scene objects the pointer can hit, in scene order.
func (w *World) Pickables() []*engine.GameObject {
	return w.Scene.FindByTag(PickTag)
}

// DropGroup returns the objects moved by the drop.
func (w *World) DropGroup() []*engine.GameObject {
	return w.Scene.FindByTag(DropTag)
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}
