package world

import (
	"scenedemo/internal/components"
	"scenedemo/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer draws every MeshRenderer with simple Lambert shading from the scene's
// ambient and directional lights.
type Renderer struct {
	Ambient  *components.AmbientLight
	Sunlight *components.DirectionalLight
	Grid     bool
}

func NewRenderer(w *World) *Renderer {
	return &Renderer{Ambient: w.Ambient, Sunlight: w.Sunlight}
}

// Brightness returns the light level of a surface with normal n.
func (r *Renderer) Brightness(n rl.Vector3) float32 {
	var level float32
	if r.Ambient != nil {
		level += r.Ambient.Intensity
	}
	if r.Sunlight != nil {
		toLight := rl.Vector3Negate(r.Sunlight.Direction())
		if d := rl.Vector3DotProduct(rl.Vector3Normalize(n), toLight); d > 0 {
			level += d * r.Sunlight.Intensity
		}
	}
	if level > 1 {
		level = 1
	}
	return level
}

// Draw renders gameObjects from cam. Must be called between BeginDrawing and EndDrawing.
func (r *Renderer) Draw(cam rl.Camera3D, gameObjects []*engine.GameObject) {
	rl.BeginMode3D(cam)
	if r.Grid {
		rl.DrawGrid(20, 1)
	}
	// Opaque first so translucent surfaces blend over what is behind them.
	for _, pass := range []bool{true, false} {
		for _, g := range gameObjects {
			renderer := engine.GetComponent[*components.MeshRenderer](g)
			if renderer == nil || (renderer.Material.Opacity >= 1) != pass {
				continue
			}
			renderer.Draw(r.Brightness(surfaceNormal(renderer, g, cam.Position)))
		}
	}
	if r.Sunlight != nil {
		pos := r.Sunlight.GetGameObject().WorldPosition()
		rl.DrawSphere(pos, 0.5, rl.Yellow)
		rl.DrawLine3D(pos, r.Sunlight.Target, rl.Yellow)
	}
	rl.EndMode3D()
}

// surfaceNormal approximates the normal of the surface facing the viewer: planes
// face up, solids are lit by the side turned towards the camera.
func surfaceNormal(m *components.MeshRenderer, g *engine.GameObject, eye rl.Vector3) rl.Vector3 {
	if m.MeshType == components.MeshPlane {
		return rl.Vector3{Y: 1}
	}
	return rl.Vector3Subtract(eye, g.WorldPosition())
}
