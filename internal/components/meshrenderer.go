package components

import (
	"scenedemo/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type MeshType int

const (
	MeshCube MeshType = iota
	MeshPlane
	MeshDodecahedron
)

// Material is the mutable surface state shared by the renderer, the picker and
// the animation driver.
type Material struct {
	Color   rl.Color
	Opacity float32
}

type MeshRenderer struct {
	engine.BaseComponent
	MeshType  MeshType
	Size      rl.Vector3 // full extents for cubes and planes, X is the radius for round meshes
	Material  Material
	Wireframe bool
}

func NewMeshRenderer(meshType MeshType, color rl.Color, size rl.Vector3) *MeshRenderer {
	return &MeshRenderer{
		MeshType: meshType,
		Size:     size,
		Material: Material{Color: color, Opacity: 1},
	}
}

// Draw renders the mesh with its RGB channels scaled by brightness.
func (m *MeshRenderer) Draw(brightness float32) {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	color := rl.Fade(shade(m.Material.Color, brightness), m.Material.Opacity)
	pos := g.WorldPosition()
	rot := g.WorldRotation()
	scale := g.WorldScale()

	rl.PushMatrix()
	rl.Translatef(pos.X, pos.Y, pos.Z)
	rl.Rotatef(rot.Z, 0, 0, 1)
	rl.Rotatef(rot.Y, 0, 1, 0)
	rl.Rotatef(rot.X, 1, 0, 0)
	rl.Scalef(scale.X, scale.Y, scale.Z)

	origin := rl.Vector3Zero()
	switch m.MeshType {
	case MeshCube:
		rl.DrawCube(origin, m.Size.X, m.Size.Y, m.Size.Z, color)
		if m.Wireframe {
			rl.DrawCubeWires(origin, m.Size.X, m.Size.Y, m.Size.Z, rl.DarkGray)
		}
	case MeshDodecahedron:
		// Low ring/slice counts give the faceted look of a dodecahedron.
		rl.DrawSphereEx(origin, m.Size.X, 3, 6, color)
		if m.Wireframe {
			rl.DrawSphereWires(origin, m.Size.X, 3, 6, rl.DarkGray)
		}
	case MeshPlane:
		rl.DrawPlane(origin, rl.Vector2{X: m.Size.X, Y: m.Size.Z}, color)
	}
	rl.PopMatrix()
}

func shade(c rl.Color, brightness float32) rl.Color {
	if brightness < 0 {
		brightness = 0
	}
	if brightness > 1 {
		brightness = 1
	}
	return rl.NewColor(
		uint8(float32(c.R)*brightness),
		uint8(float32(c.G)*brightness),
		uint8(float32(c.B)*brightness),
		c.A,
	)
}
