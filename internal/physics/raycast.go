package physics

import (
	"scenedemo/internal/components"
	"scenedemo/internal/engine"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Ray is a half-line. Direction does not need to be normalized.
type Ray struct {
	Origin    rl.Vector3
	Direction rl.Vector3
}

type RaycastHit struct {
	GameObject *engine.GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// Raycast tests every active object carrying a collider and returns the closest hit
// within maxDistance. Objects at exactly equal distance resolve to the first tested.
func Raycast(ray Ray, objects []*engine.GameObject, maxDistance float32) (RaycastHit, bool) {
	direction := rl.Vector3Normalize(ray.Direction)
	if rl.Vector3Length(direction) == 0 {
		return RaycastHit{}, false
	}
	var closestHit RaycastHit
	closestHit.Distance = maxDistance
	hit := false

	for _, obj := range objects {
		if obj == nil || !obj.Active {
			continue
		}
		if box := engine.GetComponent[*components.BoxCollider](obj); box != nil {
			if hitInfo, ok := raycastBox(ray.Origin, direction, box, maxDistance); ok {
				if hitInfo.Distance < closestHit.Distance {
					closestHit = hitInfo
					closestHit.GameObject = obj
					hit = true
				}
			}
		}
		if sphere := engine.GetComponent[*components.SphereCollider](obj); sphere != nil {
			if hitInfo, ok := raycastSphere(ray.Origin, direction, sphere, maxDistance); ok {
				if hitInfo.Distance < closestHit.Distance {
					closestHit = hitInfo
					closestHit.GameObject = obj
					hit = true
				}
			}
		}
	}

	return closestHit, hit
}

// raycastBox transforms the ray into the box's local frame and runs a slab test there.
func raycastBox(origin, direction rl.Vector3, box *components.BoxCollider, maxDistance float32) (RaycastHit, bool) {
	center := box.GetCenter()
	rot := box.GetRotation()
	inv := rl.QuaternionInvert(rot)

	localOrigin := rl.Vector3RotateByQuaternion(rl.Vector3Subtract(origin, center), inv)
	localDir := rl.Vector3RotateByQuaternion(direction, inv)

	bounds := NewAABBFromCenter(rl.Vector3Zero(), box.GetWorldSize())
	tmin, tmax, ok := bounds.IntersectRay(localOrigin, localDir)
	if !ok {
		return RaycastHit{}, false
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	if t > maxDistance {
		return RaycastHit{}, false
	}

	local := rl.Vector3Add(localOrigin, rl.Vector3Scale(localDir, t))
	normal := boxFaceNormal(local, bounds)

	return RaycastHit{
		Point:    rl.Vector3Add(origin, rl.Vector3Scale(direction, t)),
		Normal:   rl.Vector3RotateByQuaternion(normal, rot),
		Distance: t,
	}, true
}

// boxFaceNormal picks the face of b whose plane the local point lies closest to.
func boxFaceNormal(p rl.Vector3, b AABB) rl.Vector3 {
	best := abs(p.X - b.Min.X)
	normal := rl.Vector3{X: -1}
	candidates := []struct {
		d float32
		n rl.Vector3
	}{
		{abs(p.X - b.Max.X), rl.Vector3{X: 1}},
		{abs(p.Y - b.Min.Y), rl.Vector3{Y: -1}},
		{abs(p.Y - b.Max.Y), rl.Vector3{Y: 1}},
		{abs(p.Z - b.Min.Z), rl.Vector3{Z: -1}},
		{abs(p.Z - b.Max.Z), rl.Vector3{Z: 1}},
	}
	for _, c := range candidates {
		if c.d < best {
			best = c.d
			normal = c.n
		}
	}
	return normal
}

func raycastSphere(origin, direction rl.Vector3, sphere *components.SphereCollider, maxDistance float32) (RaycastHit, bool) {
	center := sphere.GetCenter()
	radius := sphere.GetWorldRadius()

	oc := rl.Vector3Subtract(origin, center)
	b := rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius

	discriminant := b*b - c
	if discriminant < 0 {
		return RaycastHit{}, false
	}

	sq := math32.Sqrt(discriminant)
	t := -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Normalize(rl.Vector3Subtract(point, center))

	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}
