// Package picking casts rays against the terrain mesh so pointer input can be
// turned into ground positions, for example the corners of a claim polygon.
package picking

import (
	gomath "math"

	"github.com/Faultbox/isoterra/internal/engine/terrain"
	"github.com/Faultbox/isoterra/pkg/math"
)

const triangleEpsilon = 1e-7

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // Normalized direction
}

// NewRay creates a ray, normalizing dir.
func NewRay(origin, dir math.Vec3) Ray {
	return Ray{Origin: origin, Direction: dir.Normalize()}
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// IntersectPlaneY intersects a ray with a horizontal plane at the given Y level.
// Returns the intersection point (X, Z) and whether the intersection is valid.
func (r Ray) IntersectPlaneY(planeY float32) (x, z float32, ok bool) {
	if gomath.Abs(float64(r.Direction.Y)) < 0.001 {
		return 0, 0, false // Parallel
	}

	t := (planeY - r.Origin.Y) / r.Direction.Y
	if t < 0 {
		return 0, 0, false // Behind the origin
	}

	p := r.At(t)
	return p.X, p.Z, true
}

// IntersectBounds tests the ray against an axis-aligned box using the slab
// method. If the ray starts inside the box, the exit distance is returned.
func (r Ray) IntersectBounds(box math.Bounds) (t float32, hit bool) {
	if box.IsEmpty() {
		return 0, false
	}

	origin := [3]float32{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float32{r.Direction.X, r.Direction.Y, r.Direction.Z}
	lo := [3]float32{box.Min.X, box.Min.Y, box.Min.Z}
	hi := [3]float32{box.Max.X, box.Max.Y, box.Max.Z}

	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)

	for axis := range 3 {
		if dir[axis] == 0 {
			if origin[axis] < lo[axis] || origin[axis] > hi[axis] {
				return 0, false
			}
			continue
		}
		t1 := (lo[axis] - origin[axis]) / dir[axis]
		t2 := (hi[axis] - origin[axis]) / dir[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// IntersectTriangle returns the distance to the triangle (v0, v1, v2) along
// the ray. Both faces are hit; triangles edge-on to the ray are missed.
func (r Ray) IntersectTriangle(v0, v1, v2 math.Vec3) (t float32, hit bool) {
	e1 := v1.Sub(v0)
	e2 := v2.Sub(v0)

	p := r.Direction.Cross(e2)
	det := e1.Dot(p)
	if det > -triangleEpsilon && det < triangleEpsilon {
		return 0, false
	}
	inv := 1 / det

	s := r.Origin.Sub(v0)
	u := s.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}

	q := s.Cross(e1)
	v := r.Direction.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t = e2.Dot(q) * inv
	if t < 0 {
		return 0, false
	}
	return t, true
}

// Hit describes where a ray struck the mesh.
type Hit struct {
	Distance float32
	Position math.Vec3
	Normal   math.Vec3
	Triangle int
}

// IntersectMesh returns the closest triangle the ray hits, if any.
func IntersectMesh(r Ray, m *terrain.Mesh) (Hit, bool) {
	if m == nil || m.TriangleCount() == 0 {
		return Hit{}, false
	}
	if _, ok := r.IntersectBounds(m.Bounds); !ok {
		return Hit{}, false
	}

	best := Hit{Triangle: -1, Distance: float32(gomath.MaxFloat32)}
	for i := 0; i < m.TriangleCount(); i++ {
		a := m.Vertices[m.Indices[i*3]]
		b := m.Vertices[m.Indices[i*3+1]]
		c := m.Vertices[m.Indices[i*3+2]]

		t, ok := r.IntersectTriangle(a.Position, b.Position, c.Position)
		if ok && t < best.Distance {
			best = Hit{Distance: t, Normal: a.Normal, Triangle: i}
		}
	}

	if best.Triangle < 0 {
		return Hit{}, false
	}
	best.Position = r.At(best.Distance)
	return best, true
}
