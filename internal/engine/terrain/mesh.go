package terrain

import (
	"github.com/Faultbox/isoterra/internal/engine/mesher"
	"github.com/Faultbox/isoterra/pkg/math"
)

// BuildMesh creates a flat-shaded terrain mesh from a triangle soup.
// Every triangle gets three fresh vertices sharing its face normal. UVs
// project positions onto the horizontal extent of a sizeX by sizeZ lattice.
//
// Degenerate triangles are kept; when their cross product is exactly zero the
// normal is the zero vector.
func BuildMesh(soup *mesher.Soup, sizeX, sizeZ int) *Mesh {
	triCount := soup.TriangleCount()

	mesh := &Mesh{
		Vertices: make([]Vertex, 0, triCount*3),
		Indices:  make([]uint32, 0, triCount*3),
	}

	bounds := math.EmptyBounds()
	sx, sz := float32(sizeX), float32(sizeZ)

	for i := 0; i < triCount; i++ {
		v0, v1, v2 := soup.Triangle(i)
		normal := v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()

		baseIdx := uint32(len(mesh.Vertices))
		for _, p := range [3]math.Vec3{v0, v1, v2} {
			mesh.Vertices = append(mesh.Vertices, Vertex{
				Position: p,
				Normal:   normal,
				TexCoord: math.Vec2{X: p.X / sx, Y: p.Z / sz},
			})
			bounds.Extend(p)
		}
		mesh.Indices = append(mesh.Indices, baseIdx, baseIdx+1, baseIdx+2)
	}

	if !bounds.IsEmpty() {
		mesh.Bounds = bounds
	}

	return mesh
}
