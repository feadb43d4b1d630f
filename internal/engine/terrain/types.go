// Package terrain turns isosurface triangles into a flat-shaded render mesh
// and provides ground height lookups over the same lattice.
package terrain

import "github.com/Faultbox/isoterra/pkg/math"

// Vertex represents a terrain mesh vertex with all attributes.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	TexCoord math.Vec2 // Planar (x/sizeX, z/sizeZ) projection
}

// Mesh holds the complete terrain mesh data ready for the host renderer.
// Vertices are never shared between triangles, so len(Vertices) == len(Indices).
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Bounds   math.Bounds
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Heightmap provides ground height lookup for a generated lattice.
type Heightmap struct {
	Altitudes [][]float32 // 2D array [x][z] of surface heights
	TilesX    int         // Number of lattice columns in X direction
	TilesZ    int         // Number of lattice columns in Z direction
}
