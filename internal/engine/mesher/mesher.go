// Package mesher extracts a triangulated isosurface from a density field
// using table-driven marching cubes.
package mesher

import (
	"github.com/Faultbox/isoterra/internal/engine/density"
	"github.com/Faultbox/isoterra/pkg/math"
)

// flatEpsilon is the smallest density difference treated as a real slope.
const flatEpsilon = 1e-6

// Soup is an unwelded triangle list: Indices holds one triple per triangle
// referencing Vertices. Cells never share vertices with their neighbors.
type Soup struct {
	Vertices []math.Vec3
	Indices  []uint32
}

// TriangleCount returns the number of triangles in the soup.
func (s *Soup) TriangleCount() int {
	return len(s.Indices) / 3
}

// Triangle returns the corner positions of triangle i.
func (s *Soup) Triangle(i int) (v0, v1, v2 math.Vec3) {
	return s.Vertices[s.Indices[i*3]], s.Vertices[s.Indices[i*3+1]], s.Vertices[s.Indices[i*3+2]]
}

// CubeIndex returns the configuration index for eight corner densities.
// Bit i is set when corner i lies below isoLevel.
func CubeIndex(corners [8]float32, isoLevel float32) uint8 {
	var idx uint8
	for i, d := range corners {
		if d < isoLevel {
			idx |= 1 << i
		}
	}
	return idx
}

// Interpolate returns the point on the segment p0-p1 where the density crosses
// isoLevel. The fraction is clamped to [0,1]; equal densities yield p0.
func Interpolate(p0, p1 math.Vec3, d0, d1, isoLevel float32) math.Vec3 {
	diff := d1 - d0
	if diff > -flatEpsilon && diff < flatEpsilon {
		return p0
	}
	t := (isoLevel - d0) / diff
	t = max(0, min(1, t))
	return p0.Lerp(p1, t)
}

// March polygonizes f at isoLevel. Cells are visited x-major, then y, then z,
// so identical inputs always produce identical output order. A field that never
// crosses isoLevel yields an empty soup.
func March(f *density.Field, isoLevel float32) *Soup {
	soup := &Soup{
		Vertices: []math.Vec3{},
		Indices:  []uint32{},
	}

	var (
		corners   [8]float32
		positions [8]math.Vec3
		edgeVerts [12]uint32
	)

	for x := 0; x < f.SizeX; x++ {
		for y := 0; y < f.SizeY; y++ {
			for z := 0; z < f.SizeZ; z++ {
				for i, o := range CornerOffsets {
					cx, cy, cz := x+o[0], y+o[1], z+o[2]
					corners[i] = f.At(cx, cy, cz)
					positions[i] = math.Vec3{X: float32(cx), Y: float32(cy), Z: float32(cz)}
				}

				cube := CubeIndex(corners, isoLevel)
				edges := EdgeTable[cube]
				if edges == 0 {
					continue
				}

				for e, pair := range EdgeCorners {
					if edges&(1<<e) == 0 {
						continue
					}
					a, b := pair[0], pair[1]
					edgeVerts[e] = uint32(len(soup.Vertices))
					soup.Vertices = append(soup.Vertices,
						Interpolate(positions[a], positions[b], corners[a], corners[b], isoLevel))
				}

				row := &TriTable[cube]
				for i := 0; row[i] != -1; i += 3 {
					soup.Indices = append(soup.Indices,
						edgeVerts[row[i]], edgeVerts[row[i+1]], edgeVerts[row[i+2]])
				}
			}
		}
	}

	return soup
}
