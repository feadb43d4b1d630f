// Package density builds the 3D scalar field the terrain surface is extracted from.
package density

import "fmt"

// Field is a lattice of density samples with SizeX+1, SizeY+1 and SizeZ+1
// points along each axis. Samples are stored x-major in a flat buffer.
type Field struct {
	SizeX, SizeY, SizeZ int
	values              []float32
}

// NewField allocates a zeroed field for the given cell counts.
func NewField(sizeX, sizeY, sizeZ int) *Field {
	return &Field{
		SizeX:  sizeX,
		SizeY:  sizeY,
		SizeZ:  sizeZ,
		values: make([]float32, (sizeX+1)*(sizeY+1)*(sizeZ+1)),
	}
}

// Index returns the flat buffer offset of lattice point (x, y, z).
// It panics when the point lies outside the lattice.
func (f *Field) Index(x, y, z int) int {
	if x < 0 || y < 0 || z < 0 || x > f.SizeX || y > f.SizeY || z > f.SizeZ {
		panic(fmt.Sprintf("density: sample (%d, %d, %d) outside %dx%dx%d lattice",
			x, y, z, f.SizeX, f.SizeY, f.SizeZ))
	}
	return (x*(f.SizeY+1)+y)*(f.SizeZ+1) + z
}

// At returns the density at lattice point (x, y, z).
func (f *Field) At(x, y, z int) float32 {
	return f.values[f.Index(x, y, z)]
}

// Set stores the density at lattice point (x, y, z).
func (f *Field) Set(x, y, z int, v float32) {
	f.values[f.Index(x, y, z)] = v
}

// Len returns the number of lattice samples.
func (f *Field) Len() int {
	return len(f.values)
}

// MinMax returns the smallest and largest sample.
func (f *Field) MinMax() (lo, hi float32) {
	if len(f.values) == 0 {
		return 0, 0
	}
	lo, hi = f.values[0], f.values[0]
	for _, v := range f.values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}

// Equal reports whether two fields have the same shape and bit-identical samples.
func (f *Field) Equal(other *Field) bool {
	if f.SizeX != other.SizeX || f.SizeY != other.SizeY || f.SizeZ != other.SizeZ {
		return false
	}
	for i, v := range f.values {
		if v != other.values[i] {
			return false
		}
	}
	return true
}
