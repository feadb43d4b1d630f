package terrain

import (
	"github.com/Faultbox/isoterra/internal/engine/density"
)

// BuildHeightmap finds, for every lattice column, the height of the topmost
// point where the density rises through isoLevel. Columns that are solid all
// the way up report SizeY; columns with no ground report 0.
func BuildHeightmap(f *density.Field, isoLevel float32) *Heightmap {
	tilesX := f.SizeX + 1
	tilesZ := f.SizeZ + 1

	altitudes := make([][]float32, tilesX)
	for x := range tilesX {
		altitudes[x] = make([]float32, tilesZ)
		for z := range tilesZ {
			altitudes[x][z] = columnHeight(f, x, z, isoLevel)
		}
	}

	return &Heightmap{
		Altitudes: altitudes,
		TilesX:    tilesX,
		TilesZ:    tilesZ,
	}
}

func columnHeight(f *density.Field, x, z int, isoLevel float32) float32 {
	if f.At(x, f.SizeY, z) >= isoLevel {
		return float32(f.SizeY)
	}

	// Walk down from the top until we leave the air
	for y := f.SizeY - 1; y >= 0; y-- {
		below := f.At(x, y, z)
		if below < isoLevel {
			continue
		}
		above := f.At(x, y+1, z)
		t := float32(0)
		if diff := above - below; diff != 0 {
			t = clampf((isoLevel-below)/diff, 0, 1)
		}
		return float32(y) + t
	}
	return 0
}

// GetInterpolatedHeight returns the ground height at a world position using
// bilinear interpolation between the four surrounding columns. Positions
// outside the lattice are clamped to its edge.
func GetInterpolatedHeight(hm *Heightmap, worldX, worldZ float32) float32 {
	if hm == nil || hm.TilesX < 2 || hm.TilesZ < 2 {
		return 0
	}

	cellX := int(worldX)
	cellZ := int(worldZ)

	if cellX < 0 {
		cellX = 0
	}
	if cellZ < 0 {
		cellZ = 0
	}
	if cellX > hm.TilesX-2 {
		cellX = hm.TilesX - 2
	}
	if cellZ > hm.TilesZ-2 {
		cellZ = hm.TilesZ - 2
	}

	fracX := clampf(worldX-float32(cellX), 0, 1)
	fracZ := clampf(worldZ-float32(cellZ), 0, 1)

	h00 := hm.Altitudes[cellX][cellZ]
	h10 := hm.Altitudes[cellX+1][cellZ]
	h01 := hm.Altitudes[cellX][cellZ+1]
	h11 := hm.Altitudes[cellX+1][cellZ+1]

	// Lerp along X on both Z edges, then along Z
	south := h00*(1-fracX) + h10*fracX
	north := h01*(1-fracX) + h11*fracX
	return south*(1-fracZ) + north*fracZ
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
