// Package territory tracks which owner holds each horizontal lattice column and
// renders that ownership as an overlay image.
package territory

import (
	"errors"
	"fmt"
	"image"
	"math"
	"sync"

	pmath "github.com/Faultbox/isoterra/pkg/math"
)

// Unclaimed marks a column no owner holds.
const Unclaimed = -1

// Territory errors.
var (
	ErrInvalidDimensions = errors.New("territory: dimensions must be positive")
	ErrEmptyPalette      = errors.New("territory: palette is empty")
	ErrInvalidOwner      = errors.New("territory: invalid owner")
)

// Grid is the ownership map for a lattice with SizeX by SizeZ cells, holding
// one entry per column: (SizeX+1) by (SizeZ+1). It is safe for concurrent use;
// claims are serialized.
type Grid struct {
	mu      sync.RWMutex
	width   int
	depth   int
	cells   []int32 // z-major: cells[z*width+x]
	palette Palette
	image   *image.NRGBA
}

// New creates a grid with every column unclaimed.
func New(sizeX, sizeZ int, palette Palette) (*Grid, error) {
	if sizeX <= 0 || sizeZ <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, sizeX, sizeZ)
	}
	if len(palette) == 0 {
		return nil, ErrEmptyPalette
	}

	g := &Grid{
		width:   sizeX + 1,
		depth:   sizeZ + 1,
		palette: append(Palette(nil), palette...),
	}
	g.cells = make([]int32, g.width*g.depth)
	for i := range g.cells {
		g.cells[i] = Unclaimed
	}
	g.image = g.render()

	return g, nil
}

// Size returns the number of columns along X and Z.
func (g *Grid) Size() (width, depth int) {
	return g.width, g.depth
}

// Claim assigns owner to every column whose center (x+0.5, z+0.5) lies inside
// poly, replacing any previous owner, and refreshes the overlay image. It
// returns the number of columns inside the polygon.
//
// Owners beyond the palette are recorded and render transparent. Polygons with
// fewer than three points contain no columns.
func (g *Grid) Claim(poly Polygon, owner int) (int, error) {
	if owner < 0 || owner > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidOwner, owner)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	claimed := 0
	for z := 0; z < g.depth; z++ {
		for x := 0; x < g.width; x++ {
			center := pmath.Vec2{X: float32(x) + 0.5, Y: float32(z) + 0.5}
			if poly.Contains(center) {
				g.cells[z*g.width+x] = int32(owner)
				claimed++
			}
		}
	}

	g.image = g.render()
	return claimed, nil
}

// OwnerAt returns the owner of column (x, z). The second result is false when
// the column lies outside the grid.
func (g *Grid) OwnerAt(x, z int) (int, bool) {
	if x < 0 || z < 0 || x >= g.width || z >= g.depth {
		return Unclaimed, false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	return int(g.cells[z*g.width+x]), true
}

// Counts returns the number of columns held by each owner. Unclaimed columns
// are not counted.
func (g *Grid) Counts() map[int]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	counts := make(map[int]int)
	for _, owner := range g.cells {
		if owner != Unclaimed {
			counts[int(owner)]++
		}
	}
	return counts
}

// Render rebuilds the overlay from scratch and returns a copy of it.
// Texel (x, z) holds the color of column (x, z).
func (g *Grid) Render() *image.NRGBA {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.image = g.render()
	return cloneNRGBA(g.image)
}

// Image returns a copy of the overlay produced by the latest claim or render.
func (g *Grid) Image() *image.NRGBA {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return cloneNRGBA(g.image)
}

// render must be called with g.mu held for writing, or before g is shared.
func (g *Grid) render() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.width, g.depth))
	for z := 0; z < g.depth; z++ {
		row := z * img.Stride
		for x := 0; x < g.width; x++ {
			c := g.palette.Color(int(g.cells[z*g.width+x]))
			i := row + x*4
			img.Pix[i] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = c.A
		}
	}
	return img
}

func cloneNRGBA(src *image.NRGBA) *image.NRGBA {
	dst := image.NewNRGBA(src.Rect)
	copy(dst.Pix, src.Pix)
	return dst
}
