package density

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/alitto/pond/v2"

	"github.com/Faultbox/isoterra/pkg/math"
)

// Generation errors.
var (
	ErrInvalidDimensions = errors.New("density: dimensions must be positive")
	ErrInvalidScale      = errors.New("density: noise scale must be positive")
	ErrInvalidOctaves    = errors.New("density: octaves must be at least 1")
)

// offsetRange bounds each seed offset component to [-offsetRange, offsetRange).
const offsetRange = 100000

// Params configures Generate.
type Params struct {
	SizeX, SizeY, SizeZ int

	Scale       float64 // Lattice units per noise unit at the first octave
	Seed        int64
	Octaves     int
	Lacunarity  float64 // Frequency multiplier per octave
	Persistence float64 // Amplitude multiplier per octave

	Workers int // Parallel x-slabs; <= 1 generates on the calling goroutine
}

// Validate reports the first invalid parameter.
func (p Params) Validate() error {
	if p.SizeX <= 0 || p.SizeY <= 0 || p.SizeZ <= 0 {
		return fmt.Errorf("%w: got %dx%dx%d", ErrInvalidDimensions, p.SizeX, p.SizeY, p.SizeZ)
	}
	if p.Scale <= 0 {
		return fmt.Errorf("%w: got %g", ErrInvalidScale, p.Scale)
	}
	if p.Octaves < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidOctaves, p.Octaves)
	}
	return nil
}

// SeedOffset derives the sampling offset for a seed. The same seed always
// yields the same offset. Only X and Z feed the noise.
func SeedOffset(seed int64) math.Vec3 {
	r := rand.New(rand.NewSource(seed))
	return math.Vec3{
		X: float32(r.Intn(2*offsetRange) - offsetRange),
		Y: float32(r.Intn(2*offsetRange) - offsetRange),
		Z: float32(r.Intn(2*offsetRange) - offsetRange),
	}
}

// Generate fills a field with layered noise biased downward by height:
//
//	d(x,y,z) = sum over octaves of amp * (noise(sx*freq, sz*freq) - y/SizeY)
//
// where sx = (x+offset.X)/Scale and sz = (z+offset.Z)/Scale. Dense ground sits
// at the bottom of the lattice and air at the top for any noise magnitude.
func Generate(p Params) (*Field, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	f := NewField(p.SizeX, p.SizeY, p.SizeZ)
	g := newSlabGenerator(p)

	if p.Workers <= 1 {
		for x := 0; x <= p.SizeX; x++ {
			g.fillSlab(f, x)
		}
		return f, nil
	}

	pool := pond.NewPool(p.Workers)
	for x := 0; x <= p.SizeX; x++ {
		pool.Submit(func() {
			g.fillSlab(f, x)
		})
	}
	pool.StopAndWait()

	return f, nil
}

// slabGenerator holds the per-octave constants shared by every slab.
type slabGenerator struct {
	p          Params
	offX, offZ float64
	amps       []float64
	freqs      []float64
}

func newSlabGenerator(p Params) *slabGenerator {
	off := SeedOffset(p.Seed)
	g := &slabGenerator{
		p:     p,
		offX:  float64(off.X),
		offZ:  float64(off.Z),
		amps:  make([]float64, p.Octaves),
		freqs: make([]float64, p.Octaves),
	}

	amp, freq := 1.0, 1.0
	for o := range p.Octaves {
		g.amps[o] = amp
		g.freqs[o] = freq
		amp *= p.Persistence
		freq *= p.Lacunarity
	}
	return g
}

// fillSlab writes every sample with the given x. Slabs never share samples,
// so they may be filled concurrently.
func (g *slabGenerator) fillSlab(f *Field, x int) {
	p := g.p
	layers := make([]float64, p.Octaves)
	sx := (float64(x) + g.offX) / p.Scale

	for z := 0; z <= p.SizeZ; z++ {
		sz := (float64(z) + g.offZ) / p.Scale
		for o := range layers {
			layers[o] = ValueNoise2D(sx*g.freqs[o], sz*g.freqs[o], p.Seed+int64(o)*131)
		}

		for y := 0; y <= p.SizeY; y++ {
			bias := float64(y) / float64(p.SizeY)
			var d float64
			for o, n := range layers {
				d += g.amps[o] * (n - bias)
			}
			f.Set(x, y, z, float32(d))
		}
	}
}
