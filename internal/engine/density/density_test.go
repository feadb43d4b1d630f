package density

import (
	"errors"
	"math"
	"testing"
)

func testParams() Params {
	return Params{
		SizeX:       12,
		SizeY:       8,
		SizeZ:       10,
		Scale:       6,
		Seed:        1337,
		Octaves:     4,
		Lacunarity:  2,
		Persistence: 0.5,
	}
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
		want   error
	}{
		{"valid", func(*Params) {}, nil},
		{"zero x", func(p *Params) { p.SizeX = 0 }, ErrInvalidDimensions},
		{"negative y", func(p *Params) { p.SizeY = -1 }, ErrInvalidDimensions},
		{"zero z", func(p *Params) { p.SizeZ = 0 }, ErrInvalidDimensions},
		{"zero scale", func(p *Params) { p.Scale = 0 }, ErrInvalidScale},
		{"no octaves", func(p *Params) { p.Octaves = 0 }, ErrInvalidOctaves},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testParams()
			tt.mutate(&p)

			_, err := Generate(p)
			if tt.want == nil {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := Generate(testParams())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	b, err := Generate(testParams())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if !a.Equal(b) {
		t.Error("expected identical fields for identical parameters")
	}
}

func TestGenerateWorkersMatchSequential(t *testing.T) {
	seq, err := Generate(testParams())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	p := testParams()
	p.Workers = 4
	par, err := Generate(p)
	if err != nil {
		t.Fatalf("Generate with workers failed: %v", err)
	}

	if !seq.Equal(par) {
		t.Error("expected worker pool output to match sequential output bit for bit")
	}
}

func TestGenerateSeedsDiffer(t *testing.T) {
	a, _ := Generate(testParams())

	p := testParams()
	p.Seed = 7
	b, _ := Generate(p)

	if a.Equal(b) {
		t.Error("expected different seeds to produce different fields")
	}
}

func TestGenerateVerticalBias(t *testing.T) {
	p := testParams()
	f, err := Generate(p)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for x := 0; x <= p.SizeX; x++ {
		for z := 0; z <= p.SizeZ; z++ {
			if d := f.At(x, 0, z); d < 0 {
				t.Fatalf("expected non-negative density at floor (%d,0,%d), got %f", x, z, d)
			}
			if d := f.At(x, p.SizeY, z); d > 0 {
				t.Fatalf("expected non-positive density at ceiling (%d,%d,%d), got %f", x, p.SizeY, z, d)
			}
			for y := 1; y <= p.SizeY; y++ {
				if f.At(x, y, z) >= f.At(x, y-1, z) {
					t.Fatalf("expected density to fall with height in column (%d,%d) at y=%d", x, z, y)
				}
			}
		}
	}
}

func TestSeedOffset(t *testing.T) {
	a := SeedOffset(42)
	b := SeedOffset(42)
	if a != b {
		t.Errorf("expected same offset for same seed, got %v and %v", a, b)
	}

	if c := SeedOffset(43); c == a {
		t.Errorf("expected different offsets for seeds 42 and 43, both %v", a)
	}

	for _, v := range []float32{a.X, a.Y, a.Z} {
		if v < -offsetRange || v >= offsetRange {
			t.Errorf("offset component %f outside [-%d, %d)", v, offsetRange, offsetRange)
		}
	}
}

func TestValueNoise2D(t *testing.T) {
	for i := 0; i < 200; i++ {
		x := float64(i)*0.37 - 20
		z := float64(i)*0.53 + 3
		n := ValueNoise2D(x, z, 9)
		if n < 0 || n > 1 {
			t.Fatalf("noise(%f,%f) = %f, want within [0,1]", x, z, n)
		}
	}

	// Lattice points return their hashed value exactly
	if got, want := ValueNoise2D(3, -5, 9), latticeValue(3, -5, 9); got != want {
		t.Errorf("noise at lattice point = %f, want %f", got, want)
	}

	// Continuity across a cell boundary
	left := ValueNoise2D(4-1e-9, 2.5, 9)
	right := ValueNoise2D(4, 2.5, 9)
	if math.Abs(left-right) > 1e-6 {
		t.Errorf("expected continuous noise across x=4, got %f vs %f", left, right)
	}
}

func TestFieldIndex(t *testing.T) {
	f := NewField(2, 3, 4)

	if f.Len() != 3*4*5 {
		t.Errorf("expected %d samples, got %d", 3*4*5, f.Len())
	}
	if f.Index(0, 0, 0) != 0 {
		t.Errorf("expected origin at offset 0, got %d", f.Index(0, 0, 0))
	}
	if got := f.Index(2, 3, 4); got != f.Len()-1 {
		t.Errorf("expected far corner at offset %d, got %d", f.Len()-1, got)
	}

	f.Set(1, 2, 3, 0.75)
	if f.At(1, 2, 3) != 0.75 {
		t.Errorf("expected 0.75 at (1,2,3), got %f", f.At(1, 2, 3))
	}

	lo, hi := f.MinMax()
	if lo != 0 || hi != 0.75 {
		t.Errorf("MinMax() = (%f, %f), want (0, 0.75)", lo, hi)
	}
}

func TestFieldIndexOutOfRangePanics(t *testing.T) {
	f := NewField(2, 2, 2)

	tests := [][3]int{{3, 0, 0}, {0, -1, 0}, {0, 0, 3}}
	for _, p := range tests {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic for sample %v", p)
				}
			}()
			f.At(p[0], p[1], p[2])
		}()
	}
}
