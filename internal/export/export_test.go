package export

import (
	"bufio"
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"

	"github.com/Faultbox/isoterra/internal/engine/mesher"
	"github.com/Faultbox/isoterra/internal/engine/terrain"
	"github.com/Faultbox/isoterra/pkg/math"
)

func testMesh() *terrain.Mesh {
	soup := &mesher.Soup{
		Vertices: []math.Vec3{
			{X: 0, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 2}, {X: 2, Y: 1, Z: 0},
			{X: 2, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 2}, {X: 2, Y: 1.5, Z: 2},
		},
		Indices: []uint32{0, 1, 2, 3, 4, 5},
	}
	return terrain.BuildMesh(soup, 2, 2)
}

func countPrefixes(t *testing.T, data []byte) map[string]int {
	t.Helper()
	counts := make(map[string]int)
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) > 0 {
			counts[fields[0]]++
		}
	}
	if err := sc.Err(); err != nil {
		t.Fatalf("scanning OBJ: %v", err)
	}
	return counts
}

func TestWriteOBJ(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOBJ(&buf, testMesh()); err != nil {
		t.Fatalf("WriteOBJ failed: %v", err)
	}

	counts := countPrefixes(t, buf.Bytes())
	tests := []struct {
		prefix string
		want   int
	}{
		{"v", 6},
		{"vn", 6},
		{"vt", 6},
		{"f", 2},
		{"o", 1},
	}
	for _, tt := range tests {
		if counts[tt.prefix] != tt.want {
			t.Errorf("expected %d %q lines, got %d", tt.want, tt.prefix, counts[tt.prefix])
		}
	}

	out := buf.String()
	if !strings.Contains(out, "f 1/1/1 2/2/2 3/3/3\n") {
		t.Error("expected first face to reference vertices 1..3")
	}
	if !strings.Contains(out, "f 4/4/4 5/5/5 6/6/6\n") {
		t.Error("expected second face to reference vertices 4..6")
	}
	if !strings.Contains(out, "vn 0 1 0\n") {
		t.Error("expected an upward normal for the flat triangle")
	}
	if !strings.Contains(out, "vt 1 0\n") {
		t.Error("expected texture coordinate (x/sizeX, z/sizeZ) for vertex (2, 1, 0)")
	}
}

func TestWriteOBJEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOBJ(&buf, &terrain.Mesh{}); err != nil {
		t.Fatalf("WriteOBJ failed: %v", err)
	}
	counts := countPrefixes(t, buf.Bytes())
	if counts["v"] != 0 || counts["f"] != 0 {
		t.Errorf("expected no geometry for an empty mesh, got %v", counts)
	}
}

func TestSaveOBJ(t *testing.T) {
	m := testMesh()
	var want bytes.Buffer
	if err := WriteOBJ(&want, m); err != nil {
		t.Fatalf("WriteOBJ failed: %v", err)
	}

	dir := t.TempDir()

	t.Run("plain", func(t *testing.T) {
		path := filepath.Join(dir, "nested", "terrain.obj")
		if err := SaveOBJ(path, m); err != nil {
			t.Fatalf("SaveOBJ failed: %v", err)
		}
		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading OBJ: %v", err)
		}
		if !bytes.Equal(got, want.Bytes()) {
			t.Error("expected saved file to match WriteOBJ output")
		}
	})

	t.Run("zstd", func(t *testing.T) {
		path := filepath.Join(dir, "terrain.obj"+CompressedExt)
		if err := SaveOBJ(path, m); err != nil {
			t.Fatalf("SaveOBJ failed: %v", err)
		}

		f, err := os.Open(path)
		if err != nil {
			t.Fatalf("opening OBJ: %v", err)
		}
		defer f.Close()

		dec, err := zstd.NewReader(f)
		if err != nil {
			t.Fatalf("creating zstd reader: %v", err)
		}
		defer dec.Close()

		var got bytes.Buffer
		if _, err := got.ReadFrom(dec); err != nil {
			t.Fatalf("decompressing OBJ: %v", err)
		}
		if !bytes.Equal(got.Bytes(), want.Bytes()) {
			t.Error("expected decompressed file to match WriteOBJ output")
		}
	})
}

func checker() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 255})
	img.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 255})
	// (1, 1) stays transparent
	return img
}

func TestUpscale(t *testing.T) {
	src := checker()
	dst, err := Upscale(src, 3)
	if err != nil {
		t.Fatalf("Upscale failed: %v", err)
	}

	if dst.Bounds().Dx() != 6 || dst.Bounds().Dy() != 6 {
		t.Fatalf("expected 6x6 image, got %v", dst.Bounds())
	}

	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			want := src.NRGBAAt(x/3, y/3)
			if got := dst.NRGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d): expected %v, got %v", x, y, want, got)
			}
		}
	}
}

func TestUpscaleInvalidScale(t *testing.T) {
	for _, scale := range []int{0, -2} {
		if _, err := Upscale(checker(), scale); !errors.Is(err, ErrInvalidScale) {
			t.Errorf("scale %d: expected ErrInvalidScale, got %v", scale, err)
		}
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "territory.png")
	src := checker()

	if err := SavePNG(path, src, 4); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening PNG: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding PNG: %v", err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 8 {
		t.Fatalf("expected 8x8 image, got %v", img.Bounds())
	}

	tests := []struct {
		x, y int
		want color.NRGBA
	}{
		{0, 0, color.NRGBA{R: 255, A: 255}},
		{7, 0, color.NRGBA{G: 255, A: 255}},
		{3, 4, color.NRGBA{B: 255, A: 255}},
		{6, 6, color.NRGBA{}},
	}
	for _, tt := range tests {
		got := color.NRGBAModel.Convert(img.At(tt.x, tt.y)).(color.NRGBA)
		if got != tt.want {
			t.Errorf("pixel (%d,%d): expected %v, got %v", tt.x, tt.y, tt.want, got)
		}
	}

	if err := SavePNG(path, src, 0); !errors.Is(err, ErrInvalidScale) {
		t.Errorf("expected ErrInvalidScale, got %v", err)
	}
}
