// Package export writes generated worlds to files a host or a modeling tool
// can open: Wavefront OBJ for the mesh and PNG for the territory overlay.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/Faultbox/isoterra/internal/engine/terrain"
)

// CompressedExt selects zstd compression in SaveOBJ.
const CompressedExt = ".zst"

// WriteOBJ writes the mesh as Wavefront OBJ with positions, normals and
// texture coordinates. Every vertex is written, so face i references
// vertices 3i+1..3i+3 (OBJ indices are 1-based).
func WriteOBJ(w io.Writer, m *terrain.Mesh) error {
	bw := bufio.NewWriterSize(w, 64*1024)

	fmt.Fprintf(bw, "# isoterra mesh: %d vertices, %d triangles\n", len(m.Vertices), m.TriangleCount())
	fmt.Fprintf(bw, "o terrain\n")

	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "v %g %g %g\n", v.Position.X, v.Position.Y, v.Position.Z)
	}
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "vn %g %g %g\n", v.Normal.X, v.Normal.Y, v.Normal.Z)
	}
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "vt %g %g\n", v.TexCoord.X, v.TexCoord.Y)
	}

	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i]+1, m.Indices[i+1]+1, m.Indices[i+2]+1
		fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
	}

	return bw.Flush()
}

// SaveOBJ writes the mesh to path, creating parent directories. Paths ending
// in ".zst" are zstd-compressed.
func SaveOBJ(path string, m *terrain.Mesh) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	if !strings.HasSuffix(path, CompressedExt) {
		if err := WriteOBJ(f, m); err != nil {
			return fmt.Errorf("writing OBJ: %w", err)
		}
		return f.Close()
	}

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("creating zstd writer: %w", err)
	}
	if err := WriteOBJ(enc, m); err != nil {
		enc.Close()
		return fmt.Errorf("writing OBJ: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("closing zstd writer: %w", err)
	}
	return f.Close()
}
