package export

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
)

// ErrInvalidScale is returned for a non-positive upscaling factor.
var ErrInvalidScale = errors.New("export: scale must be positive")

// Upscale enlarges img by an integer factor with nearest-neighbor sampling,
// so each texel becomes a solid scale x scale block.
func Upscale(img image.Image, scale int) (*image.NRGBA, error) {
	if scale < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidScale, scale)
	}

	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst, nil
}

// SavePNG upscales img and writes it to path, creating parent directories.
func SavePNG(path string, img image.Image, scale int) error {
	out, err := Upscale(img, scale)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, out); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return file.Close()
}
