package territory

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ErrInvalidColor is returned for palette entries that are not hex colors.
var ErrInvalidColor = errors.New("territory: invalid color")

// Palette maps owner ids to overlay colors. Owner i uses Palette[i].
type Palette []color.NRGBA

// Color returns the overlay color for owner, or fully transparent when the
// owner has no entry (including Unclaimed).
func (p Palette) Color(owner int) color.NRGBA {
	if owner < 0 || owner >= len(p) {
		return color.NRGBA{}
	}
	return p[owner]
}

// ParsePalette parses "#RRGGBB" or "#RRGGBBAA" strings. The leading '#' is optional.
func ParsePalette(hex []string) (Palette, error) {
	p := make(Palette, 0, len(hex))
	for i, s := range hex {
		c, err := ParseHexColor(s)
		if err != nil {
			return nil, fmt.Errorf("palette entry %d: %w", i, err)
		}
		p = append(p, c)
	}
	return p, nil
}

// ParseHexColor parses a single "#RRGGBB" or "#RRGGBBAA" color.
// Six-digit colors are fully opaque.
func ParseHexColor(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return color.NRGBA{}, fmt.Errorf("%w %q: expected 6 or 8 hex digits", ErrInvalidColor, s)
	}

	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w %q: %v", ErrInvalidColor, s, err)
	}
	if len(h) == 6 {
		v = v<<8 | 0xFF
	}

	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
