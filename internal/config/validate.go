package config

import (
	"errors"
	"fmt"
)

// Configuration errors.
var (
	ErrInvalidDimensions = errors.New("world dimensions must be positive")
	ErrInvalidNoise      = errors.New("invalid noise parameters")
	ErrEmptyPalette      = errors.New("territory color table is empty")
	ErrInvalidClaim      = errors.New("invalid scripted claim")
	ErrInvalidOutput     = errors.New("invalid output settings")
)

// Validate checks that the configuration can build a world.
func (c *Config) Validate() error {
	w := c.World
	if w.SizeX <= 0 || w.SizeY <= 0 || w.SizeZ <= 0 {
		return fmt.Errorf("%w: got %dx%dx%d", ErrInvalidDimensions, w.SizeX, w.SizeY, w.SizeZ)
	}

	n := c.Noise
	switch {
	case n.Scale <= 0:
		return fmt.Errorf("%w: scale must be positive, got %g", ErrInvalidNoise, n.Scale)
	case n.Octaves < 1:
		return fmt.Errorf("%w: octaves must be at least 1, got %d", ErrInvalidNoise, n.Octaves)
	case n.Lacunarity <= 0:
		return fmt.Errorf("%w: lacunarity must be positive, got %g", ErrInvalidNoise, n.Lacunarity)
	case n.Persistence <= 0:
		return fmt.Errorf("%w: persistence must be positive, got %g", ErrInvalidNoise, n.Persistence)
	}

	if len(c.Territory.Colors) == 0 {
		return ErrEmptyPalette
	}

	for i, claim := range c.Territory.Claims {
		if claim.Owner < 0 {
			return fmt.Errorf("%w %d: owner must be non-negative, got %d", ErrInvalidClaim, i, claim.Owner)
		}
		if len(claim.Polygon) < 3 {
			return fmt.Errorf("%w %d: polygon needs at least 3 points, got %d", ErrInvalidClaim, i, len(claim.Polygon))
		}
	}

	if c.Output.TerritoryScale < 1 {
		return fmt.Errorf("%w: territory_scale must be at least 1, got %d", ErrInvalidOutput, c.Output.TerritoryScale)
	}

	return nil
}
