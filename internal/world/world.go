// Package world wires generation, meshing and territory into one generated world.
package world

import (
	"fmt"
	"image"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/isoterra/internal/config"
	"github.com/Faultbox/isoterra/internal/engine/density"
	"github.com/Faultbox/isoterra/internal/engine/mesher"
	"github.com/Faultbox/isoterra/internal/engine/picking"
	"github.com/Faultbox/isoterra/internal/engine/terrain"
	"github.com/Faultbox/isoterra/internal/engine/territory"
	"github.com/Faultbox/isoterra/internal/logger"
	"github.com/Faultbox/isoterra/pkg/math"
)

// Stats summarizes a build.
type Stats struct {
	Samples      int
	DensityMin   float32
	DensityMax   float32
	Triangles    int
	GenerateTime time.Duration
	MeshTime     time.Duration
}

// World is a generated terrain plus the ownership grid laid over it.
// The field and mesh are immutable once New returns; the territory accepts
// claims for the lifetime of the world.
type World struct {
	field     *density.Field
	mesh      *terrain.Mesh
	heightmap *terrain.Heightmap
	territory *territory.Grid
	isoLevel  float32
	stats     Stats
	log       *zap.Logger
}

// New generates the density field, extracts and flat-shades the surface,
// and creates an empty territory grid over the same horizontal extent.
// Scripted claims in cfg are not applied; see ApplyClaims.
func New(cfg *config.Config) (*World, error) {
	log := logger.Named("world")

	palette, err := territory.ParsePalette(cfg.Territory.Colors)
	if err != nil {
		return nil, fmt.Errorf("territory palette: %w", err)
	}

	params := density.Params{
		SizeX:       cfg.World.SizeX,
		SizeY:       cfg.World.SizeY,
		SizeZ:       cfg.World.SizeZ,
		Scale:       cfg.Noise.Scale,
		Seed:        cfg.Noise.Seed,
		Octaves:     cfg.Noise.Octaves,
		Lacunarity:  cfg.Noise.Lacunarity,
		Persistence: cfg.Noise.Persistence,
		Workers:     cfg.World.Workers,
	}

	start := time.Now()
	field, err := density.Generate(params)
	if err != nil {
		return nil, fmt.Errorf("generating density: %w", err)
	}
	genTime := time.Since(start)

	lo, hi := field.MinMax()
	log.Info("density generated",
		zap.Int("samples", field.Len()),
		zap.Int64("seed", params.Seed),
		zap.Float32("min", lo),
		zap.Float32("max", hi),
		zap.Duration("elapsed", genTime))

	start = time.Now()
	soup := mesher.March(field, cfg.World.IsoLevel)
	mesh := terrain.BuildMesh(soup, params.SizeX, params.SizeZ)
	meshTime := time.Since(start)

	log.Info("surface extracted",
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Float32("iso", cfg.World.IsoLevel),
		zap.Duration("elapsed", meshTime))
	if mesh.TriangleCount() == 0 {
		log.Warn("iso level does not cross the field; mesh is empty",
			zap.Float32("min", lo),
			zap.Float32("max", hi))
	}

	grid, err := territory.New(params.SizeX, params.SizeZ, palette)
	if err != nil {
		return nil, fmt.Errorf("creating territory: %w", err)
	}

	return &World{
		field:     field,
		mesh:      mesh,
		heightmap: terrain.BuildHeightmap(field, cfg.World.IsoLevel),
		territory: grid,
		isoLevel:  cfg.World.IsoLevel,
		stats: Stats{
			Samples:      field.Len(),
			DensityMin:   lo,
			DensityMax:   hi,
			Triangles:    mesh.TriangleCount(),
			GenerateTime: genTime,
			MeshTime:     meshTime,
		},
		log: log,
	}, nil
}

// Claim hands the polygon to the territory grid. It is the entry point for
// input collaborators and is safe to call from multiple goroutines.
func (w *World) Claim(poly territory.Polygon, owner int) (int, error) {
	n, err := w.territory.Claim(poly, owner)
	if err != nil {
		w.log.Warn("claim rejected", zap.Int("owner", owner), zap.Error(err))
		return 0, err
	}
	w.log.Debug("claim applied",
		zap.Int("owner", owner),
		zap.Int("points", len(poly)),
		zap.Int("columns", n))
	return n, nil
}

// ApplyClaims runs scripted claims in order. It stops at the first failure.
func (w *World) ApplyClaims(claims []config.ClaimConfig) error {
	for i, c := range claims {
		if _, err := w.Claim(PolygonFromPoints(c.Polygon), c.Owner); err != nil {
			return fmt.Errorf("claim %d: %w", i, err)
		}
	}
	if len(claims) > 0 {
		w.log.Info("scripted claims applied", zap.Int("count", len(claims)))
	}
	return nil
}

// PolygonFromPoints converts config [x, z] pairs to a polygon.
func PolygonFromPoints(points [][2]float32) territory.Polygon {
	poly := make(territory.Polygon, len(points))
	for i, p := range points {
		poly[i] = math.Vec2{X: p[0], Y: p[1]}
	}
	return poly
}

// Mesh returns the flat-shaded render mesh. Callers must not modify it.
func (w *World) Mesh() *terrain.Mesh {
	return w.mesh
}

// TerritoryImage returns a copy of the current ownership overlay.
func (w *World) TerritoryImage() *image.NRGBA {
	return w.territory.Image()
}

// Territory returns the ownership grid.
func (w *World) Territory() *territory.Grid {
	return w.territory
}

// Field returns the density field the mesh was extracted from.
func (w *World) Field() *density.Field {
	return w.field
}

// SurfaceHeight returns the interpolated ground height at (x, z).
func (w *World) SurfaceHeight(x, z float32) float32 {
	return terrain.GetInterpolatedHeight(w.heightmap, x, z)
}

// Pick returns the closest point where r meets the terrain surface.
func (w *World) Pick(r picking.Ray) (picking.Hit, bool) {
	return picking.IntersectMesh(r, w.mesh)
}

// IsoLevel returns the surface threshold the mesh was built with.
func (w *World) IsoLevel() float32 {
	return w.isoLevel
}

// Stats returns build statistics.
func (w *World) Stats() Stats {
	return w.stats
}
