// Package main is the entry point for the isoterra world generator.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/isoterra/internal/config"
	"github.com/Faultbox/isoterra/internal/export"
	"github.com/Faultbox/isoterra/internal/logger"
	"github.com/Faultbox/isoterra/internal/world"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== isoterra ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	w, err := world.New(cfg)
	if err != nil {
		logger.Error("failed to build world", zap.Error(err))
		os.Exit(1)
	}

	if err := w.ApplyClaims(cfg.Territory.Claims); err != nil {
		logger.Error("failed to apply claims", zap.Error(err))
		os.Exit(1)
	}

	meshPath := filepath.Join(cfg.Output.Dir, cfg.Output.MeshFile)
	if err := export.SaveOBJ(meshPath, w.Mesh()); err != nil {
		logger.Error("failed to export mesh", zap.String("path", meshPath), zap.Error(err))
		os.Exit(1)
	}

	imgPath := filepath.Join(cfg.Output.Dir, cfg.Output.TerritoryFile)
	if err := export.SavePNG(imgPath, w.TerritoryImage(), cfg.Output.TerritoryScale); err != nil {
		logger.Error("failed to export territory", zap.String("path", imgPath), zap.Error(err))
		os.Exit(1)
	}

	stats := w.Stats()
	logger.Info("world exported",
		zap.String("mesh", meshPath),
		zap.String("territory", imgPath),
		zap.Int("triangles", stats.Triangles),
		zap.Any("owners", w.Territory().Counts()),
		zap.Duration("generate", stats.GenerateTime),
		zap.Duration("mesh_build", stats.MeshTime))
}
