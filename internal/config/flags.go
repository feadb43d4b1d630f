package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagSeed    = flag.Int64("seed", 0, "Noise seed (0 keeps the configured seed)")
	flagIso     = flag.Float64("iso", 0, "Iso level override (0 keeps the configured level)")
	flagWorkers = flag.Int("workers", 0, "Density generation workers")
	flagSize    = flag.Int("size", 0, "Horizontal grid size, applied to both X and Z")
	flagOut     = flag.String("out", "", "Output directory")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSeed != 0 {
		cfg.Noise.Seed = *flagSeed
	}
	if *flagIso != 0 {
		cfg.World.IsoLevel = float32(*flagIso)
	}
	if *flagWorkers > 0 {
		cfg.World.Workers = *flagWorkers
	}
	if *flagSize > 0 {
		cfg.World.SizeX = *flagSize
		cfg.World.SizeZ = *flagSize
	}
	if *flagOut != "" {
		cfg.Output.Dir = *flagOut
	}
}
