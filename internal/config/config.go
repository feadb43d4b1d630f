// Package config handles world configuration loading and management.
package config

// Config holds all generation and territory settings.
type Config struct {
	World     WorldConfig     `yaml:"world"`
	Noise     NoiseConfig     `yaml:"noise"`
	Territory TerritoryConfig `yaml:"territory"`
	Output    OutputConfig    `yaml:"output"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// WorldConfig holds the lattice extent and surface threshold.
type WorldConfig struct {
	SizeX    int     `yaml:"size_x"`
	SizeY    int     `yaml:"size_y"`
	SizeZ    int     `yaml:"size_z"`
	IsoLevel float32 `yaml:"iso_level"`
	Workers  int     `yaml:"workers"` // Density generation workers; <= 1 runs inline
}

// NoiseConfig holds fractal noise parameters.
type NoiseConfig struct {
	Scale       float64 `yaml:"scale"`
	Seed        int64   `yaml:"seed"`
	Octaves     int     `yaml:"octaves"`
	Lacunarity  float64 `yaml:"lacunarity"`
	Persistence float64 `yaml:"persistence"`
}

// TerritoryConfig holds the owner palette and any claims applied at startup.
type TerritoryConfig struct {
	Colors []string      `yaml:"colors"` // Owner index -> "#RRGGBB" or "#RRGGBBAA"
	Claims []ClaimConfig `yaml:"claims"`
}

// ClaimConfig is a scripted claim: an owner and a polygon in the (x, z) plane.
type ClaimConfig struct {
	Owner   int          `yaml:"owner"`
	Polygon [][2]float32 `yaml:"polygon"`
}

// OutputConfig holds export paths for the CLI.
type OutputConfig struct {
	Dir            string `yaml:"dir"`
	MeshFile       string `yaml:"mesh_file"`
	TerritoryFile  string `yaml:"territory_file"`
	TerritoryScale int    `yaml:"territory_scale"` // Texel upscaling factor for the PNG
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		World: WorldConfig{
			SizeX:    64,
			SizeY:    32,
			SizeZ:    64,
			IsoLevel: 0,
			Workers:  4,
		},
		Noise: NoiseConfig{
			Scale:       24,
			Seed:        1337,
			Octaves:     4,
			Lacunarity:  2,
			Persistence: 0.5,
		},
		Territory: TerritoryConfig{
			Colors: []string{
				"#e6194bc0", // red
				"#3cb44bc0", // green
				"#4363d8c0", // blue
				"#ffe119c0", // yellow
			},
		},
		Output: OutputConfig{
			Dir:            "out",
			MeshFile:       "terrain.obj",
			TerritoryFile:  "territory.png",
			TerritoryScale: 8,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
