// Package config handles importer configuration loading and management.
package config

import "github.com/Faultbox/landforge/pkg/landscape"

// Config holds all importer settings.
type Config struct {
	Terrain TerrainConfig `yaml:"terrain"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// TerrainConfig holds grid sizing and scale settings.
type TerrainConfig struct {
	Blocks        int     `yaml:"blocks"`         // World blocks the terrain should cover
	BlockSize     float64 `yaml:"block_size"`     // Physical size of one block, in world units
	VerticalScale float64 `yaml:"vertical_scale"` // Fixed elevation scale
	AutoScale     bool    `yaml:"auto_scale"`     // Fit vertical scale to the sample range instead
	TargetHeight  float64 `yaml:"target_height"`  // Elevation span for auto_scale, in world units
}

// OutputConfig holds export destination settings.
type OutputConfig struct {
	Dir  string `yaml:"dir"`
	Name string `yaml:"name"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the reference scale constants.
func Default() *Config {
	return &Config{
		Terrain: TerrainConfig{
			Blocks:        1,
			BlockSize:     landscape.DefaultBlockSize,
			VerticalScale: landscape.DefaultVerticalScale,
			AutoScale:     false,
			TargetHeight:  2000,
		},
		Output: OutputConfig{
			Dir:  ".",
			Name: "landscape",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Options converts the terrain settings into pipeline options.
func (c *Config) Options() landscape.Options {
	return landscape.Options{
		BlockSize:     c.Terrain.BlockSize,
		VerticalScale: c.Terrain.VerticalScale,
		AutoScale:     c.Terrain.AutoScale,
		TargetHeight:  c.Terrain.TargetHeight,
	}
}
