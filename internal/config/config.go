// Package config loads mapconv settings from a TOML file.
package config

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = "mapconv.toml"

// Config is the root of mapconv.toml.
type Config struct {
	Version int           `toml:"version"`
	Convert ConvertConfig `toml:"convert"`
	Cache   CacheConfig   `toml:"cache"`
	Log     LogConfig     `toml:"log"`
}

// ConvertConfig controls discovery and output placement.
type ConvertConfig struct {
	OutputDir string   `toml:"output_dir"`
	Extension string   `toml:"extension"`
	Parallel  int      `toml:"parallel"`
	Include   []string `toml:"include"`
	Exclude   []string `toml:"exclude"`
	Force     bool     `toml:"force"`
}

// CacheConfig controls the fingerprint manifest.
type CacheConfig struct {
	Disabled bool   `toml:"disabled"`
	Manifest string `toml:"manifest"`
}

// LogConfig controls logrus output.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)

	return cfg
}
