package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	defaultExtension = ".tsrg"
	defaultManifest  = ".mapconv-cache.yaml"
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
)

// Load reads and validates the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, nil
}

// LoadOrDefault behaves like Load but returns Default when path does not
// exist and was not asked for explicitly.
func LoadOrDefault(path string, explicit bool) (*Config, error) {
	cfg, err := Load(path)
	if err == nil {
		return cfg, nil
	}

	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}

	return nil, err
}

func applyDefaults(cfg *Config) {
	if cfg.Version == 0 {
		cfg.Version = 1
	}

	if strings.TrimSpace(cfg.Convert.Extension) == "" {
		cfg.Convert.Extension = defaultExtension
	}

	if !strings.HasPrefix(cfg.Convert.Extension, ".") {
		cfg.Convert.Extension = "." + cfg.Convert.Extension
	}

	if cfg.Convert.Parallel == 0 {
		cfg.Convert.Parallel = 1
	}

	if len(cfg.Convert.Include) == 0 {
		cfg.Convert.Include = []string{"*.txt"}
	}

	if strings.TrimSpace(cfg.Cache.Manifest) == "" {
		cfg.Cache.Manifest = defaultManifest
	}

	if strings.TrimSpace(cfg.Log.Level) == "" {
		cfg.Log.Level = defaultLogLevel
	}

	if strings.TrimSpace(cfg.Log.Format) == "" {
		cfg.Log.Format = defaultLogFormat
	}
}
