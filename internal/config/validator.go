package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

func validate(cfg *Config) error {
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported version %d", cfg.Version)
	}

	if cfg.Convert.Parallel < 0 {
		return fmt.Errorf("convert.parallel must be positive, got %d", cfg.Convert.Parallel)
	}

	if strings.ContainsAny(cfg.Convert.Extension, `/\`) {
		return fmt.Errorf("convert.extension must not contain path separators: %q", cfg.Convert.Extension)
	}

	if _, err := logrus.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	switch cfg.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", cfg.Log.Format)
	}

	return nil
}
