package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Load reads the server configuration from a YAML file and environment
// variables, then validates it.
// Priority: ENV > YAML > defaults (via env-default tags).
// The YAML file path is taken from CONFIG_PATH (fallback "./config.yaml").
func Load() (*Config, error) {
	var cfg Config

	if err := Read(&cfg, "CONFIG_PATH", "./config.yaml"); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// Read fills dst (a pointer to a struct with yaml/env tags) from the file
// named by the pathEnv variable, falling back to fallback. When the path
// came from the environment the file must exist; a missing fallback file
// means ENV + defaults only. An empty fallback skips the file lookup.
func Read(dst any, pathEnv, fallback string) error {
	path := os.Getenv(pathEnv)
	explicitPath := path != ""
	if !explicitPath {
		path = fallback
	}

	if path != "" {
		_, statErr := os.Stat(path)
		switch {
		case statErr == nil:
			if err := cleanenv.ReadConfig(path, dst); err != nil {
				return fmt.Errorf("config: read %s: %w", path, err)
			}
			return nil
		case explicitPath:
			return fmt.Errorf("config: file %s: %w", path, statErr)
		}
	}

	if err := cleanenv.ReadEnv(dst); err != nil {
		return fmt.Errorf("config: read env: %w", err)
	}
	return nil
}
