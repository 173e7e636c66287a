package client

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/heartmarshall/traveleats-backend/internal/config"
)

// Config holds terminal client settings.
type Config struct {
	APIURL      string        `yaml:"api_url"      env:"TRAVELEATS_API_URL"      env-default:"http://localhost:8080"`
	SessionFile string        `yaml:"session_file" env:"TRAVELEATS_SESSION_FILE"`
	Timeout     time.Duration `yaml:"timeout"      env:"TRAVELEATS_TIMEOUT"      env-default:"10s"`
	LogLevel    string        `yaml:"log_level"    env:"TRAVELEATS_LOG_LEVEL"    env-default:"warn"`
}

// LoadConfig reads the client configuration from the environment, or from
// the YAML file named by TRAVELEATS_CONFIG. An unset session file defaults
// to traveleats/session.json under the user config directory.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := config.Read(&cfg, "TRAVELEATS_CONFIG", ""); err != nil {
		return nil, err
	}

	if cfg.SessionFile == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("client config: session file: %w", err)
		}
		cfg.SessionFile = filepath.Join(dir, "traveleats", "session.json")
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("client config: timeout must be > 0 (got %v)", cfg.Timeout)
	}

	return &cfg, nil
}
