package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load reads the configuration at path, applies defaults and environment
// overrides, and validates the result. An empty path yields the defaults
// plus environment overrides.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if err := decodeFile(path, &cfg); err != nil {
			return nil, err
		}
	}

	ApplyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

func decodeFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse configuration file %q: %w", path, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return fmt.Errorf("failed to parse configuration file %q: %w", path, err)
		}
	default:
		return fmt.Errorf("unsupported configuration format %q (expected .yaml, .yml or .toml)", filepath.Ext(path))
	}
	return nil
}

// applyEnvOverrides reads TUTOR_SECTION_FIELD variables. Values that do not
// parse are ignored.
func applyEnvOverrides(cfg *Config) {
	if val := os.Getenv("TUTOR_LOG_VERBOSITY"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Log.Verbosity = i
		}
	}
	if val := os.Getenv("TUTOR_LOG_FILE"); val != "" {
		cfg.Log.File = val
	}
	if val := os.Getenv("TUTOR_WATCH_DEBOUNCE"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Watch.Debounce = d
		}
	}
	if val := os.Getenv("TUTOR_WATCH_METRICS_ADDRESS"); val != "" {
		cfg.Watch.MetricsAddress = val
	}
}
