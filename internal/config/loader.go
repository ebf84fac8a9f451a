package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"algotest/pkg/logging"
)

const subsystem = "Config"

// ConfigFileName is the file Load looks for when no path is given.
const ConfigFileName = "algotest.yaml"

// Load reads configuration from path, falling back to defaults when the
// file does not exist. Values present in the file override the defaults
// field by field; absent values keep them.
func Load(path string) (Config, error) {
	if path == "" {
		path = ConfigFileName
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Info(subsystem, "no %s found, using defaults", path)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read config from %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config from %s: %w", path, err)
	}

	logging.Info(subsystem, "loaded configuration from %s", path)
	return cfg, nil
}
