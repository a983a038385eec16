package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultConfigName is picked up from the working directory when no
// explicit config path is given.
const defaultConfigName = ".baselint.yml"

type config struct {
	Baseline string `yaml:"baseline"`
	Format   string `yaml:"format"`
}

// resolveConfig loads the config at path. With an empty path the default
// file is used when present; its absence is not an error.
func resolveConfig(path string) (config, error) {
	if path == "" {
		if _, err := os.Stat(defaultConfigName); err != nil {
			return config{}, nil
		}
		path = defaultConfigName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
