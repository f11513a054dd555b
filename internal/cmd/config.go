package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Jerok0/riot/report"
)

// Config holds harness defaults loaded from a riot.yml file. Flags
// override it.
type Config struct {
	Reporter string `yaml:"reporter"`
	Plain    bool   `yaml:"plain"`
}

// LoadConfig reads and parses a riot.yml configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Reporter != "" {
		if _, err := report.ParseKind(cfg.Reporter); err != nil {
			return nil, fmt.Errorf("bad config file %q: %w", path, err)
		}
	}
	return &cfg, nil
}
