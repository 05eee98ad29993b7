package main

import (
	"os"

	"github.com/caarlos0/env/v6"
	"gopkg.in/yaml.v2"
)

// ShellConfig controls which interface the shell talks to. Values come from
// the optional YAML config file; PHNX_* environment variables take
// precedence over the file.
type ShellConfig struct {
	Interface string `yaml:"interface" env:"PHNX_CAN_INTERFACE"`
	DryRun    bool   `yaml:"dry_run" env:"PHNX_DRY_RUN"`
}

func loadConfig(path string) (*ShellConfig, error) {
	cfg := &ShellConfig{
		Interface: "can0",
	}

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, err
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
