// Package config loads the optional YAML configuration file. Every value has
// a default, so running without a file is fine; command-line flags override
// whatever the file says.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sysmonkit/syshealth/monitor"
)

type Config struct {
	Hostname    string `yaml:"hostname"`
	LogLocation string `yaml:"log-location"`

	Thresholds monitor.Thresholds `yaml:"thresholds"`

	Monitor struct {
		IntervalSeconds int `yaml:"interval-seconds"`
		TopProcesses    int `yaml:"top-processes"`
	} `yaml:"monitor"`

	History struct {
		Enabled        bool   `yaml:"enabled"`
		SqliteLocation string `yaml:"sqlite-location"`
	} `yaml:"history"`
}

func Default() Config {
	var cfg Config
	cfg.Thresholds = monitor.DefaultThresholds()
	cfg.Monitor.IntervalSeconds = 30
	cfg.Monitor.TopProcesses = monitor.DefaultTopProcesses
	return cfg
}

// Load reads the configuration file at path on top of the defaults. An empty
// path returns the defaults as-is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read configuration file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse configuration file: %w", err)
	}

	cfg.Thresholds = cfg.Thresholds.WithDefaults()
	if cfg.Monitor.IntervalSeconds <= 0 {
		cfg.Monitor.IntervalSeconds = 30
	}
	if cfg.Monitor.TopProcesses <= 0 {
		cfg.Monitor.TopProcesses = monitor.DefaultTopProcesses
	}
	if cfg.History.Enabled && cfg.History.SqliteLocation == "" {
		cfg.History.SqliteLocation = "syshealth_history.db"
	}

	return cfg, nil
}
