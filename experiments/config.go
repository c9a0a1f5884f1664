package experiments

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config holds the throughput experiment parameters.
type Config struct {
	BoardSize   int    `yaml:"board_size"`
	Games       int    `yaml:"games"` // per worker
	Workers     int    `yaml:"workers"`
	Seed        uint64 `yaml:"seed"`
	RecordMoves bool   `yaml:"record_moves"`
	ResultsDir  string `yaml:"results_dir"`
}

// LoadConfig reads experiment configuration from a YAML file, filling in
// defaults for anything unset.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// DefaultConfig returns the configuration used when no file is given:
// standard 13x13 boards, one worker per CPU.
func DefaultConfig() Config {
	var cfg Config
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.BoardSize == 0 {
		c.BoardSize = 13
	}
	if c.Games == 0 {
		c.Games = 100
	}
	if c.Workers == 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	if c.Seed == 0 {
		c.Seed = 1
	}
	if c.ResultsDir == "" {
		c.ResultsDir = "experiments"
	}
}
