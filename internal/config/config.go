package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/termsweeper/internal/mines"
)

const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
)

type Config struct {
	Mode      string `json:"mode" schema:"mode"`
	Width     int    `json:"width" schema:"width"`
	Height    int    `json:"height" schema:"height"`
	MineCount int    `json:"mine_count" schema:"mine_count"`
	// RandSeed makes boards reproducible; 0 picks a fresh seed.
	RandSeed uint64 `json:"rand_seed" schema:"rand_seed"`
	LogFile  string `json:"log_file" schema:"log_file"`
}

func Default() Config {
	return Config{
		Mode:      ModeDevelopment,
		Width:     15,
		Height:    15,
		MineCount: 50,
	}
}

func (c Config) Development() bool {
	return c.Mode != ModeProduction
}

func (c Config) Params() (mines.GameParams, error) {
	p := mines.GameParams{Width: c.Width, Height: c.Height, MineCount: c.MineCount}
	return p, p.Validate()
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":       c.Mode,
		"width":      c.Width,
		"height":     c.Height,
		"mine_count": c.MineCount,
		"rand_seed":  c.RandSeed,
		"log_file":   c.LogFile,
	}
}

func ReadConfig(path string, config *Config) error {
	if b, err := os.ReadFile(path); err != nil {
		return err
	} else {
		return json.Unmarshal(b, config)
	}
}

// Load layers, lowest priority first: defaults, the JSON file named by
// -config, dotenv files and environ (MINES_ keys), then explicitly set flags.
func Load(args []string, environ []string, dotenv ...string) (*Config, error) {
	cfg := Default()

	f, err := parseFlags(args)
	if err != nil {
		return nil, err
	}

	if f.configPath != "" {
		if err := ReadConfig(f.configPath, &cfg); err != nil {
			return nil, fmt.Errorf("unable to read config %s: %w", f.configPath, err)
		}
	}

	if err := cfg.loadEnv(environ, dotenv...); err != nil {
		return nil, err
	}

	if err := f.apply(&cfg); err != nil {
		return nil, err
	}

	if cfg.Mode != ModeDevelopment && cfg.Mode != ModeProduction {
		return nil, fmt.Errorf("unknown mode %q", cfg.Mode)
	}
	if _, err := cfg.Params(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
