package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

type Config struct {
	Width          int  `json:"width"`
	Height         int  `json:"height"`
	CellSize       int  `json:"cellSize"`
	TickIntervalMs int  `json:"tickIntervalMs"`
	Debug          bool `json:"debug"`
	Inspector      bool `json:"inspector"`
}

func DefaultConfig() Config {
	return Config{
		Width:          10,
		Height:         25,
		CellSize:       25,
		TickIntervalMs: 1000,
	}
}

// LoadConfig reads a JSON config file on top of the defaults. Keys missing
// from the file keep their default value.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	configBytes, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("unable to read config %s: %w", path, err)
	}
	if err := json.Unmarshal(configBytes, &config); err != nil {
		return config, fmt.Errorf("unable to parse config %s: %w", path, err)
	}
	return config, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Width < 1 {
		errs = append(errs, fmt.Errorf("width must be at least 1, got %d", c.Width))
	}
	if c.Height < 1 {
		errs = append(errs, fmt.Errorf("height must be at least 1, got %d", c.Height))
	}
	if c.CellSize < 4 {
		errs = append(errs, fmt.Errorf("cell size must be at least 4, got %d", c.CellSize))
	}
	if c.TickIntervalMs < 1 {
		errs = append(errs, fmt.Errorf("tick interval must be positive, got %dms", c.TickIntervalMs))
	}
	return errors.Join(errs...)
}

func (c Config) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalMs) * time.Millisecond
}

func (c Config) Fields() logrus.Fields {
	return logrus.Fields{
		"width":     c.Width,
		"height":    c.Height,
		"cellSize":  c.CellSize,
		"tick":      c.TickInterval(),
		"debug":     c.Debug,
		"inspector": c.Inspector,
	}
}
