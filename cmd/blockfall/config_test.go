package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.NoError(t, config.Validate())
	assert.Equal(t, 10, config.Width)
	assert.Equal(t, 25, config.Height)
	assert.Equal(t, 25, config.CellSize)
	assert.Equal(t, time.Second, config.TickInterval())
}

func TestLoadConfig(t *testing.T) {
	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := writeConfig(t, `{"width": 6, "tickIntervalMs": 250, "debug": true}`)

		config, err := LoadConfig(path)

		assert.NoError(t, err)
		assert.Equal(t, 6, config.Width)
		assert.Equal(t, 25, config.Height)
		assert.Equal(t, 250*time.Millisecond, config.TickInterval())
		assert.True(t, config.Debug)
		assert.False(t, config.Inspector)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))

		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := writeConfig(t, `{"width": "wide"}`)

		_, err := LoadConfig(path)

		assert.ErrorContains(t, err, "unable to parse config")
	})
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"zero width", func(c *Config) { c.Width = 0 }, "width must be at least 1"},
		{"negative height", func(c *Config) { c.Height = -3 }, "height must be at least 1"},
		{"tiny cells", func(c *Config) { c.CellSize = 2 }, "cell size must be at least 4"},
		{"zero tick", func(c *Config) { c.TickIntervalMs = 0 }, "tick interval must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(&config)

			assert.ErrorContains(t, config.Validate(), tt.errMsg)
		})
	}

	t.Run("reports every problem", func(t *testing.T) {
		config := Config{}
		err := config.Validate()

		assert.ErrorContains(t, err, "width")
		assert.ErrorContains(t, err, "height")
		assert.ErrorContains(t, err, "cell size")
		assert.ErrorContains(t, err, "tick interval")
	})
}

func TestConfigFields(t *testing.T) {
	fields := DefaultConfig().Fields()

	assert.Equal(t, 10, fields["width"])
	assert.Equal(t, time.Second, fields["tick"])
}
