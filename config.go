package raster

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config carries the construction-time parameters of a Program and its
// matching Framebuffer: image size, tile size, and worker count.
type Config struct {
	Width        int
	Height       int
	RegionWidth  int
	RegionHeight int
	Workers      int
}

// DefaultConfig returns the reference configuration: a 350x200 image tiled
// into 30x30 regions (a 12x7 grid), rendered by 48 workers.
func DefaultConfig() Config {
	return Config{
		Width:        350,
		Height:       200,
		RegionWidth:  30,
		RegionHeight: 30,
		Workers:      48,
	}
}

// Validate reports whether every field of c is positive.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 || c.RegionWidth <= 0 || c.RegionHeight <= 0 {
		return ErrInvalidDimensions
	}
	if c.Workers <= 0 {
		return ErrInvalidWorkerCount
	}
	return nil
}

// LoadConfig reads a TOML document at path and decodes it into a Config,
// validating the result before returning it. This lets a host application
// tune tile size and worker count without a recompile.
func LoadConfig(path string) (Config, error) {
	var c Config
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return Config{}, fmt.Errorf("raster: decode config %q: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("raster: config %q: %w", path, err)
	}
	return c, nil
}

// WriteConfig encodes c as TOML and writes it to path.
func WriteConfig(path string, c Config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(&c); err != nil {
		return fmt.Errorf("raster: encode config: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("raster: write config %q: %w", path, err)
	}
	return nil
}
