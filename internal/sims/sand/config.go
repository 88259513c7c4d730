package sand

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"

	"mad-sand/internal/core"
	"mad-sand/internal/matter"
)

// Config controls the sand simulation dimensions and engine tuning.
type Config struct {
	Width  int
	Height int

	Seed int64

	// Workers bounds the goroutines used per phase. Zero means GOMAXPROCS.
	Workers int
	// TileSize is the number of rows handed to one worker at a time. Each
	// band owns its own random stream, so results depend on TileSize but not
	// on Workers.
	TileSize int

	Jitter     float64
	Background color.RGBA

	// Scenario names the layout applied by Reset.
	Scenario string

	// Rand builds the random stream for a stream index. Nil uses seeded PCG
	// streams from core.NewStream.
	Rand func(seed int64, stream uint64) core.Source
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:      1024,
		Height:     1024,
		Seed:       1337,
		Workers:    0,
		TileSize:   32,
		Jitter:     matter.DefaultJitter,
		Background: color.RGBA{A: 0xff},
		Scenario:   ScenarioEmpty,
	}
}

// Validate reports settings that cannot be honoured.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("grid size %dx%d must be positive", c.Width, c.Height))
	}
	if c.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("tile size %d must be positive", c.TileSize))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers %d must not be negative", c.Workers))
	}
	if c.Jitter < 0 || c.Jitter > 1 {
		errs = append(errs, fmt.Errorf("jitter %g outside [0,1]", c.Jitter))
	}
	if _, ok := lookupScenario(c.Scenario); !ok {
		errs = append(errs, fmt.Errorf("scenario %q: %w", c.Scenario, ErrUnknownScenario))
	}
	return errors.Join(errs...)
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparsable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["tile"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.TileSize = parsed
		}
	}
	if v, ok := cfg["jitter"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Jitter = parsed
		}
	}
	if v, ok := cfg["background"]; ok {
		if parsed, err := strconv.ParseUint(v, 16, 32); err == nil && parsed <= 0xffffff {
			c.Background = color.RGBA{R: uint8(parsed >> 16), G: uint8(parsed >> 8), B: uint8(parsed), A: 0xff}
		}
	}
	if v, ok := cfg["scenario"]; ok {
		if _, known := lookupScenario(v); known {
			c.Scenario = v
		}
	}
	return c
}

func (c Config) source(seed int64, stream uint64) core.Source {
	if c.Rand != nil {
		return c.Rand(seed, stream)
	}
	return core.NewStream(seed, stream)
}
