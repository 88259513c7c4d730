package app

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"

	"mad-sand/internal/core"
	"mad-sand/internal/matter"
	"mad-sand/internal/sims/sand"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width    int
	Height   int
	Scale    int
	TPS      int
	SimRate  int
	Seed     int64
	Workers  int
	Tile     int
	SubSteps int
	Radius   float64
	Kind     string
	Scenario string
	Panel    int
	LogLevel string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:    512,
		Height:   512,
		Scale:    2,
		TPS:      60,
		SimRate:  60,
		Seed:     42,
		Tile:     32,
		SubSteps: 1,
		Radius:   4,
		Kind:     matter.Sand.String(),
		Scenario: sand.ScenarioEmpty,
		Panel:    240,
		LogLevel: "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "window ticks per second")
	fs.IntVar(&c.SimRate, "sim-rate", c.SimRate, "simulation steps per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines per phase (0 = GOMAXPROCS)")
	fs.IntVar(&c.Tile, "tile", c.Tile, "rows per parallel band")
	fs.IntVar(&c.SubSteps, "sub-steps", c.SubSteps, "sub-steps per simulation tick")
	fs.Float64Var(&c.Radius, "brush", c.Radius, "initial brush radius")
	fs.StringVar(&c.Kind, "matter", c.Kind, "initial matter to paint")
	fs.StringVar(&c.Scenario, "scenario", c.Scenario, "initial layout")
	fs.IntVar(&c.Panel, "panel", c.Panel, "HUD panel width in pixels (0 hides it)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn or error")
}

// SimConfig converts the flags into a validated simulation configuration.
func (c *Config) SimConfig() (sand.Config, error) {
	sc := sand.DefaultConfig()
	sc.Width = c.Width
	sc.Height = c.Height
	sc.Seed = c.Seed
	sc.Workers = c.Workers
	sc.TileSize = c.Tile
	sc.Scenario = c.Scenario
	if err := sc.Validate(); err != nil {
		return sand.Config{}, fmt.Errorf("simulation config: %w", err)
	}
	return sc, nil
}

// Validate checks the settings that belong to the application itself.
func (c *Config) Validate() error {
	var errs []error
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale %d must be positive", c.Scale))
	}
	if c.SubSteps < 0 {
		errs = append(errs, fmt.Errorf("sub-steps %d must not be negative", c.SubSteps))
	}
	if c.Radius < 0 {
		errs = append(errs, fmt.Errorf("brush radius %g must not be negative", c.Radius))
	}
	if _, err := matter.ParseKind(c.Kind); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, fmt.Errorf("log level: %w", err))
	}
	return errors.Join(errs...)
}

// Level returns the configured slog level.
func (c *Config) Level() (slog.Level, error) {
	return core.ParseLevel(c.LogLevel)
}
