package app

import (
	"encoding/json"
	"flag"
	"math"
	"os"

	"github.com/pkg/errors"

	"lifegrid/internal/patterns"
	"lifegrid/pkg/sims/life"
)

// Config represents the parameters shared by the viewer and the headless runner.
type Config struct {
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	Density float64 `json:"density"`
	Seed    int64   `json:"seed"`
	Pattern string  `json:"pattern"`
	Scale   int     `json:"scale"`
	TPS     int     `json:"tps"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	lc := life.DefaultConfig()
	return &Config{
		Width:   lc.Width,
		Height:  lc.Height,
		Density: lc.Density,
		Seed:    lc.Seed,
		Scale:   6,
		TPS:     30,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.Float64Var(&c.Density, "density", c.Density, "probability a cell starts alive")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random fills")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "start from a named pattern instead of a random fill")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
}

// LoadFile overlays values from a JSON file onto c. Fields missing from the
// file keep their current values.
func (c *Config) LoadFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to read file: %+v", filename)
	}
	if err = json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to unmarshal data from file: %+v", filename)
	}
	return nil
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return errors.Wrapf(life.ErrInvalidDimensions, "[Validate] %dx%d", c.Width, c.Height)
	}
	if math.IsNaN(c.Density) || c.Density < 0 || c.Density > 1 {
		return errors.Wrapf(life.ErrInvalidProbability, "[Validate] density %v", c.Density)
	}
	if c.Pattern != "" {
		if _, ok := patterns.Lookup(c.Pattern); !ok {
			return errors.Errorf("[Validate] unknown pattern %q", c.Pattern)
		}
	}
	if c.Scale < 1 {
		return errors.Errorf("[Validate] scale must be positive, got %d", c.Scale)
	}
	return nil
}

// LifeConfig converts c into the simulation's own configuration.
func (c *Config) LifeConfig() life.Config {
	return life.Config{Width: c.Width, Height: c.Height, Density: c.Density, Seed: c.Seed}
}

// NewSim builds a simulation from c and applies the initial seeding.
func (c *Config) NewSim() (*life.Life, error) {
	sim, err := life.NewWithConfig(c.LifeConfig())
	if err != nil {
		return nil, err
	}
	if err := Seed(sim, c.Pattern, c.Seed); err != nil {
		return nil, err
	}
	return sim, nil
}

// Seed fills sim either with the named pattern centred on the board or, when
// pattern is empty, with a random fill from seed.
func Seed(sim *life.Life, pattern string, seed int64) error {
	if pattern == "" {
		sim.Reset(seed)
		return nil
	}
	p, ok := patterns.Lookup(pattern)
	if !ok {
		return errors.Errorf("[Seed] unknown pattern %q", pattern)
	}
	sim.Clear()
	return patterns.Place(sim, p, sim.Height()/2, sim.Width()/2)
}
