package app

import (
	"flag"
	"fmt"
	"strings"
)

// Soup kinds accepted by the -soup flag.
const (
	SoupNone   = ""
	SoupRandom = "random"
	SoupPerlin = "perlin"
)

// PathList collects repeated or comma-separated file flags.
type PathList []string

func (p *PathList) String() string { return strings.Join(*p, ",") }

// Set appends one or more comma-separated paths.
func (p *PathList) Set(v string) error {
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*p = append(*p, part)
		}
	}
	return nil
}

// Config represents the command-line parameters for the application.
type Config struct {
	Pattern  string
	Load     PathList
	Soup     string
	SoupSize int
	Density  float64
	Rate     float64
	TPS      int
	Cell     float64
	Width    int
	Height   int
	Seed     int64
	Paused   bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Pattern:  "glider",
		SoupSize: 64,
		Density:  0.35,
		Rate:     10,
		TPS:      60,
		Cell:     10,
		Width:    640,
		Height:   400,
		Seed:     42,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "built-in pattern stamped at the origin (empty for none)")
	fs.Var(&c.Load, "load", "coordinate file to merge at start (repeatable, comma-separated)")
	fs.StringVar(&c.Soup, "soup", c.Soup, "random start: \"\", \"random\" or \"perlin\"")
	fs.IntVar(&c.SoupSize, "soup-size", c.SoupSize, "edge length of the square soup area in cells")
	fs.Float64Var(&c.Density, "density", c.Density, "fill probability for random soups")
	fs.Float64Var(&c.Rate, "rate", c.Rate, "generations per second")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Float64Var(&c.Cell, "cell", c.Cell, "cell size in pixels at zoom 1")
	fs.IntVar(&c.Width, "width", c.Width, "window width")
	fs.IntVar(&c.Height, "height", c.Height, "window height")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for soups")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start paused")
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch c.Soup {
	case SoupNone, SoupRandom, SoupPerlin:
	default:
		return fmt.Errorf("unknown soup %q", c.Soup)
	}
	if c.Soup != SoupNone && c.SoupSize <= 0 {
		return fmt.Errorf("soup-size must be positive, got %d", c.SoupSize)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("density must be within [0,1], got %g", c.Density)
	}
	if c.Rate <= 0 {
		return fmt.Errorf("rate must be positive, got %g", c.Rate)
	}
	if c.Cell <= 0 {
		return fmt.Errorf("cell must be positive, got %g", c.Cell)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height)
	}
	return nil
}

// SoupSpec returns the soup settings carried by the config.
func (c *Config) SoupSpec() Soup {
	return Soup{Kind: c.Soup, Size: c.SoupSize, Density: c.Density}
}
