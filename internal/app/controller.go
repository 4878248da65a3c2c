package app

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"mad-life/internal/core"
	pcore "mad-life/pkg/core"
	"mad-life/pkg/life"
)

const (
	// MinRate and MaxRate bound the generations-per-second setting.
	MinRate = 0.25
	MaxRate = 240

	fasterFactor = 1.25
	slowerFactor = 0.8

	// maxStepsPerTick caps catch-up work when the host loop stalls.
	maxStepsPerTick = 8

	defaultSoupSize    = 64
	defaultSoupDensity = 0.35

	noiseScale     = 6
	noiseThreshold = 0.05
)

// Soup describes how Reseed fills the plane around the origin.
type Soup struct {
	Kind    string
	Size    int
	Density float64
}

// Area returns the square of cells centred on the origin that the soup fills.
func (s Soup) Area() life.Rect {
	return life.RectOf(-s.Size/2, -s.Size/2, s.Size, s.Size)
}

// Fill adds the soup's cells to g.
func (s Soup) Fill(seed int64, g *life.Grid) {
	switch s.Kind {
	case SoupRandom:
		pcore.FillBinary(pcore.NewRNG(seed), g, s.Area(), s.Density)
	case SoupPerlin:
		pcore.FillNoise(seed, g, s.Area(), noiseScale, noiseThreshold)
	}
}

// Controller owns a life.Grid and serializes every access to it. Input
// handling, the tick loop and rendering all go through it.
type Controller struct {
	mu       sync.Mutex
	grid     *life.Grid
	step     *core.FixedStep
	paused   bool
	tickOnce bool
	soup     Soup
	seed     int64
	stamp    string
}

// NewController returns a controller over an empty grid advancing at rate
// generations per second.
func NewController(rate float64, soup Soup) *Controller {
	return &Controller{
		grid:  life.New(),
		step:  core.NewFixedStep(clampRate(rate)),
		soup:  soup,
		stamp: "glider",
	}
}

// Setup builds a controller from cfg: soup first, then the built-in pattern,
// then any files to load.
func Setup(ctx context.Context, cfg *Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := NewController(cfg.Rate, cfg.SoupSpec())
	c.seed = cfg.Seed
	c.soup.Fill(cfg.Seed, c.grid)

	if cfg.Pattern != "" {
		if err := c.SelectPattern(cfg.Pattern); err != nil {
			return nil, err
		}
		c.StampSelected(life.Coord{})
	}
	if len(cfg.Load) > 0 {
		if err := c.LoadFiles(ctx, cfg.Load...); err != nil {
			return nil, err
		}
	}
	c.paused = cfg.Paused
	return c, nil
}

func clampRate(rate float64) float64 {
	return max(MinRate, min(MaxRate, rate))
}

// Tick runs every generation that is due at now and returns how many ran.
// While paused only a pending single step runs.
func (c *Controller) Tick(now time.Time) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.paused {
		c.step.Drop(now)
		if !c.tickOnce {
			return 0
		}
		c.tickOnce = false
		c.grid.Iterate()
		return 1
	}

	n := 0
	for n < maxStepsPerTick && c.step.Due(now) {
		c.grid.Iterate()
		n++
	}
	if n == maxStepsPerTick {
		c.step.Drop(now)
	}
	return n
}

// Advance runs n generations immediately, ignoring pacing and pause state.
func (c *Controller) Advance(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := 0; i < n; i++ {
		c.grid.Iterate()
	}
}

// Toggle flips the state of cell.
func (c *Controller) Toggle(cell life.Coord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.grid.Contains(cell) {
		c.grid.Remove(cell)
		return
	}
	c.grid.Add(cell)
}

// Set marks cell alive or dead.
func (c *Controller) Set(cell life.Coord, alive bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if alive {
		c.grid.Add(cell)
		return
	}
	c.grid.Remove(cell)
}

// Stamp merges pattern into the grid with its bounding box centred on at.
func (c *Controller) Stamp(pattern *life.Grid, at life.Coord) {
	r, ok := pattern.Bounds()
	if !ok {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.grid.Merge(pattern, at.Sub(r.Center()))
}

// SelectPattern chooses the built-in pattern used by StampSelected.
func (c *Controller) SelectPattern(name string) error {
	if _, ok := core.Patterns()[name]; !ok {
		return fmt.Errorf("unknown pattern %q", name)
	}
	c.mu.Lock()
	c.stamp = name
	c.mu.Unlock()
	return nil
}

// SelectedPattern returns the name of the pattern used by StampSelected.
func (c *Controller) SelectedPattern() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stamp
}

// CyclePattern selects the next registered pattern and returns its name.
func (c *Controller) CyclePattern() string {
	names := core.PatternNames()
	if len(names) == 0 {
		return ""
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	next := names[0]
	for i, name := range names {
		if name == c.stamp {
			next = names[(i+1)%len(names)]
			break
		}
	}
	c.stamp = next
	return next
}

// StampSelected stamps the selected built-in pattern centred on at.
func (c *Controller) StampSelected(at life.Coord) {
	f, ok := core.Patterns()[c.SelectedPattern()]
	if !ok {
		return
	}
	c.Stamp(f(), at)
}

// Clear kills every cell.
func (c *Controller) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.grid.Clear()
}

// Reseed clears the grid and fills it with a fresh soup. When the soup kind is
// empty a random soup is used so the key always produces something.
func (c *Controller) Reseed(seed int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seed = seed
	soup := c.soup
	if soup.Kind == SoupNone {
		soup.Kind = SoupRandom
		if soup.Size <= 0 {
			soup.Size = defaultSoupSize
		}
		if soup.Density <= 0 {
			soup.Density = defaultSoupDensity
		}
	}
	c.grid.Clear()
	soup.Fill(seed, c.grid)
}

// LoadFiles loads the coordinate files concurrently and merges them in
// argument order. On error the grid is left untouched.
func (c *Controller) LoadFiles(ctx context.Context, paths ...string) error {
	grids, err := life.LoadAll(ctx, paths...)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, g := range grids {
		c.grid.Merge(g, life.Coord{})
	}
	return nil
}

// TogglePause flips the paused state.
func (c *Controller) TogglePause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = !c.paused
}

// SetPaused sets the paused state.
func (c *Controller) SetPaused(paused bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = paused
}

// Paused reports whether generation ticks are suspended.
func (c *Controller) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

// StepOnce pauses the simulation and schedules exactly one generation for the
// next Tick.
func (c *Controller) StepOnce() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = true
	c.tickOnce = true
}

// Rate returns the generations-per-second setting.
func (c *Controller) Rate() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.step.Rate()
}

// SetRate changes the generations-per-second setting, clamped to
// [MinRate, MaxRate].
func (c *Controller) SetRate(rate float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.step.SetRate(clampRate(rate))
}

// Faster raises the rate by a quarter.
func (c *Controller) Faster() { c.SetRate(c.Rate() * fasterFactor) }

// Slower lowers the rate by a fifth.
func (c *Controller) Slower() { c.SetRate(c.Rate() * slowerFactor) }

// View calls fn with the grid while holding the lock. fn must not retain or
// mutate the grid.
func (c *Controller) View(fn func(g *life.Grid)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(c.grid)
}

// Snapshot returns a copy of the alive cells and the current generation.
func (c *Controller) Snapshot() ([]life.Coord, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.grid.Cells(), c.grid.Generation()
}

// Parameters reports the values shown on the HUD.
func (c *Controller) Parameters() core.ParameterSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	bounds := "-"
	if r, ok := c.grid.Bounds(); ok {
		bounds = r.String()
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Simulation", Params: []core.Parameter{
			{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.Itoa(c.grid.Generation())},
			{Key: "population", Label: "Population", Type: core.ParamTypeInt, Value: strconv.Itoa(c.grid.Len())},
			{Key: "bounds", Label: "Bounds", Type: core.ParamTypeString, Value: bounds},
		}},
		{Name: "Controls", Params: []core.Parameter{
			{Key: "rate", Label: "Gen/s", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(c.step.Rate(), 'f', 2, 64)},
			{Key: "paused", Label: "Paused", Type: core.ParamTypeBool, Value: strconv.FormatBool(c.paused)},
			{Key: "pattern", Label: "Stamp", Type: core.ParamTypeString, Value: c.stamp},
			{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(c.seed, 10)},
		}},
	}}
}
