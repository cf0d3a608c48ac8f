// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Grid       GridConfig       `yaml:"grid"`
	View       ViewConfig       `yaml:"view"`
	Population PopulationConfig `yaml:"population"`
	Frog       FrogConfig       `yaml:"frog"`
	Fly        FlyConfig        `yaml:"fly"`
	Fern       FernConfig       `yaml:"fern"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
	DebugMode  bool             `yaml:"debug_mode"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// Range is a half-open integer interval [Min, Max) used for random draws.
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Area is a rectangular spawn region.
type Area struct {
	X Range `yaml:"x"`
	Y Range `yaml:"y"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Title     string `yaml:"title"`
	TargetFPS int    `yaml:"target_fps"`
}

// GridConfig describes the reference grid and, through it, the window size.
// Window edge = cells * size + 2 * margin.
type GridConfig struct {
	Rows       int     `yaml:"rows"`
	Cols       int     `yaml:"cols"`
	Size       int     `yaml:"size"`        // World units between ticks
	Margin     int     `yaml:"margin"`      // Pixels around the grid
	LineWidth  float64 `yaml:"line_width"`  // Stroke width shared by entities
	TickHalf   float64 `yaml:"tick_half"`   // Half length of a tick mark
	AxisExtent float64 `yaml:"axis_extent"` // Axes run from -extent to +extent
	MajorEvery int     `yaml:"major_every"` // Every Nth tick is highlighted
}

// ViewConfig holds camera defaults.
type ViewConfig struct {
	CenterX  float64 `yaml:"center_x"`
	CenterY  float64 `yaml:"center_y"`
	MinZoom  float64 `yaml:"min_zoom"`
	MaxZoom  float64 `yaml:"max_zoom"`
	PanSpeed float64 `yaml:"pan_speed"` // Screen pixels per frame at zoom 1
}

// PopulationConfig holds initial population counts and spawn regions.
type PopulationConfig struct {
	Frogs    int   `yaml:"frogs"`
	Flies    int   `yaml:"flies"`
	Ferns    int   `yaml:"ferns"`
	FrogArea Area  `yaml:"frog_area"`
	FlyArea  Area  `yaml:"fly_area"`
	FernSpan Range `yaml:"fern_span"` // Ferns are rooted on y = 0
}

// FrogConfig holds frog creation and animation parameters.
type FrogConfig struct {
	Size       Range   `yaml:"size"`        // Body-to-part radius
	MouthAngle Range   `yaml:"mouth_angle"` // Initial mouth angle in degrees
	MouthMin   float64 `yaml:"mouth_min"`   // Closing turns around below this
	MouthMax   float64 `yaml:"mouth_max"`   // Opening turns around above this
	MouthSpeed float64 `yaml:"mouth_speed"` // Degrees per tick
	Floor      float64 `yaml:"floor"`       // Frogs sink until body y <= floor
	SinkRate   float64 `yaml:"sink_rate"`   // World units per tick
}

// FlyConfig holds fly motion parameters.
type FlyConfig struct {
	Mode   string  `yaml:"mode"`   // "hover" or "flit"
	Jitter float64 `yaml:"jitter"` // Max per-axis offset per tick
}

// FernConfig holds fern lifecycle parameters.
type FernConfig struct {
	HeightCap  Range   `yaml:"height_cap"`
	AgeCap     Range   `yaml:"age_cap"` // Ticks
	GrowthRate float64 `yaml:"growth_rate"`
	Red        Range   `yaml:"red"`
	Green      Range   `yaml:"green"`
	Blue       Range   `yaml:"blue"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow int `yaml:"stats_window"` // Ticks per census window
	PerfWindow  int `yaml:"perf_window"`  // Ticks averaged by the perf collector
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	Width    int     // Window width in pixels
	Height   int     // Window height in pixels
	Width32  float32 // Width as float32
	Height32 float32 // Height as float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.Width = c.Grid.Cols*c.Grid.Size + 2*c.Grid.Margin
	c.Derived.Height = c.Grid.Rows*c.Grid.Size + 2*c.Grid.Margin
	c.Derived.Width32 = float32(c.Derived.Width)
	c.Derived.Height32 = float32(c.Derived.Height)
}

// Fly motion modes.
const (
	FlyModeHover = "hover"
	FlyModeFlit  = "flit"
)

// Validate reports every out-of-range parameter, joined into one error.
// A nil return means a world can be built from c.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}
	checkRange := func(name string, r Range) {
		check(r.Max > r.Min, "%s: max (%d) must be greater than min (%d)", name, r.Max, r.Min)
	}
	checkChannel := func(name string, r Range) {
		checkRange(name, r)
		check(r.Min >= 0 && r.Max <= 256, "%s: channel range [%d, %d) outside [0, 256)", name, r.Min, r.Max)
	}

	check(c.Screen.TargetFPS > 0, "screen.target_fps must be positive, got %d", c.Screen.TargetFPS)

	check(c.Grid.Rows > 0, "grid.rows must be positive, got %d", c.Grid.Rows)
	check(c.Grid.Cols > 0, "grid.cols must be positive, got %d", c.Grid.Cols)
	check(c.Grid.Size > 0, "grid.size must be positive, got %d", c.Grid.Size)
	check(c.Grid.Margin >= 0, "grid.margin must not be negative, got %d", c.Grid.Margin)
	check(c.Grid.LineWidth > 0, "grid.line_width must be positive, got %g", c.Grid.LineWidth)
	check(c.Grid.MajorEvery > 0, "grid.major_every must be positive, got %d", c.Grid.MajorEvery)

	check(c.View.MinZoom > 0, "view.min_zoom must be positive, got %g", c.View.MinZoom)
	check(c.View.MaxZoom >= c.View.MinZoom, "view.max_zoom (%g) below min_zoom (%g)", c.View.MaxZoom, c.View.MinZoom)

	check(c.Population.Frogs >= 0, "population.frogs must not be negative, got %d", c.Population.Frogs)
	check(c.Population.Flies >= 0, "population.flies must not be negative, got %d", c.Population.Flies)
	check(c.Population.Ferns >= 0, "population.ferns must not be negative, got %d", c.Population.Ferns)
	checkRange("population.frog_area.x", c.Population.FrogArea.X)
	checkRange("population.frog_area.y", c.Population.FrogArea.Y)
	checkRange("population.fly_area.x", c.Population.FlyArea.X)
	checkRange("population.fly_area.y", c.Population.FlyArea.Y)
	checkRange("population.fern_span", c.Population.FernSpan)

	checkRange("frog.size", c.Frog.Size)
	check(c.Frog.Size.Min > 0, "frog.size.min must be positive, got %d", c.Frog.Size.Min)
	checkRange("frog.mouth_angle", c.Frog.MouthAngle)
	check(c.Frog.MouthMax > c.Frog.MouthMin, "frog.mouth_max (%g) must exceed mouth_min (%g)", c.Frog.MouthMax, c.Frog.MouthMin)
	check(c.Frog.MouthSpeed > 0, "frog.mouth_speed must be positive, got %g", c.Frog.MouthSpeed)
	check(c.Frog.SinkRate >= 0, "frog.sink_rate must not be negative, got %g", c.Frog.SinkRate)

	check(c.Fly.Mode == FlyModeHover || c.Fly.Mode == FlyModeFlit, "fly.mode must be %q or %q, got %q", FlyModeHover, FlyModeFlit, c.Fly.Mode)
	check(c.Fly.Jitter >= 0, "fly.jitter must not be negative, got %g", c.Fly.Jitter)

	checkRange("fern.height_cap", c.Fern.HeightCap)
	check(c.Fern.HeightCap.Min > 0, "fern.height_cap.min must be positive, got %d", c.Fern.HeightCap.Min)
	checkRange("fern.age_cap", c.Fern.AgeCap)
	check(c.Fern.AgeCap.Min > 0, "fern.age_cap.min must be positive, got %d", c.Fern.AgeCap.Min)
	check(c.Fern.GrowthRate > 0, "fern.growth_rate must be positive, got %g", c.Fern.GrowthRate)
	checkChannel("fern.red", c.Fern.Red)
	checkChannel("fern.green", c.Fern.Green)
	checkChannel("fern.blue", c.Fern.Blue)

	check(c.Telemetry.StatsWindow > 0, "telemetry.stats_window must be positive, got %d", c.Telemetry.StatsWindow)
	check(c.Telemetry.PerfWindow > 0, "telemetry.perf_window must be positive, got %d", c.Telemetry.PerfWindow)

	return errors.Join(errs...)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
