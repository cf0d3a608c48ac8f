// Package game drives the pond: it owns the world, steps it, feeds
// telemetry and, in graphical mode, handles input and draws each frame.
package game

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/pond/camera"
	"github.com/pthm-cable/pond/config"
	"github.com/pthm-cable/pond/inspector"
	"github.com/pthm-cable/pond/renderer"
	"github.com/pthm-cable/pond/telemetry"
	"github.com/pthm-cable/pond/ui"
	"github.com/pthm-cable/pond/world"
)

// Options configures a Game.
type Options struct {
	// Config to run with. nil means config.Cfg().
	Config *config.Config

	Seed           uint64
	LogStats       bool
	OutputDir      string
	Headless       bool
	StepsPerUpdate int
}

// Game holds the complete game state.
type Game struct {
	cfg   *config.Config
	world *world.World

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	bookmarks     *telemetry.BookmarkDetector
	outputManager *telemetry.OutputManager
	logStats      bool
	statsCallback func(telemetry.WindowStats)

	// Graphics (nil when headless)
	camera    *camera.Camera
	surface   *renderer.Surface
	hud       *ui.HUD
	controls  *ui.Controls
	inspector *inspector.Inspector
	pending   ui.ControlActions

	headless       bool
	paused         bool
	stepsPerUpdate int

	screenWidth, screenHeight float32
}

// NewGameWithOptions creates a game and its initial population.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}

	w, err := world.New(cfg, opts.Seed)
	if err != nil {
		return nil, fmt.Errorf("creating world: %w", err)
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output manager: %w", err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		om.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	g := &Game{
		cfg:            cfg,
		world:          w,
		collector:      telemetry.NewCollector(cfg.Telemetry.StatsWindow),
		perfCollector:  telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		bookmarks:      telemetry.NewBookmarkDetector(),
		outputManager:  om,
		logStats:       opts.LogStats,
		headless:       opts.Headless,
		stepsPerUpdate: initialSteps(opts.StepsPerUpdate, opts.Headless),
		screenWidth:    cfg.Derived.Width32,
		screenHeight:   cfg.Derived.Height32,
	}
	w.SetObserver(g.collector)
	w.SetPhaseTimer(g.perfCollector)

	if !g.headless {
		v := cfg.View
		g.camera = camera.New(g.screenWidth, g.screenHeight,
			float32(v.CenterX), float32(v.CenterY), float32(v.MinZoom), float32(v.MaxZoom))
		g.surface = renderer.NewSurface(g.camera)
		g.hud = ui.NewHUD()
		g.controls = ui.NewControls(int32(g.screenWidth))
		g.inspector = inspector.NewInspector(int32(g.screenWidth), int32(g.screenHeight))
	}

	flies, frogs, ferns := w.Counts()
	slog.Info("pond created",
		"seed", opts.Seed,
		"flies", flies,
		"frogs", frogs,
		"ferns", ferns,
		"fly_mode", cfg.Fly.Mode,
		"output_dir", om.Dir(),
	)

	return g, nil
}

// initialSteps floors steps at one tick. Interactive runs are also capped
// to the range the slider and keys can reach.
func initialSteps(steps int, headless bool) int {
	if headless {
		return max(steps, ui.MinSteps)
	}
	return ui.ClampSteps(steps)
}

// SetStatsCallback registers fn to receive every flushed census window.
func (g *Game) SetStatsCallback(fn func(telemetry.WindowStats)) {
	g.statsCallback = fn
}

// Tick returns the number of steps since the last reseed.
func (g *Game) Tick() int64 {
	return g.world.Tick()
}

// Seed returns the seed of the current population.
func (g *Game) Seed() uint64 {
	return g.world.Seed()
}

// World exposes the simulation for inspection.
func (g *Game) World() *world.World {
	return g.world
}

// Paused reports whether stepping is suspended.
func (g *Game) Paused() bool {
	return g.paused
}

// StepsPerUpdate returns how many ticks each Update advances.
func (g *Game) StepsPerUpdate() int {
	return g.stepsPerUpdate
}

// Reseed rebuilds the population from seed and restarts telemetry windows.
func (g *Game) Reseed(seed uint64) {
	g.world.Reseed(seed)
	g.collector.Reset(g.world.Tick())
	g.bookmarks.Reset()
	if g.inspector != nil {
		g.inspector.Deselect()
	}
	slog.Info("reseed", "seed", seed)
}

// Unload releases resources held by the game.
func (g *Game) Unload() {
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
