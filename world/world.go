// Package world owns the pond's population and drives it one tick at a time.
//
// Each entity kind lives in its own ark component table, so a kind is a
// homogeneous collection iterated in creation order. Step and Render always
// visit flies, then frogs, then ferns.
package world

import (
	"fmt"
	"math/rand/v2"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/pond/canvas"
	"github.com/pthm-cable/pond/config"
	"github.com/pthm-cable/pond/entities"
)

// Phase names reported to a PhaseTimer during Step.
const (
	PhaseFlies = "flies"
	PhaseFrogs = "frogs"
	PhaseFerns = "ferns"
)

// Observer receives lifecycle events detected during Step.
type Observer interface {
	RecordFernMatured()
	RecordFernDied()
	RecordFrogLanded()
}

// PhaseTimer is told when each per-kind pass of Step begins.
type PhaseTimer interface {
	StartPhase(name string)
}

// World holds every entity and the random source that built them.
type World struct {
	cfg *config.Config

	seed uint64
	src  *rand.PCG
	rng  *rand.Rand

	ecs   *ecs.World
	flies *ecs.Map1[entities.Fly]
	frogs *ecs.Map1[entities.Frog]
	ferns *ecs.Map1[entities.Fern]

	flyFilter  *ecs.Filter1[entities.Fly]
	frogFilter *ecs.Filter1[entities.Frog]
	fernFilter *ecs.Filter1[entities.Fern]

	tick  int64
	debug bool

	observer Observer
	phases   PhaseTimer
}

// New validates cfg and builds the initial population from seed.
func New(cfg *config.Config, seed uint64) (*World, error) {
	if cfg == nil {
		return nil, fmt.Errorf("world: nil config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}

	w := &World{
		cfg:   cfg,
		debug: cfg.DebugMode,
	}
	w.Reseed(seed)
	return w, nil
}

// Reseed discards the population and builds a fresh one from seed.
// The tick counter restarts at zero.
func (w *World) Reseed(seed uint64) {
	w.seed = seed
	w.src = rand.NewPCG(seed, seed)
	w.rng = rand.New(w.src)
	w.tick = 0

	w.ecs = ecs.NewWorld()
	w.flies = ecs.NewMap1[entities.Fly](w.ecs)
	w.frogs = ecs.NewMap1[entities.Frog](w.ecs)
	w.ferns = ecs.NewMap1[entities.Fern](w.ecs)
	w.flyFilter = ecs.NewFilter1[entities.Fly](w.ecs)
	w.frogFilter = ecs.NewFilter1[entities.Frog](w.ecs)
	w.fernFilter = ecs.NewFilter1[entities.Fern](w.ecs)

	w.populate()
}

// SetObserver registers o for lifecycle events. nil disables reporting.
func (w *World) SetObserver(o Observer) {
	w.observer = o
}

// SetPhaseTimer registers p for per-kind timing. nil disables it.
func (w *World) SetPhaseTimer(p PhaseTimer) {
	w.phases = p
}

// SetDebug toggles the debug guides drawn by Render.
func (w *World) SetDebug(on bool) {
	w.debug = on
}

// Debug reports whether debug guides are drawn.
func (w *World) Debug() bool {
	return w.debug
}

// Seed returns the seed the current population was built from.
func (w *World) Seed() uint64 {
	return w.seed
}

// Tick returns the number of steps since the last reseed.
func (w *World) Tick() int64 {
	return w.tick
}

// Config returns the configuration the world was built with.
func (w *World) Config() *config.Config {
	return w.cfg
}

// Counts returns the population size per kind.
func (w *World) Counts() (flies, frogs, ferns int) {
	p := w.cfg.Population
	return p.Flies, p.Frogs, p.Ferns
}

// Step advances every entity by one tick.
func (w *World) Step() {
	w.startPhase(PhaseFlies)
	flyQuery := w.flyFilter.Query()
	for flyQuery.Next() {
		flyQuery.Get().Update()
	}

	w.startPhase(PhaseFrogs)
	frogQuery := w.frogFilter.Query()
	for frogQuery.Next() {
		frog := frogQuery.Get()
		wasResting := frog.Resting()
		frog.Update()
		if !wasResting && frog.Resting() && w.observer != nil {
			w.observer.RecordFrogLanded()
		}
	}

	w.startPhase(PhaseFerns)
	fernQuery := w.fernFilter.Query()
	for fernQuery.Next() {
		fern := fernQuery.Get()
		before := fern.Stage
		fern.Update()
		if w.observer == nil || fern.Stage == before {
			continue
		}
		switch fern.Stage {
		case entities.Adult:
			w.observer.RecordFernMatured()
		case entities.Dead:
			w.observer.RecordFernDied()
		}
	}

	w.tick++
}

// Render clears the surface, draws the reference grid and then every entity.
func (w *World) Render(s canvas.Surface) {
	s.Clear(canvas.Black)
	w.drawBackdrop(s)
	w.Each(func(_ entities.Kind, e entities.Entity) {
		e.Display(s)
	})
	if w.debug {
		w.drawDebug(s)
	}
}

// Each calls fn for every entity: flies, then frogs, then ferns, each in
// creation order. fn must not retain e past the call.
func (w *World) Each(fn func(kind entities.Kind, e entities.Entity)) {
	flyQuery := w.flyFilter.Query()
	for flyQuery.Next() {
		fn(entities.KindFly, flyQuery.Get())
	}
	frogQuery := w.frogFilter.Query()
	for frogQuery.Next() {
		fn(entities.KindFrog, frogQuery.Get())
	}
	fernQuery := w.fernFilter.Query()
	for fernQuery.Next() {
		fn(entities.KindFern, fernQuery.Get())
	}
}

func (w *World) startPhase(name string) {
	if w.phases != nil {
		w.phases.StartPhase(name)
	}
}
