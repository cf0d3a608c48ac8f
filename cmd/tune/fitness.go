package main

import (
	"fmt"
	"math"
	"sync"

	"github.com/pthm-cable/pond/config"
	"github.com/pthm-cable/pond/game"
	"github.com/pthm-cable/pond/telemetry"
)

// Targets describes the pond behavior the tuner steers toward.
type Targets struct {
	AdultFraction float64 // Mean share of ferns in the adult stage over the run
	FlySpread     float64 // Fly spread (mean of x and y std) in the last window
	SettleShare   float64 // Share of the run elapsed when every frog rests
}

// Metrics are what a single run measured against Targets.
type Metrics struct {
	AdultFraction float64
	FlySpread     float64
	SettleShare   float64
}

// FitnessEvaluator runs headless simulations and computes fitness.
type FitnessEvaluator struct {
	params     *ParamVector
	maxTicks   int64
	seeds      []uint64
	baseConfig *config.Config
	targets    Targets

	mu          sync.Mutex
	lastMetrics Metrics // averaged over seeds from the most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks int64, seeds []uint64, baseCfg *config.Config, targets Targets) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:     params,
		maxTicks:   maxTicks,
		seeds:      seeds,
		baseConfig: baseCfg,
		targets:    targets,
	}
}

// LastMetrics returns the seed-averaged metrics from the most recent evaluation.
func (fe *FitnessEvaluator) LastMetrics() Metrics {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastMetrics
}

// Evaluate computes fitness for a raw parameter vector (lower = better).
// Seeds run in parallel; an invalid configuration scores +Inf.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)

	results := make([]Metrics, len(fe.seeds))
	errs := make([]error, len(fe.seeds))
	var wg sync.WaitGroup

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s uint64) {
			defer wg.Done()
			results[idx], errs[idx] = fe.runSimulation(cfg, s)
		}(i, seed)
	}
	wg.Wait()

	var avg Metrics
	for i, m := range results {
		if errs[i] != nil {
			return math.Inf(1)
		}
		avg.AdultFraction += m.AdultFraction
		avg.FlySpread += m.FlySpread
		avg.SettleShare += m.SettleShare
	}
	n := float64(len(results))
	avg.AdultFraction /= n
	avg.FlySpread /= n
	avg.SettleShare /= n

	fe.mu.Lock()
	fe.lastMetrics = avg
	fe.mu.Unlock()

	return computeFitness(avg, fe.targets)
}

// runSimulation executes a single headless run for maxTicks and measures it.
// cfg is shared read-only between concurrent runs.
func (fe *FitnessEvaluator) runSimulation(cfg *config.Config, seed uint64) (Metrics, error) {
	g, err := game.NewGameWithOptions(game.Options{
		Config:         cfg,
		Seed:           seed,
		Headless:       true,
		StepsPerUpdate: 1,
	})
	if err != nil {
		return Metrics{}, fmt.Errorf("seed %d: %w", seed, err)
	}
	defer g.Unload()

	var windows []telemetry.WindowStats
	g.SetStatsCallback(func(stats telemetry.WindowStats) {
		windows = append(windows, stats)
	})

	for g.Tick() < fe.maxTicks {
		g.UpdateHeadless()
	}

	return measure(windows, fe.maxTicks), nil
}

// measure reduces a run's census windows to Metrics. A run where frogs
// never all settle reports SettleShare 1.
func measure(windows []telemetry.WindowStats, maxTicks int64) Metrics {
	m := Metrics{SettleShare: 1}
	if len(windows) == 0 || maxTicks <= 0 {
		return m
	}

	var adultSum float64
	settled := false
	for _, w := range windows {
		if w.Ferns > 0 {
			adultSum += float64(w.FernsAdult) / float64(w.Ferns)
		}
		if !settled && w.Frogs > 0 && w.FrogsResting == w.Frogs {
			m.SettleShare = float64(w.WindowEndTick) / float64(maxTicks)
			settled = true
		}
	}
	m.AdultFraction = adultSum / float64(len(windows))

	last := windows[len(windows)-1]
	m.FlySpread = (last.FlySpreadX + last.FlySpreadY) / 2
	return m
}

// computeFitness is the sum of squared errors against targets. The spread
// error is relative so all three terms share a scale.
func computeFitness(m Metrics, t Targets) float64 {
	adultErr := m.AdultFraction - t.AdultFraction
	settleErr := m.SettleShare - t.SettleShare
	spreadErr := 0.0
	if t.FlySpread > 0 {
		spreadErr = (m.FlySpread - t.FlySpread) / t.FlySpread
	}
	return adultErr*adultErr + settleErr*settleErr + spreadErr*spreadErr
}

// copyConfig returns an independent copy of the base config. Config holds
// only value fields, so a struct copy is deep.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	return &cfg
}
