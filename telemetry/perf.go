package telemetry

import (
	"log/slog"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/pond/world"
)

// Phases of one tick, in the order they run. The per-kind phases are
// reported by world.Step itself.
const (
	PhaseFlies     = world.PhaseFlies
	PhaseFrogs     = world.PhaseFrogs
	PhaseFerns     = world.PhaseFerns
	PhaseTelemetry = "telemetry"
)

// Phases lists every timed phase in tick order.
var Phases = [numPhases]string{PhaseFlies, PhaseFrogs, PhaseFerns, PhaseTelemetry}

const numPhases = 4

var _ world.PhaseTimer = (*PerfCollector)(nil)

func phaseIndex(name string) int {
	for i, p := range Phases {
		if p == name {
			return i
		}
	}
	return -1
}

type tickSample struct {
	total  time.Duration
	phases [numPhases]time.Duration
}

// PerfCollector times ticks and their phases over a rolling window of
// tickSamples, plus the interval between rendered frames.
type PerfCollector struct {
	samples []tickSample
	next    int
	filled  int

	current    tickSample
	tickStart  time.Time
	phaseStart time.Time
	phase      int // Index into Phases, -1 when no known phase is running

	lastFrame time.Time
	frame     time.Duration
}

// NewPerfCollector averages over the last windowSize ticks (60 if < 1).
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{
		samples: make([]tickSample, windowSize),
		phase:   -1,
	}
}

// StartTick begins timing a new tick.
func (p *PerfCollector) StartTick() {
	p.tickStart = time.Now()
	p.current = tickSample{}
	p.phase = -1
}

// StartPhase closes the running phase and starts the named one. Names
// outside Phases are timed as part of the tick only.
func (p *PerfCollector) StartPhase(name string) {
	now := time.Now()
	p.closePhase(now)
	p.phaseStart = now
	p.phase = phaseIndex(name)
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.phase >= 0 {
		p.current.phases[p.phase] += now.Sub(p.phaseStart)
	}
}

// EndTick closes the last phase and records the tick.
func (p *PerfCollector) EndTick() {
	now := time.Now()
	p.closePhase(now)
	p.phase = -1
	p.current.total = now.Sub(p.tickStart)

	p.samples[p.next] = p.current
	p.next = (p.next + 1) % len(p.samples)
	if p.filled < len(p.samples) {
		p.filled++
	}
}

// RecordFrame marks a presented frame.
func (p *PerfCollector) RecordFrame() {
	now := time.Now()
	if !p.lastFrame.IsZero() {
		p.frame = now.Sub(p.lastFrame)
	}
	p.lastFrame = now
}

// PerfStats aggregates the current window.
type PerfStats struct {
	AvgTick time.Duration
	MinTick time.Duration
	MaxTick time.Duration

	// Share of the average tick spent in each phase, indexed like Phases.
	PhasePct [numPhases]float64

	TicksPerSecond float64

	FrameDuration time.Duration
	FPS           float64
}

// Pct returns the share of tick time spent in the named phase.
func (s PerfStats) Pct(phase string) float64 {
	if i := phaseIndex(phase); i >= 0 {
		return s.PhasePct[i]
	}
	return 0
}

// Stats computes the window aggregates.
func (p *PerfCollector) Stats() PerfStats {
	s := PerfStats{FrameDuration: p.frame}
	if p.frame > 0 {
		s.FPS = float64(time.Second) / float64(p.frame)
	}
	if p.filled == 0 {
		return s
	}

	ticks := make([]float64, p.filled)
	var phaseSum [numPhases]float64
	for i, smp := range p.samples[:p.filled] {
		ticks[i] = float64(smp.total)
		for j, d := range smp.phases {
			phaseSum[j] += float64(d)
		}
	}

	avg := stat.Mean(ticks, nil)
	s.AvgTick = time.Duration(avg)
	s.MinTick = time.Duration(floats.Min(ticks))
	s.MaxTick = time.Duration(floats.Max(ticks))
	if avg > 0 {
		s.TicksPerSecond = float64(time.Second) / avg
		total := floats.Sum(ticks)
		for j, sum := range phaseSum {
			s.PhasePct[j] = sum / total * 100
		}
	}
	return s
}

// LogValue implements slog.LogValuer.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_tick_us", s.AvgTick.Microseconds()),
		slog.Int64("min_tick_us", s.MinTick.Microseconds()),
		slog.Int64("max_tick_us", s.MaxTick.Microseconds()),
		slog.Int("ticks_per_sec", int(s.TicksPerSecond)),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Int("fps", int(s.FPS)))
	}
	for i, name := range Phases {
		if s.PhasePct[i] > 0.1 {
			attrs = append(attrs, slog.Float64(name+"_pct", float64(int(s.PhasePct[i]*10))/10))
		}
	}
	return slog.GroupValue(attrs...)
}

// LogStats logs the window as a "perf" record.
func (s PerfStats) LogStats() {
	slog.Info("perf", "perf", s)
}

// PerfStatsCSV is one perf.csv row.
type PerfStatsCSV struct {
	WindowEnd    int64   `csv:"window_end"`
	AvgTickUS    int64   `csv:"avg_tick_us"`
	MinTickUS    int64   `csv:"min_tick_us"`
	MaxTickUS    int64   `csv:"max_tick_us"`
	TicksPerSec  float64 `csv:"ticks_per_sec"`
	FPS          float64 `csv:"fps"`
	FliesPct     float64 `csv:"flies_pct"`
	FrogsPct     float64 `csv:"frogs_pct"`
	FernsPct     float64 `csv:"ferns_pct"`
	TelemetryPct float64 `csv:"telemetry_pct"`
}

// ToCSV flattens the stats for the window ending at windowEnd.
func (s PerfStats) ToCSV(windowEnd int64) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:    windowEnd,
		AvgTickUS:    s.AvgTick.Microseconds(),
		MinTickUS:    s.MinTick.Microseconds(),
		MaxTickUS:    s.MaxTick.Microseconds(),
		TicksPerSec:  s.TicksPerSecond,
		FPS:          s.FPS,
		FliesPct:     s.PhasePct[0],
		FrogsPct:     s.PhasePct[1],
		FernsPct:     s.PhasePct[2],
		TelemetryPct: s.PhasePct[3],
	}
}
