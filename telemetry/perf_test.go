package telemetry

import (
	"testing"
	"time"

	"github.com/pthm-cable/pond/config"
	"github.com/pthm-cable/pond/world"
)

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	// Simulate a few ticks
	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseFlies)
		time.Sleep(100 * time.Microsecond)
		pc.StartPhase(PhaseFrogs)
		time.Sleep(200 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()

	// Verify we got timing data
	if stats.AvgTick <= 0 {
		t.Error("expected positive average tick duration")
	}
	if stats.MinTick > stats.AvgTick || stats.AvgTick > stats.MaxTick {
		t.Errorf("min/avg/max out of order: %v %v %v", stats.MinTick, stats.AvgTick, stats.MaxTick)
	}

	if stats.Pct(PhaseFlies) <= 0 {
		t.Error("expected flies phase to be tracked")
	}
	if stats.Pct(PhaseFrogs) <= 0 {
		t.Error("expected frogs phase to be tracked")
	}
	if stats.Pct(PhaseFerns) != 0 {
		t.Errorf("ferns phase never ran, got %v%%", stats.Pct(PhaseFerns))
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(5) // Small window

	// Fill window completely
	for i := 0; i < 10; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseFlies)
		pc.EndTick()
	}

	stats := pc.Stats()

	// Should have data
	if stats.AvgTick <= 0 {
		t.Error("expected positive average tick duration after window filled")
	}

	if stats.TicksPerSecond <= 0 {
		t.Error("expected positive ticks per second")
	}
}

func TestPerfCollector_PhasePercentages(t *testing.T) {
	pc := NewPerfCollector(10)

	// Simulate with uneven phase durations
	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseFlies)
		time.Sleep(10 * time.Microsecond)
		pc.StartPhase(PhaseFerns)
		time.Sleep(2 * time.Millisecond)
		pc.EndTick()
	}

	stats := pc.Stats()

	fastPct := stats.Pct(PhaseFlies)
	slowPct := stats.Pct(PhaseFerns)

	// Slow phase should take more % than fast
	if slowPct <= fastPct {
		t.Errorf("expected slow phase (%v%%) > fast phase (%v%%)", slowPct, fastPct)
	}
	if sum := fastPct + slowPct; sum > 100+1e-9 {
		t.Errorf("phase shares sum to %v%%", sum)
	}
}

func TestPerfCollector_UnknownPhaseCountsOnlyTowardTick(t *testing.T) {
	pc := NewPerfCollector(4)
	pc.StartTick()
	pc.StartPhase("render")
	time.Sleep(time.Millisecond)
	pc.EndTick()

	stats := pc.Stats()
	if stats.AvgTick < time.Millisecond {
		t.Errorf("tick %v should include the untracked phase", stats.AvgTick)
	}
	if stats.PhasePct != [numPhases]float64{} {
		t.Errorf("untracked phase leaked into %v", stats.PhasePct)
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	pc := NewPerfCollector(10)

	stats := pc.Stats()

	// Empty collector should return zero values without panicking
	if stats.AvgTick != 0 || stats.TicksPerSecond != 0 {
		t.Error("expected zero tick timing for empty collector")
	}
	if stats.Pct(PhaseFlies) != 0 || stats.Pct("unknown") != 0 {
		t.Error("expected zero phase shares for empty collector")
	}
}

func TestPerfCollector_FrameTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	// First call establishes baseline
	pc.RecordFrame()
	time.Sleep(16 * time.Millisecond) // ~60fps frame time
	// Second call measures duration
	pc.RecordFrame()

	stats := pc.Stats()

	if stats.FrameDuration < 15*time.Millisecond {
		t.Errorf("expected frame duration >= 15ms, got %v", stats.FrameDuration)
	}

	if stats.FPS <= 0 {
		t.Error("expected positive FPS")
	}

	// With 16ms frames, expect ~60 FPS (allow range 40-80)
	if stats.FPS < 40 || stats.FPS > 80 {
		t.Errorf("expected FPS between 40-80 with 16ms frame time, got %v", stats.FPS)
	}
}

func TestPerfCollector_WorldPhases(t *testing.T) {
	w, err := world.New(config.Default(), 7)
	if err != nil {
		t.Fatalf("world.New failed: %v", err)
	}
	pc := NewPerfCollector(10)
	w.SetPhaseTimer(pc)

	for i := 0; i < 3; i++ {
		pc.StartTick()
		w.Step()
		pc.StartPhase(PhaseTelemetry)
		pc.EndTick()
	}

	stats := pc.Stats()
	var sum float64
	for _, phase := range Phases {
		sum += stats.Pct(phase)
	}
	if sum <= 0 || sum > 100+1e-9 {
		t.Errorf("phase shares sum to %v%%, want (0, 100]", sum)
	}

	row := stats.ToCSV(w.Tick())
	if row.WindowEnd != 3 {
		t.Errorf("WindowEnd = %d, want 3", row.WindowEnd)
	}
	if row.FliesPct != stats.Pct(PhaseFlies) || row.TelemetryPct != stats.Pct(PhaseTelemetry) {
		t.Errorf("row %+v does not match %v", row, stats.PhasePct)
	}
}
