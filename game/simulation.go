package game

import (
	"log/slog"

	"github.com/pthm-cable/pond/telemetry"
)

// Update runs one graphical frame's worth of simulation: apply the controls
// clicked last frame and keyboard input, then advance stepsPerUpdate ticks
// unless paused.
func (g *Game) Update() {
	g.applyControls()
	g.handleInput()

	if g.paused {
		return
	}
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step()
	}
}

// UpdateHeadless advances stepsPerUpdate ticks without touching raylib.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step()
	}
}

// step advances the world one tick and flushes telemetry at window ends.
func (g *Game) step() {
	g.perfCollector.StartTick()
	g.world.Step()

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.flushTelemetry()
	g.perfCollector.EndTick()
}

// flushTelemetry writes a census window and any milestones it triggers.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.world.Tick()) {
		return
	}

	stats := g.collector.Flush(g.world.Census(), g.world.Seed())
	perfStats := g.perfCollector.Stats()

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if err := g.outputManager.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
	if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}

	for _, bm := range g.bookmarks.Check(stats) {
		if g.logStats {
			bm.LogBookmark()
		}
		if err := g.outputManager.WriteBookmark(bm); err != nil {
			slog.Error("failed to write bookmark", "error", err)
		}
	}
}
