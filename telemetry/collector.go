package telemetry

import "github.com/pthm-cable/pond/world"

// Collector accumulates lifecycle events within census windows and
// produces WindowStats. It satisfies world.Observer.
type Collector struct {
	windowTicks     int64
	windowStartTick int64

	// Event counters for current window
	fernsMatured int
	fernsDied    int
	frogsLanded  int
}

var _ world.Observer = (*Collector)(nil)

// NewCollector creates a collector that flushes every windowTicks ticks.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{windowTicks: int64(windowTicks)}
}

// RecordFernMatured records a fern reaching its height cap.
func (c *Collector) RecordFernMatured() {
	c.fernsMatured++
}

// RecordFernDied records a fern reaching its age cap.
func (c *Collector) RecordFernDied() {
	c.fernsDied++
}

// RecordFrogLanded records a frog settling on the floor.
func (c *Collector) RecordFrogLanded() {
	c.frogsLanded++
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int64) bool {
	return currentTick-c.windowStartTick >= c.windowTicks
}

// Flush produces a WindowStats from census and resets counters for the
// next window.
func (c *Collector) Flush(census world.Census, seed uint64) WindowStats {
	flyX := Summarize(census.FlyX)
	flyY := Summarize(census.FlyY)
	mouth := Summarize(census.MouthAngles)
	heights := Summarize(census.FernHeights)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   census.Tick,
		Seed:            seed,

		Flies:        flyX.N,
		FlyCentroidX: flyX.Mean,
		FlyCentroidY: flyY.Mean,
		FlySpreadX:   flyX.Std,
		FlySpreadY:   flyY.Std,

		Frogs:        mouth.N,
		FrogsResting: census.FrogsResting,
		FrogsLanded:  c.frogsLanded,
		MouthMean:    mouth.Mean,
		MouthMin:     mouth.Min,
		MouthMax:     mouth.Max,

		Ferns:          heights.N,
		FernsJuvenile:  census.FernsJuvenile,
		FernsAdult:     census.FernsAdult,
		FernsDead:      census.FernsDead,
		FernsMatured:   c.fernsMatured,
		FernsDied:      c.fernsDied,
		FernHeightMean: heights.Mean,
		FernHeightP10:  heights.P10,
		FernHeightP50:  heights.P50,
		FernHeightP90:  heights.P90,
	}

	c.Reset(census.Tick)
	return stats
}

// Reset starts a new window at tick and clears event counters.
// Called after a reseed so windows line up with the new run.
func (c *Collector) Reset(tick int64) {
	c.windowStartTick = tick
	c.fernsMatured = 0
	c.fernsDied = 0
	c.frogsLanded = 0
}

// WindowTicks returns the number of ticks per window.
func (c *Collector) WindowTicks() int64 {
	return c.windowTicks
}
