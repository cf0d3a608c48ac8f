// Package telemetry tracks pond census windows, lifecycle events,
// milestones and step timing, and writes them as CSV.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a census window.
type WindowStats struct {
	WindowStartTick int64  `csv:"-"`
	WindowEndTick   int64  `csv:"window_end"`
	Seed            uint64 `csv:"seed"`

	// Flies
	Flies        int     `csv:"flies"`
	FlyCentroidX float64 `csv:"fly_centroid_x"`
	FlyCentroidY float64 `csv:"fly_centroid_y"`
	FlySpreadX   float64 `csv:"fly_spread_x"`
	FlySpreadY   float64 `csv:"fly_spread_y"`

	// Frogs
	Frogs        int     `csv:"frogs"`
	FrogsResting int     `csv:"frogs_resting"`
	FrogsLanded  int     `csv:"frogs_landed"`
	MouthMean    float64 `csv:"mouth_mean"`
	MouthMin     float64 `csv:"mouth_min"`
	MouthMax     float64 `csv:"mouth_max"`

	// Ferns
	Ferns          int     `csv:"ferns"`
	FernsJuvenile  int     `csv:"ferns_juvenile"`
	FernsAdult     int     `csv:"ferns_adult"`
	FernsDead      int     `csv:"ferns_dead"`
	FernsMatured   int     `csv:"ferns_matured"`
	FernsDied      int     `csv:"ferns_died"`
	FernHeightMean float64 `csv:"fern_height_mean"`
	FernHeightP10  float64 `csv:"fern_height_p10"`
	FernHeightP50  float64 `csv:"fern_height_p50"`
	FernHeightP90  float64 `csv:"fern_height_p90"`
}

// Summary describes a sample distribution.
type Summary struct {
	N             int
	Mean, Std     float64
	Min, Max      float64
	P10, P50, P90 float64
}

// Summarize computes distribution statistics for values. Std is the
// population standard deviation. An empty slice yields a zero Summary.
func Summarize(values []float64) Summary {
	n := len(values)
	if n == 0 {
		return Summary{}
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	mean, std := stat.PopMeanStdDev(sorted, nil)
	return Summary{
		N:    n,
		Mean: mean,
		Std:  std,
		Min:  floats.Min(sorted),
		Max:  floats.Max(sorted),
		P10:  stat.Quantile(0.10, stat.Empirical, sorted, nil),
		P50:  stat.Quantile(0.50, stat.Empirical, sorted, nil),
		P90:  stat.Quantile(0.90, stat.Empirical, sorted, nil),
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_start", s.WindowStartTick),
		slog.Int64("window_end", s.WindowEndTick),
		slog.Uint64("seed", s.Seed),
		slog.Int("flies", s.Flies),
		slog.Float64("fly_spread_x", s.FlySpreadX),
		slog.Float64("fly_spread_y", s.FlySpreadY),
		slog.Int("frogs", s.Frogs),
		slog.Int("frogs_resting", s.FrogsResting),
		slog.Float64("mouth_mean", s.MouthMean),
		slog.Int("ferns", s.Ferns),
		slog.Int("ferns_juvenile", s.FernsJuvenile),
		slog.Int("ferns_adult", s.FernsAdult),
		slog.Int("ferns_dead", s.FernsDead),
		slog.Float64("fern_height_mean", s.FernHeightMean),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"seed", s.Seed,
		"flies", s.Flies,
		"fly_centroid_x", s.FlyCentroidX,
		"fly_centroid_y", s.FlyCentroidY,
		"fly_spread_x", s.FlySpreadX,
		"fly_spread_y", s.FlySpreadY,
		"frogs", s.Frogs,
		"frogs_resting", s.FrogsResting,
		"frogs_landed", s.FrogsLanded,
		"mouth_mean", s.MouthMean,
		"mouth_min", s.MouthMin,
		"mouth_max", s.MouthMax,
		"ferns", s.Ferns,
		"ferns_juvenile", s.FernsJuvenile,
		"ferns_adult", s.FernsAdult,
		"ferns_dead", s.FernsDead,
		"ferns_matured", s.FernsMatured,
		"ferns_died", s.FernsDied,
		"fern_height_mean", s.FernHeightMean,
		"fern_height_p10", s.FernHeightP10,
		"fern_height_p50", s.FernHeightP50,
		"fern_height_p90", s.FernHeightP90,
	)
}
