package main

import "github.com/pthm-cable/pond/config"

// ParamSpec defines a single tunable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all tunable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of tunable parameters.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "fern_growth_rate", Path: "fern.growth_rate", Min: 0.2, Max: 3.0, Default: 1.0},
			// Lower end of the age cap draw; the span of the base config is kept
			{Name: "fern_age_cap", Path: "fern.age_cap.min", Min: 50, Max: 1000, Default: 200},
			{Name: "fly_jitter", Path: "fly.jitter", Min: 0.1, Max: 5.0, Default: 1.0},
			{Name: "frog_sink_rate", Path: "frog.sink_rate", Min: 0.1, Max: 5.0, Default: 1.0},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		clamped[i] = min(max(v[i], spec.Min), spec.Max)
	}
	return clamped
}

// ApplyToConfig writes clamped parameter values into cfg.
// Order must match Specs order.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	clamped := pv.Clamp(values)

	cfg.Fern.GrowthRate = clamped[0]

	span := cfg.Fern.AgeCap.Max - cfg.Fern.AgeCap.Min
	if span < 1 {
		span = 1
	}
	cfg.Fern.AgeCap.Min = int(clamped[1])
	cfg.Fern.AgeCap.Max = cfg.Fern.AgeCap.Min + span

	cfg.Fly.Jitter = clamped[2]
	cfg.Frog.SinkRate = clamped[3]
}

// ExtractFromConfig reads the current parameter values from cfg.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	return []float64{
		cfg.Fern.GrowthRate,
		float64(cfg.Fern.AgeCap.Min),
		cfg.Fly.Jitter,
		cfg.Frog.SinkRate,
	}
}
