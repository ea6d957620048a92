// Package integrate implements the time-integration rules used to
// aggregate a per-timestep series into scalar energy/fuel/emission
// totals (spec §4.9): trapezoidal, composite Simpson (falling back to
// trapezoid on an odd remainder), and sum-with-interval for series
// that are already interval-valued. It also provides the running-hours
// accumulator.
package integrate

import "github.com/ohowland/feems/internal/pkg/feemstypes"

// Series integrates values[0..n-1] over constant step deltaT using
// rule, returning the scalar total (spec §4.9).
func Series(values []float64, deltaT float64, rule feemstypes.IntegrationRule) float64 {
	switch rule {
	case feemstypes.IntegrationSimpson:
		return simpson(values, deltaT)
	case feemstypes.IntegrationSumWithInterval:
		return sumWithInterval(values, deltaT)
	default:
		return trapezoid(values, deltaT)
	}
}

func trapezoid(values []float64, deltaT float64) float64 {
	if len(values) < 2 {
		return sumWithInterval(values, deltaT)
	}
	total := 0.0
	for i := 0; i < len(values)-1; i++ {
		total += (values[i] + values[i+1]) / 2 * deltaT
	}
	return total
}

// simpson applies the composite Simpson's rule over consecutive
// triples of samples; an odd-length remainder at the tail falls back
// to the trapezoid rule (spec §4.9).
func simpson(values []float64, deltaT float64) float64 {
	n := len(values)
	if n < 3 {
		return trapezoid(values, deltaT)
	}
	total := 0.0
	i := 0
	for ; i+2 < n; i += 2 {
		total += (deltaT / 3) * (values[i] + 4*values[i+1] + values[i+2])
	}
	if i < n-1 {
		total += trapezoid(values[i:], deltaT)
	}
	return total
}

// sumWithInterval treats every sample as already representing the
// value held over one interval of length deltaT (spec §4.9: `E =
// Σ P[t] · Δt`).
func sumWithInterval(values []float64, deltaT float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v * deltaT
	}
	return total
}

// RunningHours returns the accrued running hours for a status series
// sampled every deltaT seconds (spec §4.9: `Σ status[t]·Δt / 3600`).
func RunningHours(status []bool, deltaT float64) float64 {
	total := 0.0
	for _, on := range status {
		if on {
			total += deltaT
		}
	}
	return total / 3600.0
}
