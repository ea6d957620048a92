package component

import (
	"math"

	"github.com/ohowland/feems/internal/pkg/curve"
)

// overloadTolerance is the margin above rated load that clampLoad
// allows: load ratios |P|/rated are clamped to [0, 1+overloadTolerance]
// per spec §4.2 step 1.
const overloadTolerance = 0.01

func clampLoad(load float64) float64 {
	if load < 0 {
		return 0
	}
	max := 1 + overloadTolerance
	if load > max {
		return max
	}
	return load
}

// Efficiency returns c.EffCurve evaluated at the absolute load ratio,
// clamped to the mandatory [0.01, 1.0] bounds (spec §4.1, §8).
func Efficiency(c *Component, load float64) (float64, error) {
	eta, err := c.EffCurve.Lookup(math.Abs(load))
	if err != nil {
		return 0, err
	}
	return math.Min(math.Max(eta, curve.EfficiencyFloor), curve.EfficiencyCeiling), nil
}

// SetPowerOutputFromInput propagates power forward through c: given a
// signed input power, returns the output power and load ratio (spec
// §4.1). Both positive is forward flow, both negative is reverse.
func SetPowerOutputFromInput(c *Component, pInKW float64) (pOutKW, load float64, err error) {
	load = clampLoad(math.Abs(pInKW) / c.RatedPowerKW)
	eta, err := Efficiency(c, load)
	if err != nil {
		return 0, 0, err
	}
	if pInKW >= 0 {
		return pInKW * eta, load, nil
	}
	return pInKW / eta, load, nil
}

// SetPowerInputFromOutput propagates power backward through c: given a
// signed output power, returns the required input power and load
// ratio (spec §4.1).
func SetPowerInputFromOutput(c *Component, pOutKW float64) (pInKW, load float64, err error) {
	load = clampLoad(math.Abs(pOutKW) / c.RatedPowerKW)
	eta, err := Efficiency(c, load)
	if err != nil {
		return 0, 0, err
	}
	if pOutKW >= 0 {
		return pOutKW / eta, load, nil
	}
	return pOutKW * eta, load, nil
}
