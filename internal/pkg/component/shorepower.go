package component

import "math"

// RunShorePower evaluates a shore-power connection at pOutKW. Shore
// power is treated as a priority source (spec §4.6 step 2) consuming
// no onboard fuel and reporting no combustion emissions; only load
// ratio is derived from the connection's rated capacity.
func RunShorePower(c *Component, pOutKW float64) (loadRatio float64) {
	return clampLoad(math.Abs(pOutKW) / c.RatedPowerKW)
}
