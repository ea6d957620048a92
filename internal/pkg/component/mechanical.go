package component

import "math"

// PropellerDemandKW returns the mechanical power a propeller load
// draws at a given load ratio: rated power times |loadRatio|, linear in
// the ratio (no curve is consulted). The propeller is a pure
// PowerRoleConsumer with no fuel/emission kernel of its own.
func PropellerDemandKW(c *Component, loadRatio float64) float64 {
	return c.RatedPowerKW * math.Abs(loadRatio)
}

// A gearbox reuses the generic efficiency contract
// (SetPowerOutputFromInput / SetPowerInputFromOutput): it is a
// transmission-role component whose EffCurve models mechanical loss,
// so no dedicated kernel is needed beyond the shared contract in
// contract.go.
