package component

import (
	"math"

	"github.com/ohowland/feems/internal/pkg/fuel"
)

// RunFuelCell evaluates a fuel cell at pOutKW using its efficiency
// curve and fuel, following the same efficiency-to-mass-flow
// derivation as COGAS (spec §4.3) since fuel cells have no BSFC curve
// either. RunFuelCell does not check MinSpecificPowerKW: an operating
// point below it is evaluated like any other. BelowMinSpecificPower
// reports that condition separately.
func RunFuelCell(c *Component, pOutKW float64, regime fuel.Regime) (RunPoint, error) {
	return RunCOGAS(c, pOutKW, regime)
}

// BelowMinSpecificPower reports whether load at pOutKW falls under the
// fuel cell's minimum sustainable specific power.
func BelowMinSpecificPower(c *Component, pOutKW float64) bool {
	return math.Abs(pOutKW) < c.MinSpecificPowerKW
}
