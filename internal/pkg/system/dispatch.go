// Package system orchestrates the per-timestep power balance across
// nodes into a single run: ElectricPowerSystem, MechanicalPropulsionSystem,
// MechanicalPropulsionSystemWithElectricPowerSystem and
// HybridPropulsionSystem (spec §2 item 7, §4.6-§4.8).
package system

import (
	"github.com/ohowland/feems/internal/pkg/component"
	"github.com/ohowland/feems/internal/pkg/feemstypes"
	"github.com/ohowland/feems/internal/pkg/fuel"
)

// fuelFromComponent builds the aggregated Fuel entry for a
// fuel-bearing component's total mass consumed over a run, looked up
// from the regime table under the component's own fuel kind/origin
// and consumer class (spec §4.9 fuel mass total).
func fuelFromComponent(c *component.Component, regime fuel.Regime, totalKG float64) (fuel.Fuel, error) {
	return fuel.New(c.FuelKind, c.FuelOrigin, regime, c.ConsumerClass, []float64{totalKG})
}

// RunComponentKernel dispatches a source component's fuel/emission
// kernel by its Kind (spec §9: closed tagged-union dispatch, no open
// interface hierarchy). Components with no fuel kernel of their own
// (electric machines, converters, shore power, storages) return a zero
// RunPoint; storage SoC integration is handled separately by
// component.StepStorage.
func RunComponentKernel(c *component.Component, pOutKW float64, regime fuel.Regime) (component.RunPoint, error) {
	switch c.Kind {
	case feemstypes.ComponentKindMainEngine, feemstypes.ComponentKindAuxEngine, feemstypes.ComponentKindMainEngineWithGearbox,
		feemstypes.ComponentKindGenset:
		if len(c.FuelModes) > 0 {
			return component.RunEngineMultiFuel(c, pOutKW, regime)
		}
		if !c.PilotBSFCCurve.IsEmpty() {
			return component.RunEngineDualFuel(c, pOutKW, regime)
		}
		return component.RunEngine(c, pOutKW, regime)
	case feemstypes.ComponentKindCOGAS, feemstypes.ComponentKindCOGES:
		return component.RunCOGAS(c, pOutKW, regime)
	case feemstypes.ComponentKindFuelCell, feemstypes.ComponentKindFuelCellSystem:
		return component.RunFuelCell(c, pOutKW, regime)
	default:
		return component.RunPoint{}, nil
	}
}

// HasFuelKernel reports whether a component of this Kind carries its
// own fuel consumption (used to decide whether a source contributes to
// MultiFuelConsumptionTotalKG).
func HasFuelKernel(kind feemstypes.ComponentKind) bool {
	switch kind {
	case feemstypes.ComponentKindMainEngine, feemstypes.ComponentKindAuxEngine, feemstypes.ComponentKindMainEngineWithGearbox,
		feemstypes.ComponentKindGenset,
		feemstypes.ComponentKindCOGAS, feemstypes.ComponentKindCOGES,
		feemstypes.ComponentKindFuelCell, feemstypes.ComponentKindFuelCellSystem:
		return true
	default:
		return false
	}
}
