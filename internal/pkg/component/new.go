package component

import (
	"github.com/ohowland/feems/internal/pkg/curve"
	"github.com/ohowland/feems/internal/pkg/errs"
	"github.com/ohowland/feems/internal/pkg/feemstypes"
	"github.com/ohowland/feems/internal/pkg/fuel"
)

// NewEngine constructs a single-fuel Engine component.
func NewEngine(name string, ratedPowerKW, ratedSpeedRPM float64, bsfc curve.Curve, effCurve curve.Curve,
	kind fuel.Kind, origin fuel.Origin, cycle feemstypes.EngineCycle, noxMethod feemstypes.NOxMethod,
	emissionCurves map[feemstypes.EmissionSpecies]curve.Curve) (Component, error) {
	if bsfc.IsEmpty() {
		return Component{}, &errs.ConfigurationError{Reason: "engine requires a BSFC curve"}
	}
	c := New(name, feemstypes.ComponentKindMainEngine, feemstypes.PowerRoleSource, ratedPowerKW, effCurve)
	c.RatedSpeedRPM = ratedSpeedRPM
	c.BSFCCurve = bsfc
	c.FuelKind = kind
	c.FuelOrigin = origin
	c.Cycle = cycle
	c.NOxMethod = noxMethod
	c.EmissionCurves = emissionCurves
	return c, nil
}

// NewEngineDualFuel constructs a dual-fuel engine: a main Engine plus
// a pilot-fuel BSFC curve (spec §4.2 dual-fuel extension).
func NewEngineDualFuel(base Component, pilotBSFC curve.Curve, pilotKind fuel.Kind, pilotOrigin fuel.Origin) Component {
	base.PilotBSFCCurve = pilotBSFC
	base.PilotFuelKind = pilotKind
	base.PilotFuelOrigin = pilotOrigin
	return base
}

// NewEngineMultiFuel constructs a multi-fuel engine with a set of
// switchable FuelMode configurations and an initially active mode
// index (spec §4.2 multi-fuel extension, §9: active mode is read-only
// pre-run configuration).
func NewEngineMultiFuel(base Component, modes []FuelMode, activeIndex int) (Component, error) {
	if activeIndex < 0 || activeIndex >= len(modes) {
		return Component{}, &errs.ConfigurationError{Reason: "multi-fuel active mode index out of range"}
	}
	base.FuelModes = modes
	base.ActiveFuelMode = activeIndex
	return base, nil
}

// NewElectricMachine constructs a generator/motor/PTI-PTO electric
// machine: a pure efficiency-contract component with no fuel kernel of
// its own (it sits in a genset's SerialChain alongside an Engine).
func NewElectricMachine(name string, kind feemstypes.ComponentKind, role feemstypes.PowerRole, ratedPowerKW float64, effCurve curve.Curve) Component {
	return New(name, kind, role, ratedPowerKW, effCurve)
}

// NewConverter constructs a power-electronics conversion component
// (rectifier, inverter, active front end, transformer, power
// converter): a pure efficiency-contract transmission component.
func NewConverter(name string, kind feemstypes.ComponentKind, ratedPowerKW float64, effCurve curve.Curve) Component {
	return New(name, kind, feemstypes.PowerRoleTransmission, ratedPowerKW, effCurve)
}

// NewBattery constructs a Battery energy-storage component (spec
// §4.5).
func NewBattery(name string, ratedCapacityKWh, chargingRateC, dischargeRateC, soc0, effCharging, effDischarging, soeMin, soeMax, selfDischargePerDay float64) (Component, error) {
	if soeMin < 0 || soeMax > 1 || soeMin >= soeMax {
		return Component{}, &errs.ConfigurationError{Reason: "battery requires 0 <= soe_min < soe_max <= 1"}
	}
	if soc0 < soeMin || soc0 > soeMax {
		return Component{}, &errs.ConfigurationError{Reason: "battery soc0 outside [soe_min, soe_max]"}
	}
	ratedPowerKW := chargingRateC * ratedCapacityKWh
	if dischargeRateC*ratedCapacityKWh > ratedPowerKW {
		ratedPowerKW = dischargeRateC * ratedCapacityKWh
	}
	c := New(name, feemstypes.ComponentKindBattery, feemstypes.PowerRoleEnergyStorage, ratedPowerKW, curve.NewFlat(1.0))
	c.RatedCapacityKWh = ratedCapacityKWh
	c.ChargingRateC = chargingRateC
	c.DischargeRateC = dischargeRateC
	c.SoC0 = soc0
	c.EffCharging = effCharging
	c.EffDischarging = effDischarging
	c.SoeMin = soeMin
	c.SoeMax = soeMax
	c.SelfDischargePerDay = selfDischargePerDay
	return c, nil
}

// NewSupercapacitor constructs a Supercapacitor energy-storage
// component; it shares Battery's SoC-update algebra (spec §4.5).
func NewSupercapacitor(name string, ratedCapacityKWh, chargingRateC, dischargeRateC, soc0, effCharging, effDischarging, soeMin, soeMax, selfDischargePerDay float64) (Component, error) {
	c, err := NewBattery(name, ratedCapacityKWh, chargingRateC, dischargeRateC, soc0, effCharging, effDischarging, soeMin, soeMax, selfDischargePerDay)
	if err != nil {
		return Component{}, err
	}
	c.Kind = feemstypes.ComponentKindSupercapacitor
	return c, nil
}

// NewFuelCell constructs a FuelCell source component (spec §3).
func NewFuelCell(name string, ratedPowerKW float64, effCurve curve.Curve, lhvMJPerG float64, kind fuel.Kind, origin fuel.Origin, minSpecificPowerKW, startDelaySeconds float64) Component {
	c := New(name, feemstypes.ComponentKindFuelCell, feemstypes.PowerRoleSource, ratedPowerKW, effCurve)
	c.LHVMJPerG = lhvMJPerG
	c.FuelKind = kind
	c.FuelOrigin = origin
	c.ConsumerClass = fuel.ConsumerClassFuelCell
	c.MinSpecificPowerKW = minSpecificPowerKW
	c.StartDelaySeconds = startDelaySeconds
	return c
}

// NewShorePower constructs a shore-power connection source component.
func NewShorePower(name string, ratedPowerKW float64) Component {
	return New(name, feemstypes.ComponentKindShorePower, feemstypes.PowerRoleSource, ratedPowerKW, curve.NewFlat(1.0))
}

// NewCOGAS constructs a COGAS source component (spec §4.3).
func NewCOGAS(name string, ratedPowerKW float64, effCurve curve.Curve, lhvMJPerG float64, kind fuel.Kind, origin fuel.Origin,
	emissionCurves map[feemstypes.EmissionSpecies]curve.Curve) Component {
	c := New(name, feemstypes.ComponentKindCOGAS, feemstypes.PowerRoleSource, ratedPowerKW, effCurve)
	c.LHVMJPerG = lhvMJPerG
	c.FuelKind = kind
	c.FuelOrigin = origin
	c.EmissionCurves = emissionCurves
	return c
}

// NewPropeller constructs a propeller mechanical load (consumer role,
// no fuel kernel).
func NewPropeller(name string, ratedPowerKW float64) Component {
	return New(name, feemstypes.ComponentKindPropellerLoad, feemstypes.PowerRoleConsumer, ratedPowerKW, curve.NewFlat(1.0))
}

// NewGearbox constructs a mechanical gearbox transmission component.
func NewGearbox(name string, ratedPowerKW float64, effCurve curve.Curve) Component {
	return New(name, feemstypes.ComponentKindGearbox, feemstypes.PowerRoleTransmission, ratedPowerKW, effCurve)
}
