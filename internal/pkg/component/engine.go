package component

import (
	"math"

	"github.com/ohowland/feems/internal/pkg/errs"
	"github.com/ohowland/feems/internal/pkg/feemstypes"
	"github.com/ohowland/feems/internal/pkg/fuel"
)

// EmissionRatesGPerS maps each reported species to its instantaneous
// mass emission rate.
type EmissionRatesGPerS map[feemstypes.EmissionSpecies]float64

// RunPoint is the result of evaluating an engine at a single output
// power: BSFC, the resulting fuel mass flow, per-species emission
// rates, and the fuel consumption bag (carrying any GHG-curve
// overrides already applied, spec §4.2 step 5).
type RunPoint struct {
	LoadRatio            float64
	BSFCGPerKWh          float64
	FuelMassFlowKGPerS   float64
	Emissions            EmissionRatesGPerS
	FuelConsumption      fuel.FuelConsumption
}

// RunEngine evaluates the single-fuel engine kernel at pOutKW (spec
// §4.2). regime selects which prescribed GHG factor table the emitted
// Fuel draws from.
func RunEngine(c *Component, pOutKW float64, regime fuel.Regime) (RunPoint, error) {
	load := clampLoad(math.Abs(pOutKW) / c.RatedPowerKW)
	bsfc, err := c.BSFCCurve.Lookup(load)
	if err != nil {
		return RunPoint{}, err
	}
	fuelMassFlow := bsfc * math.Abs(pOutKW) / 3.6e6

	emissions := make(EmissionRatesGPerS, len(c.EmissionCurves))
	var ch4Override, n2oOverride []float64
	for species, curveFn := range c.EmissionCurves {
		rate, err := curveFn.Lookup(load)
		if err != nil {
			return RunPoint{}, err
		}
		gPerS := rate * math.Abs(pOutKW) / 3600.0
		emissions[species] = gPerS
		switch species {
		case feemstypes.EmissionCH4:
			ch4Override = []float64{rate / bsfc}
		case feemstypes.EmissionN2O:
			n2oOverride = []float64{rate / bsfc}
		}
	}

	f, err := fuel.New(c.FuelKind, c.FuelOrigin, regime, c.ConsumerClass, []float64{fuelMassFlow})
	if err != nil {
		return RunPoint{}, err
	}
	if ch4Override != nil || n2oOverride != nil {
		f, err = fuel.WithEmissionCurveGHGOverrides(f, c.ConsumerClass, ch4Override, n2oOverride)
		if err != nil {
			return RunPoint{}, err
		}
	}

	if _, ok := emissions[feemstypes.EmissionNOX]; !ok && c.NOxMethod != feemstypes.NOxMethodCurve {
		emissions[feemstypes.EmissionNOX] = noxTierGPerKWh(c.NOxMethod, c.RatedSpeedRPM) * math.Abs(pOutKW) / 3600.0
	}

	return RunPoint{
		LoadRatio:          load,
		BSFCGPerKWh:        bsfc,
		FuelMassFlowKGPerS: fuelMassFlow,
		Emissions:          emissions,
		FuelConsumption:    fuel.NewFuelConsumption(f),
	}, nil
}

// RunEngineDualFuel evaluates the main+pilot fuel kernel (spec §4.2
// dual-fuel extension): both fuels share the same BSFC-derived load
// point, but only the main fuel receives the CH4/N2O curve override.
func RunEngineDualFuel(c *Component, pOutKW float64, regime fuel.Regime) (RunPoint, error) {
	main, err := RunEngine(c, pOutKW, regime)
	if err != nil {
		return RunPoint{}, err
	}

	load := main.LoadRatio
	pilotBSFC, err := c.PilotBSFCCurve.Lookup(load)
	if err != nil {
		return RunPoint{}, err
	}
	pilotMassFlow := pilotBSFC * math.Abs(pOutKW) / 3.6e6
	pilot, err := fuel.New(c.PilotFuelKind, c.PilotFuelOrigin, regime, fuel.ConsumerClassNone, []float64{pilotMassFlow})
	if err != nil {
		return RunPoint{}, err
	}

	main.FuelMassFlowKGPerS += pilotMassFlow
	main.FuelConsumption.Add(pilot)
	return main, nil
}

// RunEngineMultiFuel delegates to the active fuel mode (spec §4.2
// multi-fuel extension, §9: the selector is a read-only pre-run
// field, never mutated mid-run).
func RunEngineMultiFuel(c *Component, pOutKW float64, regime fuel.Regime) (RunPoint, error) {
	if c.ActiveFuelMode < 0 || c.ActiveFuelMode >= len(c.FuelModes) {
		return RunPoint{}, &errs.ConfigurationError{Reason: "active fuel mode index out of range"}
	}
	mode := c.FuelModes[c.ActiveFuelMode]
	delegate := *c
	delegate.BSFCCurve = mode.BSFCCurve
	delegate.FuelKind = mode.FuelKind
	delegate.FuelOrigin = mode.FuelOrigin
	delegate.EmissionCurves = mode.EmissionCurves
	return RunEngine(&delegate, pOutKW, regime)
}

// RunCOGAS evaluates the efficiency-curve-based COGAS kernel (spec
// §4.3): fuel mass is derived from the efficiency curve and LHV rather
// than from a BSFC curve, then an equivalent BSFC is back-computed so
// the CH4/N2O override transform (spec §4.2 step 5) applies
// identically.
func RunCOGAS(c *Component, pOutKW float64, regime fuel.Regime) (RunPoint, error) {
	load := clampLoad(math.Abs(pOutKW) / c.RatedPowerKW)
	eta, err := Efficiency(c, load)
	if err != nil {
		return RunPoint{}, err
	}
	fuelMassFlow := math.Abs(pOutKW) / (eta * c.LHVMJPerG * 1000.0)
	equivalentBSFC := fuelMassFlow * 3.6e6 / math.Abs(pOutKW)

	emissions := make(EmissionRatesGPerS, len(c.EmissionCurves))
	var ch4Override, n2oOverride []float64
	for species, curveFn := range c.EmissionCurves {
		rate, err := curveFn.Lookup(load)
		if err != nil {
			return RunPoint{}, err
		}
		emissions[species] = rate * math.Abs(pOutKW) / 3600.0
		switch species {
		case feemstypes.EmissionCH4:
			ch4Override = []float64{rate / equivalentBSFC}
		case feemstypes.EmissionN2O:
			n2oOverride = []float64{rate / equivalentBSFC}
		}
	}

	f, err := fuel.New(c.FuelKind, c.FuelOrigin, regime, c.ConsumerClass, []float64{fuelMassFlow})
	if err != nil {
		return RunPoint{}, err
	}
	if ch4Override != nil || n2oOverride != nil {
		f, err = fuel.WithEmissionCurveGHGOverrides(f, c.ConsumerClass, ch4Override, n2oOverride)
		if err != nil {
			return RunPoint{}, err
		}
	}

	return RunPoint{
		LoadRatio:          load,
		BSFCGPerKWh:        equivalentBSFC,
		FuelMassFlowKGPerS: fuelMassFlow,
		Emissions:          emissions,
		FuelConsumption:    fuel.NewFuelConsumption(f),
	}, nil
}

// noxTierGPerKWh implements the IMO MARPOL Annex VI Tier 1/2/3 NOx
// limit curves as a function of rated engine speed, used when
// NOxMethod selects a tier rather than an attached emission curve.
func noxTierGPerKWh(method feemstypes.NOxMethod, ratedSpeedRPM float64) float64 {
	n := ratedSpeedRPM
	switch {
	case n < 130:
		switch method {
		case feemstypes.NOxMethodTier1:
			return 17.0
		case feemstypes.NOxMethodTier2:
			return 14.4
		default:
			return 3.4
		}
	case n < 2000:
		switch method {
		case feemstypes.NOxMethodTier1:
			return 45.0 * math.Pow(n, -0.2)
		case feemstypes.NOxMethodTier2:
			return 44.0 * math.Pow(n, -0.23)
		default:
			return 9.0 * math.Pow(n, -0.2)
		}
	default:
		switch method {
		case feemstypes.NOxMethodTier1:
			return 9.8
		case feemstypes.NOxMethodTier2:
			return 7.7
		default:
			return 2.0
		}
	}
}
