package system

import (
	"github.com/ohowland/feems/internal/pkg/component"
	"github.com/ohowland/feems/internal/pkg/errs"
	"github.com/ohowland/feems/internal/pkg/feemstypes"
	"github.com/ohowland/feems/internal/pkg/integrate"
	"github.com/ohowland/feems/internal/pkg/node"
	"github.com/ohowland/feems/internal/pkg/result"
)

// Shaftline is a mechanical bus node: one or more main engines, a
// propeller load, and (optionally) the electric machine coupling the
// shaft to the electric side as PTI/PTO (spec §4.7).
//
// PTIPTODemandKW is the net PTI/PTO contribution seen by the shaftline
// for every timestep: positive means PTO, power extracted from the
// shaft to feed the electric side (adds to what the main engines must
// supply); negative means PTI, power injected from the electric side
// (reduces what the main engines must supply). The series is a given
// input, standalone and when run as part of
// MechanicalPropulsionSystemWithElectricPowerSystem; there the shaftline
// is solved first and the series is then projected onto the coupled
// switchboard's demand (see combined.go).
type Shaftline struct {
	ID                    uint32
	MainEngineIdx         []int
	PTIPTOIdx             []int
	PropellerDemandKW     []float64 // length T, propeller + auxiliary mechanical load
	PTIPTODemandKW        []float64 // length T, signed net PTI/PTO contribution
}

// MechanicalPropulsionSystem is the system solver for a mechanical
// propulsion plant: one or more shaftlines, each independently
// balanced per timestep (spec §4.7).
type MechanicalPropulsionSystem struct {
	Arena      []component.Component
	Shaftlines []Shaftline
}

// NewMechanicalPropulsionSystem constructs a MechanicalPropulsionSystem
// over a shared component arena (spec §9: flat arena of indexed
// components).
func NewMechanicalPropulsionSystem(arena []component.Component, shaftlines []Shaftline) MechanicalPropulsionSystem {
	return MechanicalPropulsionSystem{Arena: arena, Shaftlines: shaftlines}
}

func (s MechanicalPropulsionSystem) timestepCount() int {
	if len(s.Shaftlines) == 0 {
		return 0
	}
	return len(s.Shaftlines[0].PropellerDemandKW)
}

// Run executes the full balance + kernel + integration pipeline over
// every timestep and every shaftline (spec §4.7, §4.9).
func (s MechanicalPropulsionSystem) Run(opts Options) (*result.Result, error) {
	t := s.timestepCount()
	for i := range s.Arena {
		s.Arena[i].ResetOutputs(t)
	}

	res := result.New()
	fuelMassByComponent := make(map[int][]float64)
	co2ByComponent := make(map[int][]float64)
	noxByComponent := make(map[int][]float64)

	for step := 0; step < t; step++ {
		for si := range s.Shaftlines {
			if err := s.balanceOneShaftlineStep(si, step, opts, fuelMassByComponent, co2ByComponent, noxByComponent); err != nil {
				if pb, ok := err.(*errs.PowerBalance); ok && opts.IgnorePowerBalance {
					res.Warnings = append(res.Warnings, pb)
					continue
				}
				return nil, err
			}
		}
	}

	s.aggregate(res, opts, fuelMassByComponent, co2ByComponent, noxByComponent)
	return res, nil
}

func (s MechanicalPropulsionSystem) balanceOneShaftlineStep(si, step int, opts Options,
	fuelMassByComponent, co2ByComponent, noxByComponent map[int][]float64) error {

	sl := s.Shaftlines[si]

	demand := sl.PropellerDemandKW[step]
	var ptiContribution float64
	if step < len(sl.PTIPTODemandKW) {
		ptiContribution = sl.PTIPTODemandKW[step]
	}
	demand += ptiContribution

	anyMainEngineRunning := false
	for _, ci := range sl.MainEngineIdx {
		if s.Arena[ci].Status[step] {
			anyMainEngineRunning = true
			break
		}
	}

	// Full PTI mode (spec §4.7): every main engine off, propeller driven
	// entirely by PTI. The PTI contribution must already cover demand;
	// otherwise the shaft cannot be balanced.
	if !anyMainEngineRunning {
		for _, ci := range sl.MainEngineIdx {
			c := &s.Arena[ci]
			c.PowerOutputKW[step] = 0
			c.LoadRatio[step] = 0
		}
		if demand > 1e-6 {
			if opts.IgnorePowerBalance {
				// fall through: residual demand recorded as a warning by the
				// caller via the returned error, main engines stay at zero.
			}
			return &errs.PowerBalance{Reason: "full PTI mode: PTI contribution insufficient to cover propeller demand", ResidualKW: demand}
		}
		s.stepPTIPTO(sl, step)
		return nil
	}

	sources := make([]node.SourceInput, 0, len(sl.MainEngineIdx))
	for _, ci := range sl.MainEngineIdx {
		c := &s.Arena[ci]
		sources = append(sources, node.SourceInput{
			Idx: ci, Name: c.Name, Status: c.Status[step], RatedPowerKW: c.RatedPowerKW,
			LoadSharingMode: c.LoadSharingMode[step], BaseLoadOrder: c.BaseLoadOrder,
		})
	}

	balResult, err := node.Balance(sources, demand, node.Options{
		MaxAllowedLoadFraction:    opts.maxGensetFraction(),
		AverageBaseLoadPercentage: opts.AverageBaseLoadPercentage,
		IgnorePowerBalance:        opts.IgnorePowerBalance,
		TimestepIdx:               step,
	})
	if err != nil {
		return err
	}

	for _, ci := range sl.MainEngineIdx {
		c := &s.Arena[ci]
		pOut := balResult.SharesKW[ci]
		c.PowerOutputKW[step] = pOut
		c.LoadRatio[step] = pOut / c.RatedPowerKW
		if !c.Status[step] {
			continue
		}
		rp, err := RunComponentKernel(c, pOut, opts.FuelRegime)
		if err != nil {
			return err
		}
		c.Efficiency[step] = 1.0
		fuelMassByComponent[ci] = append(fuelMassByComponent[ci], rp.FuelMassFlowKGPerS)
		co2, _ := rp.FuelConsumption.TotalCO2Emissions(c.ConsumerClass)
		co2ByComponent[ci] = append(co2ByComponent[ci], co2)
		noxByComponent[ci] = append(noxByComponent[ci], rp.Emissions[feemstypes.EmissionNOX]/1000.0)
	}

	s.stepPTIPTO(sl, step)
	return nil
}

// stepPTIPTO records the PTI/PTO electric machine's own time series
// from the shaftline's already-decided PTIPTODemandKW (the coupling
// power is a solver input, also under
// MechanicalPropulsionSystemWithElectricPowerSystem, see combined.go).
func (s MechanicalPropulsionSystem) stepPTIPTO(sl Shaftline, step int) {
	if step >= len(sl.PTIPTODemandKW) {
		return
	}
	contribution := sl.PTIPTODemandKW[step]
	for _, ci := range sl.PTIPTOIdx {
		c := &s.Arena[ci]
		c.PowerOutputKW[step] = contribution
		if c.RatedPowerKW > 0 {
			c.LoadRatio[step] = contribution / c.RatedPowerKW
		}
		eta, err := component.Efficiency(c, c.LoadRatio[step])
		if err == nil {
			c.Efficiency[step] = eta
		}
		c.Status[step] = contribution != 0
	}
}

func (s MechanicalPropulsionSystem) aggregate(res *result.Result, opts Options,
	fuelMassByComponent, co2ByComponent, noxByComponent map[int][]float64) {

	for i := range s.Arena {
		c := &s.Arena[i]
		if len(c.PowerOutputKW) == 0 {
			continue
		}
		energy := integrate.Series(c.PowerOutputKW, opts.TimestepSeconds, opts.IntegrationRule) / 1000.0
		switch c.Role {
		case feemstypes.PowerRoleSource:
			res.Energy.ConsumptionMechanical += energy
			res.Energy.InputMechanical += energy
		case feemstypes.PowerRoleConsumer:
			res.Energy.ConsumptionPropulsion += energy
		case feemstypes.PowerRolePTIPTO:
			if energy >= 0 {
				res.Energy.InputElectric += energy
			} else {
				res.Energy.InputMechanical -= energy
			}
		}

		if fm, ok := fuelMassByComponent[i]; ok {
			totalKG := integrate.Series(fm, opts.TimestepSeconds, opts.IntegrationRule)
			f, err := fuelFromComponent(c, opts.FuelRegime, totalKG)
			if err == nil {
				res.MultiFuelConsumptionTotalKG.Add(f)
			}
		}
		if co2, ok := co2ByComponent[i]; ok {
			total := integrate.Series(co2, opts.TimestepSeconds, opts.IntegrationRule)
			res.CO2EmissionTotalKG.TankToWake += total
			res.CO2EmissionTotalKG.WellToWake += total
		}
		if nox, ok := noxByComponent[i]; ok {
			res.TotalEmissionKG[feemstypes.EmissionNOX.String()] += integrate.Series(nox, opts.TimestepSeconds, opts.IntegrationRule)
		}

		hrs := integrate.RunningHours(c.Status, opts.TimestepSeconds)
		switch c.Kind {
		case feemstypes.ComponentKindMainEngine, feemstypes.ComponentKindMainEngineWithGearbox:
			res.RunningHours.MainEngines += hrs
		case feemstypes.ComponentKindFuelCell, feemstypes.ComponentKindFuelCellSystem:
			res.RunningHours.FuelCell += hrs
		case feemstypes.ComponentKindPTIPTO:
			res.RunningHours.PTIPTO += hrs
		}

		for tstep := range c.PowerOutputKW {
			row := buildDetailRow(c, tstep, opts.TimestepSeconds, fuelMassByComponent[i], co2ByComponent[i], noxByComponent[i])
			res.DetailResult = append(res.DetailResult, row)
		}
	}
}
