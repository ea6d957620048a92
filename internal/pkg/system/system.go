package system

import (
	"github.com/ohowland/feems/internal/pkg/component"
	"github.com/ohowland/feems/internal/pkg/errs"
	"github.com/ohowland/feems/internal/pkg/feemstypes"
	"github.com/ohowland/feems/internal/pkg/fuel"
	"github.com/ohowland/feems/internal/pkg/integrate"
	"github.com/ohowland/feems/internal/pkg/node"
	"github.com/ohowland/feems/internal/pkg/result"
)

// Options configures a single system Run (spec §6 run(System, options)).
type Options struct {
	FuelRegime                           fuel.Regime
	IntegrationRule                      feemstypes.IntegrationRule
	TimestepSeconds                      float64
	IgnorePowerBalance                   bool
	UserDefinedFuels                     []fuel.Fuel
	UserDefinedFuelsByComponent          map[string][]fuel.Fuel
	MaximumAllowedGensetLoadPercentage   float64 // 0..100, default 100
	MaximumAllowedFuelCellLoadPercentage float64
	AverageBaseLoadPercentage            float64
}

func (o Options) maxGensetFraction() float64 {
	if o.MaximumAllowedGensetLoadPercentage <= 0 {
		return 1.0
	}
	return o.MaximumAllowedGensetLoadPercentage / 100.0
}

// Switchboard is an electrical bus node: sources (gensets, shore power,
// fuel cells), storages, and the aggregate consumer demand seen at
// this bus for every timestep. ConsumerDemandKW is used as given: it is
// not reverse-propagated through any consumer SerialChain, here or in
// the topology layer.
type Switchboard struct {
	ID               uint32
	SourceIdx        []int
	StorageIdx       []int
	ConsumerDemandKW []float64 // length T
	BusTiePeers      []uint32
	BusTieClosed     [][]bool // BusTieClosed[i][t]: tie to BusTiePeers[i] closed at t
}

// ElectricPowerSystem is the system solver for a diesel-electric (or
// hybrid electric) plant: one or more switchboards, optionally joined
// by bus-ties; each group of bus-tied switchboards is balanced as one
// pool per timestep (spec §4.6).
type ElectricPowerSystem struct {
	Arena        []component.Component
	Switchboards []Switchboard
}

// NewElectricPowerSystem constructs an ElectricPowerSystem over a shared component
// arena (spec §9: flat arena of indexed components, no true cycles).
func NewElectricPowerSystem(arena []component.Component, switchboards []Switchboard) ElectricPowerSystem {
	return ElectricPowerSystem{Arena: arena, Switchboards: switchboards}
}

// timestepCount returns T, derived from the first switchboard's demand
// series.
func (s ElectricPowerSystem) timestepCount() int {
	if len(s.Switchboards) == 0 {
		return 0
	}
	return len(s.Switchboards[0].ConsumerDemandKW)
}

// Run executes the full balance + kernel + integration pipeline over
// every timestep and every switchboard (spec §4.6, §4.9).
func (s ElectricPowerSystem) Run(opts Options) (*result.Result, error) {
	t := s.timestepCount()
	for i := range s.Arena {
		s.Arena[i].ResetOutputs(t)
	}

	res := result.New()
	fuelMassByComponent := make(map[int][]float64) // arena idx -> per-timestep kg
	co2ByComponent := make(map[int][]float64)
	noxByComponent := make(map[int][]float64)

	pools := poolSwitchboards(s.Switchboards)

	for step := 0; step < t; step++ {
		for _, pool := range pools {
			if err := s.balanceOneStep(pool, step, opts, fuelMassByComponent, co2ByComponent, noxByComponent); err != nil {
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

// poolSwitchboards groups switchboards by bus-tie connectivity once per
// run: a static topological grouping over BusTiePeers. BusTieClosed is
// not consulted, here or in balanceOneStep, so switchboards joined by
// a listed tie are pooled at every timestep whether that tie is open
// or closed.
func poolSwitchboards(switchboards []Switchboard) [][]int {
	n := len(switchboards)
	idxByID := make(map[uint32]int, n)
	for i, sw := range switchboards {
		idxByID[sw.ID] = i
	}
	visited := make([]bool, n)
	var pools [][]int
	for i := range switchboards {
		if visited[i] {
			continue
		}
		queue := []int{i}
		visited[i] = true
		var pool []int
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			pool = append(pool, cur)
			for _, peerID := range switchboards[cur].BusTiePeers {
				pj, ok := idxByID[peerID]
				if ok && !visited[pj] {
					visited[pj] = true
					queue = append(queue, pj)
				}
			}
		}
		pools = append(pools, pool)
	}
	return pools
}

func (s ElectricPowerSystem) balanceOneStep(poolIdx []int, step int, opts Options,
	fuelMassByComponent, co2ByComponent, noxByComponent map[int][]float64) error {

	demand := 0.0
	for _, pi := range poolIdx {
		demand += s.Switchboards[pi].ConsumerDemandKW[step]
	}

	// Priority sources: shore power contributes up to its rated power.
	var shoreIdx []int
	var engineLikeIdx []int
	var storageIdx []int
	for _, pi := range poolIdx {
		for _, ci := range s.Switchboards[pi].SourceIdx {
			if s.Arena[ci].Kind == feemstypes.ComponentKindShorePower {
				shoreIdx = append(shoreIdx, ci)
			} else {
				engineLikeIdx = append(engineLikeIdx, ci)
			}
		}
		storageIdx = append(storageIdx, s.Switchboards[pi].StorageIdx...)
	}

	residual := demand
	for _, si := range shoreIdx {
		c := &s.Arena[si]
		if !c.Status[step] {
			continue
		}
		share := c.RatedPowerKW
		if share > residual {
			share = residual
		}
		if share < 0 {
			share = 0
		}
		c.PowerOutputKW[step] = share
		c.LoadRatio[step] = component.RunShorePower(c, share)
		c.Efficiency[step] = 1.0
		residual -= share
	}

	sources := make([]node.SourceInput, 0, len(engineLikeIdx))
	for _, ci := range engineLikeIdx {
		c := &s.Arena[ci]
		sources = append(sources, node.SourceInput{
			Idx: ci, Name: c.Name, Status: c.Status[step], RatedPowerKW: c.RatedPowerKW,
			LoadSharingMode: c.LoadSharingMode[step], BaseLoadOrder: c.BaseLoadOrder,
		})
	}

	sourceCapacity := 0.0
	maxFrac := opts.maxGensetFraction()
	for _, si := range sources {
		if si.Status {
			sourceCapacity += si.RatedPowerKW * maxFrac
		}
	}

	sourceDemand := residual
	storageDemand := 0.0
	if residual > sourceCapacity {
		sourceDemand = sourceCapacity
		storageDemand = residual - sourceCapacity
	}

	balResult, err := node.Balance(sources, sourceDemand, node.Options{
		MaxAllowedLoadFraction:    maxFrac,
		AverageBaseLoadPercentage: opts.AverageBaseLoadPercentage,
		IgnorePowerBalance:        opts.IgnorePowerBalance,
		TimestepIdx:               step,
	})
	if err != nil {
		return err
	}

	for _, ci := range engineLikeIdx {
		c := &s.Arena[ci]
		pOut := balResult.SharesKW[ci]
		c.PowerOutputKW[step] = pOut
		load := pOut / c.RatedPowerKW
		c.LoadRatio[step] = load
		if !c.Status[step] {
			continue
		}
		if HasFuelKernel(c.Kind) {
			rp, err := RunComponentKernel(c, pOut, opts.FuelRegime)
			if err != nil {
				return err
			}
			c.Efficiency[step] = 1.0
			fuelMassByComponent[ci] = append(fuelMassByComponent[ci], rp.FuelMassFlowKGPerS)
			co2, _ := rp.FuelConsumption.TotalCO2Emissions(c.ConsumerClass)
			co2ByComponent[ci] = append(co2ByComponent[ci], co2)
			noxByComponent[ci] = append(noxByComponent[ci], rp.Emissions[feemstypes.EmissionNOX]/1000.0)
		} else {
			eta, _ := component.Efficiency(c, load)
			c.Efficiency[step] = eta
		}
	}

	if len(storageIdx) > 0 && storageDemand > 1e-9 {
		if err := dispatchStorageDischarge(s.Arena, storageIdx, storageDemand, step, opts); err != nil {
			return err
		}
	} else {
		for _, sidx := range storageIdx {
			c := &s.Arena[sidx]
			soc, err := component.StepStorage(c, c.SoC[step], 0, opts.TimestepSeconds, !opts.IgnorePowerBalance)
			if err != nil {
				return err
			}
			c.SoC[step+1] = soc.SoCNext
			c.PowerOutputKW[step] = -soc.PowerInKW
			c.Status[step] = false
		}
	}

	return nil
}

// dispatchStorageDischarge covers a peak-shaving shortfall (spec
// worked example §8 scenario 4) by discharging storages in proportion
// to their discharge capacity, capping each at its C-rate.
func dispatchStorageDischarge(arena []component.Component, storageIdx []int, neededKW float64, step int, opts Options) error {
	totalCapacity := 0.0
	for _, si := range storageIdx {
		c := &arena[si]
		totalCapacity += c.DischargeRateC * c.RatedCapacityKWh
	}
	for _, si := range storageIdx {
		c := &arena[si]
		capacity := c.DischargeRateC * c.RatedCapacityKWh
		share := 0.0
		if totalCapacity > 0 {
			share = neededKW * (capacity / totalCapacity)
		}
		step0, err := component.StepStorage(c, c.SoC[step], -share, opts.TimestepSeconds, !opts.IgnorePowerBalance)
		if err != nil {
			return err
		}
		c.SoC[step+1] = step0.SoCNext
		c.PowerOutputKW[step] = -step0.PowerInKW // positive = discharging into the bus
		c.Status[step] = true
	}
	return nil
}

// aggregate rolls every component's per-timestep series up into the
// final Result (spec §4.9, §6).
func (s ElectricPowerSystem) aggregate(res *result.Result, opts Options,
	fuelMassByComponent, co2ByComponent, noxByComponent map[int][]float64) {

	for i := range s.Arena {
		c := &s.Arena[i]
		if len(c.PowerOutputKW) == 0 {
			continue
		}
		// integrate.Series over kW and seconds yields kW*s = kJ; divide by 1000 for MJ.
		energy := integrate.Series(c.PowerOutputKW, opts.TimestepSeconds, opts.IntegrationRule) / 1000.0
		switch c.Role {
		case feemstypes.PowerRoleSource:
			res.Energy.ConsumptionElectric += energy
			res.Energy.InputElectric += energy
		case feemstypes.PowerRoleConsumer:
			res.Energy.ConsumptionElectric += energy
		case feemstypes.PowerRoleEnergyStorage:
			res.Energy.Stored += energy
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
		case feemstypes.ComponentKindMainEngine, feemstypes.ComponentKindGenset, feemstypes.ComponentKindAuxEngine:
			res.RunningHours.Genset += hrs
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

// buildDetailRow reports a component's fuel/CO2/NOx quantity for a
// single timestep. fuelRate/co2Rate/noxRate hold rates (kg/s), one
// entry per timestep the component actually ran; buildDetailRow scales
// by deltaT to report the quantity consumed over that step.
func buildDetailRow(c *component.Component, tstep int, deltaT float64, fuelRate, co2Rate, noxRate []float64) result.DetailRow {
	// ran is tstep's position among the timesteps the component ran.
	ran := -1
	if c.Status[tstep] {
		for _, on := range c.Status[:tstep+1] {
			if on {
				ran++
			}
		}
	}
	var fuelAt, co2At, noxAt float64
	if ran >= 0 && ran < len(fuelRate) {
		fuelAt = fuelRate[ran] * deltaT
	}
	if ran >= 0 && ran < len(co2Rate) {
		co2At = co2Rate[ran] * deltaT
	}
	if ran >= 0 && ran < len(noxRate) {
		noxAt = noxRate[ran] * deltaT
	}
	return result.DetailRow{
		Name:            c.Name,
		Kind:            c.Kind.String(),
		SwitchboardID:   c.SwitchboardOrShaftlineID,
		TimePoint:       tstep,
		PowerOutputKW:   c.PowerOutputKW[tstep],
		PowerInputKW:    c.PowerInputKW[tstep],
		LoadRatio:       c.LoadRatio[tstep],
		Efficiency:      c.Efficiency[tstep],
		FuelConsumption: fuelAt,
		CO2EmissionKG:   co2At,
		NOxEmissionKG:   noxAt,
		Status:          c.Status[tstep],
	}
}
