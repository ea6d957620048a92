// Package result defines the stable Result structure returned by a
// system run (spec §6): aggregated fuel/GHG/emission totals, energy
// totals by role, running hours by source category, and the
// per-component detail rows consumers read time series from.
package result

import "github.com/ohowland/feems/internal/pkg/fuel"

// CO2EmissionTotalKG breaks total CO2-equivalent mass down by GHG
// accounting phase (spec §6).
type CO2EmissionTotalKG struct {
	WellToTank              float64
	TankToWake              float64
	WellToWake              float64
	TankToWakeWithoutSlip   float64
	TankToWakeFromGreenFuel float64
}

// DetailRow is one per-component, per-timestep record (spec §6
// detail_result).
type DetailRow struct {
	Name            string
	Kind            string
	SwitchboardID   uint32
	TimePoint       int
	PowerOutputKW   float64
	PowerInputKW    float64
	LoadRatio       float64
	Efficiency      float64
	FuelConsumption float64 // kg, this timestep
	CO2EmissionKG   float64
	NOxEmissionKG   float64
	RunningHoursHR  float64
	Status          bool
}

// RunningHoursTotalHR breaks total running hours down by source
// category (spec §6).
type RunningHoursTotalHR struct {
	MainEngines float64
	Genset      float64
	FuelCell    float64
	PTIPTO      float64
}

// EnergyTotalsMJ holds the energy-by-role totals (spec §6).
type EnergyTotalsMJ struct {
	ConsumptionElectric   float64
	ConsumptionMechanical float64
	ConsumptionPropulsion float64
	ConsumptionAuxiliary  float64
	InputMechanical       float64
	InputElectric         float64
	Stored                float64
}

// Result is the final, immutable output of a system run (spec §3
// Lifecycle: "Results are produced by a final aggregation pass and
// then immutable", spec §6).
type Result struct {
	MultiFuelConsumptionTotalKG fuel.FuelConsumption
	CO2EmissionTotalKG          CO2EmissionTotalKG
	TotalEmissionKG             map[string]float64 // keyed by EmissionSpecies.String()
	Energy                      EnergyTotalsMJ
	RunningHours                RunningHoursTotalHR
	DetailResult                []DetailRow
	Warnings                    []error
}

// New constructs an empty Result ready for incremental aggregation by
// a system's Run.
func New() *Result {
	return &Result{TotalEmissionKG: make(map[string]float64)}
}

// addTotals sums every scalar/map total field of other into r, leaving
// DetailResult/Warnings to the caller (MergeFreezeDuration and
// MergeExtendDuration differ only in how those two are combined).
func (r *Result) addTotals(other *Result) {
	for _, f := range other.MultiFuelConsumptionTotalKG.Entries() {
		r.MultiFuelConsumptionTotalKG.Add(f)
	}
	r.CO2EmissionTotalKG.WellToTank += other.CO2EmissionTotalKG.WellToTank
	r.CO2EmissionTotalKG.TankToWake += other.CO2EmissionTotalKG.TankToWake
	r.CO2EmissionTotalKG.WellToWake += other.CO2EmissionTotalKG.WellToWake
	r.CO2EmissionTotalKG.TankToWakeWithoutSlip += other.CO2EmissionTotalKG.TankToWakeWithoutSlip
	r.CO2EmissionTotalKG.TankToWakeFromGreenFuel += other.CO2EmissionTotalKG.TankToWakeFromGreenFuel

	for species, kg := range other.TotalEmissionKG {
		r.TotalEmissionKG[species] += kg
	}

	r.Energy.ConsumptionElectric += other.Energy.ConsumptionElectric
	r.Energy.ConsumptionMechanical += other.Energy.ConsumptionMechanical
	r.Energy.ConsumptionPropulsion += other.Energy.ConsumptionPropulsion
	r.Energy.ConsumptionAuxiliary += other.Energy.ConsumptionAuxiliary
	r.Energy.InputMechanical += other.Energy.InputMechanical
	r.Energy.InputElectric += other.Energy.InputElectric
	r.Energy.Stored += other.Energy.Stored

	r.RunningHours.MainEngines += other.RunningHours.MainEngines
	r.RunningHours.Genset += other.RunningHours.Genset
	r.RunningHours.FuelCell += other.RunningHours.FuelCell
	r.RunningHours.PTIPTO += other.RunningHours.PTIPTO

	r.Warnings = append(r.Warnings, other.Warnings...)
}

// MergeFreezeDuration combines other into r when both results were
// computed over the same timestep grid — the case for
// HybridPropulsionSystem combining one mechanical and one electric
// subsystem result (spec §4.8): totals add, and detail rows from the
// two subsystems simply concatenate, each keeping its own TimePoint
// since they already share one timeline.
func (r *Result) MergeFreezeDuration(other *Result) {
	r.addTotals(other)
	r.DetailResult = append(r.DetailResult, other.DetailResult...)
}

// MergeExtendDuration combines other into r when other covers a
// timestep grid that continues after r's (e.g. concatenating
// sequential voyage legs run as separate System invocations): totals
// add, and other's detail rows are appended with their TimePoint
// shifted past r's own last timepoint so the combined DetailResult
// still reads as one extended timeline.
func (r *Result) MergeExtendDuration(other *Result) {
	r.addTotals(other)
	offset := 0
	for _, row := range r.DetailResult {
		if row.TimePoint >= offset {
			offset = row.TimePoint + 1
		}
	}
	for _, row := range other.DetailResult {
		row.TimePoint += offset
		r.DetailResult = append(r.DetailResult, row)
	}
}
