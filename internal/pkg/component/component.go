// Package component implements the atomic machinery components: the
// load/efficiency contract shared by every variant, and the per-kind
// fuel/emission kernels (engine, dual-fuel engine, multi-fuel engine,
// electric machine, converter, battery, supercapacitor, fuel cell,
// shore power, COGAS, and the mechanical propeller/gearbox family).
//
// Per the redesign note carried from the source system, dispatch is a
// closed tagged union: a single Component struct carries a Kind tag
// plus the fields relevant to that kind, and behavior is expressed as
// free functions that switch on Kind rather than an open interface
// hierarchy.
package component

import (
	"github.com/google/uuid"

	"github.com/ohowland/feems/internal/pkg/curve"
	"github.com/ohowland/feems/internal/pkg/feemstypes"
	"github.com/ohowland/feems/internal/pkg/fuel"
)

// FuelMode is one switchable fuel configuration of an EngineMultiFuel
// component (spec §4.2, §9: "the active fuel is a read-only field;
// switching requires producing a derived engine instance").
type FuelMode struct {
	Name           string
	BSFCCurve      curve.Curve
	FuelKind       fuel.Kind
	FuelOrigin     fuel.Origin
	EmissionCurves map[feemstypes.EmissionSpecies]curve.Curve
}

// Component is the closed tagged-union value for every physical
// machinery variant the core recognizes. Fields outside a variant's
// relevant subset are left at their zero value and ignored by the
// kernels that dispatch on Kind.
type Component struct {
	// Common fields (spec §3 Component).
	UID                      uuid.UUID
	Name                     string
	Kind                     feemstypes.ComponentKind
	Role                     feemstypes.PowerRole
	RatedPowerKW             float64
	RatedSpeedRPM            float64
	EffCurve                 curve.Curve
	SwitchboardOrShaftlineID uint32
	RampUpLimitPercentPerS   float64 // advisory metadata only, spec §9 Open Questions
	RampDownLimitPercentPerS float64
	BaseLoadOrder            int // 0 = none

	// Engine family (Engine, EngineDualFuel, EngineMultiFuel, COGAS,
	// and the mechanical main-engine variants).
	BSFCCurve        curve.Curve
	FuelKind         fuel.Kind
	FuelOrigin       fuel.Origin
	Cycle            feemstypes.EngineCycle
	NOxMethod        feemstypes.NOxMethod
	EmissionCurves   map[feemstypes.EmissionSpecies]curve.Curve
	ConsumerClass    fuel.ConsumerClass

	// EngineDualFuel.
	PilotBSFCCurve  curve.Curve
	PilotFuelKind   fuel.Kind
	PilotFuelOrigin fuel.Origin

	// EngineMultiFuel.
	FuelModes      []FuelMode
	ActiveFuelMode int

	// COGAS: efficiency-curve based fuel derivation (spec §4.3).
	LHVMJPerG float64

	// Battery / Supercapacitor (spec §4.5).
	RatedCapacityKWh    float64
	ChargingRateC       float64
	DischargeRateC      float64
	EffCharging         float64
	EffDischarging      float64
	SoeMin              float64
	SoeMax              float64
	SelfDischargePerDay float64
	SoC0                float64

	// FuelCell.
	MinSpecificPowerKW float64
	StartDelaySeconds  float64

	// Per-timestep state, length T, written exactly once by the solver.
	Status          []bool
	PowerInputKW    []float64
	PowerOutputKW   []float64
	LoadRatio       []float64
	Efficiency      []float64
	LoadSharingMode []float64
	SoC             []float64
}

// New constructs the common fields of a Component. Variant-specific
// constructors (NewEngine, NewBattery, ...) wrap this and set the
// remaining fields.
func New(name string, kind feemstypes.ComponentKind, role feemstypes.PowerRole, ratedPowerKW float64, effCurve curve.Curve) Component {
	return Component{
		UID:          uuid.New(),
		Name:         name,
		Kind:         kind,
		Role:         role,
		RatedPowerKW: ratedPowerKW,
		EffCurve:     effCurve,
	}
}

// StageCommonSeries writes the per-timestep inputs a caller stages
// before a run: status and load-sharing mode (spec §6 stage_inputs:
// status_per_source, load_sharing_per_source). A length-1 array
// broadcasts across every timestep when ResetOutputs sizes the run
// (spec §7 InputShape).
func (c *Component) StageCommonSeries(status []bool, loadSharingMode []float64) {
	c.Status = append([]bool(nil), status...)
	c.LoadSharingMode = append([]float64(nil), loadSharingMode...)
}

// ResetOutputs (re)allocates the solver-written output slices to
// length t. Staged Status/LoadSharingMode inputs of length t are kept
// as they are, a length-1 input is broadcast to length t, and any other
// length is replaced by an all-false/all-zero series. Called once at
// the start of a run.
func (c *Component) ResetOutputs(t int) {
	c.PowerInputKW = make([]float64, t)
	c.PowerOutputKW = make([]float64, t)
	c.LoadRatio = make([]float64, t)
	c.Efficiency = make([]float64, t)
	if c.Role == feemstypes.PowerRoleEnergyStorage {
		c.SoC = make([]float64, t+1)
		c.SoC[0] = c.SoC0
	}
	if len(c.Status) != t {
		status := make([]bool, t)
		if len(c.Status) == 1 {
			for i := range status {
				status[i] = c.Status[0]
			}
		}
		c.Status = status
	}
	if len(c.LoadSharingMode) != t {
		mode := make([]float64, t)
		if len(c.LoadSharingMode) == 1 {
			for i := range mode {
				mode[i] = c.LoadSharingMode[0]
			}
		}
		c.LoadSharingMode = mode
	}
}
