// Package topology builds a runnable System from the language-neutral
// topology description (spec §6): a named set of switchboards and/or
// shaftlines, each hosting a tagged union of component subsystems, laid
// out into the flat component arena the solver packages operate on
// (spec §9). It also implements stage_inputs(System, inputs), writing
// the per-timestep demand/status/load-sharing arrays a System needs
// before Run.
package topology

import (
	"github.com/ohowland/feems/internal/pkg/component"
	"github.com/ohowland/feems/internal/pkg/curve"
	"github.com/ohowland/feems/internal/pkg/errs"
	"github.com/ohowland/feems/internal/pkg/feemstypes"
	"github.com/ohowland/feems/internal/pkg/fuel"
	"github.com/ohowland/feems/internal/pkg/system"
)

// PropulsionType selects which subsystem(s) a System description
// carries (spec §6 `propulsion_type: Mechanical|Electric|Hybrid`).
type PropulsionType int

const (
	PropulsionMechanical PropulsionType = iota
	PropulsionElectric
	PropulsionHybrid
)

// FuelStorageEntry is one entry of a System's onboard fuel storage
// manifest (spec §6 `fuel_storage: list<(FuelKind, capacity_kg)>`).
// FEEMS itself does not deplete storage; the manifest is carried
// through to callers that want to cross-check total consumption
// against capacity.
type FuelStorageEntry struct {
	Kind       fuel.Kind
	CapacityKG float64
}

// SubsystemDescription is the tagged union over every component
// variant a switchboard or shaftline can host (spec §6 Subsystem).
// Only the fields relevant to Kind need be populated; Build dispatches
// on Kind the same way the component package's kernels do.
type SubsystemDescription struct {
	Kind                            feemstypes.ComponentKind
	Role                            feemstypes.PowerRole // PowerRoleNone = derive from Kind
	Name                            string
	RatedPowerKW                    float64
	RatedSpeedRPM                   float64
	OrderFromSwitchboardOrShaftline int
	RampUpLimitPercentPerS          float64
	RampDownLimitPercentPerS        float64
	BaseLoadOrder                   int

	EffCurve []curve.Point

	BSFCCurve      []curve.Point
	FuelKind       fuel.Kind
	FuelOrigin     fuel.Origin
	Cycle          feemstypes.EngineCycle
	NOxMethod      feemstypes.NOxMethod
	ConsumerClass  fuel.ConsumerClass
	EmissionCurves map[feemstypes.EmissionSpecies][]curve.Point

	PilotBSFCCurve  []curve.Point
	PilotFuelKind   fuel.Kind
	PilotFuelOrigin fuel.Origin

	LHVMJPerG float64

	RatedCapacityKWh    float64
	ChargingRateC       float64
	DischargeRateC      float64
	EffCharging         float64
	EffDischarging      float64
	SoeMin              float64
	SoeMax              float64
	SelfDischargePerDay float64
	SoC0                float64

	MinSpecificPowerKW float64
	StartDelaySeconds  float64
}

// SwitchboardDescription is one electrical bus node (spec §6).
type SwitchboardDescription struct {
	ID          uint32
	Subsystems  []SubsystemDescription
	BusTiePeers []uint32
}

// ShaftlineDescription is one mechanical bus node (spec §6).
type ShaftlineDescription struct {
	ID         uint32
	Subsystems []SubsystemDescription
}

// ElectricSystemDescription holds the electric_system? branch of a
// System description.
type ElectricSystemDescription struct {
	Switchboards []SwitchboardDescription
}

// MechanicalSystemDescription holds the mechanical_system? branch of a
// System description.
type MechanicalSystemDescription struct {
	Shaftlines []ShaftlineDescription
}

// SystemDescription is the full topology document (spec §6 System).
type SystemDescription struct {
	Name                                 string
	PropulsionType                       PropulsionType
	FuelStorage                          []FuelStorageEntry
	MaximumAllowedGensetLoadPercentage   float64
	MaximumAllowedFuelCellLoadPercentage float64
	AverageBaseLoadPercentage            float64
	ElectricSystem                       *ElectricSystemDescription
	MechanicalSystem                     *MechanicalSystemDescription
}

// System is the runnable result of Build: the shared component arena,
// the constructed electric/mechanical solvers, and a name index used
// by StageInputs to resolve source references.
type System struct {
	Name       string
	Arena      []component.Component
	Electric   *system.ElectricPowerSystem
	Mechanical *system.MechanicalPropulsionSystem
	Options    system.Options

	indexByName map[string]int
}

// defaultRoleOf returns a ComponentKind's default PowerRole, used when
// a SubsystemDescription does not set Role explicitly (spec §3
// ComponentKind/PowerRole; the distilled spec leaves this mapping
// implicit, so it follows cgc_core's asset-category conventions:
// prime movers and storages declare their role, everything else is
// source/consumer/transmission by archetype).
func defaultRoleOf(kind feemstypes.ComponentKind) feemstypes.PowerRole {
	switch kind {
	case feemstypes.ComponentKindMainEngine, feemstypes.ComponentKindAuxEngine, feemstypes.ComponentKindMainEngineWithGearbox,
		feemstypes.ComponentKindGenset, feemstypes.ComponentKindGenerator, feemstypes.ComponentKindSynchronousMachine,
		feemstypes.ComponentKindFuelCell, feemstypes.ComponentKindFuelCellSystem,
		feemstypes.ComponentKindShorePower, feemstypes.ComponentKindCOGAS, feemstypes.ComponentKindCOGES:
		return feemstypes.PowerRoleSource
	case feemstypes.ComponentKindBattery, feemstypes.ComponentKindBatterySystem,
		feemstypes.ComponentKindSupercapacitor, feemstypes.ComponentKindSupercapacitorSystem:
		return feemstypes.PowerRoleEnergyStorage
	case feemstypes.ComponentKindPTIPTO:
		return feemstypes.PowerRolePTIPTO
	case feemstypes.ComponentKindRectifier, feemstypes.ComponentKindTransformer, feemstypes.ComponentKindInverter,
		feemstypes.ComponentKindCircuitBreaker, feemstypes.ComponentKindActiveFrontEnd, feemstypes.ComponentKindPowerConverter,
		feemstypes.ComponentKindGearbox:
		return feemstypes.PowerRoleTransmission
	case feemstypes.ComponentKindPropulsionDrive, feemstypes.ComponentKindOtherLoad, feemstypes.ComponentKindElectricMotor,
		feemstypes.ComponentKindInductionMachine, feemstypes.ComponentKindPropellerLoad, feemstypes.ComponentKindOtherMechanicalLoad:
		return feemstypes.PowerRoleConsumer
	default:
		return feemstypes.PowerRoleNone
	}
}

func toCurve(points []curve.Point) (curve.Curve, error) {
	if len(points) == 0 {
		return curve.Curve{}, nil
	}
	return curve.NewEfficiencyCurve(points)
}

func toEmissionCurves(in map[feemstypes.EmissionSpecies][]curve.Point) (map[feemstypes.EmissionSpecies]curve.Curve, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make(map[feemstypes.EmissionSpecies]curve.Curve, len(in))
	for species, points := range in {
		c, err := curve.New(points)
		if err != nil {
			return nil, err
		}
		out[species] = c
	}
	return out, nil
}

// buildComponent constructs one Component from its description,
// dispatching on Kind to the matching component package constructor
// (spec §9: closed tagged-union dispatch).
func buildComponent(sub SubsystemDescription) (component.Component, error) {
	effCurve, err := toCurve(sub.EffCurve)
	if err != nil {
		return component.Component{}, err
	}
	emissionCurves, err := toEmissionCurves(sub.EmissionCurves)
	if err != nil {
		return component.Component{}, err
	}

	var c component.Component
	switch sub.Kind {
	case feemstypes.ComponentKindMainEngine, feemstypes.ComponentKindAuxEngine,
		feemstypes.ComponentKindMainEngineWithGearbox, feemstypes.ComponentKindGenset:
		bsfc, err := curve.New(sub.BSFCCurve)
		if err != nil {
			return component.Component{}, err
		}
		c, err = component.NewEngine(sub.Name, sub.RatedPowerKW, sub.RatedSpeedRPM, bsfc, effCurve,
			sub.FuelKind, sub.FuelOrigin, sub.Cycle, sub.NOxMethod, emissionCurves)
		if err != nil {
			return component.Component{}, err
		}
		c.Kind = sub.Kind
		c.ConsumerClass = sub.ConsumerClass
		if len(sub.PilotBSFCCurve) > 0 {
			pilotBSFC, err := curve.New(sub.PilotBSFCCurve)
			if err != nil {
				return component.Component{}, err
			}
			c = component.NewEngineDualFuel(c, pilotBSFC, sub.PilotFuelKind, sub.PilotFuelOrigin)
		}
	case feemstypes.ComponentKindFuelCell, feemstypes.ComponentKindFuelCellSystem:
		c = component.NewFuelCell(sub.Name, sub.RatedPowerKW, effCurve, sub.LHVMJPerG, sub.FuelKind, sub.FuelOrigin,
			sub.MinSpecificPowerKW, sub.StartDelaySeconds)
		c.Kind = sub.Kind
	case feemstypes.ComponentKindCOGAS, feemstypes.ComponentKindCOGES:
		c = component.NewCOGAS(sub.Name, sub.RatedPowerKW, effCurve, sub.LHVMJPerG, sub.FuelKind, sub.FuelOrigin, emissionCurves)
		c.Kind = sub.Kind
	case feemstypes.ComponentKindBattery, feemstypes.ComponentKindBatterySystem:
		c, err = component.NewBattery(sub.Name, sub.RatedCapacityKWh, sub.ChargingRateC, sub.DischargeRateC, sub.SoC0,
			sub.EffCharging, sub.EffDischarging, sub.SoeMin, sub.SoeMax, sub.SelfDischargePerDay)
		if err != nil {
			return component.Component{}, err
		}
		c.Kind = sub.Kind
	case feemstypes.ComponentKindSupercapacitor, feemstypes.ComponentKindSupercapacitorSystem:
		c, err = component.NewSupercapacitor(sub.Name, sub.RatedCapacityKWh, sub.ChargingRateC, sub.DischargeRateC, sub.SoC0,
			sub.EffCharging, sub.EffDischarging, sub.SoeMin, sub.SoeMax, sub.SelfDischargePerDay)
		if err != nil {
			return component.Component{}, err
		}
		c.Kind = sub.Kind
	case feemstypes.ComponentKindShorePower:
		c = component.NewShorePower(sub.Name, sub.RatedPowerKW)
	case feemstypes.ComponentKindGearbox:
		c = component.NewGearbox(sub.Name, sub.RatedPowerKW, effCurve)
	case feemstypes.ComponentKindPropellerLoad, feemstypes.ComponentKindOtherMechanicalLoad:
		c = component.New(sub.Name, sub.Kind, feemstypes.PowerRoleConsumer, sub.RatedPowerKW, effCurve)
	default:
		role := sub.Role
		if role == feemstypes.PowerRoleNone {
			role = defaultRoleOf(sub.Kind)
		}
		c = component.New(sub.Name, sub.Kind, role, sub.RatedPowerKW, effCurve)
	}

	c.RatedSpeedRPM = sub.RatedSpeedRPM
	c.SwitchboardOrShaftlineID = 0 // set by caller once the node ID is known
	c.RampUpLimitPercentPerS = sub.RampUpLimitPercentPerS
	c.RampDownLimitPercentPerS = sub.RampDownLimitPercentPerS
	c.BaseLoadOrder = sub.BaseLoadOrder
	if sub.Role != feemstypes.PowerRoleNone {
		c.Role = sub.Role
	}
	return c, nil
}

// Build constructs a runnable System from a topology description
// (spec §6 `build_system(topology) -> System`): every subsystem across
// every switchboard and shaftline is appended to one flat component
// arena, partitioned by role into each node's index lists.
func Build(desc SystemDescription) (*System, error) {
	sys := &System{
		Name:        desc.Name,
		indexByName: make(map[string]int),
		Options: system.Options{
			MaximumAllowedGensetLoadPercentage:   desc.MaximumAllowedGensetLoadPercentage,
			MaximumAllowedFuelCellLoadPercentage: desc.MaximumAllowedFuelCellLoadPercentage,
			AverageBaseLoadPercentage:            desc.AverageBaseLoadPercentage,
		},
	}

	appendSubsystem := func(sub SubsystemDescription, nodeID uint32) (int, error) {
		c, err := buildComponent(sub)
		if err != nil {
			return 0, err
		}
		c.SwitchboardOrShaftlineID = nodeID
		idx := len(sys.Arena)
		sys.Arena = append(sys.Arena, c)
		if sub.Name != "" {
			if _, exists := sys.indexByName[sub.Name]; exists {
				return 0, &errs.ConfigurationError{Reason: "duplicate component name " + sub.Name}
			}
			sys.indexByName[sub.Name] = idx
		}
		return idx, nil
	}

	if desc.ElectricSystem != nil {
		switchboards := make([]system.Switchboard, 0, len(desc.ElectricSystem.Switchboards))
		for _, swDesc := range desc.ElectricSystem.Switchboards {
			sw := system.Switchboard{ID: swDesc.ID, BusTiePeers: swDesc.BusTiePeers}
			for _, sub := range swDesc.Subsystems {
				idx, err := appendSubsystem(sub, swDesc.ID)
				if err != nil {
					return nil, err
				}
				switch sys.Arena[idx].Role {
				case feemstypes.PowerRoleSource:
					sw.SourceIdx = append(sw.SourceIdx, idx)
				case feemstypes.PowerRoleEnergyStorage:
					sw.StorageIdx = append(sw.StorageIdx, idx)
				}
			}
			switchboards = append(switchboards, sw)
		}
		electric := system.NewElectricPowerSystem(sys.Arena, switchboards)
		sys.Electric = &electric
	}

	if desc.MechanicalSystem != nil {
		shaftlines := make([]system.Shaftline, 0, len(desc.MechanicalSystem.Shaftlines))
		for _, slDesc := range desc.MechanicalSystem.Shaftlines {
			sl := system.Shaftline{ID: slDesc.ID}
			for _, sub := range slDesc.Subsystems {
				idx, err := appendSubsystem(sub, slDesc.ID)
				if err != nil {
					return nil, err
				}
				switch sys.Arena[idx].Role {
				case feemstypes.PowerRoleSource:
					sl.MainEngineIdx = append(sl.MainEngineIdx, idx)
				case feemstypes.PowerRolePTIPTO:
					sl.PTIPTOIdx = append(sl.PTIPTOIdx, idx)
				}
			}
			shaftlines = append(shaftlines, sl)
		}
		mech := system.NewMechanicalPropulsionSystem(sys.Arena, shaftlines)
		sys.Mechanical = &mech
	}

	// Re-point the solvers at the final arena: appendSubsystem may have
	// grown sys.Arena's backing array past what NewElectricPowerSystem /
	// NewMechanicalPropulsionSystem captured if both branches are
	// present, since both share one arena per spec §9.
	if sys.Electric != nil {
		sys.Electric.Arena = sys.Arena
	}
	if sys.Mechanical != nil {
		sys.Mechanical.Arena = sys.Arena
	}

	return sys, nil
}

// Inputs is the per-timestep input document staged onto a built System
// before Run (spec §6 per-timestep inputs): demand per switchboard,
// status and load-sharing mode per named source, and bus-tie state per
// switchboard/peer pair.
type Inputs struct {
	PowerKWPerSwitchboard map[uint32][]float64
	StatusPerSource       map[string][]bool
	LoadSharingPerSource  map[string][]float64
	BusTieStatus          map[uint32]map[uint32][]bool // [switchboardID][peerID]
}

// StageInputs writes a per-timestep Inputs document onto a built
// System's components and switchboards (spec §6
// `stage_inputs(System, inputs)`): source status/load-sharing arrives
// by component name, consumer demand and bus-tie state by switchboard
// ID.
func StageInputs(sys *System, inputs Inputs) error {
	for name, status := range inputs.StatusPerSource {
		idx, ok := sys.indexByName[name]
		if !ok {
			return &errs.ConfigurationError{Reason: "stage_inputs: unknown component " + name}
		}
		loadSharing := inputs.LoadSharingPerSource[name]
		sys.Arena[idx].StageCommonSeries(status, loadSharing)
	}

	if sys.Electric != nil {
		for i := range sys.Electric.Switchboards {
			sw := &sys.Electric.Switchboards[i]
			if demand, ok := inputs.PowerKWPerSwitchboard[sw.ID]; ok {
				sw.ConsumerDemandKW = demand
			}
			if peerStates, ok := inputs.BusTieStatus[sw.ID]; ok {
				sw.BusTieClosed = make([][]bool, len(sw.BusTiePeers))
				for pi, peerID := range sw.BusTiePeers {
					sw.BusTieClosed[pi] = peerStates[peerID]
				}
			}
		}
	}

	return nil
}
