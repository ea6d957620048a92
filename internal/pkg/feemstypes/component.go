// Package feemstypes holds the closed enumerations shared across the
// FEEMS core: component kind, power role, emission species, engine
// cycle, NOx method and integration rule. The fuel taxonomy (kind,
// origin, regime) lives in package fuel.
package feemstypes

//go:generate stringer -type=ComponentKind -output=componentkind_string.go

// ComponentKind is the closed set of physical component archetypes a
// topology can declare. Dispatch over kind is a switch on this value,
// not an open interface hierarchy (see component.Component).
type ComponentKind int

const (
	ComponentKindNone ComponentKind = iota
	ComponentKindMainEngine
	ComponentKindAuxEngine
	ComponentKindGenerator
	ComponentKindPropulsionDrive
	ComponentKindOtherLoad
	ComponentKindPTIPTO
	ComponentKindBatterySystem
	ComponentKindFuelCellSystem
	ComponentKindRectifier
	ComponentKindMainEngineWithGearbox
	ComponentKindElectricMotor
	ComponentKindGenset
	ComponentKindTransformer
	ComponentKindInverter
	ComponentKindCircuitBreaker
	ComponentKindActiveFrontEnd
	ComponentKindPowerConverter
	ComponentKindSynchronousMachine
	ComponentKindInductionMachine
	ComponentKindGearbox
	ComponentKindFuelCell
	ComponentKindPropellerLoad
	ComponentKindOtherMechanicalLoad
	ComponentKindBattery
	ComponentKindSupercapacitor
	ComponentKindSupercapacitorSystem
	ComponentKindShorePower
	ComponentKindCOGAS
	ComponentKindCOGES
)

//go:generate stringer -type=PowerRole -output=powerrole_string.go

// PowerRole classifies how a component participates in a node's power
// balance.
type PowerRole int

const (
	PowerRoleNone PowerRole = iota
	PowerRoleSource
	PowerRoleConsumer
	PowerRolePTIPTO
	PowerRoleEnergyStorage
	PowerRoleTransmission
)

//go:generate stringer -type=EmissionSpecies -output=emissionspecies_string.go

// EmissionSpecies is the closed set of pollutant/GHG species the core
// can report per-component emission rates for.
type EmissionSpecies int

const (
	EmissionNOX EmissionSpecies = iota
	EmissionSOX
	EmissionCO
	EmissionPM
	EmissionHC
	EmissionCH4
	EmissionN2O
)

//go:generate stringer -type=EngineCycle -output=enginecycle_string.go

// EngineCycle distinguishes the combustion cycle of an engine, used to
// select the FuelEU Maritime consumer class for gas engines.
type EngineCycle int

const (
	EngineCycleNone EngineCycle = iota
	EngineCycleDiesel
	EngineCycleOtto
	EngineCycleLeanBurnSparkIgnition
)

//go:generate stringer -type=NOxMethod -output=noxmethod_string.go

// NOxMethod selects how NOx emission rate is derived.
type NOxMethod int

const (
	NOxMethodCurve NOxMethod = iota
	NOxMethodTier1
	NOxMethodTier2
	NOxMethodTier3
)

//go:generate stringer -type=IntegrationRule -output=integrationrule_string.go

// IntegrationRule selects the time-integration scheme used to aggregate
// a per-timestep series into a scalar total.
type IntegrationRule int

const (
	IntegrationTrapezoid IntegrationRule = iota
	IntegrationSimpson
	IntegrationSumWithInterval
)
