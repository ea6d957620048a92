// Package fuel implements the fuel and GHG accounting model: fuel
// taxonomy, the multi-fuel consumption bag, the static IMO/FuelEU
// Maritime regime table, and the engine-curve GHG-factor override
// transform.
package fuel

import "strconv"

//go:generate stringer -type=Kind -output=kind_string.go

// Kind is the closed set of fuel types the core recognizes.
type Kind int

const (
	KindDiesel Kind = iota
	KindHFO
	KindNaturalGas
	KindHydrogen
	KindAmmonia
	KindLPGPropane
	KindLPGButane
	KindEthanol
	KindMethanol
	KindLFO
	KindLSFOCrude
	KindLSFOBlend
	KindULSFO
	KindVLSFO
)

var _Kind_names = map[Kind]string{
	KindDiesel:     "diesel",
	KindHFO:        "HFO",
	KindNaturalGas: "natural_gas",
	KindHydrogen:   "hydrogen",
	KindAmmonia:    "ammonia",
	KindLPGPropane: "LPG-propane",
	KindLPGButane:  "LPG-butane",
	KindEthanol:    "ethanol",
	KindMethanol:   "methanol",
	KindLFO:        "LFO",
	KindLSFOCrude:  "LSFO_crude",
	KindLSFOBlend:  "LSFO_blend",
	KindULSFO:      "ULSFO",
	KindVLSFO:      "VLSFO",
}

func (k Kind) String() string {
	if s, ok := _Kind_names[k]; ok {
		return s
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

//go:generate stringer -type=Origin -output=origin_string.go

// Origin is the provenance of a fuel: fossil, biogenic, or renewable
// non-biological (e-fuels).
type Origin int

const (
	OriginFossil Origin = iota
	OriginBio
	OriginRenewableNonBio
)

var _Origin_names = map[Origin]string{
	OriginFossil:          "fossil",
	OriginBio:             "bio",
	OriginRenewableNonBio: "renewable_non_bio",
}

func (o Origin) String() string {
	if s, ok := _Origin_names[o]; ok {
		return s
	}
	return "Origin(" + strconv.Itoa(int(o)) + ")"
}

//go:generate stringer -type=Regime -output=regime_string.go

// Regime selects which table a Fuel's LHV and GHG factors are drawn
// from.
type Regime int

const (
	RegimeIMO Regime = iota
	RegimeFuelEUMaritime
	RegimeUSER
)

var _Regime_names = map[Regime]string{
	RegimeIMO:            "IMO",
	RegimeFuelEUMaritime: "FuelEU_Maritime",
	RegimeUSER:           "USER",
}

func (r Regime) String() string {
	if s, ok := _Regime_names[r]; ok {
		return s
	}
	return "Regime(" + strconv.Itoa(int(r)) + ")"
}

// ConsumerClass qualifies which TTW factor row of the FuelEU Maritime
// table applies for a given fuel/engine pairing. IMO lookups ignore
// this field.
type ConsumerClass int

const (
	ConsumerClassNone ConsumerClass = iota
	ConsumerClassICE
	ConsumerClassLNGOttoMediumSpeed
	ConsumerClassLNGOttoSlowSpeed
	ConsumerClassLNGDiesel
	ConsumerClassLNGLBSI
	ConsumerClassFuelCell
)

var _ConsumerClass_names = map[ConsumerClass]string{
	ConsumerClassNone:               "none",
	ConsumerClassICE:                "ALL ICEs",
	ConsumerClassLNGOttoMediumSpeed: "LNG otto (medium speed)",
	ConsumerClassLNGOttoSlowSpeed:   "LNG otto (slow speed)",
	ConsumerClassLNGDiesel:          "LNG diesel (slow speed)",
	ConsumerClassLNGLBSI:            "LBSI",
	ConsumerClassFuelCell:           "Fuel Cells",
}

func (c ConsumerClass) String() string {
	if s, ok := _ConsumerClass_names[c]; ok {
		return s
	}
	return "ConsumerClass(" + strconv.Itoa(int(c)) + ")"
}
