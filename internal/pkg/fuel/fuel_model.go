package fuel

import (
	"fmt"

	"github.com/ohowland/feems/internal/pkg/errs"
)

// Fuel is a single fuel entry: kind, origin, accounting regime, an
// optional name (required only for USER-regime fuels), its mass or
// mass-flow value, lower heating value and TTW factor table.
//
// Fuel is treated as immutable once constructed; kernels that need to
// replace its TTW factors (the GHG override, spec §4.2 step 5) return
// a new Fuel rather than mutating the receiver (spec §9).
type Fuel struct {
	Kind      Kind
	Origin    Origin
	Regime    Regime
	Name      string
	MassOrMassFraction []float64 // kg, kg/s, or a mass fraction depending on context
	LHVMJPerG float64
	WTTFactorGCO2eqPerMJ float64
	TTWFactors []GhgFactorTTW
}

// New constructs a Fuel looked up from the static IMO/FuelEU Maritime
// regime table. For RegimeUSER, use NewUserFuel instead.
func New(kind Kind, origin Origin, regime Regime, consumerClass ConsumerClass, mass []float64) (Fuel, error) {
	if regime == RegimeUSER {
		return Fuel{}, &errs.ConfigurationError{Reason: "use NewUserFuel to construct a USER-regime fuel"}
	}
	prescribed, err := LookupPrescribedFactors(regime, kind, origin, consumerClass)
	if err != nil {
		return Fuel{}, err
	}
	return Fuel{
		Kind:                 kind,
		Origin:               origin,
		Regime:               regime,
		MassOrMassFraction:   append([]float64(nil), mass...),
		LHVMJPerG:            prescribed.LHVMJPerG,
		WTTFactorGCO2eqPerMJ: prescribed.WTTFactorGCO2eqPerMJ,
		TTWFactors:           prescribed.TTWFactors,
	}, nil
}

// NewUserFuel constructs a Fuel with user-supplied LHV and TTW
// factors. Spec invariant: USER regime requires a non-empty name, an
// LHV, and at least one TTW factor entry.
func NewUserFuel(kind Kind, origin Origin, name string, lhvMJPerG, wttFactor float64, ttw []GhgFactorTTW, mass []float64) (Fuel, error) {
	if name == "" {
		return Fuel{}, &errs.ConfigurationError{Reason: "USER regime fuel requires a non-empty name"}
	}
	if lhvMJPerG <= 0 {
		return Fuel{}, &errs.ConfigurationError{Reason: "USER regime fuel requires a positive LHV"}
	}
	if len(ttw) == 0 {
		return Fuel{}, &errs.ConfigurationError{Reason: "USER regime fuel requires at least one TTW factor entry"}
	}
	return Fuel{
		Kind:                 kind,
		Origin:               origin,
		Regime:               RegimeUSER,
		Name:                 name,
		MassOrMassFraction:   append([]float64(nil), mass...),
		LHVMJPerG:            lhvMJPerG,
		WTTFactorGCO2eqPerMJ: wttFactor,
		TTWFactors:           ttw,
	}, nil
}

// Copy returns a deep copy of f sharing no backing arrays.
func (f Fuel) Copy() Fuel {
	cp := f
	cp.MassOrMassFraction = append([]float64(nil), f.MassOrMassFraction...)
	cp.TTWFactors = append([]GhgFactorTTW(nil), f.TTWFactors...)
	for i := range cp.TTWFactors {
		cp.TTWFactors[i].CO2 = append([]float64(nil), f.TTWFactors[i].CO2...)
		cp.TTWFactors[i].CH4 = append([]float64(nil), f.TTWFactors[i].CH4...)
		cp.TTWFactors[i].N2O = append([]float64(nil), f.TTWFactors[i].N2O...)
		cp.TTWFactors[i].CSlipPercent = append([]float64(nil), f.TTWFactors[i].CSlipPercent...)
	}
	return cp
}

// CopyExceptMass returns a deep copy of f with its
// MassOrMassFraction zeroed; used as the identity element when
// aggregating FuelConsumption bags.
func (f Fuel) CopyExceptMass() Fuel {
	cp := f.Copy()
	cp.MassOrMassFraction = make([]float64, len(f.MassOrMassFraction))
	return cp
}

// AggregationKey identifies which Fuel entries may be summed together
// (spec §3, §9): (kind, origin, regime) for non-USER fuels, plus name
// for USER fuels.
type AggregationKey struct {
	Kind   Kind
	Origin Origin
	Regime Regime
	Name   string // empty unless Regime == RegimeUSER
}

// Key returns f's aggregation key.
func (f Fuel) Key() AggregationKey {
	name := ""
	if f.Regime == RegimeUSER {
		name = f.Name
	}
	return AggregationKey{Kind: f.Kind, Origin: f.Origin, Regime: f.Regime, Name: name}
}

// CarbonFractionOfFuel returns the carbon mass fraction used for the
// methane-slip GHG term (see CarbonFraction).
func (f Fuel) CarbonFractionOfFuel() float64 {
	return CarbonFraction[f.Kind]
}

// TTWFactorFor returns the TTW factor row matching consumerClass. For
// IMO-regime fuels there is always exactly one row and consumerClass
// is ignored.
func (f Fuel) TTWFactorFor(consumerClass ConsumerClass) (GhgFactorTTW, error) {
	if f.Regime == RegimeIMO {
		if len(f.TTWFactors) == 0 {
			return GhgFactorTTW{}, &errs.ConfigurationError{Reason: fmt.Sprintf("fuel %s has no TTW factors", f.Key())}
		}
		return f.TTWFactors[0], nil
	}
	for _, row := range f.TTWFactors {
		if row.ConsumerClass == consumerClass {
			return row, nil
		}
	}
	if len(f.TTWFactors) == 1 {
		return f.TTWFactors[0], nil
	}
	return GhgFactorTTW{}, &errs.ConfigurationError{
		Reason: fmt.Sprintf("fuel %s has no TTW factor row for consumer class %s", f.Key(), consumerClass),
	}
}

func (k AggregationKey) String() string {
	if k.Regime == RegimeUSER {
		return fmt.Sprintf("%s/%s/%s/%s", k.Kind, k.Origin, k.Regime, k.Name)
	}
	return fmt.Sprintf("%s/%s/%s", k.Kind, k.Origin, k.Regime)
}
