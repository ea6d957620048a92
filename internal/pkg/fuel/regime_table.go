package fuel

import (
	"fmt"

	"github.com/ohowland/feems/internal/pkg/errs"
)

// PrescribedFactors is the (LHV, WTT, TTW) triple a regime table
// lookup returns for a given (kind, origin[, consumer class]).
type PrescribedFactors struct {
	LHVMJPerG            float64
	WTTFactorGCO2eqPerMJ float64
	TTWFactors           []GhgFactorTTW
}

type regimeKey struct {
	Regime Regime
	Kind   Kind
	Origin Origin
}

// regimeTable is the process-wide static lookup backing the IMO and
// FuelEU Maritime regimes (spec §6, §9: "kept as a process-wide
// static, immutable, loaded once"). Figures are representative of
// published IMO carbon factors and FuelEU Maritime default values;
// spec §9 flags the exact numeric table as an Open Question an
// implementer must source from the regulation directly, so these
// values are a deliberate stand-in.
var regimeTable = map[regimeKey]PrescribedFactors{
	{RegimeIMO, KindDiesel, OriginFossil}: {
		LHVMJPerG: 0.0420, WTTFactorGCO2eqPerMJ: 14.4,
		TTWFactors: []GhgFactorTTW{NewScalarGhgFactorTTW(3.206, 0, 0, 0, ConsumerClassNone)},
	},
	{RegimeIMO, KindLFO, OriginFossil}: {
		LHVMJPerG: 0.0410, WTTFactorGCO2eqPerMJ: 13.5,
		TTWFactors: []GhgFactorTTW{NewScalarGhgFactorTTW(3.151, 0, 0, 0, ConsumerClassNone)},
	},
	{RegimeIMO, KindHFO, OriginFossil}: {
		LHVMJPerG: 0.0400, WTTFactorGCO2eqPerMJ: 13.2,
		TTWFactors: []GhgFactorTTW{NewScalarGhgFactorTTW(3.114, 0, 0, 0, ConsumerClassNone)},
	},
	{RegimeIMO, KindNaturalGas, OriginFossil}: {
		LHVMJPerG: 0.0491, WTTFactorGCO2eqPerMJ: 18.5,
		TTWFactors: []GhgFactorTTW{NewScalarGhgFactorTTW(2.750, 0.00005, 0.00011, 0, ConsumerClassNone)},
	},
	{RegimeIMO, KindHydrogen, OriginFossil}: {
		LHVMJPerG: 0.1200, WTTFactorGCO2eqPerMJ: 132.0,
		TTWFactors: []GhgFactorTTW{NewScalarGhgFactorTTW(0, 0, 0, 0, ConsumerClassNone)},
	},
	{RegimeIMO, KindAmmonia, OriginFossil}: {
		LHVMJPerG: 0.0186, WTTFactorGCO2eqPerMJ: 121.0,
		TTWFactors: []GhgFactorTTW{NewScalarGhgFactorTTW(0, 0, 0, 0, ConsumerClassNone)},
	},
	{RegimeIMO, KindMethanol, OriginFossil}: {
		LHVMJPerG: 0.0199, WTTFactorGCO2eqPerMJ: 31.3,
		TTWFactors: []GhgFactorTTW{NewScalarGhgFactorTTW(1.375, 0, 0, 0, ConsumerClassNone)},
	},
	{RegimeIMO, KindEthanol, OriginBio}: {
		LHVMJPerG: 0.0268, WTTFactorGCO2eqPerMJ: 18.0,
		TTWFactors: []GhgFactorTTW{NewScalarGhgFactorTTW(1.913, 0, 0, 0, ConsumerClassNone)},
	},
	{RegimeIMO, KindLPGPropane, OriginFossil}: {
		LHVMJPerG: 0.0460, WTTFactorGCO2eqPerMJ: 11.7,
		TTWFactors: []GhgFactorTTW{NewScalarGhgFactorTTW(3.000, 0, 0, 0, ConsumerClassNone)},
	},
	{RegimeIMO, KindLPGButane, OriginFossil}: {
		LHVMJPerG: 0.0457, WTTFactorGCO2eqPerMJ: 11.7,
		TTWFactors: []GhgFactorTTW{NewScalarGhgFactorTTW(3.003, 0, 0, 0, ConsumerClassNone)},
	},

	{RegimeFuelEUMaritime, KindDiesel, OriginFossil}: {
		LHVMJPerG: 0.0427, WTTFactorGCO2eqPerMJ: 14.4,
		TTWFactors: []GhgFactorTTW{NewScalarGhgFactorTTW(3.206, 0, 0, 0, ConsumerClassICE)},
	},
	{RegimeFuelEUMaritime, KindHFO, OriginFossil}: {
		LHVMJPerG: 0.0405, WTTFactorGCO2eqPerMJ: 13.2,
		TTWFactors: []GhgFactorTTW{NewScalarGhgFactorTTW(3.114, 0, 0, 0, ConsumerClassICE)},
	},
	{RegimeFuelEUMaritime, KindNaturalGas, OriginFossil}: {
		LHVMJPerG: 0.0491, WTTFactorGCO2eqPerMJ: 18.5,
		TTWFactors: []GhgFactorTTW{
			NewScalarGhgFactorTTW(2.750, 0.00005, 0.00011, 0, ConsumerClassICE),
			NewScalarGhgFactorTTW(2.750, 0.00005, 0.00011, 3.1, ConsumerClassLNGOttoMediumSpeed),
			NewScalarGhgFactorTTW(2.750, 0.00005, 0.00011, 1.7, ConsumerClassLNGOttoSlowSpeed),
			NewScalarGhgFactorTTW(2.750, 0.00005, 0.00011, 0.2, ConsumerClassLNGDiesel),
			NewScalarGhgFactorTTW(2.750, 0.00005, 0.00011, 1.9, ConsumerClassLNGLBSI),
		},
	},
	{RegimeFuelEUMaritime, KindHydrogen, OriginRenewableNonBio}: {
		LHVMJPerG: 0.1200, WTTFactorGCO2eqPerMJ: 3.6,
		TTWFactors: []GhgFactorTTW{NewScalarGhgFactorTTW(0, 0, 0, 0, ConsumerClassFuelCell)},
	},
	{RegimeFuelEUMaritime, KindAmmonia, OriginRenewableNonBio}: {
		LHVMJPerG: 0.0186, WTTFactorGCO2eqPerMJ: 0.0,
		TTWFactors: []GhgFactorTTW{NewScalarGhgFactorTTW(0, 0, 0, 0, ConsumerClassICE)},
	},
	{RegimeFuelEUMaritime, KindMethanol, OriginBio}: {
		LHVMJPerG: 0.0199, WTTFactorGCO2eqPerMJ: 1.0,
		TTWFactors: []GhgFactorTTW{NewScalarGhgFactorTTW(1.375, 0, 0, 0, ConsumerClassICE)},
	},
}

// LookupPrescribedFactors returns the (LHV, WTT, TTW) triple for
// (regime, kind, origin[, consumerClass]). RegimeUSER is never looked
// up here; callers construct USER fuels via NewUserFuel.
func LookupPrescribedFactors(regime Regime, kind Kind, origin Origin, consumerClass ConsumerClass) (PrescribedFactors, error) {
	if regime == RegimeUSER {
		return PrescribedFactors{}, &errs.ConfigurationError{Reason: "USER regime has no prescribed factor table"}
	}
	pf, ok := regimeTable[regimeKey{regime, kind, origin}]
	if !ok {
		return PrescribedFactors{}, &errs.ConfigurationError{
			Reason: fmt.Sprintf("no %s factors for fuel kind %s origin %s", regime, kind, origin),
		}
	}
	return pf, nil
}
