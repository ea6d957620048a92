package fuel

// GWP100 multipliers, per spec glossary: methane and nitrous oxide
// 100-year global warming potential relative to CO2.
const (
	GWP100CH4 = 29.8
	GWP100N2O = 273.0
)

// GhgFactorTTW is a tank-to-wake GHG emission factor row: CO2, CH4 and
// N2O mass factors in g-species/g-fuel, plus a methane-slip percentage
// and the consumer class the row applies to (FuelEU Maritime only;
// ignored for IMO lookups).
//
// CO2/CH4/N2O/CSlipPercent are stored as slices so a single row can
// hold either a scalar (length 1, broadcast across all timesteps) or a
// per-timestep series (length T), the latter arising only when an
// engine emission curve overrides CH4 or N2O (spec §4.2 step 5).
type GhgFactorTTW struct {
	CO2           []float64
	CH4           []float64
	N2O           []float64
	CSlipPercent  []float64
	ConsumerClass ConsumerClass
}

// NewScalarGhgFactorTTW builds a single-valued (non-timeseries) TTW
// factor row.
func NewScalarGhgFactorTTW(co2, ch4, n2o, cSlipPercent float64, class ConsumerClass) GhgFactorTTW {
	return GhgFactorTTW{
		CO2:           []float64{co2},
		CH4:           []float64{ch4},
		N2O:           []float64{n2o},
		CSlipPercent:  []float64{cSlipPercent},
		ConsumerClass: class,
	}
}

func broadcastAt(series []float64, i int) float64 {
	if len(series) == 0 {
		return 0
	}
	if len(series) == 1 {
		return series[0]
	}
	return series[i]
}

func seriesLen(factor GhgFactorTTW) int {
	n := 1
	for _, s := range [][]float64{factor.CO2, factor.CH4, factor.N2O, factor.CSlipPercent} {
		if len(s) > n {
			n = len(s)
		}
	}
	return n
}

// CO2eqAt returns the gCO2eq/gfuel value of the factor row at
// timestep index i (or the scalar value if the row is not a
// timeseries), following:
//
//	co2eq = co2 + GWP100CH4*ch4 + GWP100N2O*n2o + slip_term
//
// where slip_term contributes only when c_slip_percent > 0, and is
// proportional to c_slip_percent * GWP100CH4 * carbonFractionOfFuel.
// carbonFractionOfFuel is the mass fraction of carbon in the fuel,
// supplied by the caller (it varies per fuel kind, see CarbonFraction).
func (g GhgFactorTTW) CO2eqAt(i int, carbonFractionOfFuel float64) float64 {
	co2 := broadcastAt(g.CO2, i)
	ch4 := broadcastAt(g.CH4, i)
	n2o := broadcastAt(g.N2O, i)
	slipPercent := broadcastAt(g.CSlipPercent, i)

	base := co2 + GWP100CH4*ch4 + GWP100N2O*n2o
	slipTerm := 0.0
	if slipPercent > 0 {
		slipTerm = (slipPercent / 100.0) * GWP100CH4 * carbonFractionOfFuel
	}
	return base + slipTerm
}

// CO2eq returns CO2eqAt(0, ...), for scalar (non-timeseries) rows.
func (g GhgFactorTTW) CO2eq(carbonFractionOfFuel float64) float64 {
	return g.CO2eqAt(0, carbonFractionOfFuel)
}

// withOverriddenCH4 returns a copy of g with the CH4 factor replaced
// element-wise by overrideGPerG and the methane-slip term zeroed
// (spec §4.2 step 5: the curve already captures total methane
// including slip, so counting c_slip_percent again would double-count
// it).
func (g GhgFactorTTW) withOverriddenCH4(overrideGPerG []float64) GhgFactorTTW {
	cp := g
	cp.CH4 = append([]float64(nil), overrideGPerG...)
	cp.CSlipPercent = make([]float64, len(overrideGPerG))
	return cp
}

// withOverriddenN2O returns a copy of g with the N2O factor replaced
// element-wise by overrideGPerG and the methane-slip term zeroed, by
// the same reasoning as withOverriddenCH4.
func (g GhgFactorTTW) withOverriddenN2O(overrideGPerG []float64) GhgFactorTTW {
	cp := g
	cp.N2O = append([]float64(nil), overrideGPerG...)
	cp.CSlipPercent = make([]float64, len(overrideGPerG))
	return cp
}

// CarbonFraction is the mass fraction of carbon in a gram of fuel,
// used for the FuelEU methane-slip term. Implementers should consult
// the regulation table directly for the authoritative values (spec
// §9 Open Questions); these are representative figures recorded as a
// deliberate stand-in.
var CarbonFraction = map[Kind]float64{
	KindDiesel:     0.86,
	KindHFO:        0.85,
	KindNaturalGas: 0.75,
	KindHydrogen:   0.0,
	KindAmmonia:    0.0,
	KindLPGPropane: 0.82,
	KindLPGButane:  0.83,
	KindEthanol:    0.52,
	KindMethanol:   0.375,
	KindLFO:        0.86,
	KindLSFOCrude:  0.86,
	KindLSFOBlend:  0.86,
	KindULSFO:      0.86,
	KindVLSFO:      0.86,
}
