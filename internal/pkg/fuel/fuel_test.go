package fuel

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestNewIMODieselCO2eq(t *testing.T) {
	f, err := New(KindDiesel, OriginFossil, RegimeIMO, ConsumerClassNone, []float64{100})
	assert.NilError(t, err)

	row, err := f.TTWFactorFor(ConsumerClassNone)
	assert.NilError(t, err)
	co2eq := row.CO2eq(f.CarbonFractionOfFuel())
	assert.Equal(t, co2eq, 3.206)
	assert.Equal(t, co2eq*100, 320.6)
}

func TestUserFuelRequiresName(t *testing.T) {
	_, err := NewUserFuel(KindDiesel, OriginFossil, "", 0.042, 14, []GhgFactorTTW{NewScalarGhgFactorTTW(3.2, 0, 0, 0, ConsumerClassNone)}, nil)
	assert.ErrorContains(t, err, "non-empty name")
}

func TestFuelConsumptionAggregatesUserFuelsByName(t *testing.T) {
	ttw := []GhgFactorTTW{NewScalarGhgFactorTTW(3.2, 0, 0, 0, ConsumerClassNone)}
	a, err := NewUserFuel(KindDiesel, OriginFossil, "blend_A", 0.042, 14, ttw, []float64{50})
	assert.NilError(t, err)
	b, err := NewUserFuel(KindDiesel, OriginFossil, "blend_B", 0.042, 14, ttw, []float64{50})
	assert.NilError(t, err)

	fc := NewFuelConsumption(a, b)
	assert.Equal(t, len(fc.Entries()), 2)
	assert.Equal(t, fc.TotalMass(), 100.0)
}

func TestFuelConsumptionSumsSameKey(t *testing.T) {
	a, err := New(KindDiesel, OriginFossil, RegimeIMO, ConsumerClassNone, []float64{40})
	assert.NilError(t, err)
	b, err := New(KindDiesel, OriginFossil, RegimeIMO, ConsumerClassNone, []float64{60})
	assert.NilError(t, err)

	fc := NewFuelConsumption(a, b)
	assert.Equal(t, len(fc.Entries()), 1)
	assert.Equal(t, fc.TotalMass(), 100.0)
}

func TestWithEmissionCurveGHGOverridesDoesNotMutateOriginal(t *testing.T) {
	f, err := New(KindNaturalGas, OriginFossil, RegimeFuelEUMaritime, ConsumerClassICE, []float64{1})
	assert.NilError(t, err)

	overridden, err := WithEmissionCurveGHGOverrides(f, ConsumerClassICE, []float64{0.0333}, nil)
	assert.NilError(t, err)

	origRow, err := f.TTWFactorFor(ConsumerClassICE)
	assert.NilError(t, err)
	assert.Equal(t, origRow.CH4[0], 0.00005)

	newRow, err := overridden.TTWFactorFor(ConsumerClassICE)
	assert.NilError(t, err)
	assert.Equal(t, newRow.CH4[0], 0.0333)
	assert.Equal(t, newRow.CSlipPercent[0], 0.0)
}
