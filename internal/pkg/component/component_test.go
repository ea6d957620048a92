package component

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/ohowland/feems/internal/pkg/curve"
	"github.com/ohowland/feems/internal/pkg/feemstypes"
	"github.com/ohowland/feems/internal/pkg/fuel"
)

func flatEff(v float64) curve.Curve { return curve.NewFlat(v) }

func TestRunEngineSingleGensetFuelAndCO2(t *testing.T) {
	bsfc := flatEff(200)
	eff := flatEff(0.95)
	c, err := NewEngine("main-engine-1", 1000, 720, bsfc, eff, fuel.KindDiesel, fuel.OriginFossil,
		feemstypes.EngineCycleDiesel, feemstypes.NOxMethodTier2, nil)
	assert.NilError(t, err)

	rp, err := RunEngine(&c, 500, fuel.RegimeIMO)
	assert.NilError(t, err)
	assert.Equal(t, rp.LoadRatio, 0.5)

	totalFuelKG := rp.FuelMassFlowKGPerS * 3600
	assert.Equal(t, totalFuelKG, 100.0)

	co2, err := rp.FuelConsumption.TotalCO2Emissions(fuel.ConsumerClassNone)
	assert.NilError(t, err)
	assert.Equal(t, co2*3600, 320.6)
}

func TestSetPowerOutputFromInputForward(t *testing.T) {
	eff, err := curve.NewEfficiencyCurve([]curve.Point{{X: 0, Y: 0.9}, {X: 1, Y: 0.9}})
	assert.NilError(t, err)
	c := New("conv", feemstypes.ComponentKindPowerConverter, feemstypes.PowerRoleTransmission, 100, eff)

	pOut, load, err := SetPowerOutputFromInput(&c, 100)
	assert.NilError(t, err)
	assert.Equal(t, pOut, 90.0)
	assert.Equal(t, load, 1.0)
}

func TestSetPowerInputFromOutputReverse(t *testing.T) {
	eff, err := curve.NewEfficiencyCurve([]curve.Point{{X: 0, Y: 0.9}, {X: 1, Y: 0.9}})
	assert.NilError(t, err)
	c := New("conv", feemstypes.ComponentKindPowerConverter, feemstypes.PowerRoleTransmission, 100, eff)

	pIn, _, err := SetPowerInputFromOutput(&c, -90)
	assert.NilError(t, err)
	assert.Equal(t, pIn, -81.0)
}

func TestStepStorageChargeMatchesSpecExample(t *testing.T) {
	c, err := NewBattery("batt-1", 1000, 1, 1, 0.5, 0.975, 0.95, 0, 1, 0)
	assert.NilError(t, err)

	step, err := StepStorage(&c, 0.5, 500, 100, true)
	assert.NilError(t, err)
	assert.Assert(t, step.SoCNext > 0.5134 && step.SoCNext < 0.5136)
}

func TestStorageSaturationStrict(t *testing.T) {
	c, err := NewBattery("batt-1", 10, 1, 1, 0.99, 0.975, 0.95, 0, 1, 0)
	assert.NilError(t, err)

	_, err = StepStorage(&c, 0.99, 10, 3600, true)
	assert.ErrorContains(t, err, "storage saturation")
}

func TestRunEngineDualFuelReturnsTwoFuelEntries(t *testing.T) {
	mainBSFC := flatEff(150)
	pilotBSFC := flatEff(5)
	eff := flatEff(0.95)
	ch4Curve := flatEff(6)
	base, err := NewEngine("dual-fuel-1", 1000, 720, mainBSFC, eff, fuel.KindNaturalGas, fuel.OriginFossil,
		feemstypes.EngineCycleOtto, feemstypes.NOxMethodCurve,
		map[feemstypes.EmissionSpecies]curve.Curve{feemstypes.EmissionCH4: ch4Curve})
	assert.NilError(t, err)
	base.ConsumerClass = fuel.ConsumerClassICE
	c := NewEngineDualFuel(base, pilotBSFC, fuel.KindDiesel, fuel.OriginFossil)

	rp, err := RunEngineDualFuel(&c, 700, fuel.RegimeFuelEUMaritime)
	assert.NilError(t, err)
	assert.Equal(t, len(rp.FuelConsumption.Entries()), 2)
}
