package system

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/ohowland/feems/internal/pkg/component"
	"github.com/ohowland/feems/internal/pkg/curve"
	"github.com/ohowland/feems/internal/pkg/feemstypes"
	"github.com/ohowland/feems/internal/pkg/fuel"
)

func constStatus(t int, on bool) []bool {
	s := make([]bool, t)
	for i := range s {
		s[i] = on
	}
	return s
}

func constFloat(t int, v float64) []float64 {
	s := make([]float64, t)
	for i := range s {
		s[i] = v
	}
	return s
}

func TestSingleGensetConstantLoad(t *testing.T) {
	const T = 60
	bsfc := curve.NewFlat(200)
	eff, err := curve.NewEfficiencyCurve([]curve.Point{{X: 0, Y: 0.95}, {X: 1, Y: 0.95}})
	assert.NilError(t, err)

	genset, err := component.NewEngine("genset-1", 1000, 720, bsfc, eff, fuel.KindDiesel, fuel.OriginFossil,
		feemstypes.EngineCycleDiesel, feemstypes.NOxMethodTier2, nil)
	assert.NilError(t, err)
	genset.Kind = feemstypes.ComponentKindGenset
	genset.StageCommonSeries(constStatus(T, true), constFloat(T, 0))

	arena := []component.Component{genset}
	sw := Switchboard{ID: 1, SourceIdx: []int{0}, ConsumerDemandKW: constFloat(T, 500)}
	sys := NewElectricPowerSystem(arena, []Switchboard{sw})

	res, err := sys.Run(Options{FuelRegime: fuel.RegimeIMO, TimestepSeconds: 60, IntegrationRule: feemstypes.IntegrationSumWithInterval})
	assert.NilError(t, err)

	totalFuel := 0.0
	for _, f := range res.MultiFuelConsumptionTotalKG.Entries() {
		for _, m := range f.MassOrMassFraction {
			totalFuel += m
		}
	}
	assert.Assert(t, totalFuel > 99.9 && totalFuel < 100.1)
	assert.Assert(t, res.RunningHours.Genset > 0.999 && res.RunningHours.Genset < 1.001)
	assert.Assert(t, res.CO2EmissionTotalKG.TankToWake > 320.0 && res.CO2EmissionTotalKG.TankToWake < 321.0)
}

func TestTwoGensetLoadShare(t *testing.T) {
	const T = 1
	bsfc := curve.NewFlat(200)
	eff, err := curve.NewEfficiencyCurve([]curve.Point{{X: 0, Y: 0.95}, {X: 1, Y: 0.95}})
	assert.NilError(t, err)

	g1, err := component.NewEngine("genset-1", 1000, 720, bsfc, eff, fuel.KindDiesel, fuel.OriginFossil,
		feemstypes.EngineCycleDiesel, feemstypes.NOxMethodTier2, nil)
	assert.NilError(t, err)
	g1.StageCommonSeries(constStatus(T, true), constFloat(T, 0))

	g2 := g1
	g2.Name = "genset-2"
	g2.StageCommonSeries(constStatus(T, true), constFloat(T, 0))

	arena := []component.Component{g1, g2}
	sw := Switchboard{ID: 1, SourceIdx: []int{0, 1}, ConsumerDemandKW: constFloat(T, 700)}
	sys := NewElectricPowerSystem(arena, []Switchboard{sw})

	res, err := sys.Run(Options{FuelRegime: fuel.RegimeIMO, TimestepSeconds: 3600})
	assert.NilError(t, err)

	for _, row := range res.DetailResult {
		assert.Equal(t, row.PowerOutputKW, 350.0)
	}
}

func TestShorePowerDisplacesGenset(t *testing.T) {
	const T = 1
	shore := component.NewShorePower("shore-1", 1000)
	shore.StageCommonSeries(constStatus(T, true), constFloat(T, 0))

	bsfc := curve.NewFlat(200)
	eff, _ := curve.NewEfficiencyCurve([]curve.Point{{X: 0, Y: 0.95}, {X: 1, Y: 0.95}})
	genset, err := component.NewEngine("genset-1", 1000, 720, bsfc, eff, fuel.KindDiesel, fuel.OriginFossil,
		feemstypes.EngineCycleDiesel, feemstypes.NOxMethodTier2, nil)
	assert.NilError(t, err)
	genset.StageCommonSeries(constStatus(T, false), constFloat(T, 0))

	arena := []component.Component{shore, genset}
	sw := Switchboard{ID: 1, SourceIdx: []int{0, 1}, ConsumerDemandKW: constFloat(T, 500)}
	sys := NewElectricPowerSystem(arena, []Switchboard{sw})

	res, err := sys.Run(Options{FuelRegime: fuel.RegimeIMO, TimestepSeconds: 600})
	assert.NilError(t, err)
	assert.Equal(t, len(res.MultiFuelConsumptionTotalKG.Entries()), 0)
	assert.Assert(t, res.Energy.ConsumptionElectric > 299.0 && res.Energy.ConsumptionElectric < 301.0)
}

func TestBatteryPeakShaving(t *testing.T) {
	const T = 1
	bsfc := curve.NewFlat(200)
	eff, _ := curve.NewEfficiencyCurve([]curve.Point{{X: 0, Y: 0.95}, {X: 1, Y: 0.95}})
	genset, err := component.NewEngine("genset-1", 500, 720, bsfc, eff, fuel.KindDiesel, fuel.OriginFossil,
		feemstypes.EngineCycleDiesel, feemstypes.NOxMethodTier2, nil)
	assert.NilError(t, err)
	genset.StageCommonSeries(constStatus(T, true), constFloat(T, 0))

	battery, err := component.NewBattery("battery-1", 500, 1, 1, 0.8, 0.97, 0.97, 0, 1, 0)
	assert.NilError(t, err)
	battery.StageCommonSeries(constStatus(T, false), constFloat(T, 0))

	arena := []component.Component{genset, battery}
	sw := Switchboard{ID: 1, SourceIdx: []int{0}, StorageIdx: []int{1}, ConsumerDemandKW: constFloat(T, 800)}
	sys := NewElectricPowerSystem(arena, []Switchboard{sw})

	res, err := sys.Run(Options{FuelRegime: fuel.RegimeIMO, TimestepSeconds: 600})
	assert.NilError(t, err)

	var gensetOut, batteryOut float64
	for _, row := range res.DetailResult {
		if row.Name == "genset-1" {
			gensetOut = row.PowerOutputKW
		}
		if row.Name == "battery-1" {
			batteryOut = row.PowerOutputKW
		}
	}
	assert.Equal(t, gensetOut, 500.0)
	assert.Equal(t, batteryOut, 300.0)
}
