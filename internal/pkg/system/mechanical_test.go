package system

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/ohowland/feems/internal/pkg/component"
	"github.com/ohowland/feems/internal/pkg/curve"
	"github.com/ohowland/feems/internal/pkg/feemstypes"
	"github.com/ohowland/feems/internal/pkg/fuel"
)

func mainEngine(name string, ratedKW float64) component.Component {
	bsfc := curve.NewFlat(200)
	eff, _ := curve.NewEfficiencyCurve([]curve.Point{{X: 0, Y: 0.95}, {X: 1, Y: 0.95}})
	c, _ := component.NewEngine(name, ratedKW, 720, bsfc, eff, fuel.KindDiesel, fuel.OriginFossil,
		feemstypes.EngineCycleDiesel, feemstypes.NOxMethodTier2, nil)
	return c
}

func TestMechanicalTwoMainEngineLoadShare(t *testing.T) {
	const T = 1
	e1 := mainEngine("main-1", 1000)
	e1.StageCommonSeries(constStatus(T, true), constFloat(T, 0))
	e2 := mainEngine("main-2", 1000)
	e2.StageCommonSeries(constStatus(T, true), constFloat(T, 0))

	arena := []component.Component{e1, e2}
	sl := Shaftline{ID: 1, MainEngineIdx: []int{0, 1}, PropellerDemandKW: constFloat(T, 700)}
	sys := NewMechanicalPropulsionSystem(arena, []Shaftline{sl})

	res, err := sys.Run(Options{FuelRegime: fuel.RegimeIMO, TimestepSeconds: 3600})
	assert.NilError(t, err)
	for _, row := range res.DetailResult {
		assert.Equal(t, row.PowerOutputKW, 350.0)
	}
	assert.Assert(t, res.RunningHours.MainEngines > 1.999 && res.RunningHours.MainEngines < 2.001)
}

func TestFullPTISatisfied(t *testing.T) {
	const T = 1
	e1 := mainEngine("main-1", 1000)
	e1.StageCommonSeries(constStatus(T, false), constFloat(T, 0))

	arena := []component.Component{e1}
	sl := Shaftline{
		ID:                1,
		MainEngineIdx:     []int{0},
		PropellerDemandKW: constFloat(T, 800),
		PTIPTODemandKW:    constFloat(T, -800),
	}
	sys := NewMechanicalPropulsionSystem(arena, []Shaftline{sl})

	res, err := sys.Run(Options{FuelRegime: fuel.RegimeIMO, TimestepSeconds: 600})
	assert.NilError(t, err)
	assert.Equal(t, res.DetailResult[0].PowerOutputKW, 0.0)
}

func TestFullPTIInsufficientRaisesPowerBalance(t *testing.T) {
	const T = 1
	e1 := mainEngine("main-1", 1000)
	e1.StageCommonSeries(constStatus(T, false), constFloat(T, 0))

	arena := []component.Component{e1}
	sl := Shaftline{
		ID:                1,
		MainEngineIdx:     []int{0},
		PropellerDemandKW: constFloat(T, 800),
		PTIPTODemandKW:    constFloat(T, -700),
	}
	sys := NewMechanicalPropulsionSystem(arena, []Shaftline{sl})

	_, err := sys.Run(Options{FuelRegime: fuel.RegimeIMO, TimestepSeconds: 600})
	assert.ErrorContains(t, err, "power balance error")
}
