package system

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/ohowland/feems/internal/pkg/chain"
	"github.com/ohowland/feems/internal/pkg/component"
	"github.com/ohowland/feems/internal/pkg/curve"
	"github.com/ohowland/feems/internal/pkg/feemstypes"
	"github.com/ohowland/feems/internal/pkg/fuel"
)

func TestHybridFullPTIDrawsFromElectricBus(t *testing.T) {
	const T = 1

	mainEngineOff := mainEngine("main-1", 1000)
	mainEngineOff.StageCommonSeries(constStatus(T, false), constFloat(T, 0))
	mechArena := []component.Component{mainEngineOff}
	sl := Shaftline{
		ID:                1,
		MainEngineIdx:     []int{0},
		PropellerDemandKW: constFloat(T, 800),
		PTIPTODemandKW:    constFloat(T, -800),
	}
	mech := NewMechanicalPropulsionSystem(mechArena, []Shaftline{sl})

	bsfc := curve.NewFlat(200)
	eff, _ := curve.NewEfficiencyCurve([]curve.Point{{X: 0, Y: 0.95}, {X: 1, Y: 0.95}})
	genset, err := component.NewEngine("genset-1", 2000, 720, bsfc, eff, fuel.KindDiesel, fuel.OriginFossil,
		feemstypes.EngineCycleDiesel, feemstypes.NOxMethodTier2, nil)
	assert.NilError(t, err)
	genset.StageCommonSeries(constStatus(T, true), constFloat(T, 0))
	elecArena := []component.Component{genset}
	sw := Switchboard{ID: 1, SourceIdx: []int{0}, ConsumerDemandKW: constFloat(T, 0)}
	elec := NewElectricPowerSystem(elecArena, []Switchboard{sw})

	ptiMachine, err := chain.New([]component.Component{
		component.NewElectricMachine("pti-machine", feemstypes.ComponentKindPTIPTO, feemstypes.PowerRolePTIPTO, 1000,
			func() curve.Curve { c, _ := curve.NewEfficiencyCurve([]curve.Point{{X: 0, Y: 0.90}, {X: 1, Y: 0.90}}); return c }()),
	})
	assert.NilError(t, err)

	combined := MechanicalPropulsionSystemWithElectricPowerSystem{
		Mechanical: mech,
		Electric:   elec,
		Couplings: []PTICoupling{
			{ShaftlineIdx: 0, SwitchboardIdx: 0, Chain: ptiMachine},
		},
	}

	opts := Options{FuelRegime: fuel.RegimeIMO, TimestepSeconds: 600}
	mechRes, elecRes, err := combined.Run(opts, opts)
	assert.NilError(t, err)
	assert.Equal(t, mechRes.DetailResult[0].PowerOutputKW, 0.0)

	assert.Assert(t, sw.ConsumerDemandKW[0] > 888.0 && sw.ConsumerDemandKW[0] < 889.0)

	var gensetOut float64
	for _, row := range elecRes.DetailResult {
		if row.Name == "genset-1" {
			gensetOut = row.PowerOutputKW
		}
	}
	assert.Assert(t, gensetOut > 888.0 && gensetOut < 889.0)
}
