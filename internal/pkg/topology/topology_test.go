package topology

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/ohowland/feems/internal/pkg/curve"
	"github.com/ohowland/feems/internal/pkg/feemstypes"
	"github.com/ohowland/feems/internal/pkg/fuel"
	"github.com/ohowland/feems/internal/pkg/system"
)

func constStatus(t int, on bool) []bool {
	out := make([]bool, t)
	for i := range out {
		out[i] = on
	}
	return out
}

func constFloat(t int, v float64) []float64 {
	out := make([]float64, t)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestBuildSingleGensetElectricSystem(t *testing.T) {
	desc := SystemDescription{
		Name:           "single-genset-vessel",
		PropulsionType: PropulsionElectric,
		ElectricSystem: &ElectricSystemDescription{
			Switchboards: []SwitchboardDescription{
				{
					ID: 1,
					Subsystems: []SubsystemDescription{
						{
							Kind:          feemstypes.ComponentKindMainEngine,
							Name:          "genset-1",
							RatedPowerKW:  1000,
							RatedSpeedRPM: 720,
							BSFCCurve:     []curve.Point{{X: 0, Y: 200}, {X: 1, Y: 200}},
							EffCurve:      []curve.Point{{X: 0, Y: 0.95}, {X: 1, Y: 0.95}},
							FuelKind:      fuel.KindDiesel,
							FuelOrigin:    fuel.OriginFossil,
							Cycle:         feemstypes.EngineCycleDiesel,
							NOxMethod:     feemstypes.NOxMethodTier2,
						},
					},
				},
			},
		},
	}

	sys, err := Build(desc)
	assert.NilError(t, err)
	assert.Equal(t, len(sys.Arena), 1)
	assert.Equal(t, sys.Arena[0].Kind, feemstypes.ComponentKindMainEngine)
	assert.Equal(t, sys.Arena[0].Role, feemstypes.PowerRoleSource)
	assert.Assert(t, sys.Electric != nil)
	assert.Equal(t, len(sys.Electric.Switchboards[0].SourceIdx), 1)

	sys.Electric.Arena[0].StageCommonSeries(constStatus(1, true), constFloat(1, 0))
	sys.Electric.Switchboards[0].ConsumerDemandKW = constFloat(1, 500)

	res, err := sys.Electric.Run(system.Options{FuelRegime: fuel.RegimeIMO, TimestepSeconds: 3600})
	assert.NilError(t, err)
	assert.Equal(t, res.DetailResult[0].PowerOutputKW, 500.0)
}

func TestBuildMechanicalSystemWithPTI(t *testing.T) {
	desc := SystemDescription{
		Name:           "pti-shaftline-vessel",
		PropulsionType: PropulsionMechanical,
		MechanicalSystem: &MechanicalSystemDescription{
			Shaftlines: []ShaftlineDescription{
				{
					ID: 1,
					Subsystems: []SubsystemDescription{
						{
							Kind:          feemstypes.ComponentKindMainEngine,
							Name:          "main-1",
							RatedPowerKW:  1000,
							RatedSpeedRPM: 720,
							BSFCCurve:     []curve.Point{{X: 0, Y: 200}, {X: 1, Y: 200}},
							EffCurve:      []curve.Point{{X: 0, Y: 0.95}, {X: 1, Y: 0.95}},
							FuelKind:      fuel.KindDiesel,
							FuelOrigin:    fuel.OriginFossil,
							Cycle:         feemstypes.EngineCycleDiesel,
							NOxMethod:     feemstypes.NOxMethodTier2,
						},
						{
							Kind:         feemstypes.ComponentKindPTIPTO,
							Name:         "pti-1",
							RatedPowerKW: 1000,
							EffCurve:     []curve.Point{{X: 0, Y: 0.90}, {X: 1, Y: 0.90}},
						},
					},
				},
			},
		},
	}

	sys, err := Build(desc)
	assert.NilError(t, err)
	assert.Equal(t, len(sys.Arena), 2)
	assert.Assert(t, sys.Mechanical != nil)
	assert.Equal(t, len(sys.Mechanical.Shaftlines[0].MainEngineIdx), 1)
	assert.Equal(t, len(sys.Mechanical.Shaftlines[0].PTIPTOIdx), 1)

	sys.Mechanical.Arena[0].StageCommonSeries(constStatus(1, false), constFloat(1, 0))
	sys.Mechanical.Shaftlines[0].PropellerDemandKW = constFloat(1, 800)
	sys.Mechanical.Shaftlines[0].PTIPTODemandKW = constFloat(1, -800)

	res, err := sys.Mechanical.Run(system.Options{FuelRegime: fuel.RegimeIMO, TimestepSeconds: 600})
	assert.NilError(t, err)

	var mainOut float64
	for _, row := range res.DetailResult {
		if row.Name == "main-1" {
			mainOut = row.PowerOutputKW
		}
	}
	assert.Equal(t, mainOut, 0.0)
}

func TestBuildRejectsDuplicateComponentNames(t *testing.T) {
	desc := SystemDescription{
		Name:           "bad-vessel",
		PropulsionType: PropulsionElectric,
		ElectricSystem: &ElectricSystemDescription{
			Switchboards: []SwitchboardDescription{
				{
					ID: 1,
					Subsystems: []SubsystemDescription{
						{Kind: feemstypes.ComponentKindShorePower, Name: "dup", RatedPowerKW: 500},
						{Kind: feemstypes.ComponentKindShorePower, Name: "dup", RatedPowerKW: 500},
					},
				},
			},
		},
	}

	_, err := Build(desc)
	assert.ErrorContains(t, err, "duplicate component name")
}
