package chain

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/ohowland/feems/internal/pkg/component"
	"github.com/ohowland/feems/internal/pkg/curve"
	"github.com/ohowland/feems/internal/pkg/feemstypes"
)

func flatStage(name string, ratedKW, eta float64) component.Component {
	eff, _ := curve.NewEfficiencyCurve([]curve.Point{{X: 0, Y: eta}, {X: 1, Y: eta}})
	return component.New(name, feemstypes.ComponentKindPowerConverter, feemstypes.PowerRoleTransmission, ratedKW, eff)
}

func TestPropagateReverseUnityEfficiencyIsTransparent(t *testing.T) {
	sc, err := New([]component.Component{flatStage("s1", 1000, 1.0), flatStage("s2", 1000, 1.0)})
	assert.NilError(t, err)

	result, err := sc.PropagateReverse(500)
	assert.NilError(t, err)
	assert.Equal(t, result.HeadPowerKW, 500.0)
	assert.Equal(t, result.TotalEta, 1.0)
}

func TestPropagateReverseDriveTrainDemand(t *testing.T) {
	sc, err := New([]component.Component{
		flatStage("stage1", 2000, 0.98),
		flatStage("stage2", 2000, 0.97),
		flatStage("stage3", 2000, 0.95),
	})
	assert.NilError(t, err)

	result, err := sc.PropagateReverse(1000)
	assert.NilError(t, err)
	assert.Assert(t, result.HeadPowerKW > 1107.0 && result.HeadPowerKW < 1108.0)
}
