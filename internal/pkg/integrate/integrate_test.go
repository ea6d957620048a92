package integrate

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/ohowland/feems/internal/pkg/feemstypes"
)

func TestSeriesTrapezoidConstant(t *testing.T) {
	values := make([]float64, 60)
	for i := range values {
		values[i] = 475
	}
	e := Series(values, 60, feemstypes.IntegrationTrapezoid)
	assert.Equal(t, e, 475.0*59*60)
}

func TestSeriesSumWithInterval(t *testing.T) {
	values := []float64{100, 100, 100}
	e := Series(values, 10, feemstypes.IntegrationSumWithInterval)
	assert.Equal(t, e, 3000.0)
}

func TestSeriesSimpsonFallsBackOnOddRemainder(t *testing.T) {
	values := []float64{0, 1, 2, 3}
	e := Series(values, 1, feemstypes.IntegrationSimpson)
	assert.Assert(t, e > 0)
}

func TestRunningHoursAllOn(t *testing.T) {
	status := make([]bool, 60)
	for i := range status {
		status[i] = true
	}
	hrs := RunningHours(status, 60)
	assert.Equal(t, hrs, 1.0)
}
