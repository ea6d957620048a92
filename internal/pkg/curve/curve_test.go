package curve

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestLookupLinearInterpolation(t *testing.T) {
	c, err := New([]Point{{0, 0}, {1, 10}})
	assert.NilError(t, err)

	y, err := c.Lookup(0.5)
	assert.NilError(t, err)
	assert.Equal(t, y, 5.0)
}

func TestLookupClampsOutsideDomain(t *testing.T) {
	c, err := New([]Point{{0.2, 1}, {0.8, 2}})
	assert.NilError(t, err)

	below, err := c.Lookup(-1)
	assert.NilError(t, err)
	assert.Equal(t, below, 1.0)

	above, err := c.Lookup(5)
	assert.NilError(t, err)
	assert.Equal(t, above, 2.0)
}

func TestEfficiencyCurveFloorAndCeiling(t *testing.T) {
	c, err := NewEfficiencyCurve([]Point{{0, 0}, {1, 1.5}})
	assert.NilError(t, err)

	lowLoad, err := c.Lookup(0)
	assert.NilError(t, err)
	assert.Equal(t, lowLoad, EfficiencyFloor)

	highLoad, err := c.Lookup(1)
	assert.NilError(t, err)
	assert.Equal(t, highLoad, EfficiencyCeiling)
}

func TestNewRejectsEmptyCurve(t *testing.T) {
	_, err := New(nil)
	assert.ErrorContains(t, err, "no points")
}

func TestNewRejectsDuplicateX(t *testing.T) {
	_, err := New([]Point{{0.5, 1}, {0.5, 2}})
	assert.ErrorContains(t, err, "duplicate")
}

func TestNewSortsUnorderedPoints(t *testing.T) {
	c, err := New([]Point{{1, 10}, {0, 0}})
	assert.NilError(t, err)
	y, err := c.Lookup(0.5)
	assert.NilError(t, err)
	assert.Equal(t, y, 5.0)
}
