package node

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestBalanceTwoIdenticalGensetsEqualShare(t *testing.T) {
	sources := []SourceInput{
		{Idx: 0, Name: "genset-1", Status: true, RatedPowerKW: 1000},
		{Idx: 1, Name: "genset-2", Status: true, RatedPowerKW: 1000},
	}
	result, err := Balance(sources, 700, Options{})
	assert.NilError(t, err)
	assert.Equal(t, result.SharesKW[0], 350.0)
	assert.Equal(t, result.SharesKW[1], 350.0)
}

func TestBalanceSkipsStandbySources(t *testing.T) {
	sources := []SourceInput{
		{Idx: 0, Name: "shore", Status: true, RatedPowerKW: 1000},
		{Idx: 1, Name: "genset-1", Status: false, RatedPowerKW: 1000},
	}
	result, err := Balance(sources, 500, Options{})
	assert.NilError(t, err)
	assert.Equal(t, result.SharesKW[0], 500.0)
	_, ok := result.SharesKW[1]
	assert.Assert(t, !ok)
}

func TestBalanceCapacityRedistribution(t *testing.T) {
	sources := []SourceInput{
		{Idx: 0, Name: "small", Status: true, RatedPowerKW: 100, LoadSharingMode: 1},
		{Idx: 1, Name: "large", Status: true, RatedPowerKW: 1000, LoadSharingMode: 1},
	}
	// Equal-weight sharing would be 550/550, but "small" caps at 100.
	result, err := Balance(sources, 1100, Options{})
	assert.NilError(t, err)
	assert.Equal(t, result.SharesKW[0], 100.0)
	assert.Equal(t, result.SharesKW[1], 1000.0)
}

func TestBalanceReturnsPowerBalanceErrorWhenInsufficientCapacity(t *testing.T) {
	sources := []SourceInput{
		{Idx: 0, Name: "genset-1", Status: true, RatedPowerKW: 500},
	}
	_, err := Balance(sources, 800, Options{NodeID: "sw-1", TimestepIdx: 3})
	assert.ErrorContains(t, err, "power balance error")
}

func TestBalanceIgnorePowerBalanceRecordsWarning(t *testing.T) {
	sources := []SourceInput{
		{Idx: 0, Name: "genset-1", Status: true, RatedPowerKW: 500},
	}
	result, err := Balance(sources, 800, Options{IgnorePowerBalance: true})
	assert.NilError(t, err)
	assert.Equal(t, len(result.Warnings), 1)
	assert.Equal(t, result.SharesKW[0], 500.0)
}

func TestBalanceBaseLoadPromotion(t *testing.T) {
	sources := []SourceInput{
		{Idx: 0, Name: "priority", Status: true, RatedPowerKW: 1000, BaseLoadOrder: 1},
		{Idx: 1, Name: "secondary", Status: true, RatedPowerKW: 1000},
	}
	// The 500 kW base-load floor exceeds the 400 kW demand, so the
	// priority source is demoted to carry the whole demand.
	result, err := Balance(sources, 400, Options{AverageBaseLoadPercentage: 50})
	assert.NilError(t, err)
	assert.Assert(t, result.SharesKW[0] >= 400.0-1e-6)
}
