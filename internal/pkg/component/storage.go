package component

import (
	"math"

	"github.com/ohowland/feems/internal/pkg/errs"
)

// StorageStep is the result of integrating a battery/supercapacitor
// one timestep forward (spec §4.5).
type StorageStep struct {
	PowerInKW float64
	SoCNext   float64
	Clipped   bool
}

// clipStoragePower bounds a requested charge/discharge power to the
// component's C-rate limits.
func clipStoragePower(c *Component, pInKW float64) float64 {
	maxCharge := c.ChargingRateC * c.RatedCapacityKWh
	maxDischarge := c.DischargeRateC * c.RatedCapacityKWh
	if pInKW > maxCharge {
		return maxCharge
	}
	if pInKW < -maxDischarge {
		return -maxDischarge
	}
	return pInKW
}

// StepStorage integrates one timestep of the battery/supercapacitor
// SoC update (spec §4.5): positive pInKW charges, negative discharges.
// If strict is true and the requested power cannot be served without
// leaving [SoeMin, SoeMax], a StorageSaturation error is returned;
// otherwise the power is clipped to the achievable value and Clipped
// is set.
func StepStorage(c *Component, socNow float64, pInKW, deltaTSeconds float64, strict bool) (StorageStep, error) {
	requested := clipStoragePower(c, pInKW)

	var deltaEnergyKWh float64
	if requested >= 0 {
		deltaEnergyKWh = requested * (deltaTSeconds / 3600.0) * c.EffCharging
	} else {
		deltaEnergyKWh = requested * (deltaTSeconds / 3600.0) / c.EffDischarging
	}

	selfDischarge := c.SelfDischargePerDay * deltaTSeconds / 86400.0
	socRaw := socNow + deltaEnergyKWh/c.RatedCapacityKWh - selfDischarge

	if socRaw < c.SoeMin || socRaw > c.SoeMax {
		if strict {
			bound := c.SoeMax
			if socRaw < c.SoeMin {
				bound = c.SoeMin
			}
			return StorageStep{}, &errs.StorageSaturation{
				ComponentName: c.Name,
				RequestedSoC:  socRaw,
				Bound:         bound,
			}
		}
		clippedSoC := socRaw
		if clippedSoC < c.SoeMin {
			clippedSoC = c.SoeMin
		}
		if clippedSoC > c.SoeMax {
			clippedSoC = c.SoeMax
		}
		achieved := 0.0
		if hours := deltaTSeconds / 3600.0; hours > 0 {
			achievedKWh := (clippedSoC - socNow + selfDischarge) * c.RatedCapacityKWh
			if achievedKWh >= 0 {
				achieved = achievedKWh / hours / c.EffCharging
			} else {
				achieved = achievedKWh / hours * c.EffDischarging
			}
		}
		achieved = math.Max(math.Min(achieved, math.Max(requested, 0)), math.Min(requested, 0))
		return StorageStep{PowerInKW: achieved, SoCNext: clippedSoC, Clipped: true}, nil
	}

	return StorageStep{PowerInKW: requested, SoCNext: socRaw, Clipped: requested != pInKW}, nil
}
