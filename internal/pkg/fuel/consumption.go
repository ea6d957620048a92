package fuel

// FuelConsumption is a multiset of Fuel entries, aggregated on demand
// by AggregationKey (spec §3: "kind, origin, regime[, name]"). Entries
// sharing a key are summed element-wise over MassOrMassFraction;
// entries with different keys are kept apart so downstream reporting
// can break totals down per fuel type.
type FuelConsumption struct {
	entries []Fuel
}

// NewFuelConsumption builds a FuelConsumption from zero or more Fuel
// entries, aggregating any that share a key.
func NewFuelConsumption(fuels ...Fuel) FuelConsumption {
	fc := FuelConsumption{}
	for _, f := range fuels {
		fc.Add(f)
	}
	return fc
}

// Add merges f into the bag, summing into an existing entry that
// shares f's AggregationKey or appending a new one otherwise.
func (fc *FuelConsumption) Add(f Fuel) {
	key := f.Key()
	for i := range fc.entries {
		if fc.entries[i].Key() == key {
			fc.entries[i] = sumMass(fc.entries[i], f)
			return
		}
	}
	fc.entries = append(fc.entries, f.Copy())
}

// sumMass returns a copy of a with b's MassOrMassFraction added
// element-wise (broadcasting a length-1 operand across the other's
// length, matching the scalar/timeseries convention used by
// GhgFactorTTW).
func sumMass(a, b Fuel) Fuel {
	cp := a.Copy()
	n := len(a.MassOrMassFraction)
	if len(b.MassOrMassFraction) > n {
		n = len(b.MassOrMassFraction)
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = massAt(a.MassOrMassFraction, i) + massAt(b.MassOrMassFraction, i)
	}
	cp.MassOrMassFraction = out
	return cp
}

func massAt(mass []float64, i int) float64 {
	if len(mass) == 0 {
		return 0
	}
	if len(mass) == 1 {
		return mass[0]
	}
	return mass[i]
}

// Entries returns the bag's distinct Fuel entries, one per
// AggregationKey present.
func (fc FuelConsumption) Entries() []Fuel {
	out := make([]Fuel, len(fc.entries))
	copy(out, fc.entries)
	return out
}

// Mul returns a copy of fc with every entry's MassOrMassFraction
// scaled by factor (used to convert a mass-flow rate into mass over a
// timestep, or vice versa).
func (fc FuelConsumption) Mul(factor float64) FuelConsumption {
	out := FuelConsumption{entries: make([]Fuel, len(fc.entries))}
	for i, e := range fc.entries {
		cp := e.Copy()
		for j := range cp.MassOrMassFraction {
			cp.MassOrMassFraction[j] *= factor
		}
		out.entries[i] = cp
	}
	return out
}

// TotalMass returns the sum of every entry's total mass (all
// timesteps, all fuel kinds).
func (fc FuelConsumption) TotalMass() float64 {
	total := 0.0
	for _, e := range fc.entries {
		for _, m := range e.MassOrMassFraction {
			total += m
		}
	}
	return total
}

// ByMassFraction returns each entry's mass as a fraction of the bag's
// TotalMass, keyed by AggregationKey (spec §3 supplement: per-fuel
// mass-fraction breakdown for reporting). Returns an empty map when
// the bag carries no mass.
func (fc FuelConsumption) ByMassFraction() map[AggregationKey]float64 {
	total := fc.TotalMass()
	out := make(map[AggregationKey]float64, len(fc.entries))
	if total == 0 {
		return out
	}
	for _, e := range fc.entries {
		sum := 0.0
		for _, m := range e.MassOrMassFraction {
			sum += m
		}
		out[e.Key()] = sum / total
	}
	return out
}

// TotalCO2Emissions returns the summed TTW CO2-equivalent mass (same
// units as MassOrMassFraction) across every entry and timestep,
// looking up every entry's TTW factor (via TTWFactorFor) for the one
// consumerClass argument.
func (fc FuelConsumption) TotalCO2Emissions(consumerClass ConsumerClass) (float64, error) {
	total := 0.0
	for _, e := range fc.entries {
		row, err := e.TTWFactorFor(consumerClass)
		if err != nil {
			return 0, err
		}
		carbonFraction := e.CarbonFractionOfFuel()
		for i, m := range e.MassOrMassFraction {
			total += m * row.CO2eqAt(i, carbonFraction)
		}
	}
	return total, nil
}
