package fuel

import "fmt"

// WithEmissionCurveGHGOverrides returns a copy of f whose TTW factor
// row for consumerClass has its CH4 and/or N2O replaced by
// per-timestep values read off an engine's own emission curves (spec
// §4.2 step 5). Either override series may be nil to leave that
// species untouched. f itself is never mutated.
func WithEmissionCurveGHGOverrides(f Fuel, consumerClass ConsumerClass, ch4OverrideGPerG, n2oOverrideGPerG []float64) (Fuel, error) {
	cp := f.Copy()
	found := false
	for i := range cp.TTWFactors {
		if cp.TTWFactors[i].ConsumerClass != consumerClass {
			continue
		}
		found = true
		if ch4OverrideGPerG != nil {
			cp.TTWFactors[i] = cp.TTWFactors[i].withOverriddenCH4(ch4OverrideGPerG)
		}
		if n2oOverrideGPerG != nil {
			cp.TTWFactors[i] = cp.TTWFactors[i].withOverriddenN2O(n2oOverrideGPerG)
		}
	}
	if !found {
		return Fuel{}, fmt.Errorf("fuel %s has no TTW factor row for consumer class %s to override", cp.Key(), consumerClass)
	}
	return cp, nil
}
