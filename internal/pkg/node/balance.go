package node

import (
	"sort"

	"github.com/ohowland/feems/internal/pkg/errs"
)

// SourceInput is one running/standby source's load-sharing input for
// a single timestep.
type SourceInput struct {
	Idx             int // index into the caller's component arena
	Name            string
	Status          bool
	RatedPowerKW    float64
	LoadSharingMode float64 // 0 = equal (weight = rated power), >0 = explicit weight
	BaseLoadOrder   int     // 0 = none; otherwise priority promotion order, lowest first
}

// Options configures a single Balance call.
type Options struct {
	MaxAllowedLoadFraction    float64 // default 1.0 if zero
	AverageBaseLoadPercentage float64 // 0..100
	IgnorePowerBalance        bool
	NodeID                    string
	TimestepIdx               int
}

// Result is the per-source power assignment produced by Balance.
type Result struct {
	SharesKW map[int]float64 // source Idx -> assigned P_out_kW
	Warnings []error
}

// Balance distributes D_residual across the given running sources
// following spec §4.6 steps 3-6: symmetric load sharing by weight,
// base_load_order promotion, and capacity redistribution of any
// overloaded share across sources with free headroom.
//
// demandKW is the residual demand after pooling bus-tied nodes and
// subtracting priority-source contribution (shore power on a
// switchboard, PTI on a shaftline; spec §4.6 steps 1-2), computed by
// the caller.
func Balance(sources []SourceInput, demandKW float64, opts Options) (Result, error) {
	maxFraction := opts.MaxAllowedLoadFraction
	if maxFraction <= 0 {
		maxFraction = 1.0
	}

	running := make([]SourceInput, 0, len(sources))
	for _, s := range sources {
		if s.Status {
			running = append(running, s)
		}
	}

	shares := make(map[int]float64, len(running))
	if len(running) == 0 {
		if demandKW > 1e-9 {
			return unresolvable(demandKW, opts)
		}
		return Result{SharesKW: shares}, nil
	}

	// Step 3: symmetric load sharing by weight.
	totalWeight := 0.0
	weight := make(map[int]float64, len(running))
	for _, s := range running {
		w := s.LoadSharingMode
		if w <= 0 {
			w = s.RatedPowerKW
		}
		weight[s.Idx] = w
		totalWeight += w
	}
	if totalWeight > 0 {
		for _, s := range running {
			shares[s.Idx] = weight[s.Idx] / totalWeight * demandKW
		}
	}

	// base_load_order promotion: priority sources loaded to at least
	// AverageBaseLoadPercentage of rated power first, demoted only if
	// capacity exceeds demand (spec §4.6 tie-break rule).
	applyBaseLoadPromotion(running, shares, demandKW, opts.AverageBaseLoadPercentage)

	// Step 4: capacity redistribution, iterating until all shares fit
	// their cap or no headroom remains.
	capacities := make(map[int]float64, len(running))
	for _, s := range running {
		capacities[s.Idx] = s.RatedPowerKW * maxFraction
	}
	redistributeOverCapacity(running, shares, capacities)

	total := 0.0
	for _, v := range shares {
		total += v
	}
	residual := demandKW - total
	if residual > 1e-6 {
		// no headroom left to absorb the residual
		if !opts.IgnorePowerBalance {
			return Result{}, &errs.PowerBalance{
				NodeID:      opts.NodeID,
				ResidualKW:  residual,
				TimestepIdx: opts.TimestepIdx,
				Reason:      "insufficient running-source capacity to meet demand",
			}
		}
		return Result{SharesKW: shares, Warnings: []error{&errs.PowerBalance{
			NodeID:      opts.NodeID,
			ResidualKW:  residual,
			TimestepIdx: opts.TimestepIdx,
			Reason:      "insufficient running-source capacity; continuing with clipped distribution",
		}}}, nil
	}

	return Result{SharesKW: shares}, nil
}

func unresolvable(demandKW float64, opts Options) (Result, error) {
	err := &errs.PowerBalance{
		NodeID:      opts.NodeID,
		ResidualKW:  demandKW,
		TimestepIdx: opts.TimestepIdx,
		Reason:      "no running sources available to meet demand",
	}
	if opts.IgnorePowerBalance {
		return Result{SharesKW: map[int]float64{}, Warnings: []error{err}}, nil
	}
	return Result{}, err
}

// applyBaseLoadPromotion raises any source with BaseLoadOrder > 0 to
// at least avgBaseLoadPercentage% of its rated power, processed in
// ascending BaseLoadOrder, pulling the shortfall from non-priority
// sources (or lower-priority ones) with remaining share. Promotion
// only proceeds while total demand exceeds what the promoted sources
// would otherwise carry; it never promotes a source past demand.
func applyBaseLoadPromotion(running []SourceInput, shares map[int]float64, demandKW, avgBaseLoadPercentage float64) {
	if avgBaseLoadPercentage <= 0 || demandKW <= 0 {
		return
	}
	priority := make([]SourceInput, 0)
	for _, s := range running {
		if s.BaseLoadOrder > 0 {
			priority = append(priority, s)
		}
	}
	if len(priority) == 0 {
		return
	}
	sort.Slice(priority, func(i, j int) bool { return priority[i].BaseLoadOrder < priority[j].BaseLoadOrder })

	for _, p := range priority {
		floor := p.RatedPowerKW * avgBaseLoadPercentage / 100.0
		if shares[p.Idx] >= floor {
			continue
		}
		shortfall := floor - shares[p.Idx]
		// pull shortfall proportionally from non-priority and
		// lower-priority running sources, never more than they carry
		donorsTotal := 0.0
		for _, s := range running {
			if s.Idx != p.Idx && (s.BaseLoadOrder == 0 || s.BaseLoadOrder > p.BaseLoadOrder) {
				donorsTotal += shares[s.Idx]
			}
		}
		if donorsTotal <= 0 {
			continue
		}
		if shortfall > donorsTotal {
			shortfall = donorsTotal
		}
		shares[p.Idx] += shortfall
		for _, s := range running {
			if s.Idx == p.Idx || (s.BaseLoadOrder > 0 && s.BaseLoadOrder <= p.BaseLoadOrder) {
				continue
			}
			take := shortfall * (shares[s.Idx] / donorsTotal)
			shares[s.Idx] -= take
			if shares[s.Idx] < 0 {
				shares[s.Idx] = 0
			}
		}
	}
}

// redistributeOverCapacity caps any source's share at its capacity and
// redistributes the excess across running sources with free headroom,
// iterating until stable (spec §4.6 step 4).
func redistributeOverCapacity(running []SourceInput, shares map[int]float64, capacities map[int]float64) {
	for pass := 0; pass < len(running)+1; pass++ {
		excess := 0.0
		for _, s := range running {
			if shares[s.Idx] > capacities[s.Idx] {
				excess += shares[s.Idx] - capacities[s.Idx]
				shares[s.Idx] = capacities[s.Idx]
			}
		}
		if excess <= 1e-9 {
			return
		}
		headroomTotal := 0.0
		headroom := make(map[int]float64, len(running))
		for _, s := range running {
			h := capacities[s.Idx] - shares[s.Idx]
			if h > 0 {
				headroom[s.Idx] = h
				headroomTotal += h
			}
		}
		if headroomTotal <= 1e-9 {
			return // no headroom anywhere; caller reports residual
		}
		for _, s := range running {
			h, ok := headroom[s.Idx]
			if !ok {
				continue
			}
			shares[s.Idx] += excess * (h / headroomTotal)
		}
	}
}
