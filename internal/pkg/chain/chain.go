// Package chain implements the serial composition algebra used to
// collapse an ordered run of atomic components (spec §4.4): forward
// and reverse power propagation through the chain, total efficiency as
// the product of stage efficiencies, and chain-level load ratio.
package chain

import (
	"github.com/ohowland/feems/internal/pkg/component"
	"github.com/ohowland/feems/internal/pkg/errs"
)

// SerialChain is an ordered, homogeneous sequence of component
// variants carrying the same signal path (spec §3 SerialChain, §9:
// "serial chains hold a homogeneous ordered sequence of variants").
type SerialChain struct {
	Stages []component.Component
}

// New builds a SerialChain from an ordered stage list; at least one
// stage is required.
func New(stages []component.Component) (SerialChain, error) {
	if len(stages) == 0 {
		return SerialChain{}, &errs.ConfigurationError{Reason: "serial chain requires at least one stage"}
	}
	return SerialChain{Stages: stages}, nil
}

// StageResult is the per-stage outcome of a chain propagation.
type StageResult struct {
	PowerOutKW float64
	PowerInKW  float64
	LoadRatio  float64
	Efficiency float64
}

// Result is the full outcome of propagating power through a
// SerialChain in one direction.
type Result struct {
	Stages        []StageResult
	TotalEta      float64
	ChainLoad     float64
	HeadPowerKW   float64
	TailPowerKW   float64
}

// RatedPower returns the rated power of the chain (the tail stage's,
// by convention the one nearest the consumer/load end).
func (sc SerialChain) RatedPower() float64 {
	return sc.Stages[len(sc.Stages)-1].RatedPowerKW
}

// PropagateReverse runs the chain's reverse pass: given the tail
// stage's output power (closest to the load), it computes each
// upstream stage's required input power working back to the head
// (spec §4.4): `P_in_i = P_out_i / eta_i(|P_out_i|/rated_i)`, with
// `P_out_i = P_in_{i+1}`.
//
// Used when a consumer's demanded power at the bus must be translated
// into the power its serial chain draws from upstream (reversing each
// consumer's chain, spec §4.6 step 1 demand aggregation), or to feed
// an energy storage in charging / a PTO in reverse.
func (sc SerialChain) PropagateReverse(pOutTailKW float64) (Result, error) {
	n := len(sc.Stages)
	stageResults := make([]StageResult, n)
	totalEta := 1.0

	pOut := pOutTailKW
	for i := n - 1; i >= 0; i-- {
		stage := &sc.Stages[i]
		pIn, load, err := component.SetPowerInputFromOutput(stage, pOut)
		if err != nil {
			return Result{}, err
		}
		eta, err := component.Efficiency(stage, load)
		if err != nil {
			return Result{}, err
		}
		if eta <= 1e-9 {
			return Result{}, &errs.PowerBalance{Reason: "serial chain stage has zero efficiency, chain is infeasible"}
		}
		stageResults[i] = StageResult{PowerOutKW: pOut, PowerInKW: pIn, LoadRatio: load, Efficiency: eta}
		totalEta *= eta
		pOut = pIn
	}

	tailLoad := stageResults[n-1].LoadRatio

	return Result{
		Stages:      stageResults,
		TotalEta:    totalEta,
		ChainLoad:   tailLoad,
		HeadPowerKW: pOut,
		TailPowerKW: pOutTailKW,
	}, nil
}

// PropagateForward runs the chain's forward pass: given the head
// stage's input power, computes each downstream stage's output power
// working to the tail (spec §4.4's symmetric forward case, used when a
// source's available power must be carried to the bus through its own
// serial chain, e.g. a genset's Engine -> ElectricMachine chain).
func (sc SerialChain) PropagateForward(pInHeadKW float64) (Result, error) {
	n := len(sc.Stages)
	stageResults := make([]StageResult, n)
	totalEta := 1.0

	pIn := pInHeadKW
	for i := 0; i < n; i++ {
		stage := &sc.Stages[i]
		pOut, load, err := component.SetPowerOutputFromInput(stage, pIn)
		if err != nil {
			return Result{}, err
		}
		eta, err := component.Efficiency(stage, load)
		if err != nil {
			return Result{}, err
		}
		if eta <= 1e-9 {
			return Result{}, &errs.PowerBalance{Reason: "serial chain stage has zero efficiency, chain is infeasible"}
		}
		stageResults[i] = StageResult{PowerOutKW: pOut, PowerInKW: pIn, LoadRatio: load, Efficiency: eta}
		totalEta *= eta
		pIn = pOut
	}

	return Result{
		Stages:      stageResults,
		TotalEta:    totalEta,
		ChainLoad:   stageResults[n-1].LoadRatio,
		HeadPowerKW: pInHeadKW,
		TailPowerKW: pIn,
	}, nil
}
