// Package errs implements the closed error taxonomy the FEEMS core
// reports to callers: ConfigurationError, PowerBalance,
// StorageSaturation, CurveDomain and InputShape. Construction errors
// and input-staging errors surface immediately with full context;
// solver errors propagate out of Run unless the caller opts into
// ignore_power_balance, in which case they are recorded as warnings.
package errs

import "fmt"

// ConfigurationError reports a topology that violates an invariant:
// an unknown node reference, a source with no curve, a USER fuel
// without a name, a non-monotone efficiency curve, and similar.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

// PowerBalance reports that the solver could not satisfy demand under
// the given status/load-sharing/capacity assignment.
type PowerBalance struct {
	NodeID      string
	ResidualKW  float64
	TimestepIdx int
	Reason      string
}

func (e *PowerBalance) Error() string {
	return fmt.Sprintf("power balance error at node %s, timestep %d: residual %.4f kW (%s)",
		e.NodeID, e.TimestepIdx, e.ResidualKW, e.Reason)
}

// StorageSaturation reports that a storage request would leave
// [soe_min, soe_max].
type StorageSaturation struct {
	ComponentName string
	TimestepIdx   int
	RequestedSoC  float64
	Bound         float64
}

func (e *StorageSaturation) Error() string {
	return fmt.Sprintf("storage saturation on %s at timestep %d: requested SoC %.6f exceeds bound %.6f",
		e.ComponentName, e.TimestepIdx, e.RequestedSoC, e.Bound)
}

// CurveDomain reports a lookup on an empty or malformed curve, or a
// NaN produced by a curve evaluation.
type CurveDomain struct {
	Reason string
}

func (e *CurveDomain) Error() string {
	return fmt.Sprintf("curve domain error: %s", e.Reason)
}

// InputShape reports per-timestep array lengths that disagree and
// cannot be resolved by broadcasting a length-1 array.
type InputShape struct {
	Reason string
}

func (e *InputShape) Error() string {
	return fmt.Sprintf("input shape error: %s", e.Reason)
}
