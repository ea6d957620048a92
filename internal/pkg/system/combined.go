package system

import (
	"github.com/ohowland/feems/internal/pkg/chain"
	"github.com/ohowland/feems/internal/pkg/result"
)

// PTICoupling binds one shaftline's PTI/PTO power series to an
// electric switchboard through the conversion chain sitting between
// shaft and bus (electric machine, any converter stage): spec §4.8's
// "PTI/PTO demand injected as either a source (PTO) or consumer
// (PTI)".
type PTICoupling struct {
	ShaftlineIdx   int
	SwitchboardIdx int
	Chain          chain.SerialChain
}

// MechanicalPropulsionSystemWithElectricPowerSystem couples a
// MechanicalPropulsionSystem and an ElectricPowerSystem through one or
// more PTICouplings (spec §4.8 Hybrid coupling): the shaftline solver
// runs first, producing the PTI/PTO power seen from the mechanical
// side; each coupling's chain translates that into an adjustment of
// its target switchboard's consumer demand before the electric solver
// runs.
type MechanicalPropulsionSystemWithElectricPowerSystem struct {
	Mechanical MechanicalPropulsionSystem
	Electric   ElectricPowerSystem
	Couplings  []PTICoupling
}

// Run executes the mechanical solver, projects its PTI/PTO power onto
// the coupled switchboards, then executes the electric solver. Per
// spec §4.8, `get_fuel_energy_consumption_running_time` returns two
// aggregated results, one per subsystem; callers that want one
// combined view can fold them with result.Result.MergeFreezeDuration.
func (s MechanicalPropulsionSystemWithElectricPowerSystem) Run(mechOpts, elecOpts Options) (mechanical, electric *result.Result, err error) {
	mechanical, err = s.Mechanical.Run(mechOpts)
	if err != nil {
		return nil, nil, err
	}

	for _, coupling := range s.Couplings {
		if err := s.projectCoupling(coupling); err != nil {
			return nil, nil, err
		}
	}

	electric, err = s.Electric.Run(elecOpts)
	if err != nil {
		return nil, nil, err
	}
	return mechanical, electric, nil
}

// projectCoupling converts one shaftline's signed PTI/PTO power series
// into a consumer-demand adjustment on the coupled switchboard: a
// positive (PTO) shaft contribution is power the shaft hands to the
// electric side, propagated forward through the coupling chain and
// subtracted from demand; a negative (PTI) contribution is power the
// electric side must deliver to the shaft, propagated in reverse
// through the chain and added to demand.
func (s MechanicalPropulsionSystemWithElectricPowerSystem) projectCoupling(coupling PTICoupling) error {
	sl := s.Mechanical.Shaftlines[coupling.ShaftlineIdx]
	sw := &s.Electric.Switchboards[coupling.SwitchboardIdx]

	for t, shaftKW := range sl.PTIPTODemandKW {
		if t >= len(sw.ConsumerDemandKW) {
			break
		}
		if shaftKW >= 0 {
			propagated, err := coupling.Chain.PropagateForward(shaftKW)
			if err != nil {
				return err
			}
			sw.ConsumerDemandKW[t] -= propagated.TailPowerKW
		} else {
			propagated, err := coupling.Chain.PropagateReverse(-shaftKW)
			if err != nil {
				return err
			}
			sw.ConsumerDemandKW[t] += propagated.HeadPowerKW
		}
	}
	return nil
}

// HybridPropulsionSystem is the general entry point over a topology
// that may carry a mechanical subsystem, an electric subsystem, or
// both coupled by PTI/PTO (spec §6 topology schema's
// `propulsion_type: Mechanical|Electric|Hybrid`): it dispatches to
// whichever combination is present and always returns one result per
// subsystem present, merged into a single combined view (spec §4.8).
type HybridPropulsionSystem struct {
	Mechanical *MechanicalPropulsionSystem
	Electric   *ElectricPowerSystem
	Couplings  []PTICoupling
}

// Run executes whichever subsystems are configured and merges their
// results with MergeFreezeDuration, since a hybrid run always shares
// one timestep grid across its subsystems.
func (s HybridPropulsionSystem) Run(opts Options) (*result.Result, error) {
	combined := result.New()

	switch {
	case s.Mechanical != nil && s.Electric != nil:
		coupled := MechanicalPropulsionSystemWithElectricPowerSystem{
			Mechanical: *s.Mechanical,
			Electric:   *s.Electric,
			Couplings:  s.Couplings,
		}
		mechRes, elecRes, err := coupled.Run(opts, opts)
		if err != nil {
			return nil, err
		}
		combined.MergeFreezeDuration(mechRes)
		combined.MergeFreezeDuration(elecRes)
	case s.Mechanical != nil:
		mechRes, err := s.Mechanical.Run(opts)
		if err != nil {
			return nil, err
		}
		combined.MergeFreezeDuration(mechRes)
	case s.Electric != nil:
		elecRes, err := s.Electric.Run(opts)
		if err != nil {
			return nil, err
		}
		combined.MergeFreezeDuration(elecRes)
	}

	return combined, nil
}
