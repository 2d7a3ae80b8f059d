package turn

import (
	"pokebattle/instruction"
	"pokebattle/state"
)

// Options configures one GenerateTurn call.
type Options struct {
	// PruneFloor drops and renormalizes branches below this probability
	// (spec §4.3's implementer-configurable floor). Defaults to 1e-4 when
	// zero, the value recorded as this engine's open-question resolution.
	PruneFloor float64
	// Trace, when true, seeds every root branch with a non-nil Trace buffer
	// so composers/phases that call InstructionSet.Log leave a human-
	// readable record (diagnostic only, never consulted for correctness).
	Trace bool
}

func (o Options) pruneFloor() float64 {
	if o.PruneFloor == 0 {
		return 1e-4
	}
	return o.PruneFloor
}

// GenerateTurn resolves one full turn from two declared choices into the
// complete set of probability-weighted InstructionSet outcomes (spec §6's
// top-level generate_instructions operation, specialized to exactly two
// simultaneous choices — the two-side battle this engine models).
//
// Both choices are validated first; an invalid choice is the caller's
// error to fix (spec §7), not a branch of the returned distribution.
// Ordering, dispatch, and end-of-turn phases run by mutating s directly and
// reverting between branches, matching the reversible-instruction
// discipline of package instruction: each candidate branch is applied just
// long enough to discover the next phase's branches against a state that
// reflects everything so far, then reverted before the next branch in the
// same phase is explored, so GenerateTurn never leaves s mutated and never
// needs a full-state clone.
func GenerateTurn(s *state.State, resolver MoveResolver, orderIn OrderInput, a, b Choice, opts Options) ([]instruction.InstructionSet, error) {
	if err := ValidateChoice(s, a); err != nil {
		return nil, err
	}
	if err := ValidateChoice(s, b); err != nil {
		return nil, err
	}

	orderIn.State = s
	orderings := Order(orderIn, a, b)

	var final []instruction.InstructionSet
	for _, ord := range orderings {
		branches := expandActions(s, resolver, ord.Order, 0, nil)
		for i := range branches {
			branches[i].Probability *= ord.Probability
		}
		final = append(final, branches...)
	}

	final = mergeEndOfTurn(s, final)
	return instruction.Prune(final, opts.pruneFloor()), nil
}

// expandActions walks the ordered action list depth-first: for each branch
// already accumulated, apply it, dispatch the next action against the
// now-current state, multiply in its branch probabilities, then revert
// before trying the next sibling branch — so every branch this function
// returns reflects dispatching actions[idx] and actions[idx+1:] against the
// state actions[:idx]'s own branch would have produced, exactly matching
// spec §4.7 phase 4's sequential-dependency requirement.
func expandActions(s *state.State, resolver MoveResolver, actions []Action, idx int, prefix instruction.Instruction) []instruction.InstructionSet {
	if idx >= len(actions) {
		return []instruction.InstructionSet{{Probability: 1}}
	}
	act := actions[idx]
	p := s.PokemonAt(act.Choice.Pos)
	if p == nil || p.Fainted() {
		return expandActions(s, resolver, actions, idx+1, nil)
	}

	var thisStep []instruction.InstructionSet
	if act.Choice.Kind == ActionSwitch {
		thisStep = dispatchSwitch(s, act.Choice)
	} else {
		thisStep = dispatchMove(s, resolver, act.Choice)
	}

	var out []instruction.InstructionSet
	for _, branch := range thisStep {
		branch.Apply(s)
		rest := expandActions(s, resolver, actions, idx+1, nil)
		branch.Revert(s)

		for _, r := range rest {
			out = append(out, instruction.InstructionSet{
				Probability:  branch.Probability * r.Probability,
				Instructions: append(append([]instruction.Instruction{}, branch.Instructions...), r.Instructions...),
			})
		}
	}
	return out
}

// mergeEndOfTurn appends the fixed-order residual-effects pass to every
// branch the action phase produced. EndOfTurn itself never branches, so
// this is a flat append rather than a CrossProduct.
func mergeEndOfTurn(s *state.State, sets []instruction.InstructionSet) []instruction.InstructionSet {
	if len(sets) == 0 {
		sets = []instruction.InstructionSet{{Probability: 1}}
	}
	out := make([]instruction.InstructionSet, len(sets))
	for i, set := range sets {
		set.Apply(s)
		residual := EndOfTurn(s)
		set.Revert(s)
		out[i] = instruction.InstructionSet{
			Probability:  set.Probability,
			Instructions: append(append([]instruction.Instruction{}, set.Instructions...), residual...),
		}
	}
	return out
}
