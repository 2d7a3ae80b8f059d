// Package instruction implements the atomic, reversible mutation system
// described in spec.md §4.3/§8: every change to a battle's state during
// turn resolution is expressed as an Instruction carrying enough
// information to undo itself, and generation code never mutates a State
// directly.
//
// The shape is grounded on the teacher's command pattern
// (tactical/squadcommands/command.go's SquadCommand interface and
// move_unit_command.go's "capture old value, mutate, use the captured
// value to undo" idiom), generalized from squad-management operations to
// every battle mutation spec.md §4.3 names.
package instruction

import "pokebattle/state"

// Instruction is one atomic, reversible mutation against a *state.State.
// Apply(s); Revert(s) must leave s bitwise-equal to its pre-Apply value
// (spec §4.3, property-tested in instruction_test.go).
type Instruction interface {
	Apply(s *state.State)
	Revert(s *state.State)
	Describe() string
}

// ApplyAll applies ins in order.
func ApplyAll(s *state.State, ins []Instruction) {
	for _, i := range ins {
		i.Apply(s)
	}
}

// RevertAll reverts ins in reverse order, the exact inverse of ApplyAll.
func RevertAll(s *state.State, ins []Instruction) {
	for i := len(ins) - 1; i >= 0; i-- {
		ins[i].Revert(s)
	}
}

// InstructionSet is one probability-weighted outcome branch of a turn
// (spec §4.3/§GLOSSARY). A single generation call returns a slice of
// InstructionSet whose Probability fields sum to 1 within 1e-6 (spec §8).
type InstructionSet struct {
	Probability  float64
	Instructions []Instruction

	// Trace is an optional, human-readable log of what happened in this
	// branch, grounded on the teacher's combat-log reporting
	// (tactical/combat/battlelog). It is never consulted for correctness —
	// pure diagnostic output, populated only when turn.Options.Trace is set.
	Trace []string
}

// Apply applies every instruction in the set, in order.
func (set InstructionSet) Apply(s *state.State) { ApplyAll(s, set.Instructions) }

// Revert reverts every instruction in the set, in reverse order.
func (set InstructionSet) Revert(s *state.State) { RevertAll(s, set.Instructions) }

// Append returns a new InstructionSet with extra instructions appended.
// Used by composers that build up a branch incrementally.
func (set InstructionSet) Append(extra ...Instruction) InstructionSet {
	out := InstructionSet{Probability: set.Probability, Trace: set.Trace}
	out.Instructions = append(out.Instructions, set.Instructions...)
	out.Instructions = append(out.Instructions, extra...)
	return out
}

// Log appends a trace line (no-op if the branch carries no trace buffer
// yet; callers that want tracing initialize Trace to a non-nil empty slice
// on the root branch).
func (set *InstructionSet) Log(line string) {
	if set.Trace != nil {
		set.Trace = append(set.Trace, line)
	}
}

// Sum returns the total probability across sets, used to validate spec §8's
// "sum to 1 within 1e-6" property and to renormalize after pruning.
func Sum(sets []InstructionSet) float64 {
	var total float64
	for _, s := range sets {
		total += s.Probability
	}
	return total
}

// Prune drops branches whose probability falls below floor and renormalizes
// the remainder so probabilities again sum to 1 (spec §4.3's "implementer-
// configurable floor" and §9's "runtime parameter" resolution).
func Prune(sets []InstructionSet, floor float64) []InstructionSet {
	if floor <= 0 {
		return sets
	}
	kept := make([]InstructionSet, 0, len(sets))
	for _, s := range sets {
		if s.Probability >= floor {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		return sets // never prune everything away
	}
	total := Sum(kept)
	if total <= 0 {
		return kept
	}
	for i := range kept {
		kept[i].Probability /= total
	}
	return kept
}

// CrossProduct combines two independent sets of branches (e.g. side A's
// action outcomes and side B's action outcomes) into the Cartesian product,
// multiplying probabilities and concatenating instructions in a then b
// order (spec §4.7 phase 4: "branches multiply across sequential actions").
func CrossProduct(a, b []InstructionSet) []InstructionSet {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make([]InstructionSet, 0, len(a)*len(b))
	for _, x := range a {
		for _, y := range b {
			merged := InstructionSet{
				Probability:  x.Probability * y.Probability,
				Instructions: append(append([]Instruction{}, x.Instructions...), y.Instructions...),
			}
			if x.Trace != nil || y.Trace != nil {
				merged.Trace = append(append([]string{}, x.Trace...), y.Trace...)
			}
			out = append(out, merged)
		}
	}
	return out
}
