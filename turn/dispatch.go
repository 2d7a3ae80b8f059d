package turn

import (
	"pokebattle/calc"
	"pokebattle/effect"
	"pokebattle/ids"
	"pokebattle/instruction"
	"pokebattle/state"
	"pokebattle/target"
)

// MoveResolver looks up a move's declarative data and composer, the
// boundary this package calls into the (otherwise out-of-scope) data
// repository and move registry through. Kept as an interface rather than a
// direct import of package registry so turn never hard-depends on exactly
// how moves got registered (this package's tests pass registry.Resolver).
type MoveResolver interface {
	MoveData(id ids.Move) (effect.MoveData, bool)
	Composer(id ids.Move, data effect.MoveData) effect.Composer
}

// dispatchMove resolves one move-use action into its InstructionSet
// branches: target resolution, then the move's composer against the
// current (mutable) state.
func dispatchMove(s *state.State, resolver MoveResolver, c Choice) []instruction.InstructionSet {
	user := s.PokemonAt(c.Pos)
	if user == nil || user.Fainted() {
		return []instruction.InstructionSet{{Probability: 1}}
	}
	if user.Volatiles.Has(state.VolFlinch) {
		return []instruction.InstructionSet{{Probability: 1}} // flinched: move skipped, no PP spent
	}
	slot := user.Moves[c.MoveSlot]
	data, ok := resolver.MoveData(slot.Move)
	if !ok {
		data = effect.MoveData{Category: effect.Status}
	}

	chosen := c.Targets
	if len(chosen) == 0 {
		chosen = target.DefaultChosen(s, data.TargetCat, c.Pos)
	}
	resolved, err := target.Resolve(s, data.TargetCat, c.Pos, chosen)
	if err != nil {
		// illegal target: move fails silently, PP still spent
		pp := &instruction.PPDecrement{Pos: c.Pos, SlotIdx: c.MoveSlot, Amount: 1}
		return []instruction.InstructionSet{{Probability: 1, Instructions: []instruction.Instruction{pp}}}
	}
	resolved = target.Reassign(s, data.TargetCat, c.Pos, resolved)

	ctx := effect.NewContext(s, c.Pos, resolved, data)
	composer := resolver.Composer(slot.Move, data)
	sets := composer(ctx)

	lastMove := &instruction.SetLastMove{Pos: c.Pos, Move: slot.Move, Turn: s.Field.Turn}
	for i := range sets {
		sets[i].Instructions = append(sets[i].Instructions, lastMove)
	}
	return sets
}

// dispatchSwitch resolves one switch action: the outgoing Pokémon's
// switch-out volatiles clear (handled inside instruction.Switch), then any
// switch-in hazard damage applies deterministically (no probability split;
// hazard damage is a fixed fraction of max HP per spec.md §4.6's hazard
// family).
func dispatchSwitch(s *state.State, c Choice) []instruction.InstructionSet {
	sw := &instruction.Switch{Pos: c.Pos, ToIndex: c.SwitchIndex}
	ins := []instruction.Instruction{sw}
	ins = append(ins, hazardEntryInstructions(s, c.Pos, c.SwitchIndex)...)
	return []instruction.InstructionSet{{Probability: 1, Instructions: ins}}
}

// hazardEntryInstructions computes the damage a Pokémon switching into pos
// takes from its own side's entry hazards, reading the roster member about
// to switch in directly rather than through PokemonAt (which still reports
// the outgoing Pokémon until the Switch instruction above applies).
func hazardEntryInstructions(s *state.State, pos state.Position, incomingRosterIndex int) []instruction.Instruction {
	side := s.Side(pos.Side)
	if incomingRosterIndex < 0 || incomingRosterIndex >= len(side.Roster) {
		return nil
	}
	incoming := side.Roster[incomingRosterIndex]
	if incoming.Fainted() {
		return nil
	}
	var ins []instruction.Instruction

	if cond, ok := side.Conditions[state.CondStealthRock]; ok && cond.Layers > 0 {
		eff := calc.StandardChart(s.Format.Generation).EffectivenessAgainst(ids.NewType("rock"), incoming.EffectiveType())
		dmg := int(float64(incoming.MaxHP) / 8 * float64(eff))
		if dmg > 0 {
			ins = append(ins, &instruction.Damage{Pos: pos, Amount: dmg})
		}
	}

	grounded := !hasType(incoming, "flying")
	if grounded {
		if cond, ok := side.Conditions[state.CondSpikes]; ok && cond.Layers > 0 {
			frac := [4]int{0, 8, 6, 4}[cond.Layers]
			if frac > 0 {
				ins = append(ins, &instruction.Damage{Pos: pos, Amount: incoming.MaxHP / frac})
			}
		}
		if cond, ok := side.Conditions[state.CondToxicSpikes]; ok && cond.Layers > 0 {
			if hasType(incoming, "poison") {
				ins = append(ins, &instruction.SetSideCondition{Side: pos.Side, Kind: state.CondToxicSpikes, Remove: true})
			} else if incoming.Status == state.StatusNone {
				status := state.StatusPoison
				counter := 0
				if cond.Layers >= 2 {
					status = state.StatusToxic
					counter = 1
				}
				ins = append(ins, &instruction.SetMajorStatus{Pos: pos, New: status, NewCounter: counter})
			}
		}
	}

	return ins
}

func hasType(p *state.Pokemon, t string) bool {
	for _, tp := range p.EffectiveType() {
		if tp.String() == t {
			return true
		}
	}
	return false
}
