// Package battle is the top-level library surface spec.md §6 names: the
// facade a caller drives a battle through without touching turn/instruction/
// registry directly.
//
// Grounded on tactical/combatservices/combat_service.go's CombatService,
// which bundles a turn manager, faction manager, movement system, and
// action system behind a handful of orchestration methods
// (InitializeCombat, CheckVictoryCondition) rather than making callers
// juggle those subsystems themselves. GenerateInstructions plays the same
// role here over turn.GenerateTurn, registry.Resolver, and turn.Order.
package battle

import (
	"pokebattle/ids"
	"pokebattle/instruction"
	"pokebattle/registry"
	"pokebattle/state"
	"pokebattle/turn"
)

// pursuitID is the one move GenerateInstructions special-cases when
// building turn.OrderInput.PursuitAgainstSwitch: Pursuit hits a switching
// target before the switch happens, regardless of its own priority bracket
// (generation rule turn.Order's doc comment already names).
var pursuitID = ids.NewMove("pursuit")

// movePriority looks up a move's declared priority bracket through the
// process-wide registry, defaulting to 0 (no bracket) for a move the
// registry has no entry for.
func movePriority(id ids.Move) int {
	e, ok := registry.Get(id)
	if !ok {
		return 0
	}
	return e.Data.Priority
}

// pursuitAgainstSwitch reports whether pursuiter is a Pursuit use and
// switcher is a switch declared by the other side, the pairing turn.Order
// needs to move Pursuit ahead of the switch it targets.
func pursuitAgainstSwitch(s *state.State, pursuiter, switcher turn.Choice) bool {
	if pursuiter.Kind != turn.ActionMove || switcher.Kind != turn.ActionSwitch {
		return false
	}
	p := s.PokemonAt(pursuiter.Pos)
	if p == nil {
		return false
	}
	return p.Moves[pursuiter.MoveSlot].Move == pursuitID
}

// orderInput builds the turn.OrderInput GenerateInstructions hands to
// turn.GenerateTurn, wiring MovePriority/PursuitAgainstSwitch to the
// registry-backed lookups above.
func orderInput(s *state.State) turn.OrderInput {
	return turn.OrderInput{
		State:        s,
		MovePriority: movePriority,
		PursuitAgainstSwitch: func(pursuiter, switcher turn.Choice) bool {
			return pursuitAgainstSwitch(s, pursuiter, switcher)
		},
	}
}

// GenerateInstructions resolves one full turn from both sides' declared
// choices into the complete probability-weighted set of outcomes (spec §6's
// generate_instructions operation). opts.PruneFloor/Trace pass straight
// through to turn.GenerateTurn; the zero value applies the 1e-4 default
// floor with tracing off.
func GenerateInstructions(s *state.State, a, b turn.Choice, opts turn.Options) ([]instruction.InstructionSet, error) {
	return turn.GenerateTurn(s, registry.Resolver{}, orderInput(s), a, b, opts)
}

// Apply applies one chosen InstructionSet branch to s, mutating it in
// place (spec §6's apply operation).
func Apply(s *state.State, set instruction.InstructionSet) { set.Apply(s) }

// Revert undoes one previously-applied InstructionSet branch, restoring s
// to its pre-Apply value (spec §6's revert operation).
func Revert(s *state.State, set instruction.InstructionSet) { set.Revert(s) }

// LegalChoices enumerates every legal move/switch option across every
// occupied position on side (spec §6's legal_choices operation), generalizing
// turn.LegalChoices (which only covers a single Position) to a whole side
// the way a caller actually needs it: one call per side per turn.
func LegalChoices(s *state.State, side state.SideID) []turn.LegalChoice {
	var out []turn.LegalChoice
	for slot := range s.Side(side).Active {
		pos := state.Position{Side: side, Slot: slot}
		out = append(out, turn.LegalChoices(s, pos)...)
	}
	return out
}
