package turn

import (
	"pokebattle/ids"
	"pokebattle/state"
)

// Action is one resolved Choice paired with the priority/speed values the
// ordering phase computed for it, kept around so dispatch can explain why a
// given action went when it did.
type Action struct {
	Choice   Choice
	Priority int
	Speed    int
}

// actionPriority returns a move's bracket: forced replacement switches sort
// before everything (spec §4.7 phase 2's first bracket is handled by the
// caller supplying only switch/move choices for already-active Pokémon),
// ordinary switches sort above moves, and moves use their own declared
// priority.
func actionPriority(c Choice, movePriority func(ids.Move) int, pokemon func(state.Position) *state.Pokemon) int {
	if c.Kind == ActionSwitch {
		return 6 // above any move priority bracket (max declared move priority is 5)
	}
	p := pokemon(c.Pos)
	mv := p.Moves[c.MoveSlot].Move
	return movePriority(mv)
}

// effectiveSpeed resolves a Pokémon's speed for turn-order purposes:
// computed Spe at its current stat stage, halved under paralysis (modern
// generations; legacy gens quarter it, which callers needing that behavior
// supply through a different movePriority/speed pairing since this engine
// defaults to the gen 6+ rule spec.md's scenarios assume).
func effectiveSpeed(p *state.Pokemon) int {
	num, den := state.StageMultiplier(p.Stages[state.StatIdxSpe])
	speed := p.Computed.Spe * num / den
	if p.Status == state.StatusParalysis {
		speed /= 2
	}
	if speed < 1 {
		speed = 1
	}
	return speed
}

// OrderInput bundles the two declared choices and the data order() needs
// to rank them without depending on the (out-of-scope) move-data
// repository directly: movePriority looks up a move's declared priority
// bracket, and pursuitAgainstSwitch reports whether a is a Pursuit use
// targeting a Pokémon b declared as switching out this turn.
type OrderInput struct {
	State                *state.State
	MovePriority         func(ids.Move) int
	PursuitAgainstSwitch func(pursuiter, switcher Choice) bool
}

// Ordered is one ranked action plus, when the rank was decided by a coin
// flip rather than a strict comparison, the probability of this particular
// ordering (spec §4.7 phase 2's "ties resolved by coin flip exposed as a
// two-branch probabilistic split").
type Ordered struct {
	Order       []Action
	Probability float64
}

// Order ranks two choices into the sequence they resolve in this turn,
// returning every probabilistic ordering branch (at most two, for a tied
// coin flip; exactly one otherwise). Trick Room inverts the speed
// comparison within an equal-priority bracket; Pursuit against a
// declared-switching target is special-cased to move first regardless of
// its own (lower) priority, matching the generation rule that Pursuit hits
// before the switch actually happens.
func Order(in OrderInput, a, b Choice) []Ordered {
	s := in.State
	pokemonAt := s.PokemonAt

	if a.Kind == ActionMove && b.Kind == ActionSwitch && in.PursuitAgainstSwitch != nil && in.PursuitAgainstSwitch(a, b) {
		return []Ordered{{Order: []Action{actionOf(a, in, pokemonAt), actionOf(b, in, pokemonAt)}, Probability: 1}}
	}
	if b.Kind == ActionMove && a.Kind == ActionSwitch && in.PursuitAgainstSwitch != nil && in.PursuitAgainstSwitch(b, a) {
		return []Ordered{{Order: []Action{actionOf(b, in, pokemonAt), actionOf(a, in, pokemonAt)}, Probability: 1}}
	}

	actA := actionOf(a, in, pokemonAt)
	actB := actionOf(b, in, pokemonAt)

	if actA.Priority != actB.Priority {
		if actA.Priority > actB.Priority {
			return []Ordered{{Order: []Action{actA, actB}, Probability: 1}}
		}
		return []Ordered{{Order: []Action{actB, actA}, Probability: 1}}
	}

	trickRoom := s.Field.Rooms[state.RoomTrick] > 0
	switch {
	case actA.Speed == actB.Speed:
		return []Ordered{
			{Order: []Action{actA, actB}, Probability: 0.5},
			{Order: []Action{actB, actA}, Probability: 0.5},
		}
	case (actA.Speed > actB.Speed) != trickRoom:
		return []Ordered{{Order: []Action{actA, actB}, Probability: 1}}
	default:
		return []Ordered{{Order: []Action{actB, actA}, Probability: 1}}
	}
}

func actionOf(c Choice, in OrderInput, pokemonAt func(state.Position) *state.Pokemon) Action {
	p := pokemonAt(c.Pos)
	return Action{
		Choice:   c,
		Priority: actionPriority(c, in.MovePriority, pokemonAt),
		Speed:    effectiveSpeed(p),
	}
}
