package instruction

import (
	"fmt"

	"pokebattle/ids"
	"pokebattle/state"
)

// IncrementTurn advances the field turn counter by one (spec §4.7 phase 6,
// the final step of every resolved turn).
type IncrementTurn struct {
	previous int
}

func (i *IncrementTurn) Apply(s *state.State) {
	i.previous = s.Field.Turn
	s.Field.Turn++
}
func (i *IncrementTurn) Revert(s *state.State) {
	s.Field.Turn = i.previous
}
func (i *IncrementTurn) Describe() string { return "Increment turn counter" }

// ResetDamageRecords zeroes DamageDealtThisTurn/DamageTakenThisTurn for
// every active Pokémon, the per-turn bookkeeping Counter/Mirror Coat rely on
// (spec §4.7 phase 5; EndOfTurn emits it once per turn, just before
// IncrementTurn).
type ResetDamageRecords struct {
	previousDealt map[state.Position]int
	previousTaken map[state.Position]int
}

func (i *ResetDamageRecords) Apply(s *state.State) {
	i.previousDealt = make(map[state.Position]int)
	i.previousTaken = make(map[state.Position]int)
	for _, pos := range s.ActivePositions() {
		p := s.PokemonAt(pos)
		i.previousDealt[pos] = p.DamageDealtThisTurn
		i.previousTaken[pos] = p.DamageTakenThisTurn
		p.DamageDealtThisTurn = 0
		p.DamageTakenThisTurn = 0
	}
}
func (i *ResetDamageRecords) Revert(s *state.State) {
	for pos, v := range i.previousDealt {
		s.PokemonAt(pos).DamageDealtThisTurn = v
	}
	for pos, v := range i.previousTaken {
		s.PokemonAt(pos).DamageTakenThisTurn = v
	}
}
func (i *ResetDamageRecords) Describe() string { return "Reset per-turn damage records" }

// SetLastMove records the move a Pokémon just used, for Encore/Disable/
// Mimic-family effects and for Pursuit/priority tie-break logic that looks
// at the previous turn's action.
type SetLastMove struct {
	Pos     state.Position
	Move    ids.Move
	Turn    int

	previousMove ids.Move
	previousTurn int
}

func (i *SetLastMove) Apply(s *state.State) {
	p := s.PokemonAt(i.Pos)
	i.previousMove, i.previousTurn = p.LastMove, p.LastMoveTurn
	p.LastMove, p.LastMoveTurn = i.Move, i.Turn
}
func (i *SetLastMove) Revert(s *state.State) {
	p := s.PokemonAt(i.Pos)
	p.LastMove, p.LastMoveTurn = i.previousMove, i.previousTurn
}
func (i *SetLastMove) Describe() string {
	return fmt.Sprintf("Set %s last move to %s", i.Pos, i.Move)
}
