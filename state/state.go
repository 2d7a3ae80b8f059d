// Package state implements the battle data model (spec.md §3/§4.2): the
// Position/Pokemon/Side/Field/Format types and the State that owns them.
//
// Storage follows the teacher's ECS discipline (common/ecsutil.go's
// EntityManager wrapping github.com/bytearena/ecs): every roster Pokémon is
// an ecs.Entity carrying a *Pokemon component plus a slot-address component,
// queried through typed helpers rather than raw type assertions scattered
// across the codebase. Unlike the teacher, which keeps its components as
// package-level vars tied to one live ecs.Manager, each State owns its own
// manager and its own components — this engine must support many
// independent battles running concurrently on separate threads (spec §5),
// so component handles cannot be shared process-wide the way the teacher's
// single-game-instance assumption allows.
package state

import "github.com/bytearena/ecs"

// rosterAddress is the per-entity address component: which side and which
// roster slot this entity's Pokemon component belongs to.
type rosterAddress struct {
	Side  SideID
	Index int
}

// State is the exclusive owner of all Pokémon, side, and field data for one
// battle (spec §3 "Ownership/lifecycle"). Generation code (target/calc/
// effect/turn) borrows a *State read-only; instruction.Apply/Revert hold a
// unique mutable reference while mutating it.
type State struct {
	Format Format
	Sides  [2]*Side
	Field  *Field

	world         *ecs.Manager
	pokemonComp   *ecs.Component
	addressComp   *ecs.Component
	pokemonTag    ecs.Tag
}

// New constructs a State for one battle from a format and two prepared
// rosters. Rosters must already satisfy format.TeamSize; New does
// not consult the (external) team-validation collaborator.
func New(format Format, rosterA, rosterB []*Pokemon, seed uint64) *State {
	s := &State{
		Format: format,
		Field:  NewField(seed),
		world:  ecs.NewManager(),
	}
	s.pokemonComp = s.world.NewComponent()
	s.addressComp = s.world.NewComponent()
	s.pokemonTag = ecs.BuildTag(s.pokemonComp, s.addressComp)

	s.Sides[SideA] = NewSide(SideA, rosterA, format.ActivePerSide)
	s.Sides[SideB] = NewSide(SideB, rosterB, format.ActivePerSide)

	s.registerRoster(SideA, rosterA)
	s.registerRoster(SideB, rosterB)

	// Default opening line-up: first ActivePerSide roster members go active.
	for _, side := range s.Sides {
		for slot := 0; slot < format.ActivePerSide && slot < len(side.Roster); slot++ {
			side.Active[slot] = slot
		}
	}

	return s
}

func (s *State) registerRoster(id SideID, roster []*Pokemon) {
	for i, p := range roster {
		e := s.world.NewEntity()
		e.AddComponent(s.pokemonComp, p)
		e.AddComponent(s.addressComp, &rosterAddress{Side: id, Index: i})
	}
}

// PokemonAt returns the active Pokémon at pos, or nil if pos's slot is
// empty.
func (s *State) PokemonAt(pos Position) *Pokemon {
	return s.Sides[pos.Side].PokemonAt(pos.Slot)
}

// Side returns the named side.
func (s *State) Side(id SideID) *Side { return s.Sides[id] }

// ActivePositions enumerates every currently-occupied position in a
// deterministic (side, slot) order.
func (s *State) ActivePositions() []Position {
	var out []Position
	for _, side := range s.Sides {
		for slot, idx := range side.Active {
			if idx >= 0 {
				out = append(out, Position{Side: side.ID, Slot: slot})
			}
		}
	}
	return out
}

// QueryRoster runs pred over every roster Pokémon on both sides via the ECS
// world (exercising the manager the way the teacher's query helpers do,
// e.g. common.EntityManager.GetAllEntities), returning the (side, roster
// index) address of every match in a deterministic order. Used for
// whole-roster sweeps like entry-hazard grounded-check or end-of-turn
// Substitute cleanup that must see benched Pokémon too, not just active
// ones.
func (s *State) QueryRoster(pred func(*Pokemon) bool) []struct {
	Side  SideID
	Index int
} {
	var out []struct {
		Side  SideID
		Index int
	}
	for _, result := range s.world.Query(s.pokemonTag) {
		data, _ := result.Entity.GetComponentData(s.pokemonComp)
		addr, _ := result.Entity.GetComponentData(s.addressComp)
		p := data.(*Pokemon)
		a := addr.(*rosterAddress)
		if pred(p) {
			out = append(out, struct {
				Side  SideID
				Index int
			}{a.Side, a.Index})
		}
	}
	return out
}
