package state

import (
	"testing"

	"pokebattle/ids"
)

func samplePokemon(name string, hp int) *Pokemon {
	moves := [4]MoveSlot{{Move: ids.NewMove("tackle"), PP: 35, MaxPP: 35}}
	p := NewPokemon(ids.NewSpecies(name), 50,
		[2]ids.Type{ids.NewType("normal")},
		Stats{HP: hp, Atk: 80, Def: 70, SpA: 60, SpD: 60, Spe: 90},
		Stats{}, Stats{}, "hardy", ids.NewAbility("none"), moves)
	return p
}

func TestNewStateDefaultLineup(t *testing.T) {
	format := NewFormat("singles", WithGeneration(9), WithType(Singles))
	s := New(format, []*Pokemon{samplePokemon("pikachu", 100)}, []*Pokemon{samplePokemon("charmander", 90)}, 1)

	pos := Position{Side: SideA, Slot: 0}
	p := s.PokemonAt(pos)
	if p == nil || p.Species != ids.NewSpecies("pikachu") {
		t.Fatalf("expected pikachu active at %v, got %v", pos, p)
	}
	if got := s.ActivePositions(); len(got) != 2 {
		t.Fatalf("expected 2 active positions, got %d", len(got))
	}
}

func TestHPClamp(t *testing.T) {
	p := samplePokemon("eevee", 100)
	if prev := p.SetHP(-5); prev != 100 {
		t.Fatalf("expected previous 100, got %d", prev)
	}
	if p.CurrentHP != 0 {
		t.Fatalf("expected HP clamped to 0, got %d", p.CurrentHP)
	}
	p.SetHP(9999)
	if p.CurrentHP != p.MaxHP {
		t.Fatalf("expected HP clamped to MaxHP, got %d", p.CurrentHP)
	}
}

func TestStatStageClamp(t *testing.T) {
	var stages StatStages
	stages.Add(StatIdxAtk, 10)
	if stages[StatIdxAtk] != 6 {
		t.Fatalf("expected clamp to 6, got %d", stages[StatIdxAtk])
	}
	delta := stages.Add(StatIdxAtk, 3)
	if delta != 0 {
		t.Fatalf("expected zero actual delta once saturated, got %d", delta)
	}
}

func TestQueryRosterFindsBenched(t *testing.T) {
	format := NewFormat("singles", WithType(Singles))
	bench := samplePokemon("bench", 50)
	s := New(format, []*Pokemon{samplePokemon("active", 100), bench}, []*Pokemon{samplePokemon("foe", 100)}, 2)

	matches := s.QueryRoster(func(p *Pokemon) bool { return p.Species == ids.NewSpecies("bench") })
	if len(matches) != 1 || matches[0].Index != 1 {
		t.Fatalf("expected to find benched pokemon at roster index 1, got %+v", matches)
	}
}
