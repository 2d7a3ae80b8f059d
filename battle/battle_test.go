package battle

import (
	"testing"

	"pokebattle/ids"
	"pokebattle/instruction"
	"pokebattle/state"
	"pokebattle/turn"
)

func mon(name string, types ...string) *state.Pokemon {
	var t [2]ids.Type
	for i, tp := range types {
		if i < 2 {
			t[i] = ids.NewType(tp)
		}
	}
	moves := [4]state.MoveSlot{
		{Move: ids.NewMove("tackle"), PP: 35, MaxPP: 35},
		{Move: ids.NewMove("protect"), PP: 10, MaxPP: 10},
	}
	return state.NewPokemon(ids.NewSpecies(name), 50, t,
		state.Stats{HP: 100, Atk: 80, Def: 70, SpA: 60, SpD: 60, Spe: 90},
		state.Stats{}, state.Stats{}, "hardy", ids.NewAbility("none"), moves)
}

func newSinglesState() *state.State {
	format := StandardSingles()
	return state.New(format, []*state.Pokemon{mon("pikachu", "electric")}, []*state.Pokemon{mon("charmander", "fire")}, 1)
}

func TestGenerateInstructionsSumsToOne(t *testing.T) {
	s := newSinglesState()
	a := turn.Choice{Pos: state.Position{Side: state.SideA, Slot: 0}, Kind: turn.ActionMove, MoveSlot: 0}
	b := turn.Choice{Pos: state.Position{Side: state.SideB, Slot: 0}, Kind: turn.ActionMove, MoveSlot: 0}

	sets, err := GenerateInstructions(s, a, b, turn.Options{})
	if err != nil {
		t.Fatalf("GenerateInstructions: %v", err)
	}
	if len(sets) == 0 {
		t.Fatal("expected at least one branch")
	}
	total := instruction.Sum(sets)
	if total < 0.999 || total > 1.001 {
		t.Fatalf("expected branch probabilities to sum to 1, got %v", total)
	}
}

func TestApplyRevertRoundTrips(t *testing.T) {
	s := newSinglesState()
	a := turn.Choice{Pos: state.Position{Side: state.SideA, Slot: 0}, Kind: turn.ActionMove, MoveSlot: 0}
	b := turn.Choice{Pos: state.Position{Side: state.SideB, Slot: 0}, Kind: turn.ActionMove, MoveSlot: 0}

	sets, err := GenerateInstructions(s, a, b, turn.Options{})
	if err != nil {
		t.Fatalf("GenerateInstructions: %v", err)
	}
	before := Serialize(s)
	Apply(s, sets[0])
	Revert(s, sets[0])
	after := Serialize(s)
	if before != after {
		t.Fatalf("Apply/Revert did not round-trip:\nbefore: %s\nafter:  %s", before, after)
	}
}

func TestLegalChoicesCoversEveryActiveSlot(t *testing.T) {
	s := newSinglesState()
	choices := LegalChoices(s, state.SideA)
	if len(choices) == 0 {
		t.Fatal("expected at least one legal choice")
	}
	for _, c := range choices {
		if c.Choice.Pos.Side != state.SideA {
			t.Fatalf("LegalChoices(SideA) returned a choice for %s", c.Choice.Pos.Side)
		}
	}
}

func TestPursuitAgainstSwitchOrdersPursuitFirst(t *testing.T) {
	s := newSinglesState()
	s.Side(state.SideA).Roster[0].Moves[0] = state.MoveSlot{Move: ids.NewMove("pursuit"), PP: 20, MaxPP: 20}
	s.Side(state.SideB).Roster = append(s.Side(state.SideB).Roster, mon("squirtle", "water"))

	pursuit := turn.Choice{Pos: state.Position{Side: state.SideA, Slot: 0}, Kind: turn.ActionMove, MoveSlot: 0}
	switching := turn.Choice{Pos: state.Position{Side: state.SideB, Slot: 0}, Kind: turn.ActionSwitch, SwitchIndex: 1}

	in := orderInput(s)
	orderings := turn.Order(in, pursuit, switching)
	if len(orderings) != 1 {
		t.Fatalf("expected a single deterministic ordering, got %d", len(orderings))
	}
	if orderings[0].Order[0].Choice.Kind != turn.ActionMove {
		t.Fatal("expected Pursuit to act before the switch it targets")
	}
}

func TestBattleBuilderRejectsBannedSpecies(t *testing.T) {
	format := state.NewFormat("banned-test", state.WithType(state.Singles), state.WithBannedSpecies(ids.NewSpecies("mewtwo")))
	b := NewBattleBuilder(format)
	b.AddToSideA(mon("mewtwo", "psychic"))
	b.AddToSideB(mon("charmander", "fire"))
	if _, err := b.Build(); err == nil {
		t.Fatal("expected a format violation for a banned species")
	}
}

func TestBattleBuilderEnforcesSpeciesClause(t *testing.T) {
	format := state.NewFormat("clause-test", state.WithType(state.Singles), state.WithClause(state.ClauseSpecies))
	b := NewBattleBuilder(format)
	b.AddToSideA(mon("pikachu", "electric"))
	b.AddToSideA(mon("pikachu", "electric"))
	b.AddToSideB(mon("charmander", "fire"))
	if _, err := b.Build(); err == nil {
		t.Fatal("expected a format violation for a duplicate species under Species Clause")
	}
}

func TestBattleBuilderBuildsAPlayableState(t *testing.T) {
	b := NewBattleBuilder(StandardSingles()).WithSeed(42)
	b.AddToSideA(mon("pikachu", "electric"))
	b.AddToSideB(mon("charmander", "fire"))
	s, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if s.PokemonAt(state.Position{Side: state.SideA, Slot: 0}) == nil {
		t.Fatal("expected side A's first slot to be occupied")
	}
}

func TestSerializeDeserializeRoundTripsThroughFacade(t *testing.T) {
	s := newSinglesState()
	encoded := Serialize(s)
	got, err := Deserialize(encoded)
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if Serialize(got) != encoded {
		t.Fatal("re-encoding a deserialized state produced different text")
	}
}
