package turn

import (
	"testing"

	"pokebattle/ids"
	"pokebattle/instruction"
	"pokebattle/registry"
	"pokebattle/state"
)

func pikachu() *state.Pokemon {
	moves := [4]state.MoveSlot{{Move: ids.NewMove("tackle"), PP: 35, MaxPP: 35}}
	return state.NewPokemon(ids.NewSpecies("pikachu"), 50, [2]ids.Type{ids.NewType("electric")},
		state.Stats{HP: 120, Atk: 80, Def: 70, SpA: 90, SpD: 80, Spe: 140}, state.Stats{}, state.Stats{}, "hardy", ids.NewAbility("static"), moves)
}

func slowbro() *state.Pokemon {
	moves := [4]state.MoveSlot{{Move: ids.NewMove("tackle"), PP: 35, MaxPP: 35}, {Move: ids.NewMove("protect"), PP: 10, MaxPP: 10}}
	return state.NewPokemon(ids.NewSpecies("slowbro"), 50, [2]ids.Type{ids.NewType("water"), ids.NewType("psychic")},
		state.Stats{HP: 150, Atk: 60, Def: 90, SpA: 90, SpD: 110, Spe: 40}, state.Stats{}, state.Stats{}, "hardy", ids.NewAbility("oblivious"), moves)
}

func benchMon(name string) *state.Pokemon {
	moves := [4]state.MoveSlot{{Move: ids.NewMove("tackle"), PP: 35, MaxPP: 35}}
	return state.NewPokemon(ids.NewSpecies(name), 50, [2]ids.Type{ids.NewType("normal")},
		state.Stats{HP: 100, Atk: 70, Def: 70, SpA: 70, SpD: 70, Spe: 70}, state.Stats{}, state.Stats{}, "hardy", ids.NewAbility("none"), moves)
}

func newMovePriority() func(ids.Move) int {
	return func(m ids.Move) int {
		switch m.String() {
		case "protect":
			return 4
		default:
			return 0
		}
	}
}

func orderInput() OrderInput {
	return OrderInput{MovePriority: newMovePriority()}
}

func TestOrderRanksFasterActorFirst(t *testing.T) {
	s := state.New(state.NewFormat("singles", state.WithType(state.Singles)), []*state.Pokemon{pikachu()}, []*state.Pokemon{slowbro()}, 1)
	in := orderInput()
	in.State = s
	a := Choice{Pos: state.Position{Side: state.SideA, Slot: 0}, Kind: ActionMove, MoveSlot: 0}
	b := Choice{Pos: state.Position{Side: state.SideB, Slot: 0}, Kind: ActionMove, MoveSlot: 0}

	orderings := Order(in, a, b)
	if len(orderings) != 1 {
		t.Fatalf("expected a single deterministic ordering, got %d", len(orderings))
	}
	if orderings[0].Order[0].Choice.Pos.Side != state.SideA {
		t.Fatalf("expected pikachu (faster) to act first")
	}
}

func TestOrderPriorityBeatsSpeed(t *testing.T) {
	s := state.New(state.NewFormat("singles", state.WithType(state.Singles)), []*state.Pokemon{pikachu()}, []*state.Pokemon{slowbro()}, 1)
	in := orderInput()
	in.State = s
	fast := Choice{Pos: state.Position{Side: state.SideA, Slot: 0}, Kind: ActionMove, MoveSlot: 0}
	protect := Choice{Pos: state.Position{Side: state.SideB, Slot: 0}, Kind: ActionMove, MoveSlot: 1}

	orderings := Order(in, fast, protect)
	if orderings[0].Order[0].Choice.Pos.Side != state.SideB {
		t.Fatalf("expected Protect's priority bracket to act before a faster non-priority move")
	}
}

func TestOrderEqualSpeedSplitsCoinFlip(t *testing.T) {
	s := state.New(state.NewFormat("singles", state.WithType(state.Singles)), []*state.Pokemon{benchMon("a")}, []*state.Pokemon{benchMon("b")}, 1)
	in := orderInput()
	in.State = s
	a := Choice{Pos: state.Position{Side: state.SideA, Slot: 0}, Kind: ActionMove, MoveSlot: 0}
	b := Choice{Pos: state.Position{Side: state.SideB, Slot: 0}, Kind: ActionMove, MoveSlot: 0}

	orderings := Order(in, a, b)
	if len(orderings) != 2 {
		t.Fatalf("expected a two-branch coin flip for equal speed, got %d", len(orderings))
	}
	if orderings[0].Probability != 0.5 || orderings[1].Probability != 0.5 {
		t.Fatalf("expected each ordering branch at probability 0.5, got %v/%v", orderings[0].Probability, orderings[1].Probability)
	}
}

func TestLegalChoicesFlagsNoPP(t *testing.T) {
	p := pikachu()
	p.Moves[0].PP = 0
	s := state.New(state.NewFormat("singles", state.WithType(state.Singles)), []*state.Pokemon{p}, []*state.Pokemon{slowbro()}, 1)
	pos := state.Position{Side: state.SideA, Slot: 0}

	choices := LegalChoices(s, pos)
	found := false
	for _, c := range choices {
		if c.Choice.Kind == ActionMove && c.Choice.MoveSlot == 0 {
			found = true
			if c.Illegal == "" {
				t.Fatalf("expected no-PP move to be flagged illegal")
			}
		}
	}
	if !found {
		t.Fatalf("expected the empty-PP move slot to still be enumerated")
	}
}

func TestGenerateTurnBasicDamageProducesBranches(t *testing.T) {
	s := state.New(state.NewFormat("singles", state.WithType(state.Singles)), []*state.Pokemon{pikachu()}, []*state.Pokemon{slowbro()}, 42)
	a := Choice{Pos: state.Position{Side: state.SideA, Slot: 0}, Kind: ActionMove, MoveSlot: 0}
	b := Choice{Pos: state.Position{Side: state.SideB, Slot: 0}, Kind: ActionMove, MoveSlot: 0}

	sets, err := GenerateTurn(s, registry.Resolver{}, orderInput(), a, b, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sets) == 0 {
		t.Fatalf("expected at least one resolved branch")
	}
	total := instruction.Sum(sets)
	if total < 0.99 || total > 1.01 {
		t.Fatalf("expected branch probabilities to sum to ~1, got %v", total)
	}
}

func TestGenerateTurnAppliesCleanlyAndReverts(t *testing.T) {
	s := state.New(state.NewFormat("singles", state.WithType(state.Singles)), []*state.Pokemon{pikachu()}, []*state.Pokemon{slowbro()}, 42)
	a := Choice{Pos: state.Position{Side: state.SideA, Slot: 0}, Kind: ActionMove, MoveSlot: 0}
	b := Choice{Pos: state.Position{Side: state.SideB, Slot: 0}, Kind: ActionMove, MoveSlot: 0}

	before := s.PokemonAt(b.Pos).CurrentHP
	sets, err := GenerateTurn(s, registry.Resolver{}, orderInput(), a, b, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	chosen := sets[0]
	chosen.Apply(s)
	if s.Field.Turn != 1 {
		t.Fatalf("expected turn counter to increment once, got %d", s.Field.Turn)
	}
	chosen.Revert(s)
	if s.PokemonAt(b.Pos).CurrentHP != before {
		t.Fatalf("expected full revert to restore target hp")
	}
	if s.Field.Turn != 0 {
		t.Fatalf("expected full revert to restore turn counter")
	}
}

func TestGenerateTurnRejectsInvalidChoice(t *testing.T) {
	s := state.New(state.NewFormat("singles", state.WithType(state.Singles)), []*state.Pokemon{pikachu()}, []*state.Pokemon{slowbro()}, 1)
	a := Choice{Pos: state.Position{Side: state.SideA, Slot: 0}, Kind: ActionMove, MoveSlot: 3}
	b := Choice{Pos: state.Position{Side: state.SideB, Slot: 0}, Kind: ActionMove, MoveSlot: 0}

	_, err := GenerateTurn(s, registry.Resolver{}, orderInput(), a, b, Options{})
	if err == nil {
		t.Fatalf("expected an error for an out-of-range move slot")
	}
}

func TestDispatchMoveSkipsFlinchedActionWithoutSpendingPP(t *testing.T) {
	s := state.New(state.NewFormat("singles", state.WithType(state.Singles)), []*state.Pokemon{pikachu()}, []*state.Pokemon{slowbro()}, 1)
	user := s.PokemonAt(state.Position{Side: state.SideA, Slot: 0})
	user.Volatiles[state.VolFlinch] = &state.Volatile{Kind: state.VolFlinch}
	ppBefore := user.Moves[0].PP

	sets := dispatchMove(s, registry.Resolver{}, Choice{Pos: state.Position{Side: state.SideA, Slot: 0}, Kind: ActionMove, MoveSlot: 0})
	if len(sets) != 1 || len(sets[0].Instructions) != 0 {
		t.Fatalf("expected a single empty no-op branch for a flinched action, got %+v", sets)
	}
	sets[0].Apply(s)
	if user.Moves[0].PP != ppBefore {
		t.Fatalf("expected flinch to cost no PP: before=%d after=%d", ppBefore, user.Moves[0].PP)
	}
}

func TestGenerateTurnSwitchAppliesStealthRockOnEntry(t *testing.T) {
	a0 := pikachu()
	bench := benchMon("bench")
	s := state.New(state.NewFormat("singles", state.WithType(state.Singles)), []*state.Pokemon{a0, bench}, []*state.Pokemon{slowbro()}, 1)
	s.Side(state.SideA).Conditions[state.CondStealthRock] = &state.ConditionState{Layers: 1}

	a := Choice{Pos: state.Position{Side: state.SideA, Slot: 0}, Kind: ActionSwitch, SwitchIndex: 1}
	b := Choice{Pos: state.Position{Side: state.SideB, Slot: 0}, Kind: ActionMove, MoveSlot: 0}

	sets, err := GenerateTurn(s, registry.Resolver{}, orderInput(), a, b, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before := bench.CurrentHP
	sets[0].Apply(s)
	if bench.CurrentHP >= before {
		t.Fatalf("expected the incoming switch to take stealth rock damage")
	}
	sets[0].Revert(s)
	if bench.CurrentHP != before {
		t.Fatalf("expected revert to restore the switched-in pokemon's hp")
	}
}
