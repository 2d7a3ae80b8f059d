package instruction

import (
	"testing"

	"pokebattle/ids"
	"pokebattle/state"
)

func samplePokemon(name string, hp int) *state.Pokemon {
	moves := [4]state.MoveSlot{{Move: ids.NewMove("tackle"), PP: 35, MaxPP: 35}}
	return state.NewPokemon(ids.NewSpecies(name), 50,
		[2]ids.Type{ids.NewType("normal")},
		state.Stats{HP: hp, Atk: 80, Def: 70, SpA: 60, SpD: 60, Spe: 90},
		state.Stats{}, state.Stats{}, "hardy", ids.NewAbility("none"), moves)
}

func sampleState() *state.State {
	format := state.NewFormat("singles", state.WithType(state.Singles))
	a := []*state.Pokemon{samplePokemon("pikachu", 100), samplePokemon("bench", 80)}
	b := []*state.Pokemon{samplePokemon("charmander", 90)}
	return state.New(format, a, b, 1)
}

// snapshot captures the observable fields instructions in this package
// touch, for the apply/revert round-trip check below.
type snapshot struct {
	hpA, hpB         int
	dealtA, takenA   int
	activeSlotA      int
	ability          ids.Ability
	item             ids.Item
	stage            int
	statusA          state.MajorStatus
	weather          state.Weather
	turn             int
	sideCond         bool
	wishes           int
}

func snap(s *state.State) snapshot {
	posA := state.Position{Side: state.SideA, Slot: 0}
	posB := state.Position{Side: state.SideB, Slot: 0}
	pa, pb := s.PokemonAt(posA), s.PokemonAt(posB)
	_, hasCond := s.Side(state.SideA).Conditions[state.CondSpikes]
	return snapshot{
		hpA: pa.CurrentHP, hpB: pb.CurrentHP,
		dealtA: pa.DamageDealtThisTurn, takenA: pa.DamageTakenThisTurn,
		activeSlotA: s.Side(state.SideA).Active[0],
		ability:     pa.Ability, item: pa.Item,
		stage:    pa.Stages[state.StatIdxAtk],
		statusA:  pa.Status,
		weather:  s.Field.Weather,
		turn:     s.Field.Turn,
		sideCond: hasCond,
		wishes:   len(s.Side(state.SideA).Wishes),
	}
}

func TestApplyRevertRoundTrip(t *testing.T) {
	s := sampleState()
	before := snap(s)

	posA := state.Position{Side: state.SideA, Slot: 0}
	posB := state.Position{Side: state.SideB, Slot: 0}

	ins := []Instruction{
		&Damage{Pos: posB, Amount: 30},
		&Heal{Pos: posA, Amount: 5},
		&AbilityChange{Pos: posA, New: ids.NewAbility("static")},
		&ItemChange{Pos: posA, New: ids.NewItem("leftovers"), NewConsumed: false},
		&SetStatBoosts{Pos: posA, Stat: state.StatIdxAtk, Delta: 2},
		&SetMajorStatus{Pos: posB, New: state.StatusBurn},
		&SetVolatile{Pos: posA, Kind: state.VolFlinch, Add: true, New: state.Volatile{Kind: state.VolFlinch}},
		&PPDecrement{Pos: posA, SlotIdx: 0, Amount: 1},
		&Switch{Pos: posA, ToIndex: 1},
		&SetWeather{New: state.WeatherRain, NewState: state.FieldState{Turns: 5}},
		&SetSideCondition{Side: state.SideA, Kind: state.CondSpikes, New: state.ConditionState{Layers: 1}},
		&PushWish{Side: state.SideA, New: state.PendingWish{RosterIndex: 0, TurnsLeft: 2, HealAmount: 50}},
		&IncrementTurn{},
		&ResetDamageRecords{},
	}

	ApplyAll(s, ins)
	after := snap(s)
	if after == before {
		t.Fatalf("expected state to change after apply")
	}

	RevertAll(s, ins)
	restored := snap(s)
	if restored != before {
		t.Fatalf("revert did not restore original state:\nbefore=%+v\nrestored=%+v", before, restored)
	}
}

func TestInstructionSetApplyRevert(t *testing.T) {
	s := sampleState()
	before := snap(s)

	posB := state.Position{Side: state.SideB, Slot: 0}
	set := InstructionSet{
		Probability: 1,
		Instructions: []Instruction{
			&Damage{Pos: posB, Amount: 10},
			&Damage{Pos: posB, Amount: 10},
		},
	}
	set.Apply(s)
	p := s.PokemonAt(posB)
	if p.CurrentHP != 70 {
		t.Fatalf("expected 70 hp after two 10-damage hits on a 90hp mon, got %d", p.CurrentHP)
	}
	set.Revert(s)
	if snap(s) != before {
		t.Fatalf("InstructionSet revert did not restore original state")
	}
}

func TestDamageClampsAtZero(t *testing.T) {
	s := sampleState()
	posB := state.Position{Side: state.SideB, Slot: 0}
	d := &Damage{Pos: posB, Amount: 9999}
	d.Apply(s)
	if hp := s.PokemonAt(posB).CurrentHP; hp != 0 {
		t.Fatalf("expected hp clamped to 0, got %d", hp)
	}
	d.Revert(s)
	if hp := s.PokemonAt(posB).CurrentHP; hp != 90 {
		t.Fatalf("expected hp restored to 90, got %d", hp)
	}
}

func TestCrossProductMultipliesProbabilityAndConcatenates(t *testing.T) {
	posA := state.Position{Side: state.SideA, Slot: 0}
	a := []InstructionSet{
		{Probability: 0.5, Instructions: []Instruction{&Damage{Pos: posA, Amount: 1}}},
		{Probability: 0.5, Instructions: []Instruction{&Damage{Pos: posA, Amount: 2}}},
	}
	b := []InstructionSet{
		{Probability: 1, Instructions: []Instruction{&Heal{Pos: posA, Amount: 1}}},
	}
	merged := CrossProduct(a, b)
	if len(merged) != 2 {
		t.Fatalf("expected 2 merged branches, got %d", len(merged))
	}
	for _, m := range merged {
		if m.Probability != 0.5 {
			t.Fatalf("expected probability 0.5, got %v", m.Probability)
		}
		if len(m.Instructions) != 2 {
			t.Fatalf("expected 2 instructions per merged branch, got %d", len(m.Instructions))
		}
	}
	if total := Sum(merged); total < 0.999 || total > 1.001 {
		t.Fatalf("expected merged probabilities to sum to 1, got %v", total)
	}
}

func TestPruneRenormalizesAndNeverEmpties(t *testing.T) {
	sets := []InstructionSet{
		{Probability: 0.0001},
		{Probability: 0.9999},
	}
	pruned := Prune(sets, 1e-3)
	if len(pruned) != 1 {
		t.Fatalf("expected low-probability branch pruned, got %d branches", len(pruned))
	}
	if pruned[0].Probability < 0.999 {
		t.Fatalf("expected renormalized probability ~1, got %v", pruned[0].Probability)
	}

	allLow := []InstructionSet{{Probability: 0.0001}, {Probability: 0.0002}}
	kept := Prune(allLow, 1e-3)
	if len(kept) == 0 {
		t.Fatalf("expected Prune to never empty all branches away")
	}
}
