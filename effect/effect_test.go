package effect

import (
	"testing"

	"pokebattle/calc"
	"pokebattle/ids"
	"pokebattle/instruction"
	"pokebattle/state"
)

func mon(name string, types ...string) *state.Pokemon {
	var t [2]ids.Type
	for i, tp := range types {
		if i < 2 {
			t[i] = ids.NewType(tp)
		}
	}
	moves := [4]state.MoveSlot{{Move: ids.NewMove("tackle"), PP: 35, MaxPP: 35}}
	return state.NewPokemon(ids.NewSpecies(name), 50, t,
		state.Stats{HP: 100, Atk: 80, Def: 70, SpA: 60, SpD: 60, Spe: 90},
		state.Stats{}, state.Stats{}, "hardy", ids.NewAbility("none"), moves)
}

func singlesState() *state.State {
	format := state.NewFormat("singles", state.WithType(state.Singles))
	return state.New(format, []*state.Pokemon{mon("pikachu", "electric")}, []*state.Pokemon{mon("charmander", "fire")}, 1)
}

func doublesState() *state.State {
	format := state.NewFormat("doubles", state.WithType(state.Doubles))
	a := []*state.Pokemon{mon("a0", "normal"), mon("a1", "normal")}
	b := []*state.Pokemon{mon("b0", "normal"), mon("b1", "normal")}
	return state.New(format, a, b, 7)
}

func tackleMove() MoveData {
	return MoveData{ID: ids.NewMove("tackle"), Type: ids.NewType("normal"), Category: Physical, Power: 40, Accuracy: 100}
}

func TestSimpleDamageProducesHitAndCritBranches(t *testing.T) {
	s := singlesState()
	user := state.Position{Side: state.SideA, Slot: 0}
	opp := state.Position{Side: state.SideB, Slot: 0}
	ctx := NewContext(s, user, []state.Position{opp}, tackleMove())

	sets := SimpleDamage()(ctx)
	if len(sets) != 2 {
		t.Fatalf("expected 2 branches (non-crit, crit) for 100-accuracy move, got %d", len(sets))
	}
	total := instruction.Sum(sets)
	if total < 0.999 || total > 1.001 {
		t.Fatalf("expected branch probabilities to sum to 1, got %v", total)
	}
}

func TestSimpleDamageDealsDamageOnApply(t *testing.T) {
	s := singlesState()
	user := state.Position{Side: state.SideA, Slot: 0}
	opp := state.Position{Side: state.SideB, Slot: 0}
	ctx := NewContext(s, user, []state.Position{opp}, tackleMove())

	sets := SimpleDamage()(ctx)
	before := s.PokemonAt(opp).CurrentHP
	sets[0].Apply(s)
	after := s.PokemonAt(opp).CurrentHP
	if after >= before {
		t.Fatalf("expected damage to reduce target hp: before=%d after=%d", before, after)
	}
	sets[0].Revert(s)
	if s.PokemonAt(opp).CurrentHP != before {
		t.Fatalf("expected revert to restore hp")
	}
}

func TestSpreadMoveHitsBothDoublesTargets(t *testing.T) {
	s := doublesState()
	user := state.Position{Side: state.SideA, Slot: 0}
	b0 := state.Position{Side: state.SideB, Slot: 0}
	b1 := state.Position{Side: state.SideB, Slot: 1}
	move := tackleMove()
	ctx := NewContext(s, user, []state.Position{b0, b1}, move)

	sets := SimpleDamage()(ctx)
	// apply the all-non-crit branch (highest probability) and confirm both
	// targets took damage.
	best := sets[0]
	for _, set := range sets {
		if set.Probability > best.Probability {
			best = set
		}
	}
	before0, before1 := s.PokemonAt(b0).CurrentHP, s.PokemonAt(b1).CurrentHP
	best.Apply(s)
	if s.PokemonAt(b0).CurrentHP >= before0 || s.PokemonAt(b1).CurrentHP >= before1 {
		t.Fatalf("expected both doubles targets to take damage")
	}
}

func TestRecoilAppliesFractionOfDamageDealt(t *testing.T) {
	s := singlesState()
	user := state.Position{Side: state.SideA, Slot: 0}
	opp := state.Position{Side: state.SideB, Slot: 0}
	ctx := NewContext(s, user, []state.Position{opp}, tackleMove())

	composer := Recoil(SimpleDamage(), 0.33)
	sets := composer(ctx)
	userBefore := s.PokemonAt(user).CurrentHP
	sets[0].Apply(s)
	if s.PokemonAt(user).CurrentHP >= userBefore {
		t.Fatalf("expected recoil to damage the user")
	}
}

func TestDrainHealsUser(t *testing.T) {
	s := singlesState()
	user := state.Position{Side: state.SideA, Slot: 0}
	opp := state.Position{Side: state.SideB, Slot: 0}
	s.PokemonAt(user).SetHP(50)
	ctx := NewContext(s, user, []state.Position{opp}, tackleMove())

	composer := Drain(SimpleDamage(), 0.5)
	sets := composer(ctx)
	userBefore := s.PokemonAt(user).CurrentHP
	sets[0].Apply(s)
	if s.PokemonAt(user).CurrentHP <= userBefore {
		t.Fatalf("expected drain to heal the user")
	}
}

func TestProtectionFirstUseAlwaysSucceeds(t *testing.T) {
	s := singlesState()
	user := state.Position{Side: state.SideA, Slot: 0}
	ctx := NewContext(s, user, nil, MoveData{ID: ids.NewMove("protect")})
	sets := Protection()(ctx)
	if len(sets) != 1 || sets[0].Probability != 1 {
		t.Fatalf("expected guaranteed success on first use, got %+v", sets)
	}
}

func TestHazardLayerStopsAtCap(t *testing.T) {
	s := singlesState()
	user := state.Position{Side: state.SideA, Slot: 0}
	composer := HazardLayer(state.CondSpikes, 3)
	ctx := NewContext(s, user, nil, MoveData{ID: ids.NewMove("spikes")})

	for i := 0; i < 3; i++ {
		sets := composer(ctx)
		sets[0].Apply(s)
	}
	layers := s.Side(state.SideB).Conditions[state.CondSpikes].Layers
	if layers != 3 {
		t.Fatalf("expected 3 layers after 3 uses, got %d", layers)
	}
	sets := composer(ctx)
	if len(sets[0].Instructions) != 1 {
		t.Fatalf("expected a no-op (pp only) branch once capped, got %d instructions", len(sets[0].Instructions))
	}
}

func TestForceSwitchNoOpsWithoutLegalReplacement(t *testing.T) {
	s := singlesState()
	user := state.Position{Side: state.SideA, Slot: 0}
	opp := state.Position{Side: state.SideB, Slot: 0}
	ctx := NewContext(s, user, []state.Position{opp}, MoveData{ID: ids.NewMove("whirlwind")})

	sets := ForceSwitch()(ctx)
	if len(sets) != 1 {
		t.Fatalf("expected a single certain branch, got %d", len(sets))
	}
	for _, ins := range sets[0].Instructions {
		if _, ok := ins.(*instruction.Switch); ok {
			t.Fatalf("expected no Switch instruction with no legal replacement")
		}
	}
}

func TestForceSwitchEjectsIntoFirstAvailableBench(t *testing.T) {
	format := state.NewFormat("singles", state.WithType(state.Singles))
	a := []*state.Pokemon{mon("a0", "normal")}
	b := []*state.Pokemon{mon("b0", "normal"), mon("b1", "water")}
	s := state.New(format, a, b, 3)

	user := state.Position{Side: state.SideA, Slot: 0}
	opp := state.Position{Side: state.SideB, Slot: 0}
	ctx := NewContext(s, user, []state.Position{opp}, MoveData{ID: ids.NewMove("whirlwind")})

	sets := ForceSwitch()(ctx)
	if len(sets) != 1 {
		t.Fatalf("expected a single certain branch, got %d", len(sets))
	}
	sets[0].Apply(s)
	if s.Side(state.SideB).Active[0] != 1 {
		t.Fatalf("expected the benched pokemon to be switched in, active=%d", s.Side(state.SideB).Active[0])
	}
	sets[0].Revert(s)
	if s.Side(state.SideB).Active[0] != 0 {
		t.Fatalf("expected revert to restore the original active pokemon")
	}
}

func TestStatSubstitutionBodyPressUsesUsersDefense(t *testing.T) {
	s := singlesState()
	user := state.Position{Side: state.SideA, Slot: 0}
	opp := state.Position{Side: state.SideB, Slot: 0}
	s.PokemonAt(user).Computed.Def = 200 // far above Atk (80), would be trivially visible in damage dealt
	move := MoveData{ID: ids.NewMove("bodypress"), Type: ids.NewType("fighting"), Category: Physical, Power: 80, Accuracy: 100}
	ctx := NewContext(s, user, []state.Position{opp}, move)

	plain := SimpleDamage()(ctx)
	substituted := StatSubstitution(calc.BodyPressOffenseIsDefense)(ctx)

	before := s.PokemonAt(opp).CurrentHP
	plain[0].Apply(s)
	afterPlain := s.PokemonAt(opp).CurrentHP
	plain[0].Revert(s)

	substituted[0].Apply(s)
	afterSubstituted := s.PokemonAt(opp).CurrentHP
	substituted[0].Revert(s)

	if before-afterSubstituted <= before-afterPlain {
		t.Fatalf("expected body press's defense-as-offense swap to deal more damage than plain attack stat: plain=%d substituted=%d", before-afterPlain, before-afterSubstituted)
	}
}

func TestWeatherSetterAppliesWeather(t *testing.T) {
	s := singlesState()
	user := state.Position{Side: state.SideA, Slot: 0}
	ctx := NewContext(s, user, nil, MoveData{ID: ids.NewMove("raindance")})
	sets := WeatherSetter(state.WeatherRain, 5)(ctx)
	sets[0].Apply(s)
	if s.Field.Weather != state.WeatherRain {
		t.Fatalf("expected rain to be active")
	}
}
