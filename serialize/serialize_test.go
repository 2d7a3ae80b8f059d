package serialize

import (
	"reflect"
	"testing"

	"pokebattle/ids"
	"pokebattle/state"
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
		{Move: ids.NewMove("thunderbolt"), PP: 15, MaxPP: 15, Disabled: true},
	}
	p := state.NewPokemon(ids.NewSpecies(name), 50, t,
		state.Stats{HP: 100, Atk: 80, Def: 70, SpA: 60, SpD: 60, Spe: 90},
		state.Stats{HP: 31, Atk: 31, Def: 31, SpA: 31, SpD: 31, Spe: 31},
		state.Stats{HP: 4, Atk: 252}, "adamant", ids.NewAbility("static"), moves)
	p.Item = ids.NewItem("leftovers")
	return p
}

func singlesState() *state.State {
	format := state.NewFormat("singles", state.WithType(state.Singles), state.WithGeneration(9))
	return state.New(format, []*state.Pokemon{mon("pikachu", "electric")}, []*state.Pokemon{mon("charmander", "fire")}, 1)
}

func doublesState() *state.State {
	format := state.NewFormat("doubles", state.WithType(state.Doubles))
	a := []*state.Pokemon{mon("a0", "normal"), mon("a1", "normal")}
	b := []*state.Pokemon{mon("b0", "normal"), mon("b1", "normal")}
	return state.New(format, a, b, 7)
}

// richSingles exercises every field the encoding touches: mid-battle HP,
// a major status with a counter, boosted stages, a volatile with a move
// reference, entry hazards, a choice lock, and a pending wish.
func richSingles() *state.State {
	s := singlesState()
	a := s.PokemonAt(state.Position{Side: state.SideA, Slot: 0})
	a.SetHP(42)
	a.Status = state.StatusToxic
	a.StatusCounter = 3
	a.Stages.Add(state.StatIdxAtk, 2)
	a.Stages.Add(state.StatIdxSpe, -1)
	a.Volatiles[state.VolDisable] = &state.Volatile{Kind: state.VolDisable, Duration: 2, Move: ids.NewMove("tackle")}
	a.LastMove = ids.NewMove("tackle")
	a.LastMoveTurn = 3
	a.DamageDealtThisTurn = 17
	a.Terastallized = true
	a.Tera = ids.NewType("flying")

	s.Side(state.SideA).Conditions[state.CondStealthRock] = &state.ConditionState{Layers: 1}
	s.Side(state.SideA).Conditions[state.CondSpikes] = &state.ConditionState{Layers: 2}
	s.Side(state.SideA).ChoiceLock[0] = 1
	s.Side(state.SideA).Wishes = append(s.Side(state.SideA).Wishes, &state.PendingWish{RosterIndex: 0, TurnsLeft: 1, HealAmount: 50})
	s.Side(state.SideB).FutureSights = append(s.Side(state.SideB).FutureSights, &state.PendingFutureSight{
		TargetRosterIndex: 0, TurnsLeft: 2, Power: 120,
		UserComputed: state.Stats{HP: 100, Atk: 1, Def: 1, SpA: 130, SpD: 1, Spe: 1}, UserLevel: 50,
	})

	s.Field.Weather = state.WeatherSand
	s.Field.WeatherState = state.FieldState{Turns: 5, Source: state.Position{Side: state.SideB, Slot: 0}}
	s.Field.Terrain = state.TerrainGrassy
	s.Field.Turn = 4
	s.Field.Gravity = true
	s.Field.GravityTurns = 2
	s.Field.Rooms[state.RoomTrick] = 3
	return s
}

func pokemonSnapshot(p *state.Pokemon) state.Pokemon { return *p }

func sideSnapshot(t *testing.T, side *state.Side) map[string]any {
	t.Helper()
	roster := make([]state.Pokemon, len(side.Roster))
	for i, p := range side.Roster {
		roster[i] = pokemonSnapshot(p)
	}
	return map[string]any{
		"active":       append([]int{}, side.Active...),
		"roster":       roster,
		"conditions":   side.Conditions,
		"choiceLock":   side.ChoiceLock,
		"wishes":       side.Wishes,
		"futureSights": side.FutureSights,
	}
}

func assertSideEqual(t *testing.T, label string, want, got *state.Side) {
	t.Helper()
	ws, gs := sideSnapshot(t, want), sideSnapshot(t, got)
	for _, key := range []string{"active", "roster", "conditions", "choiceLock", "wishes", "futureSights"} {
		if !reflect.DeepEqual(ws[key], gs[key]) {
			t.Errorf("%s: %s mismatch\nwant %#v\ngot  %#v", label, key, ws[key], gs[key])
		}
	}
}

func assertStateEqual(t *testing.T, want, got *state.State) {
	t.Helper()
	if !reflect.DeepEqual(want.Format, got.Format) {
		t.Errorf("format mismatch\nwant %#v\ngot  %#v", want.Format, got.Format)
	}
	if !reflect.DeepEqual(*want.Field, *got.Field) {
		t.Errorf("field mismatch\nwant %#v\ngot  %#v", *want.Field, *got.Field)
	}
	assertSideEqual(t, "side A", want.Sides[state.SideA], got.Sides[state.SideA])
	assertSideEqual(t, "side B", want.Sides[state.SideB], got.Sides[state.SideB])
}

func TestTextRoundTripSimpleSingles(t *testing.T) {
	s := singlesState()
	got, err := FromText(Text(s))
	if err != nil {
		t.Fatalf("FromText: %v", err)
	}
	assertStateEqual(t, s, got)
}

func TestTextRoundTripDoubles(t *testing.T) {
	s := doublesState()
	got, err := FromText(Text(s))
	if err != nil {
		t.Fatalf("FromText: %v", err)
	}
	assertStateEqual(t, s, got)
}

func TestTextRoundTripRichState(t *testing.T) {
	s := richSingles()
	encoded := Text(s)
	got, err := FromText(encoded)
	if err != nil {
		t.Fatalf("FromText: %v", err)
	}
	assertStateEqual(t, s, got)

	// Re-encoding the decoded state must reproduce the same bytes —
	// determinism independent of map iteration order.
	if again := Text(got); again != encoded {
		t.Fatalf("re-encoding decoded state diverged:\nfirst  %q\nsecond %q", encoded, again)
	}
}

func TestBinaryRoundTripRichState(t *testing.T) {
	s := richSingles()
	got, err := FromBinary(Binary(s))
	if err != nil {
		t.Fatalf("FromBinary: %v", err)
	}
	assertStateEqual(t, s, got)
}

func TestFromBinaryRejectsBadMagic(t *testing.T) {
	data := Binary(singlesState())
	data[0] ^= 0xff
	if _, err := FromBinary(data); err == nil {
		t.Fatalf("expected an error decoding a corrupted magic number")
	}
}

func TestFromBinaryRejectsTruncatedPayload(t *testing.T) {
	data := Binary(richSingles())
	if _, err := FromBinary(data[:len(data)-5]); err == nil {
		t.Fatalf("expected an error decoding a truncated payload")
	}
}

func TestFromTextRejectsMalformedSectionCount(t *testing.T) {
	if _, err := FromText("only one section"); err == nil {
		t.Fatalf("expected an error for a malformed top-level section count")
	}
}
