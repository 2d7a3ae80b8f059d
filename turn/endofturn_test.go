package turn

import (
	"testing"

	"pokebattle/ids"
	"pokebattle/state"
)

func TestResolveFutureSightsDamagesOnZeroCountdown(t *testing.T) {
	s := state.New(state.NewFormat("singles", state.WithType(state.Singles)), []*state.Pokemon{pikachu()}, []*state.Pokemon{slowbro()}, 1)
	side := s.Side(state.SideB)
	side.FutureSights = append(side.FutureSights, &state.PendingFutureSight{
		TargetRosterIndex: 0,
		TurnsLeft:         1,
		Power:             120,
		UserComputed:      state.Stats{SpA: 90},
		UserLevel:         50,
	})

	before := side.Roster[0].CurrentHP
	ins := resolveFutureSights(s)
	for _, i := range ins {
		i.Apply(s)
	}
	if side.Roster[0].CurrentHP >= before {
		t.Fatalf("expected future sight to damage its target on countdown reaching zero")
	}
	if len(side.FutureSights) != 0 {
		t.Fatalf("expected the resolved future sight to be popped, got %d remaining", len(side.FutureSights))
	}
}

func TestResolveFutureSightsDecrementsWithoutResolving(t *testing.T) {
	s := state.New(state.NewFormat("singles", state.WithType(state.Singles)), []*state.Pokemon{pikachu()}, []*state.Pokemon{slowbro()}, 1)
	side := s.Side(state.SideB)
	side.FutureSights = append(side.FutureSights, &state.PendingFutureSight{
		TargetRosterIndex: 0, TurnsLeft: 2, Power: 120, UserComputed: state.Stats{SpA: 90}, UserLevel: 50,
	})

	before := side.Roster[0].CurrentHP
	ins := resolveFutureSights(s)
	for _, i := range ins {
		i.Apply(s)
	}
	if side.Roster[0].CurrentHP != before {
		t.Fatalf("expected no damage before the countdown reaches zero")
	}
	if len(side.FutureSights) != 1 || side.FutureSights[0].TurnsLeft != 1 {
		t.Fatalf("expected the pending future sight to tick down by one, got %+v", side.FutureSights)
	}
}

func TestProtectStreakResetsOnNonProtectMove(t *testing.T) {
	s := state.New(state.NewFormat("singles", state.WithType(state.Singles)), []*state.Pokemon{pikachu()}, []*state.Pokemon{slowbro()}, 1)
	user := s.PokemonAt(state.Position{Side: state.SideA, Slot: 0})
	user.Volatiles[state.VolProtect] = &state.Volatile{Kind: state.VolProtect, Counter: 2}
	user.LastMove = ids.NewMove("tackle")
	user.LastMoveTurn = s.Field.Turn
	user.SwitchInTurn = -1

	ins := protectStreakReset(s)
	if len(ins) != 1 {
		t.Fatalf("expected one reset instruction, got %d", len(ins))
	}
	ins[0].Apply(s)
	if user.Volatiles.Has(state.VolProtect) {
		t.Fatalf("expected protect streak to be cleared after a non-protect move")
	}
}

func TestProtectStreakSurvivesUsingProtectAgain(t *testing.T) {
	s := state.New(state.NewFormat("singles", state.WithType(state.Singles)), []*state.Pokemon{pikachu()}, []*state.Pokemon{slowbro()}, 1)
	user := s.PokemonAt(state.Position{Side: state.SideA, Slot: 0})
	user.Volatiles[state.VolProtect] = &state.Volatile{Kind: state.VolProtect, Counter: 1}
	user.LastMove = protectMoveID
	user.LastMoveTurn = s.Field.Turn
	user.SwitchInTurn = -1

	ins := protectStreakReset(s)
	if len(ins) != 0 {
		t.Fatalf("expected no reset while the streak's own move is still protect, got %d", len(ins))
	}
}

func TestSubstituteFaintCleanupClearsBenchedAndActive(t *testing.T) {
	a0 := pikachu()
	bench := benchMon("bench")
	s := state.New(state.NewFormat("singles", state.WithType(state.Singles)), []*state.Pokemon{a0, bench}, []*state.Pokemon{slowbro()}, 1)
	a0.Volatiles[state.VolSubstitute] = &state.Volatile{Kind: state.VolSubstitute, Counter: 1}
	a0.SetHP(0)
	bench.Volatiles[state.VolSubstitute] = &state.Volatile{Kind: state.VolSubstitute, Counter: 1}
	bench.SetHP(0)

	ins := substituteFaintCleanup(s)
	if len(ins) != 2 {
		t.Fatalf("expected one cleanup instruction per fainted substitute holder, got %d", len(ins))
	}
	for _, i := range ins {
		i.Apply(s)
	}
	if a0.Volatiles.Has(state.VolSubstitute) {
		t.Fatalf("expected substitute to be cleared from the fainted pokemon")
	}
	if bench.Volatiles.Has(state.VolSubstitute) {
		t.Fatalf("expected substitute to be cleared from the fainted benched pokemon")
	}
}
