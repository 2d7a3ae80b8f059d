package registry

import (
	"testing"

	"pokebattle/effect"
	"pokebattle/ids"
)

func TestRegisteredMoveResolvesToItsOwnComposer(t *testing.T) {
	entry, ok := Get(ids.NewMove("tackle"))
	if !ok {
		t.Fatalf("expected tackle to be registered")
	}
	if entry.Data.Power != 40 {
		t.Fatalf("expected tackle power 40, got %d", entry.Data.Power)
	}
}

func TestResolveFallsBackForUnknownMove(t *testing.T) {
	composer := Resolve(ids.NewMove("nonexistentmove123"), effect.MoveData{Category: effect.Physical, Power: 50})
	if composer == nil {
		t.Fatalf("expected a non-nil fallback composer")
	}
}

func TestResolveStatusFallbackProducesNoInstructions(t *testing.T) {
	composer := Resolve(ids.NewMove("mysterystatus"), effect.MoveData{Category: effect.Status})
	if composer == nil {
		t.Fatalf("expected a non-nil fallback composer for unknown status move")
	}
}

func TestAllIDsIncludesRegisteredSample(t *testing.T) {
	ids_ := AllIDs()
	if len(ids_) < 10 {
		t.Fatalf("expected at least 10 registered sample moves, got %d", len(ids_))
	}
}
