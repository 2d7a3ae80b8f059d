package registry

import (
	"pokebattle/effect"
	"pokebattle/ids"
)

// Resolver adapts this package's Get/Resolve functions to turn.MoveResolver,
// the seam the turn-resolution pipeline calls through rather than
// importing this package directly (spec.md §4.9's registry sits behind an
// interface so the pipeline never hard-codes how moves got registered).
type Resolver struct{}

// MoveData returns the declared data for a registered move, or a status-
// category zero value when unregistered (GenericFallback then resolves to
// a no-op composer for it).
func (Resolver) MoveData(id ids.Move) (effect.MoveData, bool) {
	e, ok := Get(id)
	if !ok {
		return effect.MoveData{Category: effect.Status}, false
	}
	return e.Data, true
}

// Composer resolves id's composer via Resolve, falling back to the generic
// damage/status builder for unregistered moves.
func (Resolver) Composer(id ids.Move, data effect.MoveData) effect.Composer {
	return Resolve(id, data)
}
