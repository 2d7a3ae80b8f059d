// Package registry implements the process-wide move registry spec.md §4.9
// describes: a lazily-initialized mapping from move ID to an effect
// function, with a generic fallback for unregistered moves.
//
// Grounded on tactical/perks/registry.go's PerkRegistry map[string]
// *PerkDefinition plus GetPerkDefinition/GetAllPerkIDs, generalized from a
// JSON-asset-loaded map to a compile-time-registered one (this engine has
// no asset pipeline of its own — move data is supplied by the out-of-scope
// data repository — so registration happens through Register calls rather
// than LoadPerkDefinitions' file read).
package registry

import (
	"sync"

	"pokebattle/effect"
	"pokebattle/ids"
	"pokebattle/instruction"
)

// Entry pairs a move's declarative data with the composer that resolves
// it, the uniform "function pointer" signature spec §4.9 names.
type Entry struct {
	Data     effect.MoveData
	Composer effect.Composer
}

var (
	mu       sync.RWMutex
	moves    = make(map[ids.Move]Entry)
	fallback func(effect.MoveData) effect.Composer
	initOnce sync.Once
)

// Register installs the composer for a move ID, overwriting any existing
// entry (later registrations — e.g. generation-specific overrides — win).
func Register(id ids.Move, data effect.MoveData, composer effect.Composer) {
	mu.Lock()
	defer mu.Unlock()
	data.ID = id
	moves[id] = Entry{Data: data, Composer: composer}
}

// Get returns the registered entry for id. ok is false when the move has
// no dedicated composer and the caller should use Fallback instead.
func Get(id ids.Move) (Entry, bool) {
	mu.RLock()
	defer mu.RUnlock()
	e, ok := moves[id]
	return e, ok
}

// AllIDs returns every registered move ID, in no particular order —
// generalizing GetAllPerkIDs's role to this package.
func AllIDs() []ids.Move {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]ids.Move, 0, len(moves))
	for id := range moves {
		out = append(out, id)
	}
	return out
}

// SetFallback installs the generic damage/status composer builder unknown
// moves dispatch to (spec §4.9: "unknown moves dispatch to a generic
// damage/status fallback driven by the move data's declared fields").
// Callers normally call this once at process start with
// registry.GenericFallback; it is a setter (not baked into init) so tests
// can swap in a deterministic stub.
func SetFallback(f func(effect.MoveData) effect.Composer) {
	mu.Lock()
	defer mu.Unlock()
	fallback = f
}

// Resolve returns the composer for id given its declarative data: the
// registered composer if one exists, otherwise the installed fallback
// applied to data. Resolve panics only if no fallback was ever installed,
// since that represents a process mis-configuration rather than a
// recoverable battle error.
func Resolve(id ids.Move, data effect.MoveData) effect.Composer {
	initOnce.Do(func() {
		mu.Lock()
		if fallback == nil {
			fallback = GenericFallback
		}
		mu.Unlock()
	})
	if e, ok := Get(id); ok {
		return e.Composer
	}
	mu.RLock()
	f := fallback
	mu.RUnlock()
	return f(data)
}

// GenericFallback builds a composer purely from a move's declared fields
// when no dedicated composer was registered: a simple damage hit for
// damaging categories, or a single no-op branch for status moves the
// registry never learned a specific effect for; that branch carries no
// instructions, so it spends no PP. This mirrors spec §4.9's
// fallback contract without guessing at secondary effects the data
// repository didn't declare.
func GenericFallback(data effect.MoveData) effect.Composer {
	if data.Category == effect.Status {
		return func(ctx effect.Context) []instruction.InstructionSet {
			return []instruction.InstructionSet{{Probability: 1}}
		}
	}
	return effect.SimpleDamage()
}
