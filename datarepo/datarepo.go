// Package datarepo declares the external data-repository contract spec.md
// §6 names: read-only lookups a battle engine consults for species, move,
// item, ability, and type-chart records, kept out of this module's own
// turn-resolution packages since the engine only ever borrows these records
// through the interface — it never owns or mutates game data.
//
// Grounded on the teacher's datareader package (datareader/equipmentreader.go,
// datareader/creaturereader.go), which loads static JSON game data into
// typed records behind small Get* lookup functions; this package
// generalizes that "typed record behind a narrow read interface" shape to a
// swappable Repository any caller can back with JSON, a database, or (for
// tests) the in-memory stand-in in internal_data.
package datarepo

import (
	"fmt"

	"pokebattle/battleerr"
	"pokebattle/calc"
	"pokebattle/effect"
	"pokebattle/ids"
	"pokebattle/state"
)

// SpeciesRecord is a read-only base-stat/typing record for one species.
type SpeciesRecord struct {
	ID        ids.Species
	Types     [2]ids.Type
	BaseStats state.Stats
	Abilities []ids.Ability
}

// MoveRecord is a read-only move record: the same effect.MoveData the
// registry uses to drive a composer, generation-scoped so a caller can
// resolve a move's data as it existed in a given generation before handing
// it to registry.Resolve.
type MoveRecord struct {
	Data effect.MoveData
}

// ItemRecord is a read-only held-item record.
type ItemRecord struct {
	ID   ids.Item
	Name string
}

// AbilityRecord is a read-only ability record.
type AbilityRecord struct {
	ID   ids.Ability
	Name string
}

// MoveChange records one generation-to-generation shift in a move's
// declared data (e.g. a power or accuracy change), the kind of history
// move_changes(id) exposes so callers can reconstruct a move's behavior at
// an older generation.
type MoveChange struct {
	Generation int
	Data       effect.MoveData
}

// Repository is the read-only external data contract spec.md §6 names.
// Absence of a requested ID is reported as battleerr.ErrDataNotFound, never
// a zero value silently returned.
type Repository interface {
	Species(id ids.Species) (SpeciesRecord, error)
	Move(id ids.Move, gen int) (MoveRecord, error)
	Item(id ids.Item, gen int) (ItemRecord, error)
	Ability(id ids.Ability, gen int) (AbilityRecord, error)
	TypeChart(gen int) (calc.TypeChart, error)
	MoveChanges(id ids.Move) ([]MoveChange, error)
}

// NotFound wraps battleerr.ErrDataNotFound with the lookup kind and ID, the
// uniform shape every Repository implementation's failures take.
func NotFound(kind, id string) error {
	return fmt.Errorf("%w: %s %q", battleerr.ErrDataNotFound, kind, id)
}
