// Package internal_data is an in-memory stand-in for datarepo.Repository,
// preloading a small, hand-written roster/move/item/ability catalog rather
// than reading game-data files off disk — there are no shipped JSON assets
// for this engine to read, unlike the teacher's datareader package
// (datareader/readdata.go's ReadMonsterData/ReadWeaponData, which unmarshal
// game_main/assets/gamedata/*.json into package-level template slices).
// This package keeps that same "load once into typed records, serve from
// memory" shape, generalized to an in-process map instead of a JSON file,
// so tests and examples have a working Repository without bringing in
// real Pokémon game-data files.
package internal_data

import (
	"sync"

	"pokebattle/calc"
	"pokebattle/datarepo"
	"pokebattle/effect"
	"pokebattle/ids"
	"pokebattle/state"
	"pokebattle/target"
)

// Store is an in-memory datarepo.Repository backed by maps built once at
// construction and never mutated afterward, matching the "read-only after
// init, safe to share" resource policy spec.md §5 requires.
type Store struct {
	mu        sync.RWMutex
	species   map[ids.Species]datarepo.SpeciesRecord
	moves     map[ids.Move]datarepo.MoveRecord
	items     map[ids.Item]datarepo.ItemRecord
	abilities map[ids.Ability]datarepo.AbilityRecord
	changes   map[ids.Move][]datarepo.MoveChange
}

// New builds a Store preloaded with a small sample catalog (the registry's
// own sample moves, plus a handful of species/items/abilities) — enough to
// exercise the full Repository contract end to end without external data.
func New() *Store {
	s := &Store{
		species:   make(map[ids.Species]datarepo.SpeciesRecord),
		moves:     make(map[ids.Move]datarepo.MoveRecord),
		items:     make(map[ids.Item]datarepo.ItemRecord),
		abilities: make(map[ids.Ability]datarepo.AbilityRecord),
		changes:   make(map[ids.Move][]datarepo.MoveChange),
	}
	s.seedSpecies()
	s.seedMoves()
	s.seedItems()
	s.seedAbilities()
	return s
}

func (s *Store) seedSpecies() {
	add := func(name string, types [2]string, base state.Stats, abilities ...string) {
		var t [2]ids.Type
		for i, tp := range types {
			if tp != "" {
				t[i] = ids.NewType(tp)
			}
		}
		var ab []ids.Ability
		for _, a := range abilities {
			ab = append(ab, ids.NewAbility(a))
		}
		id := ids.NewSpecies(name)
		s.species[id] = datarepo.SpeciesRecord{ID: id, Types: t, BaseStats: base, Abilities: ab}
	}
	add("pikachu", [2]string{"electric", ""}, state.Stats{HP: 35, Atk: 55, Def: 40, SpA: 50, SpD: 50, Spe: 90}, "static", "lightningrod")
	add("charizard", [2]string{"fire", "flying"}, state.Stats{HP: 78, Atk: 84, Def: 78, SpA: 109, SpD: 85, Spe: 100}, "blaze", "solarpower")
	add("blastoise", [2]string{"water", ""}, state.Stats{HP: 79, Atk: 83, Def: 100, SpA: 85, SpD: 105, Spe: 78}, "torrent")
	add("venusaur", [2]string{"grass", "poison"}, state.Stats{HP: 80, Atk: 82, Def: 83, SpA: 100, SpD: 100, Spe: 80}, "overgrow", "chlorophyll")
	add("tyranitar", [2]string{"rock", "dark"}, state.Stats{HP: 100, Atk: 134, Def: 110, SpA: 95, SpD: 100, Spe: 61}, "sandstream")
	add("gliscor", [2]string{"ground", "flying"}, state.Stats{HP: 75, Atk: 95, Def: 125, SpA: 45, SpD: 75, Spe: 95}, "hypercutter", "poisonheal")
	add("ferrothorn", [2]string{"grass", "steel"}, state.Stats{HP: 74, Atk: 94, Def: 131, SpA: 54, SpD: 116, Spe: 20}, "ironbarbs")
	add("toxapex", [2]string{"poison", "water"}, state.Stats{HP: 50, Atk: 63, Def: 152, SpA: 53, SpD: 142, Spe: 35}, "regenerator", "merciless")
}

// seedMoves mirrors registry/moves.go's concretely-registered sample so a
// caller building a BattleBuilder from species/move names alone can resolve
// the same moves the registry already knows a composer for.
func (s *Store) seedMoves() {
	add := func(name, typ string, cat effect.Category, power, accuracy, priority int, cat2 target.Category, contact bool) {
		id := ids.NewMove(name)
		s.moves[id] = datarepo.MoveRecord{Data: effect.MoveData{
			ID: id, Type: ids.NewType(typ), Category: cat, Power: power, Accuracy: float64(accuracy),
			Priority: priority, TargetCat: cat2, Contact: contact,
		}}
	}
	add("tackle", "normal", effect.Physical, 40, 100, 0, target.AdjacentFoe, true)
	add("rockslide", "rock", effect.Physical, 75, 90, 0, target.AllAdjacentFoes, false)
	add("bulletseed", "grass", effect.Physical, 25, 100, 0, target.AdjacentFoe, false)
	add("stealthrock", "rock", effect.Status, 0, 0, 0, target.FoeSide, false)
	add("spikes", "ground", effect.Status, 0, 0, 0, target.FoeSide, false)
	add("rapidspin", "normal", effect.Physical, 50, 100, 0, target.AdjacentFoe, true)
	add("protect", "normal", effect.Status, 0, 0, 4, target.Self, false)
	add("raindance", "water", effect.Status, 0, 0, 0, target.EntireField, false)
	add("seismictoss", "fighting", effect.Physical, 0, 100, 0, target.AdjacentFoe, true)
	add("doubleedge", "normal", effect.Physical, 120, 100, 0, target.AdjacentFoe, true)
	add("gigadrain", "grass", effect.Special, 75, 100, 0, target.AdjacentFoe, false)
	add("swordsdance", "normal", effect.Status, 0, 0, 0, target.Self, false)
	add("willowisp", "fire", effect.Status, 0, 85, 0, target.AdjacentFoe, false)
	add("solarbeam", "grass", effect.Special, 120, 100, 0, target.AdjacentFoe, false)
	add("frostbreath", "ice", effect.Special, 60, 90, 0, target.AdjacentFoe, false)
	add("whirlwind", "normal", effect.Status, 0, 0, -6, target.AdjacentFoe, false)
	add("bodypress", "fighting", effect.Physical, 80, 100, 0, target.AdjacentFoe, true)

	// move_changes(id) sample: Rock Slide's accuracy was buffed from gen 2's
	// 75 to the current 90 at generation 3's physical/special split cleanup.
	s.changes[ids.NewMove("rockslide")] = []datarepo.MoveChange{
		{Generation: 2, Data: effect.MoveData{ID: ids.NewMove("rockslide"), Type: ids.NewType("rock"), Category: effect.Physical, Power: 75, Accuracy: 75, TargetCat: target.AllAdjacentFoes}},
		{Generation: 3, Data: effect.MoveData{ID: ids.NewMove("rockslide"), Type: ids.NewType("rock"), Category: effect.Physical, Power: 75, Accuracy: 90, TargetCat: target.AllAdjacentFoes}},
	}
}

func (s *Store) seedItems() {
	add := func(name string) { id := ids.NewItem(name); s.items[id] = datarepo.ItemRecord{ID: id, Name: name} }
	add("leftovers")
	add("blacksludge")
	add("choiceband")
	add("choicescarf")
	add("choicespecs")
	add("rockyhelmet")
	add("lifeorb")
	add("focussash")
}

func (s *Store) seedAbilities() {
	add := func(name string) {
		id := ids.NewAbility(name)
		s.abilities[id] = datarepo.AbilityRecord{ID: id, Name: name}
	}
	add("static")
	add("lightningrod")
	add("blaze")
	add("solarpower")
	add("torrent")
	add("overgrow")
	add("chlorophyll")
	add("sandstream")
	add("hypercutter")
	add("poisonheal")
	add("ironbarbs")
	add("regenerator")
	add("merciless")
	add("none")
}

func (s *Store) Species(id ids.Species) (datarepo.SpeciesRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.species[id]
	if !ok {
		return datarepo.SpeciesRecord{}, datarepo.NotFound("species", id.String())
	}
	return rec, nil
}

// Move ignores gen for this in-memory catalog beyond what MoveChanges
// records; callers wanting generation-accurate data should consult
// MoveChanges and pick the entry whose Generation is closest to gen without
// exceeding it.
func (s *Store) Move(id ids.Move, gen int) (datarepo.MoveRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.moves[id]
	if !ok {
		return datarepo.MoveRecord{}, datarepo.NotFound("move", id.String())
	}
	return rec, nil
}

func (s *Store) Item(id ids.Item, gen int) (datarepo.ItemRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.items[id]
	if !ok {
		return datarepo.ItemRecord{}, datarepo.NotFound("item", id.String())
	}
	return rec, nil
}

func (s *Store) Ability(id ids.Ability, gen int) (datarepo.AbilityRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.abilities[id]
	if !ok {
		return datarepo.AbilityRecord{}, datarepo.NotFound("ability", id.String())
	}
	return rec, nil
}

// TypeChart delegates to calc.StandardChart, which already is the
// generation-scoped authority this engine uses internally; the Store adds
// no data of its own here, just satisfies the Repository contract.
func (s *Store) TypeChart(gen int) (calc.TypeChart, error) {
	return calc.StandardChart(gen), nil
}

func (s *Store) MoveChanges(id ids.Move) ([]datarepo.MoveChange, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	changes, ok := s.changes[id]
	if !ok {
		return nil, nil
	}
	return changes, nil
}

var _ datarepo.Repository = (*Store)(nil)
