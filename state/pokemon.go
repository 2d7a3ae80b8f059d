package state

import "pokebattle/ids"

// MoveSlot is one of a Pokémon's up to four known moves.
type MoveSlot struct {
	Move     ids.Move
	PP       int
	MaxPP    int
	Disabled bool
}

// Pokemon is the single component payload attached to each roster entity in
// a State's ECS world (see state.go). Every field here is guarded: callers
// outside this package mutate a Pokemon only through the methods below (or,
// during turn resolution, only through instruction.Instruction values),
// which is what keeps spec.md §3's invariants true at every observation
// point.
type Pokemon struct {
	Species ids.Species
	Level   int
	Types   [2]ids.Type // Types[1].IsZero() for a monotype Pokémon

	MaxHP      int
	CurrentHP  int
	BaseStats  Stats
	Computed   Stats
	IVs        Stats
	EVs        Stats
	Nature     string

	Ability      ids.Ability
	Item         ids.Item
	ItemConsumed bool

	Moves [4]MoveSlot

	Status        MajorStatus
	StatusCounter int // toxic stage (starts at 1) or sleep turns remaining
	Stages        StatStages
	Volatiles     Volatiles

	Tera          ids.Type
	Terastallized bool

	LastMove     ids.Move
	LastMoveTurn int

	DamageDealtThisTurn  int // for Counter/Mirror Coat; reset each turn (spec §4.7 phase 5)
	DamageTakenThisTurn  int
	SwitchInTurn         int
	FormSpecies          ids.Species // non-zero overrides Species for display/type lookups post form-change
}

// NewPokemon constructs a Pokemon at full HP with the given base kit. The
// caller (battle.BattleBuilder, ordinarily backed by a team importer) is
// responsible for resolving computed stats from the data repository before
// calling this constructor — this package owns invariants, not stat math.
func NewPokemon(species ids.Species, level int, types [2]ids.Type, computed Stats, ivs, evs Stats, nature string, ability ids.Ability, moves [4]MoveSlot) *Pokemon {
	return &Pokemon{
		Species:   species,
		Level:     level,
		Types:     types,
		MaxHP:     computed.HP,
		CurrentHP: computed.HP,
		BaseStats: computed,
		Computed:  computed,
		IVs:       ivs,
		EVs:       evs,
		Nature:    nature,
		Ability:   ability,
		Moves:     moves,
		Volatiles: make(Volatiles),
	}
}

// Fainted reports hp == 0, the sole fainting condition (spec §3 invariant).
func (p *Pokemon) Fainted() bool { return p.CurrentHP == 0 }

// SetHP clamps to [0, MaxHP] and returns the previous HP, so callers that
// need an undo payload (instruction.Damage/Heal) capture it in one call.
func (p *Pokemon) SetHP(hp int) (previous int) {
	previous = p.CurrentHP
	if hp < 0 {
		hp = 0
	}
	if hp > p.MaxHP {
		hp = p.MaxHP
	}
	p.CurrentHP = hp
	return previous
}

// EffectiveType returns the Pokémon's current defensive/offensive types,
// accounting for terastallization: once terastallized, the tera type alone
// is reported. No other tera rule is applied here; this just reports what's
// currently "on".
func (p *Pokemon) EffectiveType() [2]ids.Type {
	if p.Terastallized && !p.Tera.IsZero() {
		return [2]ids.Type{p.Tera}
	}
	return p.Types
}

// SubstituteHP returns the Substitute's remaining HP, or 0 if no Substitute
// is active.
func (p *Pokemon) SubstituteHP() int {
	if v := p.Volatiles.Get(VolSubstitute); v != nil {
		return v.Counter
	}
	return 0
}
