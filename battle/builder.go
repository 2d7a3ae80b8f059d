package battle

import (
	"fmt"

	"pokebattle/battleerr"
	"pokebattle/state"
)

// BattleBuilder assembles a *state.State one phase at a time, grounded on
// game_main/gamesetup.go's GameBootstrap: a handful of named phase methods
// with explicit dependency ordering instead of one large constructor call.
// Unlike GameBootstrap's fixed four-phase sequence, team assembly is
// open-ended (one AddToSideA/AddToSideB call per roster member), so errors
// accumulate on the builder itself and surface once, at Build.
type BattleBuilder struct {
	format        state.Format
	rosterA       []*state.Pokemon
	rosterB       []*state.Pokemon
	seed          uint64
	seenSpeciesA  map[string]bool
	seenSpeciesB  map[string]bool
	err           error
}

// NewBattleBuilder starts assembly under format. Phase 1: depends on
// nothing but the caller's chosen Format.
func NewBattleBuilder(format state.Format) *BattleBuilder {
	return &BattleBuilder{
		format:       format,
		seenSpeciesA: make(map[string]bool),
		seenSpeciesB: make(map[string]bool),
	}
}

// WithSeed overrides the field RNG seed (default 0, deterministic).
func (b *BattleBuilder) WithSeed(seed uint64) *BattleBuilder {
	b.seed = seed
	return b
}

// AddToSideA enrolls p on side A. Phase 2: depends on Phase 1's Format,
// since every legality check here (bans, Species Clause, team size) reads
// b.format.
func (b *BattleBuilder) AddToSideA(p *state.Pokemon) *BattleBuilder {
	b.rosterA = append(b.rosterA, b.checkedAdd(p, b.rosterA, b.seenSpeciesA, state.SideA))
	return b
}

// AddToSideB enrolls p on side B. Same dependency as AddToSideA.
func (b *BattleBuilder) AddToSideB(p *state.Pokemon) *BattleBuilder {
	b.rosterB = append(b.rosterB, b.checkedAdd(p, b.rosterB, b.seenSpeciesB, state.SideB))
	return b
}

// checkedAdd validates p against the format's bans, Species Clause, and
// team-size cap before returning it for appending; validation failures are
// recorded on b.err rather than returned, since the fluent Add* methods
// return *BattleBuilder, not error.
func (b *BattleBuilder) checkedAdd(p *state.Pokemon, roster []*state.Pokemon, seenSpecies map[string]bool, side state.SideID) *state.Pokemon {
	if b.err != nil {
		return p
	}
	if len(roster) >= b.format.TeamSize {
		b.err = fmt.Errorf("%w: side %s exceeds team size %d", battleerr.ErrFormatViolation, side, b.format.TeamSize)
		return p
	}
	if _, banned := b.format.Bans.Species[p.Species]; banned {
		b.err = fmt.Errorf("%w: species %q is banned", battleerr.ErrFormatViolation, p.Species.String())
		return p
	}
	if _, banned := b.format.Bans.Abilities[p.Ability]; banned {
		b.err = fmt.Errorf("%w: ability %q is banned", battleerr.ErrFormatViolation, p.Ability.String())
		return p
	}
	if !p.Item.IsZero() {
		if _, banned := b.format.Bans.Items[p.Item]; banned {
			b.err = fmt.Errorf("%w: item %q is banned", battleerr.ErrFormatViolation, p.Item.String())
			return p
		}
	}
	for _, slot := range p.Moves {
		if slot.Move.IsZero() {
			continue
		}
		if _, banned := b.format.Bans.Moves[slot.Move]; banned {
			b.err = fmt.Errorf("%w: move %q is banned", battleerr.ErrFormatViolation, slot.Move.String())
			return p
		}
	}
	if b.format.HasClause(state.ClauseSpecies) {
		key := p.Species.String()
		if seenSpecies[key] {
			b.err = fmt.Errorf("%w: side %s already carries species %q (Species Clause)", battleerr.ErrFormatViolation, side, key)
			return p
		}
		seenSpecies[key] = true
	}
	return p
}

// Build finishes assembly, failing with whatever the phase methods recorded
// or with a fresh team-size check (spec §7's format-violation surface) if
// either side didn't reach the format's minimum of one Pokémon. Phase 3:
// depends on Phase 1's Format and Phase 2's two rosters.
func (b *BattleBuilder) Build() (*state.State, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.rosterA) == 0 || len(b.rosterB) == 0 {
		return nil, fmt.Errorf("%w: both sides need at least one pokemon", battleerr.ErrFormatViolation)
	}
	return state.New(b.format, b.rosterA, b.rosterB, b.seed), nil
}
