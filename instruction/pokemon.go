package instruction

import (
	"fmt"

	"pokebattle/ids"
	"pokebattle/state"
)

// Damage subtracts amount from the Pokémon at Pos, clamped to 0. Previous is
// captured by Apply so Revert is an exact inverse.
type Damage struct {
	Pos      state.Position
	Amount   int
	previous int
}

func (i *Damage) Apply(s *state.State) {
	p := s.PokemonAt(i.Pos)
	i.previous = p.SetHP(p.CurrentHP - i.Amount)
	p.DamageTakenThisTurn += i.Amount
}
func (i *Damage) Revert(s *state.State) {
	p := s.PokemonAt(i.Pos)
	p.CurrentHP = i.previous
	p.DamageTakenThisTurn -= i.Amount
}
func (i *Damage) Describe() string { return fmt.Sprintf("Damage %s by %d", i.Pos, i.Amount) }

// Heal adds amount to the Pokémon at Pos, clamped to MaxHP.
type Heal struct {
	Pos      state.Position
	Amount   int
	previous int
}

func (i *Heal) Apply(s *state.State) {
	p := s.PokemonAt(i.Pos)
	i.previous = p.SetHP(p.CurrentHP + i.Amount)
}
func (i *Heal) Revert(s *state.State) {
	p := s.PokemonAt(i.Pos)
	p.CurrentHP = i.previous
}
func (i *Heal) Describe() string { return fmt.Sprintf("Heal %s by %d", i.Pos, i.Amount) }

// Faint forces HP to exactly 0 for effects that knock a Pokémon out
// outright (end-of-turn Perish Song reaching zero). Damage that brings HP to
// 0 does not emit a separate Faint.
type Faint struct {
	Pos      state.Position
	previous int
}

func (i *Faint) Apply(s *state.State) {
	p := s.PokemonAt(i.Pos)
	i.previous = p.CurrentHP
	p.CurrentHP = 0
}
func (i *Faint) Revert(s *state.State) {
	p := s.PokemonAt(i.Pos)
	p.CurrentHP = i.previous
}
func (i *Faint) Describe() string { return fmt.Sprintf("Faint %s", i.Pos) }

// Switch moves the roster member at ToIndex into Pos, displacing whatever
// roster index (or empty slot, -1) was there.
type Switch struct {
	Pos         state.Position
	ToIndex     int
	previousIdx int
	turnSet     int
	cleared     map[state.VolatileKind]*state.Volatile
}

func (i *Switch) Apply(s *state.State) {
	side := s.Side(i.Pos.Side)
	i.previousIdx = side.Active[i.Pos.Slot]
	side.Active[i.Pos.Slot] = i.ToIndex
	p := side.Roster[i.ToIndex]
	i.turnSet = p.SwitchInTurn
	p.SwitchInTurn = s.Field.Turn
	i.cleared = clearOnSwitchIn(p)
}
func (i *Switch) Revert(s *state.State) {
	side := s.Side(i.Pos.Side)
	p := side.Roster[i.ToIndex]
	for k, v := range i.cleared {
		p.Volatiles[k] = v
	}
	p.SwitchInTurn = i.turnSet
	side.Active[i.Pos.Slot] = i.previousIdx
}
func (i *Switch) Describe() string {
	return fmt.Sprintf("Switch %s to roster#%d", i.Pos, i.ToIndex)
}

// clearOnSwitchIn drops the single-turn/battle volatiles that never survive
// a switch (spec §4.7 phase 3 "removes single-turn volatiles per rules").
// Stat stages, Leech Seed, and most other volatiles also reset on switch-out
// in every generation this engine targets; the composer emitting Switch is
// responsible for having already recorded those as separate instructions
// so they remain undoable — this helper only clears the destination
// Pokémon's leftover transient flags from its *previous* stint (flinch,
// protect streak, must-recharge) which are never meaningful across a switch.
// It returns the removed entries so Switch.Revert can restore them.
func clearOnSwitchIn(p *state.Pokemon) map[state.VolatileKind]*state.Volatile {
	cleared := make(map[state.VolatileKind]*state.Volatile)
	for _, k := range []state.VolatileKind{state.VolFlinch, state.VolMustRecharge, state.VolProtect} {
		if v, ok := p.Volatiles[k]; ok {
			cleared[k] = v
			delete(p.Volatiles, k)
		}
	}
	return cleared
}

// AbilityChange overwrites a Pokémon's current ability (Skill Swap,
// Worry Seed, Trace, etc.).
type AbilityChange struct {
	Pos      state.Position
	New      ids.Ability
	previous ids.Ability
}

func (i *AbilityChange) Apply(s *state.State) {
	p := s.PokemonAt(i.Pos)
	i.previous = p.Ability
	p.Ability = i.New
}
func (i *AbilityChange) Revert(s *state.State) {
	s.PokemonAt(i.Pos).Ability = i.previous
}
func (i *AbilityChange) Describe() string {
	return fmt.Sprintf("Set %s ability to %s", i.Pos, i.New)
}

// ItemChange overwrites a Pokémon's held item and/or consumed flag (Trick,
// Knock Off, berry consumption, Symbiosis).
type ItemChange struct {
	Pos              state.Position
	New              ids.Item
	NewConsumed      bool
	previous         ids.Item
	previousConsumed bool
}

func (i *ItemChange) Apply(s *state.State) {
	p := s.PokemonAt(i.Pos)
	i.previous, i.previousConsumed = p.Item, p.ItemConsumed
	p.Item, p.ItemConsumed = i.New, i.NewConsumed
}
func (i *ItemChange) Revert(s *state.State) {
	p := s.PokemonAt(i.Pos)
	p.Item, p.ItemConsumed = i.previous, i.previousConsumed
}
func (i *ItemChange) Describe() string { return fmt.Sprintf("Set %s item to %s", i.Pos, i.New) }

// FormChange overwrites the displayed/type-resolving form species (Mega
// Evolution, Zen Mode, etc.) along with any type/stat override the form
// carries.
type FormChange struct {
	Pos           state.Position
	NewForm       ids.Species
	NewTypes      [2]ids.Type
	NewComputed   state.Stats
	previousForm  ids.Species
	previousTypes [2]ids.Type
	previousStats state.Stats
}

func (i *FormChange) Apply(s *state.State) {
	p := s.PokemonAt(i.Pos)
	i.previousForm, i.previousTypes, i.previousStats = p.FormSpecies, p.Types, p.Computed
	p.FormSpecies, p.Types, p.Computed = i.NewForm, i.NewTypes, i.NewComputed
}
func (i *FormChange) Revert(s *state.State) {
	p := s.PokemonAt(i.Pos)
	p.FormSpecies, p.Types, p.Computed = i.previousForm, i.previousTypes, i.previousStats
}
func (i *FormChange) Describe() string { return fmt.Sprintf("Change %s form to %s", i.Pos, i.NewForm) }

// SetStatBoosts adds Delta to one stat stage as given, without clamping.
// Composers compute the already-clamped delta (effect's applyStatDelta)
// *before* constructing this instruction — when saturation means the real
// delta is 0, no instruction is emitted at all (spec §8 boundary behavior).
type SetStatBoosts struct {
	Pos      state.Position
	Stat     state.StatIndex
	Delta    int // the actual, already-clamped delta to apply/undo
}

func (i *SetStatBoosts) Apply(s *state.State) {
	s.PokemonAt(i.Pos).Stages[i.Stat] += i.Delta
}
func (i *SetStatBoosts) Revert(s *state.State) {
	s.PokemonAt(i.Pos).Stages[i.Stat] -= i.Delta
}
func (i *SetStatBoosts) Describe() string {
	return fmt.Sprintf("%s stage[%d] += %d", i.Pos, i.Stat, i.Delta)
}

// ClearVolatileRoster removes one volatile status from a roster member
// addressed by (side, roster index) rather than active Position, so it can
// reach a just-fainted Pokémon even though fainting leaves no legal active
// Position to key off once the roster sweep that found it runs.
type ClearVolatileRoster struct {
	Side  state.SideID
	Index int
	Kind  state.VolatileKind

	previouslyPresent bool
	previous          state.Volatile
}

func (i *ClearVolatileRoster) Apply(s *state.State) {
	p := s.Side(i.Side).Roster[i.Index]
	if existing, ok := p.Volatiles[i.Kind]; ok {
		i.previouslyPresent = true
		i.previous = *existing
	}
	delete(p.Volatiles, i.Kind)
}
func (i *ClearVolatileRoster) Revert(s *state.State) {
	if !i.previouslyPresent {
		return
	}
	p := s.Side(i.Side).Roster[i.Index]
	v := i.previous
	p.Volatiles[i.Kind] = &v
}
func (i *ClearVolatileRoster) Describe() string {
	return fmt.Sprintf("Clear volatile %d from %s roster#%d", i.Kind, i.Side, i.Index)
}

// SetVolatile adds or removes one volatile status.
type SetVolatile struct {
	Pos    state.Position
	Kind   state.VolatileKind
	Add    bool // true = add/overwrite New, false = remove
	New    state.Volatile

	previouslyPresent bool
	previous          state.Volatile
}

func (i *SetVolatile) Apply(s *state.State) {
	p := s.PokemonAt(i.Pos)
	if existing, ok := p.Volatiles[i.Kind]; ok {
		i.previouslyPresent = true
		i.previous = *existing
	}
	if i.Add {
		v := i.New
		p.Volatiles[i.Kind] = &v
	} else {
		delete(p.Volatiles, i.Kind)
	}
}
func (i *SetVolatile) Revert(s *state.State) {
	p := s.PokemonAt(i.Pos)
	if i.previouslyPresent {
		v := i.previous
		p.Volatiles[i.Kind] = &v
	} else {
		delete(p.Volatiles, i.Kind)
	}
}
func (i *SetVolatile) Describe() string {
	if i.Add {
		return fmt.Sprintf("Add volatile %d to %s", i.Kind, i.Pos)
	}
	return fmt.Sprintf("Remove volatile %d from %s", i.Kind, i.Pos)
}

// SetMajorStatus overwrites the major status slot (mutually exclusive, per
// spec §3).
type SetMajorStatus struct {
	Pos              state.Position
	New              state.MajorStatus
	NewCounter       int
	previous         state.MajorStatus
	previousCounter  int
}

func (i *SetMajorStatus) Apply(s *state.State) {
	p := s.PokemonAt(i.Pos)
	i.previous, i.previousCounter = p.Status, p.StatusCounter
	p.Status, p.StatusCounter = i.New, i.NewCounter
}
func (i *SetMajorStatus) Revert(s *state.State) {
	p := s.PokemonAt(i.Pos)
	p.Status, p.StatusCounter = i.previous, i.previousCounter
}
func (i *SetMajorStatus) Describe() string {
	return fmt.Sprintf("Set %s major status to %d", i.Pos, i.New)
}

// PPDecrement decrements a move slot's current PP by amount (1 normally, 2
// under Pressure per spec §4.7), clamped at 0.
type PPDecrement struct {
	Pos      state.Position
	SlotIdx  int
	Amount   int
	previous int
}

func (i *PPDecrement) Apply(s *state.State) {
	slot := &s.PokemonAt(i.Pos).Moves[i.SlotIdx]
	i.previous = slot.PP
	slot.PP -= i.Amount
	if slot.PP < 0 {
		slot.PP = 0
	}
}
func (i *PPDecrement) Revert(s *state.State) {
	s.PokemonAt(i.Pos).Moves[i.SlotIdx].PP = i.previous
}
func (i *PPDecrement) Describe() string {
	return fmt.Sprintf("Decrement %s move#%d PP by %d", i.Pos, i.SlotIdx, i.Amount)
}
