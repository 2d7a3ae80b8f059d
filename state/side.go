package state

// SideCondition enumerates the closed set of side-wide conditions (spec §3).
type SideCondition int

const (
	CondReflect SideCondition = iota
	CondLightScreen
	CondAuroraVeil
	CondTailwind
	CondSpikes      // layered, Turns unused; Layers tracks 1-3
	CondToxicSpikes // layered, Layers tracks 1-2
	CondStealthRock
	CondStickyWeb
	CondSafeguard
	CondMist
)

// ConditionState is the remaining-duration/layer-count payload for one
// active side condition.
type ConditionState struct {
	Turns  int // remaining turns; 0 for conditions with no expiry (hazards)
	Layers int // Spikes/Toxic Spikes layer count; 1 for binary conditions
}

// PendingWish is a Wish heal queued to resolve at end of turn N turns from
// now, addressed by roster index rather than Position since the target may
// have switched out by the time it resolves.
type PendingWish struct {
	RosterIndex  int
	TurnsLeft    int
	HealAmount   int
}

// PendingFutureSight is a delayed attack queued against a roster slot.
type PendingFutureSight struct {
	TargetRosterIndex int
	TurnsLeft         int
	Power             int
	UserComputed      Stats
	UserLevel         int
}

// Side is one team: up to Format.TeamSize roster members, of which
// Format.ActivePerSide are active at any time.
type Side struct {
	ID     SideID
	Roster []*Pokemon

	// Active[slot] is the roster index of the Pokémon occupying that slot,
	// or -1 if the slot is empty (only legal mid-turn in formats that permit
	// it, e.g. after a faint awaiting a replacement).
	Active []int

	Conditions map[SideCondition]*ConditionState

	// ChoiceLock maps an active slot to the move it is locked into by a
	// Choice item; absent entries mean unlocked.
	ChoiceLock map[int]int // value is the move-slot index (0-3) locked in

	Wishes       []*PendingWish
	FutureSights []*PendingFutureSight
}

// NewSide constructs an empty Side with activePerSide slots, all unoccupied.
func NewSide(id SideID, roster []*Pokemon, activePerSide int) *Side {
	active := make([]int, activePerSide)
	for i := range active {
		active[i] = -1
	}
	return &Side{
		ID:         id,
		Roster:     roster,
		Active:     active,
		Conditions: make(map[SideCondition]*ConditionState),
		ChoiceLock: make(map[int]int),
	}
}

// PokemonAt returns the active Pokémon in slot, or nil if the slot is empty.
func (s *Side) PokemonAt(slot int) *Pokemon {
	idx := s.Active[slot]
	if idx < 0 || idx >= len(s.Roster) {
		return nil
	}
	return s.Roster[idx]
}

// RosterIndexAt returns the roster index occupying slot, or -1.
func (s *Side) RosterIndexAt(slot int) int { return s.Active[slot] }

// SlotOfRosterIndex returns the active slot currently holding rosterIndex,
// or -1 if that roster member isn't active. Used to translate the
// (side, roster-index) handles used for cross-turn back references
// (spec §9) back into a Position.
func (s *Side) SlotOfRosterIndex(rosterIndex int) int {
	for slot, idx := range s.Active {
		if idx == rosterIndex {
			return slot
		}
	}
	return -1
}

// AnyNonFaintedBenched reports whether the side has a non-active,
// non-fainted roster member available to switch in.
func (s *Side) AnyNonFaintedBenched() bool {
	onField := make(map[int]bool, len(s.Active))
	for _, idx := range s.Active {
		if idx >= 0 {
			onField[idx] = true
		}
	}
	for i, p := range s.Roster {
		if !onField[i] && !p.Fainted() {
			return true
		}
	}
	return false
}
