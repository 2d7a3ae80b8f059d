package state

import "pokebattle/ids"

// VolatileKind enumerates the closed set of volatile statuses a Pokémon can
// carry simultaneously (spec.md §3). Unlike major status, several of these
// may coexist.
type VolatileKind int

const (
	VolConfusion VolatileKind = iota
	VolSubstitute
	VolTaunt
	VolEncore
	VolDisable
	VolLeechSeed
	VolYawn
	VolPerishSong
	VolLockedMove
	VolMustRecharge
	VolFlinch
	VolProtect // counter tracks consecutive-use stacking for the success-chance falloff
	VolCharging // two-turn move mid-charge (Solar Beam, Sky Attack, Razor Wind)
)

// Volatile is the payload for one active volatile status. Not every field
// applies to every Kind; see the composer that installs it for which
// fields are meaningful.
type Volatile struct {
	Kind     VolatileKind
	Duration int     // turns remaining, where applicable (Taunt, Encore, Disable, Yawn, PerishSong, LockedMove)
	Counter  int     // Substitute HP, Protect use-streak, etc.
	Move     ids.Move // the move an Encore/Disable/LockedMove volatile refers to
}

// Volatiles is the set of volatile statuses currently active on a Pokémon,
// keyed by kind so at most one instance of each kind exists — generalized
// from trackers.StatusEffectTracker's map[string]gear.StatusEffects in the
// teacher, with string keys replaced by the closed VolatileKind enum.
type Volatiles map[VolatileKind]*Volatile

// Has reports whether kind is currently active.
func (v Volatiles) Has(kind VolatileKind) bool {
	_, ok := v[kind]
	return ok
}

// Get returns the Volatile for kind, or nil if not present.
func (v Volatiles) Get(kind VolatileKind) *Volatile {
	return v[kind]
}

// MajorStatus is the closed set of mutually exclusive major statuses.
type MajorStatus int

const (
	StatusNone MajorStatus = iota
	StatusBurn
	StatusFreeze
	StatusParalysis
	StatusPoison
	StatusToxic // StatusCounter tracks the toxic n/16 stage, starting at 1
	StatusSleep // StatusCounter tracks turns remaining
)
