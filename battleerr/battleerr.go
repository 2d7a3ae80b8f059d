// Package battleerr collects the sentinel errors spec.md §7 names, so
// callers across the module can test for one failure category with a
// single errors.Is check regardless of which package detected it.
//
// Grounded on the teacher's error-handling register (config/config.go and
// its callers return/wrap plain errors rather than a typed hierarchy);
// this package generalizes that flat, sentinel-plus-%w style to the five
// failure categories spec.md §7 distinguishes, rather than introducing a
// class hierarchy the rest of the module never uses.
package battleerr

import "errors"

var (
	// ErrInvalidChoice reports a declared Choice that fails legality
	// checks: empty/disabled/PP-exhausted move slot, choice-locked to a
	// different move, or a switch to a fainted/already-active roster
	// member.
	ErrInvalidChoice = errors.New("battle: invalid choice")

	// ErrInvalidTarget reports a target category/selection mismatch: a
	// single-choice category given zero or more than one chosen position,
	// or a chosen position outside the category's legal candidates.
	ErrInvalidTarget = errors.New("battle: invalid target")

	// ErrDataNotFound reports a lookup against the external data
	// repository (species/move/item/ability/type chart) that found no
	// entry for the requested ID.
	ErrDataNotFound = errors.New("battle: data not found")

	// ErrInvariantViolation reports an internal consistency check failing
	// against the data model spec.md §3 constrains (e.g. HP outside
	// [0, MaxHP], a duplicate active roster index) — always a caller bug,
	// never a legal in-battle outcome.
	ErrInvariantViolation = errors.New("battle: invariant violation")

	// ErrFormatViolation reports a BattleBuilder construction that
	// conflicts with the declared Format's clauses or bans (banned
	// species/move/item/ability, team size over the cap, a clause like
	// Species Clause tripped by a duplicate).
	ErrFormatViolation = errors.New("battle: format violation")
)
