package state

import "pokebattle/ids"

// Stats holds the six core stats, mirroring the teacher's flat Attributes
// struct style (common/stats.go) rather than a map — these six fields are
// fixed and always present, so a struct beats a map for this part of the
// model.
type Stats struct {
	HP, Atk, Def, SpA, SpD, Spe int
}

// StatIndex enumerates the seven stageable values (the five non-HP stats
// plus accuracy/evasion), used to index StatStages.
type StatIndex int

const (
	StatIdxAtk StatIndex = iota
	StatIdxDef
	StatIdxSpA
	StatIdxSpD
	StatIdxSpe
	StatIdxAcc
	StatIdxEva
	numStatIndices
)

// StatIndexFromID maps a normalized ids.Stat to a StatIndex. ok is false for
// ids.StatHP, which is never stageable.
func StatIndexFromID(s ids.Stat) (StatIndex, bool) {
	switch s {
	case ids.StatAtk:
		return StatIdxAtk, true
	case ids.StatDef:
		return StatIdxDef, true
	case ids.StatSpA:
		return StatIdxSpA, true
	case ids.StatSpD:
		return StatIdxSpD, true
	case ids.StatSpe:
		return StatIdxSpe, true
	case ids.StatAcc:
		return StatIdxAcc, true
	case ids.StatEva:
		return StatIdxEva, true
	default:
		return 0, false
	}
}

// StatStages holds the seven stat stages, each clamped to [-6, +6] on
// write (spec.md §3 invariants).
type StatStages [numStatIndices]int

// clampStage returns v clamped to the legal stage range.
func clampStage(v int) int {
	if v > 6 {
		return 6
	}
	if v < -6 {
		return -6
	}
	return v
}

// Add applies delta to the stage at idx, clamping the result, and returns
// the actual change applied (may be less than delta in magnitude when the
// stage saturates — callers must not emit a "stat rose/fell" instruction
// when the actual delta is zero, per spec.md §8 boundary behaviors).
func (s *StatStages) Add(idx StatIndex, delta int) int {
	before := s[idx]
	after := clampStage(before + delta)
	s[idx] = after
	return after - before
}

// StageMultiplier returns the multiplier for a given stage value, using the
// standard table (numerator/denominator grow by 1 per stage away from 0).
// Accuracy/evasion stages do not use this table; calc's own stageMultiplier
// applies the (3+n)/3 table to them.
func StageMultiplier(stage int) (num, den int) {
	if stage >= 0 {
		return 2 + stage, 2
	}
	return 2, 2 - stage
}
