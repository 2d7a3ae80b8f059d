package effect

import (
	"pokebattle/instruction"
	"pokebattle/state"
)

// SelfStatChange builds a composer that changes the user's own stat stages
// with a given success chance (spec §4.6 `self_stat_change`, e.g. Swords
// Dance, Nasty Plot, Close Combat's self-drop).
func SelfStatChange(changes map[state.StatIndex]int, chance float64) Composer {
	return statChangeComposer(changes, chance, true)
}

// TargetStatChange builds a composer that changes each resolved target's
// stat stages with a given success chance (spec §4.6 `target_stat_change`,
// e.g. Growl, String Shot, Intimidate-adjacent move effects).
func TargetStatChange(changes map[state.StatIndex]int, chance float64) Composer {
	return statChangeComposer(changes, chance, false)
}

func statChangeComposer(changes map[state.StatIndex]int, chance float64, self bool) Composer {
	return func(ctx Context) []instruction.InstructionSet {
		pp := ppCost(ctx, 1)
		base := []instruction.InstructionSet{{Probability: 1, Instructions: []instruction.Instruction{pp}}}

		positions := ctx.Targets
		if self {
			positions = []state.Position{ctx.User}
		}
		for _, pos := range positions {
			var applyIns []instruction.Instruction
			for idx, delta := range changes {
				applied := applyStatDelta(ctx, pos, idx, delta)
				if applied != 0 {
					applyIns = append(applyIns, &instruction.SetStatBoosts{Pos: pos, Stat: idx, Delta: applied})
				}
			}
			hit := instruction.InstructionSet{Probability: chance, Instructions: applyIns}
			miss := instruction.InstructionSet{Probability: 1 - chance}
			if chance >= 1 {
				base = instruction.CrossProduct(base, []instruction.InstructionSet{{Probability: 1, Instructions: applyIns}})
			} else {
				base = instruction.CrossProduct(base, []instruction.InstructionSet{hit, miss})
			}
		}
		return base
	}
}

// SingleStatus builds a composer that inflicts one major status on the
// target with a given chance, after checking the target doesn't already
// carry a status (spec §4.6 `single_status`, e.g. Thunder Wave, Toxic,
// Spore).
func SingleStatus(status state.MajorStatus, chance float64) Composer {
	return func(ctx Context) []instruction.InstructionSet {
		pp := ppCost(ctx, 1)
		base := []instruction.InstructionSet{{Probability: 1, Instructions: []instruction.Instruction{pp}}}
		for _, pos := range ctx.Targets {
			tgt := ctx.targetMon(pos)
			if tgt.Status != state.StatusNone {
				continue // already statused; no branch needed
			}
			counter := 0
			if status == state.StatusToxic {
				counter = 1
			}
			applyIns := []instruction.Instruction{&instruction.SetMajorStatus{Pos: pos, New: status, NewCounter: counter}}
			if chance >= 1 {
				base = instruction.CrossProduct(base, []instruction.InstructionSet{{Probability: 1, Instructions: applyIns}})
			} else {
				base = instruction.CrossProduct(base, []instruction.InstructionSet{
					{Probability: chance, Instructions: applyIns},
					{Probability: 1 - chance},
				})
			}
		}
		return base
	}
}

// StatusPlusStat builds a composer combining a status inflict with a stat
// change on the same or another position, both gated by one shared success
// roll (spec §4.6 `status_plus_stat`, e.g. Nova-style combo moves where a
// single secondary chance drives both effects together).
func StatusPlusStat(status state.MajorStatus, changes map[state.StatIndex]int, chance float64) Composer {
	return func(ctx Context) []instruction.InstructionSet {
		pp := ppCost(ctx, 1)
		base := []instruction.InstructionSet{{Probability: 1, Instructions: []instruction.Instruction{pp}}}
		for _, pos := range ctx.Targets {
			var applyIns []instruction.Instruction
			tgt := ctx.targetMon(pos)
			if tgt.Status == state.StatusNone {
				applyIns = append(applyIns, &instruction.SetMajorStatus{Pos: pos, New: status})
			}
			for idx, delta := range changes {
				applied := applyStatDelta(ctx, pos, idx, delta)
				if applied != 0 {
					applyIns = append(applyIns, &instruction.SetStatBoosts{Pos: pos, Stat: idx, Delta: applied})
				}
			}
			if chance >= 1 {
				base = instruction.CrossProduct(base, []instruction.InstructionSet{{Probability: 1, Instructions: applyIns}})
			} else {
				base = instruction.CrossProduct(base, []instruction.InstructionSet{
					{Probability: chance, Instructions: applyIns},
					{Probability: 1 - chance},
				})
			}
		}
		return base
	}
}

// Protection builds the composer for self-protecting moves (spec §4.6
// `protection`, e.g. Protect, Detect, Spiky Shield). Success chance falls
// off with consecutive use per generation rules (Volatile.Counter tracks
// the streak); this engine divides the success chance by 3 per consecutive
// use with a floor of 1/729, matching modern generations.
func Protection() Composer {
	return func(ctx Context) []instruction.InstructionSet {
		pp := ppCost(ctx, 1)
		user := ctx.userMon()
		streak := 0
		if v := user.Volatiles.Get(state.VolProtect); v != nil {
			streak = v.Counter
		}
		chance := 1.0
		for i := 0; i < streak; i++ {
			chance /= 3
		}
		if chance < 1.0/729 {
			chance = 1.0 / 729
		}
		succeed := []instruction.Instruction{
			pp,
			&instruction.SetVolatile{Pos: ctx.User, Kind: state.VolProtect, Add: true, New: state.Volatile{Kind: state.VolProtect, Counter: streak + 1}},
		}
		fail := []instruction.Instruction{
			pp,
			&instruction.SetVolatile{Pos: ctx.User, Kind: state.VolProtect, Add: false},
		}
		if chance >= 1 {
			return certain(succeed...)
		}
		return []instruction.InstructionSet{
			{Probability: chance, Instructions: succeed},
			{Probability: 1 - chance, Instructions: fail},
		}
	}
}

// ForceSwitch builds the composer for moves that eject the target (spec
// §4.6 `force_switch`, e.g. Whirlwind, Roar, Dragon Tail's post-damage
// variant is wired as Recoil-style wrapping at the registry). This engine
// has no external replacement-choice collaborator (no AI, no player
// prompt mid-composer), so the replacement is the first non-fainted
// benched Pokémon in roster order — a no-op when the target side has no
// legal replacement.
func ForceSwitch() Composer {
	return func(ctx Context) []instruction.InstructionSet {
		pp := ppCost(ctx, 1)
		ins := []instruction.Instruction{pp}
		for _, pos := range ctx.Targets {
			side := ctx.State.Side(pos.Side)
			replacement := firstAvailableBenchIndex(side, pos.Slot)
			if replacement < 0 {
				continue
			}
			ins = append(ins, &instruction.Switch{Pos: pos, ToIndex: replacement})
		}
		return certain(ins...)
	}
}

// firstAvailableBenchIndex returns the lowest roster index not already
// active anywhere on side and not fainted, or -1 if side has no legal
// replacement (mirrors state.Side.AnyNonFaintedBenched's own "on field"
// bookkeeping rather than assuming a single active slot).
func firstAvailableBenchIndex(side *state.Side, _ int) int {
	onField := make(map[int]bool, len(side.Active))
	for _, idx := range side.Active {
		if idx >= 0 {
			onField[idx] = true
		}
	}
	for i, p := range side.Roster {
		if !onField[i] && !p.Fainted() {
			return i
		}
	}
	return -1
}
