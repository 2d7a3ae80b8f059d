package effect

import (
	"math"

	"pokebattle/calc"
	"pokebattle/instruction"
	"pokebattle/state"
)

// hasSTAB reports whether the move's type matches one of the user's
// current (tera-aware) types.
func hasSTAB(ctx Context) bool {
	user := ctx.userMon()
	for _, t := range user.EffectiveType() {
		if !t.IsZero() && t == ctx.Move.Type {
			return true
		}
	}
	return false
}

// baseStatFor reads one of the four combat-relevant stats off a Stats
// block by index (Spe/Acc/Eva never feed offense/defense resolution).
func baseStatFor(s state.Stats, idx state.StatIndex) int {
	switch idx {
	case state.StatIdxAtk:
		return s.Atk
	case state.StatIdxDef:
		return s.Def
	case state.StatIdxSpA:
		return s.SpA
	case state.StatIdxSpD:
		return s.SpD
	default:
		return 0
	}
}

// offenseDefense resolves the attack/defense stat pair for the move,
// honoring stat stages (ignored for the side crit favors, per spec §4.5).
// ctx.Move.StatOverride picks which Pokémon and which stat stand in for
// offense/defense for the handful of moves that don't use the category's
// usual Atk/Def or SpA/SpD pairing (spec §4.6 `stat_substitution`):
//
//   - BodyPressOffenseIsDefense: the user's own Defense stands in for
//     offense (Body Press).
//   - FoulPlayUsesTargetOffense: the target's own attacking stat (by
//     category) stands in for offense instead of the user's (Foul Play).
//   - DefenseIsTargetSpecialDefense: the target's Defense stands in for
//     defense regardless of category (Psyshock/Psystrike).
func offenseDefense(ctx Context, targetPos state.Position, crit bool) (offense, defense int) {
	user := ctx.userMon()
	tgt := ctx.targetMon(targetPos)

	offMon, defMon := user, tgt
	var offIdx, defIdx state.StatIndex
	if ctx.Move.Category == Physical {
		offIdx, defIdx = state.StatIdxAtk, state.StatIdxDef
	} else {
		offIdx, defIdx = state.StatIdxSpA, state.StatIdxSpD
	}

	switch ctx.Move.StatOverride {
	case calc.BodyPressOffenseIsDefense:
		offIdx = state.StatIdxDef
	case calc.FoulPlayUsesTargetOffense:
		offMon = tgt
	case calc.DefenseIsTargetSpecialDefense:
		defIdx = state.StatIdxDef
	}

	offStage := offMon.Stages[offIdx]
	defStage := defMon.Stages[defIdx]
	if crit {
		if offStage < 0 {
			offStage = 0
		}
		if defStage > 0 {
			defStage = 0
		}
	}
	offNum, offDen := state.StageMultiplier(offStage)
	defNum, defDen := state.StageMultiplier(defStage)
	offense = baseStatFor(offMon.Computed, offIdx) * offNum / offDen
	defense = baseStatFor(defMon.Computed, defIdx) * defNum / defDen
	if offense < 1 {
		offense = 1
	}
	if defense < 1 {
		defense = 1
	}
	return offense, defense
}

// weatherModifier resolves the fire/water weather multiplier for the
// move's type (spec §4.5).
func weatherModifier(ctx Context) calc.WeatherModifier {
	w := ctx.State.Field.Weather
	moveType := ctx.Move.Type.String()
	switch w {
	case state.WeatherSun:
		if moveType == "fire" {
			return calc.WeatherBoost
		}
		if moveType == "water" {
			return calc.WeatherWeaken
		}
	case state.WeatherRain:
		if moveType == "water" {
			return calc.WeatherBoost
		}
		if moveType == "fire" {
			return calc.WeatherWeaken
		}
	case state.WeatherHarshSun:
		if moveType == "water" {
			return calc.WeatherNullify
		}
		if moveType == "fire" {
			return calc.WeatherBoost
		}
	case state.WeatherHeavyRain:
		if moveType == "fire" {
			return calc.WeatherNullify
		}
		if moveType == "water" {
			return calc.WeatherBoost
		}
	}
	return calc.WeatherNeutral
}

// rollDamage samples one of the 16 standard damage rolls using the
// context's deterministic RNG and returns the resulting damage value.
func rollDamage(ctx Context, targetPos state.Position, power int, crit bool) int {
	user := ctx.userMon()
	tgt := ctx.targetMon(targetPos)
	offense, defense := offenseDefense(ctx, targetPos, crit)

	typeEff := ctx.Chart.EffectivenessAgainst(ctx.Move.Type, tgt.EffectiveType())
	rolls := calc.Rolls()
	roll := rolls[ctx.Rand.Intn(len(rolls))]

	in := calc.DamageInput{
		Level:         user.Level,
		Power:         power,
		Offense:       offense,
		Defense:       defense,
		SpreadTargets: len(ctx.Targets),
		ApplySpread:   applySpreadReduction(ctx),
		Weather:       weatherModifier(ctx),
		Crit:          crit,
		STAB:          hasSTAB(ctx),
		TypeEffect:    typeEff,
		Burned:        user.Status == state.StatusBurn && ctx.Move.Category == Physical,
		Other:         1,
	}
	return calc.Damage(ctx.Mechanics, in, roll)
}

// applySpreadReduction reports whether the format applies the 0.75x spread
// penalty (multi-active formats only) and the move is actually hitting more
// than one target this use.
func applySpreadReduction(ctx Context) bool {
	return ctx.State.Format.ActivePerSide > 1 && len(ctx.Targets) > 1
}

// ppCost decrements PP for the move slot the user just used; composers call
// this once per use (spec §4.7: "exactly once per use").
func ppCost(ctx Context, amount int) instruction.Instruction {
	user := ctx.userMon()
	for idx, slot := range user.Moves {
		if slot.Move == ctx.Move.ID {
			return &instruction.PPDecrement{Pos: ctx.User, SlotIdx: idx, Amount: amount}
		}
	}
	return &instruction.PPDecrement{Pos: ctx.User, SlotIdx: 0, Amount: amount}
}

// applyDamageToTarget builds the Damage instruction for one target,
// routing through Substitute per spec §4.6 when present, and returns the
// instructions plus the actual HP-pool damage applied (for recoil/drain
// fractions, which key off damage dealt to the Pokémon, not the sub).
func applyDamageToTarget(ctx Context, pos state.Position, amount int) ([]instruction.Instruction, int) {
	tgt := ctx.targetMon(pos)
	if sub := tgt.Volatiles.Get(state.VolSubstitute); sub != nil && !ctx.Move.Sound {
		absorbed := amount
		if absorbed > sub.Counter {
			absorbed = sub.Counter
		}
		remaining := sub.Counter - absorbed
		ins := []instruction.Instruction{
			&instruction.SetVolatile{
				Pos: pos, Kind: state.VolSubstitute, Add: remaining > 0,
				New: state.Volatile{Kind: state.VolSubstitute, Counter: remaining},
			},
		}
		return ins, 0 // no damage reaches the Pokémon's own HP pool
	}
	ins := []instruction.Instruction{&instruction.Damage{Pos: pos, Amount: amount}}
	dealt := amount
	if tgt.CurrentHP < amount {
		dealt = tgt.CurrentHP
	}
	return ins, dealt
}

// hitBranches enumerates the accuracy (hit/miss) outcome split for a move
// use against one target, given a precomputed hit chance.
func hitBranches(hitChance float64, onHit, onMiss []instruction.Instruction) []instruction.InstructionSet {
	if hitChance >= 1 {
		return []instruction.InstructionSet{{Probability: 1, Instructions: onHit}}
	}
	if hitChance <= 0 {
		return []instruction.InstructionSet{{Probability: 1, Instructions: onMiss}}
	}
	return []instruction.InstructionSet{
		{Probability: hitChance, Instructions: onHit},
		{Probability: 1 - hitChance, Instructions: onMiss},
	}
}

// critBranches enumerates the crit/non-crit split for a hit.
func critBranches(ctx Context, pos state.Position, power int, never bool, force bool) []instruction.InstructionSet {
	chance := ctx.Mechanics.CritChance(ctx.Move.CritStage, force, never)
	nonCritDmg := rollDamage(ctx, pos, power, false)
	nonCritIns, _ := applyDamageToTarget(ctx, pos, nonCritDmg)
	if chance <= 0 {
		return []instruction.InstructionSet{{Probability: 1, Instructions: nonCritIns}}
	}
	critDmg := rollDamage(ctx, pos, power, true)
	critIns, _ := applyDamageToTarget(ctx, pos, critDmg)
	if chance >= 1 {
		return []instruction.InstructionSet{{Probability: 1, Instructions: critIns}}
	}
	return []instruction.InstructionSet{
		{Probability: 1 - chance, Instructions: nonCritIns},
		{Probability: chance, Instructions: critIns},
	}
}

// hitChanceFor computes the effective accuracy for targeting pos, treating
// Move.Accuracy == 0 as an unconditional hit.
func hitChanceFor(ctx Context, pos state.Position) float64 {
	if ctx.Move.Accuracy <= 0 {
		return 1
	}
	user := ctx.userMon()
	tgt := ctx.targetMon(pos)
	return calc.EffectiveAccuracy(calc.AccuracyInput{
		MoveAccuracy:   ctx.Move.Accuracy,
		UserAccStage:   user.Stages[state.StatIdxAcc],
		TargetEvaStage: tgt.Stages[state.StatIdxEva],
	})
}

// SimpleDamage is the base damage composer (spec §4.6's `simple_damage`):
// one hit, standard accuracy/crit branching, across every resolved target.
func SimpleDamage() Composer {
	return func(ctx Context) []instruction.InstructionSet {
		return damageComposer(ctx, ctx.Move.Power, false, false)
	}
}

// AlwaysCrit wraps a damage composer so every hit is guaranteed to crit
// (spec §4.6 `always_crit`, e.g. Frost Breath, Storm Throw).
func AlwaysCrit() Composer {
	return func(ctx Context) []instruction.InstructionSet {
		return damageComposer(ctx, ctx.Move.Power, true, false)
	}
}

// damageComposer is the shared engine every *_damage composer in this file
// funnels through: PP cost once, then per-target hit/crit branching merged
// via instruction.CrossProduct, then the move's Secondary effect layered on
// top of every branch that dealt damage.
func damageComposer(ctx Context, power int, forceCrit, neverCrit bool) []instruction.InstructionSet {
	pp := ppCost(ctx, 1)
	sets := []instruction.InstructionSet{{Probability: 1, Instructions: []instruction.Instruction{pp}}}

	for _, pos := range ctx.Targets {
		hitChance := hitChanceFor(ctx, pos)
		critSets := critBranches(ctx, pos, power, neverCrit, forceCrit)
		var perTarget []instruction.InstructionSet
		for _, cs := range critSets {
			perTarget = append(perTarget, instruction.InstructionSet{
				Probability:  cs.Probability,
				Instructions: cs.Instructions,
			})
		}
		hitMissSets := hitBranchesFromCrit(hitChance, perTarget)
		sets = instruction.CrossProduct(sets, hitMissSets)
	}

	if ctx.Move.Secondary != nil {
		sets = applySecondary(ctx, sets)
	}
	return sets
}

// hitBranchesFromCrit expands a hit-chance split against the crit/non-crit
// branches already computed for the hit case (miss contributes no damage
// instructions).
func hitBranchesFromCrit(hitChance float64, onHit []instruction.InstructionSet) []instruction.InstructionSet {
	if hitChance >= 1 {
		return onHit
	}
	out := make([]instruction.InstructionSet, 0, len(onHit)+1)
	for _, h := range onHit {
		out = append(out, instruction.InstructionSet{Probability: h.Probability * hitChance, Instructions: h.Instructions})
	}
	if hitChance < 1 {
		out = append(out, instruction.InstructionSet{Probability: 1 - hitChance})
	}
	return out
}

// applySecondary layers a move's chance-based secondary effect onto every
// branch that dealt damage (spec §4.6 "secondary-effect probability
// branching").
func applySecondary(ctx Context, sets []instruction.InstructionSet) []instruction.InstructionSet {
	sec := ctx.Move.Secondary
	if sec == nil || sec.Chance <= 0 {
		return sets
	}
	pos := ctx.Targets[0]
	if sec.AppliesToUser {
		pos = ctx.User
	}
	var secIns []instruction.Instruction
	if sec.Status != state.StatusNone {
		secIns = append(secIns, &instruction.SetMajorStatus{Pos: pos, New: sec.Status})
	}
	if sec.HasVolatile {
		secIns = append(secIns, &instruction.SetVolatile{Pos: pos, Kind: sec.Volatile, Add: true, New: state.Volatile{Kind: sec.Volatile}})
	}
	for idx, delta := range sec.StatChanges {
		applied := applyStatDelta(ctx, pos, idx, delta)
		if applied != 0 {
			secIns = append(secIns, &instruction.SetStatBoosts{Pos: pos, Stat: idx, Delta: applied})
		}
	}
	triggerSet := instruction.InstructionSet{Probability: sec.Chance, Instructions: secIns}
	noTriggerSet := instruction.InstructionSet{Probability: 1 - sec.Chance}
	var out []instruction.InstructionSet
	for _, set := range sets {
		if totalDamageDealt(set.Instructions) <= 0 {
			out = append(out, set)
			continue
		}
		out = append(out, instruction.CrossProduct([]instruction.InstructionSet{set}, []instruction.InstructionSet{triggerSet, noTriggerSet})...)
	}
	return out
}

// applyStatDelta computes the clamped delta a stat-stage change would
// actually apply, without mutating state (used to decide whether an
// instruction should be emitted at all, per spec §8's boundary behavior).
func applyStatDelta(ctx Context, pos state.Position, idx state.StatIndex, delta int) int {
	p := ctx.targetMon(pos)
	before := p.Stages[idx]
	after := before + delta
	if after > 6 {
		after = 6
	}
	if after < -6 {
		after = -6
	}
	return after - before
}

// VariablePower builds a damage composer whose power is computed per-use by
// powerFn (spec §4.6 `variable_power`, e.g. Gyro Ball, Electro Ball, Heavy
// Slam, Grass Knot).
func VariablePower(powerFn func(ctx Context) int) Composer {
	return func(ctx Context) []instruction.InstructionSet {
		return damageComposer(ctx, powerFn(ctx), false, false)
	}
}

// ConditionDependentPower builds a composer whose power switches between
// two fixed values based on a field/state predicate (spec §4.6
// `condition_dependent_power`, e.g. Facade while statused, Brine below half
// HP, Weather Ball's type+power pairing handled by the registered variant
// per weather).
func ConditionDependentPower(cond func(ctx Context) bool, ifTrue, ifFalse int) Composer {
	return VariablePower(func(ctx Context) int {
		if cond(ctx) {
			return ifTrue
		}
		return ifFalse
	})
}

// PriorityConditionalPower builds a composer whose power depends on move
// order within the turn (spec §4.6 `priority_conditional_power`, e.g.
// Payback doubles power if the user moves after its target this turn). The
// predicate receives the context; the turn pipeline is responsible for
// recording "target already acted this turn" before composers run.
func PriorityConditionalPower(movedAfterTarget func(ctx Context) bool, boosted, normal int) Composer {
	return ConditionDependentPower(movedAfterTarget, boosted, normal)
}

// Recoil wraps a damage composer so the user takes a fraction of the
// damage dealt as recoil after every damaging branch (spec §4.6 `recoil`).
// Recoil never triggers on a miss and is computed per-branch from that
// branch's own damage.
func Recoil(base Composer, fraction float64) Composer {
	return func(ctx Context) []instruction.InstructionSet {
		sets := base(ctx)
		for i := range sets {
			dealt := totalDamageDealt(sets[i].Instructions)
			if dealt <= 0 {
				continue
			}
			recoil := int(math.Ceil(float64(dealt) * fraction))
			if recoil < 1 {
				recoil = 1
			}
			sets[i].Instructions = append(sets[i].Instructions, &instruction.Damage{Pos: ctx.User, Amount: recoil})
		}
		return sets
	}
}

// Drain wraps a damage composer so the user heals a fraction of the damage
// dealt after every damaging branch (spec §4.6 `drain`, e.g. Giga Drain).
func Drain(base Composer, fraction float64) Composer {
	return func(ctx Context) []instruction.InstructionSet {
		sets := base(ctx)
		for i := range sets {
			dealt := totalDamageDealt(sets[i].Instructions)
			if dealt <= 0 {
				continue
			}
			heal := int(math.Floor(float64(dealt) * fraction))
			if heal < 1 {
				heal = 1
			}
			sets[i].Instructions = append(sets[i].Instructions, &instruction.Heal{Pos: ctx.User, Amount: heal})
		}
		return sets
	}
}

// totalDamageDealt sums every Damage instruction's Amount in a branch,
// used by Recoil/Drain to key off actual damage dealt this branch.
func totalDamageDealt(ins []instruction.Instruction) int {
	var total int
	for _, i := range ins {
		if d, ok := i.(*instruction.Damage); ok {
			total += d.Amount
		}
	}
	return total
}

// StatSubstitution wraps a damage composer so the offense/defense stat pair
// used is the move-specific override (Body Press, Foul Play, Psyshock)
// rather than the category's usual Atk/Def or SpA/SpD pairing (spec §4.6
// `stat_substitution`). ctx is a local copy (Context is passed by value),
// so setting StatOverride here never leaks into the caller's own Context;
// offenseDefense (effect/damage.go) reads it to pick the swapped stat.
func StatSubstitution(override calc.StatOverride) Composer {
	return func(ctx Context) []instruction.InstructionSet {
		ctx.Move.StatOverride = override
		return damageComposer(ctx, ctx.Move.Power, false, false)
	}
}

// TwoTurnCharge wraps a damage composer so the first use sets a charging
// volatile and deals no damage; the second use (detected by the charging
// volatile already being present) consumes it and resolves normally (spec
// §4.6 `two_turn_charge`, e.g. Solar Beam, Dig, Fly).
func TwoTurnCharge(chargeKind state.VolatileKind, base Composer) Composer {
	return func(ctx Context) []instruction.InstructionSet {
		user := ctx.userMon()
		if user.Volatiles.Has(chargeKind) {
			release := &instruction.SetVolatile{Pos: ctx.User, Kind: chargeKind, Add: false}
			sets := base(ctx)
			for i := range sets {
				sets[i].Instructions = append([]instruction.Instruction{release}, sets[i].Instructions...)
			}
			return sets
		}
		charge := &instruction.SetVolatile{
			Pos: ctx.User, Kind: chargeKind, Add: true,
			New: state.Volatile{Kind: chargeKind, Duration: 1},
		}
		return certain(charge)
	}
}

// MultiHit builds a composer that resolves between minHits and maxHits
// successive hits against the resolved targets, each hit computed against
// the state as it stands after the previous hit (spec §4.6's "clones the
// state conceptually between hits" — implemented here by applying each
// hit's instructions to the live state before the next hit is computed and
// reverting them all before the branch is returned, stopping early once the
// user faints, with one branch per possible hit count). distribution must sum to 1 and have
// maxHits-minHits+1 entries, index 0 corresponding to minHits.
func MultiHit(minHits, maxHits int, distribution []float64) Composer {
	return func(ctx Context) []instruction.InstructionSet {
		pp := ppCost(ctx, 1)
		var branches []instruction.InstructionSet
		for count := minHits; count <= maxHits; count++ {
			prob := 1.0 / float64(maxHits-minHits+1)
			if idx := count - minHits; idx < len(distribution) {
				prob = distribution[idx]
			}
			ins := []instruction.Instruction{pp}
			var applied []instruction.Instruction
			userFainted := false
			for hit := 0; hit < count && !userFainted; hit++ {
				for _, pos := range ctx.Targets {
					dmg := rollDamage(ctx, pos, ctx.Move.Power, false)
					hitIns, _ := applyDamageToTarget(ctx, pos, dmg)
					if ctx.Move.Contact {
						hitIns = append(hitIns, contactEffects(ctx, pos)...)
					}
					instruction.ApplyAll(ctx.State, hitIns)
					applied = append(applied, hitIns...)
					ins = append(ins, hitIns...)
				}
				if ctx.userMon().Fainted() {
					userFainted = true
				}
			}
			instruction.RevertAll(ctx.State, applied)
			branches = append(branches, instruction.InstructionSet{Probability: prob, Instructions: ins})
		}
		return branches
	}
}

// contactEffects returns the instructions a contact-triggered defensive
// item/ability produces against the user (spec §4.6 "Contact effects…
// Rocky Helmet, Static, Flame Body, Rough Skin"). This engine wires Rocky
// Helmet's fixed 1/8-max-HP recoil; ability-triggered variants are left for
// the registry to attach per concrete ability data, since calc/effect have
// no access to the (out-of-scope) data repository's ability records.
func contactEffects(ctx Context, targetPos state.Position) []instruction.Instruction {
	tgt := ctx.targetMon(targetPos)
	if tgt.Item.String() != "rockyhelmet" || tgt.ItemConsumed {
		return nil
	}
	dmg := ctx.userMon().MaxHP / 8
	if dmg < 1 {
		dmg = 1
	}
	return []instruction.Instruction{&instruction.Damage{Pos: ctx.User, Amount: dmg}}
}
