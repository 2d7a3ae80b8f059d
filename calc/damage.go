package calc

import (
	"math"

	"pokebattle/ids"
)

// DamageInput bundles every value the base formula (spec §4.5) needs.
// Composers assemble this from state + move data; calc has no knowledge of
// the data repository or the Pokémon/Side types, keeping it a pure numeric
// core testable in isolation.
type DamageInput struct {
	Level           int
	Power           int
	Offense         int
	Defense         int
	SpreadTargets   int // >1 triggers the spread modifier in formats that apply it
	ApplySpread     bool
	Weather         WeatherModifier
	Crit            bool
	STAB            bool
	Adaptability    bool
	TeraMatchesSTAB bool // terastallized into a type already in the user's original types
	TeraSTABBonus   bool // terastallized into a type NOT in the original types: adds flat x1.5 on top
	TypeEffect      Effectiveness
	Burned          bool // physical attacker burned (halves unless ability exempts)
	BurnExempt      bool
	Other           float64 // product of remaining situational modifiers (items, screens, terrain); 1.0 if none
}

// WeatherModifier is the fire/water weather multiplier pair spec §4.5
// names: 1.5/0.5 in sun/rain (and the reverse), 0 for the immunity-style
// Desolate Land/Primordial Sea variants against the opposing element.
type WeatherModifier float64

const (
	WeatherNeutral WeatherModifier = 1.0
	WeatherBoost   WeatherModifier = 1.5
	WeatherWeaken  WeatherModifier = 0.5
	WeatherNullify WeatherModifier = 0
)

// BaseDamage computes the pre-random-roll damage value (spec §4.5's
// `base` term): floor(floor((2L/5+2)*P*A/D)/50)+2.
func BaseDamage(level, power, offense, defense int) int {
	if defense <= 0 {
		defense = 1
	}
	inner := (2*level/5 + 2) * power * offense / defense
	return inner/50 + 2
}

// Rolls are the 16 uniform damage multipliers spec §4.5 names: 0.85..1.00
// in 1/100 steps.
func Rolls() [16]float64 {
	var r [16]float64
	for i := 0; i < 16; i++ {
		r[i] = float64(85+i) / 100
	}
	return r
}

// STABMultiplier returns the same-type-attack-bonus multiplier given
// whether the move's type matches the user's type, Adaptability, and tera
// state (spec §4.5's STAB rules).
func STABMultiplier(in DamageInput) float64 {
	if !in.STAB && !in.TeraMatchesSTAB {
		return 1.0
	}
	if in.TeraMatchesSTAB {
		return 2.0 // matching-type tera doubles STAB regardless of Adaptability layering further
	}
	if in.Adaptability {
		return 2.0
	}
	mult := 1.5
	if in.TeraSTABBonus {
		mult += 0.5 // non-matching tera adds flat 1.5 STAB on top of the original 1.5
	}
	return mult
}

// CritMultiplier returns the crit damage multiplier for a generation, or
// 1.0 if crit is false.
func CritMultiplier(mechanics GenerationMechanics, crit bool) float64 {
	if !crit {
		return 1.0
	}
	return mechanics.CritMultiplier
}

// Damage computes one damage value at a fixed roll multiplier (0.85-1.00), applying
// every modifier spec §4.5 names in the order it lists them.
func Damage(mechanics GenerationMechanics, in DamageInput, roll float64) int {
	base := float64(BaseDamage(in.Level, in.Power, in.Offense, in.Defense))

	spread := 1.0
	if in.ApplySpread && in.SpreadTargets > 1 {
		spread = mechanics.SpreadModifier
	}

	weather := float64(in.Weather)
	if weather == 0 {
		weather = 1.0
	}
	if in.Weather == WeatherNullify {
		weather = 0
	}

	crit := CritMultiplier(mechanics, in.Crit)
	stab := STABMultiplier(in)
	typeEff := float64(in.TypeEffect)

	burn := 1.0
	if in.Burned && !in.BurnExempt {
		burn = 0.5
	}

	other := in.Other
	if other == 0 {
		other = 1.0
	}

	dmg := base * spread * weather * crit * roll * stab * typeEff * burn * other
	d := int(math.Floor(dmg))
	if d < 1 && typeEff > 0 && in.Power > 0 {
		d = 1 // a non-immune, non-zero-power hit always deals at least 1
	}
	return d
}

// AllRolls returns the 16 damage values across the standard roll range,
// used by composers building the instruction-set branch per roll bucket
// (many engines collapse identical results; spec §8's property tests only
// require the range match the formula, not 16 distinct branches).
func AllRolls(mechanics GenerationMechanics, in DamageInput) []int {
	rolls := Rolls()
	out := make([]int, len(rolls))
	for i, r := range rolls {
		out[i] = Damage(mechanics, in, r)
	}
	return out
}

// AccuracyInput bundles the values the accuracy formula needs (spec §4.5
// "Accuracy" subsection).
type AccuracyInput struct {
	MoveAccuracy    float64 // 0 means "never misses" (e.g. Swift, Aerial Ace); callers should special-case before calling
	UserAccStage    int
	TargetEvaStage  int
	AbilityModifier float64 // Compound Eyes, Hustle-adjacent, etc.; 1.0 if none
	ItemModifier    float64 // Wide Lens etc.; 1.0 if none
}

// stageMultiplier is the accuracy/evasion stage table, (3+n)/3 for boosts
// and 3/(3-n) for drops. It differs from state.StageMultiplier's (2+n)/2
// table for the other stats and lives here (rather than in state) to keep
// calc a standalone numeric package with no dependency on the data-model
// package.
func stageMultiplier(stage int) float64 {
	if stage < -6 {
		stage = -6
	}
	if stage > 6 {
		stage = 6
	}
	if stage >= 0 {
		return (3.0 + float64(stage)) / 3.0
	}
	return 3.0 / (3.0 - float64(stage))
}

// EffectiveAccuracy computes `effective_acc` (spec §4.5). A MoveAccuracy of
// 0 means the caller should treat the move as unconditionally hitting and
// never call this function.
func EffectiveAccuracy(in AccuracyInput) float64 {
	acc := in.MoveAccuracy / 100
	acc *= stageMultiplier(in.UserAccStage)
	acc /= stageMultiplier(in.TargetEvaStage)
	if in.AbilityModifier != 0 {
		acc *= in.AbilityModifier
	}
	if in.ItemModifier != 0 {
		acc *= in.ItemModifier
	}
	if acc > 1 {
		acc = 1
	}
	if acc < 0 {
		acc = 0
	}
	return acc
}

// FixedDamage implements the non-formula damage rules spec §4.5 names.
type FixedDamageKind int

const (
	FixedSeismicToss FixedDamageKind = iota // user level
	FixedSuperFang                          // floor(target_hp/2)
	FixedEndeavor                           // target_hp - user_hp, clamped >= 0
	FixedDragonRage                         // flat 40
	FixedSonicBoom                          // flat 20
)

// FixedDamage computes a fixed/percent-based move's damage given the
// relevant HP/level inputs.
func FixedDamage(kind FixedDamageKind, userLevel, userHP, targetHP int) int {
	switch kind {
	case FixedSeismicToss:
		return userLevel
	case FixedSuperFang:
		return targetHP / 2
	case FixedEndeavor:
		d := targetHP - userHP
		if d < 0 {
			d = 0
		}
		return d
	case FixedDragonRage:
		return 40
	case FixedSonicBoom:
		return 20
	default:
		return 0
	}
}

// typeAlias is a package-internal alias of ids.Type; the exported alias is
// TypeID in generation.go.
type typeAlias = ids.Type
