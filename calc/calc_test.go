package calc

import (
	"testing"

	"pokebattle/ids"
)

func TestBaseDamageFormula(t *testing.T) {
	// Pikachu L50 Tackle (40 power) vs Charmander, both base stats ~ equal
	// offense/defense for a sanity check on the shape of the formula rather
	// than an exact game value.
	got := BaseDamage(50, 40, 55, 43)
	if got <= 0 {
		t.Fatalf("expected positive base damage, got %d", got)
	}
}

func TestDamageRollsSpanExpectedRange(t *testing.T) {
	mechanics := ForGeneration(9)
	in := DamageInput{Level: 50, Power: 40, Offense: 55, Defense: 43, TypeEffect: 1, Other: 1}
	rolls := AllRolls(mechanics, in)
	if len(rolls) != 16 {
		t.Fatalf("expected 16 rolls, got %d", len(rolls))
	}
	min, max := rolls[0], rolls[0]
	for _, r := range rolls {
		if r < min {
			min = r
		}
		if r > max {
			max = r
		}
	}
	if max < min {
		t.Fatalf("expected non-decreasing roll range")
	}
	if rolls[15] < rolls[0] {
		t.Fatalf("expected roll 0.85 <= roll 1.00, got %d vs %d", rolls[0], rolls[15])
	}
}

func TestSpreadModifierAppliesOnlyWhenRequested(t *testing.T) {
	mechanics := ForGeneration(9)
	single := DamageInput{Level: 50, Power: 40, Offense: 55, Defense: 43, Weather: WeatherNeutral, TypeEffect: 1, Other: 1}
	spread := single
	spread.SpreadTargets = 2
	spread.ApplySpread = true

	dmgSingle := Damage(mechanics, single, 1.0)
	dmgSpread := Damage(mechanics, spread, 1.0)
	if dmgSpread >= dmgSingle {
		t.Fatalf("expected spread damage to be reduced: single=%d spread=%d", dmgSingle, dmgSpread)
	}
}

func TestTypeEffectivenessImmunity(t *testing.T) {
	chart := StandardChart(9)
	ground := ids.NewType("ground")
	flying := [2]ids.Type{ids.NewType("flying")}
	if eff := chart.EffectivenessAgainst(ground, flying); eff != 0 {
		t.Fatalf("expected ground vs flying to be immune, got %v", eff)
	}
}

func TestTypeEffectivenessSuperEffective(t *testing.T) {
	chart := StandardChart(9)
	water := ids.NewType("water")
	fire := [2]ids.Type{ids.NewType("fire")}
	if eff := chart.EffectivenessAgainst(water, fire); eff != 2 {
		t.Fatalf("expected water vs fire to be 2x, got %v", eff)
	}
}

func TestAccuracyStagesApplyInverse(t *testing.T) {
	base := AccuracyInput{MoveAccuracy: 70}
	boosted := AccuracyInput{MoveAccuracy: 70, UserAccStage: 2}
	evasive := AccuracyInput{MoveAccuracy: 70, TargetEvaStage: 2}

	if EffectiveAccuracy(boosted) <= EffectiveAccuracy(base) {
		t.Fatalf("expected accuracy boost to raise hit chance")
	}
	if EffectiveAccuracy(evasive) >= EffectiveAccuracy(base) {
		t.Fatalf("expected target evasion to lower hit chance")
	}
}

func TestFixedDamageEndeavorClampsAtZero(t *testing.T) {
	if got := FixedDamage(FixedEndeavor, 50, 100, 50); got != 0 {
		t.Fatalf("expected 0 when user hp exceeds target hp, got %d", got)
	}
	if got := FixedDamage(FixedEndeavor, 50, 20, 100); got != 80 {
		t.Fatalf("expected 80, got %d", got)
	}
}

func TestFixedDamageSuperFang(t *testing.T) {
	if got := FixedDamage(FixedSuperFang, 50, 0, 101); got != 50 {
		t.Fatalf("expected floor(101/2)=50, got %d", got)
	}
}

func TestCritMultiplierByGeneration(t *testing.T) {
	if CritMultiplier(ForGeneration(9), true) != 1.5 {
		t.Fatalf("expected 1.5x crit in gen 9")
	}
	if CritMultiplier(ForGeneration(3), true) != 2.0 {
		t.Fatalf("expected 2.0x crit in gen 3")
	}
}
