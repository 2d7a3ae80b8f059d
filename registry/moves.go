package registry

import (
	"pokebattle/calc"
	"pokebattle/effect"
	"pokebattle/ids"
	"pokebattle/state"
	"pokebattle/target"
)

// init registers a representative sample of concrete moves, one per
// composer family, so the composer set declared in package effect is
// actually exercised end to end rather than only reachable through
// GenericFallback. A real deployment would populate this table from the
// data repository instead of a Go init function; this engine has no such
// repository (out of scope), so the sample stands in for it.
func init() {
	Register(ids.NewMove("tackle"), effect.MoveData{
		Type: ids.NewType("normal"), Category: effect.Physical,
		Power: 40, Accuracy: 100, TargetCat: target.AdjacentFoe, Contact: true,
	}, effect.SimpleDamage())

	Register(ids.NewMove("rockslide"), effect.MoveData{
		Type: ids.NewType("rock"), Category: effect.Physical,
		Power: 75, Accuracy: 90, TargetCat: target.AllAdjacentFoes,
		Secondary: &effect.Secondary{Chance: 0.3, HasVolatile: true, Volatile: state.VolFlinch},
	}, effect.SimpleDamage())

	Register(ids.NewMove("bulletseed"), effect.MoveData{
		Type: ids.NewType("grass"), Category: effect.Physical,
		Power: 25, Accuracy: 100, TargetCat: target.AdjacentFoe, Contact: false,
	}, effect.MultiHit(2, 5, []float64{0.375, 0.375, 0.125, 0.125}))

	Register(ids.NewMove("stealthrock"), effect.MoveData{
		Category: effect.Status, Accuracy: 0, TargetCat: target.FoeSide,
	}, effect.HazardLayer(state.CondStealthRock, 1))

	Register(ids.NewMove("spikes"), effect.MoveData{
		Category: effect.Status, Accuracy: 0, TargetCat: target.FoeSide,
	}, effect.HazardLayer(state.CondSpikes, 3))

	Register(ids.NewMove("rapidspin"), effect.MoveData{
		Category: effect.Physical, Power: 50, Accuracy: 100, TargetCat: target.AdjacentFoe, Contact: true,
	}, effect.HazardRemover([]state.SideCondition{state.CondStealthRock, state.CondSpikes, state.CondToxicSpikes, state.CondStickyWeb}))

	Register(ids.NewMove("protect"), effect.MoveData{
		Category: effect.Status, Priority: 4, TargetCat: target.Self,
	}, effect.Protection())

	Register(ids.NewMove("raindance"), effect.MoveData{
		Category: effect.Status, TargetCat: target.EntireField,
	}, effect.WeatherSetter(state.WeatherRain, 5))

	Register(ids.NewMove("seismictoss"), effect.MoveData{
		Category: effect.Physical, Accuracy: 100, TargetCat: target.AdjacentFoe,
	}, effect.FixedDamageMove(calc.FixedSeismicToss))

	Register(ids.NewMove("doubleedge"), effect.MoveData{
		Type: ids.NewType("normal"), Category: effect.Physical,
		Power: 120, Accuracy: 100, TargetCat: target.AdjacentFoe, Contact: true,
	}, effect.Recoil(effect.SimpleDamage(), 1.0/3))

	Register(ids.NewMove("gigadrain"), effect.MoveData{
		Type: ids.NewType("grass"), Category: effect.Special,
		Power: 75, Accuracy: 100, TargetCat: target.AdjacentFoe,
	}, effect.Drain(effect.SimpleDamage(), 0.5))

	Register(ids.NewMove("swordsdance"), effect.MoveData{
		Category: effect.Status, TargetCat: target.Self,
	}, effect.SelfStatChange(map[state.StatIndex]int{state.StatIdxAtk: 2}, 1))

	Register(ids.NewMove("willowisp"), effect.MoveData{
		Type: ids.NewType("fire"), Category: effect.Status, Accuracy: 85, TargetCat: target.AdjacentFoe,
	}, effect.SingleStatus(state.StatusBurn, 1))

	Register(ids.NewMove("solarbeam"), effect.MoveData{
		Type: ids.NewType("grass"), Category: effect.Special,
		Power: 120, Accuracy: 100, TargetCat: target.AdjacentFoe,
	}, effect.TwoTurnCharge(state.VolCharging, effect.SimpleDamage()))

	Register(ids.NewMove("frostbreath"), effect.MoveData{
		Type: ids.NewType("ice"), Category: effect.Special,
		Power: 60, Accuracy: 90, TargetCat: target.AdjacentFoe,
	}, effect.AlwaysCrit())

	Register(ids.NewMove("whirlwind"), effect.MoveData{
		Category: effect.Status, Priority: -6, Accuracy: 0, TargetCat: target.AdjacentFoe,
	}, effect.ForceSwitch())

	Register(ids.NewMove("bodypress"), effect.MoveData{
		Type: ids.NewType("fighting"), Category: effect.Physical,
		Power: 80, Accuracy: 100, TargetCat: target.AdjacentFoe, Contact: true,
	}, effect.StatSubstitution(calc.BodyPressOffenseIsDefense))
}
