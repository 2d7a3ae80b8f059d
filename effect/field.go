package effect

import (
	"pokebattle/calc"
	"pokebattle/instruction"
	"pokebattle/state"
)

// WeatherSetter builds the composer for weather-inducing moves (spec §4.6
// `weather_setter`, e.g. Rain Dance, Sunny Day, Sandstorm).
func WeatherSetter(weather state.Weather, turns int) Composer {
	return func(ctx Context) []instruction.InstructionSet {
		pp := ppCost(ctx, 1)
		set := &instruction.SetWeather{New: weather, NewState: state.FieldState{Turns: turns, Source: ctx.User}}
		return certain(pp, set)
	}
}

// TerrainSetter builds the composer for terrain-inducing moves (spec §4.6
// `terrain_setter`, e.g. Electric Terrain, Grassy Terrain).
func TerrainSetter(terrain state.Terrain, turns int) Composer {
	return func(ctx Context) []instruction.InstructionSet {
		pp := ppCost(ctx, 1)
		set := &instruction.SetTerrain{New: terrain, NewState: state.FieldState{Turns: turns, Source: ctx.User}}
		return certain(pp, set)
	}
}

// HazardLayer builds the composer for entry-hazard moves (spec §4.6
// `hazard_layer`, e.g. Stealth Rock, Spikes, Toxic Spikes, Sticky Web).
// maxLayers caps how many times the condition may stack (1 for most
// hazards, 3 for Spikes, 2 for Toxic Spikes); further uses once at the cap
// produce a no-op branch rather than an error, matching "move fails" rather
// than an illegal-choice rejection.
func HazardLayer(cond state.SideCondition, maxLayers int) Composer {
	return func(ctx Context) []instruction.InstructionSet {
		pp := ppCost(ctx, 1)
		foeSide := ctx.User.Side.Other()
		side := ctx.State.Side(foeSide)
		current := 0
		if c, ok := side.Conditions[cond]; ok {
			current = c.Layers
		}
		if current >= maxLayers {
			return certain(pp)
		}
		set := &instruction.SetSideCondition{
			Side: foeSide, Kind: cond,
			New: state.ConditionState{Layers: current + 1},
		}
		return certain(pp, set)
	}
}

// HazardRemover builds the composer for hazard-clearing moves (spec §4.6
// `hazard_remover`, e.g. Rapid Spin, Defog, Court Change's symmetric swap
// is wired as a dedicated registry entry since it also affects the user's
// own side).
func HazardRemover(conds []state.SideCondition) Composer {
	return func(ctx Context) []instruction.InstructionSet {
		pp := ppCost(ctx, 1)
		ins := []instruction.Instruction{pp}
		side := ctx.State.Side(ctx.User.Side)
		for _, cond := range conds {
			if _, ok := side.Conditions[cond]; ok {
				ins = append(ins, &instruction.SetSideCondition{Side: ctx.User.Side, Kind: cond, Remove: true})
			}
		}
		return certain(ins...)
	}
}

// FixedDamageMove builds a composer for moves that bypass the standard
// formula entirely (spec §4.6's `fixed_damage(fn)`), e.g. Seismic Toss,
// Super Fang, Endeavor, Dragon Rage, Sonic Boom.
func FixedDamageMove(kind calc.FixedDamageKind) Composer {
	return func(ctx Context) []instruction.InstructionSet {
		pp := ppCost(ctx, 1)
		ins := []instruction.Instruction{pp}
		user := ctx.userMon()
		for _, pos := range ctx.Targets {
			tgt := ctx.targetMon(pos)
			amount := calc.FixedDamage(kind, user.Level, user.CurrentHP, tgt.CurrentHP)
			hitIns, _ := applyDamageToTarget(ctx, pos, amount)
			ins = append(ins, hitIns...)
		}
		hitChance := 1.0
		if len(ctx.Targets) > 0 {
			hitChance = hitChanceFor(ctx, ctx.Targets[0])
		}
		return hitBranches(hitChance, ins, []instruction.Instruction{pp})
	}
}
