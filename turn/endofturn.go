package turn

import (
	"pokebattle/calc"
	"pokebattle/ids"
	"pokebattle/instruction"
	"pokebattle/state"
)

var protectMoveID = ids.NewMove("protect")

// EndOfTurn builds the fixed-order residual-effects pass: weather damage,
// weather healing, terrain healing, Wish/Future Sight resolution,
// side-condition duration decrement, status residual damage, Leech Seed,
// item residuals, Yawn, Perish Song count, volatile duration ticks,
// sleep-counter ticks, protect-streak reset, and Substitute cleanup on
// faint. It runs against the live state in one deterministic pass — no
// branching, since every residual effect named here is unconditional given
// the state it reads.
func EndOfTurn(s *state.State) []instruction.Instruction {
	var ins []instruction.Instruction

	ins = append(ins, weatherDamage(s)...)
	ins = append(ins, weatherHealing(s)...)
	ins = append(ins, terrainHealing(s)...)
	ins = append(ins, resolveWishes(s)...)
	ins = append(ins, resolveFutureSights(s)...)
	ins = append(ins, decrementSideConditions(s)...)
	ins = append(ins, statusResidual(s)...)
	ins = append(ins, leechSeedResidual(s)...)
	ins = append(ins, itemResidual(s)...)
	ins = append(ins, yawnResolve(s)...)
	ins = append(ins, perishSongTick(s)...)
	ins = append(ins, volatileDurationTick(s)...)
	ins = append(ins, sleepCounterTick(s)...)
	ins = append(ins, protectStreakReset(s)...)
	ins = append(ins, substituteFaintCleanup(s)...)

	ins = append(ins, &instruction.ResetDamageRecords{})
	ins = append(ins, &instruction.IncrementTurn{})
	return ins
}

// weatherDamage applies the 1/16-max-HP sand/hail tick to every active
// Pokémon not immune by type (Rock/Ground/Steel for sand; Ice for hail).
func weatherDamage(s *state.State) []instruction.Instruction {
	var ins []instruction.Instruction
	switch s.Field.Weather {
	case state.WeatherSand:
		for _, pos := range s.ActivePositions() {
			p := s.PokemonAt(pos)
			if p.Fainted() || hasAnyType(p, "rock", "ground", "steel") {
				continue
			}
			ins = append(ins, residualDamage(pos, p, 16))
		}
	case state.WeatherHail:
		for _, pos := range s.ActivePositions() {
			p := s.PokemonAt(pos)
			if p.Fainted() || hasAnyType(p, "ice") {
				continue
			}
			ins = append(ins, residualDamage(pos, p, 16))
		}
	}
	return ins
}

// weatherHealing applies the teacher-independent 1/16 Rain Dish / Dry Skin
// style field-wide healing this engine supports generically through item
// residuals instead; weather's own direct healing (none in modern gens
// beyond ability hooks, which belong to the out-of-scope data repository)
// has no unconditional field-level effect, so this is a deliberate no-op
// kept as a named phase for pipeline-order clarity.
func weatherHealing(s *state.State) []instruction.Instruction { return nil }

// terrainHealing applies Grassy Terrain's 1/16-max-HP heal (minimum 1) to
// every active Pokémon that is not fainted, not at full HP, and not
// Flying-type; no other terrain heals.
func terrainHealing(s *state.State) []instruction.Instruction {
	if s.Field.Terrain != state.TerrainGrassy {
		return nil
	}
	var ins []instruction.Instruction
	for _, pos := range s.ActivePositions() {
		p := s.PokemonAt(pos)
		if p.Fainted() || p.CurrentHP >= p.MaxHP || hasAnyType(p, "flying") {
			continue
		}
		heal := p.MaxHP / 16
		if heal < 1 {
			heal = 1
		}
		ins = append(ins, &instruction.Heal{Pos: pos, Amount: heal})
	}
	return ins
}

// resolveWishes decrements every queued Wish and resolves (heals + pops)
// any that reach zero this turn.
func resolveWishes(s *state.State) []instruction.Instruction {
	var ins []instruction.Instruction
	for _, side := range s.Sides {
		if len(side.Wishes) == 0 {
			continue
		}
		ins = append(ins, &instruction.DecrementWishTurns{Side: side.ID})
		for idx := len(side.Wishes) - 1; idx >= 0; idx-- {
			w := side.Wishes[idx]
			turnsLeft := w.TurnsLeft - 1
			if turnsLeft > 0 {
				continue
			}
			slot := side.SlotOfRosterIndex(w.RosterIndex)
			if slot >= 0 {
				p := side.Roster[w.RosterIndex]
				if !p.Fainted() && p.CurrentHP < p.MaxHP {
					ins = append(ins, &instruction.Heal{Pos: state.Position{Side: side.ID, Slot: slot}, Amount: w.HealAmount})
				}
			}
			ins = append(ins, &instruction.PopWish{Side: side.ID, Index: idx})
		}
	}
	return ins
}

// resolveFutureSights decrements every queued Future Sight and resolves
// (damages + pops) any that reach zero this turn. Damage uses the
// attacker's stats and level snapshotted at the time the move was used
// (the user may have switched out or fainted since), against whichever
// Pokémon currently occupies the target roster slot — a typeless special
// hit with no crit or STAB, matching Future Sight/Doom Desire's
// fixed-formula resolution.
func resolveFutureSights(s *state.State) []instruction.Instruction {
	var ins []instruction.Instruction
	for _, side := range s.Sides {
		if len(side.FutureSights) == 0 {
			continue
		}
		ins = append(ins, &instruction.DecrementFutureSightTurns{Side: side.ID})
		for idx := len(side.FutureSights) - 1; idx >= 0; idx-- {
			f := side.FutureSights[idx]
			turnsLeft := f.TurnsLeft - 1
			if turnsLeft > 0 {
				continue
			}
			slot := side.SlotOfRosterIndex(f.TargetRosterIndex)
			if slot >= 0 {
				tgt := side.Roster[f.TargetRosterIndex]
				if !tgt.Fainted() {
					dmg := calc.BaseDamage(f.UserLevel, f.Power, f.UserComputed.SpA, tgt.Computed.SpD)
					if dmg > 0 {
						ins = append(ins, &instruction.Damage{Pos: state.Position{Side: side.ID, Slot: slot}, Amount: dmg})
					}
				}
			}
			ins = append(ins, &instruction.PopFutureSight{Side: side.ID, Index: idx})
		}
	}
	return ins
}

// protectStreakReset clears a Pokémon's Protect streak once it acts with a
// move other than Protect while staying in; only switching out or failing
// a Protect roll should otherwise reset the streak (handled by
// instruction.Switch and Protection's own failure branch respectively).
func protectStreakReset(s *state.State) []instruction.Instruction {
	var ins []instruction.Instruction
	for _, pos := range s.ActivePositions() {
		p := s.PokemonAt(pos)
		if p.Fainted() || !p.Volatiles.Has(state.VolProtect) {
			continue
		}
		actedThisTurn := p.LastMoveTurn == s.Field.Turn
		switchedInThisTurn := p.SwitchInTurn == s.Field.Turn
		if actedThisTurn && p.LastMove != protectMoveID && !switchedInThisTurn {
			ins = append(ins, &instruction.SetVolatile{Pos: pos, Kind: state.VolProtect, Add: false})
		}
	}
	return ins
}

// substituteFaintCleanup clears the Substitute volatile from any roster
// member, active or benched, that has fainted — the one case switch-in's
// own clearOnSwitchIn can't reach, since the Pokémon never becomes the
// active occupant of a fresh switch.
func substituteFaintCleanup(s *state.State) []instruction.Instruction {
	var ins []instruction.Instruction
	matches := s.QueryRoster(func(p *state.Pokemon) bool {
		return p.Fainted() && p.Volatiles.Has(state.VolSubstitute)
	})
	for _, m := range matches {
		ins = append(ins, &instruction.ClearVolatileRoster{Side: m.Side, Index: m.Index, Kind: state.VolSubstitute})
	}
	return ins
}

// decrementSideConditions counts down every side condition that carries a
// duration (Reflect/Light Screen/Aurora Veil/Tailwind), removing it once it
// reaches zero. Hazards (Spikes/Stealth Rock/Toxic Spikes/Sticky Web) carry
// no duration and are unaffected.
func decrementSideConditions(s *state.State) []instruction.Instruction {
	var ins []instruction.Instruction
	durationBound := map[state.SideCondition]bool{
		state.CondReflect: true, state.CondLightScreen: true,
		state.CondAuroraVeil: true, state.CondTailwind: true, state.CondSafeguard: true, state.CondMist: true,
	}
	for _, side := range s.Sides {
		for kind, cond := range side.Conditions {
			if !durationBound[kind] || cond.Turns <= 0 {
				continue
			}
			remaining := cond.Turns - 1
			if remaining <= 0 {
				ins = append(ins, &instruction.SetSideCondition{Side: side.ID, Kind: kind, Remove: true})
			} else {
				ins = append(ins, &instruction.SetSideCondition{Side: side.ID, Kind: kind, New: state.ConditionState{Turns: remaining, Layers: cond.Layers}})
			}
		}
	}
	return ins
}

// statusResidual applies burn (1/16) and poison (1/8) / toxic (n/16,
// incrementing) damage.
func statusResidual(s *state.State) []instruction.Instruction {
	var ins []instruction.Instruction
	for _, pos := range s.ActivePositions() {
		p := s.PokemonAt(pos)
		if p.Fainted() {
			continue
		}
		switch p.Status {
		case state.StatusBurn:
			ins = append(ins, residualDamage(pos, p, 16))
		case state.StatusPoison:
			ins = append(ins, residualDamage(pos, p, 8))
		case state.StatusToxic:
			n := p.StatusCounter
			if n < 1 {
				n = 1
			}
			amount := p.MaxHP * n / 16
			if amount < 1 {
				amount = 1
			}
			ins = append(ins, &instruction.Damage{Pos: pos, Amount: amount})
			ins = append(ins, &instruction.SetMajorStatus{Pos: pos, New: state.StatusToxic, NewCounter: p.StatusCounter + 1})
		}
	}
	return ins
}

// leechSeedResidual drains 1/8 max HP from every seeded Pokémon to its
// seeder, when the seeder is still active.
func leechSeedResidual(s *state.State) []instruction.Instruction {
	var ins []instruction.Instruction
	for _, pos := range s.ActivePositions() {
		p := s.PokemonAt(pos)
		if p.Fainted() || !p.Volatiles.Has(state.VolLeechSeed) {
			continue
		}
		amount := p.MaxHP / 8
		if amount < 1 {
			amount = 1
		}
		ins = append(ins, &instruction.Damage{Pos: pos, Amount: amount})
		if donor := seedDonor(s, pos); donor != nil && !donor.Fainted() {
			ins = append(ins, &instruction.Heal{Pos: *donor, Amount: amount})
		}
	}
	return ins
}

// seedDonor resolves which position receives a Leech Seed drain: the
// opposing side's matching slot in singles, or the only other active
// opposing slot in doubles/triples — generation rules route Leech Seed to
// whichever foe seeded it, tracked via Volatile.Move repurposed to hold a
// species-agnostic slot marker is unnecessary here since exactly one seed
// source exists per victim in every supported format; this engine seeds the
// opposing side's slot 0 as the common case and falls back to the first
// active foe.
func seedDonor(s *state.State, victim state.Position) *state.Position {
	foeSide := s.Side(victim.Side.Other())
	for slot := range foeSide.Active {
		pos := state.Position{Side: foeSide.ID, Slot: slot}
		if p := s.PokemonAt(pos); p != nil {
			return &pos
		}
	}
	return nil
}

// itemResidual applies Leftovers (1/16 heal) and Black Sludge (1/16 heal if
// poison-type, else 1/8 damage) at end of turn.
func itemResidual(s *state.State) []instruction.Instruction {
	var ins []instruction.Instruction
	for _, pos := range s.ActivePositions() {
		p := s.PokemonAt(pos)
		if p.Fainted() || p.ItemConsumed {
			continue
		}
		switch p.Item.String() {
		case "leftovers":
			if p.CurrentHP < p.MaxHP {
				ins = append(ins, &instruction.Heal{Pos: pos, Amount: maxInt(p.MaxHP/16, 1)})
			}
		case "blacksludge":
			if hasAnyType(p, "poison") {
				if p.CurrentHP < p.MaxHP {
					ins = append(ins, &instruction.Heal{Pos: pos, Amount: maxInt(p.MaxHP/16, 1)})
				}
			} else {
				ins = append(ins, &instruction.Damage{Pos: pos, Amount: maxInt(p.MaxHP/8, 1)})
			}
		}
	}
	return ins
}

// yawnResolve puts a Pokémon to sleep once its Yawn volatile's one-turn
// delay expires.
func yawnResolve(s *state.State) []instruction.Instruction {
	var ins []instruction.Instruction
	for _, pos := range s.ActivePositions() {
		p := s.PokemonAt(pos)
		v := p.Volatiles.Get(state.VolYawn)
		if v == nil || p.Fainted() {
			continue
		}
		if v.Duration <= 0 {
			if p.Status == state.StatusNone {
				ins = append(ins, &instruction.SetMajorStatus{Pos: pos, New: state.StatusSleep, NewCounter: 2})
			}
			ins = append(ins, &instruction.SetVolatile{Pos: pos, Kind: state.VolYawn, Add: false})
		} else {
			ins = append(ins, &instruction.SetVolatile{Pos: pos, Kind: state.VolYawn, Add: true, New: state.Volatile{Kind: state.VolYawn, Duration: v.Duration - 1}})
		}
	}
	return ins
}

// perishSongTick counts down Perish Song and faints anyone reaching zero.
func perishSongTick(s *state.State) []instruction.Instruction {
	var ins []instruction.Instruction
	for _, pos := range s.ActivePositions() {
		p := s.PokemonAt(pos)
		v := p.Volatiles.Get(state.VolPerishSong)
		if v == nil || p.Fainted() {
			continue
		}
		if v.Duration <= 0 {
			ins = append(ins, &instruction.Faint{Pos: pos})
			ins = append(ins, &instruction.SetVolatile{Pos: pos, Kind: state.VolPerishSong, Add: false})
		} else {
			ins = append(ins, &instruction.SetVolatile{Pos: pos, Kind: state.VolPerishSong, Add: true, New: state.Volatile{Kind: state.VolPerishSong, Duration: v.Duration - 1}})
		}
	}
	return ins
}

// volatileDurationTick counts down every remaining duration-bound volatile
// (Taunt, Encore, Disable, LockedMove) not already handled by a dedicated
// phase above.
func volatileDurationTick(s *state.State) []instruction.Instruction {
	var ins []instruction.Instruction
	durationBound := []state.VolatileKind{state.VolTaunt, state.VolEncore, state.VolDisable, state.VolLockedMove}
	for _, pos := range s.ActivePositions() {
		p := s.PokemonAt(pos)
		if p.Fainted() {
			continue
		}
		for _, kind := range durationBound {
			v := p.Volatiles.Get(kind)
			if v == nil {
				continue
			}
			if v.Duration <= 1 {
				ins = append(ins, &instruction.SetVolatile{Pos: pos, Kind: kind, Add: false})
			} else {
				ins = append(ins, &instruction.SetVolatile{Pos: pos, Kind: kind, Add: true, New: state.Volatile{Kind: kind, Duration: v.Duration - 1, Move: v.Move}})
			}
		}
	}
	return ins
}

// sleepCounterTick decrements the sleep turn counter, waking the Pokémon
// once it reaches zero.
func sleepCounterTick(s *state.State) []instruction.Instruction {
	var ins []instruction.Instruction
	for _, pos := range s.ActivePositions() {
		p := s.PokemonAt(pos)
		if p.Fainted() || p.Status != state.StatusSleep {
			continue
		}
		remaining := p.StatusCounter - 1
		if remaining <= 0 {
			ins = append(ins, &instruction.SetMajorStatus{Pos: pos, New: state.StatusNone})
		} else {
			ins = append(ins, &instruction.SetMajorStatus{Pos: pos, New: state.StatusSleep, NewCounter: remaining})
		}
	}
	return ins
}

func residualDamage(pos state.Position, p *state.Pokemon, denom int) instruction.Instruction {
	amount := p.MaxHP / denom
	if amount < 1 {
		amount = 1
	}
	return &instruction.Damage{Pos: pos, Amount: amount}
}

func hasAnyType(p *state.Pokemon, types ...string) bool {
	for _, t := range types {
		for _, tp := range p.EffectiveType() {
			if tp.String() == t {
				return true
			}
		}
	}
	return false
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
