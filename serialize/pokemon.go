package serialize

import (
	"fmt"

	"pokebattle/battleerr"
	"pokebattle/ids"
	"pokebattle/state"
)

func statsArray(s state.Stats) [6]int {
	return [6]int{s.HP, s.Atk, s.Def, s.SpA, s.SpD, s.Spe}
}

func statsFromArray(a [6]int) state.Stats {
	return state.Stats{HP: a[0], Atk: a[1], Def: a[2], SpA: a[3], SpD: a[4], Spe: a[5]}
}

func statStagesToTuple(s state.StatStages) string {
	out := make([]string, len(s))
	for i, v := range s {
		out[i] = itoa(v)
	}
	return joinTuple(out...)
}

func tupleToStatStages(s string) (state.StatStages, error) {
	var out state.StatStages
	parts := splitTuple(s)
	if err := expectLen(parts, len(out), "stat stages"); err != nil {
		return out, err
	}
	for i, p := range parts {
		v, err := atoi(p)
		if err != nil {
			return out, err
		}
		out[i] = v
	}
	return out, nil
}

func encodeMoveSlot(m state.MoveSlot) string {
	return joinTuple(m.Move.String(), itoa(m.PP), itoa(m.MaxPP), btoa(m.Disabled))
}

func decodeMoveSlot(s string) (state.MoveSlot, error) {
	var out state.MoveSlot
	parts := splitTuple(s)
	if err := expectLen(parts, 4, "move slot"); err != nil {
		return out, err
	}
	pp, err := atoi(parts[1])
	if err != nil {
		return out, err
	}
	maxPP, err := atoi(parts[2])
	if err != nil {
		return out, err
	}
	disabled, err := atob(parts[3])
	if err != nil {
		return out, err
	}
	out.Move = ids.NewMove(parts[0])
	out.PP = pp
	out.MaxPP = maxPP
	out.Disabled = disabled
	return out, nil
}

func encodeMoveset(moves [4]state.MoveSlot) string {
	out := make([]string, 4)
	for i, m := range moves {
		out[i] = encodeMoveSlot(m)
	}
	return joinList(out)
}

func decodeMoveset(s string) ([4]state.MoveSlot, error) {
	var out [4]state.MoveSlot
	parts := splitList(s)
	if len(parts) != 4 {
		return out, fmt.Errorf("%w: expected 4 move slots, got %d", battleerr.ErrFormatViolation, len(parts))
	}
	for i, p := range parts {
		slot, err := decodeMoveSlot(p)
		if err != nil {
			return out, err
		}
		out[i] = slot
	}
	return out, nil
}

func encodeVolatile(v *state.Volatile) string {
	return joinTuple(itoa(int(v.Kind)), itoa(v.Duration), itoa(v.Counter), v.Move.String())
}

func decodeVolatile(s string) (*state.Volatile, error) {
	parts := splitTuple(s)
	if err := expectLen(parts, 4, "volatile"); err != nil {
		return nil, err
	}
	kind, err := atoi(parts[0])
	if err != nil {
		return nil, err
	}
	duration, err := atoi(parts[1])
	if err != nil {
		return nil, err
	}
	counter, err := atoi(parts[2])
	if err != nil {
		return nil, err
	}
	return &state.Volatile{
		Kind:     state.VolatileKind(kind),
		Duration: duration,
		Counter:  counter,
		Move:     ids.NewMove(parts[3]),
	}, nil
}

// encodeVolatiles walks kinds in ascending order so the encoded form is
// independent of map iteration order (spec §4.8 determinism requirement).
func encodeVolatiles(v state.Volatiles) string {
	var out []string
	for kind := state.VolConfusion; kind <= state.VolCharging; kind++ {
		if vol, ok := v[kind]; ok {
			out = append(out, encodeVolatile(vol))
		}
	}
	return joinList(out)
}

func decodeVolatiles(s string) (state.Volatiles, error) {
	out := make(state.Volatiles)
	for _, p := range splitList(s) {
		vol, err := decodeVolatile(p)
		if err != nil {
			return nil, err
		}
		out[vol.Kind] = vol
	}
	return out, nil
}

func encodePokemon(p *state.Pokemon) string {
	return joinFields(
		p.Species.String(),
		itoa(p.Level),
		p.Types[0].String(),
		p.Types[1].String(),
		itoa(p.MaxHP),
		itoa(p.CurrentHP),
		statsToTuple(statsArray(p.BaseStats)),
		statsToTuple(statsArray(p.Computed)),
		statsToTuple(statsArray(p.IVs)),
		statsToTuple(statsArray(p.EVs)),
		p.Nature,
		p.Ability.String(),
		p.Item.String(),
		btoa(p.ItemConsumed),
		encodeMoveset(p.Moves),
		itoa(int(p.Status)),
		itoa(p.StatusCounter),
		statStagesToTuple(p.Stages),
		encodeVolatiles(p.Volatiles),
		p.Tera.String(),
		btoa(p.Terastallized),
		p.LastMove.String(),
		itoa(p.LastMoveTurn),
		itoa(p.DamageDealtThisTurn),
		itoa(p.DamageTakenThisTurn),
		itoa(p.SwitchInTurn),
		p.FormSpecies.String(),
	)
}

const pokemonFieldCount = 27

func decodePokemon(s string) (*state.Pokemon, error) {
	parts := splitFields(s)
	if err := expectLen(parts, pokemonFieldCount, "pokemon record"); err != nil {
		return nil, err
	}

	level, err := atoi(parts[1])
	if err != nil {
		return nil, err
	}
	maxHP, err := atoi(parts[4])
	if err != nil {
		return nil, err
	}
	currentHP, err := atoi(parts[5])
	if err != nil {
		return nil, err
	}
	base, err := tupleToStats(parts[6])
	if err != nil {
		return nil, err
	}
	computed, err := tupleToStats(parts[7])
	if err != nil {
		return nil, err
	}
	ivs, err := tupleToStats(parts[8])
	if err != nil {
		return nil, err
	}
	evs, err := tupleToStats(parts[9])
	if err != nil {
		return nil, err
	}
	itemConsumed, err := atob(parts[13])
	if err != nil {
		return nil, err
	}
	moves, err := decodeMoveset(parts[14])
	if err != nil {
		return nil, err
	}
	status, err := atoi(parts[15])
	if err != nil {
		return nil, err
	}
	statusCounter, err := atoi(parts[16])
	if err != nil {
		return nil, err
	}
	stages, err := tupleToStatStages(parts[17])
	if err != nil {
		return nil, err
	}
	volatiles, err := decodeVolatiles(parts[18])
	if err != nil {
		return nil, err
	}
	terastallized, err := atob(parts[20])
	if err != nil {
		return nil, err
	}
	lastMoveTurn, err := atoi(parts[22])
	if err != nil {
		return nil, err
	}
	damageDealt, err := atoi(parts[23])
	if err != nil {
		return nil, err
	}
	damageTaken, err := atoi(parts[24])
	if err != nil {
		return nil, err
	}
	switchInTurn, err := atoi(parts[25])
	if err != nil {
		return nil, err
	}

	p := state.NewPokemon(
		ids.NewSpecies(parts[0]),
		level,
		[2]ids.Type{ids.NewType(parts[2]), ids.NewType(parts[3])},
		statsFromArray(computed),
		statsFromArray(ivs),
		statsFromArray(evs),
		parts[10],
		ids.NewAbility(parts[11]),
		moves,
	)
	p.MaxHP = maxHP
	p.CurrentHP = currentHP
	p.BaseStats = statsFromArray(base)
	p.Item = ids.NewItem(parts[12])
	p.ItemConsumed = itemConsumed
	p.Status = state.MajorStatus(status)
	p.StatusCounter = statusCounter
	p.Stages = stages
	p.Volatiles = volatiles
	p.Tera = ids.NewType(parts[19])
	p.Terastallized = terastallized
	p.LastMove = ids.NewMove(parts[21])
	p.LastMoveTurn = lastMoveTurn
	p.DamageDealtThisTurn = damageDealt
	p.DamageTakenThisTurn = damageTaken
	p.SwitchInTurn = switchInTurn
	p.FormSpecies = ids.NewSpecies(parts[26])
	return p, nil
}
