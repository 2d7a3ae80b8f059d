package serialize

import "pokebattle/state"

func encodeActiveIndices(active []int) string {
	out := make([]string, len(active))
	for i, v := range active {
		out[i] = itoa(v)
	}
	return joinRecords(out)
}

func decodeActiveIndices(s string) ([]int, error) {
	parts := splitRecords(s)
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := atoi(p)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func encodeRoster(roster []*state.Pokemon) string {
	out := make([]string, len(roster))
	for i, p := range roster {
		out[i] = encodePokemon(p)
	}
	return joinRecords(out)
}

func decodeRoster(s string) ([]*state.Pokemon, error) {
	var out []*state.Pokemon
	for _, rec := range splitRecords(s) {
		p, err := decodePokemon(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// encodeConditions walks SideCondition in ascending order so the encoded
// form is independent of map iteration order.
func encodeConditions(conds map[state.SideCondition]*state.ConditionState) string {
	var out []string
	for kind := state.CondReflect; kind <= state.CondMist; kind++ {
		if cs, ok := conds[kind]; ok {
			out = append(out, joinTuple(itoa(int(kind)), itoa(cs.Turns), itoa(cs.Layers)))
		}
	}
	return joinRecords(out)
}

func decodeConditions(s string) (map[state.SideCondition]*state.ConditionState, error) {
	out := make(map[state.SideCondition]*state.ConditionState)
	for _, rec := range splitRecords(s) {
		parts := splitTuple(rec)
		if err := expectLen(parts, 3, "side condition"); err != nil {
			return nil, err
		}
		kind, err := atoi(parts[0])
		if err != nil {
			return nil, err
		}
		turns, err := atoi(parts[1])
		if err != nil {
			return nil, err
		}
		layers, err := atoi(parts[2])
		if err != nil {
			return nil, err
		}
		out[state.SideCondition(kind)] = &state.ConditionState{Turns: turns, Layers: layers}
	}
	return out, nil
}

// maxActiveSlots bounds the choice-lock scan; no Format exceeds Triples'
// three active slots per side (state.FormatType.defaultActivePerSide).
const maxActiveSlots = 8

func encodeChoiceLock(lock map[int]int) string {
	var out []string
	for slot := 0; slot < maxActiveSlots; slot++ {
		if v, ok := lock[slot]; ok {
			out = append(out, joinTuple(itoa(slot), itoa(v)))
		}
	}
	return joinRecords(out)
}

func decodeChoiceLock(s string) (map[int]int, error) {
	out := make(map[int]int)
	for _, rec := range splitRecords(s) {
		parts := splitTuple(rec)
		if err := expectLen(parts, 2, "choice lock entry"); err != nil {
			return nil, err
		}
		slot, err := atoi(parts[0])
		if err != nil {
			return nil, err
		}
		moveIdx, err := atoi(parts[1])
		if err != nil {
			return nil, err
		}
		out[slot] = moveIdx
	}
	return out, nil
}

func encodeWishes(wishes []*state.PendingWish) string {
	out := make([]string, len(wishes))
	for i, w := range wishes {
		out[i] = joinTuple(itoa(w.RosterIndex), itoa(w.TurnsLeft), itoa(w.HealAmount))
	}
	return joinRecords(out)
}

func decodeWishes(s string) ([]*state.PendingWish, error) {
	var out []*state.PendingWish
	for _, rec := range splitRecords(s) {
		parts := splitTuple(rec)
		if err := expectLen(parts, 3, "pending wish"); err != nil {
			return nil, err
		}
		rosterIndex, err := atoi(parts[0])
		if err != nil {
			return nil, err
		}
		turnsLeft, err := atoi(parts[1])
		if err != nil {
			return nil, err
		}
		healAmount, err := atoi(parts[2])
		if err != nil {
			return nil, err
		}
		out = append(out, &state.PendingWish{RosterIndex: rosterIndex, TurnsLeft: turnsLeft, HealAmount: healAmount})
	}
	return out, nil
}

// encodeFutureSights joins each record's own fields with fieldSep rather
// than tupleSep, since UserComputed is itself a tupleSep-joined stat block
// nested inside — reusing tupleSep at both levels would make the split
// ambiguous.
func encodeFutureSights(fs []*state.PendingFutureSight) string {
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = joinFields(
			itoa(f.TargetRosterIndex),
			itoa(f.TurnsLeft),
			itoa(f.Power),
			statsToTuple(statsArray(f.UserComputed)),
			itoa(f.UserLevel),
		)
	}
	return joinRecords(out)
}

func decodeFutureSights(s string) ([]*state.PendingFutureSight, error) {
	var out []*state.PendingFutureSight
	for _, rec := range splitRecords(s) {
		parts := splitFields(rec)
		if err := expectLen(parts, 5, "pending future sight"); err != nil {
			return nil, err
		}
		targetRosterIndex, err := atoi(parts[0])
		if err != nil {
			return nil, err
		}
		turnsLeft, err := atoi(parts[1])
		if err != nil {
			return nil, err
		}
		power, err := atoi(parts[2])
		if err != nil {
			return nil, err
		}
		computed, err := tupleToStats(parts[3])
		if err != nil {
			return nil, err
		}
		userLevel, err := atoi(parts[4])
		if err != nil {
			return nil, err
		}
		out = append(out, &state.PendingFutureSight{
			TargetRosterIndex: targetRosterIndex,
			TurnsLeft:         turnsLeft,
			Power:             power,
			UserComputed:      statsFromArray(computed),
			UserLevel:         userLevel,
		})
	}
	return out, nil
}

func encodeSide(s *state.Side) string {
	return joinGroup(
		encodeActiveIndices(s.Active),
		encodeRoster(s.Roster),
		encodeConditions(s.Conditions),
		encodeChoiceLock(s.ChoiceLock),
		encodeWishes(s.Wishes),
		encodeFutureSights(s.FutureSights),
	)
}

// decodeSide rebuilds a Side from its encoded blob. The caller supplies id
// since the side-local encoding carries no self-reference (spec §4.8's
// hierarchy nests a side under the top-level record that already names it).
func decodeSide(id state.SideID, blob string) (*state.Side, error) {
	groups := splitGroup(blob)
	if err := expectLen(groups, 6, "side"); err != nil {
		return nil, err
	}

	active, err := decodeActiveIndices(groups[0])
	if err != nil {
		return nil, err
	}
	roster, err := decodeRoster(groups[1])
	if err != nil {
		return nil, err
	}
	conditions, err := decodeConditions(groups[2])
	if err != nil {
		return nil, err
	}
	choiceLock, err := decodeChoiceLock(groups[3])
	if err != nil {
		return nil, err
	}
	wishes, err := decodeWishes(groups[4])
	if err != nil {
		return nil, err
	}
	futureSights, err := decodeFutureSights(groups[5])
	if err != nil {
		return nil, err
	}

	return &state.Side{
		ID:           id,
		Roster:       roster,
		Active:       active,
		Conditions:   conditions,
		ChoiceLock:   choiceLock,
		Wishes:       wishes,
		FutureSights: futureSights,
	}, nil
}
