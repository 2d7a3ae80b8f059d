package serialize

import (
	"sort"

	"pokebattle/ids"
	"pokebattle/state"
)

func sortedStrings(ss []string) []string {
	sort.Strings(ss)
	return ss
}

func encodeSpeciesSet(set map[ids.Species]struct{}) string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s.String())
	}
	return joinList(sortedStrings(out))
}

func encodeMoveSet(set map[ids.Move]struct{}) string {
	out := make([]string, 0, len(set))
	for m := range set {
		out = append(out, m.String())
	}
	return joinList(sortedStrings(out))
}

func encodeItemSet(set map[ids.Item]struct{}) string {
	out := make([]string, 0, len(set))
	for i := range set {
		out = append(out, i.String())
	}
	return joinList(sortedStrings(out))
}

func encodeAbilitySet(set map[ids.Ability]struct{}) string {
	out := make([]string, 0, len(set))
	for a := range set {
		out = append(out, a.String())
	}
	return joinList(sortedStrings(out))
}

func encodeClauses(clauses []state.Clause) string {
	out := make([]string, len(clauses))
	for i, c := range clauses {
		out[i] = itoa(int(c))
	}
	return joinList(out)
}

func decodeClauses(s string) ([]state.Clause, error) {
	var out []state.Clause
	for _, p := range splitList(s) {
		v, err := atoi(p)
		if err != nil {
			return nil, err
		}
		out = append(out, state.Clause(v))
	}
	return out, nil
}

func encodeFormat(f state.Format) string {
	return joinFields(
		f.Name,
		itoa(f.Generation),
		itoa(int(f.Type)),
		itoa(f.TeamSize),
		itoa(f.ActivePerSide),
		encodeClauses(f.Clauses),
		encodeSpeciesSet(f.Bans.Species),
		encodeMoveSet(f.Bans.Moves),
		encodeItemSet(f.Bans.Items),
		encodeAbilitySet(f.Bans.Abilities),
	)
}

func decodeFormat(blob string) (state.Format, error) {
	parts := splitFields(blob)
	if err := expectLen(parts, 10, "format"); err != nil {
		return state.Format{}, err
	}

	generation, err := atoi(parts[1])
	if err != nil {
		return state.Format{}, err
	}
	formatType, err := atoi(parts[2])
	if err != nil {
		return state.Format{}, err
	}
	teamSize, err := atoi(parts[3])
	if err != nil {
		return state.Format{}, err
	}
	activePerSide, err := atoi(parts[4])
	if err != nil {
		return state.Format{}, err
	}
	clauses, err := decodeClauses(parts[5])
	if err != nil {
		return state.Format{}, err
	}

	opts := []state.Option{
		state.WithGeneration(generation),
		state.WithActivePerSide(activePerSide),
		state.WithTeamSize(teamSize),
	}
	for _, c := range clauses {
		opts = append(opts, state.WithClause(c))
	}
	for _, s := range splitList(parts[6]) {
		opts = append(opts, state.WithBannedSpecies(ids.NewSpecies(s)))
	}
	for _, m := range splitList(parts[7]) {
		opts = append(opts, state.WithBannedMove(ids.NewMove(m)))
	}
	for _, i := range splitList(parts[8]) {
		opts = append(opts, state.WithBannedItem(ids.NewItem(i)))
	}
	for _, a := range splitList(parts[9]) {
		opts = append(opts, state.WithBannedAbility(ids.NewAbility(a)))
	}

	f := state.NewFormat(parts[0], opts...)
	f.Type = state.FormatType(formatType)
	return f, nil
}
