package battle

import "pokebattle/state"

// StandardSingles is a gen-9 Singles format with no clauses or bans: one
// active Pokémon per side, a 6-member team cap.
func StandardSingles() state.Format {
	return state.NewFormat("standard-singles",
		state.WithGeneration(9),
		state.WithType(state.Singles),
	)
}

// StandardDoubles is a gen-9 Doubles format: two active Pokémon per side.
func StandardDoubles() state.Format {
	return state.NewFormat("standard-doubles",
		state.WithGeneration(9),
		state.WithType(state.Doubles),
	)
}

// VGCSingles is the VGC ruleset's structure (two active slots, four chosen
// from a six-member team at Team Preview — team-size selection itself is a
// BattleBuilder concern, not the Format's) with the Species and Sleep
// clauses both in force, matching the current VGC rule set.
func VGCSingles() state.Format {
	return state.NewFormat("vgc",
		state.WithGeneration(9),
		state.WithType(state.VGC),
		state.WithClause(state.ClauseSpecies),
		state.WithClause(state.ClauseSleep),
	)
}

// OUSingles is a gen-9 Singles format under the OverUsed tier's standard
// clause set: Species Clause, Sleep Clause, Evasion Clause, OHKO Clause.
func OUSingles() state.Format {
	return state.NewFormat("ou",
		state.WithGeneration(9),
		state.WithType(state.Singles),
		state.WithClause(state.ClauseSpecies),
		state.WithClause(state.ClauseSleep),
		state.WithClause(state.ClauseEvasion),
		state.WithClause(state.ClauseOHKO),
	)
}

// Triples is a gen-6-style Triples format: three active Pokémon per side.
// Triples was never supported past generation 6, so this preset pins the
// generation rather than defaulting to 9.
func Triples() state.Format {
	return state.NewFormat("triples",
		state.WithGeneration(6),
		state.WithType(state.Triples),
	)
}
