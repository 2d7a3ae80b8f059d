package state

import "pokebattle/ids"

// FormatType is the closed set of battle structures.
type FormatType int

const (
	Singles FormatType = iota
	Doubles
	VGC
	Triples
)

// defaultActivePerSide returns the canonical active-Pokémon count for a
// format type, used by WithType when the caller doesn't override it.
func (t FormatType) defaultActivePerSide() int {
	switch t {
	case Singles:
		return 1
	case Doubles, VGC:
		return 2
	case Triples:
		return 3
	default:
		return 1
	}
}

// Clause is the closed set of format clauses spec.md §3 names.
type Clause int

const (
	ClauseSleep Clause = iota
	ClauseSpecies
	ClauseEvasion
	ClauseOHKO
)

// BanList holds the normalized IDs a format's clauses or explicit bans
// exclude. Constructing a BattleBuilder with a banned species/move/item/
// ability fails with battleerr.ErrFormatViolation (spec §7).
type BanList struct {
	Species  map[ids.Species]struct{}
	Moves    map[ids.Move]struct{}
	Items    map[ids.Item]struct{}
	Abilities map[ids.Ability]struct{}
}

func newBanList() BanList {
	return BanList{
		Species:   make(map[ids.Species]struct{}),
		Moves:     make(map[ids.Move]struct{}),
		Items:     make(map[ids.Item]struct{}),
		Abilities: make(map[ids.Ability]struct{}),
	}
}

// Format is the declarative bundle governing one battle: generation,
// structure, team/active sizes, clauses, and bans (spec §3).
type Format struct {
	Name          string
	Generation    int
	Type          FormatType
	TeamSize      int
	ActivePerSide int
	Clauses       []Clause
	Bans          BanList
}

// Option configures a Format under construction, following the teacher's
// small-constructor style (config/config.go's flat tunables, generalized
// here to a runtime value since one Format exists per battle rather than
// once at compile time — see SPEC_FULL.md §4.10).
type Option func(*Format)

// WithGeneration overrides the generation (1-9).
func WithGeneration(gen int) Option { return func(f *Format) { f.Generation = gen } }

// WithType overrides the format structure and recomputes ActivePerSide
// unless WithActivePerSide is also given later in the option list.
func WithType(t FormatType) Option {
	return func(f *Format) {
		f.Type = t
		f.ActivePerSide = t.defaultActivePerSide()
	}
}

// WithActivePerSide overrides the active-Pokémon count directly.
func WithActivePerSide(n int) Option { return func(f *Format) { f.ActivePerSide = n } }

// WithTeamSize overrides the roster size cap (default 6).
func WithTeamSize(n int) Option { return func(f *Format) { f.TeamSize = n } }

// WithClause appends a clause.
func WithClause(c Clause) Option { return func(f *Format) { f.Clauses = append(f.Clauses, c) } }

// WithBannedSpecies bans a species by normalized ID.
func WithBannedSpecies(s ids.Species) Option {
	return func(f *Format) { f.Bans.Species[s] = struct{}{} }
}

// WithBannedMove bans a move by normalized ID.
func WithBannedMove(m ids.Move) Option {
	return func(f *Format) { f.Bans.Moves[m] = struct{}{} }
}

// WithBannedItem bans an item by normalized ID.
func WithBannedItem(i ids.Item) Option {
	return func(f *Format) { f.Bans.Items[i] = struct{}{} }
}

// WithBannedAbility bans an ability by normalized ID.
func WithBannedAbility(a ids.Ability) Option {
	return func(f *Format) { f.Bans.Abilities[a] = struct{}{} }
}

// NewFormat builds a Format from options, defaulting to a gen-9 singles
// format with a 6-Pokémon team size.
func NewFormat(name string, opts ...Option) Format {
	f := Format{
		Name:          name,
		Generation:    9,
		Type:          Singles,
		TeamSize:      6,
		ActivePerSide: 1,
		Bans:          newBanList(),
	}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// HasClause reports whether c is declared for this format.
func (f Format) HasClause(c Clause) bool {
	for _, x := range f.Clauses {
		if x == c {
			return true
		}
	}
	return false
}
