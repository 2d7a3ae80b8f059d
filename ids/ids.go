// Package ids provides typed, normalized identifiers for every entity the
// battle engine looks up against the external game-data repository:
// species, moves, items, abilities, types, and stats.
//
// Normalization is the single site where raw strings become identifiers.
// Every other package compares and hashes these typed IDs, never raw
// strings, per spec.md §4.1/§9.
package ids

import "strings"

// Species identifies a Pokémon species.
type Species struct{ norm string }

// Move identifies a move.
type Move struct{ norm string }

// Item identifies a held item.
type Item struct{ norm string }

// Ability identifies an ability.
type Ability struct{ norm string }

// Type identifies an elemental type.
type Type struct{ norm string }

// Stat identifies one of the seven battle stats.
type Stat struct{ norm string }

// Stat constants cover the closed set of stats stages apply to.
var (
	StatAtk = Stat{"atk"}
	StatDef = Stat{"def"}
	StatSpA = Stat{"spa"}
	StatSpD = Stat{"spd"}
	StatSpe = Stat{"spe"}
	StatAcc = Stat{"acc"}
	StatEva = Stat{"eva"}
	StatHP  = Stat{"hp"} // not stageable, used for base/computed stat lookups only
)

// NewSpecies normalizes raw and returns the typed Species ID.
func NewSpecies(raw string) Species { return Species{normalize(raw)} }

// NewMove normalizes raw and returns the typed Move ID.
func NewMove(raw string) Move { return Move{normalize(raw)} }

// NewItem normalizes raw and returns the typed Item ID.
func NewItem(raw string) Item { return Item{normalize(raw)} }

// NewAbility normalizes raw and returns the typed Ability ID.
func NewAbility(raw string) Ability { return Ability{normalize(raw)} }

// NewType normalizes raw and returns the typed Type ID.
func NewType(raw string) Type { return Type{normalize(raw)} }

// NewStat normalizes raw and returns the typed Stat ID. Callers wanting one
// of the seven well-known stages should prefer the Stat* constants.
func NewStat(raw string) Stat { return Stat{normalize(raw)} }

func (s Species) String() string { return s.norm }
func (m Move) String() string    { return m.norm }
func (i Item) String() string    { return i.norm }
func (a Ability) String() string { return a.norm }
func (t Type) String() string    { return t.norm }
func (s Stat) String() string    { return s.norm }

// IsZero reports whether the ID was never constructed through New*, i.e.
// carries no species/move/item/ability. Useful for optional fields like
// Pokemon.Item.
func (s Species) IsZero() bool { return s.norm == "" }
func (m Move) IsZero() bool    { return m.norm == "" }
func (i Item) IsZero() bool    { return i.norm == "" }
func (a Ability) IsZero() bool { return a.norm == "" }
func (t Type) IsZero() bool    { return t.norm == "" }

// diacriticFold covers the small, closed set of accented characters that
// appear in Pokémon species/move names (e.g. Flabébé, Farfetch'd already
// loses its apostrophe via the strip pass below).
var diacriticFold = strings.NewReplacer(
	"é", "e", "É", "e",
	"è", "e", "È", "e",
	"ê", "e", "Ê", "e",
	"ü", "u", "Ü", "u",
	"ō", "o", "Ō", "o",
	"♀", "f", "♂", "m",
)

// normalize is the single normalization site: lowercase, fold diacritics,
// then strip spaces, hyphens, apostrophes, and periods.
func normalize(raw string) string {
	s := diacriticFold.Replace(raw)
	s = strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case ' ', '-', '\'', '.', '’', '_':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
