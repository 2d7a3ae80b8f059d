// Package effect implements the composable move-effect builders spec.md
// §4.6 names. Every composer accepts a Context (state, move data, user/
// target positions, generation mechanics) and returns the InstructionSets
// that represent every outcome branch a caller must weigh.
//
// Grounded on tactical/perks/behaviors.go's small named-behavior-function
// style (riposteCounterMod, lifestealPostDamage, stoneWallDamageMod, …)
// keyed through tactical/perks/registry.go's map-based dispatch, and
// tactical/squads/squadabilities.go's CheckAndTriggerAbilities pattern of
// walking declared ability data and invoking the matching hook — both are
// exactly spec §4.6/§9's "small composable functions keyed in the registry
// over a polymorphic type hierarchy" applied to move data instead of perks.
package effect

import (
	"math/rand"

	"pokebattle/calc"
	"pokebattle/ids"
	"pokebattle/instruction"
	"pokebattle/state"
	"pokebattle/target"
)

// Category is a move's damage class.
type Category int

const (
	Physical Category = iota
	Special
	Status
)

// Secondary describes a move's chance-based extra effect (status, stat
// change, flinch) applied after the primary effect resolves.
type Secondary struct {
	Chance        float64 // 0-1; 0 means no secondary effect
	Status        state.MajorStatus
	HasVolatile   bool
	Volatile      state.VolatileKind
	StatChanges   map[state.StatIndex]int
	AppliesToUser bool // Volt Tackle's recoil-adjacent "boosts user" style secondaries
}

// MoveData is the declarative description a data repository would hand the
// registry for one move (spec §4.9's "context struct carrying … move
// data"). It carries only the fields the composer set in this package
// actually consumes.
type MoveData struct {
	ID         ids.Move
	Type       ids.Type
	Category   Category
	Power      int
	Accuracy   float64 // 0 = never misses
	Priority   int
	TargetCat  target.Category
	Contact    bool
	Sound      bool
	CritStage  int
	Secondary  *Secondary

	// StatOverride swaps which stat reads as offense/defense for the
	// handful of moves that don't use the category's usual pairing (Body
	// Press, Foul Play, Psyshock/Psystrike). Zero value is
	// calc.NormalOffenseDefense.
	StatOverride calc.StatOverride
}

// Context is the full input a Composer needs to produce InstructionSets.
type Context struct {
	State     *state.State
	Mechanics calc.GenerationMechanics
	Chart     calc.TypeChart
	User      state.Position
	Targets   []state.Position
	Move      MoveData
	Rand      *rand.Rand
}

// NewContext builds a Context from a battle state and move data, deriving a
// deterministic RNG from the field's seed (spec §5 "deterministic RNG
// seed").
func NewContext(s *state.State, user state.Position, targets []state.Position, move MoveData) Context {
	gen := s.Format.Generation
	return Context{
		State:     s,
		Mechanics: calc.ForGeneration(gen),
		Chart:     calc.StandardChart(gen),
		User:      user,
		Targets:   targets,
		Move:      move,
		Rand:      rand.New(rand.NewSource(int64(s.Field.Seed))),
	}
}

// Composer produces every outcome branch for one move use against already-
// resolved targets (spec §4.6).
type Composer func(ctx Context) []instruction.InstructionSet

// userMon/targetMon are small helpers every composer in this package uses.
func (ctx Context) userMon() *state.Pokemon   { return ctx.State.PokemonAt(ctx.User) }
func (ctx Context) targetMon(pos state.Position) *state.Pokemon { return ctx.State.PokemonAt(pos) }

// certain returns a single-branch, probability-1 InstructionSet — the
// common case for composers with no chance-based split.
func certain(ins ...instruction.Instruction) []instruction.InstructionSet {
	return []instruction.InstructionSet{{Probability: 1, Instructions: ins}}
}
