package serialize

import (
	"fmt"

	"pokebattle/battleerr"
	"pokebattle/state"
)

// Text renders a battle State as the compact delimited encoding spec.md
// §4.8 describes: format | side A | side B | field (weather, terrain, turn,
// room flags bundled one level deeper, under the same top-level slot).
func Text(s *state.State) string {
	return joinSection(
		encodeFormat(s.Format),
		encodeSide(s.Sides[state.SideA]),
		encodeSide(s.Sides[state.SideB]),
		encodeField(s.Field),
	)
}

// FromText rebuilds a battle State from a Text encoding. The roster, field,
// and format are rebuilt first, then threaded through state.New so the
// ECS world it constructs addresses the exact same *Pokemon values the
// decoded sides hold — the two Side values it returns overwrite state.New's
// default ones afterward, carrying over active line-up, conditions,
// choice locks, and pending wish/future-sight queues that New's default
// construction doesn't know about.
func FromText(encoded string) (*state.State, error) {
	sections := splitSection(encoded)
	if err := expectLen(sections, 4, "state"); err != nil {
		return nil, err
	}

	format, err := decodeFormat(sections[0])
	if err != nil {
		return nil, err
	}
	field, err := decodeField(sections[3])
	if err != nil {
		return nil, err
	}
	sideA, err := decodeSide(state.SideA, sections[1])
	if err != nil {
		return nil, err
	}
	sideB, err := decodeSide(state.SideB, sections[2])
	if err != nil {
		return nil, err
	}

	s := state.New(format, sideA.Roster, sideB.Roster, field.Seed)
	s.Sides[state.SideA] = sideA
	s.Sides[state.SideB] = sideB
	s.Field = field

	if len(sideA.Active) != format.ActivePerSide || len(sideB.Active) != format.ActivePerSide {
		return nil, fmt.Errorf("%w: active line-up length does not match format.ActivePerSide", battleerr.ErrInvariantViolation)
	}
	return s, nil
}
