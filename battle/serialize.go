package battle

import (
	"pokebattle/serialize"
	"pokebattle/state"
)

// Serialize encodes s as canonical text (spec §6/§4.8, package serialize's
// Text). Thin pass-through so callers driving a battle through this facade
// never need to import package serialize directly.
func Serialize(s *state.State) string { return serialize.Text(s) }

// Deserialize reconstructs a *state.State from text Serialize produced.
func Deserialize(encoded string) (*state.State, error) { return serialize.FromText(encoded) }

// SerializeBinary encodes s as the length-prefixed binary envelope
// (package serialize's Binary).
func SerializeBinary(s *state.State) []byte { return serialize.Binary(s) }

// DeserializeBinary reconstructs a *state.State from bytes SerializeBinary
// produced.
func DeserializeBinary(data []byte) (*state.State, error) { return serialize.FromBinary(data) }
