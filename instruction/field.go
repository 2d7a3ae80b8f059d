package instruction

import (
	"fmt"

	"pokebattle/state"
)

// SetWeather overwrites the active weather and its duration/source.
type SetWeather struct {
	New      state.Weather
	NewState state.FieldState

	previous      state.Weather
	previousState state.FieldState
}

func (i *SetWeather) Apply(s *state.State) {
	i.previous, i.previousState = s.Field.Weather, s.Field.WeatherState
	s.Field.Weather, s.Field.WeatherState = i.New, i.NewState
}
func (i *SetWeather) Revert(s *state.State) {
	s.Field.Weather, s.Field.WeatherState = i.previous, i.previousState
}
func (i *SetWeather) Describe() string { return fmt.Sprintf("Set weather to %d", i.New) }

// SetTerrain overwrites the active terrain and its duration/source.
type SetTerrain struct {
	New      state.Terrain
	NewState state.FieldState

	previous      state.Terrain
	previousState state.FieldState
}

func (i *SetTerrain) Apply(s *state.State) {
	i.previous, i.previousState = s.Field.Terrain, s.Field.TerrainState
	s.Field.Terrain, s.Field.TerrainState = i.New, i.NewState
}
func (i *SetTerrain) Revert(s *state.State) {
	s.Field.Terrain, s.Field.TerrainState = i.previous, i.previousState
}
func (i *SetTerrain) Describe() string { return fmt.Sprintf("Set terrain to %d", i.New) }

// SetRoom overwrites a room effect's remaining turn count. Turns == 0 means
// the room is inactive/removed.
type SetRoom struct {
	Kind     state.RoomKind
	Turns    int
	previous int
}

func (i *SetRoom) Apply(s *state.State) {
	i.previous = s.Field.Rooms[i.Kind]
	if i.Turns == 0 {
		delete(s.Field.Rooms, i.Kind)
	} else {
		s.Field.Rooms[i.Kind] = i.Turns
	}
}
func (i *SetRoom) Revert(s *state.State) {
	if i.previous == 0 {
		delete(s.Field.Rooms, i.Kind)
	} else {
		s.Field.Rooms[i.Kind] = i.previous
	}
}
func (i *SetRoom) Describe() string { return fmt.Sprintf("Set room %d to %d turns", i.Kind, i.Turns) }

// SetGravity overwrites the Gravity flag and its remaining duration.
type SetGravity struct {
	New      bool
	NewTurns int

	previous      bool
	previousTurns int
}

func (i *SetGravity) Apply(s *state.State) {
	i.previous, i.previousTurns = s.Field.Gravity, s.Field.GravityTurns
	s.Field.Gravity, s.Field.GravityTurns = i.New, i.NewTurns
}
func (i *SetGravity) Revert(s *state.State) {
	s.Field.Gravity, s.Field.GravityTurns = i.previous, i.previousTurns
}
func (i *SetGravity) Describe() string { return fmt.Sprintf("Set gravity to %v", i.New) }
