package serialize

import "pokebattle/state"

func encodeFieldState(fs state.FieldState) string {
	return joinTuple(itoa(fs.Turns), itoa(int(fs.Source.Side)), itoa(fs.Source.Slot))
}

func decodeFieldState(s string) (state.FieldState, error) {
	var out state.FieldState
	parts := splitTuple(s)
	if err := expectLen(parts, 3, "field state"); err != nil {
		return out, err
	}
	turns, err := atoi(parts[0])
	if err != nil {
		return out, err
	}
	side, err := atoi(parts[1])
	if err != nil {
		return out, err
	}
	slot, err := atoi(parts[2])
	if err != nil {
		return out, err
	}
	out.Turns = turns
	out.Source = state.Position{Side: state.SideID(side), Slot: slot}
	return out, nil
}

func encodeRooms(rooms map[state.RoomKind]int) string {
	var out []string
	for kind := state.RoomTrick; kind <= state.RoomWonder; kind++ {
		if turns, ok := rooms[kind]; ok {
			out = append(out, joinTuple(itoa(int(kind)), itoa(turns)))
		}
	}
	return joinRecords(out)
}

func decodeRooms(s string) (map[state.RoomKind]int, error) {
	out := make(map[state.RoomKind]int)
	for _, rec := range splitRecords(s) {
		parts := splitTuple(rec)
		if err := expectLen(parts, 2, "room entry"); err != nil {
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
		out[state.RoomKind(kind)] = turns
	}
	return out, nil
}

func encodeField(f *state.Field) string {
	return joinFields(
		itoa(int(f.Weather)),
		encodeFieldState(f.WeatherState),
		itoa(int(f.Terrain)),
		encodeFieldState(f.TerrainState),
		itoa(f.Turn),
		btoa(f.Gravity),
		itoa(f.GravityTurns),
		u64toa(f.Seed),
		encodeRooms(f.Rooms),
	)
}

func decodeField(blob string) (*state.Field, error) {
	parts := splitFields(blob)
	if err := expectLen(parts, 9, "field"); err != nil {
		return nil, err
	}

	weather, err := atoi(parts[0])
	if err != nil {
		return nil, err
	}
	weatherState, err := decodeFieldState(parts[1])
	if err != nil {
		return nil, err
	}
	terrain, err := atoi(parts[2])
	if err != nil {
		return nil, err
	}
	terrainState, err := decodeFieldState(parts[3])
	if err != nil {
		return nil, err
	}
	turn, err := atoi(parts[4])
	if err != nil {
		return nil, err
	}
	gravity, err := atob(parts[5])
	if err != nil {
		return nil, err
	}
	gravityTurns, err := atoi(parts[6])
	if err != nil {
		return nil, err
	}
	seed, err := atou64(parts[7])
	if err != nil {
		return nil, err
	}
	rooms, err := decodeRooms(parts[8])
	if err != nil {
		return nil, err
	}

	return &state.Field{
		Weather:      state.Weather(weather),
		WeatherState: weatherState,
		Terrain:      state.Terrain(terrain),
		TerrainState: terrainState,
		Turn:         turn,
		Gravity:      gravity,
		GravityTurns: gravityTurns,
		Seed:         seed,
		Rooms:        rooms,
	}, nil
}
