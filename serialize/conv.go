package serialize

import (
	"fmt"
	"strconv"

	"pokebattle/battleerr"
)

func itoa(n int) string { return strconv.Itoa(n) }

func atoi(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: not an integer: %q", battleerr.ErrFormatViolation, s)
	}
	return n, nil
}

func u64toa(n uint64) string { return strconv.FormatUint(n, 10) }

func atou64(s string) (uint64, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: not an unsigned integer: %q", battleerr.ErrFormatViolation, s)
	}
	return n, nil
}

func btoa(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func atob(s string) (bool, error) {
	switch s {
	case "0":
		return false, nil
	case "1":
		return true, nil
	default:
		return false, fmt.Errorf("%w: not a boolean flag: %q", battleerr.ErrFormatViolation, s)
	}
}

func statsToTuple(s [6]int) string {
	out := make([]string, 6)
	for i, v := range s {
		out[i] = itoa(v)
	}
	return joinTuple(out...)
}

func tupleToStats(s string) ([6]int, error) {
	var out [6]int
	parts := splitTuple(s)
	if len(parts) != 6 {
		return out, fmt.Errorf("%w: expected 6 stat values, got %d", battleerr.ErrFormatViolation, len(parts))
	}
	for i, p := range parts {
		v, err := atoi(p)
		if err != nil {
			return out, err
		}
		out[i] = v
	}
	return out, nil
}

func expectLen(parts []string, n int, what string) error {
	if len(parts) != n {
		return fmt.Errorf("%w: %s expected %d fields, got %d", battleerr.ErrFormatViolation, what, n, len(parts))
	}
	return nil
}
