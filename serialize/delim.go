// Package serialize implements the deterministic, lossless encodings
// spec.md §4.8 describes for a battle State: a compact delimited text
// format and a binary format, with deserialize(serialize(s)) == s for every
// well-formed state.
//
// Grounded on the teacher's fixed-format string builders (common/stats.go's
// DisplayString methods assemble a single line from a struct's fields with
// fmt.Sprintln) generalized to the spec's four-depth hierarchy — no teacher
// file does bespoke delimited serialization (see DESIGN.md C8), so this
// package is a direct, terse writer in that same register rather than a
// pulled-in codec library.
package serialize

import "strings"

// The four nesting depths spec.md §4.8 requires map onto four ASCII
// separator bytes that never occur in normalized IDs or decimal numbers, so
// splitting is unambiguous without escaping.
const (
	sectionSep = "\x1c" // top level: format | side A | side B | field
	groupSep   = "\x1d" // within a side: active indices | roster | conditions | ...
	recordSep  = "\x1e" // within a group: one list element per record
	fieldSep   = "\x1f" // within a record: one struct field per entry
)

// A handful of records (moveset, stat blocks, volatiles) nest one level
// deeper than fieldSep; plain characters that never appear in a normalized
// ID or a decimal integer are used there instead of a fifth control byte.
const (
	listSep  = "/"
	tupleSep = ","
)

func joinSection(parts ...string) string { return strings.Join(parts, sectionSep) }
func splitSection(s string) []string     { return strings.Split(s, sectionSep) }

func joinGroup(parts ...string) string { return strings.Join(parts, groupSep) }
func splitGroup(s string) []string     { return strings.Split(s, groupSep) }

func joinRecords(parts []string) string { return strings.Join(parts, recordSep) }
func splitRecords(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, recordSep)
}

func joinFields(parts ...string) string { return strings.Join(parts, fieldSep) }
func splitFields(s string) []string     { return strings.Split(s, fieldSep) }

func joinList(parts []string) string { return strings.Join(parts, listSep) }
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, listSep)
}

func joinTuple(parts ...string) string { return strings.Join(parts, tupleSep) }
func splitTuple(s string) []string     { return strings.Split(s, tupleSep) }
