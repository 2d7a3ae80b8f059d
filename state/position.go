package state

import "fmt"

// SideID names one of the two battling sides. Every instruction and every
// targeting decision names positions explicitly through a SideID+slot pair;
// nothing in this package assumes an implicit "the opponent" (spec.md §9).
type SideID uint8

const (
	SideA SideID = iota
	SideB
)

// Other returns the opposing SideID.
func (s SideID) Other() SideID {
	if s == SideA {
		return SideB
	}
	return SideA
}

func (s SideID) String() string {
	if s == SideA {
		return "A"
	}
	return "B"
}

// Position names a single battle slot: a side and a slot index within that
// side's active line, in [0, Format.ActivePerSide).
type Position struct {
	Side SideID
	Slot int
}

func (p Position) String() string { return fmt.Sprintf("(%s,%d)", p.Side, p.Slot) }

// Less gives Position a total order, used to keep instruction output and
// targeting lists deterministic regardless of map iteration order.
func (p Position) Less(o Position) bool {
	if p.Side != o.Side {
		return p.Side < o.Side
	}
	return p.Slot < o.Slot
}
