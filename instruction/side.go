package instruction

import (
	"fmt"

	"pokebattle/state"
)

// SetSideCondition adds, updates, or removes one side condition entry.
// Remove == true clears the entry; otherwise New replaces whatever was
// there (used both for fresh application and for per-turn duration
// countdown, so a single instruction type covers every mutation named in
// spec §4.3 for side conditions).
type SetSideCondition struct {
	Side      state.SideID
	Kind      state.SideCondition
	Remove    bool
	New       state.ConditionState

	previouslyPresent bool
	previous          state.ConditionState
}

func (i *SetSideCondition) Apply(s *state.State) {
	side := s.Side(i.Side)
	if existing, ok := side.Conditions[i.Kind]; ok {
		i.previouslyPresent = true
		i.previous = *existing
	}
	if i.Remove {
		delete(side.Conditions, i.Kind)
	} else {
		v := i.New
		side.Conditions[i.Kind] = &v
	}
}
func (i *SetSideCondition) Revert(s *state.State) {
	side := s.Side(i.Side)
	if i.previouslyPresent {
		v := i.previous
		side.Conditions[i.Kind] = &v
	} else {
		delete(side.Conditions, i.Kind)
	}
}
func (i *SetSideCondition) Describe() string {
	if i.Remove {
		return fmt.Sprintf("Remove side condition %d from side %s", i.Kind, i.Side)
	}
	return fmt.Sprintf("Set side condition %d on side %s (layers=%d, turns=%d)", i.Kind, i.Side, i.New.Layers, i.New.Turns)
}

// PushWish appends a pending Wish to Side.Wishes. Removing a resolved Wish
// is PopWish's job.
type PushWish struct {
	Side  state.SideID
	New   state.PendingWish

	pushed bool
}

func (i *PushWish) Apply(s *state.State) {
	side := s.Side(i.Side)
	v := i.New
	side.Wishes = append(side.Wishes, &v)
	i.pushed = true
}
func (i *PushWish) Revert(s *state.State) {
	if !i.pushed {
		return
	}
	side := s.Side(i.Side)
	side.Wishes = side.Wishes[:len(side.Wishes)-1]
}
func (i *PushWish) Describe() string {
	return fmt.Sprintf("Queue Wish on side %s for roster#%d in %d turns", i.Side, i.New.RosterIndex, i.New.TurnsLeft)
}

// PopWish removes the Wish at Index (its countdown reached zero and it
// resolved, or its target is no longer valid).
type PopWish struct {
	Side  state.SideID
	Index int

	removed *state.PendingWish
}

func (i *PopWish) Apply(s *state.State) {
	side := s.Side(i.Side)
	i.removed = side.Wishes[i.Index]
	side.Wishes = append(side.Wishes[:i.Index:i.Index], side.Wishes[i.Index+1:]...)
}
func (i *PopWish) Revert(s *state.State) {
	side := s.Side(i.Side)
	tail := append([]*state.PendingWish{i.removed}, side.Wishes[i.Index:]...)
	side.Wishes = append(side.Wishes[:i.Index], tail...)
}
func (i *PopWish) Describe() string {
	return fmt.Sprintf("Resolve Wish #%d on side %s", i.Index, i.Side)
}

// DecrementWishTurns counts down every queued Wish on a side by one turn
// (end-of-turn bookkeeping; resolution/removal is a separate PopWish once a
// counter reaches zero).
type DecrementWishTurns struct {
	Side state.SideID

	previous []int
}

func (i *DecrementWishTurns) Apply(s *state.State) {
	side := s.Side(i.Side)
	i.previous = make([]int, len(side.Wishes))
	for idx, w := range side.Wishes {
		i.previous[idx] = w.TurnsLeft
		w.TurnsLeft--
	}
}
func (i *DecrementWishTurns) Revert(s *state.State) {
	side := s.Side(i.Side)
	for idx, w := range side.Wishes {
		w.TurnsLeft = i.previous[idx]
	}
}
func (i *DecrementWishTurns) Describe() string {
	return fmt.Sprintf("Decrement Wish turns on side %s", i.Side)
}

// PushFutureSight queues a delayed attack against a roster slot (Future
// Sight, Doom Desire).
type PushFutureSight struct {
	Side state.SideID
	New  state.PendingFutureSight

	pushed bool
}

func (i *PushFutureSight) Apply(s *state.State) {
	side := s.Side(i.Side)
	v := i.New
	side.FutureSights = append(side.FutureSights, &v)
	i.pushed = true
}
func (i *PushFutureSight) Revert(s *state.State) {
	if !i.pushed {
		return
	}
	side := s.Side(i.Side)
	side.FutureSights = side.FutureSights[:len(side.FutureSights)-1]
}
func (i *PushFutureSight) Describe() string {
	return fmt.Sprintf("Queue Future Sight on side %s against roster#%d in %d turns", i.Side, i.New.TargetRosterIndex, i.New.TurnsLeft)
}

// PopFutureSight removes the queued Future Sight at Index (its countdown
// reached zero and it resolved).
type PopFutureSight struct {
	Side  state.SideID
	Index int

	removed *state.PendingFutureSight
}

func (i *PopFutureSight) Apply(s *state.State) {
	side := s.Side(i.Side)
	i.removed = side.FutureSights[i.Index]
	side.FutureSights = append(side.FutureSights[:i.Index:i.Index], side.FutureSights[i.Index+1:]...)
}
func (i *PopFutureSight) Revert(s *state.State) {
	side := s.Side(i.Side)
	tail := append([]*state.PendingFutureSight{i.removed}, side.FutureSights[i.Index:]...)
	side.FutureSights = append(side.FutureSights[:i.Index], tail...)
}
func (i *PopFutureSight) Describe() string {
	return fmt.Sprintf("Resolve Future Sight #%d on side %s", i.Index, i.Side)
}

// DecrementFutureSightTurns counts down every queued Future Sight on a side
// by one turn.
type DecrementFutureSightTurns struct {
	Side state.SideID

	previous []int
}

func (i *DecrementFutureSightTurns) Apply(s *state.State) {
	side := s.Side(i.Side)
	i.previous = make([]int, len(side.FutureSights))
	for idx, f := range side.FutureSights {
		i.previous[idx] = f.TurnsLeft
		f.TurnsLeft--
	}
}
func (i *DecrementFutureSightTurns) Revert(s *state.State) {
	side := s.Side(i.Side)
	for idx, f := range side.FutureSights {
		f.TurnsLeft = i.previous[idx]
	}
}
func (i *DecrementFutureSightTurns) Describe() string {
	return fmt.Sprintf("Decrement Future Sight turns on side %s", i.Side)
}
