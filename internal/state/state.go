// Package state holds the immutable snapshot of floors and elevator explored by the search.
package state

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"svw.info/elevator/internal/domain"
)

// State is one arrangement of items over the floors plus the elevator position.
// Cost, predecessor and the producing move are lineage only: Key and Equal ignore them.
type State struct {
	floors   [][]domain.Item
	elevator int
	cost     int
	prev     *State
	move     domain.Move
	key      string
}

// New builds an initial state with the elevator on the bottom floor.
func New(floors [][]domain.Item) (*State, error) {
	return NewAt(floors, 0)
}

// NewAt builds an initial state with the elevator on the given floor.
func NewAt(floors [][]domain.Item, elevator int) (*State, error) {
	if len(floors) == 0 {
		return nil, fmt.Errorf("%w: no floors", domain.ErrMalformed)
	}
	if elevator < 0 || elevator >= len(floors) {
		return nil, fmt.Errorf("%w: elevator at %d outside %d floors", domain.ErrMalformed, elevator, len(floors))
	}
	seen := make(map[domain.Item]bool)
	fl := make([][]domain.Item, len(floors))
	for i, f := range floors {
		fl[i] = make([]domain.Item, 0, len(f))
		for _, it := range f {
			if seen[it] {
				return nil, fmt.Errorf("%w: duplicate item %s", domain.ErrMalformed, it)
			}
			seen[it] = true
			fl[i] = append(fl[i], it)
		}
		sortItems(fl[i])
	}
	s := &State{floors: fl, elevator: elevator}
	s.key = s.buildKey()
	return s, nil
}

func sortItems(items []domain.Item) {
	slices.SortFunc(items, func(a, b domain.Item) int { return strings.Compare(a.String(), b.String()) })
}

// NumFloors returns the number of floors.
func (s *State) NumFloors() int { return len(s.floors) }

// Top is the index of the last floor.
func (s *State) Top() int { return len(s.floors) - 1 }

// Elevator returns the floor the elevator is on.
func (s *State) Elevator() int { return s.elevator }

// Cost returns the number of moves taken from the initial state.
func (s *State) Cost() int { return s.cost }

// Prev returns the state this one was derived from, or nil for an initial state.
func (s *State) Prev() *State { return s.prev }

// Move returns the trip that produced this state. It is zero for an initial state.
func (s *State) Move() domain.Move { return s.move }

// Floor returns a copy of the items on floor i, sorted by identifier.
func (s *State) Floor(i int) []domain.Item { return slices.Clone(s.floors[i]) }

// Floors returns a copy of every floor.
func (s *State) Floors() [][]domain.Item {
	out := make([][]domain.Item, len(s.floors))
	for i := range s.floors {
		out[i] = s.Floor(i)
	}
	return out
}

// Count returns the number of items on floor i.
func (s *State) Count(i int) int { return len(s.floors[i]) }

// Cargo returns the items that may ride the elevator: everything on its floor.
func (s *State) Cargo() []domain.Item { return s.Floor(s.elevator) }

// Items returns every item in the instance, sorted by identifier.
func (s *State) Items() []domain.Item {
	var all []domain.Item
	for _, f := range s.floors {
		all = append(all, f...)
	}
	sortItems(all)
	return all
}

// EmptyBelow reports whether every floor under the elevator is empty.
func (s *State) EmptyBelow() bool {
	for i := 0; i < s.elevator; i++ {
		if len(s.floors[i]) > 0 {
			return false
		}
	}
	return true
}

// WithMove carries items from the elevator's floor to an adjacent floor and returns the
// resulting state. The receiver is left untouched.
func (s *State) WithMove(target int, items ...domain.Item) (*State, error) {
	switch {
	case len(items) == 0:
		return nil, fmt.Errorf("%w: empty elevator cannot move", domain.ErrIllegalMove)
	case len(items) > 2:
		return nil, fmt.Errorf("%w: elevator carries at most two items, got %d", domain.ErrIllegalMove, len(items))
	case target < 0 || target >= len(s.floors):
		return nil, fmt.Errorf("%w: floor %d does not exist", domain.ErrIllegalMove, target)
	case target != s.elevator+1 && target != s.elevator-1:
		return nil, fmt.Errorf("%w: floor %d is not adjacent to %d", domain.ErrIllegalMove, target, s.elevator)
	}
	if len(items) == 2 && items[0] == items[1] {
		return nil, fmt.Errorf("%w: %s given twice", domain.ErrIllegalMove, items[0])
	}

	src := s.floors[s.elevator]
	left := make([]domain.Item, 0, len(src))
	moved := 0
	for _, it := range src {
		if slices.Contains(items, it) {
			moved++
			continue
		}
		left = append(left, it)
	}
	if moved != len(items) {
		for _, it := range items {
			if !slices.Contains(src, it) {
				return nil, fmt.Errorf("%w: %s not on floor %d", domain.ErrIllegalMove, it, s.elevator)
			}
		}
	}

	dst := make([]domain.Item, 0, len(s.floors[target])+len(items))
	dst = append(dst, s.floors[target]...)
	dst = append(dst, items...)
	sortItems(dst)

	// untouched floors are shared: states never mutate their slices
	fl := slices.Clone(s.floors)
	fl[s.elevator] = left
	fl[target] = dst

	codes := make([]string, len(items))
	for i, it := range items {
		codes[i] = it.String()
	}
	slices.Sort(codes)

	next := &State{
		floors:   fl,
		elevator: target,
		cost:     s.cost + 1,
		prev:     s,
		move:     domain.Move{From: s.elevator, To: target, Items: codes},
	}
	next.key = next.buildKey()
	return next, nil
}

func (s *State) buildKey() string {
	var b strings.Builder
	b.WriteByte('E')
	b.WriteString(strconv.Itoa(s.elevator))
	for _, f := range s.floors {
		b.WriteByte('|')
		for i, it := range f {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(it.String())
		}
	}
	return b.String()
}

// Key is the canonical structural key: elevator position and sorted floor contents.
func (s *State) Key() string { return s.key }

// Equal compares structure only.
func (s *State) Equal(o *State) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.key == o.key
}

// Path returns the states from the initial one up to and including s.
func (s *State) Path() []*State {
	var path []*State
	for cur := s; cur != nil; cur = cur.prev {
		path = append(path, cur)
	}
	slices.Reverse(path)
	return path
}

// Moves returns the trips along the path to s.
func (s *State) Moves() []domain.Move {
	path := s.Path()
	out := make([]domain.Move, 0, len(path))
	for _, st := range path[1:] {
		out = append(out, st.move)
	}
	return out
}
