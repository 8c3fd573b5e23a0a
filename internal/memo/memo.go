// Package memo remembers which states a search has already produced, per move direction.
package memo

import "svw.info/elevator/internal/domain"

// Memo holds one key set per direction. It belongs to a single search and is not safe for
// concurrent use.
type Memo struct {
	up   map[string]struct{}
	down map[string]struct{}
}

func New() *Memo {
	return &Memo{up: make(map[string]struct{}), down: make(map[string]struct{})}
}

func (m *Memo) set(d domain.Direction) map[string]struct{} {
	if d == domain.Down {
		return m.down
	}
	return m.up
}

// Contains reports whether key was recorded for direction d.
func (m *Memo) Contains(d domain.Direction, key string) bool {
	_, ok := m.set(d)[key]
	return ok
}

// Insert records key for direction d and reports whether it was new.
func (m *Memo) Insert(d domain.Direction, key string) bool {
	s := m.set(d)
	if _, ok := s[key]; ok {
		return false
	}
	s[key] = struct{}{}
	return true
}

// Len returns the number of keys recorded for direction d.
func (m *Memo) Len(d domain.Direction) int { return len(m.set(d)) }

// Reset forgets everything.
func (m *Memo) Reset() {
	clear(m.up)
	clear(m.down)
}
