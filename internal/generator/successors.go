package generator

import (
	"svw.info/elevator/internal/domain"
	"svw.info/elevator/internal/state"
)

// Successors returns the unseen states reachable from s by carrying one or two items one
// floor in direction d. Subsets come singles first, then pairs, each in identifier order.
func (g *Generator) Successors(s *state.State, d domain.Direction) []*state.State {
	target := s.Elevator() + d.Delta()
	if target < 0 || target >= s.NumFloors() {
		return nil
	}
	// nothing left below: going down only wastes moves
	if d == domain.Down && s.EmptyBelow() {
		return nil
	}

	var out []*state.State
	for _, load := range Loads(s.Cargo()) {
		next, err := s.WithMove(target, load...)
		if err != nil {
			continue
		}
		if !g.Memo.Insert(d, next.Key()) {
			continue
		}
		out = append(out, next)
	}
	return out
}

// Expand returns the Up successors of s followed by its Down successors.
func (g *Generator) Expand(s *state.State) []*state.State {
	return append(g.Successors(s, domain.Up), g.Successors(s, domain.Down)...)
}

// Loads lists every set of one or two items from cargo, which must be sorted.
func Loads(cargo []domain.Item) [][]domain.Item {
	out := make([][]domain.Item, 0, len(cargo)*(len(cargo)+1)/2)
	for _, it := range cargo {
		out = append(out, []domain.Item{it})
	}
	for i := 0; i < len(cargo); i++ {
		for j := i + 1; j < len(cargo); j++ {
			out = append(out, []domain.Item{cargo[i], cargo[j]})
		}
	}
	return out
}
