// Package validator classifies states as finished, fried or safe.
package validator

import (
	"svw.info/elevator/internal/domain"
	"svw.info/elevator/internal/state"
)

// Evaluate reports whether s is finished, has a fried microchip, or can be searched further.
// Only floor contents matter; cost and lineage never change the result.
func Evaluate(s *state.State) domain.Status {
	st, _ := Check(s)
	return st
}

// Check is Evaluate plus the microchips that would be destroyed.
func Check(s *state.State) (domain.Status, []domain.Item) {
	done := true
	for f := 0; f < s.Top(); f++ {
		if s.Count(f) > 0 {
			done = false
			break
		}
	}
	if done {
		return domain.Success, nil
	}

	var fried []domain.Item
	for f := 0; f < s.NumFloors(); f++ {
		fried = append(fried, exposed(s.Floor(f))...)
	}
	if len(fried) > 0 {
		return domain.Fried, fried
	}
	return domain.Safe, nil
}

// exposed returns the microchips on a floor that sit next to a generator without their own.
func exposed(floor []domain.Item) []domain.Item {
	present := make(map[domain.Item]bool, len(floor))
	generators := 0
	for _, it := range floor {
		present[it] = true
		if it.Kind == domain.Generator {
			generators++
		}
	}
	if generators == 0 {
		return nil
	}
	var out []domain.Item
	for _, it := range floor {
		if it.Kind == domain.Microchip && !present[it.Match()] {
			out = append(out, it)
		}
	}
	return out
}
