package state

import (
	"fmt"
	"strings"
)

// String renders the floors top first, one column per item:
//
//	F4  .   .   .   .   .
//	F3  .   .   .   LiG .
//	F2  .   HG  .   .   .
//	F1  E   .   HM  .   LiM
func (s *State) String() string {
	items := s.Items()
	col := make(map[string]int, len(items))
	for i, it := range items {
		col[it.String()] = i
	}
	lines := make([]string, len(s.floors))
	for f := range s.floors {
		tokens := make([]string, 2+len(items))
		tokens[0] = fmt.Sprintf("F%d", f+1)
		tokens[1] = "."
		if f == s.elevator {
			tokens[1] = "E"
		}
		for i := range items {
			tokens[2+i] = "."
		}
		for _, it := range s.floors[f] {
			tokens[2+col[it.String()]] = it.String()
		}
		var b strings.Builder
		for _, t := range tokens {
			fmt.Fprintf(&b, "%-4s", t)
		}
		lines[len(s.floors)-1-f] = strings.TrimRight(b.String(), " ")
	}
	return strings.Join(lines, "\n")
}
