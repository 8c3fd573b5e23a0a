package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"svw.info/elevator/internal/state"
)

var elevatorRow = color.New(color.FgGreen, color.Bold)

// printState prints the scene header and the floors, top first, with the elevator's floor
// highlighted. Colour is off when stdout is not a terminal.
func printState(w io.Writer, s *state.State) {
	header := fmt.Sprintf("-- scene #%d", s.Cost())
	if mv := s.Move(); len(mv.Items) > 0 {
		header += " [" + mv.String() + "]"
	}
	fmt.Fprintln(w, header+" --")
	lines := strings.Split(s.String(), "\n")
	for i, line := range lines {
		if s.NumFloors()-1-i == s.Elevator() {
			elevatorRow.Fprintln(w, line)
			continue
		}
		fmt.Fprintln(w, line)
	}
}
