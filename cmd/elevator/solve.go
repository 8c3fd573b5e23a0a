package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"svw.info/elevator/internal/domain"
	"svw.info/elevator/internal/parser"
	"svw.info/elevator/internal/state"
)

var (
	solvePart    string
	solveReplay  bool
	solveSave    bool
	solveFormat  string
	solveTimeout time.Duration
)

var solveCmd = &cobra.Command{
	Use:   "solve [file]",
	Short: "Find the minimal number of trips",
	Long: `Read the puzzle from file (or stdin) and print the minimal number of elevator
trips. Part two adds the extra items from the config to the first floor.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&solvePart, "part", "both", "1|2|both")
	solveCmd.Flags().BoolVar(&solveReplay, "replay", false, "print every state along the winning path")
	solveCmd.Flags().BoolVar(&solveSave, "save", false, "persist the solutions")
	solveCmd.Flags().StringVar(&solveFormat, "format", "text", "text|json|yaml")
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 0, "search time limit (default: timeout from the config)")
}

func runSolve(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer a.close()

	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	text, err := readPuzzle(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}
	floors, err := parser.ParseText(text)
	if err != nil {
		return err
	}
	name := "stdin"
	if path != "" && path != "-" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	timeout := a.cfg.Timeout
	if solveTimeout > 0 {
		timeout = solveTimeout
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	var sols []*domain.Solution
	switch solvePart {
	case "1", "2":
		part := 1
		if solvePart == "2" {
			part = 2
		}
		sol, _, err := a.uc.SolvePart(ctx, name, floors, part, a.cfg.Extras)
		if err != nil {
			return err
		}
		sols = append(sols, sol)
	case "both":
		both, err := a.uc.SolveBoth(ctx, name, floors, a.cfg.Extras)
		if err != nil {
			return err
		}
		sols = append(sols, both[:]...)
	default:
		return fmt.Errorf("unknown part %q (want 1, 2 or both)", solvePart)
	}

	if solveSave {
		for _, sol := range sols {
			if err := a.uc.Save(ctx, sol); err != nil {
				return fmt.Errorf("save: %w", err)
			}
		}
	}
	return printSolutions(cmd.OutOrStdout(), sols, solveReplay)
}

// printSolutions writes sols in the --format encoding. Text output replays each
// winning path when replay is set.
func printSolutions(w io.Writer, sols []*domain.Solution, replay bool) error {
	switch solveFormat {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(sols)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(sols)
	}
	for _, sol := range sols {
		if !sol.Solved {
			fmt.Fprintf(w, "part %d: unsolvable (%d states explored)\n", sol.Part, sol.Explored)
			continue
		}
		fmt.Fprintf(w, "part %d: %d\n", sol.Part, sol.Cost)
		if sol.ID != "" {
			fmt.Fprintf(w, "  saved as %s\n", sol.ID)
		}
		if replay {
			if err := replaySolution(w, sol); err != nil {
				return err
			}
		}
	}
	return nil
}

// replaySolution rebuilds the states along a solution's moves and prints them.
func replaySolution(w io.Writer, sol *domain.Solution) error {
	floors, err := parser.ParseCodes(sol.Floors)
	if err != nil {
		return err
	}
	s, err := state.New(floors)
	if err != nil {
		return err
	}
	printState(w, s)
	for _, mv := range sol.Moves {
		items := make([]domain.Item, 0, len(mv.Items))
		for _, c := range mv.Items {
			it, err := domain.ParseItem(c)
			if err != nil {
				return err
			}
			items = append(items, it)
		}
		if s, err = s.WithMove(mv.To, items...); err != nil {
			return err
		}
		printState(w, s)
	}
	return nil
}
