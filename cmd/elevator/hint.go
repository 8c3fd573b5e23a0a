package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/elevator/internal/parser"
)

var hintCmd = &cobra.Command{
	Use:   "hint [file]",
	Short: "Print the first trip of a cheapest plan",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
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
		ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.Timeout)
		defer cancel()

		mv, ok, err := a.uc.Hint(ctx, floors, 0)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "no move: already done or unsolvable")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), mv)
		return nil
	},
}
