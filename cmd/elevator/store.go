package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"svw.info/elevator/internal/domain"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved solutions",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer a.close()

		ms, err := a.uc.List(cmd.Context())
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tPART\tCOST\tCREATED")
		for _, m := range ms {
			cost := fmt.Sprint(m.Cost)
			if !m.Solved {
				cost = "-"
			}
			created := time.Unix(0, m.CreatedAt).Format(time.RFC3339)
			fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", m.ID, m.Name, m.Part, cost, created)
		}
		return tw.Flush()
	},
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a saved solution",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer a.close()

		sol, err := a.uc.Load(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("load %s: %w", args[0], err)
		}
		return printSolutions(cmd.OutOrStdout(), []*domain.Solution{sol}, true)
	},
}
