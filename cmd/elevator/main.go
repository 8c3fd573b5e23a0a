// Command elevator finds the fewest elevator trips that bring every generator and
// microchip to the top floor without frying a chip.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "elevator v0.3.0"

var (
	// configFile is set by the --config flag.
	configFile string
	// logLevel overrides log_level from the config when set.
	logLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "elevator",
	Short: "Plan elevator trips for generators and microchips",
	Long: `elevator reads a description of floors holding generators and microchips and
finds the minimal number of elevator trips that brings everything to the top floor
without leaving a microchip next to a foreign generator.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: ./elevator.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug|info|warn|error")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(hintCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}
