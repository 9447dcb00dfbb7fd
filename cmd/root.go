package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mines/noguess/cmd/generate"
	"github.com/mines/noguess/cmd/race"
	"github.com/mines/noguess/cmd/render"
	"github.com/mines/noguess/pkg/mineslog"
	"github.com/mines/noguess/pkg/workers"
)

var (
	// Global flags
	verbose     bool
	workersFlag string
	workingDir  string

	// WorkersCount is the worker count parsed from --workers by the root
	// command; the race subcommand parses the flag on its own.
	WorkersCount int
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "noguess",
	Short: "No-guess Minesweeper board generator",
	Long: `noguess generates Minesweeper boards that are solvable by logical
deduction alone, with no 50/50 guesses required.

It provides commands for:
  - Generating a single board for a given variant and seed
  - Racing multiple concurrent generation attempts for faster results
  - Rendering a generated board as ASCII/Unicode for inspection`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		mineslog.VerboseEnabled = verbose

		count, err := workers.Parse(workersFlag)
		if err != nil {
			return fmt.Errorf("invalid --workers value: %w", err)
		}
		WorkersCount = count
		mineslog.Verbose("Workers: %d (from flag: %s)", WorkersCount, workersFlag)

		if workingDir != "" {
			mineslog.Verbose("Changing working directory to: %s", workingDir)
			if err := os.Chdir(workingDir); err != nil {
				return fmt.Errorf("failed to change working directory: %w", err)
			}
		}

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen
// once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output for debugging")
	rootCmd.PersistentFlags().StringVarP(&workersFlag, "workers", "j", "half", "number of concurrent workers (integer, 'half', or 'full')")
	rootCmd.PersistentFlags().StringVarP(&workingDir, "working-dir", "w", "", "working directory for output files (default: current directory)")

	rootCmd.AddCommand(generate.GetCommand())
	rootCmd.AddCommand(race.GetCommand())
	rootCmd.AddCommand(render.GetCommand())
}
