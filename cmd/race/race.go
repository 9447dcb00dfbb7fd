// Package race implements the `race` subcommand: run N concurrent
// generation workers and keep the first solvable board. Wraps the
// worker-pool progress in the teacher's spinner UX
// (pkg/ui.Spinner, adapted from the example pack's briandowns/spinner
// wrapper), suppressed under --verbose exactly as the teacher's is.
package race

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mines/noguess/pkg/mineout"
	"github.com/mines/noguess/pkg/mineslog"
	"github.com/mines/noguess/pkg/mines"
	"github.com/mines/noguess/pkg/model"
	"github.com/mines/noguess/pkg/ui"
	"github.com/mines/noguess/pkg/workers"
)

var (
	variant    string
	rows       int
	cols       int
	mineCount  int
	spaceCount int
	difficulty int
	seed       string
	outPath    string
	overwrite  bool
)

// GetCommand returns the `race` subcommand. Its worker count comes from
// the persistent --workers/-j flag defined on the root command.
func GetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "race",
		Short: "Generate a board by racing concurrent generation attempts",
		RunE:  run,
	}
	cmd.Flags().StringVar(&variant, "variant", "standard", "standard|chain|offset|offset_puzzle|puzzle|space")
	cmd.Flags().IntVar(&rows, "rows", 16, "board rows")
	cmd.Flags().IntVar(&cols, "cols", 16, "board cols")
	cmd.Flags().IntVar(&mineCount, "mines", 40, "mine count")
	cmd.Flags().IntVar(&spaceCount, "spaces", 0, "space (inert tile) count, for space/offset/puzzle variants")
	cmd.Flags().IntVar(&difficulty, "difficulty", 3, "difficulty, for puzzle variants")
	cmd.Flags().StringVar(&seed, "seed", "", "seed (up to 10 alphanumeric/space characters; empty means generate one)")
	cmd.Flags().StringVar(&outPath, "out", "board.json", "output file path")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "overwrite an existing output file")
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	workersValue, err := cmd.Flags().GetString("workers")
	if err != nil {
		return fmt.Errorf("reading --workers: %w", err)
	}
	n, err := workers.Parse(workersValue)
	if err != nil {
		return fmt.Errorf("invalid --workers value: %w", err)
	}

	v := model.Variant(variant)
	params := model.Params{
		Rows:       rows,
		Cols:       cols,
		MineCount:  mineCount,
		SpaceCount: spaceCount,
		Difficulty: difficulty,
		Start:      model.TilePosition{Row: rows / 2, Col: cols / 2},
	}
	if v == model.Offset || v == model.OffsetPuzzle {
		params.Adjacency = model.StandardAdjacency
	}

	spin := ui.NewSpinner(fmt.Sprintf("racing %d workers for a %s board...", n, v))
	spin.Start()
	result, err := mines.GenerateRace(v, params, seed, n)
	spin.Stop()
	if err != nil {
		return fmt.Errorf("race: %w", err)
	}

	mineslog.Info("raced %d workers to a %s board (%dx%d, %d mines) in %d attempts, seed=%s", n, v, rows, cols, mineCount, result.Attempts, result.Seed)
	if err := mineout.Write(result, outPath, overwrite); err != nil {
		return err
	}
	mineslog.Info("wrote %s", outPath)
	return nil
}
