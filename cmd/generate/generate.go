// Package generate implements the `generate` subcommand: produce one
// board sequentially and write it to a JSON file.
package generate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mines/noguess/pkg/mineout"
	"github.com/mines/noguess/pkg/mineslog"
	"github.com/mines/noguess/pkg/mines"
	"github.com/mines/noguess/pkg/model"
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

// GetCommand returns the `generate` subcommand.
func GetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a single no-guess board",
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

	result, err := mines.Generate(v, params, seed)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	mineslog.Info("generated %s board (%dx%d, %d mines) in %d attempts, seed=%s", v, rows, cols, mineCount, result.Attempts, result.Seed)
	if err := mineout.Write(result, outPath, overwrite); err != nil {
		return err
	}
	mineslog.Info("wrote %s", outPath)
	return nil
}
