// Package genloop runs the generator/solver retry loop for the
// Standard, Chain, Space, and Offset variants (spec.md §4.F), grounded
// on original_source/MainPrograms/BoardGeneratorPrograms/BoardGenerator.py
// generate_no_guess_board and the retry/circuit-breaker shape of
// pkg/generator/generator.go's generateSingleLevel in the example pack.
package genloop

import (
	"fmt"

	"github.com/mines/noguess/pkg/boardgen"
	"github.com/mines/noguess/pkg/mineserr"
	"github.com/mines/noguess/pkg/mineslog"
	"github.com/mines/noguess/pkg/model"
	"github.com/mines/noguess/pkg/rng"
	"github.com/mines/noguess/pkg/solver"
)

const (
	maxAttempts         = 10000
	resetCadence        = 3
	progressLogInterval = 100
)

// Config drives a single generation run.
type Config struct {
	Variant     model.Variant
	Params      model.Params
	Seed        string
	WorkerIndex int
	// Cancel, when non-nil, is polled at the top of every outer
	// iteration and again right after solving; a true result aborts the
	// run with mineserr.ErrCancelled (race controller support).
	Cancel func() bool
}

// Run executes the count/reset-cadence generation loop until a solvable
// board is found, the attempt budget is exhausted, or Cancel fires.
func Run(cfg Config) (model.Result, error) {
	p := cfg.Params
	if p.Rows <= 0 || p.Cols <= 0 || p.MineCount <= 0 {
		return model.Result{}, fmt.Errorf("rows=%d cols=%d mines=%d: %w", p.Rows, p.Cols, p.MineCount, mineserr.ErrInvalidParameters)
	}

	d := boardgen.AdjacencyFor(cfg.Variant, p.Adjacency)
	start := p.Start
	safeZone := boardgen.SafeZone(start, d, p.Rows, p.Cols)

	available := p.Rows*p.Cols - len(safeZone)
	if p.MineCount+p.SpaceCount > available {
		return model.Result{}, fmt.Errorf("mine+space count %d exceeds the %d tiles available outside the start zone: %w", p.MineCount+p.SpaceCount, available, mineserr.ErrInfeasible)
	}

	var includesMines []model.TilePosition
	var priorSpaces []model.TilePosition
	// resetCount tracks partial resets since the last full reset; a full
	// reset fires once it reaches resetCadence (three partial resets
	// followed by one full reset), mirroring generate_no_guess_board's
	// count/count==3/count=0 cycle.
	resetCount := 0

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if cfg.Cancel != nil && cfg.Cancel() {
			return model.Result{}, mineserr.ErrCancelled
		}
		if attempt%progressLogInterval == 0 {
			mineslog.Verbose("worker %d: attempt %d/%d for %s board %dx%d", cfg.WorkerIndex, attempt, maxAttempts, cfg.Variant, p.Rows, p.Cols)
		}

		source := rng.New(cfg.Seed, cfg.WorkerIndex*maxAttempts+attempt)

		var board *model.Board
		var mines, spaces map[model.TilePosition]bool

		switch cfg.Variant {
		case model.Standard:
			board, mines = boardgen.Standard(p.Rows, p.Cols, p.MineCount, d, safeZone, includesMines, source)
		case model.Chain:
			board, mines = boardgen.Chain(p.Rows, p.Cols, p.MineCount, safeZone, includesMines, source)
		case model.Space:
			board, mines, spaces = boardgen.Space(p.Rows, p.Cols, p.MineCount, p.SpaceCount, d, safeZone, includesMines, priorSpaces, source)
		case model.Offset:
			board, mines, spaces = boardgen.Offset(p.Rows, p.Cols, p.MineCount, p.SpaceCount, d, safeZone, includesMines, priorSpaces, source)
		default:
			return model.Result{}, fmt.Errorf("genloop does not handle variant %s: %w", cfg.Variant, mineserr.ErrInvalidParameters)
		}

		slv := solver.New(board, cfg.Variant, d)
		slv.SetTotalMines(p.MineCount)
		slv.SeedSpaces(spaces)
		slv.RevealSet(safeZone)

		solved := slv.Solve()

		if cfg.Cancel != nil && cfg.Cancel() {
			return model.Result{}, mineserr.ErrCancelled
		}

		if solved {
			mineslog.Verbose("worker %d: solved after %d attempts", cfg.WorkerIndex, attempt)
			return model.Result{
				Board:    board,
				Variant:  cfg.Variant,
				Seed:     cfg.Seed,
				Attempts: attempt,
				Mines:    mines,
				Spaces:   spaces,
			}, nil
		}

		if resetCount == resetCadence {
			includesMines = nil
			resetCount = 0
		} else {
			includesMines = keys(slv.Mines())
			resetCount++
		}
		priorSpaces = keys(spaces)
	}

	return model.Result{}, fmt.Errorf("no solvable %s board after %d attempts: %w", cfg.Variant, maxAttempts, mineserr.ErrSolverExhausted)
}

func keys(m map[model.TilePosition]bool) []model.TilePosition {
	out := make([]model.TilePosition, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
