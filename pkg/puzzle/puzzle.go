// Package puzzle implements the Puzzle and OffsetPuzzle variants: a
// difficulty-capped incremental tile revealer (spec.md §4.H) plus the
// generation loop that wraps it (spec.md §4.F for these two variants).
// Grounded on
// original_source/MainPrograms/BoardGeneratorPrograms/PuzzleBoardGenerator.py.
package puzzle

import (
	"errors"
	"fmt"

	"github.com/mines/noguess/pkg/boardgen"
	"github.com/mines/noguess/pkg/candidate"
	"github.com/mines/noguess/pkg/mineserr"
	"github.com/mines/noguess/pkg/mineslog"
	"github.com/mines/noguess/pkg/model"
	"github.com/mines/noguess/pkg/rng"
	"github.com/mines/noguess/pkg/solver"
)

// ErrNeedsFullReset signals that the island-growth walk found no
// admissible tile anywhere on the board before reaching the difficulty
// cap; the caller must discard the board and start a fresh attempt.
// Grounded on PuzzleBoardGenerator._add_tile's poisoned-set return, which
// this sentinel replaces with an idiomatic Go error instead of carrying a
// set sized one past tiles_required as a signal.
var ErrNeedsFullReset = errors.New("reveal set exhausted before reaching the difficulty cap")

const maxAttempts = 10000

// DifficultyCap computes T, the maximum number of tiles the puzzle
// revealer may pre-reveal, from the board area and difficulty.
// Grounded on PuzzleBoardGenerator.generate_no_guess_board:
// T = min(digits((d+1)*area) * d, area // 5).
func DifficultyCap(difficulty, rows, cols int) int {
	area := rows * cols
	n := (difficulty + 1) * area
	t := digits(n) * difficulty
	ceiling := area / 5
	if t > ceiling {
		return ceiling
	}
	return t
}

func digits(n int) int {
	if n <= 0 {
		return 1
	}
	count := 0
	for n > 0 {
		count++
		n /= 10
	}
	return count
}

// RevealState is the mutable state threaded through island growth: the
// set of tiles already revealed, the positions that may never be
// revealed, and the board dimensions. Modeled as an explicit struct
// passed by reference rather than Python's mutable-set-argument style
// (Design Notes §9).
type RevealState struct {
	Revealed map[model.TilePosition]bool
	Excluded map[model.TilePosition]bool // mines, spaces, frame
	Rows     int
	Cols     int
}

// frame returns every tile on the outer border of a rows x cols board —
// the always_exclude set PuzzleBoardGenerator seeds from.
func frame(rows, cols int) map[model.TilePosition]bool {
	out := make(map[model.TilePosition]bool)
	for c := 0; c < cols; c++ {
		out[model.TilePosition{Row: 0, Col: c}] = true
		out[model.TilePosition{Row: rows - 1, Col: c}] = true
	}
	for r := 0; r < rows; r++ {
		out[model.TilePosition{Row: r, Col: 0}] = true
		out[model.TilePosition{Row: r, Col: cols - 1}] = true
	}
	return out
}

// admissible returns pos's in-bounds neighbors that are neither revealed
// nor excluded. Neighbors of other revealed tiles are not excluded, so two
// islands may grow into each other.
func (st *RevealState) admissible(pos model.TilePosition) []model.TilePosition {
	var out []model.TilePosition
	for _, n := range model.Neighbors(pos, model.StandardAdjacency, st.Rows, st.Cols) {
		if st.Revealed[n] || st.Excluded[n] {
			continue
		}
		out = append(out, n)
	}
	return out
}

// AddTiles grows the revealed set by up to count tiles via a random walk
// from existing islands, one tile at a time. When no island has an
// admissible neighbor, a random admissible tile elsewhere on the board
// starts a new island. It returns ErrNeedsFullReset if at any point no
// admissible tile exists anywhere on the board.
// Grounded on PuzzleBoardGenerator._add_tile.
func (st *RevealState) AddTiles(count int, source *rng.Source) error {
	for i := 0; i < count; i++ {
		anchors := keys(st.Revealed)
		source.Shuffle(anchors)

		found := false
		for _, anchor := range anchors {
			candidates := st.admissible(anchor)
			if len(candidates) == 0 {
				continue
			}
			pick := candidates[source.Intn(len(candidates))]
			st.Revealed[pick] = true
			found = true
			break
		}
		if !found {
			pick, ok := source.PickExcluding(candidate.All(st.Rows, st.Cols), union(st.Revealed, st.Excluded))
			if !ok {
				return ErrNeedsFullReset
			}
			st.Revealed[pick] = true
		}
	}
	return nil
}

func keys(m map[model.TilePosition]bool) []model.TilePosition {
	out := make([]model.TilePosition, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// Ease tops up the solved puzzle's reveal set with additional safe tiles
// up to T, purely for presentation/difficulty calibration — the puzzle is
// already fully solvable without them. Grounded on the tail loop of
// PuzzleBoardGenerator.generate_no_guess_board.
func Ease(revealed map[model.TilePosition]bool, board *model.Board, mines, spaces map[model.TilePosition]bool, t int, source *rng.Source) {
	all := candidate.All(board.Rows, board.Cols)
	source.Shuffle(all)
	for _, p := range all {
		if len(revealed) >= t {
			return
		}
		if revealed[p] || mines[p] || spaces[p] {
			continue
		}
		revealed[p] = true
	}
}

// Config drives a single Puzzle/OffsetPuzzle generation run.
type Config struct {
	Variant     model.Variant // model.Puzzle or model.OffsetPuzzle
	Params      model.Params
	Seed        string
	WorkerIndex int
	Cancel      func() bool
}

// Run executes the reveal-then-solve retry loop for the puzzle family.
func Run(cfg Config) (model.Result, error) {
	p := cfg.Params
	if p.Rows <= 0 || p.Cols <= 0 || p.MineCount <= 0 {
		return model.Result{}, fmt.Errorf("rows=%d cols=%d mines=%d: %w", p.Rows, p.Cols, p.MineCount, mineserr.ErrInvalidParameters)
	}

	d := boardgen.AdjacencyFor(model.Standard, p.Adjacency) // puzzle clue counting always uses the board's own D
	excludeFrame := frame(p.Rows, p.Cols)
	t := DifficultyCap(p.Difficulty, p.Rows, p.Cols)
	if len(p.PreRevealed) > t {
		t = len(p.PreRevealed)
	}

	var priorSpaces []model.TilePosition

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if cfg.Cancel != nil && cfg.Cancel() {
			return model.Result{}, mineserr.ErrCancelled
		}

		source := rng.New(cfg.Seed, cfg.WorkerIndex*maxAttempts+attempt)

		var board *model.Board
		var mines, spaces map[model.TilePosition]bool
		if cfg.Variant == model.OffsetPuzzle {
			board, mines, spaces = boardgen.Offset(p.Rows, p.Cols, p.MineCount, p.SpaceCount, d, excludeFrame, nil, priorSpaces, source)
		} else {
			board, mines, spaces = boardgen.Space(p.Rows, p.Cols, p.MineCount, p.SpaceCount, d, excludeFrame, nil, priorSpaces, source)
		}

		state := &RevealState{
			Revealed: make(map[model.TilePosition]bool),
			Excluded: union(mines, spaces, excludeFrame),
			Rows:     p.Rows,
			Cols:     p.Cols,
		}
		for _, pos := range p.PreRevealed {
			state.Revealed[pos] = true
		}
		if len(state.Revealed) == 0 {
			anchor, ok := source.PickExcluding(candidate.All(p.Rows, p.Cols), state.Excluded)
			if !ok {
				return model.Result{}, fmt.Errorf("no admissible anchor tile: %w", mineserr.ErrInfeasible)
			}
			state.Revealed[anchor] = true
		}

		if err := state.AddTiles(t-len(state.Revealed), source); err != nil {
			mineslog.Verbose("worker %d: reveal walk needs full reset on attempt %d", cfg.WorkerIndex, attempt)
			priorSpaces = keys(spaces)
			continue
		}

		slv := solver.New(board, cfg.Variant, d)
		slv.SetTotalMines(p.MineCount)
		slv.SeedSpaces(spaces)
		slv.RevealSet(state.Revealed)

		solved := slv.Solve()

		if cfg.Cancel != nil && cfg.Cancel() {
			return model.Result{}, mineserr.ErrCancelled
		}

		if solved {
			Ease(state.Revealed, board, mines, spaces, t, source)
			mineslog.Verbose("worker %d: puzzle solved after %d attempts", cfg.WorkerIndex, attempt)
			return model.Result{
				Board:       board,
				Variant:     cfg.Variant,
				Seed:        cfg.Seed,
				Attempts:    attempt,
				Mines:       mines,
				Spaces:      spaces,
				RevealedSet: state.Revealed,
			}, nil
		}

		priorSpaces = keys(spaces)
	}

	return model.Result{}, fmt.Errorf("no solvable %s board after %d attempts: %w", cfg.Variant, maxAttempts, mineserr.ErrSolverExhausted)
}

func union(maps ...map[model.TilePosition]bool) map[model.TilePosition]bool {
	out := make(map[model.TilePosition]bool)
	for _, m := range maps {
		for k, v := range m {
			if v {
				out[k] = true
			}
		}
	}
	return out
}
