// Package solver implements the Logical and Matrix solvers and the
// combined solve loop (spec.md §4.D, §4.E), grounded on
// original_source/MainPrograms/Solvers/{LogicalSolver,MatrixSolver}.py.
//
// The solver never looks at the answer board except to reveal a tile it
// has already proven safe (or, for the start tile / pre-reveal set, a
// tile the generator guarantees is safe by construction) — it only ever
// reasons from clue numbers already on its own working board.
package solver

import "github.com/mines/noguess/pkg/model"

// Solver tracks the solver's partial knowledge of a board (its "working
// board") as it incrementally reveals and deduces tiles from an answer
// board it is never allowed to peek at except through reveals it has
// earned.
type Solver struct {
	answer  *model.Board
	working *model.Board
	variant model.Variant
	d       []model.Direction

	mines map[model.TilePosition]bool
	safes map[model.TilePosition]bool

	border     []model.TilePosition
	totalMines int
}

// New creates a solver for answer using adjacency d. The caller is
// responsible for seeding the initial reveal (Start or PreRevealed).
func New(answer *model.Board, variant model.Variant, d []model.Direction) *Solver {
	return &Solver{
		answer:  answer,
		working: model.NewBoard(answer.Rows, answer.Cols),
		variant: variant,
		d:       d,
		mines:   make(map[model.TilePosition]bool),
		safes:   make(map[model.TilePosition]bool),
	}
}

// Reveal copies pos's true value from the answer board onto the working
// board. The caller must only reveal tiles it has already proven are not
// mines (the start neighborhood, a pre-reveal set, or a solver deduction).
func (s *Solver) Reveal(pos model.TilePosition) {
	v := s.answer.At(pos)
	s.working.Set(pos, v)
	delete(s.safes, pos)
}

// RevealSet reveals every position in positions.
func (s *Solver) RevealSet(positions map[model.TilePosition]bool) {
	for p := range positions {
		s.Reveal(p)
	}
}

// SeedSpaces copies every space tile straight onto the working board; the
// Space/Offset variants' solver is told up front which tiles are inert,
// the same way the generator is.
func (s *Solver) SeedSpaces(spaces map[model.TilePosition]bool) {
	for p := range spaces {
		s.working.Set(p, model.Space)
	}
}

// Mines returns the set of tiles the solver has deduced are mines.
func (s *Solver) Mines() map[model.TilePosition]bool { return s.mines }

// Solve runs the logical-then-matrix loop to quiescence. It returns true
// if every non-mine, non-space tile on the board has been revealed
// (fully solved with no guessing), or false if it stalled.
func (s *Solver) Solve() bool {
	for {
		s.updateBorder()

		progressed := s.logicalPass()
		if !progressed {
			progressed = s.matrixPass()
		}
		if !s.applyDeductions() && !progressed {
			break
		}
		if s.isComplete() {
			return true
		}
	}
	return s.isComplete()
}

func (s *Solver) isComplete() bool {
	for r := 0; r < s.working.Rows; r++ {
		for c := 0; c < s.working.Cols; c++ {
			pos := model.TilePosition{Row: r, Col: c}
			v := s.working.At(pos)
			if v == model.Covered {
				if !s.mines[pos] {
					return false
				}
			}
		}
	}
	return true
}

// effectiveValue is a revealed tile's clue minus the mines already known
// to be adjacent to it (MatrixSolver.get_effective_num).
func (s *Solver) effectiveValue(pos model.TilePosition) int {
	clue := int(s.working.At(pos))
	adjMines := 0
	for _, n := range model.Neighbors(pos, s.d, s.working.Rows, s.working.Cols) {
		if s.mines[n] {
			adjMines++
		}
	}
	return clue - adjMines
}

// coveredNeighbors returns pos's neighbors that are still Covered and not
// already known to be mines.
func (s *Solver) coveredNeighbors(pos model.TilePosition) []model.TilePosition {
	var out []model.TilePosition
	for _, n := range model.Neighbors(pos, s.d, s.working.Rows, s.working.Cols) {
		if s.working.At(n) == model.Covered && !s.mines[n] {
			out = append(out, n)
		}
	}
	return out
}

// updateBorder recomputes the set of revealed numbered tiles that still
// have at least one covered neighbor (LogicalSolver.get_border_tiles).
func (s *Solver) updateBorder() {
	border := make([]model.TilePosition, 0)
	for r := 0; r < s.working.Rows; r++ {
		for c := 0; c < s.working.Cols; c++ {
			pos := model.TilePosition{Row: r, Col: c}
			v := s.working.At(pos)
			if v < 0 {
				continue // covered, mine, space, flag, hinted-safe
			}
			if len(s.coveredNeighbors(pos)) > 0 {
				border = append(border, pos)
			}
		}
	}
	s.border = border
}

// applyDeductions folds newly-found mines into the working board (as
// Flag) and reveals newly-found safes. Returns whether anything changed.
func (s *Solver) applyDeductions() bool {
	changed := false
	for p := range s.mines {
		if s.working.At(p) == model.Covered {
			s.working.Set(p, model.Flag)
			changed = true
		}
	}
	for p := range s.safes {
		if s.working.At(p) == model.Covered {
			s.Reveal(p)
			changed = true
		}
	}
	s.safes = make(map[model.TilePosition]bool)
	return changed
}

// coveredTiles returns every tile still coded Covered (this excludes
// tiles already flagged as deduced mines).
func (s *Solver) coveredTiles() []model.TilePosition {
	var out []model.TilePosition
	for r := 0; r < s.working.Rows; r++ {
		for c := 0; c < s.working.Cols; c++ {
			pos := model.TilePosition{Row: r, Col: c}
			if s.working.At(pos) == model.Covered {
				out = append(out, pos)
			}
		}
	}
	return out
}
