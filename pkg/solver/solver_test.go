package solver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mines/noguess/pkg/boardgen"
	"github.com/mines/noguess/pkg/model"
)

// buildAnswer constructs a hand-designed 4x4 answer board with mines at
// (0,0) and (3,3), fully solvable from the center via trivial deduction:
// a 0-clue interior opens up the whole board except the two corners.
func buildAnswer(t *testing.T) *model.Board {
	t.Helper()
	rows, cols := 4, 4
	mines := map[model.TilePosition]bool{
		{Row: 0, Col: 0}: true,
		{Row: 3, Col: 3}: true,
	}
	board := model.NewBoard(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			pos := model.TilePosition{Row: r, Col: c}
			if mines[pos] {
				board.Set(pos, model.Mine)
				continue
			}
			count := model.CellCode(0)
			for _, n := range model.Neighbors(pos, model.StandardAdjacency, rows, cols) {
				if mines[n] {
					count++
				}
			}
			board.Set(pos, count)
		}
	}
	return board
}

func TestSolverSolvesHandBuiltBoard(t *testing.T) {
	board := buildAnswer(t)
	s := New(board, model.Standard, model.StandardAdjacency)
	s.SetTotalMines(2)
	start := model.TilePosition{Row: 2, Col: 1} // a zero-clue tile, safely away from both mines
	s.RevealSet(boardgen.SafeZone(start, model.StandardAdjacency, board.Rows, board.Cols))

	solved := s.Solve()

	require.True(t, solved, "hand-built board should be fully solvable")
	require.Len(t, s.Mines(), 2)
	require.True(t, s.Mines()[model.TilePosition{Row: 0, Col: 0}])
	require.True(t, s.Mines()[model.TilePosition{Row: 3, Col: 3}])
}

func TestCoveredEqualsVarSetOnlyWhenExact(t *testing.T) {
	board := buildAnswer(t)
	s := New(board, model.Standard, model.StandardAdjacency)
	s.SetTotalMines(2)
	start := model.TilePosition{Row: 3, Col: 0} // a zero-clue corner, away from both mines
	s.RevealSet(boardgen.SafeZone(start, model.StandardAdjacency, board.Rows, board.Cols))
	s.updateBorder()

	vars := s.buildVariables()
	// Freshly revealed, the border's variables are a strict subset of the
	// still-covered tiles (the two far corners are covered but not
	// adjacent to any revealed number yet), so the global row must not
	// fire.
	require.False(t, s.coveredEqualsVarSet(vars))
}
