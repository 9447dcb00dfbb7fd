// Package boardgen assembles answer boards for each generation variant:
// it places mines (and, for Space/Offset, inert space tiles) and derives
// the resulting clue counts (spec.md §4.C, grounded on
// original_source/MainPrograms/BoardGeneratorPrograms/*.py).
package boardgen

import (
	"github.com/mines/noguess/pkg/candidate"
	"github.com/mines/noguess/pkg/model"
	"github.com/mines/noguess/pkg/rng"
)

// SafeZone returns start and its one-step neighbors under d — the set that
// may never hold a mine, since the generation loop reveals exactly this set
// as the solver's starting point. For a custom Offset d the zone follows d,
// not the 8-neighborhood.
func SafeZone(start model.TilePosition, d []model.Direction, rows, cols int) map[model.TilePosition]bool {
	zone := map[model.TilePosition]bool{start: true}
	for _, n := range model.Neighbors(start, d, rows, cols) {
		zone[n] = true
	}
	return zone
}

func adjacencyFor(variant model.Variant, custom []model.Direction) []model.Direction {
	if custom != nil {
		return custom
	}
	return model.StandardAdjacency
}

// Standard places count mines outside excludes and computes clue counts
// using forward adjacency d.
func Standard(rows, cols, count int, d []model.Direction, excludes map[model.TilePosition]bool, includes []model.TilePosition, source *rng.Source) (*model.Board, map[model.TilePosition]bool) {
	board := model.NewBoard(rows, cols)
	minesList := candidate.List(rows, cols, count, includes, excludes, source)
	mines := make(map[model.TilePosition]bool, len(minesList))
	for _, p := range minesList {
		mines[p] = true
		board.Set(p, model.Mine)
	}
	computeCluesForward(board, mines, nil, d)
	return board, mines
}

// Chain places count mines as orthogonally-adjacent pairs: each pair draws
// a first mine, then a second mine orthogonally adjacent to the first,
// retrying rejected combinations without redrawing them (grounded on
// ChainBoardGenerator._generate_board's loc_safes tracking).
func Chain(rows, cols, count int, excludes map[model.TilePosition]bool, includes []model.TilePosition, source *rng.Source) (*model.Board, map[model.TilePosition]bool) {
	board := model.NewBoard(rows, cols)
	mines := make(map[model.TilePosition]bool, count)
	for _, p := range includes {
		if len(mines) >= count {
			break
		}
		if !excludes[p] {
			mines[p] = true
			board.Set(p, model.Mine)
		}
	}

	rejected := make(map[model.TilePosition]bool)
	pool := candidate.All(rows, cols)

	for len(mines) < count {
		one, ok := source.PickExcluding(pool, union(excludes, mines, rejected))
		if !ok {
			break // board exhausted; caller's generation loop will reset
		}

		orthNeighbors := model.Neighbors(one, model.OrthogonalAdjacency, rows, cols)
		two, ok := source.PickExcluding(orthNeighbors, union(excludes, mines, rejected))
		if !ok {
			rejected[one] = true
			continue
		}

		mines[one] = true
		board.Set(one, model.Mine)
		if len(mines) >= count {
			break
		}
		mines[two] = true
		board.Set(two, model.Mine)
	}

	computeCluesForward(board, mines, nil, model.StandardAdjacency)
	return board, mines
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

// Space places count mines, then spaceCount inert space tiles drawn from
// the remaining non-mine tiles. priorSpaces is carried forward across
// generation-loop resets and placed first (SpaceBoardGenerator always
// re-rolls mines on a reset but keeps the previous iteration's spaces).
// Clue counts skip space-tile neighbors entirely.
func Space(rows, cols, mineCount, spaceCount int, d []model.Direction, excludes map[model.TilePosition]bool, mineIncludes, priorSpaces []model.TilePosition, source *rng.Source) (*model.Board, map[model.TilePosition]bool, map[model.TilePosition]bool) {
	board := model.NewBoard(rows, cols)

	minesList := candidate.List(rows, cols, mineCount, mineIncludes, excludes, source)
	mines := make(map[model.TilePosition]bool, len(minesList))
	for _, p := range minesList {
		mines[p] = true
		board.Set(p, model.Mine)
	}

	spaceExcludes := union(excludes, mines)
	spacesList := candidate.List(rows, cols, spaceCount, priorSpaces, spaceExcludes, source)
	spaces := make(map[model.TilePosition]bool, len(spacesList))
	for _, p := range spacesList {
		spaces[p] = true
		board.Set(p, model.Space)
	}

	computeCluesForward(board, mines, spaces, d)
	return board, mines, spaces
}

// Offset mirrors Space, but clue counts are accumulated using the reverse
// of d: placing a mine at m increments the clue of the tile at m - dir for
// every dir in d, instead of summing over m's own d-neighborhood
// (grounded on OffsetBoardGenerator._get_adjacent_tiles_reversed).
func Offset(rows, cols, mineCount, spaceCount int, d []model.Direction, excludes map[model.TilePosition]bool, mineIncludes, priorSpaces []model.TilePosition, source *rng.Source) (*model.Board, map[model.TilePosition]bool, map[model.TilePosition]bool) {
	board := model.NewBoard(rows, cols)

	minesList := candidate.List(rows, cols, mineCount, mineIncludes, excludes, source)
	mines := make(map[model.TilePosition]bool, len(minesList))
	for _, p := range minesList {
		mines[p] = true
		board.Set(p, model.Mine)
	}

	spaceExcludes := union(excludes, mines)
	spacesList := candidate.List(rows, cols, spaceCount, priorSpaces, spaceExcludes, source)
	spaces := make(map[model.TilePosition]bool, len(spacesList))
	for _, p := range spacesList {
		spaces[p] = true
		board.Set(p, model.Space)
	}

	computeCluesReversed(board, mines, spaces, d)
	return board, mines, spaces
}

func computeCluesForward(board *model.Board, mines, spaces map[model.TilePosition]bool, d []model.Direction) {
	for r := 0; r < board.Rows; r++ {
		for c := 0; c < board.Cols; c++ {
			pos := model.TilePosition{Row: r, Col: c}
			if mines[pos] || spaces[pos] {
				continue
			}
			count := model.CellCode(0)
			for _, n := range model.Neighbors(pos, d, board.Rows, board.Cols) {
				if mines[n] {
					count++
				}
			}
			board.Set(pos, count)
		}
	}
}

func computeCluesReversed(board *model.Board, mines, spaces map[model.TilePosition]bool, d []model.Direction) {
	counts := make(map[model.TilePosition]model.CellCode)
	reversedD := model.Reversed(d)
	for m := range mines {
		for _, n := range model.Neighbors(m, reversedD, board.Rows, board.Cols) {
			if mines[n] || spaces[n] {
				continue
			}
			counts[n]++
		}
	}
	for r := 0; r < board.Rows; r++ {
		for c := 0; c < board.Cols; c++ {
			pos := model.TilePosition{Row: r, Col: c}
			if mines[pos] || spaces[pos] {
				continue
			}
			board.Set(pos, counts[pos])
		}
	}
}

// AdjacencyFor exposes the adjacency rule a variant's clues are counted
// with: custom when given, otherwise the 8-neighborhood for every variant
// (Chain included; its orthogonal pairing is a separate rule), so callers
// outside this package (the generation loop, the solver) agree with the
// assembler.
func AdjacencyFor(variant model.Variant, custom []model.Direction) []model.Direction {
	return adjacencyFor(variant, custom)
}
