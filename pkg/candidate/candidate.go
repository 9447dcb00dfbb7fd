// Package candidate builds the shuffled tile lists the board assembler
// draws mines and spaces from (spec.md §4.B, grounded on
// original_source/MainPrograms/BoardGeneratorPrograms/Seed.py's
// generate_mines_list).
package candidate

import (
	"github.com/mines/noguess/pkg/model"
	"github.com/mines/noguess/pkg/rng"
)

// All returns every tile position on a rows x cols board, row-major.
func All(rows, cols int) []model.TilePosition {
	out := make([]model.TilePosition, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out = append(out, model.TilePosition{Row: r, Col: c})
		}
	}
	return out
}

// List draws count tiles for placement, honoring two carry-forward sets:
// includes are positions a prior partial reset already proved must be
// mines (or, for spaces, positions already placed) and are placed first;
// excludes are positions that may never be selected (the start tile's
// neighborhood, already-placed spaces, the board frame, and so on).
//
// A plain Fisher-Yates shuffle over the remaining candidates supplies the
// rest, up to count total.
func List(rows, cols, count int, includes []model.TilePosition, excludes map[model.TilePosition]bool, source *rng.Source) []model.TilePosition {
	selected := make([]model.TilePosition, 0, count)
	taken := make(map[model.TilePosition]bool, count)

	for _, p := range includes {
		if len(selected) >= count {
			break
		}
		if excludes[p] || taken[p] {
			continue
		}
		selected = append(selected, p)
		taken[p] = true
	}

	if len(selected) >= count {
		return selected
	}

	pool := All(rows, cols)
	source.Shuffle(pool)
	for _, p := range pool {
		if len(selected) >= count {
			break
		}
		if excludes[p] || taken[p] {
			continue
		}
		selected = append(selected, p)
		taken[p] = true
	}
	return selected
}
