package boardgen

import (
	"testing"

	"github.com/mines/noguess/pkg/model"
	"github.com/mines/noguess/pkg/rng"
)

func TestStandardPlacesExactMineCount(t *testing.T) {
	rows, cols, count := 10, 10, 15
	start := model.TilePosition{Row: 5, Col: 5}
	d := model.StandardAdjacency
	excludes := SafeZone(start, d, rows, cols)
	source := rng.New("seed", 0)

	board, mines := Standard(rows, cols, count, d, excludes, nil, source)
	if len(mines) != count {
		t.Fatalf("got %d mines, want %d", len(mines), count)
	}
	for m := range mines {
		if excludes[m] {
			t.Errorf("mine placed inside the safe zone at %v", m)
		}
		if board.At(m) != model.Mine {
			t.Errorf("board cell at %v is not Mine", m)
		}
	}
}

func TestStandardCluesMatchAdjacentMineCount(t *testing.T) {
	rows, cols, count := 8, 8, 10
	start := model.TilePosition{Row: 0, Col: 0}
	d := model.StandardAdjacency
	excludes := SafeZone(start, d, rows, cols)
	source := rng.New("clue-check", 0)

	board, mines := Standard(rows, cols, count, d, excludes, nil, source)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			pos := model.TilePosition{Row: r, Col: c}
			if mines[pos] {
				continue
			}
			want := 0
			for _, n := range model.Neighbors(pos, d, rows, cols) {
				if mines[n] {
					want++
				}
			}
			if int(board.At(pos)) != want {
				t.Errorf("clue at %v = %d, want %d", pos, board.At(pos), want)
			}
		}
	}
}

func TestChainMinesComeInOrthogonalPairs(t *testing.T) {
	rows, cols, count := 10, 10, 10 // even count, should pair up cleanly
	start := model.TilePosition{Row: 5, Col: 5}
	excludes := SafeZone(start, model.StandardAdjacency, rows, cols)
	source := rng.New("chainseed", 0)

	_, mines := Chain(rows, cols, count, excludes, nil, source)
	if len(mines) == 0 {
		t.Fatal("no mines placed")
	}
	for m := range mines {
		hasOrthogonalPartner := false
		for _, n := range model.Neighbors(m, model.OrthogonalAdjacency, rows, cols) {
			if mines[n] {
				hasOrthogonalPartner = true
				break
			}
		}
		if !hasOrthogonalPartner {
			t.Errorf("mine at %v has no orthogonally-adjacent mine partner", m)
		}
	}
}

func TestSpaceTilesAreNeverMines(t *testing.T) {
	rows, cols := 10, 10
	start := model.TilePosition{Row: 5, Col: 5}
	d := model.StandardAdjacency
	excludes := SafeZone(start, d, rows, cols)
	source := rng.New("spaceseed", 0)

	_, mines, spaces := Space(rows, cols, 15, 10, d, excludes, nil, nil, source)
	for p := range spaces {
		if mines[p] {
			t.Errorf("tile %v is both a mine and a space", p)
		}
	}
}

func TestOffsetClueCountingIsReversed(t *testing.T) {
	rows, cols := 6, 6
	d := []model.Direction{{DR: 0, DC: 1}} // "the tile to my right is my neighbor"
	excludes := map[model.TilePosition]bool{}
	source := rng.New("offsetseed", 0)

	board, mines, spaces := Offset(rows, cols, 5, 0, d, excludes, nil, nil, source)
	for m := range mines {
		left := model.TilePosition{Row: m.Row, Col: m.Col - 1}
		if !board.InBounds(left) || mines[left] || spaces[left] {
			continue
		}
		// The reversed rule means the tile to the mine's LEFT should see
		// it, since d says "my right neighbor is the mine".
		count := 0
		for _, n := range model.Neighbors(left, d, rows, cols) {
			if mines[n] {
				count++
			}
		}
		if int(board.At(left)) != count {
			t.Errorf("reversed clue at %v = %d, want %d", left, board.At(left), count)
		}
	}
}
