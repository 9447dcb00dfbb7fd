package race

import (
	"testing"

	"github.com/mines/noguess/pkg/model"
)

func TestRunProducesASolvableBoardWithMultipleWorkers(t *testing.T) {
	params := model.Params{
		Rows:      7,
		Cols:      7,
		MineCount: 6,
		Start:     model.TilePosition{Row: 3, Col: 3},
	}
	result, err := Run(model.Standard, params, "raceseed", 4)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(result.Mines) != params.MineCount {
		t.Errorf("got %d mines, want %d", len(result.Mines), params.MineCount)
	}
}

func TestRunDefaultsBelowOneWorkerToOne(t *testing.T) {
	params := model.Params{
		Rows:      6,
		Cols:      6,
		MineCount: 4,
		Start:     model.TilePosition{Row: 3, Col: 3},
	}
	if _, err := Run(model.Standard, params, "zeroworkers", 0); err != nil {
		t.Fatalf("Run() with workers=0 should fall back to a single worker, got error: %v", err)
	}
}

func TestRunSurfacesInfeasibleParameters(t *testing.T) {
	params := model.Params{Rows: 2, Cols: 2, MineCount: 3}
	if _, err := Run(model.Standard, params, "x", 3); err == nil {
		t.Fatal("expected an error for a mine count exceeding board capacity")
	}
}

func TestRunRacesThePuzzleFamilyToo(t *testing.T) {
	params := model.Params{
		Rows:       12,
		Cols:       12,
		MineCount:  10,
		SpaceCount: 0,
		Difficulty: 2,
	}
	result, err := Run(model.Puzzle, params, "puzzleraceseed", 3)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.RevealedSet == nil {
		t.Error("puzzle-family race result should carry a non-nil RevealedSet")
	}
}
