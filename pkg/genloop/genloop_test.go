package genloop

import (
	"testing"

	"github.com/mines/noguess/pkg/model"
)

func TestRunProducesASolvableStandardBoard(t *testing.T) {
	params := model.Params{
		Rows:      6,
		Cols:      6,
		MineCount: 4,
		Start:     model.TilePosition{Row: 3, Col: 3},
	}
	result, err := Run(Config{Variant: model.Standard, Params: params, Seed: "testseed"})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(result.Mines) != params.MineCount {
		t.Errorf("got %d mines, want %d", len(result.Mines), params.MineCount)
	}
	if result.Board.Rows != params.Rows || result.Board.Cols != params.Cols {
		t.Errorf("board dims = %dx%d, want %dx%d", result.Board.Rows, result.Board.Cols, params.Rows, params.Cols)
	}
}

func TestRunIsDeterministicForAFixedSeed(t *testing.T) {
	params := model.Params{
		Rows:      6,
		Cols:      6,
		MineCount: 4,
		Start:     model.TilePosition{Row: 3, Col: 3},
	}
	a, err := Run(Config{Variant: model.Standard, Params: params, Seed: "repeatable"})
	if err != nil {
		t.Fatalf("first Run() error = %v", err)
	}
	b, err := Run(Config{Variant: model.Standard, Params: params, Seed: "repeatable"})
	if err != nil {
		t.Fatalf("second Run() error = %v", err)
	}
	if a.Board.String() != b.Board.String() {
		t.Errorf("two runs with the same seed produced different boards")
	}
}

func TestRunRejectsInfeasibleParameters(t *testing.T) {
	params := model.Params{Rows: 2, Cols: 2, MineCount: 3}
	_, err := Run(Config{Variant: model.Standard, Params: params, Seed: "x"})
	if err == nil {
		t.Fatal("expected an error for a mine count exceeding board capacity")
	}
}

func TestCancelStopsTheLoop(t *testing.T) {
	params := model.Params{
		Rows:      6,
		Cols:      6,
		MineCount: 4,
		Start:     model.TilePosition{Row: 3, Col: 3},
	}
	_, err := Run(Config{
		Variant: model.Standard,
		Params:  params,
		Seed:    "cancelme",
		Cancel:  func() bool { return true },
	})
	if err == nil {
		t.Fatal("expected ErrCancelled when Cancel always returns true")
	}
}
