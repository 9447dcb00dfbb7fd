package mines

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mines/noguess/pkg/mineserr"
	"github.com/mines/noguess/pkg/model"
)

func TestGenerateStandardBoard(t *testing.T) {
	params := model.Params{
		Rows:      7,
		Cols:      7,
		MineCount: 6,
		Start:     model.TilePosition{Row: 3, Col: 3},
	}
	result, err := Generate(model.Standard, params, "abc")
	require.NoError(t, err)
	require.Equal(t, "abc", result.Seed)
	require.Len(t, result.Mines, params.MineCount)
}

func TestGenerateAssignsAFreshSeedWhenEmpty(t *testing.T) {
	params := model.Params{Rows: 6, Cols: 6, MineCount: 4, Start: model.TilePosition{Row: 3, Col: 3}}
	result, err := Generate(model.Standard, params, "")
	require.NoError(t, err)
	require.NotEmpty(t, result.Seed)
}

func TestGenerateRejectsInvalidSeed(t *testing.T) {
	params := model.Params{Rows: 6, Cols: 6, MineCount: 4, Start: model.TilePosition{Row: 3, Col: 3}}
	_, err := Generate(model.Standard, params, "this seed is far too long")
	require.Error(t, err)
	require.True(t, errors.Is(err, mineserr.ErrInvalidSeed))
}

func TestGenerateRejectsOverDenseParameters(t *testing.T) {
	// spec.md §6 concrete scenario 2: 10x10, M=20 acceptable, M=21 rejected
	// (21/100 = 0.21 > Standard's 0.20 cap).
	params := model.Params{Rows: 10, Cols: 10, MineCount: 21, Start: model.TilePosition{Row: 5, Col: 5}}
	_, err := Generate(model.Standard, params, "dense")
	require.Error(t, err)
	require.True(t, errors.Is(err, mineserr.ErrInvalidParameters))
}

func TestGenerateOffsetRequiresAdjacency(t *testing.T) {
	params := model.Params{Rows: 6, Cols: 6, MineCount: 4, SpaceCount: 2, Start: model.TilePosition{Row: 3, Col: 3}}
	_, err := Generate(model.Offset, params, "noadj")
	require.Error(t, err)
	require.True(t, errors.Is(err, mineserr.ErrInvalidParameters))
}

func TestGenerateRaceMatchesSequentialInvariants(t *testing.T) {
	params := model.Params{
		Rows:      7,
		Cols:      7,
		MineCount: 6,
		Start:     model.TilePosition{Row: 3, Col: 3},
	}
	result, err := GenerateRace(model.Standard, params, "race-seed", 3)
	require.NoError(t, err)
	require.Len(t, result.Mines, params.MineCount)
	require.Equal(t, params.Rows, result.Board.Rows)
	require.Equal(t, params.Cols, result.Board.Cols)
}
