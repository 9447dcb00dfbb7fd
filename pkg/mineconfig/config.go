// Package mineconfig describes which parameter fields each variant
// requires or permits, generalizing the teacher's DifficultySpecs
// map-of-structs pattern (pkg/generator/config.go in the example pack)
// from a fixed difficulty tier lookup to a per-variant capability table.
package mineconfig

import "github.com/mines/noguess/pkg/model"

// VariantSpec names the fields a variant actually uses, so a CLI or
// caller can validate a Params value before spending a generation attempt
// on it.
type VariantSpec struct {
	RequiresSpaceCount bool
	RequiresAdjacency  bool
	UsesDifficultyCap  bool // puzzle family only
	MaxDensity         float64
}

// VariantSpecs is the lookup table of per-variant parameter rules.
// MaxDensity mirrors spec.md §6: 0.20 for the variants that count only
// mines against board area (Standard, Chain), 0.19 for the
// space-supporting variants, whose density also counts space tiles
// against the same area (Offset, Space, Puzzle, OffsetPuzzle).
var VariantSpecs = map[model.Variant]VariantSpec{
	model.Standard:     {MaxDensity: 0.20},
	model.Chain:        {MaxDensity: 0.20},
	model.Offset:       {RequiresSpaceCount: true, RequiresAdjacency: true, MaxDensity: 0.19},
	model.Space:        {RequiresSpaceCount: true, MaxDensity: 0.19},
	model.Puzzle:       {RequiresSpaceCount: true, UsesDifficultyCap: true, MaxDensity: 0.19},
	model.OffsetPuzzle: {RequiresSpaceCount: true, RequiresAdjacency: true, UsesDifficultyCap: true, MaxDensity: 0.19},
}

// Density returns the occupied-tile fraction of the board for variant: for
// space-supporting variants this is (mineCount+spaceCount)/(rows*cols), and
// for the rest it is mineCount/(rows*cols) (spec.md §6).
func Density(variant model.Variant, p model.Params) float64 {
	area := p.Rows * p.Cols
	if area == 0 {
		return 0
	}
	occupied := p.MineCount
	if VariantSpecs[variant].RequiresSpaceCount {
		occupied += p.SpaceCount
	}
	return float64(occupied) / float64(area)
}
