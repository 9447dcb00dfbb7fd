// Package mines is the external interface (spec.md §6): Generate and
// GenerateRace are the only entry points callers need. The package never
// owns a CLI, file format, or persistence layer — those belong to the
// caller.
package mines

import (
	"fmt"

	"github.com/mines/noguess/pkg/genloop"
	"github.com/mines/noguess/pkg/mineconfig"
	"github.com/mines/noguess/pkg/mineserr"
	"github.com/mines/noguess/pkg/model"
	"github.com/mines/noguess/pkg/puzzle"
	"github.com/mines/noguess/pkg/race"
	"github.com/mines/noguess/pkg/rng"
)

// Generate produces one no-guess board for variant sequentially (single
// worker, no race). An empty seed is replaced with a freshly generated
// one, returned on Result.Seed for reproducibility.
func Generate(variant model.Variant, params model.Params, seed string) (model.Result, error) {
	if err := validate(variant, params, seed); err != nil {
		return model.Result{}, err
	}
	if seed == "" {
		seed = rng.GenerateSeed()
	}

	if variant == model.Puzzle || variant == model.OffsetPuzzle {
		return puzzle.Run(puzzle.Config{Variant: variant, Params: params, Seed: seed})
	}
	return genloop.Run(genloop.Config{Variant: variant, Params: params, Seed: seed})
}

// GenerateRace produces one no-guess board for variant using workers
// concurrent generation/solve attempts, returning the first solvable
// board and cancelling the rest.
func GenerateRace(variant model.Variant, params model.Params, seed string, workers int) (model.Result, error) {
	if err := validate(variant, params, seed); err != nil {
		return model.Result{}, err
	}
	if seed == "" {
		seed = rng.GenerateSeed()
	}
	return race.Run(variant, params, seed, workers)
}

func validate(variant model.Variant, params model.Params, seed string) error {
	if err := rng.ValidateSeed(seed); err != nil {
		return err
	}
	spec, ok := mineconfig.VariantSpecs[variant]
	if !ok {
		return fmt.Errorf("unknown variant %q: %w", variant, mineserr.ErrInvalidParameters)
	}
	if spec.RequiresSpaceCount && params.SpaceCount < 0 {
		return fmt.Errorf("variant %s requires a non-negative space count: %w", variant, mineserr.ErrInvalidParameters)
	}
	if spec.RequiresAdjacency && len(params.Adjacency) == 0 {
		return fmt.Errorf("variant %s requires an explicit adjacency set: %w", variant, mineserr.ErrInvalidParameters)
	}
	if density := mineconfig.Density(variant, params); density > spec.MaxDensity {
		return fmt.Errorf("density %.2f exceeds %s's cap of %.2f: %w", density, variant, spec.MaxDensity, mineserr.ErrInvalidParameters)
	}
	return nil
}
