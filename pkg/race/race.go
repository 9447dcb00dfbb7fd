// Package race runs N generation workers concurrently and returns the
// first solvable board found, cancelling the rest (spec.md §4.G, §5).
// Grounded on original_source/MainPrograms/BoardGenHub.py's
// gen_board_parallel/worker (task/result queue, shared cancellation
// flag) and cmd/root.go's parseWorkers for the worker-count convention.
package race

import (
	"errors"
	"sync/atomic"

	"github.com/mines/noguess/pkg/genloop"
	"github.com/mines/noguess/pkg/mineserr"
	"github.com/mines/noguess/pkg/model"
	"github.com/mines/noguess/pkg/puzzle"
)

type outcome struct {
	result model.Result
	err    error
}

// Run launches workers goroutines, each with its own PRNG stream
// decorrelated by worker index, and returns as soon as one produces a
// solvable board. The remaining workers observe the shared cancellation
// flag at the top of their next outer-loop iteration and unwind with
// mineserr.ErrCancelled.
func Run(variant model.Variant, params model.Params, seed string, workers int) (model.Result, error) {
	if workers < 1 {
		workers = 1
	}

	var cancelled atomic.Bool
	results := make(chan outcome, workers)

	for i := 0; i < workers; i++ {
		go func(workerIndex int) {
			cancel := func() bool { return cancelled.Load() }
			var res model.Result
			var err error
			if variant == model.Puzzle || variant == model.OffsetPuzzle {
				res, err = puzzle.Run(puzzle.Config{
					Variant:     variant,
					Params:      params,
					Seed:        seed,
					WorkerIndex: workerIndex,
					Cancel:      cancel,
				})
			} else {
				res, err = genloop.Run(genloop.Config{
					Variant:     variant,
					Params:      params,
					Seed:        seed,
					WorkerIndex: workerIndex,
					Cancel:      cancel,
				})
			}
			results <- outcome{result: res, err: err}
		}(i)
	}

	var lastErr error
	for i := 0; i < workers; i++ {
		o := <-results
		if o.err == nil {
			if cancelled.CompareAndSwap(false, true) {
				return o.result, nil
			}
			// Another worker already won the race; this result is
			// discarded even though it succeeded, matching the
			// original's first-writer-wins semantics.
			continue
		}
		if errors.Is(o.err, mineserr.ErrCancelled) {
			continue
		}
		lastErr = o.err
	}

	if lastErr != nil {
		return model.Result{}, lastErr
	}
	return model.Result{}, mineserr.ErrSolverExhausted
}
