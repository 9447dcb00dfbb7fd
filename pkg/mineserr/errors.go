// Package mineserr defines the sentinel errors checked with errors.Is
// across the generator, solver, and race controller.
package mineserr

import "errors"

var (
	// ErrInvalidSeed is returned when a caller-supplied seed fails
	// validation (length or character-class checks).
	ErrInvalidSeed = errors.New("invalid seed")
	// ErrInvalidParameters is returned when generation parameters are
	// internally inconsistent (e.g. mine count exceeds board capacity).
	ErrInvalidParameters = errors.New("invalid generation parameters")
	// ErrInfeasible is returned when no board satisfying the parameters
	// can exist (capacity, space count, or difficulty cap violated).
	ErrInfeasible = errors.New("parameters are infeasible")
	// ErrSolverExhausted is returned when the generation loop exhausts
	// its retry budget without producing a solvable board.
	ErrSolverExhausted = errors.New("solver exhausted retry budget")
	// ErrCancelled is returned to a race worker whose result was not the
	// first to arrive.
	ErrCancelled = errors.New("generation cancelled")
)
