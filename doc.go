// Package main provides the noguess CLI, a command-line tool for
// generating no-guess Minesweeper boards.
//
// # Overview
//
// noguess builds Minesweeper boards that are solvable from the start
// tile (or, for puzzle variants, a pre-revealed tile set) by logical
// deduction alone — no 50/50 guesses are ever required to finish the
// board. It supports six generation modes: Standard, Chain, Offset,
// OffsetPuzzle, Puzzle, and Space.
//
// # Key Features
//
//   - Seeded, reproducible generation (PCG64-backed PRNG)
//   - A combined Logical + Matrix constraint solver used both to verify
//     and to drive generation
//   - A concurrent race controller that runs several generation attempts
//     in parallel and keeps the first solvable board
//   - JSON board output and ASCII rendering for inspection
//
// # Installation & Building
//
//	go build
//	./noguess --help
//
// # Commands
//
// ## generate
//
// Generate a single board sequentially for a given variant, seed, and
// size, and write it to a JSON file.
//
// ## race
//
// Generate a board by running N concurrent generation attempts (set via
// --workers/-j) and keeping whichever finishes first.
//
// ## render
//
// Print a generated board file as an ASCII grid.
//
// # Library usage
//
// Callers that don't need the CLI can import github.com/mines/noguess/pkg/mines
// directly:
//
//	result, err := mines.Generate(model.Standard, model.Params{
//		Rows: 16, Cols: 16, MineCount: 40,
//		Start: model.TilePosition{Row: 8, Col: 8},
//	}, "")
package main
