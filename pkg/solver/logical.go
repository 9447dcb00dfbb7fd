package solver

import "github.com/mines/noguess/pkg/model"

// logicalPass runs the Trivial pattern, the 1-2 subset pattern, and (Chain
// mode only) the pair-adjacency pattern over the current border. Returns
// whether any new mine or safe was found.
func (s *Solver) logicalPass() bool {
	found := false
	if s.trivialPattern() {
		found = true
	}
	if s.oneTwoPattern() {
		found = true
	}
	if s.variant == model.Chain && s.chainPairPattern() {
		found = true
	}
	return found
}

// trivialPattern resolves a border tile whose covered-neighbor count
// equals its effective value (every covered neighbor is a mine), or whose
// effective value is zero (every covered neighbor is safe).
// Grounded on LogicalSolver._check_resolved_tile.
func (s *Solver) trivialPattern() bool {
	found := false
	for _, pos := range s.border {
		effective := s.effectiveValue(pos)
		covered := s.coveredNeighbors(pos)
		if len(covered) == 0 {
			continue
		}
		if effective == len(covered) {
			for _, n := range covered {
				if !s.mines[n] {
					s.mines[n] = true
					found = true
				}
			}
		} else if effective == 0 {
			for _, n := range covered {
				if !s.safes[n] {
					s.safes[n] = true
					found = true
				}
			}
		}
	}
	return found
}

// oneTwoPattern compares every pair of orthogonally-adjacent border tiles
// A and B: when A's effective value exceeds B's by exactly the number of
// A's covered cells outside B's covered set, those cells are all mines,
// the shared cells then hold all of B's remaining mines, and B's covered
// cells outside A's set are safe.
// Grounded on LogicalSolver._check_one_two_pattern.
func (s *Solver) oneTwoPattern() bool {
	found := false
	for _, a := range s.border {
		for _, b := range s.border {
			if a == b || !orthogonallyAdjacent(a, b) {
				continue
			}
			effA, effB := s.effectiveValue(a), s.effectiveValue(b)
			coveredA := s.coveredNeighbors(a)
			coveredB := s.coveredNeighbors(b)
			setB := toSet(coveredB)

			var diff []model.TilePosition
			for _, n := range coveredA {
				if !setB[n] {
					diff = append(diff, n)
				}
			}
			if len(diff) == 0 || len(diff) != len(coveredA)-len(setInter(coveredA, setB)) {
				continue
			}
			if effA-effB == len(diff) {
				for _, n := range diff {
					if !s.mines[n] {
						s.mines[n] = true
						found = true
					}
				}
				// shared neighbors then account for all of B's mines, so
				// B's covered cells outside A are safe.
				setA := toSet(coveredA)
				for _, n := range coveredB {
					if !setA[n] && !s.safes[n] {
						s.safes[n] = true
						found = true
					}
				}
			}
		}
	}
	return found
}

// chainPairPattern: any two orthogonally-adjacent tiles already known to
// be mines force every OTHER orthogonal neighbor of either to be safe,
// since Chain mode only ever places mines in orthogonally-adjacent pairs.
// Grounded on ChainLogicalSolver._resolve_chain.
func (s *Solver) chainPairPattern() bool {
	found := false
	for m := range s.mines {
		for _, n := range model.Neighbors(m, model.OrthogonalAdjacency, s.working.Rows, s.working.Cols) {
			if !s.mines[n] {
				continue
			}
			for _, other := range model.Neighbors(m, model.OrthogonalAdjacency, s.working.Rows, s.working.Cols) {
				if other == n || s.mines[other] {
					continue
				}
				if s.working.At(other) == model.Covered && !s.safes[other] {
					s.safes[other] = true
					found = true
				}
			}
			for _, other := range model.Neighbors(n, model.OrthogonalAdjacency, s.working.Rows, s.working.Cols) {
				if other == m || s.mines[other] {
					continue
				}
				if s.working.At(other) == model.Covered && !s.safes[other] {
					s.safes[other] = true
					found = true
				}
			}
		}
	}
	return found
}

func orthogonallyAdjacent(a, b model.TilePosition) bool {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

func toSet(positions []model.TilePosition) map[model.TilePosition]bool {
	out := make(map[model.TilePosition]bool, len(positions))
	for _, p := range positions {
		out[p] = true
	}
	return out
}

func setInter(positions []model.TilePosition, set map[model.TilePosition]bool) []model.TilePosition {
	var out []model.TilePosition
	for _, p := range positions {
		if set[p] {
			out = append(out, p)
		}
	}
	return out
}
