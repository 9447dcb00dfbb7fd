package solver

import (
	"math/big"

	"github.com/mines/noguess/pkg/model"
)

// row is one linear constraint over vars: sum(coeffs[i]*x_i) = rhs, plus
// coeffs[len(vars)] as the constant term slot is not used — rhs is kept
// separate for clarity during elimination.
type row struct {
	coeffs []*big.Rat
	rhs    *big.Rat
}

// SetTotalMines tells the solver how many mines the board holds in
// total, enabling the global mine-count row (MatrixSolver._build_mat).
func (s *Solver) SetTotalMines(n int) { s.totalMines = n }

// matrixPass builds the border's linear system over GF(rationals) and
// extracts any forced mines/safes via bound analysis. Returns whether
// anything new was found. Grounded on
// original_source/MainPrograms/Solvers/MatrixSolver.py.
func (s *Solver) matrixPass() bool {
	vars := s.buildVariables()
	if len(vars) == 0 {
		return false
	}
	varIndex := make(map[model.TilePosition]int, len(vars))
	for i, v := range vars {
		varIndex[v] = i
	}

	rows := s.buildRows(vars, varIndex)
	if s.coveredEqualsVarSet(vars) {
		rows = append(rows, s.globalRow(vars))
	}
	if len(rows) == 0 {
		return false
	}

	rowEchelon(rows)
	return s.analyseMatrix(rows, vars)
}

// buildVariables is the set of covered (not yet known-mine) tiles
// adjacent to at least one border tile (MatrixSolver._build_var_list).
func (s *Solver) buildVariables() []model.TilePosition {
	set := make(map[model.TilePosition]bool)
	var out []model.TilePosition
	for _, b := range s.border {
		for _, n := range s.coveredNeighbors(b) {
			if !set[n] {
				set[n] = true
				out = append(out, n)
			}
		}
	}
	return out
}

// coveredEqualsVarSet reports whether every still-covered tile on the
// board participates as a variable — the exact condition under which the
// original includes a global "sum of mines" row.
func (s *Solver) coveredEqualsVarSet(vars []model.TilePosition) bool {
	covered := s.coveredTiles()
	if len(covered) != len(vars) || len(vars) == 0 {
		return false
	}
	varSet := toSet(vars)
	for _, c := range covered {
		if !varSet[c] {
			return false
		}
	}
	return true
}

func (s *Solver) buildRows(vars []model.TilePosition, varIndex map[model.TilePosition]int) []row {
	rows := make([]row, 0, len(s.border))
	for _, b := range s.border {
		coeffs := make([]*big.Rat, len(vars))
		for i := range coeffs {
			coeffs[i] = big.NewRat(0, 1)
		}
		nonZero := false
		for _, n := range s.coveredNeighbors(b) {
			if idx, ok := varIndex[n]; ok {
				coeffs[idx] = big.NewRat(1, 1)
				nonZero = true
			}
		}
		if !nonZero {
			continue
		}
		rows = append(rows, row{coeffs: coeffs, rhs: big.NewRat(int64(s.effectiveValue(b)), 1)})
	}
	return rows
}

// globalRow adds sum(vars) = remainingMines, the one row that ties the
// border's local deductions to the board's total mine count.
func (s *Solver) globalRow(vars []model.TilePosition) row {
	coeffs := make([]*big.Rat, len(vars))
	for i := range coeffs {
		coeffs[i] = big.NewRat(1, 1)
	}
	remaining := s.totalMines - len(s.mines)
	return row{coeffs: coeffs, rhs: big.NewRat(int64(remaining), 1)}
}

// rowEchelon performs Gauss-Jordan elimination with partial pivoting by
// absolute value, in place: each pivot column is cleared from every other
// row, above and below, in a single sweep; pivots are not scaled to 1.
// Grounded on MatrixSolver._row_echelon.
func rowEchelon(rows []row) {
	n := len(rows)
	if n == 0 {
		return
	}
	cols := len(rows[0].coeffs)

	pivotRow := 0
	for col := 0; col < cols && pivotRow < n; col++ {
		best := -1
		bestAbs := big.NewRat(0, 1)
		for r := pivotRow; r < n; r++ {
			v := new(big.Rat).Abs(rows[r].coeffs[col])
			if v.Cmp(bestAbs) > 0 {
				bestAbs = v
				best = r
			}
		}
		if best == -1 || bestAbs.Sign() == 0 {
			continue
		}
		rows[pivotRow], rows[best] = rows[best], rows[pivotRow]

		pivotVal := rows[pivotRow].coeffs[col]
		for r := 0; r < n; r++ {
			if r == pivotRow {
				continue
			}
			factor := new(big.Rat).Quo(rows[r].coeffs[col], pivotVal)
			if factor.Sign() == 0 {
				continue
			}
			for c := 0; c < cols; c++ {
				sub := new(big.Rat).Mul(factor, rows[pivotRow].coeffs[c])
				rows[r].coeffs[c] = new(big.Rat).Sub(rows[r].coeffs[c], sub)
			}
			rows[r].rhs = new(big.Rat).Sub(rows[r].rhs, new(big.Rat).Mul(factor, rows[pivotRow].rhs))
		}
		pivotRow++
	}
}

// analyseMatrix walks rows bottom-up: a row whose low bound equals its
// rhs forces every still-unknown positive-coefficient var safe and every
// still-unknown negative-coefficient var a mine; symmetrically for the
// high bound. A variable the sweep has already classified as a mine
// contributes its raw coefficient to BOTH bounds (its value is fixed at
// 1, not free), regardless of the coefficient's sign; a variable already
// classified safe contributes nothing to either bound (its value is
// fixed at 0). Only variables still unknown swing low on a negative
// coefficient and high on a positive one. Earlier bottom rows' findings
// feed effectiveValue/mines for later (upper) rows via the shared s.mines
// map. Grounded on MatrixSolver._analyse_matrix.
func (s *Solver) analyseMatrix(rows []row, vars []model.TilePosition) bool {
	found := false
	for i := len(rows) - 1; i >= 0; i-- {
		r := rows[i]
		low, high := big.NewRat(0, 1), big.NewRat(0, 1)
		for idx, c := range r.coeffs {
			switch {
			case s.mines[vars[idx]]:
				low = new(big.Rat).Add(low, c)
				high = new(big.Rat).Add(high, c)
			case s.safes[vars[idx]]:
				// fixed at 0: contributes nothing to either bound.
			case c.Sign() > 0:
				high = new(big.Rat).Add(high, c)
			case c.Sign() < 0:
				low = new(big.Rat).Add(low, c)
			}
		}
		if low.Cmp(r.rhs) == 0 {
			for i, c := range r.coeffs {
				if s.mines[vars[i]] || s.safes[vars[i]] {
					continue // already classified; its value is already fixed
				}
				if c.Sign() > 0 {
					s.safes[vars[i]] = true
					found = true
				} else if c.Sign() < 0 {
					s.mines[vars[i]] = true
					found = true
				}
			}
		} else if high.Cmp(r.rhs) == 0 {
			for i, c := range r.coeffs {
				if s.mines[vars[i]] || s.safes[vars[i]] {
					continue
				}
				if c.Sign() > 0 {
					s.mines[vars[i]] = true
					found = true
				} else if c.Sign() < 0 {
					s.safes[vars[i]] = true
					found = true
				}
			}
		}
	}
	return found
}
