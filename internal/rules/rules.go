// Package rules implements the Sudoku constraint checks: placement
// legality against row, column, and 3x3 box, and whole-board
// consistency. All functions are pure; none mutate the grid.
package rules

import "svw.info/sudoku-master/internal/domain"

// IsPlacementLegal reports whether value may be written at (row, col).
// Zero is always legal (it represents clearing). The target cell itself
// is excluded from comparison, so re-checking a cell that already holds
// the value does not self-conflict.
func IsPlacementLegal(g *domain.Grid, row, col int, value uint8) bool {
	if value == 0 {
		return true
	}
	for i := 0; i < 9; i++ {
		if i != col {
			if v, _ := g.Get(row, i); v == value {
				return false
			}
		}
		if i != row {
			if v, _ := g.Get(i, col); v == value {
				return false
			}
		}
	}
	br, bc := (row/3)*3, (col/3)*3
	for r := br; r < br+3; r++ {
		for c := bc; c < bc+3; c++ {
			if r == row && c == col {
				continue
			}
			if v, _ := g.Get(r, c); v == value {
				return false
			}
		}
	}
	return true
}

// IsBoardSolved reports whether every cell is filled and the whole grid
// is duplicate-free.
func IsBoardSolved(g *domain.Grid) bool {
	return g.IsFull() && len(Conflicts(g)) == 0
}

// IsConsistent reports whether the filled cells are duplicate-free,
// empty cells permitted.
func IsConsistent(g *domain.Grid) bool {
	return len(Conflicts(g)) == 0
}

// Conflicts scans rows, columns, and boxes with value bitmasks and
// returns the cells holding duplicated values.
func Conflicts(g *domain.Grid) []domain.CellCoord {
	conf := make([]domain.CellCoord, 0, 8)
	vals := g.Values()
	// rows
	for r := 0; r < 9; r++ {
		m := 0
		for c := 0; c < 9; c++ {
			val := vals[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// cols
	for c := 0; c < 9; c++ {
		m := 0
		for r := 0; r < 9; r++ {
			val := vals[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// boxes
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			m := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					r := br*3 + dr
					c := bc*3 + dc
					val := vals[r][c]
					if val == 0 {
						continue
					}
					bit := 1 << val
					if m&bit != 0 {
						conf = append(conf, domain.CellCoord{Row: r, Col: c})
					}
					m |= bit
				}
			}
		}
	}
	return conf
}
