package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Grid is the 9x9 board: cell values (0 = empty) plus which cells are
// puzzle givens. Given flags are assigned at construction time only;
// no mutation method can flip them afterwards.
type Grid struct {
	values [9][9]uint8
	given  [9][9]bool
}

// NewGrid returns an empty grid with no givens.
func NewGrid() *Grid { return &Grid{} }

// GridFromValues builds a grid without givens, e.g. from an API body.
func GridFromValues(values [9][9]uint8) *Grid {
	return &Grid{values: values}
}

// NewPuzzleGrid finalizes a generated board as a puzzle: every nonzero
// cell becomes an immutable given.
func NewPuzzleGrid(values [9][9]uint8) *Grid {
	g := &Grid{values: values}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if values[r][c] != 0 {
				g.given[r][c] = true
			}
		}
	}
	return g
}

// Get returns the cell value and whether the cell is a given.
func (g *Grid) Get(row, col int) (uint8, bool) {
	return g.values[row][col], g.given[row][col]
}

// SetCell writes a value (0 clears). It reports false and leaves the
// grid untouched when the cell is a given or the value is out of range.
func (g *Grid) SetCell(row, col int, value uint8) bool {
	if g.given[row][col] || value > 9 {
		return false
	}
	g.values[row][col] = value
	return true
}

// ClearCell empties the cell unless it is a given.
func (g *Grid) ClearCell(row, col int) {
	if !g.given[row][col] {
		g.values[row][col] = 0
	}
}

// IsFull reports whether no empty cells remain.
func (g *Grid) IsFull() bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g.values[r][c] == 0 {
				return false
			}
		}
	}
	return true
}

// CountFilled returns the number of nonzero cells.
func (g *Grid) CountFilled() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g.values[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// EmptyCells lists all empty positions in row-major order.
func (g *Grid) EmptyCells() []CellCoord {
	var out []CellCoord
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g.values[r][c] == 0 {
				out = append(out, CellCoord{Row: r, Col: c})
			}
		}
	}
	return out
}

// Clone returns an independent copy, given flags included.
func (g *Grid) Clone() *Grid {
	out := *g
	return &out
}

// Values returns a copy of the value matrix.
func (g *Grid) Values() [9][9]uint8 { return g.values }

// GivenMask returns a copy of the given flags.
func (g *Grid) GivenMask() [9][9]bool { return g.given }

// Reset clears every non-given cell.
func (g *Grid) Reset() {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if !g.given[r][c] {
				g.values[r][c] = 0
			}
		}
	}
}

// String renders the grid as nine rows of digits, "." for empty.
func (g *Grid) String() string {
	var b strings.Builder
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			if v := g.values[r][c]; v == 0 {
				b.WriteByte('.')
			} else {
				b.WriteByte('0' + v)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

type gridJSON struct {
	Values [9][9]uint8 `json:"values"`
	Given  [9][9]bool  `json:"given"`
}

func (g *Grid) MarshalJSON() ([]byte, error) {
	return json.Marshal(gridJSON{Values: g.values, Given: g.given})
}

// UnmarshalJSON rejects boards that no constructor could produce: cell
// values above 9 and given flags on empty cells.
func (g *Grid) UnmarshalJSON(data []byte) error {
	var raw gridJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if raw.Values[r][c] > 9 {
				return fmt.Errorf("cell (%d,%d): value %d out of range", r, c, raw.Values[r][c])
			}
			if raw.Given[r][c] && raw.Values[r][c] == 0 {
				return fmt.Errorf("cell (%d,%d): given cell has no value", r, c)
			}
		}
	}
	g.values = raw.Values
	g.given = raw.Given
	return nil
}
