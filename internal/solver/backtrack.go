package solver

import (
	"errors"

	"svw.info/sudoku-master/internal/domain"
)

// BacktrackingSolver is a straightforward recursive solver. Scan order
// (row-major) and candidate order (1..9 ascending) determine which
// solution is found first when several exist; callers depend on that
// determinism, so neither is randomized.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

var (
	// ErrUnsolvable means no solution is reachable from the grid's
	// current partial assignment.
	ErrUnsolvable = errors.New("sudoku: no solution exists")
	// ErrInconsistentGivens means the grid already contained duplicate
	// values before the search started.
	ErrInconsistentGivens = errors.New("sudoku: grid contains conflicting values")
)

// findEmpty returns the first empty cell in row-major order.
func findEmpty(g *domain.Grid) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v, _ := g.Get(r, c); v == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}
