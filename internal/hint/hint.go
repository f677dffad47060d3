// Package hint reveals correct values for empty cells by re-solving a
// snapshot of the live grid.
package hint

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"svw.info/sudoku-master/internal/domain"
	"svw.info/sudoku-master/internal/ports"
	"svw.info/sudoku-master/internal/solver"
)

// Engine answers single hint requests. The caller's grid is never
// mutated; only an internal clone is solved.
type Engine struct {
	solver ports.Solver
	rng    *rand.Rand
}

func New(s ports.Solver) *Engine {
	return NewWithRand(s, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand fixes the cell-choice randomness, mainly for tests.
func NewWithRand(s ports.Solver, rng *rand.Rand) *Engine {
	return &Engine{solver: s, rng: rng}
}

// Hint returns the coordinates and correct value of one uniformly
// chosen empty cell. It reports false when the grid is already full or
// no solution is reachable from its current state; repeated calls on
// an unchanged grid may pick different cells but always return a value
// consistent with the deterministic first solution.
func (e *Engine) Hint(ctx context.Context, g *domain.Grid) (domain.Hint, bool, error) {
	empty := g.EmptyCells()
	if len(empty) == 0 {
		return domain.Hint{}, false, nil
	}
	solved := g.Clone()
	if _, err := e.solver.Solve(ctx, solved); err != nil {
		if errors.Is(err, solver.ErrUnsolvable) || errors.Is(err, solver.ErrInconsistentGivens) {
			return domain.Hint{}, false, nil
		}
		return domain.Hint{}, false, err
	}
	cell := empty[e.rng.Intn(len(empty))]
	v, _ := solved.Get(cell.Row, cell.Col)
	return domain.Hint{Row: cell.Row, Col: cell.Col, Value: v}, true, nil
}
