package solver

import (
	"context"
	"time"

	"svw.info/sudoku-master/internal/domain"
	"svw.info/sudoku-master/internal/ports"
	"svw.info/sudoku-master/internal/rules"
)

// Solve fills g in place to a complete valid solution reachable from
// its current partial assignment. On success the grid holds the found
// solution; on failure it is left partially backtracked, so callers
// who need the original must clone before calling. A grid that already
// violates the constraints is rejected up front without searching.
func (s *BacktrackingSolver) Solve(ctx context.Context, g *domain.Grid) (ports.Stats, error) {
	start := time.Now()
	if !rules.IsConsistent(g) {
		return ports.Stats{Duration: time.Since(start)}, ErrInconsistentGivens
	}
	nodes := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := findEmpty(g)
		if !ok {
			return true
		}
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if rules.IsPlacementLegal(g, r, c, v) {
				g.SetCell(r, c, v)
				if dfs() {
					return true
				}
				g.ClearCell(r, c)
			}
		}
		return false
	}
	if !dfs() {
		st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
		if err := ctx.Err(); err != nil {
			return st, err
		}
		return st, ErrUnsolvable
	}
	return ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
