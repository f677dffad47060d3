package solver

import (
	"context"
	"time"

	"svw.info/sudoku-master/internal/domain"
	"svw.info/sudoku-master/internal/ports"
	"svw.info/sudoku-master/internal/rules"
)

// CountSolutions counts the solutions reachable from g's current
// assignment, stopping at 2: callers only ever need none/one/many.
// The search runs on a private copy; the caller's grid is untouched.
func (s *BacktrackingSolver) CountSolutions(ctx context.Context, g *domain.Grid) (int, ports.Stats, error) {
	start := time.Now()
	if !rules.IsConsistent(g) {
		return 0, ports.Stats{Duration: time.Since(start)}, ErrInconsistentGivens
	}
	work := g.Clone()
	nodes := 0
	count := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil || count >= 2 {
			return true // stop early
		}
		r, c, ok := findEmpty(work)
		if !ok {
			count++
			return count >= 2
		}
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if rules.IsPlacementLegal(work, r, c, v) {
				work.SetCell(r, c, v)
				if dfs() {
					return true
				}
				work.ClearCell(r, c)
			}
		}
		return false
	}
	_ = dfs()
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return count, st, err
	}
	return count, st, nil
}
