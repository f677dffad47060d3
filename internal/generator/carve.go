package generator

import (
	"context"
	"math/rand"
	"time"

	"svw.info/sudoku-master/internal/domain"
	"svw.info/sudoku-master/internal/ports"
)

// Generate builds a puzzle with 81-cellsToRemove clues, best effort:
// when the shuffled carve pass exhausts all positions before hitting
// the target, the puzzle simply keeps more clues, so read Puzzle.Clues
// rather than assuming the request was met. The same seed yields the
// same puzzle.
func (g *CarvingGenerator) Generate(ctx context.Context, seed int64, cellsToRemove int) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	if cellsToRemove < 0 || cellsToRemove >= 81 {
		return nil, ports.Stats{}, ErrBadRemovalCount
	}
	rng := rand.New(rand.NewSource(seed))

	// 1) Complete board: seed the three diagonal boxes independently
	// (they share no row/column/box constraints, so any permutations
	// coexist), then let the solver finish the rest deterministically.
	grid := domain.NewGrid()
	for b := 0; b < 3; b++ {
		perm := rng.Perm(9)
		for i, p := range perm {
			grid.SetCell(b*3+i/3, b*3+i%3, uint8(p+1))
		}
	}
	st, err := g.solver.Solve(ctx, grid)
	nodes := st.Nodes
	if err != nil {
		return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
	}

	// 2) Carve in a uniformly shuffled position order. Each removal is
	// kept only if the remainder passes the removability test; note the
	// default test confirms *a* solution survives, not a unique one, so
	// puzzles may admit several solutions at aggressive targets.
	positions := rng.Perm(81)
	removed := 0
	for _, pos := range positions {
		if removed >= cellsToRemove {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		r, c := pos/9, pos%9
		old, _ := grid.Get(r, c)
		if old == 0 {
			continue
		}
		grid.ClearCell(r, c)
		ok, n := g.removable(ctx, grid)
		nodes += n
		if ok {
			removed++
		} else {
			grid.SetCell(r, c, old)
		}
	}

	// 3) Freeze the remaining clues as givens.
	p := &domain.Puzzle{
		Seed:      seed,
		Grid:      domain.NewPuzzleGrid(grid.Values()),
		Clues:     81 - removed,
		CreatedAt: time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// GenerateDifficulty maps the difficulty enum to its removal target.
func (g *CarvingGenerator) GenerateDifficulty(ctx context.Context, seed int64, d domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	p, st, err := g.Generate(ctx, seed, d.CellsToRemove())
	if p != nil {
		p.Difficulty = d
	}
	return p, st, err
}

// removable tests whether the grid, with one more cell cleared, still
// qualifies as a puzzle. The grid itself is never mutated: Solve runs
// on a clone and CountSolutions copies internally.
func (g *CarvingGenerator) removable(ctx context.Context, grid *domain.Grid) (bool, int) {
	if g.requireUnique {
		n, st, err := g.solver.CountSolutions(ctx, grid)
		return err == nil && n == 1, st.Nodes
	}
	probe := grid.Clone()
	st, err := g.solver.Solve(ctx, probe)
	return err == nil, st.Nodes
}
