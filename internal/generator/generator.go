// Package generator produces puzzles by building a complete random
// solution and carving cells back out while the remainder stays
// solvable.
package generator

import (
	"errors"

	"svw.info/sudoku-master/internal/ports"
)

// CarvingGenerator creates puzzles using a provided Solver for board
// completion and removability tests.
type CarvingGenerator struct {
	solver        ports.Solver
	requireUnique bool
}

// Option configures a CarvingGenerator.
type Option func(*CarvingGenerator)

// RequireUnique switches the removability test from "still solvable"
// to "still exactly one solution". Carving gets noticeably slower and
// tends to under-deliver at high removal targets.
func RequireUnique() Option {
	return func(g *CarvingGenerator) { g.requireUnique = true }
}

func New(s ports.Solver, opts ...Option) *CarvingGenerator {
	g := &CarvingGenerator{solver: s}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ErrBadRemovalCount is returned for removal targets outside [0, 81).
var ErrBadRemovalCount = errors.New("sudoku: cells to remove must be in [0, 81)")
