package ports

import (
	"context"
	"time"

	"svw.info/sudoku-master/internal/domain"
)

// Stats captures performance characteristics of an engine operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver fills a partial grid to a complete solution and can count
// solutions for uniqueness decisions.
type Solver interface {
	// Solve mutates g in place; on failure the grid is left in a
	// partially backtracked state, so clone first when the original
	// must survive.
	Solve(ctx context.Context, g *domain.Grid) (Stats, error)
	// CountSolutions works on a private copy and caps the count at 2.
	CountSolutions(ctx context.Context, g *domain.Grid) (int, Stats, error)
}

// Generator creates puzzles by carving a complete board.
type Generator interface {
	Generate(ctx context.Context, seed int64, cellsToRemove int) (*domain.Puzzle, Stats, error)
}

// Hinter reveals one correct value for an empty cell.
type Hinter interface {
	Hint(ctx context.Context, g *domain.Grid) (domain.Hint, bool, error)
}

// Store persists puzzles and play-session snapshots.
type Store interface {
	SavePuzzle(ctx context.Context, p *domain.Puzzle) error
	LoadPuzzle(ctx context.Context, id string) (*domain.Puzzle, error)
	ListPuzzles(ctx context.Context) ([]domain.PuzzleMeta, error)
	SaveGame(ctx context.Context, g *domain.SavedGame) error
	LoadGame(ctx context.Context, id string) (*domain.SavedGame, error)
	Close() error
}
