package usecase

import (
	"context"
	"errors"

	"svw.info/sudoku-master/internal/domain"
	"svw.info/sudoku-master/internal/game"
	"svw.info/sudoku-master/internal/ports"
	"svw.info/sudoku-master/internal/rules"
)

// Service is the facade the HTTP adapter and CLI talk to.
type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	// GeneratorUnique, when set, carves with the uniqueness-preserving
	// removability test; Generate falls back to Generator otherwise.
	GeneratorUnique ports.Generator
	Hinter          ports.Hinter
	Store           ports.Store
	Sessions        *game.Manager
}

func NewService(s ports.Solver, g ports.Generator, h ports.Hinter, st ports.Store, m *game.Manager) *Service {
	return &Service{Solver: s, Generator: g, Hinter: h, Store: st, Sessions: m}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, g *domain.Grid) (ports.Stats, error) {
	if u.Solver == nil {
		return ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, g)
}

func (u *Service) Generate(ctx context.Context, seed int64, cellsToRemove int) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed, cellsToRemove)
}

// GenerateUnique prefers the uniqueness-preserving generator when one
// is configured.
func (u *Service) GenerateUnique(ctx context.Context, seed int64, cellsToRemove int) (*domain.Puzzle, ports.Stats, error) {
	if u.GeneratorUnique != nil {
		return u.GeneratorUnique.Generate(ctx, seed, cellsToRemove)
	}
	return u.Generate(ctx, seed, cellsToRemove)
}

// Validate reports board consistency and any conflicting cells.
func (u *Service) Validate(ctx context.Context, g *domain.Grid) (bool, []domain.CellCoord) {
	conflicts := rules.Conflicts(g)
	return len(conflicts) == 0, conflicts
}

func (u *Service) Hint(ctx context.Context, g *domain.Grid) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, g)
}

// Persistence

func (u *Service) SavePuzzle(ctx context.Context, p *domain.Puzzle) error {
	if u.Store == nil {
		return errNotConfigured
	}
	return u.Store.SavePuzzle(ctx, p)
}

func (u *Service) LoadPuzzle(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Store == nil {
		return nil, errNotConfigured
	}
	return u.Store.LoadPuzzle(ctx, id)
}

func (u *Service) ListPuzzles(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Store == nil {
		return nil, errNotConfigured
	}
	return u.Store.ListPuzzles(ctx)
}

func (u *Service) SaveGame(ctx context.Context, sg *domain.SavedGame) error {
	if u.Store == nil {
		return errNotConfigured
	}
	return u.Store.SaveGame(ctx, sg)
}

func (u *Service) LoadGame(ctx context.Context, id string) (*domain.SavedGame, error) {
	if u.Store == nil {
		return nil, errNotConfigured
	}
	return u.Store.LoadGame(ctx, id)
}
