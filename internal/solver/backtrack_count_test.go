package solver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/sudoku-master/internal/domain"
)

func TestCountSolutionsUnique(t *testing.T) {
	g := domain.GridFromValues(sample)
	s := NewBacktrackingSolver()
	n, _, err := s.CountSolutions(context.Background(), g)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	// The caller's grid is untouched.
	require.Equal(t, sample, g.Values())
}

func TestCountSolutionsCapsAtTwo(t *testing.T) {
	g := domain.NewGrid() // the empty grid has a vast number of solutions
	s := NewBacktrackingSolver()
	n, _, err := s.CountSolutions(context.Background(), g)
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestCountSolutionsNone(t *testing.T) {
	values := [9][9]uint8{
		{1, 2, 3, 4, 5, 6, 7, 8, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 9},
	}
	s := NewBacktrackingSolver()
	n, _, err := s.CountSolutions(context.Background(), domain.GridFromValues(values))
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestCountSolutionsRejectsInconsistentInput(t *testing.T) {
	g := domain.NewGrid()
	g.SetCell(0, 0, 5)
	g.SetCell(8, 0, 5)
	s := NewBacktrackingSolver()
	_, _, err := s.CountSolutions(context.Background(), g)
	require.ErrorIs(t, err, ErrInconsistentGivens)
}
