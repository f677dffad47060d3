package hint

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/sudoku-master/internal/domain"
	"svw.info/sudoku-master/internal/rules"
	"svw.info/sudoku-master/internal/solver"
)

var sample = [9][9]uint8{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

func newEngine() (*Engine, *solver.BacktrackingSolver) {
	s := solver.NewBacktrackingSolver()
	return NewWithRand(s, rand.New(rand.NewSource(1))), s
}

func TestHintRevealsACorrectValue(t *testing.T) {
	e, s := newEngine()
	g := domain.NewPuzzleGrid(sample)

	h, ok, err := e.Hint(context.Background(), g)
	require.NoError(t, err)
	require.True(t, ok)

	// The caller's grid is untouched.
	require.Equal(t, sample, g.Values())

	// The revealed value matches the deterministic first solution.
	solved := g.Clone()
	_, err = s.Solve(context.Background(), solved)
	require.NoError(t, err)
	want, _ := solved.Get(h.Row, h.Col)
	require.Equal(t, want, h.Value)

	v, _ := g.Get(h.Row, h.Col)
	require.Zero(t, v, "hints target empty cells")
}

func TestHintOnFullGridReturnsNone(t *testing.T) {
	e, s := newEngine()
	g := domain.GridFromValues(sample)
	_, err := s.Solve(context.Background(), g)
	require.NoError(t, err)

	_, ok, err := e.Hint(context.Background(), g)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestHintWithOneEmptyCell(t *testing.T) {
	e, s := newEngine()
	g := domain.GridFromValues(sample)
	_, err := s.Solve(context.Background(), g)
	require.NoError(t, err)

	want, _ := g.Get(4, 4)
	g.ClearCell(4, 4)

	h, ok, err := e.Hint(context.Background(), g)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 4, h.Row)
	require.Equal(t, 4, h.Col)
	require.Equal(t, want, h.Value)
}

func TestHintOnUnsolvableGridReturnsNone(t *testing.T) {
	e, _ := newEngine()
	values := [9][9]uint8{
		{1, 2, 3, 4, 5, 6, 7, 8, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 9},
	}
	_, ok, err := e.Hint(context.Background(), domain.GridFromValues(values))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestHintValueIsAlwaysLegal(t *testing.T) {
	e, _ := newEngine()
	g := domain.NewPuzzleGrid(sample)
	for i := 0; i < 10; i++ {
		h, ok, err := e.Hint(context.Background(), g)
		require.NoError(t, err)
		require.True(t, ok)
		require.True(t, rules.IsPlacementLegal(g, h.Row, h.Col, h.Value))
	}
}
