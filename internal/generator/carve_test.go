package generator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"svw.info/sudoku-master/internal/domain"
	"svw.info/sudoku-master/internal/rules"
	"svw.info/sudoku-master/internal/solver"
)

func TestGenerateAllDifficulties(t *testing.T) {
	g := New(solver.NewBacktrackingSolver())

	for _, diff := range []domain.Difficulty{domain.Easy, domain.Medium, domain.Hard} {
		t.Run(diff.String(), func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			p, st, err := g.GenerateDifficulty(ctx, 12345, diff)
			require.NoError(t, err)
			require.Equal(t, diff, p.Difficulty)
			require.Equal(t, p.Clues, p.Grid.CountFilled())
			// Best effort: never fewer clues than requested.
			require.GreaterOrEqual(t, p.Clues, 81-diff.CellsToRemove())
			require.True(t, rules.IsConsistent(p.Grid), "givens must not conflict")
			require.Positive(t, st.Nodes)

			// Every remaining cell is a given; every empty cell is not.
			for r := 0; r < 9; r++ {
				for c := 0; c < 9; c++ {
					v, given := p.Grid.Get(r, c)
					require.Equal(t, v != 0, given)
				}
			}
		})
	}
}

func TestGenerateZeroRemovalsIsASolvedBoard(t *testing.T) {
	g := New(solver.NewBacktrackingSolver())
	p, _, err := g.Generate(context.Background(), 7, 0)
	require.NoError(t, err)
	require.Equal(t, 81, p.Clues)
	require.Equal(t, 81, p.Grid.CountFilled())
	require.True(t, rules.IsBoardSolved(p.Grid))
}

func TestGenerateDeterministicPerSeed(t *testing.T) {
	g := New(solver.NewBacktrackingSolver())
	a, _, err := g.Generate(context.Background(), 42, 40)
	require.NoError(t, err)
	b, _, err := g.Generate(context.Background(), 42, 40)
	require.NoError(t, err)
	require.Equal(t, a.Grid.Values(), b.Grid.Values())

	c, _, err := g.Generate(context.Background(), 43, 40)
	require.NoError(t, err)
	require.NotEqual(t, a.Grid.Values(), c.Grid.Values())
}

func TestGeneratePuzzleStaysSolvable(t *testing.T) {
	s := solver.NewBacktrackingSolver()
	g := New(s)
	p, _, err := g.Generate(context.Background(), 99, 51)
	require.NoError(t, err)

	work := p.Grid.Clone()
	_, err = s.Solve(context.Background(), work)
	require.NoError(t, err)
	require.True(t, rules.IsBoardSolved(work))
}

func TestGenerateUniqueKeepsSolutionUnique(t *testing.T) {
	s := solver.NewBacktrackingSolver()
	g := New(s, RequireUnique())
	p, _, err := g.Generate(context.Background(), 5, 40)
	require.NoError(t, err)

	n, _, err := s.CountSolutions(context.Background(), p.Grid)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestGenerateRejectsBadRemovalCount(t *testing.T) {
	g := New(solver.NewBacktrackingSolver())
	_, _, err := g.Generate(context.Background(), 1, -1)
	require.ErrorIs(t, err, ErrBadRemovalCount)
	_, _, err = g.Generate(context.Background(), 1, 81)
	require.ErrorIs(t, err, ErrBadRemovalCount)
}
