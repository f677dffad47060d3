package game

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"svw.info/sudoku-master/internal/domain"
	"svw.info/sudoku-master/internal/hint"
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

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s := solver.NewBacktrackingSolver()
	p := &domain.Puzzle{
		Difficulty: domain.Easy,
		Grid:       domain.NewPuzzleGrid(sample),
	}
	return NewSession("test", p, hint.NewWithRand(s, rand.New(rand.NewSource(1))))
}

func TestApplyAndUndoRedo(t *testing.T) {
	s := newTestSession(t)

	require.True(t, s.Apply(0, 2, 4)) // 4 is the solution value at (0,2)
	st := s.State()
	require.Equal(t, uint8(4), st.Board[0][2])
	require.Equal(t, 1, st.Stats.Moves)
	require.True(t, st.CanUndo)
	require.False(t, st.CanRedo)

	require.True(t, s.Undo())
	st = s.State()
	require.Equal(t, uint8(0), st.Board[0][2])
	require.Equal(t, 1, st.Stats.Undos)
	require.True(t, st.CanRedo)

	require.True(t, s.Redo())
	st = s.State()
	require.Equal(t, uint8(4), st.Board[0][2])
	require.Equal(t, 1, st.Stats.Redos)

	require.False(t, s.Redo(), "nothing left to redo")
}

func TestFreshMoveInvalidatesRedo(t *testing.T) {
	s := newTestSession(t)
	require.True(t, s.Apply(0, 2, 4))
	require.True(t, s.Undo())
	require.True(t, s.State().CanRedo)

	require.True(t, s.Apply(0, 2, 1)) // legal: no 1 in row 0, col 2, or the box
	require.False(t, s.State().CanRedo, "a fresh action clears the redo stack")
}

func TestApplyRejectsGivenAndIllegal(t *testing.T) {
	s := newTestSession(t)

	require.False(t, s.Apply(0, 0, 9), "given cell")
	require.False(t, s.Apply(0, 2, 5), "5 already in row 0")
	require.False(t, s.Apply(9, 0, 1), "out of range")
	st := s.State()
	require.Equal(t, uint8(5), st.Board[0][0])
	require.Equal(t, 0, st.Stats.Moves)
	require.Equal(t, 2, st.Stats.InvalidMoves)
	require.False(t, st.CanUndo, "rejected moves must not enter history")
}

func TestClearRecordsAndUndoes(t *testing.T) {
	s := newTestSession(t)
	require.True(t, s.Apply(0, 2, 4))
	require.True(t, s.Apply(0, 2, 0)) // clear
	require.Equal(t, uint8(0), s.State().Board[0][2])

	require.True(t, s.Undo())
	require.Equal(t, uint8(4), s.State().Board[0][2], "undoing the clear restores the value")

	require.False(t, s.Apply(1, 1, 0), "clearing an empty cell is a no-op")
}

func TestWinDetection(t *testing.T) {
	s := solver.NewBacktrackingSolver()
	solved := domain.GridFromValues(sample)
	_, err := s.Solve(context.Background(), solved)
	require.NoError(t, err)

	sess := newTestSession(t)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if sample[r][c] == 0 {
				v, _ := solved.Get(r, c)
				require.True(t, sess.Apply(r, c, v), "cell (%d,%d)", r, c)
			}
		}
	}
	st := sess.State()
	require.True(t, st.Won)
	require.False(t, sess.Apply(0, 2, 1), "no moves after winning")
}

func TestHintCountsAndLeavesGrid(t *testing.T) {
	s := newTestSession(t)
	h, ok, err := s.Hint(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	st := s.State()
	require.Equal(t, 1, st.Stats.Hints)
	require.Zero(t, st.Board[h.Row][h.Col], "hint reveals without applying")
}

func TestSessionEvents(t *testing.T) {
	s := newTestSession(t)
	ch := s.Subscribe()
	defer s.Unsubscribe(ch)

	require.True(t, s.Apply(0, 2, 4))
	select {
	case ev := <-ch:
		require.Equal(t, "move", ev.Type)
		require.NotNil(t, ev.Move)
		require.Equal(t, uint8(4), ev.Move.New)
	case <-time.After(time.Second):
		t.Fatal("no event received")
	}
}

func TestRestartKeepsOnlyGivens(t *testing.T) {
	s := newTestSession(t)
	require.True(t, s.Apply(0, 2, 4))
	require.True(t, s.Apply(0, 3, 6))
	require.True(t, s.Undo())
	require.False(t, s.Apply(0, 0, 9), "given cell")

	s.Restart()
	st := s.State()
	require.Equal(t, sample, st.Board)
	require.Equal(t, domain.Stats{}, st.Stats)
	require.False(t, st.CanUndo)
	require.False(t, st.CanRedo)
	require.False(t, st.Won)

	require.True(t, s.Apply(0, 2, 4), "play continues after a restart")
}

func TestCloseDisconnectsSubscribers(t *testing.T) {
	s := newTestSession(t)
	ch := s.Subscribe()
	s.Close()

	_, open := <-ch
	require.False(t, open, "subscriber channel closed")
	require.Zero(t, s.State().ElapsedSeconds, "clock stopped")
}

func TestManagerDeleteClosesSession(t *testing.T) {
	m := NewManager(nil)
	s := m.Create(&domain.Puzzle{Difficulty: domain.Easy, Grid: domain.NewPuzzleGrid(sample)})
	ch := s.Subscribe()

	m.Delete(s.ID())
	_, ok := m.Get(s.ID())
	require.False(t, ok)
	_, open := <-ch
	require.False(t, open)
	m.Delete(s.ID()) // idempotent
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	s := newTestSession(t)
	require.True(t, s.Apply(0, 2, 4))
	require.True(t, s.Apply(0, 3, 6))
	require.True(t, s.Undo())

	sg := s.Snapshot()
	restored := RestoreSession(sg, nil)
	st, want := restored.State(), s.State()
	require.Equal(t, want.Board, st.Board)
	require.Equal(t, want.Given, st.Given)
	require.Equal(t, want.Stats, st.Stats)
	require.Equal(t, want.CanUndo, st.CanUndo)
	require.Equal(t, want.CanRedo, st.CanRedo)

	require.True(t, restored.Redo(), "redo stack survives the round trip")
	require.Equal(t, uint8(6), restored.State().Board[0][3])
}
