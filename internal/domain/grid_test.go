package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetCellRespectsGivens(t *testing.T) {
	var values [9][9]uint8
	values[0][0] = 5
	g := NewPuzzleGrid(values)

	before := g.Values()
	require.False(t, g.SetCell(0, 0, 7), "given cell must reject writes")
	g.ClearCell(0, 0)
	require.Equal(t, before, g.Values(), "grid must be unchanged after rejected writes")

	require.True(t, g.SetCell(1, 1, 3))
	v, given := g.Get(1, 1)
	require.Equal(t, uint8(3), v)
	require.False(t, given)
}

func TestSetCellRejectsOutOfRangeValue(t *testing.T) {
	g := NewGrid()
	require.False(t, g.SetCell(0, 0, 10))
	v, _ := g.Get(0, 0)
	require.Equal(t, uint8(0), v)
}

func TestGivenFlagsOnlyAtConstruction(t *testing.T) {
	var values [9][9]uint8
	values[4][4] = 9
	g := NewPuzzleGrid(values)

	_, given := g.Get(4, 4)
	require.True(t, given)
	_, given = g.Get(0, 0)
	require.False(t, given)

	// No mutation path may promote a cell to given.
	g.SetCell(0, 0, 1)
	_, given = g.Get(0, 0)
	require.False(t, given)
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGrid()
	g.SetCell(0, 0, 1)
	c := g.Clone()
	c.SetCell(0, 0, 2)

	v, _ := g.Get(0, 0)
	require.Equal(t, uint8(1), v)
	v, _ = c.Get(0, 0)
	require.Equal(t, uint8(2), v)
}

func TestIsFullAndCounts(t *testing.T) {
	g := NewGrid()
	require.False(t, g.IsFull())
	require.Equal(t, 0, g.CountFilled())
	require.Len(t, g.EmptyCells(), 81)

	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			g.SetCell(r, c, uint8(1+(r+c)%9))
		}
	}
	require.True(t, g.IsFull())
	require.Equal(t, 81, g.CountFilled())
	require.Empty(t, g.EmptyCells())
}

func TestResetKeepsGivens(t *testing.T) {
	var values [9][9]uint8
	values[0][0] = 5
	g := NewPuzzleGrid(values)
	g.SetCell(1, 1, 4)

	g.Reset()
	v, _ := g.Get(0, 0)
	require.Equal(t, uint8(5), v)
	v, _ = g.Get(1, 1)
	require.Equal(t, uint8(0), v)
}

func TestGridJSONRoundTripKeepsGivens(t *testing.T) {
	var values [9][9]uint8
	values[2][3] = 8
	g := NewPuzzleGrid(values)
	g.SetCell(5, 5, 1)

	data, err := json.Marshal(g)
	require.NoError(t, err)

	var back Grid
	require.NoError(t, json.Unmarshal(data, &back))
	require.Equal(t, g.Values(), back.Values())
	require.Equal(t, g.GivenMask(), back.GivenMask())
	require.False(t, back.SetCell(2, 3, 1), "given survives the round trip")
}

func TestGridJSONRejectsImpossibleBoards(t *testing.T) {
	var g Grid
	err := json.Unmarshal([]byte(`{"values":[[10]],"given":[[]]}`), &g)
	require.ErrorContains(t, err, "out of range")

	err = json.Unmarshal([]byte(`{"values":[[]],"given":[[true]]}`), &g)
	require.ErrorContains(t, err, "no value")
}

func TestMoveApplyAndRevert(t *testing.T) {
	g := NewGrid()
	m := Move{Kind: MoveSetCell, Row: 0, Col: 0, Old: 0, New: 4}
	require.True(t, m.Apply(g))
	v, _ := g.Get(0, 0)
	require.Equal(t, uint8(4), v)

	require.True(t, m.Revert(g))
	v, _ = g.Get(0, 0)
	require.Equal(t, uint8(0), v)

	g.SetCell(1, 1, 6)
	clear := Move{Kind: MoveClearCell, Row: 1, Col: 1, Old: 6}
	require.True(t, clear.Apply(g))
	v, _ = g.Get(1, 1)
	require.Equal(t, uint8(0), v)
	require.True(t, clear.Revert(g))
	v, _ = g.Get(1, 1)
	require.Equal(t, uint8(6), v)
}

func TestDifficultyMapping(t *testing.T) {
	require.Equal(t, 40, Easy.CellsToRemove())
	require.Equal(t, 51, Medium.CellsToRemove())
	require.Equal(t, 56, Hard.CellsToRemove())

	d, err := ParseDifficulty("hard")
	require.NoError(t, err)
	require.Equal(t, Hard, d)
	_, err = ParseDifficulty("impossible")
	require.Error(t, err)

	require.Equal(t, Easy, DifficultyForRemoval(0))
	require.Equal(t, Easy, DifficultyForRemoval(45))
	require.Equal(t, Medium, DifficultyForRemoval(51))
	require.Equal(t, Hard, DifficultyForRemoval(60))
}
