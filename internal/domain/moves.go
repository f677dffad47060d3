package domain

// MoveKind tags the two reversible play actions.
type MoveKind int

const (
	MoveSetCell MoveKind = iota
	MoveClearCell
)

func (k MoveKind) String() string {
	if k == MoveClearCell {
		return "clear"
	}
	return "set"
}

// Move records one reversible cell action together with the value it
// replaced, which is all undo needs.
type Move struct {
	Kind MoveKind `json:"kind"`
	Row  int      `json:"row"`
	Col  int      `json:"col"`
	Old  uint8    `json:"old"`
	New  uint8    `json:"new,omitempty"`
}

// Apply replays the move on a grid.
func (m Move) Apply(g *Grid) bool {
	if m.Kind == MoveClearCell {
		g.ClearCell(m.Row, m.Col)
		return true
	}
	return g.SetCell(m.Row, m.Col, m.New)
}

// Revert restores the value the move replaced.
func (m Move) Revert(g *Grid) bool {
	if m.Old == 0 {
		g.ClearCell(m.Row, m.Col)
		return true
	}
	return g.SetCell(m.Row, m.Col, m.Old)
}
