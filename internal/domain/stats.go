package domain

// Stats counts the player's actions over one game.
type Stats struct {
	Moves        int `json:"moves"`
	Undos        int `json:"undos"`
	Redos        int `json:"redos"`
	Hints        int `json:"hints"`
	InvalidMoves int `json:"invalidMoves"`
}

func (s *Stats) RecordMove()        { s.Moves++ }
func (s *Stats) RecordUndo()        { s.Undos++ }
func (s *Stats) RecordRedo()        { s.Redos++ }
func (s *Stats) RecordHint()        { s.Hints++ }
func (s *Stats) RecordInvalidMove() { s.InvalidMoves++ }

func (s *Stats) Reset() { *s = Stats{} }

// TotalActions is the sum of moves, undos, and redos.
func (s *Stats) TotalActions() int { return s.Moves + s.Undos + s.Redos }
