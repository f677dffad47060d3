package domain

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Hint is a revealed correct value for one empty cell.
type Hint struct {
	Row   int   `json:"row"`
	Col   int   `json:"col"`
	Value uint8 `json:"value"`
}

// Puzzle is a generated Sudoku with metadata.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	Clues      int        `json:"clues"`
	Grid       *Grid      `json:"grid"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
	Name       string     `json:"name,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	Clues      int        `json:"clues"`
	CreatedAt  int64      `json:"createdAt"`
}

// SavedGame is a persisted snapshot of a play session.
type SavedGame struct {
	ID             string     `json:"id"`
	Name           string     `json:"name,omitempty"`
	Seed           int64      `json:"seed,omitempty"`
	Difficulty     Difficulty `json:"difficulty"`
	Grid           *Grid      `json:"grid"`
	History        []Move     `json:"history,omitempty"`
	Redo           []Move     `json:"redo,omitempty"`
	Stats          Stats      `json:"stats"`
	ElapsedSeconds int64      `json:"elapsedSeconds"`
	Won            bool       `json:"won,omitempty"`
	SavedAt        int64      `json:"savedAt"`
}
