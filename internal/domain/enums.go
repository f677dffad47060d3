package domain

import "fmt"

// Difficulty selects how many cells the generator carves out of a
// complete board.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// CellsToRemove maps the difficulty to its removal target.
func (d Difficulty) CellsToRemove() int {
	switch d {
	case Easy:
		return 40
	case Hard:
		return 56
	default:
		return 51 // Medium
	}
}

// DifficultyForRemoval labels an explicit removal count with the
// hardest difficulty whose own target it reaches.
func DifficultyForRemoval(n int) Difficulty {
	switch {
	case n >= Hard.CellsToRemove():
		return Hard
	case n >= Medium.CellsToRemove():
		return Medium
	default:
		return Easy
	}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	default:
		return "medium"
	}
}

// ParseDifficulty accepts the difficulty names used by the API and CLI.
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "easy":
		return Easy, nil
	case "medium", "":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return Medium, fmt.Errorf("unknown difficulty %q", s)
}
