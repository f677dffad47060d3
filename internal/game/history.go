package game

import "svw.info/sudoku-master/internal/domain"

// DefaultHistoryLimit bounds how many moves stay undoable.
const DefaultHistoryLimit = 100

// History keeps the two undo/redo stacks. Recording a fresh move
// invalidates everything on the redo stack.
type History struct {
	past   []domain.Move
	future []domain.Move
	limit  int
}

func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{limit: limit}
}

// Record pushes an executed move and clears the redo stack. The oldest
// entry is dropped once the limit is reached.
func (h *History) Record(m domain.Move) {
	h.past = append(h.past, m)
	if len(h.past) > h.limit {
		h.past = h.past[1:]
	}
	h.future = h.future[:0]
}

// Undo pops the most recent move onto the redo stack.
func (h *History) Undo() (domain.Move, bool) {
	if len(h.past) == 0 {
		return domain.Move{}, false
	}
	m := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	h.future = append(h.future, m)
	return m, true
}

// Redo pops the most recently undone move back onto the history.
func (h *History) Redo() (domain.Move, bool) {
	if len(h.future) == 0 {
		return domain.Move{}, false
	}
	m := h.future[len(h.future)-1]
	h.future = h.future[:len(h.future)-1]
	h.past = append(h.past, m)
	return m, true
}

func (h *History) CanUndo() bool { return len(h.past) > 0 }
func (h *History) CanRedo() bool { return len(h.future) > 0 }
func (h *History) Len() int      { return len(h.past) }

// Clear drops both stacks, e.g. when the game restarts.
func (h *History) Clear() {
	h.past = h.past[:0]
	h.future = h.future[:0]
}

// Snapshot copies both stacks for persistence.
func (h *History) Snapshot() (past, future []domain.Move) {
	past = append([]domain.Move(nil), h.past...)
	future = append([]domain.Move(nil), h.future...)
	return past, future
}

// Restore replaces both stacks, e.g. when loading a saved game.
func (h *History) Restore(past, future []domain.Move) {
	h.past = append(h.past[:0], past...)
	h.future = append(h.future[:0], future...)
}
