// Package game is the application layer around the engine: live play
// sessions with undo/redo history, an elapsed timer, move statistics,
// and an event stream for connected clients.
package game

import (
	"context"
	"sync"
	"time"

	"svw.info/sudoku-master/internal/domain"
	"svw.info/sudoku-master/internal/ports"
	"svw.info/sudoku-master/internal/rules"
)

// Event notifies session subscribers of a state change.
type Event struct {
	Type           string       `json:"type"`
	Move           *domain.Move `json:"move,omitempty"`
	Hint           *domain.Hint `json:"hint,omitempty"`
	ElapsedSeconds int64        `json:"elapsedSeconds"`
}

// State is a point-in-time view of a session for the API.
type State struct {
	ID             string       `json:"id"`
	Difficulty     string       `json:"difficulty"`
	Board          [9][9]uint8  `json:"board"`
	Given          [9][9]bool   `json:"given"`
	Clues          int          `json:"clues"`
	ElapsedSeconds int64        `json:"elapsedSeconds"`
	Elapsed        string       `json:"elapsed"`
	Stats          domain.Stats `json:"stats"`
	CanUndo        bool         `json:"canUndo"`
	CanRedo        bool         `json:"canRedo"`
	Paused         bool         `json:"paused"`
	Won            bool         `json:"won"`
}

// Session owns one live grid. The engine itself is synchronous and
// stateless; the mutex only serializes the concurrent HTTP callers.
type Session struct {
	mu sync.Mutex

	id         string
	seed       int64
	difficulty domain.Difficulty
	clues      int

	grid    *domain.Grid
	history *History
	stats   domain.Stats
	timer   *Timer
	hinter  ports.Hinter
	won     bool

	subs map[chan Event]struct{}
}

type sessionConfig struct {
	clock func() time.Time
}

// SessionOption adjusts session construction.
type SessionOption func(*sessionConfig)

// WithClock injects the timer's time source, mainly for tests.
func WithClock(now func() time.Time) SessionOption {
	return func(c *sessionConfig) { c.clock = now }
}

// NewSession starts play on a fresh puzzle. The puzzle's grid is
// cloned; the caller's copy stays pristine.
func NewSession(id string, p *domain.Puzzle, hinter ports.Hinter, opts ...SessionOption) *Session {
	cfg := sessionConfig{clock: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}
	s := &Session{
		id:         id,
		seed:       p.Seed,
		difficulty: p.Difficulty,
		clues:      p.Grid.CountFilled(),
		grid:       p.Grid.Clone(),
		history:    NewHistory(0),
		timer:      NewTimerWithClock(cfg.clock),
		hinter:     hinter,
		subs:       make(map[chan Event]struct{}),
	}
	s.timer.Start()
	return s
}

// RestoreSession resumes play from a saved snapshot.
func RestoreSession(sg *domain.SavedGame, hinter ports.Hinter, opts ...SessionOption) *Session {
	cfg := sessionConfig{clock: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}
	s := &Session{
		id:         sg.ID,
		seed:       sg.Seed,
		difficulty: sg.Difficulty,
		grid:       sg.Grid.Clone(),
		history:    NewHistory(0),
		stats:      sg.Stats,
		timer:      NewTimerWithClock(cfg.clock),
		hinter:     hinter,
		won:        sg.Won,
		subs:       make(map[chan Event]struct{}),
	}
	s.clues = len(clueCells(s.grid))
	s.history.Restore(sg.History, sg.Redo)
	s.timer.Start()
	s.timer.SetElapsed(time.Duration(sg.ElapsedSeconds) * time.Second)
	if s.won {
		s.timer.Pause()
	}
	return s
}

func clueCells(g *domain.Grid) []domain.CellCoord {
	var out []domain.CellCoord
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if _, given := g.Get(r, c); given {
				out = append(out, domain.CellCoord{Row: r, Col: c})
			}
		}
	}
	return out
}

func (s *Session) ID() string { return s.id }

// Apply plays one cell action: value 1..9 sets, 0 clears. It reports
// false without mutating anything when the game is over, the cell is a
// given, or the value conflicts with a row, column, or box.
func (s *Session) Apply(row, col int, value uint8) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.won || row < 0 || row > 8 || col < 0 || col > 8 || value > 9 {
		return false
	}
	old, given := s.grid.Get(row, col)
	if given {
		s.stats.RecordInvalidMove()
		return false
	}
	var m domain.Move
	if value == 0 {
		if old == 0 {
			return false // nothing to clear
		}
		m = domain.Move{Kind: domain.MoveClearCell, Row: row, Col: col, Old: old}
		s.grid.ClearCell(row, col)
	} else {
		if !rules.IsPlacementLegal(s.grid, row, col, value) {
			s.stats.RecordInvalidMove()
			return false
		}
		m = domain.Move{Kind: domain.MoveSetCell, Row: row, Col: col, Old: old, New: value}
		s.grid.SetCell(row, col, value)
	}
	s.history.Record(m)
	s.stats.RecordMove()
	s.broadcast(Event{Type: "move", Move: &m})
	s.checkWon()
	return true
}

// Undo reverts the most recent move.
func (s *Session) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.history.Undo()
	if !ok {
		return false
	}
	m.Revert(s.grid)
	s.stats.RecordUndo()
	s.broadcast(Event{Type: "undo", Move: &m})
	return true
}

// Redo replays the most recently undone move.
func (s *Session) Redo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.history.Redo()
	if !ok {
		return false
	}
	m.Apply(s.grid)
	s.stats.RecordRedo()
	s.broadcast(Event{Type: "redo", Move: &m})
	s.checkWon()
	return true
}

// Hint reveals a correct value for one empty cell without applying it.
func (s *Session) Hint(ctx context.Context) (domain.Hint, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.won {
		return domain.Hint{}, false, nil
	}
	h, ok, err := s.hinter.Hint(ctx, s.grid)
	if err != nil || !ok {
		return domain.Hint{}, false, err
	}
	s.stats.RecordHint()
	s.broadcast(Event{Type: "hint", Hint: &h})
	return h, true, nil
}

// Restart wipes all player entries, history, and statistics, keeping
// the puzzle's givens, and starts the clock over.
func (s *Session) Restart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grid.Reset()
	s.history.Clear()
	s.stats.Reset()
	s.won = false
	s.timer.Start()
	s.broadcast(Event{Type: "restarted"})
}

// Close stops the clock and disconnects all subscribers. The session is
// unusable afterwards.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timer.Stop()
	for ch := range s.subs {
		delete(s.subs, ch)
		close(ch)
	}
}

func (s *Session) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timer.Pause()
	s.broadcast(Event{Type: "paused"})
}

func (s *Session) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.won {
		s.timer.Resume()
		s.broadcast(Event{Type: "resumed"})
	}
}

// State snapshots the session for the API.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	elapsed := s.timer.Elapsed()
	return State{
		ID:             s.id,
		Difficulty:     s.difficulty.String(),
		Board:          s.grid.Values(),
		Given:          s.grid.GivenMask(),
		Clues:          s.clues,
		ElapsedSeconds: int64(elapsed.Seconds()),
		Elapsed:        FormatElapsed(elapsed),
		Stats:          s.stats,
		CanUndo:        s.history.CanUndo(),
		CanRedo:        s.history.CanRedo(),
		Paused:         s.timer.Paused(),
		Won:            s.won,
	}
}

// Snapshot captures the session for persistence.
func (s *Session) Snapshot() *domain.SavedGame {
	s.mu.Lock()
	defer s.mu.Unlock()
	past, future := s.history.Snapshot()
	return &domain.SavedGame{
		ID:             s.id,
		Seed:           s.seed,
		Difficulty:     s.difficulty,
		Grid:           s.grid.Clone(),
		History:        past,
		Redo:           future,
		Stats:          s.stats,
		ElapsedSeconds: int64(s.timer.Elapsed().Seconds()),
		Won:            s.won,
		SavedAt:        time.Now().Unix(),
	}
}

// Subscribe registers an event channel. Slow subscribers miss events
// instead of blocking play.
func (s *Session) Subscribe() chan Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan Event, 16)
	s.subs[ch] = struct{}{}
	return ch
}

func (s *Session) Unsubscribe(ch chan Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.subs[ch]; ok {
		delete(s.subs, ch)
		close(ch)
	}
}

// checkWon and broadcast run with the lock held.
func (s *Session) checkWon() {
	if !s.won && rules.IsBoardSolved(s.grid) {
		s.won = true
		s.timer.Pause()
		s.broadcast(Event{Type: "won"})
	}
}

func (s *Session) broadcast(ev Event) {
	ev.ElapsedSeconds = int64(s.timer.Elapsed().Seconds())
	for ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
