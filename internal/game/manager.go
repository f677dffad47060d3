package game

import (
	"sync"

	"github.com/gofrs/uuid/v5"

	"svw.info/sudoku-master/internal/domain"
	"svw.info/sudoku-master/internal/ports"
)

// Manager is the registry of live sessions.
type Manager struct {
	mu       sync.RWMutex
	hinter   ports.Hinter
	sessions map[string]*Session
}

func NewManager(hinter ports.Hinter) *Manager {
	return &Manager{hinter: hinter, sessions: make(map[string]*Session)}
}

// Create starts a session on a fresh puzzle and registers it.
func (m *Manager) Create(p *domain.Puzzle, opts ...SessionOption) *Session {
	id := uuid.Must(uuid.NewV4()).String()
	s := NewSession(id, p, m.hinter, opts...)
	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()
	return s
}

// Restore registers a session resumed from a saved game, replacing any
// live session with the same id.
func (m *Manager) Restore(sg *domain.SavedGame, opts ...SessionOption) *Session {
	s := RestoreSession(sg, m.hinter, opts...)
	m.mu.Lock()
	m.sessions[s.ID()] = s
	m.mu.Unlock()
	return s
}

func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Delete closes and unregisters a session; unknown ids are a no-op.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if ok {
		s.Close()
	}
}
