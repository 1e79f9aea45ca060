package selection

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when a session ID is unknown, typically
// because the session was already closed.
var ErrSessionNotFound = errors.New("selection session not found")

// Manager owns the selection stores, one per UI session. Sessions are
// created and torn down explicitly so no ambient global selection state
// outlives its owner.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Store
}

// NewManager returns an empty session manager.
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Store)}
}

// Open creates a fresh session and returns its ID and store.
func (m *Manager) Open() (string, *Store) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	store := NewStore()
	m.sessions[id] = store
	return id, store
}

// Get returns the store of an open session.
func (m *Manager) Get(sessionID string) (*Store, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	store, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return store, nil
}

// Close discards a session and its selection. Closing an unknown session
// returns ErrSessionNotFound.
func (m *Manager) Close(sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	delete(m.sessions, sessionID)
	return nil
}

// Len reports how many sessions are open.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
