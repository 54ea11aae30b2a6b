package chat

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"digitull1/wonderwhiz-api/config"
	"digitull1/wonderwhiz-api/types"
)

// Manager owns the live sessions of this process, keyed by session ID
type Manager struct {
	mu        sync.Mutex
	sessions  map[string]*Session
	generator Generator
	cooldown  time.Duration
}

func NewManager(gen Generator) *Manager {
	return &Manager{
		sessions:  make(map[string]*Session),
		generator: gen,
		cooldown:  config.ChatConfig.SubmissionCooldown,
	}
}

// Get returns an existing session
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[id]
	return session, ok
}

// GetOrCreate returns the session for the ID, creating it (with a fresh ID
// when none is given) if needed. The welcome message is generated outside
// the manager lock.
func (m *Manager) GetOrCreate(id string, profile types.Profile) *Session {
	m.mu.Lock()
	if id != "" {
		if session, ok := m.sessions[id]; ok {
			m.mu.Unlock()
			return session
		}
	} else {
		id = uuid.NewString()
	}
	session := NewSession(id, profile, m.generator, m.cooldown)
	m.sessions[id] = session
	m.mu.Unlock()

	session.EnsureWelcome()
	return session
}

// Remove drops a session from the registry, destroying its in-memory state
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}
