package verification

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps verification sessions in process memory.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]Session
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Session)}
}

func (m *MemoryStore) Save(_ context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = *s
	return nil
}

func (m *MemoryStore) FindByID(_ context.Context, purpose Purpose, id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok || s.Purpose != purpose {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (m *MemoryStore) Consume(_ context.Context, purpose Purpose, id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok || s.Purpose != purpose {
		return nil, ErrNotFound
	}
	delete(m.sessions, id)
	return &s, nil
}

func (m *MemoryStore) DeleteByID(_ context.Context, purpose Purpose, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[id]; ok && s.Purpose == purpose {
		delete(m.sessions, id)
	}
	return nil
}

func (m *MemoryStore) DeleteBySubject(_ context.Context, purpose Purpose, subject string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, s := range m.sessions {
		if s.Purpose == purpose && s.Subject == subject {
			delete(m.sessions, id)
		}
	}
	return nil
}

func (m *MemoryStore) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	for id, s := range m.sessions {
		if s.IsExpired(now) {
			delete(m.sessions, id)
			n++
		}
	}
	return n, nil
}

// Len returns the number of stored sessions.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
