package tutor

import (
	"context"
	"sync"
	"time"
)

// memoryStore keeps sessions in a process-local map. This is the default
// driver: the core only promises process-lifetime storage, and sessions are
// added but never expired here.
type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*TutoringSession
}

func newMemoryStore() *memoryStore {
	return &memoryStore{sessions: make(map[string]*TutoringSession)}
}

func (m *memoryStore) Create(_ context.Context, s *TutoringSession) error {
	if s.ID == "" {
		s.ID = NewSessionID()
	}
	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s.Clone()
	return nil
}

func (m *memoryStore) Get(_ context.Context, id string) (*TutoringSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s.Clone(), nil
}

func (m *memoryStore) Update(_ context.Context, s *TutoringSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[s.ID]; !ok {
		return ErrSessionNotFound
	}
	s.UpdatedAt = time.Now()
	m.sessions[s.ID] = s.Clone()
	return nil
}

func (m *memoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(m.sessions, id)
	return nil
}

func (m *memoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions = nil
	return nil
}
