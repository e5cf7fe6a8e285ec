package game

import (
	"context"
	"sync"
	"time"
)

// Store keeps session state keyed by session code.
type Store interface {
	Create(ctx context.Context, code string, s State) error
	Load(ctx context.Context, code string) (State, error)
	Save(ctx context.Context, code string, s State) error
	Delete(ctx context.Context, code string) error
}

// Sweeper is implemented by stores that need idle sessions evicted by the manager.
type Sweeper interface {
	Sweep(maxIdle time.Duration) int
	Len() int
}

type memoryEntry struct {
	state    State
	lastSeen time.Time
}

type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*memoryEntry
	now      func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*memoryEntry), now: time.Now}
}

func (m *MemoryStore) Create(_ context.Context, code string, s State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sessions[code] != nil {
		return ErrSessionExists
	}
	m.sessions[code] = &memoryEntry{state: s.clone(), lastSeen: m.now()}
	return nil
}

func (m *MemoryStore) Load(_ context.Context, code string) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := m.sessions[code]
	if e == nil {
		return State{}, ErrSessionNotFound
	}
	e.lastSeen = m.now()
	return e.state.clone(), nil
}

func (m *MemoryStore) Save(_ context.Context, code string, s State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := m.sessions[code]
	if e == nil {
		return ErrSessionNotFound
	}
	e.state = s.clone()
	e.lastSeen = m.now()
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sessions[code] == nil {
		return ErrSessionNotFound
	}
	delete(m.sessions, code)
	return nil
}

// Sweep drops sessions untouched for longer than maxIdle and reports how many went.
func (m *MemoryStore) Sweep(maxIdle time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	cutoff := m.now().Add(-maxIdle)
	n := 0
	for code, e := range m.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(m.sessions, code)
			n++
		}
	}
	return n
}

// Len is the number of live sessions.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
