package game

import (
	"context"
	"errors"
	"hash/fnv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const lockStripes = 64

// Recorder is notified after a successful generate or reroll.
type Recorder interface {
	Record(code string, s State, a Action) error
}

// Manager owns the sessions. Actions on one session run one at a time; different sessions
// never block each other beyond sharing a lock stripe.
type Manager struct {
	store    Store
	sampler  Sampler
	recorder Recorder
	locks    [lockStripes]sync.Mutex
}

func NewManager(store Store, sampler Sampler) *Manager {
	return &Manager{store: store, sampler: sampler}
}

func (m *Manager) SetRecorder(r Recorder) { m.recorder = r }

func (m *Manager) CreateSession(ctx context.Context) (code string, s State, err error) {
	s = NewState()
	for {
		code = uuid.NewString()
		err = m.store.Create(ctx, code, s)
		if !errors.Is(err, ErrSessionExists) {
			break
		}
	}
	if err != nil {
		return "", State{}, err
	}
	return code, s, nil
}

// Get loads the current state of a session.
func (m *Manager) Get(ctx context.Context, code string) (State, error) {
	return m.store.Load(ctx, code)
}

// Dispatch applies a to the session and stores the result. On error the returned state is
// the unchanged current state (zero State if the session could not be loaded).
func (m *Manager) Dispatch(ctx context.Context, code string, a Action) (State, error) {
	mu := m.lock(code)
	mu.Lock()
	defer mu.Unlock()

	cur, err := m.store.Load(ctx, code)
	if err != nil {
		return State{}, err
	}
	next, err := Apply(cur, a, m.sampler)
	if err != nil {
		return cur, err
	}
	if err := m.store.Save(ctx, code, next); err != nil {
		return cur, err
	}
	if m.recorder != nil && (a.Type == ActionGenerate || a.Type == ActionReroll) {
		if err := m.recorder.Record(code, next, a); err != nil {
			log.Error().Err(err).Str("code", code).Msg("failed to record roster")
		}
	}
	return next, nil
}

func (m *Manager) Delete(ctx context.Context, code string) error {
	mu := m.lock(code)
	mu.Lock()
	defer mu.Unlock()
	return m.store.Delete(ctx, code)
}

// RunSweeper evicts idle sessions every interval until ctx is done. It returns at once if
// the store expires sessions on its own.
func (m *Manager) RunSweeper(ctx context.Context, interval, maxIdle time.Duration) {
	sw, ok := m.store.(Sweeper)
	if !ok {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := sw.Sweep(maxIdle); n > 0 {
				log.Info().Int("evicted", n).Int("remaining", sw.Len()).Msg("swept idle sessions")
			}
		}
	}
}

func (m *Manager) lock(code string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(code))
	return &m.locks[h.Sum32()%lockStripes]
}
