package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"trustmate/models"
	"trustmate/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ErrSessionNotFound is returned for tokens that refer to an evicted or
// unknown session.
var ErrSessionNotFound = errors.New("session not found")

const sessionTokenTTL = 24 * time.Hour

// Manager owns the live sessions of this process. Sessions are process-local;
// the optional Redis client only mirrors snapshots so operators can inspect
// live session state.
type Manager struct {
	deps  Deps
	redis *redis.Client

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager creates an empty session manager. redisClient may be nil.
func NewManager(deps Deps, redisClient *redis.Client) *Manager {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &Manager{
		deps:     deps,
		redis:    redisClient,
		sessions: make(map[string]*Session),
	}
}

// Create starts a new session and returns it with a bearer token for
// subsequent requests.
func (m *Manager) Create() (*Session, string, error) {
	s := New(m.deps)
	s.SetOnChange(func(snap models.SessionSnapshot) { m.mirrorSnapshot(snap) })

	token, err := utils.GenerateToken(s.ID(), "", sessionTokenTTL)
	if err != nil {
		return nil, "", err
	}

	m.mu.Lock()
	m.sessions[s.ID()] = s
	m.mu.Unlock()

	m.deps.Logger.Info("session created", zap.String("session", s.ID()))
	return s, token, nil
}

// Get returns the live session for an id.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Resolve validates a bearer token and returns its session.
func (m *Manager) Resolve(token string) (*Session, error) {
	id, err := utils.ExtractSessionIDFromToken(token)
	if err != nil {
		return nil, err
	}
	return m.Get(id)
}

// Evict tears a session down and forgets it.
func (m *Manager) Evict(id string) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if !ok {
		return
	}
	s.Teardown()
	if m.redis != nil {
		m.redis.Del(context.Background(), snapshotKey(id))
	}
	m.deps.Logger.Info("session evicted", zap.String("session", id))
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Shutdown tears down every live session.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()
	for _, s := range sessions {
		s.Teardown()
	}
}

func snapshotKey(sessionID string) string {
	return "session:snapshot:" + sessionID
}

// mirrorSnapshot writes the latest snapshot to Redis best-effort.
func (m *Manager) mirrorSnapshot(snap models.SessionSnapshot) {
	if m.redis == nil {
		return
	}
	data, err := json.Marshal(snap)
	if err != nil {
		m.deps.Logger.Warn("failed to marshal session snapshot", zap.Error(err))
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := m.redis.Set(ctx, snapshotKey(snap.SessionID), data, sessionTokenTTL).Err(); err != nil {
		m.deps.Logger.Warn("failed to mirror session snapshot", zap.Error(err))
	}
}
