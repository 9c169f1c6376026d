package app

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"broadside/internal/bot"
	"broadside/internal/config"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("engine session not found")
	ErrNotOwner        = errors.New("actor is not session owner")
	ErrSessionLimit    = errors.New("too many engine sessions")
)

// DefaultMaxSessionsPerUser bounds how many engines a single user may hold open.
const DefaultMaxSessionsPerUser = 4

// Session is one engine owned by one user. Engine calls go through Do so a
// session is never driven concurrently.
type Session struct {
	ID        string
	UserID    string
	CreatedAt time.Time

	mu     sync.Mutex
	engine *bot.Engine
}

// Do runs fn with exclusive access to the session's engine.
func (s *Session) Do(fn func(e *bot.Engine) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.engine)
}

// SessionRegistry keeps engine sessions in memory for the life of the process.
type SessionRegistry struct {
	mu         sync.RWMutex
	sessions   map[string]*Session
	maxPerUser int
	now        func() time.Time
}

// NewSessionRegistry creates an empty registry. maxPerUser <= 0 uses the default.
func NewSessionRegistry(maxPerUser int) *SessionRegistry {
	if maxPerUser <= 0 {
		maxPerUser = DefaultMaxSessionsPerUser
	}
	return &SessionRegistry{
		sessions:   make(map[string]*Session),
		maxPerUser: maxPerUser,
		now:        time.Now,
	}
}

// Create builds an engine for userID and registers it under a fresh id.
func (r *SessionRegistry) Create(userID string, cfg config.EngineConfig, opts ...bot.Option) (*Session, error) {
	if userID == "" {
		return nil, fmt.Errorf("user is required")
	}
	engine, err := bot.NewEngine(cfg, opts...)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.countLocked(userID) >= r.maxPerUser {
		return nil, ErrSessionLimit
	}
	s := &Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: r.now(),
		engine:    engine,
	}
	r.sessions[s.ID] = s
	return s, nil
}

// Get returns the session with id when it belongs to userID.
func (r *SessionRegistry) Get(id, userID string) (*Session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrSessionNotFound
	}
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	if s.UserID != userID {
		return nil, ErrNotOwner
	}
	return s, nil
}

// Close removes a session owned by userID.
func (r *SessionRegistry) Close(id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	if s.UserID != userID {
		return ErrNotOwner
	}
	delete(r.sessions, id)
	return nil
}

// Len returns the number of open sessions.
func (r *SessionRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func (r *SessionRegistry) countLocked(userID string) int {
	n := 0
	for _, s := range r.sessions {
		if s.UserID == userID {
			n++
		}
	}
	return n
}
