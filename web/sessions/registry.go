// Package sessions keeps the per-browser dialog and fetch state of the search page.
// Each session is identified by the session_id cookie set by the web middleware.
package sessions

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rohanthewiz/logger"

	"searchpage/models"
)

// DefaultIdleTimeout is how long an untouched session is kept.
const DefaultIdleTimeout = 30 * time.Minute

// Session is the server-side state of one browser tab group.
type Session struct {
	ID string

	mu       sync.Mutex
	form     *models.SettingsForm
	fetches  models.FetchTracker
	lastSeen time.Time
}

// WithForm runs fn with exclusive access to the session's settings form.
func (s *Session) WithForm(fn func(f *models.SettingsForm)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.form)
}

// Fetches returns the session's fetch tracker. The tracker has its own lock.
func (s *Session) Fetches() *models.FetchTracker {
	return &s.fetches
}

// Registry maps session ids to sessions.
type Registry struct {
	mu          sync.Mutex
	sessions    map[string]*Session
	idleTimeout time.Duration
	now         func() time.Time
}

// NewRegistry returns an empty registry. A non-positive idleTimeout uses DefaultIdleTimeout.
func NewRegistry(idleTimeout time.Duration) *Registry {
	if idleTimeout <= 0 {
		idleTimeout = DefaultIdleTimeout
	}
	return &Registry{
		sessions:    make(map[string]*Session),
		idleTimeout: idleTimeout,
		now:         time.Now,
	}
}

// NewID returns a fresh session id.
func NewID() string {
	return uuid.NewString()
}

// ValidID reports whether id looks like one issued by NewID.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// Get returns the session for id, creating it when missing, and evicts
// sessions idle for longer than the registry timeout.
func (r *Registry) Get(id string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for sid, s := range r.sessions {
		if sid != id && now.Sub(s.lastSeen) > r.idleTimeout {
			delete(r.sessions, sid)
			logger.Debug("Session evicted", "session_id", sid)
		}
	}

	s, ok := r.sessions[id]
	if !ok {
		s = &Session{ID: id, form: models.NewSettingsForm()}
		r.sessions[id] = s
	}
	s.lastSeen = now
	return s
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
