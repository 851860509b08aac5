package stores

import (
	"sync"
	"time"

	"github.com/ModelHouseContracting/modelhouse-go/internal/domain/entities/admin"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/observability/logging"
)

// SessionsStore holds the admin editing sessions.
type SessionsStore struct {
	sessions map[string]*admin.Session
	mu       sync.RWMutex
	logger   *logging.ChanneledLogger
	now      func() time.Time
}

// NewSessionsStore creates an empty sessions store.
func NewSessionsStore(logger *logging.ChanneledLogger) *SessionsStore {
	logger.Cache().Info("Initializing admin sessions store")
	return &SessionsStore{
		sessions: make(map[string]*admin.Session),
		logger:   logger,
		now:      time.Now,
	}
}

// Put stores session under its id.
func (ss *SessionsStore) Put(session *admin.Session) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.sessions[session.ID] = session
	ss.logger.Cache().Debug("Cache operation", "operation", "set", "type", "admin_session", "sessionId", logging.MaskID(session.ID))
}

// Get returns the live session with id. Expired sessions are removed and
// reported as missing.
func (ss *SessionsStore) Get(id string) (*admin.Session, bool) {
	start := time.Now()
	ss.mu.RLock()
	session, exists := ss.sessions[id]
	ss.mu.RUnlock()

	if !exists {
		ss.logger.Cache().Debug("Cache operation", "operation", "get", "type", "admin_session", "hit", false, "duration", time.Since(start))
		return nil, false
	}
	if session.Expired(ss.now()) {
		ss.Delete(id)
		ss.logger.Cache().Debug("Cache operation", "operation", "get", "type", "admin_session", "hit", false, "reason", "expired", "duration", time.Since(start))
		return nil, false
	}

	ss.logger.Cache().Debug("Cache operation", "operation", "get", "type", "admin_session", "hit", true, "duration", time.Since(start))
	return session, true
}

// Delete removes session id.
func (ss *SessionsStore) Delete(id string) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	delete(ss.sessions, id)
}

// PurgeExpired removes every expired session and returns how many were removed.
func (ss *SessionsStore) PurgeExpired() int {
	now := ss.now()

	ss.mu.Lock()
	defer ss.mu.Unlock()

	removed := 0
	for id, session := range ss.sessions {
		if session.Expired(now) {
			delete(ss.sessions, id)
			removed++
		}
	}
	return removed
}

// Count returns the number of stored sessions.
func (ss *SessionsStore) Count() int {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return len(ss.sessions)
}
