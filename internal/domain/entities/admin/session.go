package admin

import (
	"sync"
	"time"

	"github.com/ModelHouseContracting/modelhouse-go/internal/domain/entities/content"
)

// Session is one admin editor: its draft, the version of the document the
// draft was cloned from, and the latest notice. Operations on a session are
// serialized by Do.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu           sync.Mutex
	draft        *Draft
	baseVersion  uint64
	notice       Notice
	expiresAt    time.Time
	lastActivity time.Time
}

// NewSession starts a session whose draft is a deep copy of doc.
func NewSession(id string, doc *content.Document, baseVersion uint64, now time.Time, ttl time.Duration) *Session {
	return &Session{
		ID:           id,
		CreatedAt:    now,
		draft:        NewDraft(doc),
		baseVersion:  baseVersion,
		expiresAt:    now.Add(ttl),
		lastActivity: now,
	}
}

// Do runs fn with exclusive access to the session's draft.
func (s *Session) Do(fn func(d *Draft) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.draft)
}

// Reset replaces the draft with a fresh copy of doc and clears any staged edits.
func (s *Session) Reset(doc *content.Document, baseVersion uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = NewDraft(doc)
	s.baseVersion = baseVersion
}

// BaseVersion returns the document version the draft was cloned from or last
// committed as.
func (s *Session) BaseVersion() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.baseVersion
}

// SetBaseVersion records the document version the draft now matches.
func (s *Session) SetBaseVersion(version uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.baseVersion = version
}

// Touch extends the session by ttl from now.
func (s *Session) Touch(now time.Time, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActivity = now
	s.expiresAt = now.Add(ttl)
}

// LastActivity returns the time of the last request made with the session.
func (s *Session) LastActivity() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActivity
}

// ExpiresAt returns when the session lapses unless touched again.
func (s *Session) ExpiresAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expiresAt
}

// Expired reports whether the session has lapsed at now.
func (s *Session) Expired(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !now.Before(s.expiresAt)
}

// SetNotice replaces the session notice.
func (s *Session) SetNotice(n Notice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notice = n
}

// ActiveNotice returns the notice if it has not expired at now.
func (s *Session) ActiveNotice(now time.Time) (Notice, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.notice.Active(now) {
		return Notice{}, false
	}
	return s.notice, true
}
