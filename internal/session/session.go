// Package session holds the upstream auth token for the process. It replaces
// module-scoped token state with an explicit object owned by the composition
// root and injected into the HTTP clients that need it. Tokens live only in
// memory; invalidation wipes value and expiry together.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/cashforcars/CFC-AppointmentService/internal/selection"
)

// DefaultTTL applies when the auth backend reports no expiry
const DefaultTTL = time.Hour

// ErrEmptyToken is returned when Issue is called without a token
var ErrEmptyToken = errors.New("session: empty token")

// Session is a concurrency-safe in-memory token cache with expiry.
// Refreshes run under a last-write-wins guard: when concurrent 401
// retries race to re-login, only the result of the newest refresh is
// stored, so a slow login response never overwrites a fresher token.
type Session struct {
	mu        sync.Mutex
	token     string
	expiry    time.Time
	now       func() time.Time
	refreshes selection.Guard
}

// New creates an empty session
func New() *Session {
	return &Session{now: time.Now}
}

// NewWithClock creates a session with an injected clock for tests
func NewWithClock(now func() time.Time) *Session {
	return &Session{now: now}
}

// Issue stores a token with the given lifetime. A non-positive ttl falls
// back to DefaultTTL.
func (s *Session) Issue(token string, ttl time.Duration) error {
	if token == "" {
		return ErrEmptyToken
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.expiry = s.now().Add(ttl)
	return nil
}

// BeginRefresh registers an in-flight login refresh and returns its
// generation, to be passed back through IssueLatest
func (s *Session) BeginRefresh() uint64 {
	return s.refreshes.Begin()
}

// IssueLatest stores the token only when gen still names the newest
// refresh. A superseded result is discarded without error; the token
// stays usable by the request that fetched it. The bool reports whether
// the token was stored.
func (s *Session) IssueLatest(token string, ttl time.Duration, gen uint64) (bool, error) {
	if token == "" {
		return false, ErrEmptyToken
	}
	if !s.refreshes.Accept(gen) {
		return false, nil
	}
	return true, s.Issue(token, ttl)
}

// Current returns the stored token, or "" when none is held. An expired
// token is destroyed on read and reported as absent.
func (s *Session) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == "" {
		return ""
	}
	if s.now().After(s.expiry) {
		s.token = ""
		s.expiry = time.Time{}
		return ""
	}
	return s.token
}

// Valid reports whether a live token is held
func (s *Session) Valid() bool {
	return s.Current() != ""
}

// Invalidate wipes the token and its expiry atomically
func (s *Session) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.expiry = time.Time{}
}

// TimeRemaining returns the remaining token lifetime, zero when expired
// or absent
func (s *Session) TimeRemaining() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == "" {
		return 0
	}
	remaining := s.expiry.Sub(s.now())
	if remaining < 0 {
		return 0
	}
	return remaining
}
