package provider

import (
	"sync"

	"github.com/okometz/vantage/internal/model"
)

// Session serializes which analysis result is allowed to become the current
// display. Analyses may run concurrently; each one begins by taking a
// generation token, and only the result holding the newest token commits.
// A late result from a superseded request is discarded, never allowed to
// overwrite a newer composition.
type Session struct {
	mu      sync.Mutex
	gen     uint64
	current *model.CompositionDocument
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{}
}

// Begin starts a new analysis generation and returns its token. Any result
// carrying an older token is stale from this moment on.
func (s *Session) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	return s.gen
}

// Commit installs the document if the token is still the newest generation.
// It reports whether the result was accepted.
func (s *Session) Commit(token uint64, doc *model.CompositionDocument) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.gen {
		return false
	}
	s.current = doc
	return true
}

// Current returns the most recently committed document, or nil.
func (s *Session) Current() *model.CompositionDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}
