// Package session holds per-upload analysis state. Each uploaded resume gets
// its own session so concurrent callers never observe each other's documents
// or results.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/types"
)

// NotFoundError indicates a session ID with no live session behind it,
// either never created or already pruned.
type NotFoundError struct {
	ID uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("session %s not found", e.ID)
}

// Session is the state accumulated for one uploaded resume. Fields fill in
// as the pipeline progresses: Document at extraction, Analysis after the
// assessment phase, Report once the full run completes.
type Session struct {
	ID        uuid.UUID
	Document  *types.ResumeDocument
	Analysis  *types.GapAnalysis
	Report    *types.AnalysisReport
	CreatedAt time.Time
}

// Store is an in-memory session registry safe for concurrent use. All
// mutation goes through store methods; callers receive snapshot copies.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// NewStore returns an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[uuid.UUID]*Session)}
}

// Create mints a new session holding the extracted document.
func (s *Store) Create(doc *types.ResumeDocument) *Session {
	sess := &Session{
		ID:        uuid.New(),
		Document:  doc,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return snapshot(sess)
}

// Get returns a copy of the session, or a NotFoundError.
func (s *Store) Get(id uuid.UUID) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	return snapshot(sess), nil
}

// AttachAnalysis stores the assessment-phase result on the session.
func (s *Store) AttachAnalysis(id uuid.UUID, analysis *types.GapAnalysis) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return &NotFoundError{ID: id}
	}
	sess.Analysis = analysis
	return nil
}

// AttachReport stores the completed report on the session.
func (s *Store) AttachReport(id uuid.UUID, report *types.AnalysisReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return &NotFoundError{ID: id}
	}
	sess.Report = report
	return nil
}

// Delete removes a session. Deleting an unknown ID is a no-op.
func (s *Store) Delete(id uuid.UUID) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// PruneOlderThan drops sessions created before the cutoff and reports how
// many were removed.
func (s *Store) PruneOlderThan(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	pruned := 0
	for id, sess := range s.sessions {
		if sess.CreatedAt.Before(cutoff) {
			delete(s.sessions, id)
			pruned++
		}
	}
	return pruned
}

// snapshot copies the session header so callers can read fields without
// racing later Attach calls. The pointed-to records are never mutated after
// attachment, so sharing them is safe.
func snapshot(sess *Session) *Session {
	out := *sess
	return &out
}
