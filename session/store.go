// Package session holds the per-user transient state: the history of
// generated content records and the pointer to the current one. Nothing
// here is ever written to disk; a session dies with the process or when
// the user clears it.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"social-agent/models"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrRecordNotFound  = errors.New("record not found")
)

// Session is one user's in-memory workspace.
type Session struct {
	ID        string
	CreatedAt time.Time

	// records is insertion-ordered: index 0 is the oldest.
	records []models.ContentRecord
	current *models.ContentRecord
}

// Store owns all live sessions. The HTTP server handles sessions
// concurrently, so access is mutex-guarded; within one session requests
// arrive sequentially from the browser.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Create opens a new empty session and returns its id.
func (s *Store) Create() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
	}
	s.sessions[sess.ID] = sess
	return sess
}

// Append adds a record to the session history and makes it current.
func (s *Store) Append(sessionID string, record models.ContentRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	sess.records = append(sess.records, record)
	sess.current = &sess.records[len(sess.records)-1]
	return nil
}

// History returns the session's records newest first.
func (s *Store) History(sessionID string) ([]models.ContentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	out := make([]models.ContentRecord, len(sess.records))
	for i, r := range sess.records {
		out[len(sess.records)-1-i] = r
	}
	return out, nil
}

// Current returns the most recently generated record, if any.
func (s *Store) Current(sessionID string) (models.ContentRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return models.ContentRecord{}, false, ErrSessionNotFound
	}
	if sess.current == nil {
		return models.ContentRecord{}, false, nil
	}
	return *sess.current, true, nil
}

// Record looks up a single record by id.
func (s *Store) Record(sessionID, recordID string) (models.ContentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return models.ContentRecord{}, ErrSessionNotFound
	}
	for _, r := range sess.records {
		if r.ID == recordID {
			return r, nil
		}
	}
	return models.ContentRecord{}, ErrRecordNotFound
}

// DeleteRecord removes one record from the history. If it was current, the
// pointer moves to the newest remaining record.
func (s *Store) DeleteRecord(sessionID, recordID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	for i, r := range sess.records {
		if r.ID != recordID {
			continue
		}
		wasCurrent := sess.current != nil && sess.current.ID == recordID
		sess.records = append(sess.records[:i], sess.records[i+1:]...)
		if wasCurrent {
			if n := len(sess.records); n > 0 {
				sess.current = &sess.records[n-1]
			} else {
				sess.current = nil
			}
		} else if sess.current != nil {
			// The backing array may have shifted; re-point by id.
			for j := range sess.records {
				if sess.records[j].ID == sess.current.ID {
					sess.current = &sess.records[j]
					break
				}
			}
		}
		return nil
	}
	return ErrRecordNotFound
}

// ClearHistory drops all records and the current pointer.
func (s *Store) ClearHistory(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	sess.records = nil
	sess.current = nil
	return nil
}

// Stats summarizes a session for the header metrics.
type Stats struct {
	Records   int            `json:"records"`
	Platforms map[string]int `json:"platforms"`
	Tones     map[string]int `json:"tones"`
}

func (s *Store) Stats(sessionID string) (Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return Stats{}, ErrSessionNotFound
	}

	stats := Stats{
		Records:   len(sess.records),
		Platforms: make(map[string]int),
		Tones:     make(map[string]int),
	}
	for _, r := range sess.records {
		stats.Platforms[string(r.Platform)]++
		stats.Tones[string(r.Tone)]++
	}
	return stats, nil
}
