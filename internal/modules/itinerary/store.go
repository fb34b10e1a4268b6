// README: In-memory session store keyed by user and rounded origin.
package itinerary

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"urnav/internal/types"
)

// ErrNotFound is returned when a task description or its session is absent.
var ErrNotFound = errors.New("itinerary: task not found")

// DefaultMaxAge is how long an untouched session survives between sweeps.
const DefaultMaxAge = 24 * time.Hour

// Store holds itinerary sessions in process memory. One mutex guards the
// whole map, which serializes every mutation per key; there is no
// persistence across restarts. Each request path sweeps opportunistically
// before touching the map.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// sessionKey rounds the origin to 4 decimals so nearby queries from the same
// user share one session.
func sessionKey(userID types.ID, origin types.Point) string {
	return fmt.Sprintf("%s_%.4f_%.4f", userID, origin.Lat, origin.Lng)
}

func (s *Store) getOrCreateLocked(userID types.ID, origin types.Point) *Session {
	key := sessionKey(userID, origin)
	if sess, ok := s.sessions[key]; ok {
		return sess
	}
	now := s.now()
	sess := &Session{
		UserID:      userID,
		Origin:      origin,
		CreatedAt:   now,
		LastUpdated: now,
	}
	s.sessions[key] = sess
	return sess
}

// AddTasks stamps each incoming task pending and appends the ones whose
// description is not already present. Duplicate adds are ignored, keeping the
// session idempotent under client retries.
func (s *Store) AddTasks(userID types.ID, origin types.Point, tasks []Task) Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.getOrCreateLocked(userID, origin)
	now := s.now()

	existing := make(map[string]bool, len(sess.Tasks))
	for _, t := range sess.Tasks {
		existing[t.Description] = true
	}

	for _, t := range tasks {
		if existing[t.Description] {
			continue
		}
		t.Status = StatusPending
		t.AddedAt = now
		t.CompletedAt = nil
		sess.Tasks = append(sess.Tasks, t)
		existing[t.Description] = true
	}
	sess.LastUpdated = now

	return snapshot(sess)
}

// CompleteTask transitions the first task matching description from pending
// to completed. Completing an already-completed task is a no-op; an unknown
// description or evicted session yields ErrNotFound.
func (s *Store) CompleteTask(userID types.ID, origin types.Point, description string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionKey(userID, origin)]
	if !ok {
		return Session{}, ErrNotFound
	}

	for i := range sess.Tasks {
		if sess.Tasks[i].Description != description {
			continue
		}
		if sess.Tasks[i].Status != StatusCompleted {
			now := s.now()
			sess.Tasks[i].Status = StatusCompleted
			sess.Tasks[i].CompletedAt = &now
			sess.LastUpdated = now
		}
		return snapshot(sess), nil
	}
	return Session{}, ErrNotFound
}

// AllTasks returns every task in the session, creating the session if absent.
func (s *Store) AllTasks(userID types.ID, origin types.Point) []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.getOrCreateLocked(userID, origin)
	return append([]Task{}, sess.Tasks...)
}

// PendingStops returns the coordinates of pending tasks in stored order,
// skipping tasks without a resolved position.
func (s *Store) PendingStops(userID types.ID, origin types.Point) []types.Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.getOrCreateLocked(userID, origin)

	var stops []types.Point
	for _, t := range sess.Tasks {
		if t.Status == StatusPending && t.HasCoordinates() {
			stops = append(stops, types.Point{Lat: *t.Lat, Lng: *t.Lng})
		}
	}
	return stops
}

// Summarize reports completion counts for the session. The rate is 0 for an
// empty session, not NaN.
func (s *Store) Summarize(userID types.ID, origin types.Point) Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.getOrCreateLocked(userID, origin)

	total := len(sess.Tasks)
	completed := 0
	for _, t := range sess.Tasks {
		if t.Status == StatusCompleted {
			completed++
		}
	}

	rate := 0.0
	if total > 0 {
		rate = float64(completed) / float64(total) * 100
	}
	return Summary{
		TotalTasks:     total,
		CompletedTasks: completed,
		PendingTasks:   total - completed,
		CompletionRate: rate,
	}
}

// SweepExpired removes sessions whose last update is older than maxAge,
// evaluated at call time.
func (s *Store) SweepExpired(maxAge time.Duration) {
	cutoff := s.now().Add(-maxAge)

	s.mu.Lock()
	defer s.mu.Unlock()

	var expired []string
	for key, sess := range s.sessions {
		if sess.LastUpdated.Before(cutoff) {
			expired = append(expired, key)
		}
	}
	for _, key := range expired {
		delete(s.sessions, key)
	}
}

// snapshot copies the session so callers never alias store-owned task slices.
func snapshot(sess *Session) Session {
	out := *sess
	out.Tasks = append([]Task(nil), sess.Tasks...)
	return out
}
