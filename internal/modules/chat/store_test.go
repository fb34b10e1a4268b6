// README: Conversation store tests.
package chat

import (
	"testing"
	"time"
)

// TestStoreSweepExpired verifies only conversations idle past the cutoff are
// dropped.
func TestStoreSweepExpired(t *testing.T) {
	s := NewStore()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	s.now = func() time.Time { return base }
	s.Append("old", "user", "hello")

	s.now = func() time.Time { return base.Add(23 * time.Hour) }
	s.Append("fresh", "user", "hi there")

	// Exactly at the boundary nothing expires yet.
	s.now = func() time.Time { return base.Add(24 * time.Hour) }
	s.SweepExpired(24 * time.Hour)
	if msgs := s.Get("old").Messages; len(msgs) != 1 {
		t.Fatalf("boundary sweep dropped a live conversation: %d messages", len(msgs))
	}

	s.now = func() time.Time { return base.Add(24*time.Hour + time.Second) }
	s.SweepExpired(24 * time.Hour)
	if msgs := s.Get("old").Messages; len(msgs) != 0 {
		t.Error("expired conversation survived the sweep")
	}
	if msgs := s.Get("fresh").Messages; len(msgs) != 1 {
		t.Errorf("fresh conversation swept: %d messages", len(msgs))
	}
}
