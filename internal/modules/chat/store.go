// README: In-memory conversation store with history truncation and expiry.
package chat

import (
	"sync"
	"time"

	"urnav/internal/types"
)

// historyLimit caps how many messages a conversation retains.
const historyLimit = 10

// DefaultMaxAge is how long an idle conversation survives between sweeps.
const DefaultMaxAge = 24 * time.Hour

// Message is one turn of a conversation.
type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// UserInfo holds facts learned about the user during conversation.
type UserInfo struct {
	Name         string       `json:"name"`
	Location     *types.Point `json:"location"`
	LocationName string       `json:"location_name,omitempty"`
}

// Conversation is the per-user chat state.
type Conversation struct {
	Messages    []Message `json:"messages"`
	User        UserInfo  `json:"user_info"`
	LastUpdated time.Time `json:"last_updated"`
}

// Store keeps conversations in process memory keyed by user id.
type Store struct {
	mu            sync.Mutex
	conversations map[types.ID]*Conversation
	now           func() time.Time
}

func NewStore() *Store {
	return &Store{
		conversations: make(map[types.ID]*Conversation),
		now:           time.Now,
	}
}

func (s *Store) getLocked(userID types.ID) *Conversation {
	conv, ok := s.conversations[userID]
	if !ok {
		conv = &Conversation{LastUpdated: s.now()}
		s.conversations[userID] = conv
	}
	return conv
}

// Touch updates the user's location and refreshes the expiry clock.
func (s *Store) Touch(userID types.ID, loc *types.Point, locName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	conv := s.getLocked(userID)
	if loc != nil {
		conv.User.Location = loc
		conv.User.LocationName = locName
	}
	conv.LastUpdated = s.now()
}

// Append records a message and truncates history to the retention limit.
func (s *Store) Append(userID types.ID, role, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	conv := s.getLocked(userID)
	conv.Messages = append(conv.Messages, Message{
		Role:      role,
		Content:   content,
		Timestamp: s.now(),
	})
	if len(conv.Messages) > historyLimit {
		conv.Messages = append([]Message(nil), conv.Messages[len(conv.Messages)-historyLimit:]...)
	}
	conv.LastUpdated = s.now()
}

// SetName records the user's name once they introduce themselves.
func (s *Store) SetName(userID types.ID, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getLocked(userID).User.Name = name
}

// Get returns a copy of the conversation, creating it if absent.
func (s *Store) Get(userID types.ID) Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	conv := s.getLocked(userID)
	out := *conv
	out.Messages = append([]Message(nil), conv.Messages...)
	return out
}

// Info returns the facts known about a user.
func (s *Store) Info(userID types.ID) UserInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getLocked(userID).User
}

// Clear drops a conversation entirely.
func (s *Store) Clear(userID types.ID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.conversations, userID)
}

// SweepExpired drops conversations idle for longer than maxAge.
func (s *Store) SweepExpired(maxAge time.Duration) {
	cutoff := s.now().Add(-maxAge)

	s.mu.Lock()
	defer s.mu.Unlock()

	var expired []types.ID
	for id, conv := range s.conversations {
		if conv.LastUpdated.Before(cutoff) {
			expired = append(expired, id)
		}
	}
	for _, id := range expired {
		delete(s.conversations, id)
	}
}
