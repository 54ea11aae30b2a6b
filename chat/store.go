package chat

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"digitull1/wonderwhiz-api/types"
)

// MessageStore is the append-only conversation history. Messages are never
// mutated after creation; appends are ordered by when Append executes, not
// by when the triggering request was issued.
type MessageStore struct {
	mu       sync.Mutex
	messages []types.Message
}

func NewMessageStore() *MessageStore {
	return &MessageStore{}
}

// Append assigns an ID and timestamp and adds the message to history.
// uuid keeps IDs unique even under rapid-fire creation.
func (s *MessageStore) Append(msg types.Message) types.Message {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	if msg.Kind == "" {
		msg.Kind = types.MessagePlain
	}

	s.mu.Lock()
	s.messages = append(s.messages, msg)
	s.mu.Unlock()

	return msg
}

// Messages returns a copy of the history in append order
func (s *MessageStore) Messages() []types.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *MessageStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

// Clear reinitializes the history, used when the user clears the chat
func (s *MessageStore) Clear() {
	s.mu.Lock()
	s.messages = nil
	s.mu.Unlock()
}
