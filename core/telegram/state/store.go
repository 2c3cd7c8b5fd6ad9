package state

import "sync"

// Store keeps chat sessions keyed by chat id. Sessions for distinct chats are
// fully independent; the map is guarded so concurrent chats never observe or
// corrupt each other's sessions.
type Store struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
}

// NewStore constructs an empty in-memory session store.
func NewStore() *Store {
	return &Store{sessions: make(map[int64]*Session)}
}

// Get returns the session for a chat, creating an idle one on first contact.
func (s *Store) Get(chatID int64) *Session {
	s.mu.RLock()
	sess, ok := s.sessions[chatID]
	s.mu.RUnlock()
	if ok {
		return sess
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[chatID]; ok {
		return sess
	}
	sess = NewSession()
	s.sessions[chatID] = sess
	return sess
}

// Peek returns the session for a chat without creating one.
func (s *Store) Peek(chatID int64) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[chatID]
	return sess, ok
}

// Clear removes the session for a chat entirely.
func (s *Store) Clear(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, chatID)
}

// InProgress reports whether the chat has an active step other than idle.
func (s *Store) InProgress(chatID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[chatID]
	return ok && sess.Step != StepIdle
}

// Len reports the number of tracked sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
